package client

import (
	"net/url"
	"strings"
	"time"
)

const defaultUserAgent = "cpanel-remote-backup-client"

type Option func(*Options)

type Options struct {
	requestLogger      RequestLogger
	transport          Transport
	timeout            time.Duration
	requestHeaders     map[string]string
	proxyURL           string
	insecureSkipVerify bool
	userAgent          string
	redactedParams     map[string]struct{}
}

func newClientOptions() *Options {
	return &Options{
		requestLogger:  &NoopLogger{},
		requestHeaders: map[string]string{},
		userAgent:      defaultUserAgent,
		redactedParams: map[string]struct{}{
			"pass":     {},
			"password": {},
		},
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithTransport replaces the resty-backed transport. Options that configure
// the resty client (timeout, proxy, TLS, user agent) have no effect on a
// custom transport.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithTimeout bounds each request. Zero keeps the library default, which
// is no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithProxy(proxyURL string) Option {
	return func(o *Options) {
		u, err := url.Parse(proxyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return
		}

		o.proxyURL = proxyURL
	}
}

func WithInsecureSkipVerify(skip bool) Option {
	return func(o *Options) {
		o.insecureSkipVerify = skip
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithRedactedParam masks the value of the named parameter in debug logs.
// "pass" and "password" are always masked.
func WithRedactedParam(names ...string) Option {
	return func(o *Options) {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name != "" {
				o.redactedParams[strings.ToLower(name)] = struct{}{}
			}
		}
	}
}

func (o *Options) isRedacted(param string) bool {
	_, ok := o.redactedParams[strings.ToLower(param)]
	return ok
}
