package client

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// Transport sends a single prepared request. The default implementation is
// backed by resty; supply another one via [WithTransport] to swap the HTTP
// stack without touching callers of [Client.Post].
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Request is a fully prepared HTTP request handed to a [Transport].
type Request struct {
	Method string
	URL    string
	Form   url.Values
	Header http.Header
	// BasicAuth, when set, must be sent as an Authorization header on the
	// first round trip.
	BasicAuth *Credentials
}

// Response is the part of the server answer the client inspects.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

type restyTransport struct {
	client *resty.Client
}

func newRestyTransport(o *Options) *restyTransport {
	c := resty.New().
		SetRetryCount(0).
		SetLogger(o.requestLogger).
		SetHeader("User-Agent", o.userAgent).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			// A redirect is reported to Post as its 3xx status.
			return http.ErrUseLastResponse
		}))

	if o.timeout > 0 {
		c.SetTimeout(o.timeout)
	}

	if o.proxyURL != "" {
		c.SetProxy(o.proxyURL)
	}

	if o.insecureSkipVerify {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in for self-signed cPanel certificates
	}

	return &restyTransport{client: c}
}

func (t *restyTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	r := t.client.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header).
		SetFormDataFromValues(req.Form)

	if req.BasicAuth != nil {
		r.SetBasicAuth(req.BasicAuth.Username, req.BasicAuth.Password)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}, nil
}
