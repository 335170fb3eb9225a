package client

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
)

// Client posts form parameters to a single endpoint, sending HTTP Basic
// credentials on the first round trip. A Client is not modified after
// [New] returns.
type Client struct {
	endpoint  Endpoint
	authCache *authCache
	transport Transport
	options   *Options
}

// New creates a client for host:port. When secure is true requests use
// HTTPS. The credentials are registered for host:port only and are sent
// preemptively with every request.
func New(host string, port int, secure bool, username, password string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	endpoint := Endpoint{Host: host, Port: port, Secure: secure}

	cache := newAuthCache()
	cache.putBasic(endpoint, Credentials{Username: username, Password: password})

	transport := options.transport
	if transport == nil {
		transport = newRestyTransport(options)
	}

	return &Client{
		endpoint:  endpoint,
		authCache: cache,
		transport: transport,
		options:   options,
	}
}

// Endpoint returns the endpoint the client was created for.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Post sends params as a form encoded POST to uri on the client's endpoint.
// It returns nil only when the server answers 200 OK; any other status, or
// a failure to complete the request, is reported as an [*HTTPError].
func (c *Client) Post(ctx context.Context, uri string, params map[string]any) error {
	if c == nil {
		return errors.New("http client is nil")
	}

	target := c.endpoint.URL(uri)
	log := c.options.requestLogger

	log.Debugf("Preparing POST of %s", quoted(target))

	form := url.Values{}

	for _, key := range slices.Sorted(maps.Keys(params)) {
		values, err := formValues(params[key])
		if err != nil {
			log.Errorf("POSTing %s failed: invalid param %s: %v", quoted(target), key, err)
			return &HTTPError{
				URI:     target,
				Message: fmt.Sprintf("POSTing %s failed: invalid param %s: %v", quoted(target), key, err),
				Err:     err,
			}
		}

		form[key] = values

		if c.options.isRedacted(key) {
			log.Debugf("Adding param %s=*****", key)
		} else {
			log.Debugf("Adding param %s=%s", key, displayValues(values))
		}
	}

	req := &Request{
		Method:    http.MethodPost,
		URL:       target,
		Form:      form,
		Header:    c.requestHeader(),
		BasicAuth: c.authCache.basicCredentials(c.endpoint),
	}

	log.Debugf("POSTing %s", quoted(target))

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		log.Errorf("POSTing %s failed with error %v", quoted(target), err)
		return &HTTPError{
			URI:     target,
			Message: fmt.Sprintf("POSTing %s failed: %v", quoted(target), err),
			Err:     err,
		}
	}

	log.Debugf("Response was %s", resp.Status)

	if resp.StatusCode != http.StatusOK {
		log.Errorf("POSTing %s failed with status code %d", quoted(target), resp.StatusCode)
		return &HTTPError{
			URI:        target,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("POSTing %s failed with status code %d", quoted(target), resp.StatusCode),
		}
	}

	log.Infof("POSTing %s was successful", quoted(target))

	return nil
}

func (c *Client) requestHeader() http.Header {
	h := make(http.Header, len(c.options.requestHeaders))
	for k, v := range c.options.requestHeaders {
		h.Set(k, v)
	}

	return h
}

func quoted(target string) string {
	return `"` + target + `"`
}

// formValues converts a parameter value to its form representation.
// []string yields one form value per element; nil and nil pointers yield "".
func formValues(v any) ([]string, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return []string{""}, nil
	}

	switch val := v.(type) {
	case nil:
		return []string{""}, nil
	case string:
		return []string{val}, nil
	case []string:
		return slices.Clone(val), nil
	case []byte:
		return []string{string(val)}, nil
	case fmt.Stringer:
		return []string{val.String()}, nil
	case bool:
		return []string{strconv.FormatBool(val)}, nil
	case int:
		return []string{strconv.Itoa(val)}, nil
	case int8:
		return []string{strconv.FormatInt(int64(val), 10)}, nil
	case int16:
		return []string{strconv.FormatInt(int64(val), 10)}, nil
	case int32:
		return []string{strconv.FormatInt(int64(val), 10)}, nil
	case int64:
		return []string{strconv.FormatInt(val, 10)}, nil
	case uint:
		return []string{strconv.FormatUint(uint64(val), 10)}, nil
	case uint8:
		return []string{strconv.FormatUint(uint64(val), 10)}, nil
	case uint16:
		return []string{strconv.FormatUint(uint64(val), 10)}, nil
	case uint32:
		return []string{strconv.FormatUint(uint64(val), 10)}, nil
	case uint64:
		return []string{strconv.FormatUint(val, 10)}, nil
	case float32:
		return []string{strconv.FormatFloat(float64(val), 'f', -1, 32)}, nil
	case float64:
		return []string{strconv.FormatFloat(val, 'f', -1, 64)}, nil
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("unsupported value type %T", v)
	default:
		return []string{fmt.Sprint(v)}, nil
	}
}

func displayValues(values []string) string {
	if len(values) == 1 {
		return values[0]
	}

	return fmt.Sprint(values)
}
