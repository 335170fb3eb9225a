package client

import (
	"net"
	"strconv"
	"strings"
)

// Endpoint identifies the remote server: host name, port and whether the
// connection is encrypted.
type Endpoint struct {
	Host   string
	Port   int
	Secure bool
}

// Scheme returns "https" for secure endpoints and "http" otherwise.
func (e Endpoint) Scheme() string {
	if e.Secure {
		return "https"
	}

	return "http"
}

// String renders the endpoint as scheme://host:port.
func (e Endpoint) String() string {
	return e.Scheme() + "://" + e.authScope()
}

// URL joins the endpoint with a request path.
func (e Endpoint) URL(uri string) string {
	if uri != "" && !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}

	return e.String() + uri
}

// authScope is the key credentials are registered under.
func (e Endpoint) authScope() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Credentials is a username/password pair used for HTTP Basic authentication.
type Credentials struct {
	Username string
	Password string
}

// String never includes the password.
func (c Credentials) String() string {
	return c.Username + ":*****"
}
