package client

import "errors"

// HTTPError is returned by [Client.Post] when the server answers with a
// status other than 200, or when the request could not be completed at all.
type HTTPError struct {
	// URI is the full request target, including scheme, host and port.
	URI string
	// StatusCode is the HTTP status code, 0 for transport faults.
	StatusCode int
	// Message is a human-readable description.
	Message string
	// Err is the underlying transport fault, nil for status errors.
	Err error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is an [HTTPError] carrying the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}

	return httpErr.StatusCode == code
}
