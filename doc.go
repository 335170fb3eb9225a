// Package client provides the HTTP client used by the cPanel remote backup
// tool to drive a cPanel server.
//
// The client wraps [github.com/go-resty/resty/v2] behind a small
// [Transport] interface and sends HTTP Basic credentials preemptively, so
// the first request is already authenticated instead of waiting for a 401
// challenge.
//
// # Basic Usage
//
//	c := client.New("cpanel.example.com", 2083, true, "user", "secret",
//	    client.WithTimeout(30*time.Second),
//	)
//
//	err := c.Post(ctx, "/frontend/paper_lantern/backup/dofullbackup.html", map[string]any{
//	    "dest":  "homedir",
//	    "email": "ops@example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained.
//
// # Parameters
//
// Parameters are sent as a form encoded body. Values are converted to
// strings: numbers and booleans with strconv, []string as repeated values,
// nil as the empty string and anything else with fmt.Sprint. Functions and
// channels are rejected before a request is sent.
//
// # Errors
//
// [Client.Post] succeeds only on 200 OK. Any other status, and any failure
// to complete the request, is returned as an [*HTTPError]. Transport faults
// are available through errors.Unwrap.
//
// # Retries
//
// There are none. Each call to [Client.Post] sends exactly one request.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Values of parameters named "pass" or "password" are never
// logged; add more names with [WithRedactedParam].
package client
