package client

type authScheme int

const (
	authSchemeBasic authScheme = iota + 1
)

type authEntry struct {
	scheme      authScheme
	credentials Credentials
}

// authCache maps an auth scope (host:port) to the scheme and credentials
// that are sent on the first round trip, without waiting for a 401
// challenge. Each Client builds its own cache in New and never modifies
// it afterwards.
type authCache struct {
	entries map[string]authEntry
}

func newAuthCache() *authCache {
	return &authCache{entries: make(map[string]authEntry)}
}

func (c *authCache) putBasic(endpoint Endpoint, credentials Credentials) {
	c.entries[endpoint.authScope()] = authEntry{
		scheme:      authSchemeBasic,
		credentials: credentials,
	}
}

// basicCredentials returns the credentials to send preemptively to the
// endpoint, or nil when none are registered for its scope.
func (c *authCache) basicCredentials(endpoint Endpoint) *Credentials {
	if c == nil {
		return nil
	}

	entry, ok := c.entries[endpoint.authScope()]
	if !ok || entry.scheme != authSchemeBasic {
		return nil
	}

	creds := entry.credentials

	return &creds
}
