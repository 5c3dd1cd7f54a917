package transport

import "net/http"

// AuthType identifies the credential injection method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication (header or query parameter).
	AuthAPIKey
	// AuthCustom uses a custom request-modifier function.
	AuthCustom
)

// defaultAPIKeyHeader carries the key when no name is configured.
const defaultAPIKeyHeader = "X-API-Key"

// AuthConfig configures static credential injection. Token acquisition and
// refresh flows are out of scope; callers supply ready-to-use credentials.
// Prefer the constructors below over filling the struct by hand.
type AuthConfig struct {
	// Type is the injection method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// InQuery sends the API key as a query parameter instead of a header.
	InQuery bool
	// Name is the header or query parameter name (AuthAPIKey). Empty means
	// the X-API-Key header.
	Name string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via the X-API-Key header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key}
}

// APIKeyAuthHeader creates an API key auth config with a custom header name.
func APIKeyAuthHeader(key, headerName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: headerName}
}

// APIKeyAuthQuery creates an API key auth config sent via a query parameter.
func APIKeyAuthQuery(key, paramName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, InQuery: true, Name: paramName}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply injects the configured credentials into an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		a.applyKey(req)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}

func (a *AuthConfig) applyKey(req *http.Request) {
	if a.InQuery {
		q := req.URL.Query()
		q.Set(a.Name, a.Key)
		req.URL.RawQuery = q.Encode()
		return
	}
	name := a.Name
	if name == "" {
		name = defaultAPIKeyHeader
	}
	req.Header.Set(name, a.Key)
}
