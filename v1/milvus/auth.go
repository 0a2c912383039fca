package milvus

const (
	headerAuthorization = "Authorization"
	defaultTokenPrefix  = "Bearer"
)

// Authenticator produces the headers that authenticate a request.
type Authenticator interface {
	Headers() map[string]string
}

// TokenAuthenticator sends a credential as "Authorization: <Prefix> <Token>".
//
// Milvus accepts either an API key or a "user:password" pair in the same
// header; the token is passed through untouched and the server decides.
type TokenAuthenticator struct {
	Token  string
	Prefix string
}

// NewTokenAuthenticator returns a bearer authenticator for token.
func NewTokenAuthenticator(token string) TokenAuthenticator {
	return TokenAuthenticator{Token: token, Prefix: defaultTokenPrefix}
}

// Headers returns an empty map when no token is set.
func (a TokenAuthenticator) Headers() map[string]string {
	if a.Token == "" {
		return map[string]string{}
	}
	prefix := a.Prefix
	if prefix == "" {
		prefix = defaultTokenPrefix
	}
	return map[string]string{headerAuthorization: prefix + " " + a.Token}
}

// BuildAuthHeader is the bearer header for token, or an empty map.
func BuildAuthHeader(token string) map[string]string {
	return NewTokenAuthenticator(token).Headers()
}
