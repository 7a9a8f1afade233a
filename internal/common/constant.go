// Package common contains constants and sentinel errors shared by the client
// packages.
package common

// AuthHeaderName is the header that carries the credential verbatim on
// outbound requests. The blog backend does not use the "Bearer" scheme.
const AuthHeaderName = "KZ_AUTH"

// RequestIDHeaderName tags each outbound request for log correlation.
const RequestIDHeaderName = "X-Request-ID"

// Metadata keys of the local store.
const (
	TokenKey = "token"

	// LegacyLoggedInKey is the boolean flag older clients persisted next to
	// the token. It is removed whenever a token is written.
	LegacyLoggedInKey = "isLoggedIn"
)
