package common

import "errors"

var (
	// ErrUnauthorized is reported when the server rejects the credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotLoggedIn means no credential is stored.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEmptyToken rejects blank credentials before they reach storage.
	ErrEmptyToken = errors.New("empty token")
)
