package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionExpired occurs when a bearer token no longer resolves to a session.
	ErrSessionExpired = errors.New("session expired")
)
