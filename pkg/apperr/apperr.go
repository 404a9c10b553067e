// Package apperr holds the error kinds shared by every storefront context.
// Context-specific sentinels wrap one of these so transports can map them
// without knowing each context.
package apperr

import "errors"

var (
	// ErrUnauthenticated is returned, with no side effects, by operations that need an active session.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
)
