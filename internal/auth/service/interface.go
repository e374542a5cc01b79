// Package service implements the access guard evaluated on every guarded request.
package service

import (
	"context"
)

// Request carries the parts of an inbound request the guard inspects.
type Request struct {
	// ClientIP is the resolved client address.
	ClientIP string
	// Authorization is the raw Authorization header, empty when absent.
	Authorization string
}

// Guard decides whether a request may reach a guarded route.
type Guard interface {
	// Check runs the address check, then the bearer check. It returns nil to allow,
	// ErrAddressNotAllowed (403), ErrInvalidCredential (401), or any other error
	// for an internal fault that must be answered with a generic 500.
	Check(ctx context.Context, req Request) error

	// TokenRequired reports whether the bearer check is active.
	TokenRequired() bool

	// IPFilteringEnabled reports whether the address check is active.
	IPFilteringEnabled() bool
}
