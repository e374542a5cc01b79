package domain

import (
	"github.com/allisson/signup/internal/errors"
)

// Access guard errors.
var (
	// ErrAddressNotAllowed indicates the client address is not in the allow-list.
	ErrAddressNotAllowed = errors.Wrap(errors.ErrForbidden, "client address not allowed")

	// ErrInvalidCredential indicates a missing or wrong bearer credential.
	ErrInvalidCredential = errors.Wrap(errors.ErrUnauthorized, "missing or invalid bearer token")

	// ErrPolicyMissing indicates the guard was built without a policy.
	ErrPolicyMissing = errors.New("access policy not configured")
)
