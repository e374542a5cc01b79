package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	authDomain "github.com/allisson/signup/internal/auth/domain"
)

type guard struct {
	policy *authDomain.AccessPolicy
}

// NewGuard creates a Guard enforcing the given policy.
func NewGuard(policy *authDomain.AccessPolicy) Guard {
	return &guard{policy: policy}
}

// Check evaluates the policy. Panics are converted into internal errors.
func (g *guard) Check(ctx context.Context, req Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("access guard panic: %v", r)
		}
	}()

	if g.policy == nil {
		return authDomain.ErrPolicyMissing
	}

	if !g.policy.AllowsAddress(req.ClientIP) {
		return authDomain.ErrAddressNotAllowed
	}

	if g.policy.TokenRequired() {
		expected := g.policy.ExpectedAuthorization()
		if subtle.ConstantTimeCompare([]byte(req.Authorization), []byte(expected)) != 1 {
			return authDomain.ErrInvalidCredential
		}
	}

	return nil
}

// TokenRequired reports whether the bearer check is active.
func (g *guard) TokenRequired() bool {
	return g.policy != nil && g.policy.TokenRequired()
}

// IPFilteringEnabled reports whether the address check is active.
func (g *guard) IPFilteringEnabled() bool {
	return g.policy != nil && g.policy.IPFilteringEnabled()
}
