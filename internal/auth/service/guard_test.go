package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/signup/internal/auth/domain"
	apperrors "github.com/allisson/signup/internal/errors"
)

func TestGuard_Check(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		policy      *authDomain.AccessPolicy
		req         Request
		expectedErr error
	}{
		{
			name:   "no secret and no allow-list allows any request",
			policy: authDomain.NewAccessPolicy("", nil),
			req:    Request{ClientIP: "203.0.113.7"},
		},
		{
			name:   "matching bearer allowed",
			policy: authDomain.NewAccessPolicy("abc123", nil),
			req:    Request{ClientIP: "203.0.113.7", Authorization: "Bearer abc123"},
		},
		{
			name:        "wrong bearer rejected",
			policy:      authDomain.NewAccessPolicy("abc123", nil),
			req:         Request{ClientIP: "203.0.113.7", Authorization: "Bearer wrong"},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:        "missing header rejected",
			policy:      authDomain.NewAccessPolicy("abc123", nil),
			req:         Request{ClientIP: "203.0.113.7"},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:        "lowercase scheme rejected",
			policy:      authDomain.NewAccessPolicy("abc123", nil),
			req:         Request{Authorization: "bearer abc123"},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:        "trailing whitespace rejected",
			policy:      authDomain.NewAccessPolicy("abc123", nil),
			req:         Request{Authorization: "Bearer abc123 "},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:        "secret prefix rejected",
			policy:      authDomain.NewAccessPolicy("abc123", nil),
			req:         Request{Authorization: "Bearer abc"},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:   "allow-listed address passes",
			policy: authDomain.NewAccessPolicy("", []string{"10.0.0.1"}),
			req:    Request{ClientIP: "10.0.0.1"},
		},
		{
			name:        "address outside allow-list denied despite correct token",
			policy:      authDomain.NewAccessPolicy("abc123", []string{"10.0.0.1"}),
			req:         Request{ClientIP: "10.0.0.2", Authorization: "Bearer abc123"},
			expectedErr: apperrors.ErrForbidden,
		},
		{
			name:        "address outside allow-list denied without token",
			policy:      authDomain.NewAccessPolicy("abc123", []string{"10.0.0.1"}),
			req:         Request{ClientIP: "10.0.0.2"},
			expectedErr: apperrors.ErrForbidden,
		},
		{
			name:        "allow-listed address still needs the token",
			policy:      authDomain.NewAccessPolicy("abc123", []string{"10.0.0.1"}),
			req:         Request{ClientIP: "10.0.0.1", Authorization: "Bearer nope"},
			expectedErr: apperrors.ErrUnauthorized,
		},
		{
			name:   "allow-listed address with token allowed",
			policy: authDomain.NewAccessPolicy("abc123", []string{"10.0.0.1"}),
			req:    Request{ClientIP: "10.0.0.1", Authorization: "Bearer abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewGuard(tt.policy).Check(ctx, tt.req)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestGuard_Check_InternalFault(t *testing.T) {
	g := NewGuard(nil)

	err := g.Check(context.Background(), Request{ClientIP: "10.0.0.1"})
	assert.ErrorIs(t, err, authDomain.ErrPolicyMissing)
	assert.NotErrorIs(t, err, apperrors.ErrForbidden)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.False(t, g.TokenRequired())
	assert.False(t, g.IPFilteringEnabled())
}

func TestGuard_Flags(t *testing.T) {
	g := NewGuard(authDomain.NewAccessPolicy("abc123", []string{"10.0.0.1"}))
	assert.True(t, g.TokenRequired())
	assert.True(t, g.IPFilteringEnabled())
}
