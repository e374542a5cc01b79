// Package domain defines the access policy enforced on guarded routes.
package domain

import (
	"slices"
	"strings"
)

// AccessPolicy is the process-wide authorization policy: an optional shared
// bearer secret and an optional allow-list of client addresses. An empty rule
// disables the corresponding check. The policy is immutable once built.
type AccessPolicy struct {
	secretToken string
	allowedIPs  []string
}

// NewAccessPolicy builds a policy from the configured secret and allow-list.
// The secret is kept verbatim; allow-list entries are trimmed and blank entries dropped.
func NewAccessPolicy(secretToken string, allowedIPs []string) *AccessPolicy {
	ips := make([]string, 0, len(allowedIPs))
	for _, ip := range allowedIPs {
		if ip = strings.TrimSpace(ip); ip != "" {
			ips = append(ips, ip)
		}
	}
	return &AccessPolicy{
		secretToken: secretToken,
		allowedIPs:  ips,
	}
}

// TokenRequired reports whether a bearer secret is configured.
func (p *AccessPolicy) TokenRequired() bool {
	return p.secretToken != ""
}

// IPFilteringEnabled reports whether an allow-list is configured.
func (p *AccessPolicy) IPFilteringEnabled() bool {
	return len(p.allowedIPs) > 0
}

// AllowsAddress reports whether addr is allowed. Always true without an allow-list.
func (p *AccessPolicy) AllowsAddress(addr string) bool {
	if !p.IPFilteringEnabled() {
		return true
	}
	return slices.Contains(p.allowedIPs, strings.TrimSpace(addr))
}

// ExpectedAuthorization returns the exact Authorization header value required
// when a secret is configured.
func (p *AccessPolicy) ExpectedAuthorization() string {
	return "Bearer " + p.secretToken
}

// AllowedIPs returns a copy of the allow-list.
func (p *AccessPolicy) AllowedIPs() []string {
	return slices.Clone(p.allowedIPs)
}
