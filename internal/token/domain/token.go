// Package domain defines the access token model shared by the generator,
// the validator and the administrative endpoints.
package domain

import (
	"strings"
	"time"
)

// Encoding is the textual form of a generated token.
type Encoding string

const (
	// EncodingHex renders bytes as lowercase hexadecimal (2 characters per byte).
	EncodingHex Encoding = "hex"
	// EncodingBase64URL renders bytes as standard base64 with '+', '/' and '=' removed.
	// The result only contains [A-Za-z0-9] and cannot be decoded back.
	EncodingBase64URL Encoding = "base64url"
	// EncodingAlphanumeric maps each byte onto [A-Za-z0-9] via byte % 62.
	EncodingAlphanumeric Encoding = "alphanumeric"
)

const (
	// DefaultByteLength is used when a caller asks for a zero length.
	DefaultByteLength = 32
	// MinRequestLength and MaxRequestLength bound the length accepted from callers.
	MinRequestLength = 16
	MaxRequestLength = 128
	// MinWellFormedLength is the shortest string the validator accepts.
	MinWellFormedLength = 16
	// Lifetime is the informational validity window stamped on timestamped tokens.
	Lifetime = 24 * time.Hour
)

// Encodings lists every supported encoding.
var Encodings = []Encoding{EncodingHex, EncodingBase64URL, EncodingAlphanumeric}

// ParseEncoding resolves an encoding name. "base64" is accepted as an alias of base64url.
func ParseEncoding(name string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(name))) {
	case EncodingHex:
		return EncodingHex, nil
	case EncodingBase64URL, "base64":
		return EncodingBase64URL, nil
	case EncodingAlphanumeric:
		return EncodingAlphanumeric, nil
	default:
		return "", ErrInvalidEncoding
	}
}

// String returns the encoding name.
func (e Encoding) String() string {
	return string(e)
}

// Token is a generated credential.
type Token struct {
	Value      string
	Encoding   Encoding
	ByteLength int
}

// TokenWithTimestamp is a hex token stamped with its issuance and expiry instants.
// ExpiresAt is informational: nothing in the service enforces it.
type TokenWithTimestamp struct {
	Token
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// GenerateInput is the administrative request for a new token. A nil Length or
// Type takes the default (32 bytes, hex); a set value is validated as given.
type GenerateInput struct {
	Length           *int
	Type             *string
	IncludeTimestamp bool
}

// GenerateOutput is the result of an administrative generation request.
// IssuedAt and ExpiresAt are nil unless a timestamp was requested.
type GenerateOutput struct {
	Token     string
	Encoding  Encoding
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// ValidateOutput reports the format check of a candidate token.
type ValidateOutput struct {
	IsValid     bool
	TokenLength int
}
