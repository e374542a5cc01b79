package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

const alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var base64Stripper = strings.NewReplacer("+", "", "/", "", "=", "")

type generator struct {
	random io.Reader
	now    func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generator)

// WithClock overrides the clock used to stamp issuance times.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *generator) {
		g.now = now
	}
}

// WithRandomSource overrides the random source. Only tests should use it.
func WithRandomSource(r io.Reader) GeneratorOption {
	return func(g *generator) {
		g.random = r
	}
}

// NewGenerator creates a Generator reading from crypto/rand.
func NewGenerator(opts ...GeneratorOption) Generator {
	g := &generator{
		random: rand.Reader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws byteLength random bytes and renders them in the requested encoding.
// Unknown encodings fail with ErrInvalidEncoding instead of falling back to hex.
func (g *generator) Generate(byteLength int, encoding tokenDomain.Encoding) (string, error) {
	if byteLength < 0 {
		return "", tokenDomain.ErrInvalidLength
	}
	if byteLength == 0 {
		byteLength = tokenDomain.DefaultByteLength
	}

	switch encoding {
	case tokenDomain.EncodingHex, tokenDomain.EncodingBase64URL, tokenDomain.EncodingAlphanumeric:
	default:
		return "", tokenDomain.ErrInvalidEncoding
	}

	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	switch encoding {
	case tokenDomain.EncodingHex:
		return hex.EncodeToString(buf), nil
	case tokenDomain.EncodingBase64URL:
		return base64Stripper.Replace(base64.StdEncoding.EncodeToString(buf)), nil
	default:
		// byte % 62 carries a slight modulo bias, acceptable for access tokens.
		out := make([]byte, byteLength)
		for i, b := range buf {
			out[i] = alphanumericChars[int(b)%len(alphanumericChars)]
		}
		return string(out), nil
	}
}

// GenerateWithExpiry creates a hex token valid, informationally, for 24 hours.
func (g *generator) GenerateWithExpiry(byteLength int) (*tokenDomain.TokenWithTimestamp, error) {
	if byteLength == 0 {
		byteLength = tokenDomain.DefaultByteLength
	}

	value, err := g.Generate(byteLength, tokenDomain.EncodingHex)
	if err != nil {
		return nil, err
	}

	issuedAt := g.now().UTC()
	return &tokenDomain.TokenWithTimestamp{
		Token: tokenDomain.Token{
			Value:      value,
			Encoding:   tokenDomain.EncodingHex,
			ByteLength: byteLength,
		},
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(tokenDomain.Lifetime),
	}, nil
}
