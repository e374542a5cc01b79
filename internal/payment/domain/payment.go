// Package domain defines payment details and QR rendering parameters.
package domain

import (
	"strings"
	"time"

	"github.com/allisson/signup/internal/errors"
)

// Details are the bank details participants pay the registration fee to.
type Details struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	SortCode      string `json:"sortCode"`
}

// QRPayload is the JSON document encoded in the payment QR code.
// Timestamp is only set for the data endpoint.
type QRPayload struct {
	Details
	Reference string     `json:"reference"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Format is an image format of a rendered QR code.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// QR code size limits in pixels.
const (
	DefaultQRSize = 300
	MinQRSize     = 64
	MaxQRSize     = 2048
)

// CustomQRInput is a request to render arbitrary data.
type CustomQRInput struct {
	Data   string
	Width  int
	Format string
}

// Image is a rendered QR code.
type Image struct {
	Content     []byte
	ContentType string
}

var (
	// ErrDataRequired indicates custom QR data is missing.
	ErrDataRequired = errors.Wrap(errors.ErrInvalidInput, "Data is required for QR code generation")

	// ErrInvalidWidth indicates a QR width outside the allowed range.
	ErrInvalidWidth = errors.Wrap(errors.ErrInvalidInput, "Width must be between 64 and 2048 pixels")

	// ErrInvalidFormat indicates an unsupported image format.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "Format must be 'png' or 'svg'")
)

// ParseFormat parses an image format. Empty means png.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", ErrInvalidFormat
	}
}
