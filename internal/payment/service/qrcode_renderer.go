package service

import (
	"bytes"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEmptyData is returned when asked to render an empty string.
var ErrEmptyData = errors.New("qr data must not be empty")

// QRCodeRenderer implements Renderer with skip2/go-qrcode. Both formats keep
// the library's 4-module quiet zone.
type QRCodeRenderer struct {
	level qrcode.RecoveryLevel
}

// NewQRCodeRenderer creates a renderer using medium error correction.
func NewQRCodeRenderer() *QRCodeRenderer {
	return &QRCodeRenderer{level: qrcode.Medium}
}

// PNG renders data as a PNG image.
func (r *QRCodeRenderer) PNG(data string, size int) ([]byte, error) {
	q, err := r.encode(data)
	if err != nil {
		return nil, err
	}

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to render png: %w", err)
	}
	return png, nil
}

// SVG renders data as an SVG document with one path segment per dark module.
func (r *QRCodeRenderer) SVG(data string, size int) ([]byte, error) {
	q, err := r.encode(data)
	if err != nil {
		return nil, err
	}

	bitmap := q.Bitmap()
	modules := len(bitmap)

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, modules, modules)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#FFFFFF"/>`, modules, modules)
	buf.WriteString(`<path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&buf, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	buf.WriteString(`"/></svg>`)

	return buf.Bytes(), nil
}

func (r *QRCodeRenderer) encode(data string) (*qrcode.QRCode, error) {
	if data == "" {
		return nil, ErrEmptyData
	}

	q, err := qrcode.New(data, r.level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return q, nil
}
