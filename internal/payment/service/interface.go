// Package service renders QR codes.
package service

// Renderer renders arbitrary string data as a square QR code of size pixels.
type Renderer interface {
	PNG(data string, size int) ([]byte, error)
	SVG(data string, size int) ([]byte, error)
}
