// Package textwidth measures rendered label widths so the Y axis column can be
// sized to the longest track label.
package textwidth

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measurer reports the advance width of strings set in Go Regular.
type Measurer struct {
	size float64
	face font.Face
}

// New creates a measurer for the given font size in pixels.
func New(size float64) (*Measurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return &Measurer{size: size, face: face}, nil
}

// Width returns the width of s in pixels.
func (m *Measurer) Width(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// Estimate approximates the width of s assuming an average character width of
// 0.6 times the font size.
func Estimate(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}
