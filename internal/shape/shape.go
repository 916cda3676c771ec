// Package shape generates SVG path data for data point markers. Every path is
// centered on the origin so callers position markers with a translate
// transform.
package shape

import (
	"fmt"
	"strings"
)

// Name identifies a marker shape.
type Name string

const (
	Circle   Name = "circle"
	Square   Name = "square"
	Diamond  Name = "diamond"
	Triangle Name = "triangle"
	Cross    Name = "cross"
)

// Default is used for unknown or empty shape names.
const Default = Circle

// Lookup resolves a case-insensitive shape name. Unknown names fall back to
// Default and report false.
func Lookup(name string) (Name, bool) {
	switch n := Name(strings.ToLower(strings.TrimSpace(name))); n {
	case Circle, Square, Diamond, Triangle, Cross:
		return n, true
	default:
		return Default, false
	}
}

// Path returns the path data for shape n with half size r.
//
// Supported shapes:
//   - "circle": two arcs of radius r
//   - "square": side length 2r
//   - "diamond": square rotated 45 degrees, vertices r from the center
//   - "triangle": upward pointing, 1.5r tall above the center
//   - "cross": plus sign with arm width 2r/3
func Path(n Name, r float64) string {
	switch n {
	case Square:
		return fmt.Sprintf("M%s,%s H%s V%s H%s Z",
			num(-r), num(-r), num(r), num(r), num(-r))
	case Diamond:
		return fmt.Sprintf("M0,%s L%s,0 L0,%s L%s,0 Z",
			num(-r), num(r), num(r), num(-r))
	case Triangle:
		h := r * 1.5
		return fmt.Sprintf("M0,%s L%s,%s L%s,%s Z",
			num(-h), num(r), num(h/2), num(-r), num(h/2))
	case Cross:
		a := r / 3
		return polygon([][2]float64{
			{-a, -r}, {a, -r}, {a, -a}, {r, -a}, {r, a}, {a, a},
			{a, r}, {-a, r}, {-a, a}, {-r, a}, {-r, -a}, {-a, -a},
		})
	default:
		return fmt.Sprintf("M%s,0 A%s,%s 0 1,0 %s,0 A%s,%s 0 1,0 %s,0 Z",
			num(-r), num(r), num(r), num(r), num(r), num(r), num(-r))
	}
}

func polygon(points [][2]float64) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(num(p[0]) + "," + num(p[1]))
	}
	b.WriteString(" Z")
	return b.String()
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
