package svgdom

import (
	"math"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// Num formats a pixel value with at most three decimals and no trailing zeros.
func Num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Bool formats b the way aria attributes expect it.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// Translate returns a translate transform.
func Translate(x, y float64) string {
	return "translate(" + Num(x) + "," + Num(y) + ")"
}

// SetAttrs sets attribute pairs on sel: SetAttrs(sel, "x", "1", "y", "2").
func SetAttrs(sel *goquery.Selection, kv ...string) *goquery.Selection {
	for i := 0; i+1 < len(kv); i += 2 {
		sel.SetAttr(kv[i], kv[i+1])
	}
	return sel
}

// Float reads a numeric attribute from the first node of sel.
func Float(sel *goquery.Selection, name string) (float64, bool) {
	v, ok := sel.Attr(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
