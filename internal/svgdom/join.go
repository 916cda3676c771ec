package svgdom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Entry pairs a datum with its position in the joined data. Sel is nil for
// entering data.
type Entry[T any] struct {
	Index int
	Datum T
	Sel   *goquery.Selection
}

// Join is the result of matching data against the existing children of a
// parent.
type Join[T any] struct {
	Enter  []Entry[T]
	Update []Entry[T]
	Exit   *goquery.Selection
}

// JoinKeyed matches data to the children of parent selected by m, pairing
// each datum with the existing node whose bound datum has the same key.
// Matched nodes are rebound to the new datum. Nodes that match no datum, or
// repeat a key already matched, are returned in Exit.
func JoinKeyed[T any](d *Document, parent *goquery.Selection, m goquery.Matcher, data []T, key func(T) string) Join[T] {
	existing := parent.ChildrenMatcher(m)
	byKey := make(map[string]*html.Node, existing.Length())
	for _, n := range existing.Nodes {
		v, ok := d.data[n].(T)
		if !ok {
			continue
		}
		if _, dup := byKey[key(v)]; !dup {
			byKey[key(v)] = n
		}
	}

	var j Join[T]
	used := make(map[*html.Node]bool, len(byKey))
	for i, v := range data {
		n, ok := byKey[key(v)]
		if !ok || used[n] {
			j.Enter = append(j.Enter, Entry[T]{Index: i, Datum: v})
			continue
		}
		used[n] = true
		d.data[n] = v
		j.Update = append(j.Update, Entry[T]{Index: i, Datum: v, Sel: d.Select(n)})
	}

	var exit []*html.Node
	for _, n := range existing.Nodes {
		if !used[n] {
			exit = append(exit, n)
		}
	}
	j.Exit = d.Select(exit...)
	return j
}

// JoinIndexed matches data to the children of parent selected by m by
// position.
func JoinIndexed[T any](d *Document, parent *goquery.Selection, m goquery.Matcher, data []T) Join[T] {
	existing := parent.ChildrenMatcher(m)

	var j Join[T]
	for i, v := range data {
		if i < existing.Length() {
			n := existing.Get(i)
			d.data[n] = v
			j.Update = append(j.Update, Entry[T]{Index: i, Datum: v, Sel: d.Select(n)})
			continue
		}
		j.Enter = append(j.Enter, Entry[T]{Index: i, Datum: v})
	}

	var exit []*html.Node
	for i := len(data); i < existing.Length(); i++ {
		exit = append(exit, existing.Get(i))
	}
	j.Exit = d.Select(exit...)
	return j
}
