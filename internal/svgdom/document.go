// Package svgdom is a small mutable SVG document: elements are
// golang.org/x/net/html nodes, queried and edited through goquery selections,
// with per-node data binding and click dispatch so chart helpers can work the
// way browser chart code works against a live DOM.
package svgdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const xmlns = "http://www.w3.org/2000/svg"

// Handler receives the selection holding the node the handler was attached to.
type Handler func(target *goquery.Selection)

// Document owns an <svg> root, the data bound to its nodes and their event
// handlers. It is not safe for concurrent use.
type Document struct {
	doc      *goquery.Document
	root     *html.Node
	data     map[*html.Node]any
	handlers map[*html.Node]map[string]Handler
}

// New creates an empty document with an <svg> root element.
func New() *Document {
	top := &html.Node{Type: html.DocumentNode}
	root := element("svg")
	root.Attr = append(root.Attr, html.Attribute{Key: "xmlns", Val: xmlns})
	top.AppendChild(root)

	return &Document{
		doc:      goquery.NewDocumentFromNode(top),
		root:     root,
		data:     make(map[*html.Node]any),
		handlers: make(map[*html.Node]map[string]Handler),
	}
}

// Root returns the <svg> element.
func (d *Document) Root() *goquery.Selection {
	return d.doc.FindNodes(d.root)
}

// Find runs a CSS selector against the whole document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Select wraps attached nodes in a selection.
func (d *Document) Select(nodes ...*html.Node) *goquery.Selection {
	return d.doc.FindNodes(nodes...)
}

// Append adds a new element as the last child of every node in parent and
// returns the created elements.
func (d *Document) Append(parent *goquery.Selection, tag string, classes ...string) *goquery.Selection {
	created := make([]*html.Node, 0, len(parent.Nodes))
	for _, p := range parent.Nodes {
		n := element(tag, classes...)
		p.AppendChild(n)
		created = append(created, n)
	}
	return d.Select(created...)
}

// Prepend adds a new element as the first child of every node in parent.
func (d *Document) Prepend(parent *goquery.Selection, tag string, classes ...string) *goquery.Selection {
	created := make([]*html.Node, 0, len(parent.Nodes))
	for _, p := range parent.Nodes {
		n := element(tag, classes...)
		p.InsertBefore(n, p.FirstChild)
		created = append(created, n)
	}
	return d.Select(created...)
}

// Bind attaches datum to every node of sel.
func (d *Document) Bind(sel *goquery.Selection, datum any) *goquery.Selection {
	for _, n := range sel.Nodes {
		d.data[n] = datum
	}
	return sel
}

// Datum returns the data bound to the first node of sel.
func (d *Document) Datum(sel *goquery.Selection) any {
	if sel.Length() == 0 {
		return nil
	}
	return d.data[sel.Get(0)]
}

// On registers h for event on every node of sel, replacing any previous
// handler for that event.
func (d *Document) On(sel *goquery.Selection, event string, h Handler) *goquery.Selection {
	for _, n := range sel.Nodes {
		m, ok := d.handlers[n]
		if !ok {
			m = make(map[string]Handler)
			d.handlers[n] = m
		}
		m[event] = h
	}
	return sel
}

// Off removes the handler for event from every node of sel.
func (d *Document) Off(sel *goquery.Selection, event string) *goquery.Selection {
	for _, n := range sel.Nodes {
		delete(d.handlers[n], event)
	}
	return sel
}

// HasHandler reports whether the first node of sel listens for event.
func (d *Document) HasHandler(sel *goquery.Selection, event string) bool {
	if sel.Length() == 0 {
		return false
	}
	_, ok := d.handlers[sel.Get(0)][event]
	return ok
}

// Dispatch fires event on every node of target. The event bubbles from each
// node to its ancestors until a node with a handler is found. It reports
// whether any handler ran.
func (d *Document) Dispatch(target *goquery.Selection, event string) bool {
	handled := false
	for _, n := range target.Nodes {
		for cur := n; cur != nil; cur = cur.Parent {
			if h, ok := d.handlers[cur][event]; ok {
				h(d.Select(cur))
				handled = true
				break
			}
		}
	}
	return handled
}

// Remove detaches every node of sel and forgets the data and handlers of the
// removed subtrees.
func (d *Document) Remove(sel *goquery.Selection) {
	for _, n := range sel.Nodes {
		d.forget(n)
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

func (d *Document) forget(n *html.Node) {
	delete(d.data, n)
	delete(d.handlers, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

// Render writes the document as a standalone SVG file.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// String returns the markup of the <svg> element.
func (d *Document) String() string {
	var b strings.Builder
	if err := html.Render(&b, d.root); err != nil {
		return ""
	}
	return b.String()
}

func element(tag string, classes ...string) *html.Node {
	n := &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: "svg",
	}
	if len(classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	return n
}
