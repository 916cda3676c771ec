package svgdom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndFind(t *testing.T) {
	d := New()
	g := d.Append(d.Root(), "g", "group", "outer")
	rect := d.Append(g, "rect", "bar")
	SetAttrs(rect, "x", Num(1.5), "aria-describedby", "a")

	assert.Equal(t, 1, d.Find("g.group.outer").Length())
	found := d.Find(`.bar[aria-describedby="a"]`)
	require.Equal(t, 1, found.Length())
	assert.Equal(t, "1.5", found.AttrOr("x", ""))
}

func TestPrependKeepsOrder(t *testing.T) {
	d := New()
	g := d.Append(d.Root(), "g")
	d.Append(g, "circle", "second")
	d.Prepend(g, "rect", "first")

	children := g.Children()
	require.Equal(t, 2, children.Length())
	assert.True(t, children.First().HasClass("first"))
}

func TestDispatchBubbles(t *testing.T) {
	d := New()
	g := d.Append(d.Root(), "g", "point")
	path := d.Append(g, "path")

	var got *goquery.Selection
	d.On(g, "click", func(target *goquery.Selection) { got = target })

	assert.True(t, d.Dispatch(path, "click"))
	require.NotNil(t, got)
	assert.True(t, got.HasClass("point"))

	d.Off(g, "click")
	assert.False(t, d.Dispatch(path, "click"))
}

func TestRemoveForgetsSubtree(t *testing.T) {
	d := New()
	g := d.Append(d.Root(), "g")
	child := d.Append(g, "rect")
	d.Bind(child, "datum")
	d.On(child, "click", func(*goquery.Selection) {})

	d.Remove(g)

	assert.Equal(t, 0, d.Find("rect").Length())
	assert.Empty(t, d.data)
	assert.Empty(t, d.handlers)
}

func TestJoinKeyed(t *testing.T) {
	d := New()
	parent := d.Append(d.Root(), "g")
	match := cascadia.MustCompile(".item")
	key := func(s string) string { return s }

	first := JoinKeyed(d, parent, match, []string{"a", "b"}, key)
	require.Len(t, first.Enter, 2)
	assert.Empty(t, first.Update)
	assert.Equal(t, 0, first.Exit.Length())
	for _, e := range first.Enter {
		d.Bind(d.Append(parent, "rect", "item"), e.Datum)
	}

	second := JoinKeyed(d, parent, match, []string{"b", "c"}, key)
	require.Len(t, second.Update, 1)
	assert.Equal(t, "b", second.Update[0].Datum)
	assert.Equal(t, 0, second.Update[0].Index)
	require.Len(t, second.Enter, 1)
	assert.Equal(t, "c", second.Enter[0].Datum)
	assert.Equal(t, 1, second.Enter[0].Index)
	require.Equal(t, 1, second.Exit.Length())
	assert.Equal(t, "a", d.Datum(second.Exit))
}

func TestJoinIndexed(t *testing.T) {
	d := New()
	parent := d.Append(d.Root(), "g")
	match := cascadia.MustCompile(".point")
	for i := 0; i < 3; i++ {
		d.Bind(d.Append(parent, "g", "point"), i)
	}

	j := JoinIndexed(d, parent, match, []int{10, 20})

	require.Len(t, j.Update, 2)
	assert.Equal(t, 20, d.Datum(j.Update[1].Sel))
	assert.Empty(t, j.Enter)
	require.Equal(t, 1, j.Exit.Length())
	assert.Equal(t, 2, d.Datum(j.Exit))
}

func TestRender(t *testing.T) {
	d := New()
	SetAttrs(d.Root(), "width", "100", "height", "50")
	text := d.Append(d.Root(), "text")
	text.SetText("a < b")

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, "a &lt; b")
}

func TestNum(t *testing.T) {
	assert.Equal(t, "41", Num(41))
	assert.Equal(t, "0.333", Num(1.0/3))
	assert.Equal(t, "0", Num(-0.0001))
	assert.Equal(t, "translate(10,20.5)", Translate(10, 20.5))
	assert.Equal(t, "true", Bool(true))
}
