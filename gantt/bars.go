package gantt

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"gantt2svg/internal/svgdom"
)

// barDatum is bound to every activity and task element.
type barDatum struct {
	item  Item
	index int
	start time.Time
	end   time.Time
}

func barKey(d barDatum) string { return d.item.Key }

func newBarData(items []Item) []barDatum {
	data := make([]barDatum, 0, len(items))
	for i, it := range items {
		start, end, err := parseRange(it.StartDate, it.EndDate)
		if err != nil {
			Logger().Warn("skipping bar with invalid dates", "key", it.Key, "error", err)
			continue
		}
		data = append(data, barDatum{item: it, index: i, start: start, end: end})
	}
	return data
}

// barExtent returns the x offset and width of a bar. Zero length bars get
// the configured minimum width.
func (g *Graph) barExtent(d barDatum) (float64, float64) {
	x := g.scale.X.Map(d.start)
	if !d.start.Before(d.end) {
		return x, g.cfg.Track.MinBarWidth
	}
	return x, g.scale.X.Map(d.end) - x
}

// decorateBar sets the state attributes and the click handler of a bar.
func (g *Graph) decorateBar(sel *goquery.Selection, d barDatum) {
	svgdom.SetAttrs(sel,
		attrDescribedBy, d.item.Key,
		attrDisabled, svgdom.Bool(d.item.OnClick == nil),
	)
	if _, ok := sel.Attr(attrSelected); !ok {
		sel.SetAttr(attrSelected, "false")
	}
	if d.item.OnClick == nil {
		sel.RemoveClass(ClassClickable)
		g.doc.Off(sel, eventClick)
		return
	}
	sel.AddClass(ClassClickable)
	g.doc.On(sel, eventClick, func(target *goquery.Selection) {
		if bound, ok := g.doc.Datum(target).(barDatum); ok {
			g.barActionHandler(bound, target)
		}
	})
}

// barActionHandler toggles the selected state of a bar and calls its
// consumer callback.
func (g *Graph) barActionHandler(d barDatum, target *goquery.Selection) {
	if d.item.OnClick == nil {
		return
	}
	selected := target.AttrOr(attrSelected, "false") == "true"
	target.SetAttr(attrSelected, svgdom.Bool(!selected))
	d.item.OnClick(ClickEvent{
		Close:  func() { target.SetAttr(attrSelected, "false") },
		Key:    d.item.Key,
		Index:  d.index,
		Value:  d.item.clone(),
		Target: target,
	})
}

// title replaces the tooltip of sel with text.
func (g *Graph) title(sel *goquery.Selection, text string) {
	g.doc.Remove(sel.ChildrenFiltered("title"))
	if text == "" {
		return
	}
	g.doc.Prepend(sel, "title").SetText(text)
}

func styleClasses(sel *goquery.Selection, s Style) {
	sel.RemoveClass(ClassHashed, ClassDotted)
	if s.IsHashed {
		sel.AddClass(ClassHashed)
	}
	if s.IsDotted {
		sel.AddClass(ClassDotted)
	}
}

// strokeBar outlines hashed and dotted bars in the bar color. Dotted bars get
// a dashed outline.
func strokeBar(sel *goquery.Selection, color string, s Style) {
	sel.RemoveAttr("stroke")
	sel.RemoveAttr("stroke-dasharray")
	if !s.IsHashed && !s.IsDotted {
		return
	}
	sel.SetAttr("stroke", color)
	if s.IsDotted {
		sel.SetAttr("stroke-dasharray", "4 2")
	}
}
