package gantt

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"gantt2svg/internal/shape"
	"gantt2svg/internal/svgdom"
)

// DataPoint is one rendered marker. Events and actions produce one data
// point per value.
type DataPoint struct {
	Key              string
	OnClick          ClickHandler
	X                time.Time
	Y                string
	Label            Label
	Color            string
	Shape            shape.Name
	ClickPassThrough bool
}

// boundPoint is the datum bound to a data point element.
type boundPoint struct {
	point DataPoint
	index int
}

// drawDataPoints joins points by index against the point group of class
// inside container, creating the group on first use. Entering and updated
// elements are drawn by render.
func (g *Graph) drawDataPoints(container *goquery.Selection, m goquery.Matcher, class string, points []DataPoint, render func(sel *goquery.Selection, p DataPoint)) *goquery.Selection {
	group := container.ChildrenMatcher(m)
	if group.Length() == 0 {
		group = g.doc.Append(container, "g", class)
	}
	group = group.First()

	data := make([]boundPoint, len(points))
	for i, p := range points {
		data[i] = boundPoint{point: p, index: i}
	}
	j := svgdom.JoinIndexed(g.doc, group, matchDataPoint, data)
	g.doc.Remove(j.Exit)

	for _, e := range j.Enter {
		sel := g.doc.Append(group, "g", ClassDataPoint)
		g.doc.Bind(sel, e.Datum)
		g.renderDataPoint(sel, e.Datum.point)
		render(sel, e.Datum.point)
	}
	for _, e := range j.Update {
		g.doc.Remove(e.Sel.Children())
		g.renderDataPoint(e.Sel, e.Datum.point)
		render(e.Sel, e.Datum.point)
	}
	return group
}

// renderDataPoint draws the selection marker and the shape of p into sel.
func (g *Graph) renderDataPoint(sel *goquery.Selection, p DataPoint) {
	size := g.cfg.Marker.Size
	svgdom.SetAttrs(sel,
		attrDescribedBy, p.Key,
		attrDisabled, svgdom.Bool(p.OnClick == nil && !p.ClickPassThrough),
	)
	sel.RemoveClass(ClassClickable, ClassDataPointPassThrough)
	if p.OnClick != nil {
		sel.AddClass(ClassClickable)
	}
	if p.ClickPassThrough {
		sel.AddClass(ClassDataPointPassThrough)
	}
	g.title(sel, p.Label.Display)

	svgdom.SetAttrs(g.doc.Append(sel, "path", ClassDataPointSelected),
		"d", shape.Path(p.Shape, size*selectedMarkerScale),
		"fill", p.Color,
		"fill-opacity", "0.3",
		attrHidden, "true",
	)
	svgdom.SetAttrs(g.doc.Append(sel, "path", ClassDataPointShape),
		"d", shape.Path(p.Shape, size),
		"fill", p.Color,
	)

	g.doc.On(sel, eventClick, func(target *goquery.Selection) {
		bound, ok := g.doc.Datum(target).(boundPoint)
		if !ok {
			return
		}
		if bound.point.ClickPassThrough {
			g.passThrough(target)
			return
		}
		g.dataPointActionHandler(bound.point, bound.index, target)
	})
}

// passThrough forwards a click on a data point to the selector of its track.
func (g *Graph) passThrough(target *goquery.Selection) {
	selector := target.Closest("." + ClassTrack).ChildrenMatcher(matchTrackSelector)
	g.doc.Dispatch(selector, eventClick)
}

// dataPointActionHandler toggles the selection marker of a point and calls
// its consumer callback.
func (g *Graph) dataPointActionHandler(p DataPoint, index int, target *goquery.Selection) {
	if p.OnClick == nil {
		return
	}
	marker := target.ChildrenMatcher(matchSelected)
	hidden := marker.AttrOr(attrHidden, "true") == "true"
	marker.SetAttr(attrHidden, svgdom.Bool(!hidden))
	p.OnClick(ClickEvent{
		Close:  func() { marker.SetAttr(attrHidden, "true") },
		Key:    p.Key,
		Index:  index,
		Value:  p,
		Target: marker,
	})
}

// translatePoints moves every point of group to its value on the X axis and
// the vertical center of its track.
func (g *Graph) translatePoints(group *goquery.Selection) {
	group.ChildrenMatcher(matchDataPoint).Each(func(_ int, sel *goquery.Selection) {
		bound, ok := g.doc.Datum(sel).(boundPoint)
		if !ok {
			return
		}
		y, ok := g.scale.Y.Map(bound.point.Y)
		if !ok {
			return
		}
		h, _ := g.scale.Y.Band(bound.point.Y)
		sel.SetAttr("transform", svgdom.Translate(g.scale.X.Map(bound.point.X), y+h/2))
	})
}

// itemPoints expands items into data points, one per value.
func itemPoints(items []Item, y string, resolve func(Item) DataPoint) []DataPoint {
	var points []DataPoint
	for _, it := range items {
		values, err := parseValues(it.Values)
		if err != nil {
			Logger().Warn("skipping data point with invalid values", "key", it.Key, "error", err)
			continue
		}
		base := resolve(it)
		base.Key = it.Key
		base.OnClick = it.OnClick
		base.Y = y
		for _, v := range values {
			p := base
			p.X = v
			points = append(points, p)
		}
	}
	return points
}

// clickPassThrough resolves the per item setting against the chart default.
func (g *Graph) clickPassThrough(it Item) bool {
	if it.ClickPassThrough != nil {
		return *it.ClickPassThrough
	}
	return g.config.clickPassThrough
}

func (g *Graph) markerShape(name string) shape.Name {
	if s, ok := shape.Lookup(name); ok {
		return s
	}
	s, _ := shape.Lookup(g.cfg.Marker.Shape)
	return s
}
