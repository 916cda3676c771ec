package gantt

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"gantt2svg/internal/scale"
	"gantt2svg/internal/svgdom"
)

const tickSize = 6

// drawXAxis rebuilds the top axis: a domain line and one tick per X scale
// tick, each bound to its time.
func (g *Graph) drawXAxis() {
	g.doc.Remove(g.axisX.Children())
	g.doc.Append(g.axisX, "path", ClassAxisDomain).SetAttr("d", "M0,0H"+svgdom.Num(g.geo.contentWidth))

	for _, t := range g.scale.X.Ticks(g.cfg.Axis.TickCount) {
		tick := g.doc.Append(g.axisX, "g", ClassTick)
		g.doc.Bind(tick, t)
		tick.SetAttr("transform", svgdom.Translate(g.scale.X.Map(t), 0))
		g.doc.Append(tick, "line").SetAttr("y2", svgdom.Num(-tickSize))
		svgdom.SetAttrs(g.doc.Append(tick, "text"),
			"y", svgdom.Num(-tickSize-g.cfg.Layout.TickPadding/2),
			"text-anchor", "middle",
		).SetText(scale.FormatTick(t))
	}
}

// drawYAxis rebuilds the left axis with one tick per track, centered in the
// track band. Ticks are bound to the track key, not the label.
func (g *Graph) drawYAxis() {
	g.doc.Remove(g.axisY.Children())
	g.doc.Append(g.axisY, "path", ClassAxisDomain).SetAttr("d", "M0,0V"+svgdom.Num(g.geo.contentHeight))

	for _, e := range g.registry.snapshot() {
		y, ok := g.scale.Y.Map(e.TrackLabel)
		if !ok {
			continue
		}
		h, _ := g.scale.Y.Band(e.TrackLabel)

		tick := g.doc.Append(g.axisY, "g", ClassTick)
		g.doc.Bind(tick, e.Key)
		tick.SetAttr("transform", svgdom.Translate(0, y+h/2))
		g.doc.Append(tick, "line").SetAttr("x2", svgdom.Num(-tickSize))
		svgdom.SetAttrs(g.doc.Append(tick, "text", ClassTrackLabel),
			"x", svgdom.Num(-g.cfg.Layout.TickPadding),
			"dy", "0.32em",
			"text-anchor", "end",
			attrDisabled, "true",
		).SetText(e.TrackLabel)
	}
}

// yTick returns the Y axis tick bound to the track key.
func (g *Graph) yTick(key string) *goquery.Selection {
	return g.axisY.ChildrenMatcher(matchTick).FilterFunction(func(_ int, s *goquery.Selection) bool {
		k, ok := g.doc.Datum(s).(string)
		return ok && k == key
	})
}

// drawGrid rebuilds the vertical lines at each X tick and the horizontal
// lines between tracks.
func (g *Graph) drawGrid() {
	g.doc.Remove(g.grid.Children())
	if !g.cfg.Axis.ShowGrid {
		return
	}
	geo := g.geo

	g.axisX.ChildrenMatcher(matchTick).Each(func(_ int, tick *goquery.Selection) {
		t, ok := g.doc.Datum(tick).(time.Time)
		if !ok {
			return
		}
		x := svgdom.Num(g.scale.X.Map(t))
		svgdom.SetAttrs(g.doc.Append(g.grid, "line", ClassGridTick),
			"x1", x, "x2", x,
			"y1", "0", "y2", svgdom.Num(geo.contentHeight),
		)
	})

	rng := g.scale.Y.Range()
	for _, y := range rng[1:] {
		v := svgdom.Num(y)
		svgdom.SetAttrs(g.doc.Append(g.grid, "line", ClassGridTrack),
			"x1", "0", "x2", svgdom.Num(geo.contentWidth),
			"y1", v, "y2", v,
		)
	}
}
