package gantt

import (
	"github.com/PuerkitoBio/goquery"

	"gantt2svg/internal/svgdom"
)

// activityContent draws activities as bars spanning the full track height.
type activityContent struct{}

func (activityContent) kind() Kind { return KindActivity }

func (activityContent) items(c *TrackConfig) *[]Item   { return &c.Activities }
func (activityContent) keys(c *TrackConfig) *[]string { return &c.ActivityKeys }

func (activityContent) validate(_ *Graph, items []Item) error {
	return validateKeys(items, validateRange)
}

func (activityContent) validateUpdate(_ *Graph, incoming Item) error {
	return validateRange(incoming)
}

func (activityContent) update(existing *Item, incoming Item) {
	existing.StartDate = incoming.StartDate
	existing.EndDate = incoming.EndDate
}

func (a activityContent) render(g *Graph, t *Track, items []Item) {
	group := t.kindGroup(g, matchActivityGroup, ClassActivityGroup)
	j := svgdom.JoinKeyed(g.doc, group, matchActivity, newBarData(items), barKey)
	g.doc.Remove(j.Exit)

	for _, e := range j.Enter {
		sel := g.doc.Append(group, "rect", ClassActivity, ClassActivityBar)
		g.doc.Bind(sel, e.Datum)
		g.styleActivity(sel, e.Datum)
	}
	for _, e := range j.Update {
		g.styleActivity(e.Sel, e.Datum)
	}
	a.translate(g, t)
}

func (g *Graph) styleActivity(sel *goquery.Selection, d barDatum) {
	g.decorateBar(sel, d)
	styleClasses(sel, d.item.Style)
	sel.SetAttr("fill", g.fill(d.item.Color, g.cfg.Colors.Activity, d.item.Style))
	strokeBar(sel, firstNonEmpty(d.item.Color, g.cfg.Colors.Activity), d.item.Style)
	g.title(sel, d.item.Label.Display)
}

func (activityContent) translate(g *Graph, t *Track) {
	y, h, ok := t.bounds(g)
	if !ok {
		return
	}
	group := t.container.ChildrenMatcher(matchActivityGroup)
	group.ChildrenMatcher(matchActivity).Each(func(_ int, sel *goquery.Selection) {
		d, ok := g.doc.Datum(sel).(barDatum)
		if !ok {
			return
		}
		x, w := g.barExtent(d)
		svgdom.SetAttrs(sel,
			"x", svgdom.Num(x),
			"y", svgdom.Num(y),
			"width", svgdom.Num(w),
			"height", svgdom.Num(h),
		)
	})
}

func (activityContent) remove(g *Graph, t *Track) {
	t.removeGroup(g, matchActivityGroup)
}
