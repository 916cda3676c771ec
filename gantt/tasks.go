package gantt

import (
	"github.com/PuerkitoBio/goquery"

	"gantt2svg/internal/svgdom"
)

// taskContent draws tasks as bars centered in the track, with an optional
// completion overlay.
type taskContent struct{}

func (taskContent) kind() Kind { return KindTask }

func (taskContent) items(c *TrackConfig) *[]Item   { return &c.Tasks }
func (taskContent) keys(c *TrackConfig) *[]string { return &c.TaskKeys }

func (taskContent) validate(_ *Graph, items []Item) error {
	return validateKeys(items, validateRange)
}

func (taskContent) validateUpdate(_ *Graph, incoming Item) error {
	return validateRange(incoming)
}

func (taskContent) update(existing *Item, incoming Item) {
	existing.StartDate = incoming.StartDate
	existing.EndDate = incoming.EndDate
}

func (tc taskContent) render(g *Graph, t *Track, items []Item) {
	group := t.kindGroup(g, matchTaskGroup, ClassTaskGroup)
	j := svgdom.JoinKeyed(g.doc, group, matchTask, newBarData(items), barKey)
	g.doc.Remove(j.Exit)

	for _, e := range j.Enter {
		sel := g.doc.Append(group, "g", ClassTask)
		g.doc.Bind(sel, e.Datum)
		g.doc.Append(sel, "rect", ClassTaskBar)
		g.styleTask(sel, e.Datum)
	}
	for _, e := range j.Update {
		g.styleTask(e.Sel, e.Datum)
	}
	tc.translate(g, t)
}

func (g *Graph) styleTask(sel *goquery.Selection, d barDatum) {
	g.decorateBar(sel, d)
	bar := sel.ChildrenFiltered("." + ClassTaskBar)
	styleClasses(bar, d.item.Style)
	bar.SetAttr("fill", g.fill(d.item.Color, g.cfg.Colors.Task, d.item.Style))
	strokeBar(bar, firstNonEmpty(d.item.Color, g.cfg.Colors.Task), d.item.Style)

	completion := sel.ChildrenFiltered("." + ClassTaskCompletion)
	switch {
	case d.item.Percentage == nil:
		g.doc.Remove(completion)
	case completion.Length() == 0:
		completion = g.doc.Append(sel, "rect", ClassTaskCompletion)
		fallthrough
	default:
		completion.SetAttr("fill", g.cfg.Colors.TaskCompletion)
	}
	g.title(sel, d.item.Label.Display)
}

// completionRatio clamps a percentage to [0, 1].
func completionRatio(p *float64) float64 {
	if p == nil {
		return 0
	}
	return min(max(*p, 0), 100) / 100
}

func (taskContent) translate(g *Graph, t *Track) {
	y, h, ok := t.bounds(g)
	if !ok {
		return
	}
	barHeight := min(g.cfg.Track.TaskBarHeight, h)
	barY := y + (h-barHeight)/2

	group := t.container.ChildrenMatcher(matchTaskGroup)
	group.ChildrenMatcher(matchTask).Each(func(_ int, sel *goquery.Selection) {
		d, ok := g.doc.Datum(sel).(barDatum)
		if !ok {
			return
		}
		x, w := g.barExtent(d)
		svgdom.SetAttrs(sel.ChildrenFiltered("."+ClassTaskBar),
			"x", svgdom.Num(x),
			"y", svgdom.Num(barY),
			"width", svgdom.Num(w),
			"height", svgdom.Num(barHeight),
		)
		svgdom.SetAttrs(sel.ChildrenFiltered("."+ClassTaskCompletion),
			"x", svgdom.Num(x),
			"y", svgdom.Num(barY),
			"width", svgdom.Num(w*completionRatio(d.item.Percentage)),
			"height", svgdom.Num(barHeight),
		)
	})
}

func (taskContent) remove(g *Graph, t *Track) {
	t.removeGroup(g, matchTaskGroup)
}
