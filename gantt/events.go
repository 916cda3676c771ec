package gantt

import "github.com/PuerkitoBio/goquery"

// eventContent draws one marker per event value.
type eventContent struct{}

func (eventContent) kind() Kind { return KindEvent }

func (eventContent) items(c *TrackConfig) *[]Item   { return &c.Events }
func (eventContent) keys(c *TrackConfig) *[]string { return &c.EventKeys }

func (eventContent) validate(_ *Graph, items []Item) error {
	return validateKeys(items, validateValues)
}

func (eventContent) validateUpdate(_ *Graph, incoming Item) error {
	return validateValues(incoming)
}

func (eventContent) update(existing *Item, incoming Item) {
	existing.Values = append([]string(nil), incoming.Values...)
}

func (e eventContent) render(g *Graph, t *Track, items []Item) {
	points := itemPoints(items, t.config.TrackLabel.Display, func(it Item) DataPoint {
		return DataPoint{
			Label:            it.Label,
			Color:            firstNonEmpty(it.Color, g.cfg.Colors.DataPoint),
			Shape:            g.markerShape(it.Shape),
			ClickPassThrough: g.clickPassThrough(it),
		}
	})
	g.drawDataPoints(t.container, matchEventGroup, ClassEventGroup, points, func(sel *goquery.Selection, _ DataPoint) {
		sel.AddClass(ClassDataPointEvent)
	})
	e.translate(g, t)
}

func (eventContent) translate(g *Graph, t *Track) {
	g.translatePoints(t.container.ChildrenMatcher(matchEventGroup))
}

func (eventContent) remove(g *Graph, t *Track) {
	t.removeGroup(g, matchEventGroup)
}
