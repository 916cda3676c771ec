package gantt

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// actionContent draws one marker per action value. Label, color and shape
// come from the chart's action legend entry matching the action key.
type actionContent struct{}

func (actionContent) kind() Kind { return KindAction }

func (actionContent) items(c *TrackConfig) *[]Item   { return &c.Actions }
func (actionContent) keys(c *TrackConfig) *[]string { return &c.ActionKeys }

func (a actionContent) validate(g *Graph, items []Item) error {
	return validateKeys(items, func(it Item) error {
		return a.validateUpdate(g, it)
	})
}

func (actionContent) validateUpdate(g *Graph, incoming Item) error {
	if _, ok := g.legendItem(incoming.Key); !ok {
		return fmt.Errorf("%w: %s", ErrActionLegendMissing, incoming.Key)
	}
	return validateValues(incoming)
}

func (actionContent) update(existing *Item, incoming Item) {
	existing.Values = append([]string(nil), incoming.Values...)
}

func (a actionContent) render(g *Graph, t *Track, items []Item) {
	points := itemPoints(items, t.config.TrackLabel.Display, func(it Item) DataPoint {
		legend, _ := g.legendItem(it.Key)
		return DataPoint{
			Label:            legend.Label,
			Color:            firstNonEmpty(legend.Color, g.cfg.Colors.DataPoint),
			Shape:            g.markerShape(legend.Shape),
			ClickPassThrough: g.clickPassThrough(it),
		}
	})
	g.drawDataPoints(t.container, matchActionGroup, ClassActionGroup, points, func(sel *goquery.Selection, _ DataPoint) {
		sel.AddClass(ClassDataPointAction)
	})
	a.translate(g, t)
}

func (actionContent) translate(g *Graph, t *Track) {
	g.translatePoints(t.container.ChildrenMatcher(matchActionGroup))
}

func (actionContent) remove(g *Graph, t *Track) {
	t.removeGroup(g, matchActionGroup)
}
