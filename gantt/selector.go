package gantt

import (
	"github.com/PuerkitoBio/goquery"

	"gantt2svg/internal/svgdom"
)

// loadSelector draws the clickable background of the track below all of its
// content.
func (t *Track) loadSelector(g *Graph) {
	sel := g.doc.Prepend(t.container, "rect", ClassTrackSelector)
	svgdom.SetAttrs(sel,
		attrDescribedBy, t.config.Key,
		attrSelected, "false",
		attrDisabled, svgdom.Bool(t.config.OnClick == nil),
	)
	if t.config.OnClick != nil {
		sel.AddClass(ClassClickable)
	}
	g.doc.On(sel, eventClick, func(target *goquery.Selection) {
		t.selectorActionHandler(g, target)
	})
	t.translateSelector(g)
}

// selectorActionHandler toggles the selected state of the selector and
// calls the track's callback.
func (t *Track) selectorActionHandler(g *Graph, target *goquery.Selection) {
	if t.config.OnClick == nil {
		return
	}
	selected := target.AttrOr(attrSelected, "false") == "true"
	target.SetAttr(attrSelected, svgdom.Bool(!selected))
	t.config.OnClick(ClickEvent{
		Close:  func() { target.SetAttr(attrSelected, "false") },
		Key:    t.config.Key,
		Index:  g.registry.index(t.config.Key),
		Value:  t.config.TrackLabel.Display,
		Target: target,
	})
}

func (t *Track) translateSelector(g *Graph) {
	sel := t.container.ChildrenMatcher(matchTrackSelector)
	y, h, ok := t.bounds(g)
	if sel.Length() == 0 || !ok {
		return
	}
	pad := g.cfg.Track.SelectorPadding
	svgdom.SetAttrs(sel,
		"x", svgdom.Num(0),
		"y", svgdom.Num(y+pad),
		"width", svgdom.Num(g.geo.contentWidth),
		"height", svgdom.Num(max(0, h-2*pad)),
	)
}

func (t *Track) unloadSelector(g *Graph) {
	g.doc.Remove(t.container.ChildrenMatcher(matchTrackSelector))
}
