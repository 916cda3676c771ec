package gantt

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Track is one horizontal lane of a graph. A track is created from its
// input, loaded into exactly one graph, and may be unloaded again.
type Track struct {
	config    TrackConfig
	container *goquery.Selection
}

// NewTrack copies in. Later changes to in do not affect the track.
func NewTrack(in TrackInput) *Track {
	return &Track{config: newTrackConfig(in)}
}

func (t *Track) Key() string { return t.config.Key }

// Config returns a copy of the track's current content.
func (t *Track) Config() TrackConfig { return t.config.clone() }

// Loaded reports whether the track is currently rendered in a graph.
func (t *Track) Loaded() bool { return t.container != nil }

// bounds returns the top offset and height of the track in content
// coordinates.
func (t *Track) bounds(g *Graph) (float64, float64, bool) {
	y, ok := g.scale.Y.Map(t.config.TrackLabel.Display)
	if !ok {
		return 0, 0, false
	}
	h, _ := g.scale.Y.Band(t.config.TrackLabel.Display)
	return y, h, true
}

// Load validates the track against g, registers it and renders its selector
// and content. Nothing is changed when validation fails.
func (t *Track) Load(g *Graph) (*Track, error) {
	if err := t.validateLoad(g); err != nil {
		return t, err
	}
	c := &t.config
	index, err := prepareLoadAtIndex(c.LoadAtIndex, g.registry.len())
	if err != nil {
		return t, err
	}
	if c.Dimension.TrackHeight == 0 {
		c.Dimension.TrackHeight = g.cfg.Track.DefaultHeight
	}

	t.container = g.doc.Append(g.container, "g", ClassTrack)
	t.container.SetAttr(attrDescribedBy, trackContainerPrefix+c.Key)
	g.insertTrack(TrackListEntry{
		Key:         c.Key,
		TrackHeight: c.Dimension.TrackHeight,
		TrackLabel:  c.TrackLabel.Display,
	}, index)
	g.content[c.Key] = t

	t.loadSelector(g)
	for _, k := range contentKinds {
		if items := *k.items(c); len(items) > 0 {
			k.render(g, t, items)
		}
	}
	g.resize()

	Logger().Debug("track loaded",
		"key", c.Key,
		"index", g.registry.index(c.Key),
		"activities", len(c.Activities),
		"tasks", len(c.Tasks),
		"events", len(c.Events),
		"actions", len(c.Actions),
	)
	return t, nil
}

func (t *Track) validateLoad(g *Graph) error {
	c := &t.config
	if c.Key == "" {
		return ErrMissingKey
	}
	if g.registry.has(c.Key) {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, c.Key)
	}
	if strings.TrimSpace(c.TrackLabel.Display) == "" {
		return fmt.Errorf("%s: %w", c.Key, ErrMissingTrackLabel)
	}
	if g.labelInUse(c.TrackLabel.Display) {
		return fmt.Errorf("%s: %w: %q", c.Key, ErrDuplicateTrackLabel, c.TrackLabel.Display)
	}
	if c.Dimension.TrackHeight < 0 {
		return fmt.Errorf("%s: %w: %v", c.Key, ErrInvalidTrackHeight, c.Dimension.TrackHeight)
	}
	for _, k := range contentKinds {
		if err := k.validate(g, *k.items(c)); err != nil {
			return fmt.Errorf("%s %s: %w", c.Key, k.kind(), err)
		}
	}
	return nil
}

// Unload removes the track's content, selector and container, drops it from
// the registry and resets its config.
func (t *Track) Unload(g *Graph) (*Track, error) {
	key := t.config.Key
	if !t.Loaded() || !g.registry.has(key) {
		return t, fmt.Errorf("%w: %s", ErrContentNotLoaded, key)
	}

	g.removeTrack(key)
	delete(g.content, key)
	t.unloadSelector(g)
	for _, k := range contentKinds {
		if len(*k.items(&t.config)) > 0 {
			k.remove(g, t)
		}
	}
	g.doc.Remove(t.container)
	t.container = nil
	t.config = TrackConfig{}
	g.resize()

	Logger().Debug("track unloaded", "key", key)
	return t, nil
}

// Resize recomputes the graph's scale and repositions the selector and every
// populated content kind from it.
func (t *Track) Resize(g *Graph) *Track {
	if !t.Loaded() {
		return t
	}
	g.recomputeScale()
	t.translateSelector(g)
	for _, k := range contentKinds {
		if len(*k.items(&t.config)) > 0 {
			k.translate(g, t)
		}
	}
	return t
}

// Reflow reconciles the track with data. For each kind present in data,
// existing items whose key appears in data take the new dates or values and
// existing items whose key is absent are removed. Keys the track does not
// hold are ignored. Kinds empty in either data or the track are not touched.
func (t *Track) Reflow(g *Graph, data GraphData) (*Track, error) {
	if !t.Loaded() {
		return t, fmt.Errorf("%w: %s", ErrContentNotLoaded, t.config.Key)
	}

	c := &t.config
	for _, k := range contentKinds {
		incoming := data.items(k.kind())
		existing := keySet(*k.keys(c))
		for i, it := range incoming {
			if it.Key == "" {
				return t, fmt.Errorf("%s %s[%d]: %w", c.Key, k.kind(), i, ErrMissingKey)
			}
			if !existing[it.Key] {
				continue
			}
			if err := k.validateUpdate(g, it); err != nil {
				return t, fmt.Errorf("%s %s %s: %w", c.Key, k.kind(), it.Key, err)
			}
		}
	}

	for _, k := range contentKinds {
		incoming := data.items(k.kind())
		items := k.items(c)
		if len(incoming) == 0 || len(*items) == 0 {
			continue
		}
		byKey := make(map[string]Item, len(incoming))
		for _, it := range incoming {
			byKey[it.Key] = it
		}

		kept := make([]Item, 0, len(*items))
		for _, it := range *items {
			in, ok := byKey[it.Key]
			if !ok {
				continue
			}
			k.update(&it, in)
			kept = append(kept, it)
		}
		*items = kept
		*k.keys(c) = keysOf(kept)

		if len(kept) == 0 {
			k.remove(g, t)
		} else {
			k.render(g, t, kept)
		}
		Logger().Debug("track reflowed", "key", c.Key, "kind", k.kind(), "items", len(kept))
	}
	return t.Resize(g), nil
}

// Redraw re-attaches the click handler of the track's Y axis label.
func (t *Track) Redraw(g *Graph) *Track {
	if !t.Loaded() || t.config.TrackLabel.OnClick == nil {
		return t
	}
	text := g.yTick(t.config.Key).ChildrenFiltered("text")
	if text.Length() == 0 {
		return t
	}
	text.AddClass(ClassClickable).SetAttr(attrDisabled, "false")

	onClick, label := t.config.TrackLabel.OnClick, t.config.TrackLabel.Display
	g.doc.On(text, eventClick, func(*goquery.Selection) {
		onClick(label)
	})
	return t
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
