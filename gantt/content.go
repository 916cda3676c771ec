package gantt

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Kind is one of the four content kinds a track can hold.
type Kind int

const (
	KindActivity Kind = iota
	KindTask
	KindEvent
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindActivity:
		return "activities"
	case KindTask:
		return "tasks"
	case KindEvent:
		return "events"
	case KindAction:
		return "actions"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// contentKind is the per-kind behavior a track delegates to. The set is
// closed: contentKinds lists every implementation.
type contentKind interface {
	kind() Kind

	// items and keys return the track config fields of the kind.
	items(c *TrackConfig) *[]Item
	keys(c *TrackConfig) *[]string

	// validate checks a full list of items before anything is mutated.
	validate(g *Graph, items []Item) error
	// validateUpdate checks one incoming reflow item.
	validateUpdate(g *Graph, incoming Item) error
	// update copies the reflowable fields of incoming onto existing.
	update(existing *Item, incoming Item)

	// render joins items against the track's group of this kind.
	render(g *Graph, t *Track, items []Item)
	// translate repositions the rendered elements from the current scale.
	translate(g *Graph, t *Track)
	// remove deletes the kind's group from the track.
	remove(g *Graph, t *Track)
}

var contentKinds = [...]contentKind{
	activityContent{},
	taskContent{},
	eventContent{},
	actionContent{},
}

// validateKeys checks that every item has a key and no key repeats. check
// runs the kind specific validation of each item.
func validateKeys(items []Item, check func(Item) error) error {
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.Key == "" {
			return fmt.Errorf("[%d]: %w", i, ErrMissingKey)
		}
		if seen[it.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateContentKey, it.Key)
		}
		seen[it.Key] = true
		if err := check(it); err != nil {
			return fmt.Errorf("%s: %w", it.Key, err)
		}
	}
	return nil
}

func validateRange(it Item) error {
	_, _, err := parseRange(it.StartDate, it.EndDate)
	return err
}

func validateValues(it Item) error {
	_, err := parseValues(it.Values)
	return err
}

// kindGroup returns the track's group for a kind, creating it on first use.
func (t *Track) kindGroup(g *Graph, m goquery.Matcher, class string) *goquery.Selection {
	sel := t.container.ChildrenMatcher(m)
	if sel.Length() > 0 {
		return sel.First()
	}
	return g.doc.Append(t.container, "g", class)
}

func (t *Track) removeGroup(g *Graph, m goquery.Matcher) {
	g.doc.Remove(t.container.ChildrenMatcher(m))
}
