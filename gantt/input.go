package gantt

import (
	"slices"

	"github.com/PuerkitoBio/goquery"
)

// ClickEvent is passed to consumer click callbacks.
type ClickEvent struct {
	// Close clears the selected state set by the click. Consumers call it
	// when their own follow-up (a popup, a panel) is dismissed.
	Close  func()
	Key    string
	Index  int
	Value  any
	Target *goquery.Selection
}

// ClickHandler is a consumer click callback.
type ClickHandler func(ClickEvent)

type Label struct {
	Display string `json:"display"`
}

type TrackLabel struct {
	Display string `json:"display"`

	// OnClick is called with Display when the Y axis label is clicked.
	OnClick func(label string) `json:"-"`
}

type Dimension struct {
	TrackHeight float64 `json:"trackHeight,omitempty"`
}

type Style struct {
	IsHashed bool `json:"isHashed,omitempty"`
	IsDotted bool `json:"isDotted,omitempty"`
}

// Item is one activity, task, event or action. Activities and tasks use
// StartDate/EndDate, events and actions use Values.
type Item struct {
	Key              string       `json:"key"`
	Label            Label        `json:"label"`
	StartDate        string       `json:"startDate,omitempty"`
	EndDate          string       `json:"endDate,omitempty"`
	Values           []string     `json:"values,omitempty"`
	Color            string       `json:"color,omitempty"`
	Shape            string       `json:"shape,omitempty"`
	Percentage       *float64     `json:"percentage,omitempty"`
	Style            Style        `json:"style"`
	ClickPassThrough *bool        `json:"clickPassThrough,omitempty"`
	OnClick          ClickHandler `json:"-"`
}

func (it Item) clone() Item {
	c := it
	c.Values = slices.Clone(it.Values)
	if it.Percentage != nil {
		p := *it.Percentage
		c.Percentage = &p
	}
	if it.ClickPassThrough != nil {
		b := *it.ClickPassThrough
		c.ClickPassThrough = &b
	}
	return c
}

// TrackInput describes one track as supplied by the consumer.
type TrackInput struct {
	Key         string     `json:"key"`
	TrackLabel  TrackLabel `json:"trackLabel"`
	Dimension   *Dimension `json:"dimension,omitempty"`
	LoadAtIndex *int       `json:"loadAtIndex,omitempty"`
	Activities  []Item     `json:"activities,omitempty"`
	Tasks       []Item     `json:"tasks,omitempty"`
	Events      []Item     `json:"events,omitempty"`
	Actions     []Item     `json:"actions,omitempty"`

	// OnClick is called when the track selector is clicked.
	OnClick ClickHandler `json:"-"`
}

// TrackConfig is the track's own copy of its input. Every content slice has a
// key slice of the same length holding the key of the item at each index.
type TrackConfig struct {
	Key         string
	TrackLabel  TrackLabel
	Dimension   Dimension
	LoadAtIndex *int
	OnClick     ClickHandler

	Activities   []Item
	ActivityKeys []string
	Tasks        []Item
	TaskKeys     []string
	Events       []Item
	EventKeys    []string
	Actions      []Item
	ActionKeys   []string
}

func newTrackConfig(in TrackInput) TrackConfig {
	c := TrackConfig{
		Key:        in.Key,
		TrackLabel: in.TrackLabel,
		OnClick:    in.OnClick,
		Activities: cloneItems(in.Activities),
		Tasks:      cloneItems(in.Tasks),
		Events:     cloneItems(in.Events),
		Actions:    cloneItems(in.Actions),
	}
	if in.Dimension != nil {
		c.Dimension = *in.Dimension
	}
	if in.LoadAtIndex != nil {
		i := *in.LoadAtIndex
		c.LoadAtIndex = &i
	}
	c.ActivityKeys = keysOf(c.Activities)
	c.TaskKeys = keysOf(c.Tasks)
	c.EventKeys = keysOf(c.Events)
	c.ActionKeys = keysOf(c.Actions)
	return c
}

func (c TrackConfig) clone() TrackConfig {
	out := c
	if c.LoadAtIndex != nil {
		i := *c.LoadAtIndex
		out.LoadAtIndex = &i
	}
	out.Activities, out.ActivityKeys = cloneItems(c.Activities), slices.Clone(c.ActivityKeys)
	out.Tasks, out.TaskKeys = cloneItems(c.Tasks), slices.Clone(c.TaskKeys)
	out.Events, out.EventKeys = cloneItems(c.Events), slices.Clone(c.EventKeys)
	out.Actions, out.ActionKeys = cloneItems(c.Actions), slices.Clone(c.ActionKeys)
	return out
}

// GraphData is a reflow snapshot. Kinds left empty are not touched.
type GraphData struct {
	Activities []Item `json:"activities,omitempty"`
	Tasks      []Item `json:"tasks,omitempty"`
	Events     []Item `json:"events,omitempty"`
	Actions    []Item `json:"actions,omitempty"`
}

func (d GraphData) items(k Kind) []Item {
	switch k {
	case KindActivity:
		return d.Activities
	case KindTask:
		return d.Tasks
	case KindEvent:
		return d.Events
	default:
		return d.Actions
	}
}

// LegendItem describes an action type. Actions reference it by Key.
type LegendItem struct {
	Key   string `json:"key"`
	Label Label  `json:"label"`
	Color string `json:"color,omitempty"`
	Shape string `json:"shape,omitempty"`
}

type XAxisInput struct {
	LowerLimit string `json:"lowerLimit"`
	UpperLimit string `json:"upperLimit"`
	Label      string `json:"label"`
}

type AxisInput struct {
	X XAxisInput `json:"x"`
}

// GraphInput is the chart-level input shared by all tracks.
type GraphInput struct {
	Axis             AxisInput    `json:"axis"`
	ActionLegend     []LegendItem `json:"actionLegend,omitempty"`
	ClickPassThrough bool         `json:"clickPassThrough,omitempty"`
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}

func keysOf(items []Item) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	return keys
}
