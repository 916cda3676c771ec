package gantt

import (
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gantt2svg/internal/svgdom"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := parseDate(s)
	require.NoError(t, err)
	return d
}

func attr(t *testing.T, sel *goquery.Selection, name string) float64 {
	t.Helper()
	v, ok := svgdom.Float(sel, name)
	require.True(t, ok, "missing numeric attribute %s", name)
	return v
}

func contentTrack() TrackInput {
	pct := 50.0
	return TrackInput{
		Key:        "uid_1",
		TrackLabel: TrackLabel{Display: "Host"},
		Activities: []Item{
			{Key: "act_1", StartDate: "2018-02-01T00:00:00Z", EndDate: "2018-04-01T00:00:00Z"},
			{Key: "act_2", StartDate: "2018-06-01T00:00:00Z", EndDate: "2018-06-01T00:00:00Z", Style: Style{IsHashed: true}},
		},
		Tasks: []Item{
			{Key: "task_1", StartDate: "2018-03-01T00:00:00Z", EndDate: "2018-05-01T00:00:00Z", Percentage: &pct, Style: Style{IsDotted: true}},
		},
		Events: []Item{
			{Key: "evt_1", Values: []string{"2018-03-15T00:00:00Z", "2018-07-15T00:00:00Z"}, Color: "#00ff00", Shape: "square"},
		},
		Actions: []Item{
			{Key: "uid_action_1", Values: []string{"2018-09-01T00:00:00Z"}},
		},
	}
}

func TestKeyArraysLockstep(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, contentTrack())

	check := func() {
		c := tr.Config()
		assert.Equal(t, keysOf(c.Activities), c.ActivityKeys)
		assert.Equal(t, keysOf(c.Tasks), c.TaskKeys)
		assert.Equal(t, keysOf(c.Events), c.EventKeys)
		assert.Equal(t, keysOf(c.Actions), c.ActionKeys)
	}
	check()
	assert.Equal(t, []string{"act_1", "act_2"}, tr.Config().ActivityKeys)

	_, err := tr.Reflow(g, GraphData{Activities: []Item{{Key: "act_2", StartDate: lowerLimit, EndDate: lowerLimit}}})
	require.NoError(t, err)
	check()
	assert.Equal(t, []string{"act_2"}, tr.Config().ActivityKeys)
}

func TestActivityGeometry(t *testing.T) {
	g := newTestGraph(t)
	mustLoad(t, g, track("top", "Top"))
	mustLoad(t, g, contentTrack())
	x := g.Scale().X

	bar := g.Find(`.` + ClassActivity + `[aria-describedby="act_1"]`)
	require.Equal(t, 1, bar.Length())
	start, end := date(t, "2018-02-01T00:00:00Z"), date(t, "2018-04-01T00:00:00Z")
	assert.InDelta(t, x.Map(start), attr(t, bar, "x"), 0.001)
	assert.InDelta(t, x.Map(end)-x.Map(start), attr(t, bar, "width"), 0.001)
	assert.Equal(t, 41.0, attr(t, bar, "y"))
	assert.Equal(t, 41.0, attr(t, bar, "height"))

	zero := g.Find(`.` + ClassActivity + `[aria-describedby="act_2"]`)
	assert.Equal(t, 4.0, attr(t, zero, "width"))
	assert.True(t, zero.HasClass(ClassHashed))
	assert.Equal(t, "url(#"+g.hatchID()+")", zero.AttrOr("fill", ""))
}

func TestTaskGeometry(t *testing.T) {
	g := newTestGraph(t)
	mustLoad(t, g, contentTrack())

	task := g.Find(`.` + ClassTask + `[aria-describedby="task_1"]`)
	require.Equal(t, 1, task.Length())
	bar := task.ChildrenFiltered("." + ClassTaskBar)
	completion := task.ChildrenFiltered("." + ClassTaskCompletion)

	assert.Equal(t, 24.0, attr(t, bar, "height"))
	assert.Equal(t, 8.5, attr(t, bar, "y"))
	assert.InDelta(t, attr(t, bar, "width")/2, attr(t, completion, "width"), 0.001)
	assert.Equal(t, "4 2", bar.AttrOr("stroke-dasharray", ""))
	assert.True(t, bar.HasClass(ClassDotted))
}

func TestTaskBarCappedByTrackHeight(t *testing.T) {
	g := newTestGraph(t)
	in := contentTrack()
	in.Dimension = &Dimension{TrackHeight: 10}
	mustLoad(t, g, in)

	bar := g.Find("." + ClassTaskBar)
	assert.Equal(t, 10.0, attr(t, bar, "height"))
	assert.Equal(t, 0.0, attr(t, bar, "y"))
}

func TestDataPoints(t *testing.T) {
	g := newTestGraph(t)
	mustLoad(t, g, track("top", "Top"))
	mustLoad(t, g, contentTrack())

	events := g.Find("." + ClassEventGroup + " ." + ClassDataPoint)
	require.Equal(t, 2, events.Length())
	assert.True(t, events.HasClass(ClassDataPointEvent))
	want := svgdom.Translate(g.Scale().X.Map(date(t, "2018-03-15T00:00:00Z")), 41+20.5)
	assert.Equal(t, want, events.First().AttrOr("transform", ""))
	assert.Equal(t, "#00ff00", events.First().ChildrenFiltered("."+ClassDataPointShape).AttrOr("fill", ""))
	assert.Equal(t, "true", events.First().ChildrenFiltered("."+ClassDataPointSelected).AttrOr(attrHidden, ""))

	action := g.Find("." + ClassActionGroup + " ." + ClassDataPoint)
	require.Equal(t, 1, action.Length())
	assert.Equal(t, "#aa0000", action.ChildrenFiltered("."+ClassDataPointShape).AttrOr("fill", ""))
	assert.Equal(t, "Restarted", action.ChildrenFiltered("title").Text())
}

func TestReflowUpdatesMatchedItems(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, contentTrack())

	_, err := tr.Reflow(g, GraphData{
		Activities: []Item{
			{Key: "act_1", StartDate: "2018-08-01T00:00:00Z", EndDate: "2018-09-01T00:00:00Z"},
			{Key: "act_2", StartDate: "2018-06-01T00:00:00Z", EndDate: "2018-06-02T00:00:00Z"},
		},
		Events: []Item{{Key: "evt_1", Values: []string{"2018-10-01T00:00:00Z"}}},
	})
	require.NoError(t, err)

	c := tr.Config()
	require.Len(t, c.Activities, 2)
	assert.Equal(t, "2018-08-01T00:00:00Z", c.Activities[0].StartDate)
	assert.Equal(t, "2018-09-01T00:00:00Z", c.Activities[0].EndDate)
	assert.True(t, c.Activities[1].Style.IsHashed, "style is not reflowed")

	bar := g.Find(`.` + ClassActivity + `[aria-describedby="act_1"]`)
	assert.InDelta(t, g.Scale().X.Map(date(t, "2018-08-01T00:00:00Z")), attr(t, bar, "x"), 0.001)

	points := g.Find("." + ClassEventGroup + " ." + ClassDataPoint)
	assert.Equal(t, 1, points.Length())
	assert.Equal(t, "#00ff00", points.ChildrenFiltered("."+ClassDataPointShape).AttrOr("fill", ""))

	assert.Len(t, c.Tasks, 1, "kinds missing from the snapshot are untouched")
	assert.Len(t, c.Actions, 1)
}

func TestReflowNeverInserts(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, TrackInput{
		Key:        "uid_1",
		TrackLabel: TrackLabel{Display: "A"},
		Activities: []Item{{Key: "a", StartDate: lowerLimit, EndDate: upperLimit}},
	})

	_, err := tr.Reflow(g, GraphData{Activities: []Item{
		{Key: "a", StartDate: "2018-02-01T00:00:00Z", EndDate: "2018-03-01T00:00:00Z"},
		{Key: "b", StartDate: "2018-02-01T00:00:00Z", EndDate: "2018-03-01T00:00:00Z"},
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, tr.Config().ActivityKeys)
	assert.Equal(t, 1, g.Find("."+ClassActivity).Length())
}

func TestReflowRemovesAbsentKeys(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, TrackInput{
		Key:        "uid_1",
		TrackLabel: TrackLabel{Display: "A"},
		Activities: []Item{
			{Key: "a", StartDate: lowerLimit, EndDate: upperLimit},
			{Key: "b", StartDate: lowerLimit, EndDate: upperLimit},
		},
	})

	_, err := tr.Reflow(g, GraphData{Activities: []Item{{Key: "b", StartDate: lowerLimit, EndDate: upperLimit}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, tr.Config().ActivityKeys)
	assert.Equal(t, 1, g.Find("."+ClassActivity).Length())
	assert.Equal(t, "b", g.Find("."+ClassActivity).AttrOr(attrDescribedBy, ""))

	_, err = tr.Reflow(g, GraphData{Activities: []Item{{Key: "zzz", StartDate: lowerLimit, EndDate: upperLimit}}})
	require.NoError(t, err)
	assert.Empty(t, tr.Config().Activities)
	assert.Zero(t, g.Find("."+ClassActivityGroup).Length())
}

func TestReflowValidatesBeforeMutating(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, contentTrack())
	before := g.Document().String()

	_, err := tr.Reflow(g, GraphData{
		Activities: []Item{{Key: "act_1", StartDate: "2018-08-01T00:00:00Z", EndDate: "2018-09-01T00:00:00Z"}},
		Events:     []Item{{Key: "evt_1", Values: []string{"not a date"}}},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, before, g.Document().String())
	assert.Len(t, tr.Config().Activities, 2)
}

func withKind(k Kind, items []Item) GraphData {
	switch k {
	case KindActivity:
		return GraphData{Activities: items}
	case KindTask:
		return GraphData{Tasks: items}
	case KindEvent:
		return GraphData{Events: items}
	default:
		return GraphData{Actions: items}
	}
}

func kindKeys(c TrackConfig, k Kind) []string {
	switch k {
	case KindActivity:
		return c.ActivityKeys
	case KindTask:
		return c.TaskKeys
	case KindEvent:
		return c.EventKeys
	default:
		return c.ActionKeys
	}
}

func TestReflowEveryKind(t *testing.T) {
	pct, newPct := 50.0, 90.0
	bar := func(key, start, end string) Item {
		return Item{Key: key, StartDate: start, EndDate: end}
	}
	point := func(key, value string) Item {
		return Item{Key: key, Values: []string{value}}
	}

	tests := []struct {
		kind     Kind
		elements string
		stored   func(key string) Item
		incoming func(key string) Item
		check    func(t *testing.T, got Item)
	}{
		{
			kind:     KindActivity,
			elements: "." + ClassActivity,
			stored:   func(k string) Item { return bar(k, lowerLimit, "2018-02-01T00:00:00Z") },
			incoming: func(k string) Item { return bar(k, "2018-05-01T00:00:00Z", "2018-09-01T00:00:00Z") },
			check: func(t *testing.T, got Item) {
				assert.Equal(t, "2018-05-01T00:00:00Z", got.StartDate)
				assert.Equal(t, "2018-09-01T00:00:00Z", got.EndDate)
			},
		},
		{
			kind:     KindTask,
			elements: "." + ClassTask,
			stored:   func(k string) Item { return bar(k, lowerLimit, "2018-02-01T00:00:00Z") },
			incoming: func(k string) Item { return bar(k, "2018-05-01T00:00:00Z", "2018-09-01T00:00:00Z") },
			check: func(t *testing.T, got Item) {
				assert.Equal(t, "2018-05-01T00:00:00Z", got.StartDate)
				assert.Equal(t, "2018-09-01T00:00:00Z", got.EndDate)
				require.NotNil(t, got.Percentage)
				assert.Equal(t, 50.0, *got.Percentage)
			},
		},
		{
			kind:     KindEvent,
			elements: "." + ClassEventGroup + " ." + ClassDataPoint,
			stored:   func(k string) Item { return point(k, "2018-02-01T00:00:00Z") },
			incoming: func(k string) Item { return point(k, "2018-10-01T00:00:00Z") },
			check: func(t *testing.T, got Item) {
				assert.Equal(t, []string{"2018-10-01T00:00:00Z"}, got.Values)
				assert.Equal(t, "square", got.Shape)
			},
		},
		{
			kind:     KindAction,
			elements: "." + ClassActionGroup + " ." + ClassDataPoint,
			stored:   func(k string) Item { return point(k, "2018-02-01T00:00:00Z") },
			incoming: func(k string) Item { return point(k, "2018-10-01T00:00:00Z") },
			check: func(t *testing.T, got Item) {
				assert.Equal(t, []string{"2018-10-01T00:00:00Z"}, got.Values)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g, err := New(nil, GraphInput{
				Axis:         AxisInput{X: XAxisInput{LowerLimit: lowerLimit, UpperLimit: upperLimit}},
				ActionLegend: []LegendItem{{Key: "a"}, {Key: "b"}},
			})
			require.NoError(t, err)

			stored := []Item{tt.stored("a"), tt.stored("b")}
			for i := range stored {
				stored[i].Color = "#111111"
				stored[i].Label = Label{Display: "first"}
				stored[i].Style = Style{IsHashed: true}
				stored[i].Shape = "square"
				p := pct
				stored[i].Percentage = &p
			}
			data := withKind(tt.kind, stored)
			tr := mustLoad(t, g, TrackInput{
				Key:        "uid_1",
				TrackLabel: TrackLabel{Display: "Host"},
				Activities: data.Activities,
				Tasks:      data.Tasks,
				Events:     data.Events,
				Actions:    data.Actions,
			})
			require.Equal(t, 2, g.Find(tt.elements).Length())

			changed := tt.incoming("a")
			changed.Color = "#222222"
			changed.Label = Label{Display: "second"}
			changed.Style = Style{IsDotted: true}
			changed.Percentage = &newPct
			unknown := tt.incoming("zzz")

			_, err = tr.Reflow(g, withKind(tt.kind, []Item{changed, unknown}))
			require.NoError(t, err)

			c := tr.Config()
			items := GraphData{Activities: c.Activities, Tasks: c.Tasks, Events: c.Events, Actions: c.Actions}.items(tt.kind)
			require.Len(t, items, 1)
			assert.Equal(t, keysOf(items), kindKeys(c, tt.kind))
			assert.Equal(t, []string{"a"}, kindKeys(c, tt.kind))
			assert.Equal(t, 1, g.Find(tt.elements).Length())

			got := items[0]
			tt.check(t, got)
			assert.Equal(t, "#111111", got.Color)
			assert.Equal(t, "first", got.Label.Display)
			assert.Equal(t, Style{IsHashed: true}, got.Style)
			require.NotNil(t, got.Percentage)
			assert.Equal(t, 50.0, *got.Percentage)
		})
	}
}

func TestReflowTaskDates(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, TrackInput{
		Key:        "uid_1",
		TrackLabel: TrackLabel{Display: "A"},
		Tasks:      []Item{{Key: "a", StartDate: "2018-01-01T00:00:00Z", EndDate: "2018-02-01T00:00:00Z"}},
	})

	_, err := tr.Reflow(g, GraphData{Tasks: []Item{
		{Key: "a", StartDate: "2018-05-01T00:00:00Z", EndDate: "2018-09-01T00:00:00Z"},
	}})
	require.NoError(t, err)

	c := tr.Config()
	require.Len(t, c.Tasks, 1)
	assert.Equal(t, "2018-05-01T00:00:00Z", c.Tasks[0].StartDate)
	assert.Equal(t, "2018-09-01T00:00:00Z", c.Tasks[0].EndDate)

	bar := g.Find("." + ClassTaskBar)
	require.Equal(t, 1, bar.Length())
	x := g.Scale().X
	start, end := date(t, "2018-05-01T00:00:00Z"), date(t, "2018-09-01T00:00:00Z")
	assert.InDelta(t, x.Map(start), attr(t, bar, "x"), 0.001)
	assert.InDelta(t, x.Map(end)-x.Map(start), attr(t, bar, "width"), 0.001)
}

func TestReflowSkipsKindsTheTrackLacks(t *testing.T) {
	g := newTestGraph(t)
	tr := mustLoad(t, g, TrackInput{
		Key:        "uid_1",
		TrackLabel: TrackLabel{Display: "A"},
		Activities: []Item{{Key: "a", StartDate: lowerLimit, EndDate: upperLimit}},
	})
	before := tr.Config()

	_, err := tr.Reflow(g, GraphData{Tasks: []Item{{Key: "t", StartDate: lowerLimit, EndDate: upperLimit}}})
	require.NoError(t, err)

	after := tr.Config()
	assert.Equal(t, before.Tasks, after.Tasks)
	assert.Equal(t, before.TaskKeys, after.TaskKeys)
	assert.Zero(t, g.Find("."+ClassTaskGroup).Length())
	assert.Equal(t, 1, g.Find("."+ClassActivity).Length())
}

func TestReflowNotLoaded(t *testing.T) {
	g := newTestGraph(t)
	assert.ErrorIs(t, g.ReflowContent("nope", GraphData{}), ErrContentNotLoaded)
}

func TestSelectorClick(t *testing.T) {
	g := newTestGraph(t)
	mustLoad(t, g, track("a", "A"))

	var got []ClickEvent
	in := track("b", "B")
	in.OnClick = func(e ClickEvent) { got = append(got, e) }
	mustLoad(t, g, in)

	plain := g.Find(`.` + ClassTrackSelector + `[aria-describedby="a"]`)
	assert.Equal(t, "true", plain.AttrOr(attrDisabled, ""))

	sel := g.Find(`.` + ClassTrackSelector + `[aria-describedby="b"]`)
	assert.Equal(t, "false", sel.AttrOr(attrDisabled, ""))
	assert.Equal(t, "false", sel.AttrOr(attrSelected, ""))

	require.True(t, g.Click(sel))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Key)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "B", got[0].Value)
	assert.Equal(t, "true", sel.AttrOr(attrSelected, ""))

	got[0].Close()
	assert.Equal(t, "false", sel.AttrOr(attrSelected, ""))
}

func TestBarClick(t *testing.T) {
	g := newTestGraph(t)
	var got []ClickEvent
	in := contentTrack()
	in.Activities[0].OnClick = func(e ClickEvent) { got = append(got, e) }
	mustLoad(t, g, in)

	bar := g.Find(`.` + ClassActivity + `[aria-describedby="act_1"]`)
	assert.Equal(t, "false", bar.AttrOr(attrDisabled, ""))
	require.True(t, g.Click(bar))
	require.Len(t, got, 1)
	assert.Equal(t, "act_1", got[0].Key)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, "true", bar.AttrOr(attrSelected, ""))

	g.Click(bar)
	assert.Equal(t, "false", bar.AttrOr(attrSelected, ""))

	other := g.Find(`.` + ClassActivity + `[aria-describedby="act_2"]`)
	assert.Equal(t, "true", other.AttrOr(attrDisabled, ""))
}

func TestDataPointClick(t *testing.T) {
	g := newTestGraph(t)
	var got []ClickEvent
	in := contentTrack()
	in.Events[0].OnClick = func(e ClickEvent) { got = append(got, e) }
	mustLoad(t, g, in)

	second := g.Find("." + ClassEventGroup + " ." + ClassDataPoint).Eq(1)
	marker := second.ChildrenFiltered("." + ClassDataPointSelected)

	require.True(t, g.Click(second.ChildrenFiltered("."+ClassDataPointShape)))
	require.Len(t, got, 1)
	assert.Equal(t, "evt_1", got[0].Key)
	assert.Equal(t, 1, got[0].Index)
	p, ok := got[0].Value.(DataPoint)
	require.True(t, ok)
	assert.Equal(t, date(t, "2018-07-15T00:00:00Z"), p.X)
	assert.Equal(t, "Host", p.Y)
	assert.Equal(t, "false", marker.AttrOr(attrHidden, ""))

	got[0].Close()
	assert.Equal(t, "true", marker.AttrOr(attrHidden, ""))
}

func TestDataPointClickPassThrough(t *testing.T) {
	g, err := New(nil, GraphInput{
		Axis:             AxisInput{X: XAxisInput{LowerLimit: lowerLimit, UpperLimit: upperLimit}},
		ClickPassThrough: true,
	})
	require.NoError(t, err)

	var trackClicks, pointClicks int
	in := TrackInput{
		Key:        "uid_1",
		TrackLabel: TrackLabel{Display: "A"},
		OnClick:    func(ClickEvent) { trackClicks++ },
		Events: []Item{
			{Key: "through", Values: []string{"2018-03-01T00:00:00Z"}, OnClick: func(ClickEvent) { pointClicks++ }},
			{Key: "own", Values: []string{"2018-04-01T00:00:00Z"}, ClickPassThrough: new(bool), OnClick: func(ClickEvent) { pointClicks++ }},
		},
	}
	mustLoad(t, g, in)

	through := g.Find(`.` + ClassDataPoint + `[aria-describedby="through"]`)
	assert.True(t, through.HasClass(ClassDataPointPassThrough))
	g.Click(through)
	assert.Equal(t, 1, trackClicks)
	assert.Zero(t, pointClicks)
	assert.Equal(t, "true", g.Find("."+ClassTrackSelector).AttrOr(attrSelected, ""))

	g.Click(g.Find(`.` + ClassDataPoint + `[aria-describedby="own"]`))
	assert.Equal(t, 1, trackClicks)
	assert.Equal(t, 1, pointClicks)
}

func TestConfigIsCopied(t *testing.T) {
	g := newTestGraph(t)
	in := contentTrack()
	tr := mustLoad(t, g, in)

	in.Activities[0].StartDate = "2018-11-01T00:00:00Z"
	in.Events[0].Values[0] = "2018-11-01T00:00:00Z"
	c := tr.Config()
	assert.Equal(t, "2018-02-01T00:00:00Z", c.Activities[0].StartDate)
	assert.Equal(t, "2018-03-15T00:00:00Z", c.Events[0].Values[0])

	c.Tasks[0].Key = "changed"
	assert.Equal(t, "task_1", tr.Config().Tasks[0].Key)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "activities", KindActivity.String())
	assert.Equal(t, "actions", KindAction.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
