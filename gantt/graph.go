// Package gantt renders Gantt charts as SVG documents and keeps them in sync
// with incremental content changes.
//
// A Graph owns the document, the shared X/Y scales and the ordered track
// registry. Each Track owns one lane of heterogeneous content (activities,
// tasks, events, actions) and moves through load, resize, reflow, redraw and
// unload against its Graph. A Graph is not safe for concurrent use.
package gantt

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"gantt2svg/config"
	"gantt2svg/internal/scale"
	"gantt2svg/internal/svgdom"
	"gantt2svg/internal/textwidth"
)

// Scale holds the shared coordinate system of a graph.
type Scale struct {
	X *scale.Time
	Y *scale.Ordinal
}

// Domain is the Y axis domain in track units.
type Domain struct {
	LowerLimit float64
	UpperLimit float64
}

// geometry is the pixel layout derived from the config and the registry.
type geometry struct {
	canvasWidth   float64
	canvasHeight  float64
	originX       float64
	originY       float64
	contentWidth  float64
	contentHeight float64
	yAxisWidth    float64
}

type graphConfig struct {
	xLower           time.Time
	xUpper           time.Time
	xLabel           string
	clickPassThrough bool
	actionLegend     []LegendItem
}

// Graph is a Gantt chart: the chart state shared by all of its tracks.
type Graph struct {
	id     string
	cfg    *config.Config
	config graphConfig
	scale  Scale
	geo    geometry
	width  float64

	registry trackList
	content  map[string]*Track
	measurer *textwidth.Measurer

	doc       *svgdom.Document
	svg       *goquery.Selection
	defs      *goquery.Selection
	clipRect  *goquery.Selection
	bg        *goquery.Selection
	grid      *goquery.Selection
	axisX     *goquery.Selection
	axisY     *goquery.Selection
	axisLabel *goquery.Selection
	container *goquery.Selection
}

// New validates the chart-level input and creates an empty graph. A nil cfg
// uses config.Default.
func New(cfg *config.Config, in GraphInput) (*Graph, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	gc, err := newGraphConfig(in)
	if err != nil {
		return nil, err
	}

	measurer, err := textwidth.New(cfg.Font.Size)
	if err != nil {
		Logger().Warn("falling back to estimated label widths", "error", err)
	}

	g := &Graph{
		id:       uuid.NewString(),
		cfg:      cfg,
		config:   gc,
		width:    cfg.Layout.Width,
		content:  make(map[string]*Track),
		measurer: measurer,
		doc:      svgdom.New(),
	}
	g.recomputeScale()
	g.createCanvas()
	g.translateGraph()

	Logger().Debug("graph created", "id", g.id, "lowerLimit", gc.xLower, "upperLimit", gc.xUpper)
	return g, nil
}

func newGraphConfig(in GraphInput) (graphConfig, error) {
	lower, err := parseDate(in.Axis.X.LowerLimit)
	if err != nil {
		return graphConfig{}, fmt.Errorf("%w: x.lowerLimit: %w", ErrInvalidAxis, err)
	}
	upper, err := parseDate(in.Axis.X.UpperLimit)
	if err != nil {
		return graphConfig{}, fmt.Errorf("%w: x.upperLimit: %w", ErrInvalidAxis, err)
	}
	if !lower.Before(upper) {
		return graphConfig{}, fmt.Errorf("%w: x.lowerLimit must be before x.upperLimit", ErrInvalidAxis)
	}

	seen := make(map[string]bool, len(in.ActionLegend))
	legend := make([]LegendItem, len(in.ActionLegend))
	for i, item := range in.ActionLegend {
		if item.Key == "" {
			return graphConfig{}, fmt.Errorf("actionLegend[%d]: %w", i, ErrMissingKey)
		}
		if seen[item.Key] {
			return graphConfig{}, fmt.Errorf("actionLegend: %w: %s", ErrDuplicateContentKey, item.Key)
		}
		seen[item.Key] = true
		legend[i] = item
	}

	return graphConfig{
		xLower:           lower,
		xUpper:           upper,
		xLabel:           in.Axis.X.Label,
		clickPassThrough: in.ClickPassThrough,
		actionLegend:     legend,
	}, nil
}

// LoadContent creates a track from in and loads it.
func (g *Graph) LoadContent(in TrackInput) (*Track, error) {
	return NewTrack(in).Load(g)
}

// UnloadContent unloads the track loaded under key.
func (g *Graph) UnloadContent(key string) error {
	t, ok := g.content[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContentNotLoaded, key)
	}
	_, err := t.Unload(g)
	return err
}

// ReflowContent reconciles the track loaded under key with data.
func (g *Graph) ReflowContent(key string, data GraphData) error {
	t, ok := g.content[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrContentNotLoaded, key)
	}
	_, err := t.Reflow(g, data)
	return err
}

// Resize sets the canvas width and repositions everything.
func (g *Graph) Resize(width float64) {
	if width > 0 {
		g.width = width
	}
	g.resize()
}

// resize recomputes the scale, the chart frame and every track, then
// re-attaches the Y tick handlers that rebuilding the axis dropped.
func (g *Graph) resize() {
	g.recomputeScale()
	g.translateGraph()
	parent := g.container.Get(0)
	for _, key := range g.registry.keys() {
		t, ok := g.content[key]
		if !ok {
			continue
		}
		// Keep container order equal to stacking order.
		n := t.container.Get(0)
		parent.RemoveChild(n)
		parent.AppendChild(n)
		t.Resize(g)
		t.Redraw(g)
	}
}

// Destroy unloads every track and empties the document.
func (g *Graph) Destroy() {
	for _, key := range g.registry.keys() {
		if t, ok := g.content[key]; ok {
			if _, err := t.Unload(g); err != nil {
				Logger().Warn("unload during destroy failed", "key", key, "error", err)
			}
		}
	}
	g.doc.Remove(g.svg.Children())
	Logger().Debug("graph destroyed", "id", g.id)
}

// insertTrack adds a registry entry at index and rescales.
func (g *Graph) insertTrack(entry TrackListEntry, index int) {
	g.registry.insert(entry, index)
	g.recomputeScale()
	Logger().Debug("track registered", "key", entry.Key, "index", g.registry.index(entry.Key), "trackCount", g.registry.len())
}

// removeTrack drops the registry entry for key and rescales.
func (g *Graph) removeTrack(key string) bool {
	if !g.registry.remove(key) {
		return false
	}
	g.recomputeScale()
	Logger().Debug("track unregistered", "key", key, "trackCount", g.registry.len())
	return true
}

// recomputeScale derives the layout and both scales from the registry and
// the canvas width.
func (g *Graph) recomputeScale() {
	g.geo = g.computeGeometry()
	x := scale.NewTime(g.config.xLower, g.config.xUpper, 0, g.geo.contentWidth, g.cfg.Axis.Clamp)
	if g.cfg.Axis.Nice {
		x.Nice(g.cfg.Axis.TickCount)
	}
	g.scale.X = x
	g.scale.Y = scale.NewOrdinal(g.registry.labels(), g.registry.heights())
}

func (g *Graph) computeGeometry() geometry {
	l := g.cfg.Layout
	labelWidth := 0.0
	for _, label := range g.registry.labels() {
		labelWidth = max(labelWidth, g.labelWidth(label))
	}
	geo := geometry{
		canvasWidth: g.width,
		yAxisWidth:  max(l.MinYAxisWidth, labelWidth+2*l.TickPadding),
	}
	geo.originX = l.PaddingLeft + geo.yAxisWidth
	geo.originY = l.PaddingTop + l.XAxisHeight
	geo.contentWidth = max(0, geo.canvasWidth-geo.originX-l.PaddingRight)
	for _, h := range g.registry.heights() {
		geo.contentHeight += h
	}
	geo.canvasHeight = geo.originY + geo.contentHeight + l.PaddingBottom
	return geo
}

func (g *Graph) labelWidth(s string) float64 {
	if g.measurer == nil {
		return textwidth.Estimate(s, g.cfg.Font.Size)
	}
	return g.measurer.Width(s)
}

// labelInUse reports whether another loaded track shows label. Labels are
// compared in NFC so visually identical labels collide.
func (g *Graph) labelInUse(label string) bool {
	want := normalizeLabel(label)
	for _, l := range g.registry.labels() {
		if normalizeLabel(l) == want {
			return true
		}
	}
	return false
}

func normalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (g *Graph) legendItem(key string) (LegendItem, bool) {
	for _, item := range g.config.actionLegend {
		if item.Key == key {
			return item, true
		}
	}
	return LegendItem{}, false
}

// ID is the instance id used to scope clip path and pattern ids.
func (g *Graph) ID() string { return g.id }

// Tracks returns the loaded track keys in stacking order.
func (g *Graph) Tracks() []string { return g.registry.keys() }

// Track returns the loaded track for key.
func (g *Graph) Track(key string) (*Track, bool) {
	t, ok := g.content[key]
	return t, ok
}

// TrackList returns a copy of the registry in stacking order.
func (g *Graph) TrackList() []TrackListEntry { return g.registry.snapshot() }

func (g *Graph) TrackCount() int { return g.registry.len() }

// YDomain is [0, trackCount], with an upper limit of at least 1.
func (g *Graph) YDomain() Domain {
	return Domain{LowerLimit: 0, UpperLimit: float64(max(g.registry.len(), 1))}
}

// ContentHeight is the sum of all track heights.
func (g *Graph) ContentHeight() float64 { return g.geo.contentHeight }

// Size returns the canvas width and height.
func (g *Graph) Size() (float64, float64) { return g.geo.canvasWidth, g.geo.canvasHeight }

func (g *Graph) Scale() Scale { return g.scale }

// Document returns the underlying SVG document.
func (g *Graph) Document() *svgdom.Document { return g.doc }

// SVG returns the root <svg> element.
func (g *Graph) SVG() *goquery.Selection { return g.svg }

// Find runs a CSS selector against the document.
func (g *Graph) Find(selector string) *goquery.Selection { return g.doc.Find(selector) }

// Click dispatches a click on every node of sel and reports whether a
// handler ran.
func (g *Graph) Click(sel *goquery.Selection) bool {
	return g.doc.Dispatch(sel, eventClick)
}

// Render writes the chart as a standalone SVG file.
func (g *Graph) Render(w io.Writer) error {
	return g.doc.Render(w)
}

// LogValue summarizes the graph for structured logs.
func (g *Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", g.id),
		slog.Int("trackCount", g.registry.len()),
		slog.Float64("width", g.geo.canvasWidth),
		slog.Float64("height", g.geo.canvasHeight),
	)
}
