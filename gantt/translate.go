package gantt

import (
	"fmt"

	"gantt2svg/internal/svgdom"
)

// createCanvas builds the static frame of the chart: defs, background,
// grid, both axes and the clipped content container.
func (g *Graph) createCanvas() {
	c := g.cfg
	g.svg = g.doc.Root()
	g.svg.AddClass(ClassCanvas)
	svgdom.SetAttrs(g.svg, "id", "carbon-graph-"+g.id, "role", "img")

	g.defs = g.doc.Append(g.svg, "defs")
	g.doc.Append(g.defs, "style").SetText(fmt.Sprintf(`
.%[1]s text, .%[2]s { font-family: %[3]s; font-size: %[4]vpx; fill: %[5]s; }
.%[6]s { font-family: %[3]s; font-size: %[4]vpx; fill: %[5]s; text-anchor: middle; }
.%[1]s line, .%[1]s path { stroke: %[7]s; fill: none; }
.%[8]s line { stroke: %[9]s; stroke-width: 1; }
.%[10]s { fill: %[11]s; }
.%[10]s[aria-selected=true] { fill: %[12]s; }
.%[13]s { cursor: pointer; }
[aria-hidden=true] { visibility: hidden; }
`,
		ClassAxis, ClassTrackLabel, c.Font.Family, c.Font.Size, c.Colors.Text,
		ClassAxisLabel,
		c.Colors.Axis,
		ClassGrid, c.Colors.Grid,
		ClassTrackSelector, c.Colors.Selector, c.Colors.SelectorSelected,
		ClassClickable,
	))

	clip := g.doc.Append(g.defs, "clipPath")
	clip.SetAttr("id", g.clipID())
	g.clipRect = g.doc.Append(clip, "rect")
	svgdom.SetAttrs(g.clipRect, "x", "0", "y", "0")

	pattern := g.doc.Append(g.defs, "pattern")
	svgdom.SetAttrs(pattern,
		"id", g.hatchID(),
		"width", "6",
		"height", "6",
		"patternUnits", "userSpaceOnUse",
		"patternTransform", "rotate(45)",
	)
	svgdom.SetAttrs(g.doc.Append(pattern, "line"),
		"x1", "0", "y1", "0", "x2", "0", "y2", "6",
		"stroke", c.Colors.Axis,
		"stroke-width", "2",
		"stroke-opacity", "0.5",
	)

	g.bg = g.doc.Append(g.svg, "rect", ClassBackground)
	g.bg.SetAttr("fill", c.Colors.Background)
	g.grid = g.doc.Append(g.svg, "g", ClassGrid)
	g.axisX = g.doc.Append(g.svg, "g", ClassAxis, ClassAxisX)
	g.axisY = g.doc.Append(g.svg, "g", ClassAxis, ClassAxisY)
	if g.config.xLabel != "" {
		g.axisLabel = g.doc.Append(g.svg, "text", ClassAxisLabel, ClassAxisLabelX)
		g.axisLabel.SetText(g.config.xLabel)
	}
	g.container = g.doc.Append(g.svg, "g", ClassContentContainer)
	g.container.SetAttr("clip-path", "url(#"+g.clipID()+")")
}

func (g *Graph) clipID() string  { return "carbon-clip-" + g.id }
func (g *Graph) hatchID() string { return "carbon-hatch-" + g.id }

// translateGraph sizes and positions the frame from the current geometry.
// Axes and grid are rebuilt from the scales.
func (g *Graph) translateGraph() {
	geo := g.geo
	svgdom.SetAttrs(g.svg,
		"width", svgdom.Num(geo.canvasWidth),
		"height", svgdom.Num(geo.canvasHeight),
		"viewBox", "0 0 "+svgdom.Num(geo.canvasWidth)+" "+svgdom.Num(geo.canvasHeight),
	)
	svgdom.SetAttrs(g.bg,
		"x", "0",
		"y", "0",
		"width", svgdom.Num(geo.canvasWidth),
		"height", svgdom.Num(geo.canvasHeight),
	)
	svgdom.SetAttrs(g.clipRect,
		"width", svgdom.Num(geo.contentWidth),
		"height", svgdom.Num(geo.contentHeight),
	)
	origin := svgdom.Translate(geo.originX, geo.originY)
	g.container.SetAttr("transform", origin)
	g.grid.SetAttr("transform", origin)
	g.axisX.SetAttr("transform", origin)
	g.axisY.SetAttr("transform", origin)
	if g.axisLabel != nil {
		svgdom.SetAttrs(g.axisLabel,
			"x", svgdom.Num(geo.originX+geo.contentWidth/2),
			"y", svgdom.Num(g.cfg.Layout.PaddingTop+g.cfg.Font.Size),
		)
	}

	g.drawXAxis()
	g.drawYAxis()
	g.drawGrid()
}

// fill resolves the fill of a bar. Hashed bars use the hatch pattern.
func (g *Graph) fill(color, fallback string, s Style) string {
	if s.IsHashed {
		return "url(#" + g.hatchID() + ")"
	}
	return firstNonEmpty(color, fallback)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
