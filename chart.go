package stashmate

import (
	"math"
)

// Chart geometry, as displayed-size units. The left margin leaves room for
// the y-axis currency labels, the bottom one for the date labels.
const (
	chartPadLeft   = 36.0
	chartPadRight  = 10.0
	chartPadTop    = 10.0
	chartPadBottom = 24.0

	chartMarkerRadius = 2.5
	chartGridSteps    = 4 // 5 gridlines at 0%, 25%, 50%, 75%, 100%

	chartDefaultWidth  = 600.0
	chartDefaultHeight = 180.0
)

// Chart palette and type, shared by every backend.
const (
	chartAxisColor = "#2a2a30"
	chartGridColor = "#1a1a1e"
	chartLineColor = "#22c55e"
	chartTextColor = "#9aa0a6"

	chartFontSize  = 10.0
	chartLineWidth = 2.0
)

// XY is a point on the drawing surface.
type XY struct{ X, Y float64 }

// Rect is an axis-aligned rectangle on the drawing surface.
type Rect struct{ X, Y, W, H float64 }

// TickLabel is a positioned text label.
type TickLabel struct {
	X, Y float64
	Text string
}

// GridLine is one horizontal gridline with its currency label.
type GridLine struct {
	Y     float64
	Label TickLabel
}

// Layout is the complete, resolution-independent geometry of a revenue
// chart: every coordinate a backend needs, and nothing it doesn't.
// All coordinates are in displayed-size units; backends multiply by Scale
// to fill the backing pixel buffer without changing the displayed size.
type Layout struct {
	Width, Height float64 // displayed size
	Scale         float64 // device pixel ratio

	// BufferWidth and BufferHeight are the backing pixel buffer dimensions,
	// always at least 1x1.
	BufferWidth, BufferHeight int

	// Empty layouts carry only a placeholder message, no axes.
	Empty   bool
	Message string

	Plot    Rect
	MaxY    float64
	Grid    []GridLine
	XLabels []TickLabel
	Points  []XY
}

// NewLayout computes the chart layout for a daily revenue series on a
// surface of the given displayed size and device pixel ratio.
//
// The y-axis maximum is ceil(max x 1.1) with a floor of 1, so an all-zero
// series still has a finite scale. A single-point series is pinned to the
// left edge of the plot: the usual i/(n-1) interpolation is undefined there.
func NewLayout(series []Point, width, height, scale float64) Layout {
	if width <= 0 {
		width = chartDefaultWidth
	}
	if height <= 0 {
		height = chartDefaultHeight
	}
	if scale <= 0 {
		scale = 1
	}

	l := Layout{
		Width:        width,
		Height:       height,
		Scale:        scale,
		BufferWidth:  int(math.Max(1, math.Floor(width*scale))),
		BufferHeight: int(math.Max(1, math.Floor(height*scale))),
	}

	if len(series) == 0 {
		l.Empty = true
		l.Message = "No sold revenue in range"
		return l
	}

	l.Plot = Rect{
		X: chartPadLeft,
		Y: chartPadTop,
		W: width - chartPadLeft - chartPadRight,
		H: height - chartPadTop - chartPadBottom,
	}

	maxValue := 0.0
	for _, p := range series {
		if v := p.Value.AsFloat(); v > maxValue {
			maxValue = v
		}
	}
	l.MaxY = math.Max(1, math.Ceil(maxValue*1.1))

	for i := 0; i <= chartGridSteps; i++ {
		yVal := l.MaxY * float64(i) / chartGridSteps
		y := l.Plot.Y + l.Plot.H - (yVal/l.MaxY)*l.Plot.H
		l.Grid = append(l.Grid, GridLine{
			Y:     y,
			Label: TickLabel{X: 4, Y: y + 3, Text: USD(yVal).String()},
		})
	}

	n := len(series)
	xAt := func(i int) float64 {
		if n == 1 {
			return l.Plot.X
		}
		return l.Plot.X + float64(i)/float64(n-1)*l.Plot.W
	}
	yAt := func(v float64) float64 {
		return l.Plot.Y + l.Plot.H - (v/l.MaxY)*l.Plot.H
	}

	for i, p := range series {
		l.Points = append(l.Points, XY{X: xAt(i), Y: yAt(p.Value.AsFloat())})
	}

	// Only first, middle and last dates are labeled to avoid crowding.
	seen := make(map[int]bool)
	for _, i := range []int{0, (n - 1) / 2, n - 1} {
		if seen[i] {
			continue
		}
		seen[i] = true
		l.XLabels = append(l.XLabels, TickLabel{
			X:    xAt(i) - 24,
			Y:    l.Plot.Y + l.Plot.H + 16,
			Text: series[i].Date.String(),
		})
	}

	return l
}

// Canvas is the drawing backend a chart layout renders onto. Coordinates are
// in displayed-size units; the backend owns the Scale handling.
type Canvas interface {
	Line(x1, y1, x2, y2 float64, stroke string, width float64)
	Polyline(pts []XY, stroke string, width float64)
	Dot(x, y, r float64, fill string)
	Text(x, y, size float64, fill, text string)
}

// Draw issues the layout's drawing commands onto a canvas: axes, gridlines
// with currency ticks, date labels, the revenue polyline and its markers.
func (l Layout) Draw(c Canvas) {
	if l.Empty {
		c.Text(10, 20, 12, chartTextColor, l.Message)
		return
	}

	// axes
	c.Line(l.Plot.X, l.Plot.Y, l.Plot.X, l.Plot.Y+l.Plot.H, chartAxisColor, 1)
	c.Line(l.Plot.X, l.Plot.Y+l.Plot.H, l.Plot.X+l.Plot.W, l.Plot.Y+l.Plot.H, chartAxisColor, 1)

	for _, g := range l.Grid {
		c.Line(l.Plot.X, g.Y, l.Plot.X+l.Plot.W, g.Y, chartGridColor, 1)
		c.Text(g.Label.X, g.Label.Y, chartFontSize, chartTextColor, g.Label.Text)
	}

	for _, lbl := range l.XLabels {
		c.Text(lbl.X, lbl.Y, chartFontSize, chartTextColor, lbl.Text)
	}

	c.Polyline(l.Points, chartLineColor, chartLineWidth)
	for _, p := range l.Points {
		c.Dot(p.X, p.Y, chartMarkerRadius, chartLineColor)
	}
}
