package figure

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/pkg/errors"
)

// SpineStyle controls one border line of a panel.
type SpineStyle struct {
	Show  bool
	Color color.Color // nil means black
}

// Spines holds the four border lines of a panel.
type Spines struct {
	Top, Bottom, Left, Right SpineStyle
}

func defaultSpines() Spines {
	on := SpineStyle{Show: true}
	return Spines{Top: on, Bottom: on, Left: on, Right: on}
}

// Hide turns all four spines off.
func (s *Spines) Hide() {
	s.Top.Show = false
	s.Bottom.Show = false
	s.Left.Show = false
	s.Right.Show = false
}

// Line is one plotted data series on a panel.
type Line struct {
	X, Y  []float64
	Style draw.LineStyle
	Dots  bool // draw small circle markers on each point
	Label string
}

// Overlay is drawn on top of a panel after all panels have been rendered.
// The canvas passed in spans the whole figure so overlays may extend past
// the panel rectangle (legends anchored outside the plot area do).
type Overlay interface {
	DrawOverlay(c draw.Canvas, p *Panel)
}

// box is a filled rectangle in data coordinates (color swatches).
type box struct {
	x0, y0, x1, y1 float64
	color          color.Color
}

// annotation is a text string at panel-fraction coordinates.
type annotation struct {
	x, y  float64
	text  string
	style TextStyle
}

// Panel is one rectangular drawing region of a figure: a pair of axes, the
// series plotted against them, and cosmetic state (spines, annotations,
// a legend overlay). Panels are created with Figure.AddPanel.
type Panel struct {
	Rect   Rect
	X      XAxis
	Y      YAxis
	Spines Spines

	// Background fills the panel rectangle before anything else is drawn.
	// nil leaves the panel transparent so stacked panels can overlap.
	Background color.Color

	// Legend is drawn after every panel has been rendered. Setting it
	// replaces any previous legend on the panel.
	Legend Overlay

	lines       []*Line
	boxes       []box
	annotations []annotation
}

// Line plots a data series on the panel and returns its handle. When x is
// nil an implicit 0..len(y)-1 index is used. The handle's style, marker
// and label fields may be adjusted before the figure is rendered.
func (p *Panel) Line(x, y []float64, opts ...LineOption) (*Line, error) {
	if len(y) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "series must contain at least one point")
	}
	if x != nil && len(x) != len(y) {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"x and y must have equal length, got %d and %d", len(x), len(y))
	}
	if x == nil {
		x = make([]float64, len(y))
		for i := range x {
			x[i] = float64(i)
		}
	}
	ln := &Line{
		X: x,
		Y: y,
		Style: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(1),
		},
	}
	for _, opt := range opts {
		opt(ln)
	}
	p.lines = append(p.lines, ln)
	return ln, nil
}

// LineOption adjusts a Line at creation time.
type LineOption func(*Line)

// WithColor sets the line (and marker) color.
func WithColor(c color.Color) LineOption {
	return func(l *Line) { l.Style.Color = c }
}

// WithDots enables small circle markers on each data point.
func WithDots() LineOption {
	return func(l *Line) { l.Dots = true }
}

// WithLabel sets the legend label of the line.
func WithLabel(s string) LineOption {
	return func(l *Line) { l.Label = s }
}

// Lines returns the panel's plotted series in insertion order.
func (p *Panel) Lines() []*Line { return p.lines }

// Box fills the axis-aligned rectangle spanned by the two data-coordinate
// corners with the given color. Used by color swatches.
func (p *Panel) Box(x0, y0, x1, y1 float64, c color.Color) {
	p.boxes = append(p.boxes, box{x0: x0, y0: y0, x1: x1, y1: y1, color: c})
}

// Text places a string at the given panel-fraction position, where (0,0)
// is the bottom-left corner of the panel and (1,1) the top-right. Values
// outside [0,1] place the text outside the panel, which is how sub-figure
// index labels sit just past the top-left corner.
func (p *Panel) Text(x, y float64, s string, sty TextStyle) {
	p.annotations = append(p.annotations, annotation{x: x, y: y, text: s, style: sty})
}

// HideTicks removes all tick marks and tick labels from both axes.
func (p *Panel) HideTicks() {
	p.X.TicksBottom = false
	p.X.TicksTop = false
	p.X.LabelBottom = false
	p.Y.TicksLeft = false
	p.Y.TicksRight = false
	p.Y.LabelLeft = false
	p.Y.LabelRight = false
}

// Blank hides every spine, tick mark and tick label, leaving only the
// plotted data visible.
func (p *Panel) Blank() {
	p.Spines.Hide()
	p.HideTicks()
}

// CanvasRect converts the panel's normalized rectangle into canvas
// coordinates within dc. Overlays use it to anchor themselves relative to
// the panel.
func (p *Panel) CanvasRect(dc draw.Canvas) vg.Rectangle {
	size := dc.Rectangle.Size()
	return vg.Rectangle{
		Min: vg.Point{
			X: dc.Rectangle.Min.X + vg.Length(p.Rect.Left)*size.X,
			Y: dc.Rectangle.Min.Y + vg.Length(p.Rect.Bottom)*size.Y,
		},
		Max: vg.Point{
			X: dc.Rectangle.Min.X + vg.Length(p.Rect.Right())*size.X,
			Y: dc.Rectangle.Min.Y + vg.Length(p.Rect.Top())*size.Y,
		},
	}
}

// dataPoint converts data coordinates to canvas coordinates within rect.
func (p *Panel) dataPoint(rect vg.Rectangle, x, y float64) vg.Point {
	u := p.X.norm(x)
	v := p.Y.norm(y)
	return vg.Point{
		X: rect.Min.X + vg.Length(u)*(rect.Max.X-rect.Min.X),
		Y: rect.Min.Y + vg.Length(v)*(rect.Max.Y-rect.Min.Y),
	}
}

// fracPoint converts panel-fraction coordinates to canvas coordinates.
func (p *Panel) fracPoint(rect vg.Rectangle, x, y float64) vg.Point {
	return vg.Point{
		X: rect.Min.X + vg.Length(x)*(rect.Max.X-rect.Min.X),
		Y: rect.Min.Y + vg.Length(y)*(rect.Max.Y-rect.Min.Y),
	}
}

// FracPoint converts panel-fraction coordinates to canvas coordinates
// within dc. Values outside [0, 1] address points outside the panel.
func (p *Panel) FracPoint(dc draw.Canvas, x, y float64) vg.Point {
	return p.fracPoint(p.CanvasRect(dc), x, y)
}
