// Package legend repositions a panel legend outside the plot area at one
// of eight fixed compass-style sides.
//
// The column count balances the entries into a near-square block instead
// of one long row or column, and the legend frame gets a translucent white
// background with a mid-gray border so it stays readable when it crosses
// other panels.
package legend

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/figure"
)

// Side names one of the eight allowed legend positions. The set is fixed;
// arbitrary anchor points are not supported.
type Side string

const (
	Top         Side = "top"
	Bottom      Side = "bottom"
	Left        Side = "left"
	Right       Side = "right"
	TopLeft     Side = "top left"
	TopRight    Side = "top right"
	BottomLeft  Side = "bottom left"
	BottomRight Side = "bottom right"
)

// anchor pins the (boxX, boxY) fraction of the legend box to the
// (axX, axY) fraction of the panel.
type anchor struct {
	boxX, boxY float64
	axX, axY   float64
}

var sides = map[Side]anchor{
	Top:         {boxX: 0.5, boxY: 1, axX: 0.5, axY: 1.05},
	Bottom:      {boxX: 0.5, boxY: 0, axX: 0.5, axY: -0.05},
	Right:       {boxX: 1, boxY: 0.5, axX: 1.04, axY: 0.5},
	Left:        {boxX: 0, boxY: 0.5, axX: -0.04, axY: 0.5},
	TopRight:    {boxX: 1, boxY: 1, axX: 1.04, axY: 1.05},
	TopLeft:     {boxX: 0, boxY: 1, axX: -0.04, axY: 1.05},
	BottomRight: {boxX: 1, boxY: 0, axX: 1.04, axY: -0.05},
	BottomLeft:  {boxX: 0, boxY: 0, axX: -0.04, axY: -0.05},
}

// Entry is one legend row: a line swatch and its label.
type Entry struct {
	Line  *figure.Line
	Label string
}

// Legend is a placed legend overlay. It draws after all panels so it can
// extend past its panel's rectangle.
type Legend struct {
	entries    []Entry
	side       Side
	alpha      float64
	rows, cols int
}

type config struct {
	entries  []Entry
	side     Side
	maxCols  int
	alpha    float64
	explicit bool
}

// Option adjusts legend placement.
type Option func(*config)

// WithEntries supplies explicit lines and labels instead of collecting the
// panel's labeled lines. Useful when lines from several panels should
// share one legend.
func WithEntries(lines []*figure.Line, labels []string) Option {
	return func(c *config) {
		c.explicit = true
		c.entries = c.entries[:0]
		for i := range lines {
			label := ""
			if i < len(labels) {
				label = labels[i]
			}
			c.entries = append(c.entries, Entry{Line: lines[i], Label: label})
		}
		if len(labels) != len(lines) {
			c.entries = nil
		}
	}
}

// WithSide places the legend at the given side. The default is Top.
func WithSide(s Side) Option {
	return func(c *config) { c.side = s }
}

// WithMaxColumns caps the number of legend columns. The default is 4.
func WithMaxColumns(n int) Option {
	return func(c *config) { c.maxCols = n }
}

// WithAlpha sets the opacity of the legend background. The default is 0.8.
func WithAlpha(a float64) Option {
	return func(c *config) { c.alpha = a }
}

// Place builds a legend for the panel and installs it, replacing any
// legend the panel already carries. Entries default to the panel's lines
// that have labels.
func Place(p *figure.Panel, opts ...Option) (*Legend, error) {
	cfg := config{side: Top, maxCols: 4, alpha: 0.8}
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := sides[cfg.side]; !ok {
		return nil, errors.New(errors.ErrCodeUnknownSide,
			"no legend side named %q", string(cfg.side))
	}
	if cfg.maxCols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"max columns must be at least 1, got %d", cfg.maxCols)
	}
	if cfg.alpha < 0 || cfg.alpha > 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"alpha must be in [0, 1], got %v", cfg.alpha)
	}
	if cfg.explicit && cfg.entries == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"explicit legend entries need one label per line")
	}

	entries := cfg.entries
	if !cfg.explicit {
		for _, ln := range p.Lines() {
			if ln.Label != "" {
				entries = append(entries, Entry{Line: ln, Label: ln.Label})
			}
		}
	}

	rows, cols := Balance(len(entries), cfg.maxCols)
	leg := &Legend{
		entries: entries,
		side:    cfg.side,
		alpha:   cfg.alpha,
		rows:    rows,
		cols:    cols,
	}
	p.Legend = leg
	return leg, nil
}

// Balance distributes n entries over a grid of at most cmax columns:
// the row count is fixed at ceil(n/cmax) and the column count grows from 1
// until every entry fits. This fills wide before tall, e.g. five entries
// at cmax=4 become 2 rows × 3 columns rather than a 2×4 block with three
// empty cells.
func Balance(n, cmax int) (rows, cols int) {
	if n < 1 {
		return 0, 0
	}
	rows = int(math.Ceil(float64(n) / float64(cmax)))
	cols = 1
	for n > cols*rows {
		cols++
	}
	return rows, cols
}

// Shape returns the balanced (rows, columns) of the placed legend.
func (l *Legend) Shape() (rows, cols int) { return l.rows, l.cols }

// Entries returns the legend entries in fill order.
func (l *Legend) Entries() []Entry { return l.entries }

// Side returns the side the legend is anchored to.
func (l *Legend) Side() Side { return l.side }

// Legend box geometry in points.
const (
	swatchLen = vg.Length(18)
	cellPadX  = vg.Length(8)
	cellPadY  = vg.Length(4)
	rowHeight = vg.Length(14)
	framePad  = vg.Length(5)
	labelSize = vg.Length(9)
)

// DrawOverlay implements figure.Overlay. The canvas spans the whole
// figure, so legends anchored outside the panel are not clipped away.
func (l *Legend) DrawOverlay(c draw.Canvas, p *figure.Panel) {
	if len(l.entries) == 0 {
		return
	}
	a := sides[l.side]

	colWidth := swatchLen + cellPadX/2 + l.maxLabelWidth()
	boxW := vg.Length(l.cols)*(colWidth+cellPadX) - cellPadX + 2*framePad
	boxH := vg.Length(l.rows)*(rowHeight+cellPadY) - cellPadY + 2*framePad

	pin := p.FracPoint(c, a.axX, a.axY)
	box := vg.Rectangle{
		Min: vg.Point{
			X: pin.X - vg.Length(a.boxX)*boxW,
			Y: pin.Y - vg.Length(a.boxY)*boxH,
		},
	}
	box.Max = vg.Point{X: box.Min.X + boxW, Y: box.Min.Y + boxH}

	l.drawFrame(c, box)

	lbl := figure.TextStyle{
		Size:   labelSize,
		Color:  color.Black,
		XAlign: text.XLeft,
		YAlign: text.YCenter,
	}
	for i, e := range l.entries {
		// Entries fill down each column before moving right.
		col := i / l.rows
		row := i % l.rows
		x := box.Min.X + framePad + vg.Length(col)*(colWidth+cellPadX)
		y := box.Max.Y - framePad - vg.Length(row)*(rowHeight+cellPadY) - rowHeight/2

		if e.Line != nil {
			c.StrokeLine2(e.Line.Style, x, y, x+swatchLen, y)
			if e.Line.Dots {
				g := draw.GlyphStyle{
					Color:  e.Line.Style.Color,
					Radius: vg.Points(1.5),
					Shape:  draw.CircleGlyph{},
				}
				c.DrawGlyph(g, vg.Point{X: x + swatchLen/2, Y: y})
			}
		}
		figure.FillText(c, lbl, vg.Point{X: x + swatchLen + cellPadX/2, Y: y}, e.Label)
	}
}

func (l *Legend) drawFrame(c draw.Canvas, box vg.Rectangle) {
	bg := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(255 * l.alpha))}
	c.FillPolygon(bg, []vg.Point{
		box.Min,
		{X: box.Max.X, Y: box.Min.Y},
		box.Max,
		{X: box.Min.X, Y: box.Max.Y},
	})
	border := draw.LineStyle{
		Color: color.NRGBA{R: 128, G: 128, B: 128, A: 255},
		Width: vg.Points(0.8),
	}
	c.StrokeLines(border, []vg.Point{
		box.Min,
		{X: box.Max.X, Y: box.Min.Y},
		box.Max,
		{X: box.Min.X, Y: box.Max.Y},
		box.Min,
	})
}

func (l *Legend) maxLabelWidth() vg.Length {
	var w vg.Length
	for _, e := range l.entries {
		if lw := figure.TextWidth(e.Label, labelSize); lw > w {
			w = lw
		}
	}
	return w
}
