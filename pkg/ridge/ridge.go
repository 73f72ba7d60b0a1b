// Package ridge builds ridge plots: a stack of tightly packed panels with
// fixed width and fixed height per ridge, one data series per panel, all
// sharing a common x range.
//
// # Layout
//
// Panels are stacked top to bottom in series order with no vertical gap.
// The Squeeze option overlaps adjacent panels by half their height, which
// together with transparent panel backgrounds produces the classic ridge
// look. The figure is 4 inches wide and grows by one scaled panel height
// per series.
//
// # Usage
//
//	opts, _ := ridge.ParseOptions("gz")
//	r, err := ridge.New(series, opts, ridge.WithXLabel("time"))
//	if err != nil { ... }
//	if err := r.Build(); err != nil { ... }
//	r.Figure().Save("ridge.png")
package ridge

import (
	"image/color"
	"math"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/figure"
)

// Figure geometry in inches and figure fractions.
const (
	figWidth     = 4.0
	marginLeft   = 0.125
	marginRight  = 0.9
	marginBottom = 0.11
	marginTop    = 0.88

	// Vertical panel spacing as a fraction of one panel height. Squeeze
	// overlaps adjacent panels by half their height.
	squeezeSpacing = -0.5
)

// Ridge accumulates the configuration of a ridge plot and, after Build,
// holds the resulting figure, panels and line handles.
type Ridge struct {
	series []Series
	opts   Options

	yScale float64
	xlabel string
	ylabel string
	ylim   *[2]float64
	pltype PlotType

	fig    *figure.Figure
	host   *figure.Panel
	panels []*figure.Panel
	lines  []*figure.Line
}

// Setter adjusts a Ridge at construction time.
type Setter func(*Ridge)

// WithYScale scales the height of each panel relative to the default,
// which decides the total height of the figure.
func WithYScale(f float64) Setter {
	return func(r *Ridge) { r.yScale = f }
}

// WithXLabel sets the x label placed under the bottom panel.
func WithXLabel(s string) Setter {
	return func(r *Ridge) { r.xlabel = s }
}

// WithYLabel sets a single y label shared by all panels. It is drawn on an
// invisible panel spanning the whole stack.
func WithYLabel(s string) Setter {
	return func(r *Ridge) { r.ylabel = s }
}

// WithYLim fixes the y limits of every panel instead of scaling each panel
// to its own data.
func WithYLim(lo, hi float64) Setter {
	return func(r *Ridge) { r.ylim = &[2]float64{lo, hi} }
}

// WithPlotType sets the axis scales of every panel. The default is Plot.
func WithPlotType(t PlotType) Setter {
	return func(r *Ridge) { r.pltype = t }
}

// New validates the series collection and configuration. The collection
// must be non-empty and homogeneous: either every series carries explicit
// x values or none does. Crop needs explicit x values.
func New(series []Series, opts Options, setters ...Setter) (*Ridge, error) {
	if len(series) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "at least one series is required")
	}
	withX := series[0].hasX()
	for i, s := range series {
		if err := s.validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "series %d", i)
		}
		if s.hasX() != withX {
			return nil, errors.New(errors.ErrCodeInvalidData,
				"series %d mixes x/y and y-only data within one collection", i)
		}
	}
	if opts.Crop && !withX {
		return nil, errors.New(errors.ErrCodeInvalidOption,
			"the crop option needs series with explicit x values")
	}

	r := &Ridge{series: series, opts: opts, yScale: 1}
	for _, set := range setters {
		set(r)
	}
	if r.yScale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"y scale must be positive, got %v", r.yScale)
	}
	if r.ylim != nil && r.ylim[0] >= r.ylim[1] {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"y limits must satisfy lo < hi, got %v and %v", r.ylim[0], r.ylim[1])
	}
	return r, nil
}

// Build lays out the figure and plots every series on its own panel. It
// may be called again to rebuild from scratch; all layout state is local
// to one call.
func (r *Ridge) Build() error {
	n := len(r.series)
	r.fig = figure.NewInches(figWidth, r.yScale*float64(n))
	r.host = nil
	r.panels = r.panels[:0]
	r.lines = r.lines[:0]

	xmin, xmax := r.xLimits()

	if r.ylabel != "" {
		r.host = r.fig.AddPanel(figure.Rect{
			Left:   marginLeft,
			Bottom: marginBottom,
			Width:  marginRight - marginLeft,
			Height: marginTop - marginBottom,
		})
		r.host.Blank()
	}

	dashed := false
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, s := range r.series {
		col := figure.Color(i)
		p := r.fig.AddPanel(r.panelRect(i, n))

		if r.pltype.logX() {
			p.X.Scale = figure.ScaleLog
		}
		if r.pltype.logY() {
			p.Y.Scale = figure.ScaleLog
		}
		p.X.Min, p.X.Max = xmin, xmax
		if r.ylim != nil {
			p.Y.Min, p.Y.Max = r.ylim[0], r.ylim[1]
		} else {
			p.Y.Min, p.Y.Max = panelYLimits(s.Y, r.pltype.logY())
		}

		lineOpts := []figure.LineOption{figure.WithColor(col)}
		if r.opts.Dots {
			lineOpts = append(lineOpts, figure.WithDots())
		}
		ln, err := p.Line(s.X, s.Y, lineOpts...)
		if err != nil {
			return err
		}
		r.lines = append(r.lines, ln)
		r.panels = append(r.panels, p)

		lo, hi := minMax(s.Y)
		ymin = math.Min(ymin, lo)
		ymax = math.Max(ymax, hi)

		if r.opts.Blank {
			p.Blank()
		} else {
			r.resolveCosmetics(p, i, n, col, &dashed)
		}
	}

	if r.host != nil {
		r.finishHost(ymin, ymax)
	}
	return nil
}

// panelRect returns the normalized rectangle of panel i out of n, counted
// from the top. The stack fills the figure margins exactly; negative
// spacing makes adjacent panels overlap.
func (r *Ridge) panelRect(i, n int) figure.Rect {
	spacing := 0.0
	if r.opts.Squeeze {
		spacing = squeezeSpacing
	}
	span := marginTop - marginBottom
	h := span / (float64(n) + float64(n-1)*spacing)
	step := (1 + spacing) * h
	return figure.Rect{
		Left:   marginLeft,
		Bottom: marginTop - h - float64(i)*step,
		Width:  marginRight - marginLeft,
		Height: h,
	}
}

// xLimits computes the x range shared by all panels. Without explicit x
// values the limits enclose the indices of the longest series. Otherwise
// the widest (or, under Crop, the narrowest) data range is padded by 5% of
// its span, and a logarithmic x axis clamps a non-positive lower bound to
// 0.8 times the smallest positive x of the bounding series.
func (r *Ridge) xLimits() (float64, float64) {
	if !r.series[0].hasX() {
		maxLen := 0
		for _, s := range r.series {
			if len(s.Y) > maxLen {
				maxLen = len(s.Y)
			}
		}
		return -0.5, float64(maxLen) - 0.5
	}

	ref := r.series[0].X
	_, xmax := minMax(ref)
	for _, s := range r.series[1:] {
		lo, hi := minMax(s.X)
		if r.opts.Crop {
			if s.X[0] > ref[0] {
				ref = s.X
			}
			if hi < xmax {
				xmax = hi
			}
		} else {
			if lo < ref[0] {
				ref = s.X
			}
			if hi > xmax {
				xmax = hi
			}
		}
	}

	diff := 0.05 * (xmax - ref[0])
	xmax += diff
	xmin := ref[0] - diff
	if r.pltype.logX() && ref[0] < diff {
		if pos, ok := smallestPositive(ref); ok {
			xmin = 0.8 * pos
		}
	}
	return xmin, xmax
}

// panelYLimits scales a panel to its own data with a 5% pad. A log axis
// pads multiplicatively instead and ignores non-positive values.
func panelYLimits(y []float64, logScale bool) (float64, float64) {
	lo, hi := minMax(y)
	if logScale {
		pos, ok := smallestPositive(y)
		if !ok || hi <= 0 {
			return 0.1, 1
		}
		return 0.8 * pos, 1.25 * hi
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	pad := 0.05 * (hi - lo)
	return lo - pad, hi + pad
}

// resolveCosmetics applies the per-panel spine, tick and grid treatment
// for panel i of n.
func (r *Ridge) resolveCosmetics(p *figure.Panel, i, n int, col color.Color, dashed *bool) {
	if n != 1 {
		switch {
		case r.opts.Squeeze && i%2 == 1:
			p.Y.TicksLeft = false
			p.Y.LabelLeft = false
			p.Y.TicksRight = true
			p.Y.LabelRight = true
			p.Spines.Left.Color = color.Black
		case r.opts.Squeeze:
			p.Y.TicksRight = false
			p.Y.LabelRight = false
			p.Spines.Right.Color = color.Black
		case r.opts.Slalom && i%2 == 1:
			p.Y.LabelLeft = false
			p.Y.LabelRight = true
		}

		// Hide the spines where adjacent panels meet, keeping the outer
		// boundary of the stack.
		if i != 0 {
			p.Spines.Top.Show = false
		}
		if i != n-1 {
			p.Spines.Bottom.Show = false
		}
		if !r.opts.Squeeze {
			p.Spines.Left.Color = col
			p.Spines.Right.Color = col
		}
		p.Y.Color = col
	}

	if r.opts.Grid {
		if !r.opts.Squeeze || n == 1 {
			p.X.Grid = figure.Grid{Show: true, LineStyle: figure.GridStyle(false, 0.2)}
			p.Y.Grid = figure.Grid{Show: true, LineStyle: figure.GridStyle(false, 0.2)}
		} else {
			// Overlapping panels: alternate the horizontal line style per
			// panel and fade the vertical lines on interior panels.
			alpha := 0.1
			if i == 0 || i == n-1 {
				alpha = 0.2
			}
			p.Y.Grid = figure.Grid{Show: true, LineStyle: figure.GridStyle(*dashed, 0.2)}
			p.X.Grid = figure.Grid{Show: true, LineStyle: figure.GridStyle(false, alpha)}
			*dashed = !*dashed
		}
	}

	switch {
	case i == n-1:
		p.X.Label = r.xlabel
		if n != 1 {
			p.X.TicksTop = false
		}
	case i == 0:
		p.X.TicksBottom = false
		p.X.LabelBottom = false
	default:
		p.X.TicksBottom = false
		p.X.TicksTop = false
		p.X.LabelBottom = false
	}
}

// finishHost anchors the shared y label panel to the global data range so
// its label sits vertically centered on the stack. An explicit y limit
// pair wins; a log axis clamps a non-positive minimum to 1e-3.
func (r *Ridge) finishHost(ymin, ymax float64) {
	r.host.Y.Label = r.ylabel
	if r.pltype.logY() {
		r.host.Y.Scale = figure.ScaleLog
		if ymin <= 0 {
			ymin = 1e-3
		}
	}
	if r.ylim != nil {
		ymin, ymax = r.ylim[0], r.ylim[1]
	}
	r.host.Y.Min, r.host.Y.Max = ymin, ymax
}

// Figure returns the built figure, or nil before Build.
func (r *Ridge) Figure() *figure.Figure { return r.fig }

// Lines returns one line handle per series in input order.
func (r *Ridge) Lines() []*figure.Line { return r.lines }

// Panels returns the data panels from top to bottom. The invisible panel
// carrying a shared y label is not included.
func (r *Ridge) Panels() []*figure.Panel { return r.panels }

// TopPanel returns the first data panel, or nil before Build.
func (r *Ridge) TopPanel() *figure.Panel {
	if len(r.panels) == 0 {
		return nil
	}
	return r.panels[0]
}

// BottomPanel returns the last data panel, or nil before Build.
func (r *Ridge) BottomPanel() *figure.Panel {
	if len(r.panels) == 0 {
		return nil
	}
	return r.panels[len(r.panels)-1]
}

func minMax(v []float64) (float64, float64) {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

func smallestPositive(v []float64) (float64, bool) {
	best, ok := 0.0, false
	for _, x := range v {
		if x > 0 && (!ok || x < best) {
			best, ok = x, true
		}
	}
	return best, ok
}
