package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scale selects the coordinate transform of an axis.
type Scale int

const (
	// ScaleLinear maps data values linearly onto the panel.
	ScaleLinear Scale = iota
	// ScaleLog maps data values by log10. Limits must be positive.
	ScaleLog
)

// Grid configures grid lines drawn perpendicular to an axis.
// The zero value draws no grid.
type Grid struct {
	Show      bool
	LineStyle draw.LineStyle // zero value falls back to a thin translucent line
}

// GridStyle returns a translucent grid line style with the given dash
// pattern index (0 solid, 1 dashed) and opacity.
func GridStyle(dashed bool, alpha float64) draw.LineStyle {
	a := uint8(math.Round(255 * alpha))
	sty := draw.LineStyle{
		Color: color.NRGBA{A: a},
		Width: vg.Points(0.5),
	}
	if dashed {
		sty.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return sty
}

// Axis holds the shared state of one coordinate axis.
type Axis struct {
	Min, Max float64
	Scale    Scale
	Label    string

	// Ticker computes tick marks. When nil, plot.DefaultTicks is used for
	// linear axes and plot.LogTicks for log axes.
	Ticker plot.Ticker

	// Color applies to tick marks, tick labels and the axis label.
	// When nil, black is used.
	Color color.Color

	Grid Grid
}

// XAxis is the horizontal axis of a panel. Tick marks and tick labels can
// be toggled per edge, mirroring the bottom/top tick placement of the
// underlying drawing model.
type XAxis struct {
	Axis
	TicksBottom bool
	TicksTop    bool
	LabelBottom bool
}

// YAxis is the vertical axis of a panel. The label side alternates between
// left and right for slalom-style stacked panels.
type YAxis struct {
	Axis
	TicksLeft  bool
	TicksRight bool
	LabelLeft  bool
	LabelRight bool
}

func defaultXAxis() XAxis {
	return XAxis{
		Axis:        Axis{Min: 0, Max: 1},
		TicksBottom: true,
		LabelBottom: true,
	}
}

func defaultYAxis() YAxis {
	return YAxis{
		Axis:      Axis{Min: 0, Max: 1},
		TicksLeft: true,
		LabelLeft: true,
	}
}

// norm maps a data value to [0, 1] between the axis limits.
func (a Axis) norm(v float64) float64 {
	lo, hi := a.Min, a.Max
	if a.Scale == ScaleLog {
		if v <= 0 || lo <= 0 || hi <= 0 {
			return math.NaN()
		}
		v, lo, hi = math.Log10(v), math.Log10(lo), math.Log10(hi)
	}
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// ticks returns the major and minor tick marks between the axis limits.
func (a Axis) ticks() []plot.Tick {
	if a.Scale == ScaleLog && (a.Min <= 0 || a.Max <= 0) {
		return nil
	}
	t := a.Ticker
	if t == nil {
		if a.Scale == ScaleLog {
			t = plot.LogTicks{Prec: -1}
		} else {
			t = plot.DefaultTicks{}
		}
	}
	return t.Ticks(a.Min, a.Max)
}

// color returns the configured axis color, defaulting to black.
func (a Axis) color() color.Color {
	if a.Color == nil {
		return color.Black
	}
	return a.Color
}
