package ridge

import (
	"github.com/plotkit/plotkit/pkg/errors"
)

// Options select the cosmetic treatment of a ridge plot. Each field
// corresponds to one character of the compact option string accepted by
// ParseOptions.
type Options struct {
	// Blank removes every spine, tick and tick label, leaving only the
	// plotted lines. It overrides all other cosmetic options.
	Blank bool
	// Crop restricts the shared x axis to the narrowest range common to
	// all series instead of the widest. Requires explicit x values.
	Crop bool
	// Grid draws grid lines. Combined with Squeeze the horizontal lines
	// alternate between solid and dashed per panel so overlapping panels
	// stay distinguishable.
	Grid bool
	// Slalom alternates the y tick labels between the left and right
	// side from panel to panel.
	Slalom bool
	// Squeeze overlaps adjacent panels by half their height. Implies the
	// slalom label placement and paints the parity spine black.
	Squeeze bool
	// Dots draws a small circle marker on every data point.
	Dots bool
}

// ParseOptions interprets a compact option string where each character
// enables one option: 'b' blank, 'c' crop, 'g' grid, 's' slalom,
// 'z' squeeze and 'd' dots. Characters may appear in any order; any other
// character is an error.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, c := range s {
		switch c {
		case 'b':
			o.Blank = true
		case 'c':
			o.Crop = true
		case 'g':
			o.Grid = true
		case 's':
			o.Slalom = true
		case 'z':
			o.Squeeze = true
		case 'd':
			o.Dots = true
		default:
			return Options{}, errors.New(errors.ErrCodeInvalidOption,
				"unknown option character %q, valid characters are 'bcgszd'", string(c))
		}
	}
	return o, nil
}

// PlotType selects the axis scales of every panel.
type PlotType int

const (
	// Plot uses linear scales on both axes.
	Plot PlotType = iota
	// SemilogX uses a logarithmic x axis and a linear y axis.
	SemilogX
	// SemilogY uses a linear x axis and a logarithmic y axis.
	SemilogY
	// LogLog uses logarithmic scales on both axes.
	LogLog
)

// ParsePlotType resolves a plot type by name.
func ParsePlotType(s string) (PlotType, error) {
	switch s {
	case "plot", "":
		return Plot, nil
	case "semilogx":
		return SemilogX, nil
	case "semilogy":
		return SemilogY, nil
	case "loglog":
		return LogLog, nil
	}
	return Plot, errors.New(errors.ErrCodeInvalidOption,
		"unknown plot type %q, valid types are plot, semilogx, semilogy and loglog", s)
}

func (t PlotType) String() string {
	switch t {
	case SemilogX:
		return "semilogx"
	case SemilogY:
		return "semilogy"
	case LogLog:
		return "loglog"
	}
	return "plot"
}

func (t PlotType) logX() bool { return t == SemilogX || t == LogLog }
func (t PlotType) logY() bool { return t == SemilogY || t == LogLog }
