package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/figure"
	"github.com/plotkit/plotkit/pkg/grid"
	"github.com/plotkit/plotkit/pkg/legend"
	"github.com/plotkit/plotkit/pkg/palette"
	"github.com/plotkit/plotkit/pkg/ridge"
)

// newDemoCmd creates the demo command for rendering example figures. The
// figures are described by a TOML file; without one a built-in showcase
// configuration is used.
func newDemoCmd() *cobra.Command {
	var output string
	var formats []string

	cmd := &cobra.Command{
		Use:   "demo [config.toml]",
		Short: "Render a set of example figures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDemo(cmd, path, output, formats)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (overrides the config)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats: svg, png, pdf (overrides the config)")
	return cmd
}

func runDemo(cmd *cobra.Command, path, output string, formats []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadDemoConfig(path)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if len(formats) > 0 {
		cfg.Formats = formats
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	prog := newProgress(logger)
	files := 0
	for _, spec := range cfg.Figures {
		fig, err := buildDemoFigure(spec)
		if err != nil {
			return err
		}
		for _, format := range cfg.Formats {
			out := filepath.Join(cfg.Output, spec.Name+"."+format)
			if err := fig.Save(out); err != nil {
				return err
			}
			logger.Debug("wrote figure", "path", out)
			files++
		}
		printSuccess("%s (%s)", spec.Name, spec.Kind)
	}
	prog.done(fmt.Sprintf("Rendered %d figures into %d files under %s",
		len(cfg.Figures), files, cfg.Output))
	return nil
}

func buildDemoFigure(spec figureSpec) (*figure.Figure, error) {
	switch spec.Kind {
	case "ridge":
		return buildRidgeDemo(spec)
	case "grid":
		return buildGridDemo(spec)
	case "swatch":
		return buildSwatchDemo(spec)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput,
		"unknown figure kind %q, valid kinds are ridge, grid and swatch", spec.Kind)
}

// buildRidgeDemo stacks damped oscillations of increasing frequency.
func buildRidgeDemo(spec figureSpec) (*figure.Figure, error) {
	opts, err := ridge.ParseOptions(spec.Options)
	if err != nil {
		return nil, err
	}

	series := make([]ridge.Series, 0, spec.Series)
	for i := 0; i < spec.Series; i++ {
		x := make([]float64, spec.Points)
		y := make([]float64, spec.Points)
		for j := range x {
			t := 10 * float64(j) / float64(spec.Points-1)
			x[j] = t
			y[j] = math.Exp(-t/5) * math.Sin(float64(i+1)*t+float64(i))
		}
		s, err := ridge.NewXY(x, y)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	r, err := ridge.New(series, opts,
		ridge.WithXLabel(spec.XLabel),
		ridge.WithYLabel(spec.YLabel),
	)
	if err != nil {
		return nil, err
	}
	if err := r.Build(); err != nil {
		return nil, err
	}
	for i, ln := range r.Lines() {
		ln.Label = fmt.Sprintf("mode %d", i+1)
	}
	if _, err := legend.Place(r.TopPanel(), legend.WithSide(legend.Top)); err != nil {
		return nil, err
	}
	return r.Figure(), nil
}

// buildGridDemo plots one harmonic per panel, colored along the palette.
func buildGridDemo(spec figureSpec) (*figure.Figure, error) {
	share, err := parseShare(spec.Share)
	if err != nil {
		return nil, err
	}
	fig, panels, err := grid.New(spec.Rows, spec.Columns, grid.WithShare(share))
	if err != nil {
		return nil, err
	}
	hexes, err := palette.Colors(spec.Palette, len(panels))
	if err != nil {
		return nil, err
	}

	for k, p := range panels {
		c, err := colorful.Hex(hexes[k])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse color %q", hexes[k])
		}
		x := make([]float64, spec.Points)
		y := make([]float64, spec.Points)
		for j := range x {
			t := 2 * math.Pi * float64(j) / float64(spec.Points-1)
			x[j] = t
			y[j] = math.Sin(float64(k+1) * t)
		}
		if _, err := p.Line(x, y, figure.WithColor(c)); err != nil {
			return nil, err
		}
		p.X.Min, p.X.Max = 0, 2*math.Pi
		p.Y.Min, p.Y.Max = -1.1, 1.1
	}
	return fig, nil
}

// buildSwatchDemo renders a continuous color bar for one palette.
func buildSwatchDemo(spec figureSpec) (*figure.Figure, error) {
	m, err := palette.MapFromName(spec.Palette, spec.Count)
	if err != nil {
		return nil, err
	}
	fig := figure.NewInches(4, 0.6)
	p := fig.AddPanel(figure.Rect{Left: 0.05, Bottom: 0.25, Width: 0.9, Height: 0.5})
	if err := palette.SwatchMap(p, m, palette.WithResolution(spec.Count)); err != nil {
		return nil, err
	}
	return fig, nil
}

func parseShare(s string) (grid.Share, error) {
	switch s {
	case "", "none":
		return grid.ShareNone, nil
	case "x":
		return grid.ShareX, nil
	case "y":
		return grid.ShareY, nil
	case "both":
		return grid.ShareBoth, nil
	}
	return grid.ShareNone, errors.New(errors.ErrCodeInvalidInput,
		"unknown share mode %q, valid modes are none, x, y and both", s)
}
