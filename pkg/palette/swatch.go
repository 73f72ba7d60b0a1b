package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/figure"
)

// swatchConfig holds the cosmetic state of a swatch.
type swatchConfig struct {
	vertical   bool
	resolution int
	border     bool
	ticks      bool
}

// SwatchOption adjusts how a color swatch is drawn.
type SwatchOption func(*swatchConfig)

// Vertical stacks the colors bottom-to-top instead of left-to-right.
func Vertical() SwatchOption {
	return func(c *swatchConfig) { c.vertical = true }
}

// WithResolution sets the number of strips used to draw a continuous map.
// The default is 90.
func WithResolution(n int) SwatchOption {
	return func(c *swatchConfig) { c.resolution = n }
}

// WithBorder keeps the panel border visible. The default swatch is
// borderless with no tick marks.
func WithBorder() SwatchOption {
	return func(c *swatchConfig) { c.border = true }
}

// WithTicks keeps index tick marks visible along the swatch.
func WithTicks() SwatchOption {
	return func(c *swatchConfig) { c.ticks = true }
}

// Swatch fills the panel with one contiguous block per color, in order.
// Useful as an inset color bar for a discrete palette.
func Swatch(p *figure.Panel, colors []string, opts ...SwatchOption) error {
	if len(colors) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "swatch needs at least one color")
	}
	cfg := applySwatchOptions(opts)
	for i, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse swatch color %q", hex)
		}
		lo, hi := float64(i), float64(i+1)
		if cfg.vertical {
			p.Box(0, lo, 1, hi, c)
		} else {
			p.Box(lo, 0, hi, 1, c)
		}
	}
	finishSwatch(p, cfg, float64(len(colors)))
	return nil
}

// SwatchMap fills the panel with a smooth gradient sampled from the map.
func SwatchMap(p *figure.Panel, m Map, opts ...SwatchOption) error {
	cfg := applySwatchOptions(opts)
	if cfg.resolution < 2 {
		return errors.New(errors.ErrCodeInvalidInput,
			"swatch resolution must be at least 2, got %d", cfg.resolution)
	}
	for i := 0; i < cfg.resolution; i++ {
		c := m.At(float64(i) / float64(cfg.resolution-1))
		lo, hi := float64(i), float64(i+1)
		if cfg.vertical {
			p.Box(0, lo, 1, hi, c)
		} else {
			p.Box(lo, 0, hi, 1, c)
		}
	}
	finishSwatch(p, cfg, float64(cfg.resolution))
	return nil
}

func applySwatchOptions(opts []SwatchOption) swatchConfig {
	cfg := swatchConfig{resolution: 90}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func finishSwatch(p *figure.Panel, cfg swatchConfig, span float64) {
	if cfg.vertical {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, span
	} else {
		p.X.Min, p.X.Max = 0, span
		p.Y.Min, p.Y.Max = 0, 1
	}
	if !cfg.ticks {
		p.HideTicks()
	}
	if !cfg.border {
		p.Spines.Hide()
	}
}
