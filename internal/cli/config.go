package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/plotkit/plotkit/pkg/errors"
)

// demoConfig describes a set of figures to render, usually decoded from a
// TOML file. See examples/demo.toml for the full format.
type demoConfig struct {
	// Output is the directory the rendered files are written to.
	Output string `toml:"output"`
	// Formats lists the file formats written per figure (svg, png, pdf).
	Formats []string `toml:"formats"`
	// Figures are rendered in order.
	Figures []figureSpec `toml:"figure"`
}

// figureSpec describes one demo figure. Kind selects the builder; the other
// fields apply where they make sense for that kind.
type figureSpec struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"` // "ridge", "grid" or "swatch"

	// Shared
	Palette string `toml:"palette"`
	XLabel  string `toml:"xlabel"`
	YLabel  string `toml:"ylabel"`

	// Ridge
	Options string `toml:"options"`
	Series  int    `toml:"series"`
	Points  int    `toml:"points"`

	// Grid
	Rows    int    `toml:"rows"`
	Columns int    `toml:"columns"`
	Share   string `toml:"share"`

	// Swatch
	Count int `toml:"count"`
}

// loadDemoConfig reads a demo configuration from path. An empty path yields
// the built-in showcase configuration.
func loadDemoConfig(path string) (demoConfig, error) {
	if path == "" {
		return defaultDemoConfig(), nil
	}
	var cfg demoConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return demoConfig{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return demoConfig{}, errors.New(errors.ErrCodeInvalidFormat,
			"unknown key %q in %s", undecoded[0].String(), path)
	}
	applyConfigDefaults(&cfg)
	return cfg, nil
}

func applyConfigDefaults(cfg *demoConfig) {
	if cfg.Output == "" {
		cfg.Output = "figures"
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"svg"}
	}
	for i := range cfg.Figures {
		f := &cfg.Figures[i]
		if f.Palette == "" {
			f.Palette = "viridis"
		}
		if f.Series == 0 {
			f.Series = 5
		}
		if f.Points == 0 {
			f.Points = 200
		}
		if f.Rows == 0 {
			f.Rows = 2
		}
		if f.Columns == 0 {
			f.Columns = 2
		}
		if f.Count == 0 {
			f.Count = 128
		}
	}
}

func defaultDemoConfig() demoConfig {
	cfg := demoConfig{
		Figures: []figureSpec{
			{Name: "ridge", Kind: "ridge", Options: "gz", Series: 5,
				XLabel: "time", YLabel: "amplitude"},
			{Name: "grid", Kind: "grid", Rows: 2, Columns: 3, Share: "both",
				Palette: "plasma"},
			{Name: "swatch", Kind: "swatch", Palette: "viridis"},
		},
	}
	applyConfigDefaults(&cfg)
	return cfg
}
