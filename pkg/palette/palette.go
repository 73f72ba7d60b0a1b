// Package palette builds discrete color lists and continuous color maps.
//
// Colors are drawn either from a named map in the built-in registry
// (viridis, plasma, ...) or interpolated between caller-supplied anchor
// colors. Both paths can produce a fixed-size list of hex strings or a
// reusable Map sampling colors at any position in [0, 1].
//
// # Usage
//
//	colors, err := palette.FromName("viridis", 5)     // 5 hex strings
//	colors, err := palette.Between([]string{"#2eff2e", "#6543ff"}, 8)
//
//	m, err := palette.MapFromName("magma", 256)
//	c := m.At(0.5)                                    // colorful.Color
//
// The single-specifier entry point mirrors the loose calling convention of
// interactive use, where a palette is named by a string or by a list of
// anchors:
//
//	colors, err := palette.Colors("viridis", 3)
//	colors, err := palette.Colors([]string{"#000000", "#ffffff"}, 3)
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plotkit/plotkit/pkg/errors"
)

// Colors creates n colors from a palette specifier. A string specifier
// selects a named map from the registry; a []string specifier of at least
// two hex colors builds an interpolation between them. Any other specifier
// type is an input error.
func Colors(spec any, n int) ([]string, error) {
	switch s := spec.(type) {
	case string:
		return FromName(s, n)
	case []string:
		return Between(s, n)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"color specifier must be a palette name or a list of colors, got %T", spec)
	}
}

// FromName creates n colors evenly sampled from the named color map.
// Unknown names are a lookup error listing the registered maps.
func FromName(name string, n int) ([]string, error) {
	m, err := MapFromName(name, n)
	if err != nil {
		return nil, err
	}
	return m.Colors(), nil
}

// Between creates n colors interpolated across the given anchor colors,
// endpoints included. At least two anchors are required.
func Between(anchors []string, n int) ([]string, error) {
	m, err := MapBetween(anchors, n)
	if err != nil {
		return nil, err
	}
	return m.Colors(), nil
}

// MapFromName returns the named color map discretized into n bins.
func MapFromName(name string, n int) (Map, error) {
	if err := checkCount(n); err != nil {
		return Map{}, err
	}
	anchors, ok := registry[name]
	if !ok {
		return Map{}, errors.New(errors.ErrCodeUnknownPalette,
			"no color map named %q, available: %v", name, Names())
	}
	return Map{name: name, anchors: anchors, n: n}, nil
}

// MapBetween returns a color map interpolating across the given anchors,
// discretized into n bins.
func MapBetween(anchors []string, n int) (Map, error) {
	if err := checkCount(n); err != nil {
		return Map{}, err
	}
	if len(anchors) < 2 {
		return Map{}, errors.New(errors.ErrCodeInvalidInput,
			"need at least two anchor colors, got %d", len(anchors))
	}
	cols := make([]colorful.Color, len(anchors))
	for i, a := range anchors {
		c, err := colorful.Hex(a)
		if err != nil {
			return Map{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse anchor color %q", a)
		}
		cols[i] = c
	}
	return Map{name: "custom", anchors: cols, n: n}, nil
}

func checkCount(n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "color count must be at least 1, got %d", n)
	}
	return nil
}

// Map is a continuous color map discretized into a fixed number of bins.
// The zero value is not useful; construct maps with MapFromName or
// MapBetween.
type Map struct {
	name    string
	anchors []colorful.Color
	n       int
}

// Name returns the registry name of the map, or "custom" for anchor-built
// maps.
func (m Map) Name() string { return m.name }

// Len returns the number of discrete bins.
func (m Map) Len() int { return m.n }

// At returns the color at normalized position t. Values outside [0, 1] are
// clamped. Interpolation is piecewise-linear in RGB between the anchors.
func (m Map) At(t float64) colorful.Color {
	if t <= 0 {
		return m.anchors[0]
	}
	if t >= 1 {
		return m.anchors[len(m.anchors)-1]
	}
	pos := t * float64(len(m.anchors)-1)
	i := int(pos)
	return m.anchors[i].BlendRgb(m.anchors[i+1], pos-float64(i)).Clamped()
}

// Index returns the color of bin i, for i in [0, Len()-1].
func (m Map) Index(i int) colorful.Color {
	if m.n <= 1 {
		return m.At(0)
	}
	return m.At(float64(i) / float64(m.n-1))
}

// Colors returns the map's bins as lowercase #rrggbb strings.
func (m Map) Colors() []string {
	out := make([]string, m.n)
	for i := range out {
		out[i] = m.Index(i).Hex()
	}
	return out
}
