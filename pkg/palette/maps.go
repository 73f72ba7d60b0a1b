package palette

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// registry holds the anchor colors of the named maps. Anchors are evenly
// spaced across [0, 1]; the sequential maps reproduce the familiar
// perceptually-uniform gradients, spectral is a diverging rainbow.
var registry = map[string][]colorful.Color{
	"viridis": hexAnchors(
		"#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c",
		"#22a784", "#44be70", "#79d151", "#bdde26", "#fde725",
	),
	"plasma": hexAnchors(
		"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679", "#e56b5d",
		"#f89441", "#fdc328", "#f0f921",
	),
	"inferno": hexAnchors(
		"#000004", "#280b54", "#65156e", "#9f2a63", "#d44842", "#f57d15",
		"#fac127", "#fcffa4",
	),
	"magma": hexAnchors(
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55064",
		"#fb8761", "#fec287", "#fcfdbf",
	),
	"cividis": hexAnchors(
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8678",
		"#a59c74", "#c3b369", "#e1cc55", "#fee838",
	),
	"spectral": hexAnchors(
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
		"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2",
	),
}

// Names returns the registered map names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hexAnchors(hexes ...string) []colorful.Color {
	cols := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("palette: bad registry color " + h + ": " + err.Error())
		}
		cols[i] = c
	}
	return cols
}
