package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotkit/plotkit/pkg/palette"
)

const defaultSwatchCount = 16

// newPaletteCmd creates the palette command for inspecting color palettes in
// the terminal. Without arguments it lists every registered palette with a
// preview bar. With a palette name or a list of hex anchor colors it prints
// the sampled colors themselves.
func newPaletteCmd() *cobra.Command {
	var n int
	var asMap bool

	cmd := &cobra.Command{
		Use:   "palette [name | hex...]",
		Short: "Print palette swatches to the terminal",
		Long: `Print palette swatches to the terminal.

Without arguments, lists all registered palettes. With a palette name,
samples that palette. With two or more hex colors, blends between them:

  plotkit palette
  plotkit palette viridis -n 8
  plotkit palette "#fde725" "#440154" -n 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runPaletteList(n)
			}
			var spec any
			if len(args) == 1 && !strings.HasPrefix(args[0], "#") {
				spec = args[0]
			} else {
				spec = args
			}
			if asMap {
				return runPaletteMap(spec, n)
			}
			return runPaletteShow(spec, n)
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", defaultSwatchCount, "number of colors to sample")
	cmd.Flags().BoolVar(&asMap, "map", false, "preview the continuous map instead of discrete samples")
	return cmd
}

func runPaletteList(n int) error {
	fmt.Println(StyleTitle.Render("Registered palettes"))
	for _, name := range palette.Names() {
		colors, err := palette.FromName(name, n)
		if err != nil {
			return err
		}
		fmt.Printf("  %-10s %s\n", name, swatchBar(colors))
	}
	return nil
}

func runPaletteShow(spec any, n int) error {
	colors, err := palette.Colors(spec, n)
	if err != nil {
		return err
	}
	fmt.Println(swatchBar(colors))
	fmt.Println(StyleDim.Render(strings.Join(colors, " ")))
	return nil
}

// runPaletteMap previews the continuous map as a densely sampled gradient
// bar. The bin count only affects the hex values printed below it.
func runPaletteMap(spec any, n int) error {
	var (
		m   palette.Map
		err error
	)
	switch v := spec.(type) {
	case string:
		m, err = palette.MapFromName(v, n)
	case []string:
		m, err = palette.MapBetween(v, n)
	}
	if err != nil {
		return err
	}

	const strips = 64
	hexes := make([]string, strips)
	for i := range hexes {
		hexes[i] = m.At(float64(i) / float64(strips-1)).Hex()
	}
	fmt.Println(swatchBar(hexes))
	fmt.Println(StyleDim.Render(strings.Join(m.Colors(), " ")))
	return nil
}
