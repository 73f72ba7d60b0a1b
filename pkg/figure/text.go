package figure

import (
	"image/color"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TextStyle bundles the typographic state of an annotation. The zero value
// is not useful; start from DefaultTextStyle.
type TextStyle struct {
	Size     vg.Length
	Color    color.Color
	XAlign   text.XAlignment
	YAlign   text.YAlignment
	Rotation float64 // radians, counter-clockwise
}

// DefaultTextStyle returns the annotation style used for sub-figure labels.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Size:   vg.Points(11),
		Color:  color.Black,
		XAlign: text.XLeft,
		YAlign: text.YBottom,
	}
}

// FillText draws s at pt on the canvas using the given style. Overlays
// use it so they render text the same way panel annotations do.
func FillText(c draw.Canvas, sty TextStyle, pt vg.Point, s string) {
	c.FillText(sty.style(), pt, s)
}

// TextWidth measures the rendered width of s at the given font size.
// Overlays use it to size themselves around their labels.
func TextWidth(s string, size vg.Length) vg.Length {
	sty := TextStyle{Size: size}.style()
	return sty.Width(s)
}

// fontFace is the typeface used for every piece of figure text. The
// Liberation family ships with the plotting backend, so no font files need
// to be resolved at run time.
func fontFace(size vg.Length) font.Font {
	return font.Font{Typeface: "Liberation", Variant: "Sans", Size: size}
}

// textHandler shapes and measures strings for canvas drawing.
var textHandler = text.Plain{Fonts: font.DefaultCache}

// style converts a TextStyle to the canvas text style.
func (s TextStyle) style() text.Style {
	clr := s.Color
	if clr == nil {
		clr = color.Black
	}
	return text.Style{
		Color:    clr,
		Font:     fontFace(s.Size),
		Rotation: s.Rotation,
		XAlign:   s.XAlign,
		YAlign:   s.YAlign,
		Handler:  textHandler,
	}
}

// tickLabelStyle returns the style for axis tick labels in the given color.
func tickLabelStyle(clr color.Color) text.Style {
	return TextStyle{
		Size:   vg.Points(9),
		Color:  clr,
		XAlign: text.XCenter,
		YAlign: text.YBottom,
	}.style()
}

// axisLabelStyle returns the style for axis titles in the given color.
func axisLabelStyle(clr color.Color) text.Style {
	return TextStyle{
		Size:   vg.Points(11),
		Color:  clr,
		XAlign: text.XCenter,
		YAlign: text.YBottom,
	}.style()
}
