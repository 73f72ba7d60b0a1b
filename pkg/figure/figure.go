// Package figure implements the drawing surface shared by the plotkit
// helpers: a figure holds panels, a panel holds axes and plotted series.
//
// Panels are drawn directly on a gonum/plot vector-graphics canvas rather
// than through plot.Plot, because the helpers need per-panel control that
// the high-level plot type does not expose: individually colored spines,
// tick marks and labels toggled per edge, y-tick labels alternating between
// the left and right side, and panels that overlap vertically. Tick
// placement, text shaping, fonts, line clipping and the PNG/SVG/PDF
// backends all come from gonum/plot.
//
// A Figure is constructed, populated and rendered once; nothing persists
// across Save calls beyond the figure value itself.
package figure

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultColors is the color cycle assigned to successive series when the
// caller does not choose colors explicitly. It aliases the gonum/plot
// plotutil palette.
var DefaultColors = plotutil.DefaultColors

// Color returns the i-th color of the default cycle, wrapping around when
// i exceeds the cycle length.
func Color(i int) color.Color { return plotutil.Color(i) }

// Figure is a drawing canvas with a fixed physical size and an ordered
// list of panels.
type Figure struct {
	Width, Height vg.Length

	panels []*Panel
}

// New returns an empty figure with the given physical size.
func New(w, h vg.Length) *Figure {
	return &Figure{Width: w, Height: h}
}

// NewInches returns an empty figure sized in inches, the unit figure
// dimensions are conventionally quoted in.
func NewInches(w, h float64) *Figure {
	return New(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch)
}

// AddPanel appends a panel covering the given normalized rectangle and
// returns it. Panels are drawn in insertion order, so later panels paint
// over earlier ones where they overlap.
func (f *Figure) AddPanel(r Rect) *Panel {
	p := &Panel{
		Rect:   r,
		X:      defaultXAxis(),
		Y:      defaultYAxis(),
		Spines: defaultSpines(),
	}
	f.panels = append(f.panels, p)
	return p
}

// Panels returns the figure's panels in insertion order.
func (f *Figure) Panels() []*Panel { return f.panels }

// Draw renders the figure onto dc. Panel content is drawn first, then
// every legend overlay, so legends sit on top of neighbouring panels.
func (f *Figure) Draw(dc draw.Canvas) {
	for _, p := range f.panels {
		f.drawPanel(dc, p)
	}
	for _, p := range f.panels {
		if p.Legend != nil {
			p.Legend.DrawOverlay(dc, p)
		}
	}
}

// WritePNG renders the figure and writes it as a PNG image.
func (f *Figure) WritePNG(w io.Writer) error {
	img := vgimg.New(f.Width, f.Height)
	f.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}

// WriteSVG renders the figure and writes it as an SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	c := vgsvg.New(f.Width, f.Height)
	f.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// WritePDF renders the figure and writes it as a PDF document.
func (f *Figure) WritePDF(w io.Writer) error {
	c := vgpdf.New(f.Width, f.Height)
	f.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// Save renders the figure to the file at path, choosing the format from
// the file extension. Supported extensions are .png, .svg and .pdf.
func (f *Figure) Save(path string) error {
	write, err := writerFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f, out); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return out.Close()
}

func writerFor(path string) (func(*Figure, io.Writer) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return (*Figure).WritePNG, nil
	case ".svg":
		return (*Figure).WriteSVG, nil
	case ".pdf":
		return (*Figure).WritePDF, nil
	default:
		return nil, fmt.Errorf("unsupported figure format %q", filepath.Ext(path))
	}
}
