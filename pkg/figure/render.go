package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tick geometry in points. Ticks point outward from the panel edge, labels
// sit just past the major tick marks.
const (
	majorTickLen = vg.Length(3.5)
	minorTickLen = vg.Length(2)
	tickPad      = vg.Length(2)
	xLabelOffset = vg.Length(18)
	yLabelOffset = vg.Length(28)
	spineWidth   = vg.Length(0.8)
)

func (f *Figure) drawPanel(dc draw.Canvas, p *Panel) {
	rect := p.CanvasRect(dc)
	sub := draw.Canvas{Canvas: dc.Canvas, Rectangle: rect}

	if p.Background != nil {
		sub.FillPolygon(p.Background, rectCorners(rect))
	}

	p.drawGrid(sub)
	p.drawBoxes(sub)
	p.drawLines(sub)
	p.drawSpines(sub)
	p.drawXTicks(sub)
	p.drawYTicks(sub)
	p.drawAxisLabels(sub)
	p.drawAnnotations(sub)
}

func rectCorners(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func (p *Panel) drawGrid(c draw.Canvas) {
	r := c.Rectangle
	if p.X.Grid.Show {
		sty := gridLineStyle(p.X.Grid)
		for _, t := range p.X.ticks() {
			if t.IsMinor() {
				continue
			}
			u := p.X.norm(t.Value)
			if !inUnit(u) {
				continue
			}
			x := lerp(r.Min.X, r.Max.X, u)
			c.StrokeLine2(sty, x, r.Min.Y, x, r.Max.Y)
		}
	}
	if p.Y.Grid.Show {
		sty := gridLineStyle(p.Y.Grid)
		for _, t := range p.Y.ticks() {
			if t.IsMinor() {
				continue
			}
			v := p.Y.norm(t.Value)
			if !inUnit(v) {
				continue
			}
			y := lerp(r.Min.Y, r.Max.Y, v)
			c.StrokeLine2(sty, r.Min.X, y, r.Max.X, y)
		}
	}
}

func gridLineStyle(g Grid) draw.LineStyle {
	if g.LineStyle.Color == nil {
		return GridStyle(false, 0.2)
	}
	return g.LineStyle
}

func (p *Panel) drawBoxes(c draw.Canvas) {
	for _, b := range p.boxes {
		p0 := p.dataPoint(c.Rectangle, b.x0, b.y0)
		p1 := p.dataPoint(c.Rectangle, b.x1, b.y1)
		c.FillPolygon(b.color, []vg.Point{
			{X: p0.X, Y: p0.Y},
			{X: p1.X, Y: p0.Y},
			{X: p1.X, Y: p1.Y},
			{X: p0.X, Y: p1.Y},
		})
	}
}

func (p *Panel) drawLines(c draw.Canvas) {
	for _, ln := range p.lines {
		pts := make([]vg.Point, len(ln.Y))
		for i := range ln.Y {
			pts[i] = p.dataPoint(c.Rectangle, ln.X[i], ln.Y[i])
		}
		for _, seg := range splitFinite(pts) {
			c.StrokeLines(ln.Style, c.ClipLinesXY(seg)...)
		}
		if ln.Dots {
			g := draw.GlyphStyle{
				Color:  ln.Style.Color,
				Radius: vg.Points(1.5),
				Shape:  draw.CircleGlyph{},
			}
			for _, pt := range pts {
				if c.Contains(pt) {
					c.DrawGlyph(g, pt)
				}
			}
		}
	}
}

// splitFinite breaks a polyline at non-finite points, which appear when a
// log-scaled axis is asked to place a non-positive value.
func splitFinite(pts []vg.Point) [][]vg.Point {
	var segs [][]vg.Point
	var cur []vg.Point
	for _, pt := range pts {
		if isFinite(pt) {
			cur = append(cur, pt)
			continue
		}
		if len(cur) > 1 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	if len(cur) > 1 {
		segs = append(segs, cur)
	}
	return segs
}

func isFinite(pt vg.Point) bool {
	x, y := float64(pt.X), float64(pt.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

func (p *Panel) drawSpines(c draw.Canvas) {
	r := c.Rectangle
	stroke := func(s SpineStyle, x0, y0, x1, y1 vg.Length) {
		if !s.Show {
			return
		}
		clr := s.Color
		if clr == nil {
			clr = color.Black
		}
		c.StrokeLine2(draw.LineStyle{Color: clr, Width: spineWidth}, x0, y0, x1, y1)
	}
	stroke(p.Spines.Bottom, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y)
	stroke(p.Spines.Top, r.Min.X, r.Max.Y, r.Max.X, r.Max.Y)
	stroke(p.Spines.Left, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y)
	stroke(p.Spines.Right, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func (p *Panel) drawXTicks(c draw.Canvas) {
	if !p.X.TicksBottom && !p.X.TicksTop && !p.X.LabelBottom {
		return
	}
	r := c.Rectangle
	clr := p.X.color()
	sty := draw.LineStyle{Color: clr, Width: spineWidth}
	lbl := tickLabelStyle(clr)
	lbl.YAlign = text.YTop
	for _, t := range p.X.ticks() {
		u := p.X.norm(t.Value)
		if !inUnit(u) {
			continue
		}
		x := lerp(r.Min.X, r.Max.X, u)
		length := majorTickLen
		if t.IsMinor() {
			length = minorTickLen
		}
		if p.X.TicksBottom {
			c.StrokeLine2(sty, x, r.Min.Y, x, r.Min.Y-length)
		}
		if p.X.TicksTop {
			c.StrokeLine2(sty, x, r.Max.Y, x, r.Max.Y+length)
		}
		if p.X.LabelBottom && !t.IsMinor() && t.Label != "" {
			c.FillText(lbl, vg.Point{X: x, Y: r.Min.Y - majorTickLen - tickPad}, t.Label)
		}
	}
}

func (p *Panel) drawYTicks(c draw.Canvas) {
	if !p.Y.TicksLeft && !p.Y.TicksRight && !p.Y.LabelLeft && !p.Y.LabelRight {
		return
	}
	r := c.Rectangle
	clr := p.Y.color()
	sty := draw.LineStyle{Color: clr, Width: spineWidth}

	left := tickLabelStyle(clr)
	left.XAlign = text.XRight
	left.YAlign = text.YCenter
	right := tickLabelStyle(clr)
	right.XAlign = text.XLeft
	right.YAlign = text.YCenter

	for _, t := range p.Y.ticks() {
		v := p.Y.norm(t.Value)
		if !inUnit(v) {
			continue
		}
		y := lerp(r.Min.Y, r.Max.Y, v)
		length := majorTickLen
		if t.IsMinor() {
			length = minorTickLen
		}
		if p.Y.TicksLeft {
			c.StrokeLine2(sty, r.Min.X, y, r.Min.X-length, y)
		}
		if p.Y.TicksRight {
			c.StrokeLine2(sty, r.Max.X, y, r.Max.X+length, y)
		}
		if t.IsMinor() || t.Label == "" {
			continue
		}
		if p.Y.LabelLeft {
			c.FillText(left, vg.Point{X: r.Min.X - majorTickLen - tickPad, Y: y}, t.Label)
		}
		if p.Y.LabelRight {
			c.FillText(right, vg.Point{X: r.Max.X + majorTickLen + tickPad, Y: y}, t.Label)
		}
	}
}

func (p *Panel) drawAxisLabels(c draw.Canvas) {
	r := c.Rectangle
	if p.X.Label != "" {
		sty := axisLabelStyle(p.X.color())
		sty.YAlign = text.YTop
		pt := vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: r.Min.Y - xLabelOffset}
		c.FillText(sty, pt, p.X.Label)
	}
	if p.Y.Label != "" {
		sty := axisLabelStyle(p.Y.color())
		sty.Rotation = math.Pi / 2
		pt := vg.Point{X: r.Min.X - yLabelOffset, Y: (r.Min.Y + r.Max.Y) / 2}
		c.FillText(sty, pt, p.Y.Label)
	}
}

func (p *Panel) drawAnnotations(c draw.Canvas) {
	for _, a := range p.annotations {
		c.FillText(a.style.style(), p.fracPoint(c.Rectangle, a.x, a.y), a.text)
	}
}

func lerp(lo, hi vg.Length, t float64) vg.Length {
	return lo + vg.Length(t)*(hi-lo)
}

func inUnit(t float64) bool {
	const eps = 1e-9
	return !math.IsNaN(t) && t >= -eps && t <= 1+eps
}
