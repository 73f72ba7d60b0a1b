package figure

// Rect is a panel rectangle in figure-normalized coordinates.
// All fields live in [0, 1] for panels that fit the canvas; the origin is
// the bottom-left corner of the figure.
type Rect struct {
	Left, Bottom  float64
	Width, Height float64
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Top returns the top edge of the rectangle.
func (r Rect) Top() float64 { return r.Bottom + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Bottom + r.Height/2 }

// Overlaps reports whether r and o share interior area. Touching edges do
// not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Bottom < o.Top() && o.Bottom < r.Top()
}

// Inside reports whether r lies within the unit square scaled vertically by
// top. Passing top=1 checks containment in [0,1]×[0,1].
func (r Rect) Inside(top float64) bool {
	return r.Left >= 0 && r.Bottom >= 0 && r.Right() <= 1 && r.Top() <= top
}
