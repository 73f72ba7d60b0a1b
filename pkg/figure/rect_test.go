package figure

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{Left: 0.1, Bottom: 0.2, Width: 0.5, Height: 0.25}

	if got := r.Right(); got != 0.6 {
		t.Errorf("Right() = %v, want 0.6", got)
	}
	if got := r.Top(); got != 0.45 {
		t.Errorf("Top() = %v, want 0.45", got)
	}
	if got := r.CenterX(); got != 0.35 {
		t.Errorf("CenterX() = %v, want 0.35", got)
	}
	if got := r.CenterY(); got != 0.325 {
		t.Errorf("CenterY() = %v, want 0.325", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "disjoint",
			a:    Rect{Left: 0, Bottom: 0, Width: 0.4, Height: 0.4},
			b:    Rect{Left: 0.5, Bottom: 0.5, Width: 0.4, Height: 0.4},
			want: false,
		},
		{
			name: "touching edges",
			a:    Rect{Left: 0, Bottom: 0, Width: 0.5, Height: 1},
			b:    Rect{Left: 0.5, Bottom: 0, Width: 0.5, Height: 1},
			want: false,
		},
		{
			name: "overlapping",
			a:    Rect{Left: 0, Bottom: 0, Width: 0.6, Height: 0.6},
			b:    Rect{Left: 0.5, Bottom: 0.5, Width: 0.4, Height: 0.4},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{Left: 0, Bottom: 0, Width: 1, Height: 1},
			b:    Rect{Left: 0.25, Bottom: 0.25, Width: 0.5, Height: 0.5},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInside(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		top  float64
		want bool
	}{
		{
			name: "unit square",
			r:    Rect{Left: 0, Bottom: 0, Width: 1, Height: 1},
			top:  1,
			want: true,
		},
		{
			name: "poking out right",
			r:    Rect{Left: 0.7, Bottom: 0, Width: 0.4, Height: 0.5},
			top:  1,
			want: false,
		},
		{
			name: "negative left",
			r:    Rect{Left: -0.1, Bottom: 0, Width: 0.4, Height: 0.5},
			top:  1,
			want: false,
		},
		{
			name: "expanded top",
			r:    Rect{Left: 0, Bottom: 0.9, Width: 0.5, Height: 0.3},
			top:  1.3,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inside(tt.top); got != tt.want {
				t.Errorf("Inside(%v) = %v, want %v", tt.top, got, tt.want)
			}
		})
	}
}
