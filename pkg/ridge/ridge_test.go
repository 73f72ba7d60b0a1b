package ridge

import (
	"math"
	"testing"

	"github.com/plotkit/plotkit/pkg/errors"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func xySeries(t *testing.T, pairs ...[2][]float64) []Series {
	t.Helper()
	out := make([]Series, 0, len(pairs))
	for _, p := range pairs {
		s, err := NewXY(p[0], p[1])
		if err != nil {
			t.Fatalf("NewXY() error = %v", err)
		}
		out = append(out, s)
	}
	return out
}

func ySeries(t *testing.T, ys ...[]float64) []Series {
	t.Helper()
	out := make([]Series, 0, len(ys))
	for _, y := range ys {
		s, err := NewY(y)
		if err != nil {
			t.Fatalf("NewY() error = %v", err)
		}
		out = append(out, s)
	}
	return out
}

func TestSeriesValidation(t *testing.T) {
	if _, err := NewXY([]float64{1, 2}, []float64{3}); !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("length mismatch error = %v, want INVALID_DATA", err)
	}
	if _, err := NewXY(nil, []float64{1}); !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("nil x error = %v, want INVALID_DATA", err)
	}
	if _, err := NewY(nil); !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("empty series error = %v, want INVALID_DATA", err)
	}
	if s, err := NewY([]float64{1, 2}); err != nil || s.hasX() {
		t.Errorf("NewY() = %+v, %v; want y-only series", s, err)
	}
}

func TestNewValidation(t *testing.T) {
	xy := xySeries(t, [2][]float64{{1, 2}, {3, 4}})
	yOnly := ySeries(t, []float64{1, 2})

	tests := []struct {
		name    string
		series  []Series
		opts    Options
		setters []Setter
		code    errors.Code
	}{
		{name: "empty collection", series: nil, code: errors.ErrCodeInvalidData},
		{name: "mixed variants", series: append(append([]Series{}, xy...), yOnly...),
			code: errors.ErrCodeInvalidData},
		{name: "invalid member", series: []Series{{Y: nil}}, code: errors.ErrCodeInvalidData},
		{name: "crop without x", series: yOnly, opts: Options{Crop: true},
			code: errors.ErrCodeInvalidOption},
		{name: "zero y scale", series: xy, setters: []Setter{WithYScale(0)},
			code: errors.ErrCodeInvalidInput},
		{name: "inverted y limits", series: xy, setters: []Setter{WithYLim(2, 1)},
			code: errors.ErrCodeInvalidInput},
		{name: "valid", series: xy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.series, tt.opts, tt.setters...)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("New() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func build(t *testing.T, series []Series, opts Options, setters ...Setter) *Ridge {
	t.Helper()
	r, err := New(series, opts, setters...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return r
}

func TestBuildStacksPanelsTopToBottom(t *testing.T) {
	series := ySeries(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	r := build(t, series, Options{})

	panels := r.Panels()
	if len(panels) != 3 {
		t.Fatalf("len(Panels()) = %d, want 3", len(panels))
	}
	if r.TopPanel() != panels[0] || r.BottomPanel() != panels[2] {
		t.Error("TopPanel/BottomPanel do not bracket the stack")
	}
	if len(r.Lines()) != 3 {
		t.Errorf("len(Lines()) = %d, want 3", len(r.Lines()))
	}

	for i := 1; i < len(panels); i++ {
		above, below := panels[i-1].Rect, panels[i].Rect
		if above.Bottom <= below.Bottom {
			t.Errorf("panel %d is not below panel %d", i, i-1)
		}
		// Adjacent panels touch exactly without squeeze.
		if gap := above.Bottom - below.Top(); !approx(gap, 0) {
			t.Errorf("panels %d and %d leave a gap of %v", i-1, i, gap)
		}
	}
	if !approx(panels[0].Rect.Top(), marginTop) || !approx(panels[2].Rect.Bottom, marginBottom) {
		t.Error("stack does not fill the vertical margins")
	}
}

func TestBuildSqueezeOverlapsPanels(t *testing.T) {
	series := ySeries(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	r := build(t, series, Options{Squeeze: true})

	panels := r.Panels()
	for i := 1; i < len(panels); i++ {
		above, below := panels[i-1].Rect, panels[i].Rect
		overlap := below.Top() - above.Bottom
		if !approx(overlap, above.Height/2) {
			t.Errorf("panels %d and %d overlap by %v, want half a panel height %v",
				i-1, i, overlap, above.Height/2)
		}
	}
	if !approx(panels[len(panels)-1].Rect.Bottom, marginBottom) {
		t.Error("bottom panel does not sit on the bottom margin")
	}
}

func TestXLimits(t *testing.T) {
	series := xySeries(t,
		[2][]float64{{1, 2, 3}, {6, 5, 7}},
		[2][]float64{{2, 3, 4}, {1, 2, 3}},
	)

	t.Run("widest", func(t *testing.T) {
		r := build(t, series, Options{})
		lo, hi := r.TopPanel().X.Min, r.TopPanel().X.Max
		if !approx(lo, 0.85) || !approx(hi, 4.15) {
			t.Errorf("x limits = (%v, %v), want (0.85, 4.15)", lo, hi)
		}
	})

	t.Run("crop", func(t *testing.T) {
		r := build(t, series, Options{Crop: true})
		lo, hi := r.TopPanel().X.Min, r.TopPanel().X.Max
		if !approx(lo, 1.95) || !approx(hi, 3.05) {
			t.Errorf("x limits = (%v, %v), want (1.95, 3.05)", lo, hi)
		}
	})

	t.Run("index limits for y-only data", func(t *testing.T) {
		r := build(t, ySeries(t, []float64{1, 2, 3}, []float64{1, 2, 3, 4, 5}), Options{})
		lo, hi := r.TopPanel().X.Min, r.TopPanel().X.Max
		if !approx(lo, -0.5) || !approx(hi, 4.5) {
			t.Errorf("x limits = (%v, %v), want (-0.5, 4.5)", lo, hi)
		}
	})

	t.Run("shared by all panels", func(t *testing.T) {
		r := build(t, series, Options{})
		for i, p := range r.Panels() {
			if p.X.Min != r.TopPanel().X.Min || p.X.Max != r.TopPanel().X.Max {
				t.Errorf("panel %d has its own x limits", i)
			}
		}
	})

	t.Run("log clamps lower bound", func(t *testing.T) {
		near := xySeries(t,
			[2][]float64{{0.01, 1, 100}, {1, 2, 3}},
			[2][]float64{{0.02, 2, 200}, {1, 2, 3}},
		)
		r := build(t, near, Options{}, WithPlotType(LogLog))
		if lo := r.TopPanel().X.Min; !approx(lo, 0.8*0.01) {
			t.Errorf("log x lower bound = %v, want %v", lo, 0.8*0.01)
		}
	})
}

func TestBottomPanelKeepsXLabels(t *testing.T) {
	series := ySeries(t, []float64{1}, []float64{2}, []float64{3})
	r := build(t, series, Options{}, WithXLabel("time"))

	panels := r.Panels()
	if !panels[2].X.LabelBottom || panels[2].X.Label != "time" {
		t.Error("bottom panel lost its x tick labels or label")
	}
	for i, p := range panels[:2] {
		if p.X.LabelBottom || p.X.TicksBottom {
			t.Errorf("panel %d should not show bottom x ticks", i)
		}
	}
	if panels[1].X.TicksTop {
		t.Error("interior panel should not show top x ticks")
	}
}

func TestInteriorSpinesHidden(t *testing.T) {
	series := ySeries(t, []float64{1}, []float64{2}, []float64{3})
	r := build(t, series, Options{})

	panels := r.Panels()
	if !panels[0].Spines.Top.Show || panels[0].Spines.Bottom.Show {
		t.Error("top panel should keep its top spine and hide its bottom spine")
	}
	if panels[1].Spines.Top.Show || panels[1].Spines.Bottom.Show {
		t.Error("interior panel should hide both horizontal spines")
	}
	if panels[2].Spines.Top.Show || !panels[2].Spines.Bottom.Show {
		t.Error("bottom panel should keep its bottom spine and hide its top spine")
	}
}

func TestSqueezeAlternatesLabelSides(t *testing.T) {
	series := ySeries(t, []float64{1}, []float64{2}, []float64{3})
	r := build(t, series, Options{Squeeze: true})

	for i, p := range r.Panels() {
		wantRight := i%2 == 1
		if p.Y.LabelRight != wantRight || p.Y.LabelLeft == wantRight {
			t.Errorf("panel %d labels: left=%v right=%v, want right side %v",
				i, p.Y.LabelLeft, p.Y.LabelRight, wantRight)
		}
	}
}

func TestSlalomAlternatesLabelsOnly(t *testing.T) {
	series := ySeries(t, []float64{1}, []float64{2})
	r := build(t, series, Options{Slalom: true})

	odd := r.Panels()[1]
	if odd.Y.LabelLeft || !odd.Y.LabelRight {
		t.Error("odd panel should label on the right under slalom")
	}
	if !odd.Y.TicksLeft {
		t.Error("slalom should not move the tick marks")
	}
}

func TestBlankOverridesCosmetics(t *testing.T) {
	series := ySeries(t, []float64{1}, []float64{2})
	r := build(t, series, Options{Blank: true, Grid: true, Squeeze: true})

	for i, p := range r.Panels() {
		if p.Spines.Top.Show || p.Spines.Bottom.Show || p.Spines.Left.Show || p.Spines.Right.Show {
			t.Errorf("panel %d still shows a spine", i)
		}
		if p.X.TicksBottom || p.Y.TicksLeft || p.X.LabelBottom || p.Y.LabelLeft || p.Y.LabelRight {
			t.Errorf("panel %d still shows ticks or labels", i)
		}
		if p.X.Grid.Show || p.Y.Grid.Show {
			t.Errorf("panel %d still shows a grid", i)
		}
	}
}

func TestSingleSeriesKeepsDefaultCosmetics(t *testing.T) {
	r := build(t, ySeries(t, []float64{1, 2, 3}), Options{Squeeze: true})

	p := r.Panels()[0]
	if !p.Spines.Top.Show || !p.Spines.Bottom.Show {
		t.Error("single panel should keep all spines")
	}
	if p.Y.LabelRight || !p.Y.LabelLeft {
		t.Error("single panel should keep left y labels")
	}
	if !p.X.LabelBottom {
		t.Error("single panel should keep bottom x labels")
	}
}

func TestGridStyles(t *testing.T) {
	series := ySeries(t, []float64{1}, []float64{2}, []float64{3})

	t.Run("full grid without squeeze", func(t *testing.T) {
		r := build(t, series, Options{Grid: true})
		for i, p := range r.Panels() {
			if !p.X.Grid.Show || !p.Y.Grid.Show {
				t.Errorf("panel %d misses grid lines", i)
			}
		}
	})

	t.Run("alternating dashes under squeeze", func(t *testing.T) {
		r := build(t, series, Options{Grid: true, Squeeze: true})
		panels := r.Panels()
		if panels[0].Y.Grid.LineStyle.Dashes != nil {
			t.Error("first panel should use a solid horizontal grid")
		}
		if panels[1].Y.Grid.LineStyle.Dashes == nil {
			t.Error("second panel should use a dashed horizontal grid")
		}
		if panels[2].Y.Grid.LineStyle.Dashes != nil {
			t.Error("third panel should return to a solid horizontal grid")
		}
	})
}

func TestSharedYLabelHost(t *testing.T) {
	series := ySeries(t, []float64{1, 5}, []float64{-2, 3})

	t.Run("anchored to global range", func(t *testing.T) {
		r := build(t, series, Options{}, WithYLabel("amplitude"))
		if r.host == nil {
			t.Fatal("no host panel for the shared y label")
		}
		if r.host.Y.Label != "amplitude" {
			t.Errorf("host label = %q", r.host.Y.Label)
		}
		if !approx(r.host.Y.Min, -2) || !approx(r.host.Y.Max, 5) {
			t.Errorf("host y limits = (%v, %v), want (-2, 5)", r.host.Y.Min, r.host.Y.Max)
		}
	})

	t.Run("log y clamps the minimum", func(t *testing.T) {
		r := build(t, series, Options{}, WithYLabel("amplitude"), WithPlotType(SemilogY))
		if !approx(r.host.Y.Min, 1e-3) {
			t.Errorf("host y minimum = %v, want 1e-3", r.host.Y.Min)
		}
	})

	t.Run("explicit limits win", func(t *testing.T) {
		r := build(t, series, Options{}, WithYLabel("amplitude"), WithYLim(0, 10))
		if !approx(r.host.Y.Min, 0) || !approx(r.host.Y.Max, 10) {
			t.Errorf("host y limits = (%v, %v), want (0, 10)", r.host.Y.Min, r.host.Y.Max)
		}
	})

	t.Run("absent without a label", func(t *testing.T) {
		r := build(t, series, Options{})
		if r.host != nil {
			t.Error("host panel created without a y label")
		}
	})
}

func TestExplicitYLimitsApplyToEveryPanel(t *testing.T) {
	series := ySeries(t, []float64{1, 5}, []float64{-2, 3})
	r := build(t, series, Options{}, WithYLim(-10, 10))

	for i, p := range r.Panels() {
		if !approx(p.Y.Min, -10) || !approx(p.Y.Max, 10) {
			t.Errorf("panel %d y limits = (%v, %v), want (-10, 10)", i, p.Y.Min, p.Y.Max)
		}
	}
}

func TestDotsOption(t *testing.T) {
	r := build(t, ySeries(t, []float64{1, 2}), Options{Dots: true})
	if !r.Lines()[0].Dots {
		t.Error("dots option did not mark the line")
	}
}

func TestRebuildResetsState(t *testing.T) {
	r := build(t, ySeries(t, []float64{1}, []float64{2}), Options{})
	if err := r.Build(); err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	if len(r.Panels()) != 2 || len(r.Lines()) != 2 {
		t.Errorf("rebuild kept stale state: %d panels, %d lines",
			len(r.Panels()), len(r.Lines()))
	}
}

func TestPanelYLimits(t *testing.T) {
	tests := []struct {
		name   string
		y      []float64
		log    bool
		lo, hi float64
	}{
		{name: "padded", y: []float64{0, 10}, lo: -0.5, hi: 10.5},
		{name: "degenerate", y: []float64{3, 3}, lo: 2.5, hi: 3.5},
		{name: "log", y: []float64{1, 100}, log: true, lo: 0.8, hi: 125},
		{name: "log skips nonpositive", y: []float64{-5, 2, 4}, log: true, lo: 1.6, hi: 5},
		{name: "log all nonpositive", y: []float64{-1, 0}, log: true, lo: 0.1, hi: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := panelYLimits(tt.y, tt.log)
			if !approx(lo, tt.lo) || !approx(hi, tt.hi) {
				t.Errorf("panelYLimits(%v, %v) = (%v, %v), want (%v, %v)",
					tt.y, tt.log, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}
