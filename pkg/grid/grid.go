// Package grid arranges multi-panel figures on a regular rows × columns
// layout, similar to sub-figure environments in typeset documents.
//
// Each panel gets an index label ("(a)", "(b)", ...) drawn just outside its
// top-left corner, and panels can share an axis direction so that adjoining
// panels touch without wasted whitespace, with interior tick labels
// suppressed.
package grid

import (
	"fmt"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/figure"
)

// Base panel dimensions in inches. A single panel is sized for a
// two-column paper figure; grids scale linearly from it.
const (
	panelWidth  = 3.37
	panelHeight = 2.08277
	// squashFrac is the per-panel fraction removed in a shared-axis
	// direction, closing the gap otherwise reserved for tick labels.
	squashFrac = 0.25
)

// Share selects which axis direction adjoining panels share.
type Share int

const (
	// ShareNone keeps every panel fully separate.
	ShareNone Share = iota
	// ShareX stacks rows so vertically adjoining panels touch.
	ShareX
	// ShareY packs columns so horizontally adjoining panels touch.
	ShareY
	// ShareBoth shares both directions.
	ShareBoth
)

func (s Share) sharesX() bool { return s == ShareX || s == ShareBoth }
func (s Share) sharesY() bool { return s == ShareY || s == ShareBoth }

type config struct {
	labels       []string
	labelPos     [2]float64
	share        Share
	columnsFirst bool
	expandTop    float64
}

// Option adjusts the grid layout.
type Option func(*config)

// WithLabels overrides the default per-panel labels. The override only
// takes effect when exactly rows*columns labels are given; otherwise the
// default letter labels are used.
func WithLabels(labels []string) Option {
	return func(c *config) { c.labels = labels }
}

// WithLabelPos sets the label anchor in panel-fraction coordinates,
// relative to each panel's bottom-left corner. The default (-0.2, 0.95)
// sits just outside the top-left corner.
func WithLabelPos(x, y float64) Option {
	return func(c *config) { c.labelPos = [2]float64{x, y} }
}

// WithShare makes panels share an axis direction.
func WithShare(s Share) Option {
	return func(c *config) { c.share = s }
}

// WithColumnsFirst numbers the panel labels down each column before moving
// to the next, instead of across each row.
func WithColumnsFirst() Option {
	return func(c *config) { c.columnsFirst = true }
}

// WithExpandTop multiplies the total figure height by f while keeping the
// panels' absolute size, reserving blank space above the grid for a shared
// legend.
func WithExpandTop(f float64) Option {
	return func(c *config) { c.expandTop = f }
}

// New creates a figure with rows × columns panels. Panels are returned in
// row-major order with row 0 at the top of the figure.
func New(rows, columns int, opts ...Option) (*figure.Figure, []*figure.Panel, error) {
	if rows < 1 || columns < 1 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"grid needs at least one row and one column, got %d×%d", rows, columns)
	}
	cfg := config{labelPos: [2]float64{-0.2, 0.95}, expandTop: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.expandTop < 1 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"expand-top factor must be at least 1, got %v", cfg.expandTop)
	}

	height, width := figSize(rows, columns, cfg.share)
	fig := figure.NewInches(width, height*cfg.expandTop)

	labels := panelLabels(rows, columns, cfg)
	panels := make([]*figure.Panel, 0, rows*columns)
	for r := 0; r < rows; r++ {
		bottom, h := rowExtent(r, rows, cfg)
		for c := 0; c < columns; c++ {
			left, w := colExtent(c, columns, cfg)
			p := fig.AddPanel(figure.Rect{Left: left, Bottom: bottom, Width: w, Height: h})
			if cfg.share.sharesX() && r != rows-1 {
				p.X.LabelBottom = false
			}
			if cfg.share.sharesY() && c != 0 {
				p.Y.LabelLeft = false
			}
			p.Text(cfg.labelPos[0], cfg.labelPos[1], labels[columns*r+c], figure.DefaultTextStyle())
			panels = append(panels, p)
		}
	}
	return fig, panels, nil
}

// figSize returns the physical (height, width) in inches. A shared-axis
// direction squashes every panel past the first by squashFrac.
func figSize(rows, columns int, share Share) (height, width float64) {
	width = panelWidth * float64(columns)
	if share.sharesY() {
		width -= float64(columns-1) * panelWidth * squashFrac
	}
	height = panelHeight * float64(rows)
	if share.sharesX() {
		height -= float64(rows-1) * panelHeight * squashFrac
	}
	return height, width
}

// rowExtent returns the bottom edge and height of row r. Row 0 is the top
// row. With a shared x-axis the rows stack without gaps; otherwise each
// row keeps a bottom padding for its tick labels.
func rowExtent(r, rows int, cfg config) (bottom, height float64) {
	n := float64(rows)
	if cfg.share.sharesX() {
		rel := 0.75 + squashFrac/n/cfg.expandTop
		height = 0.75 / n / rel / cfg.expandTop
		pad := 0.2 / n / rel / cfg.expandTop
		return pad + height*float64(rows-1-r), height
	}
	pad := 0.2 / n
	height = 0.75 / n / cfg.expandTop
	return pad + float64(rows-1-r)/n/cfg.expandTop, height
}

// colExtent returns the left edge and width of column c.
func colExtent(c, columns int, cfg config) (left, width float64) {
	n := float64(columns)
	if cfg.share.sharesY() {
		rel := 0.75 + squashFrac/n
		width = 0.75 / n / rel
		pad := 0.2 / n / rel
		return pad + width*float64(c), width
	}
	pad := 0.2 / n
	width = 0.75 / n
	return pad + float64(c)/n, width
}

// panelLabels returns one label per panel in row-major panel order.
func panelLabels(rows, columns int, cfg config) []string {
	count := rows * columns
	labels := cfg.labels
	if len(labels) != count {
		labels = make([]string, count)
		for i := range labels {
			labels[i] = fmt.Sprintf("(%c)", 'a'+rune(i%26))
		}
	}
	if cfg.columnsFirst {
		ordered := make([]string, 0, count)
		for r := 0; r < rows; r++ {
			for c := 0; c < columns; c++ {
				ordered = append(ordered, labels[c*rows+r])
			}
		}
		labels = ordered
	}
	return labels
}
