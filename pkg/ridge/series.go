package ridge

import (
	"github.com/plotkit/plotkit/pkg/errors"
)

// Series is the data of a single ridge. When X is nil the values in Y are
// plotted against their indices. A collection passed to New must be
// homogeneous: either every series carries explicit x values or none does.
type Series struct {
	X []float64
	Y []float64
}

// NewXY builds a series from paired x and y values.
func NewXY(x, y []float64) (Series, error) {
	s := Series{X: x, Y: y}
	if x == nil {
		return Series{}, errors.New(errors.ErrCodeInvalidData, "x values must not be nil")
	}
	if err := s.validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

// NewY builds a series from y values alone.
func NewY(y []float64) (Series, error) {
	s := Series{Y: y}
	if err := s.validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

func (s Series) validate() error {
	if len(s.Y) == 0 {
		return errors.New(errors.ErrCodeInvalidData, "series must contain at least one point")
	}
	if s.X != nil && len(s.X) != len(s.Y) {
		return errors.New(errors.ErrCodeInvalidData,
			"x and y must have equal length, got %d and %d", len(s.X), len(s.Y))
	}
	return nil
}

// hasX reports whether the series carries explicit x values.
func (s Series) hasX() bool { return s.X != nil }
