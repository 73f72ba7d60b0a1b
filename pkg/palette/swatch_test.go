package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/figure"
)

func swatchPanel() *figure.Panel {
	f := figure.NewInches(4, 0.5)
	return f.AddPanel(figure.Rect{Left: 0.05, Bottom: 0.1, Width: 0.9, Height: 0.8})
}

func TestSwatchDefaults(t *testing.T) {
	p := swatchPanel()
	colors, err := FromName("viridis", 6)
	require.NoError(t, err)

	require.NoError(t, Swatch(p, colors))

	// Default swatch hides ticks but keeps no border either.
	assert.False(t, p.X.TicksBottom)
	assert.False(t, p.Y.TicksLeft)
	assert.False(t, p.Spines.Bottom.Show)
	assert.Equal(t, 6.0, p.X.Max)
	assert.Equal(t, 1.0, p.Y.Max)
}

func TestSwatchVerticalWithBorder(t *testing.T) {
	p := swatchPanel()
	require.NoError(t, Swatch(p, []string{"#ff0000", "#00ff00"}, Vertical(), WithBorder(), WithTicks()))

	assert.True(t, p.Spines.Bottom.Show)
	assert.True(t, p.X.TicksBottom)
	assert.Equal(t, 1.0, p.X.Max)
	assert.Equal(t, 2.0, p.Y.Max)
}

func TestSwatchErrors(t *testing.T) {
	p := swatchPanel()
	err := Swatch(p, nil)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))

	err = Swatch(p, []string{"bogus"})
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestSwatchMap(t *testing.T) {
	p := swatchPanel()
	m, err := MapFromName("plasma", 32)
	require.NoError(t, err)

	require.NoError(t, SwatchMap(p, m, WithResolution(64)))
	assert.Equal(t, 64.0, p.X.Max)

	err = SwatchMap(swatchPanel(), m, WithResolution(1))
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}
