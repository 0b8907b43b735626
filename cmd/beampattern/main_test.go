package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevationGrid(t *testing.T) {
	// a step that divides 90 evenly reaches 90 exactly
	el := elevation_grid(0.5)
	require.Len(t, el, 181)
	assert.Equal(t, 0.0, el[0])
	assert.Equal(t, 90.0, el[180])
	assert.Equal(t, 0.5, el[1]-el[0])

	// a step that does not divide 90 keeps the requested spacing and stops
	// short of 90 instead of silently stretching the step
	el = elevation_grid(0.7)
	require.Len(t, el, 129)
	assert.Equal(t, 0.7, el[1])
	assert.InDelta(t, 89.6, el[128], 1e-9)
	assert.LessOrEqual(t, el[128], 90.0)

	el = elevation_grid(30.0)
	assert.Equal(t, []float64{0.0, 30.0, 60.0, 90.0}, el)
}
