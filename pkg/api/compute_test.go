package api

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coordbench/pkg/bench"
)

func mustSystem(t *testing.T, name string) bench.System {
	t.Helper()
	sys, err := bench.Lookup(name)
	require.NoError(t, err)
	return sys
}

func TestComputeDistance(t *testing.T) {
	two := 2.0

	tests := []struct {
		name   string
		system string
		p1, p2 []float64
		radius *float64
		want   float64
	}{
		{name: "cartesian2d", system: "cartesian2d", p1: []float64{0, 0}, p2: []float64{3, 4}, want: 5},
		{name: "polar", system: "polar", p1: []float64{3, 0}, p2: []float64{4, math.Pi / 2}, want: 5},
		{name: "cartesian3d", system: "cartesian3d", p1: []float64{1, 2, 3}, p2: []float64{3, 5, 9}, want: 7},
		{name: "spherical_direct", system: "spherical_direct", p1: []float64{1, 0, 0}, p2: []float64{1, math.Pi, 0}, want: 2},
		{name: "surface mean radius", system: "spherical_surface", p1: []float64{2, 0, 0}, p2: []float64{4, math.Pi / 2, 0}, want: 3 * math.Pi / 2},
		{name: "surface explicit radius", system: "spherical_surface", p1: []float64{2, 0, 0}, p2: []float64{4, math.Pi / 2, 0}, radius: &two, want: math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := computeDistance(mustSystem(t, tt.system), tt.p1, tt.p2, tt.radius)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestComputeDistanceErrors(t *testing.T) {
	r := 1.0

	_, err := computeDistance(mustSystem(t, "cartesian3d"), []float64{1, 2}, []float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = computeDistance(mustSystem(t, "polar"), []float64{1, 2}, []float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = computeDistance(mustSystem(t, "spherical_direct"), []float64{1, 0, 0}, []float64{1, 0, 0}, &r)
	assert.ErrorIs(t, err, ErrRadiusNotAllowed)
}
