package bench

import (
	"math"
	"math/rand/v2"

	"coordbench/pkg/coords"
	"coordbench/pkg/geo"
)

// coordScale bounds random Cartesian components and radii to [0, coordScale).
const coordScale = 100.0

// Generator produces random points for the benchmarks.
// It is not safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	samples []geo.LatLng
}

// NewGenerator returns a generator seeded with seed. When samples is
// non-empty, spherical points are drawn from it and placed on the Earth
// sphere instead of being fully random.
func NewGenerator(seed uint64, samples []geo.LatLng) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		samples: samples,
	}
}

func (g *Generator) angle() float64 {
	return g.rng.Float64()*2*math.Pi - math.Pi
}

// Points2D returns n points with components in [0, 100).
func (g *Generator) Points2D(n int) []coords.Point2D {
	pts := make([]coords.Point2D, n)
	for i := range pts {
		pts[i] = coords.Point2D{X: g.rng.Float64() * coordScale, Y: g.rng.Float64() * coordScale}
	}
	return pts
}

// PointsPolar returns n points with radius in [0, 100) and angle in [-π, π).
func (g *Generator) PointsPolar(n int) []coords.PointPolar {
	pts := make([]coords.PointPolar, n)
	for i := range pts {
		pts[i] = coords.PointPolar{R: g.rng.Float64() * coordScale, Theta: g.angle()}
	}
	return pts
}

// Points3D returns n points with components in [0, 100).
func (g *Generator) Points3D(n int) []coords.Point3D {
	pts := make([]coords.Point3D, n)
	for i := range pts {
		pts[i] = coords.Point3D{
			X: g.rng.Float64() * coordScale,
			Y: g.rng.Float64() * coordScale,
			Z: g.rng.Float64() * coordScale,
		}
	}
	return pts
}

// PointsSpherical returns n points with radius in [minR, minR+100), azimuth
// in [-π, π) and elevation in [-π/2, π/2).
func (g *Generator) PointsSpherical(n int, minR float64) []coords.PointSpherical {
	pts := make([]coords.PointSpherical, n)
	if len(g.samples) > 0 {
		for i := range pts {
			ll := g.samples[g.rng.IntN(len(g.samples))]
			pts[i] = geo.ToSpherical(ll, geo.EarthRadiusMeters)
		}
		return pts
	}
	for i := range pts {
		pts[i] = coords.PointSpherical{
			R:     minR + g.rng.Float64()*coordScale,
			Theta: g.angle(),
			Phi:   g.rng.Float64()*math.Pi - math.Pi/2,
		}
	}
	return pts
}
