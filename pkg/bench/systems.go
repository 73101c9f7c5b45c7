// Package bench times the distance functions over large batches of random
// point pairs, one coordinate system at a time.
package bench

import (
	"errors"
	"fmt"

	"coordbench/pkg/distance"
)

// ErrUnknownSystem is returned for a system name not in the registry.
var ErrUnknownSystem = errors.New("unknown system")

// CalcKind tells straight-line distances apart from surface distances.
type CalcKind string

const (
	KindDirect  CalcKind = "direct"
	KindSurface CalcKind = "surface"
)

// kernel computes the distances of pairs [lo, hi) and returns their sum.
type kernel func(lo, hi int) float64

// System is one benchmarked coordinate system.
type System struct {
	Name string
	Kind CalcKind
	// prepare generates n pairs and returns the timed computation over them.
	prepare func(g *Generator, n int) kernel
}

var registry = []System{
	{Name: "cartesian2d", Kind: KindDirect, prepare: prepareCartesian2D},
	{Name: "polar", Kind: KindDirect, prepare: preparePolar},
	{Name: "cartesian3d", Kind: KindDirect, prepare: prepareCartesian3D},
	{Name: "spherical_direct", Kind: KindDirect, prepare: prepareSphericalDirect},
	{Name: "spherical_surface", Kind: KindSurface, prepare: prepareSphericalSurface},
}

// Systems returns all registered systems in their canonical order.
func Systems() []System {
	out := make([]System, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered system names in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a system by name.
func Lookup(name string) (System, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return System{}, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

func prepareCartesian2D(g *Generator, n int) kernel {
	a, b := g.Points2D(n), g.Points2D(n)
	return func(lo, hi int) float64 {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += distance.Cartesian2D(a[i], b[i])
		}
		return sum
	}
}

func preparePolar(g *Generator, n int) kernel {
	a, b := g.PointsPolar(n), g.PointsPolar(n)
	return func(lo, hi int) float64 {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += distance.Polar(a[i], b[i])
		}
		return sum
	}
}

func prepareCartesian3D(g *Generator, n int) kernel {
	a, b := g.Points3D(n), g.Points3D(n)
	return func(lo, hi int) float64 {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += distance.Cartesian3D(a[i], b[i])
		}
		return sum
	}
}

func prepareSphericalDirect(g *Generator, n int) kernel {
	a, b := g.PointsSpherical(n, 0), g.PointsSpherical(n, 0)
	return func(lo, hi int) float64 {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += distance.SphericalDirect(a[i], b[i])
		}
		return sum
	}
}

func prepareSphericalSurface(g *Generator, n int) kernel {
	// Radii start at 1 so the mean radius is never degenerate.
	a, b := g.PointsSpherical(n, 1), g.PointsSpherical(n, 1)
	return func(lo, hi int) float64 {
		var sum float64
		for i := lo; i < hi; i++ {
			sum += distance.SphericalSurface(a[i], b[i])
		}
		return sum
	}
}
