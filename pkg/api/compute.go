package api

import (
	"errors"
	"fmt"

	"coordbench/pkg/bench"
	"coordbench/pkg/coords"
	"coordbench/pkg/distance"
)

// Representation names accepted by the convert endpoint.
const (
	reprCartesian2D = "cartesian2d"
	reprPolar       = "polar"
	reprCartesian3D = "cartesian3d"
	reprSpherical   = "spherical"
)

var (
	// ErrDimensionMismatch is returned when a point has the wrong number of components.
	ErrDimensionMismatch = errors.New("wrong number of point components")
	// ErrUnknownRepresentation is returned for an unsupported convert source.
	ErrUnknownRepresentation = errors.New("unknown representation")
	// ErrRadiusNotAllowed is returned when a radius is sent for a system without one.
	ErrRadiusNotAllowed = errors.New("radius only applies to spherical_surface")
)

// components returns how many values a point of the named system has.
func components(system string) int {
	switch system {
	case "cartesian2d", "polar":
		return 2
	default:
		return 3
	}
}

func checkDims(p []float64, want int) error {
	if len(p) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(p), want)
	}
	return nil
}

// computeDistance evaluates sys on two raw points.
func computeDistance(sys bench.System, p1, p2 []float64, radius *float64) (float64, error) {
	system := sys.Name
	if radius != nil && system != "spherical_surface" {
		return 0, ErrRadiusNotAllowed
	}
	n := components(system)
	if err := checkDims(p1, n); err != nil {
		return 0, err
	}
	if err := checkDims(p2, n); err != nil {
		return 0, err
	}

	switch system {
	case "cartesian2d":
		return distance.Cartesian2D(coords.Point2D{X: p1[0], Y: p1[1]}, coords.Point2D{X: p2[0], Y: p2[1]}), nil
	case "polar":
		return distance.Polar(coords.PointPolar{R: p1[0], Theta: p1[1]}, coords.PointPolar{R: p2[0], Theta: p2[1]}), nil
	case "cartesian3d":
		return distance.Cartesian3D(
			coords.Point3D{X: p1[0], Y: p1[1], Z: p1[2]},
			coords.Point3D{X: p2[0], Y: p2[1], Z: p2[2]},
		), nil
	}

	a := coords.PointSpherical{R: p1[0], Theta: p1[1], Phi: p1[2]}
	b := coords.PointSpherical{R: p2[0], Theta: p2[1], Phi: p2[2]}
	if system == "spherical_direct" {
		return distance.SphericalDirect(a, b), nil
	}
	if radius != nil {
		return distance.SphericalSurface(a, b, *radius), nil
	}
	return distance.SphericalSurface(a, b), nil
}

// convert maps a raw point to its counterpart representation.
func convert(from string, p []float64) (string, []float64, error) {
	switch from {
	case reprPolar:
		if err := checkDims(p, 2); err != nil {
			return "", nil, err
		}
		x, y := coords.PolarToCart(p[0], p[1])
		return reprCartesian2D, []float64{x, y}, nil
	case reprCartesian2D:
		if err := checkDims(p, 2); err != nil {
			return "", nil, err
		}
		r, theta := coords.CartToPolar(p[0], p[1])
		return reprPolar, []float64{r, theta}, nil
	case reprSpherical:
		if err := checkDims(p, 3); err != nil {
			return "", nil, err
		}
		x, y, z := coords.SphericalToCart(p[0], p[1], p[2])
		return reprCartesian3D, []float64{x, y, z}, nil
	case reprCartesian3D:
		if err := checkDims(p, 3); err != nil {
			return "", nil, err
		}
		r, theta, phi := coords.CartToSpherical(p[0], p[1], p[2])
		return reprSpherical, []float64{r, theta, phi}, nil
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnknownRepresentation, from)
}
