// Package distance computes scalar distances between two points of the same
// coordinate representation.
//
// Every function is pure and safe for concurrent use. None of them report
// errors: degenerate inputs are resolved by convention and non-finite inputs
// propagate through the arithmetic.
package distance

import (
	"math"

	"coordbench/pkg/coords"
)

// Cartesian2D returns the Euclidean distance between two points in the plane.
func Cartesian2D(p1, p2 coords.Point2D) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Cartesian3D returns the Euclidean distance between two points in space.
func Cartesian3D(p1, p2 coords.Point3D) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dz := p2.Z - p1.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Polar returns the planar distance between two polar points using the law
// of cosines, without converting to Cartesian first.
func Polar(p1, p2 coords.PointPolar) float64 {
	sq := p1.R*p1.R + p2.R*p2.R - 2*p1.R*p2.R*math.Cos(p1.Theta-p2.Theta)
	// Coincident points can leave a tiny negative radicand.
	if sq < 0 {
		return 0
	}
	return math.Sqrt(sq)
}

// SphericalDirect returns the straight-line (chord) distance between two
// spherical points, through the interior of the sphere.
func SphericalDirect(p1, p2 coords.PointSpherical) float64 {
	return Cartesian3D(p1.Cartesian(), p2.Cartesian())
}

// CentralAngle returns the angular separation in radians of the directions
// of p1 and p2, using the spherical law of cosines. Radii are ignored.
func CentralAngle(p1, p2 coords.PointSpherical) float64 {
	sin1, cos1 := math.Sincos(p1.Phi)
	sin2, cos2 := math.Sincos(p2.Phi)
	c := sin1*sin2 + cos1*cos2*math.Cos(p1.Theta-p2.Theta)
	// Rounding can push c just outside acos's domain for identical or
	// antipodal points.
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// SphericalSurface returns the great-circle distance between p1 and p2 on a
// sphere. The optional radius selects the sphere; without it the mean of
// p1.R and p2.R is used. Extra values after the first are ignored.
func SphericalSurface(p1, p2 coords.PointSpherical, radius ...float64) float64 {
	r := (p1.R + p2.R) / 2
	if len(radius) > 0 {
		r = radius[0]
	}
	return r * CentralAngle(p1, p2)
}
