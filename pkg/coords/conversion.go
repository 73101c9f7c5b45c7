// Package coords converts points between 2-D Cartesian, polar, 3-D Cartesian
// and spherical representations.
//
// Spherical points use theta as the azimuth around the polar axis and phi as
// the elevation from the equatorial plane (not colatitude). Angles produced by
// the inverse conversions are normalized to [-π, π).
package coords

import "math"

const twoPi = 2 * math.Pi

// Point2D is a point in the Cartesian plane.
type Point2D struct {
	X, Y float64
}

// PointPolar is a point in the plane given by radius and angle.
// R is expected to be non-negative but this is not enforced.
type PointPolar struct {
	R, Theta float64
}

// Point3D is a point in 3-D Cartesian space.
type Point3D struct {
	X, Y, Z float64
}

// PointSpherical is a point given by radius, azimuth (Theta) and
// elevation (Phi).
type PointSpherical struct {
	R, Theta, Phi float64
}

// NormalizeAngle maps a to its representative in [-π, π).
//
// math.Mod truncates toward zero, so a negative remainder is shifted by 2π to
// get the floored modulo.
func NormalizeAngle(a float64) float64 {
	m := math.Mod(a+math.Pi, twoPi)
	if m < 0 {
		m += twoPi
	}
	n := m - math.Pi
	// m can round up to exactly 2π for inputs just below a multiple of 2π.
	if n >= math.Pi {
		n -= twoPi
	}
	return n
}

// PolarToCart converts polar coordinates to Cartesian (x, y).
func PolarToCart(r, theta float64) (x, y float64) {
	sin, cos := math.Sincos(theta)
	return r * cos, r * sin
}

// CartToPolar converts Cartesian coordinates to polar (r, theta).
// The origin maps to (0, 0).
func CartToPolar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), NormalizeAngle(math.Atan2(y, x))
}

// SphericalToCart converts spherical coordinates to Cartesian (x, y, z).
func SphericalToCart(r, theta, phi float64) (x, y, z float64) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return r * cosP * cosT, r * cosP * sinT, r * sinP
}

// CartToSpherical converts Cartesian coordinates to spherical
// (r, theta, phi). The origin maps to (0, 0, 0).
func CartToSpherical(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	theta = NormalizeAngle(math.Atan2(y, x))
	phi = NormalizeAngle(math.Atan2(z, math.Hypot(x, y)))
	return r, theta, phi
}

// Cartesian returns p in Cartesian form.
func (p PointPolar) Cartesian() Point2D {
	x, y := PolarToCart(p.R, p.Theta)
	return Point2D{X: x, Y: y}
}

// Polar returns p in polar form.
func (p Point2D) Polar() PointPolar {
	r, theta := CartToPolar(p.X, p.Y)
	return PointPolar{R: r, Theta: theta}
}

// Cartesian returns p in Cartesian form.
func (p PointSpherical) Cartesian() Point3D {
	x, y, z := SphericalToCart(p.R, p.Theta, p.Phi)
	return Point3D{X: x, Y: y, Z: z}
}

// Spherical returns p in spherical form.
func (p Point3D) Spherical() PointSpherical {
	r, theta, phi := CartToSpherical(p.X, p.Y, p.Z)
	return PointSpherical{R: r, Theta: theta, Phi: phi}
}
