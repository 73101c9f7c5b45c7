// Package geo bridges geographic latitude/longitude in degrees and the
// spherical points used by the distance functions.
package geo

import (
	"errors"
	"math"

	"coordbench/pkg/coords"
)

// EarthRadiusMeters is the mean Earth radius used for geographic points.
const EarthRadiusMeters = 6_371_000.0

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

var (
	// ErrNotFinite is returned for NaN or infinite coordinates.
	ErrNotFinite = errors.New("coordinates must be finite numbers")
	// ErrOutOfRange is returned for coordinates outside lat [-90, 90], lng [-180, 180].
	ErrOutOfRange = errors.New("coordinates out of range")
)

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Validate reports whether ll is a usable geographic coordinate.
func Validate(ll LatLng) error {
	if math.IsNaN(ll.Lat) || math.IsNaN(ll.Lng) || math.IsInf(ll.Lat, 0) || math.IsInf(ll.Lng, 0) {
		return ErrNotFinite
	}
	if ll.Lat < -90 || ll.Lat > 90 || ll.Lng < -180 || ll.Lng > 180 {
		return ErrOutOfRange
	}
	return nil
}

// ToSpherical places ll on a sphere of the given radius. Longitude becomes
// the azimuth and latitude the elevation.
func ToSpherical(ll LatLng, radius float64) coords.PointSpherical {
	return coords.PointSpherical{
		R:     radius,
		Theta: coords.NormalizeAngle(ll.Lng * degToRad),
		Phi:   ll.Lat * degToRad,
	}
}

// FromSpherical returns the latitude and longitude of p's direction.
func FromSpherical(p coords.PointSpherical) LatLng {
	return LatLng{
		Lat: p.Phi * radToDeg,
		Lng: coords.NormalizeAngle(p.Theta) * radToDeg,
	}
}

// Haversine returns the great-circle distance in meters between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * degToRad
	lat2r := lat2 * degToRad
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}
