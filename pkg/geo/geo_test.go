package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"coordbench/pkg/distance"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		wantMeters       float64
		tolerancePercent float64
	}{
		{
			name: "Singapore CBD to Changi Airport",
			lat1: 1.2830, lon1: 103.8513,
			lat2: 1.3644, lon2: 103.9915,
			wantMeters:       18_023,
			tolerancePercent: 1,
		},
		{
			name: "London to Paris",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 48.8566, lon2: 2.3522,
			wantMeters:       343_500,
			tolerancePercent: 1,
		},
		{
			name: "Quarter of the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 90,
			wantMeters:       EarthRadiusMeters * math.Pi / 2,
			tolerancePercent: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			diff := math.Abs(got-tt.wantMeters) / tt.wantMeters * 100
			if diff > tt.tolerancePercent {
				t.Errorf("Haversine = %f m, want ~%f m (diff %.3f%%)", got, tt.wantMeters, diff)
			}
		})
	}
}

func TestSurfaceDistanceMatchesHaversine(t *testing.T) {
	pairs := [][2]LatLng{
		{{Lat: 1.2830, Lng: 103.8513}, {Lat: 1.3644, Lng: 103.9915}},
		{{Lat: 51.5074, Lng: -0.1278}, {Lat: 48.8566, Lng: 2.3522}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 40.7128, Lng: -74.0060}},
		{{Lat: 89.9, Lng: 0}, {Lat: -89.9, Lng: 180}},
	}

	for _, p := range pairs {
		a := ToSpherical(p[0], EarthRadiusMeters)
		b := ToSpherical(p[1], EarthRadiusMeters)

		want := Haversine(p[0].Lat, p[0].Lng, p[1].Lat, p[1].Lng)
		got := distance.SphericalSurface(a, b)

		assert.InEpsilon(t, want, got, 1e-6, "%+v -> %+v", p[0], p[1])
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	points := []LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 1.3521, Lng: 103.8198},
		{Lat: -45.5, Lng: -170.25},
		{Lat: 89.5, Lng: 179.5},
	}
	for _, ll := range points {
		back := FromSpherical(ToSpherical(ll, 1))
		assert.InDelta(t, ll.Lat, back.Lat, 1e-9)
		assert.InDelta(t, ll.Lng, back.Lng, 1e-9)
	}
}

func TestToSphericalWrapsLongitude(t *testing.T) {
	// 180 degrees east is the same meridian as 180 degrees west.
	p := ToSpherical(LatLng{Lat: 0, Lng: 180}, 1)
	assert.InDelta(t, -math.Pi, p.Theta, 1e-12)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		ll   LatLng
		want error
	}{
		{name: "ok", ll: LatLng{Lat: 1.35, Lng: 103.8}, want: nil},
		{name: "edges", ll: LatLng{Lat: -90, Lng: 180}, want: nil},
		{name: "nan", ll: LatLng{Lat: math.NaN(), Lng: 0}, want: ErrNotFinite},
		{name: "inf", ll: LatLng{Lat: 0, Lng: math.Inf(-1)}, want: ErrNotFinite},
		{name: "lat range", ll: LatLng{Lat: 91, Lng: 0}, want: ErrOutOfRange},
		{name: "lng range", ll: LatLng{Lat: 0, Lng: -180.5}, want: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.ll), tt.want)
		})
	}
}

func BenchmarkHaversine(b *testing.B) {
	for b.Loop() {
		Haversine(1.3521, 103.8198, 1.2905, 103.8520)
	}
}
