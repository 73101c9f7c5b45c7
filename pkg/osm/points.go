// Package osm reads node coordinates from OpenStreetMap PBF extracts so the
// spherical benchmarks can run on real-world point sets.
package osm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/rs/zerolog/log"

	"coordbench/pkg/geo"
)

// ErrNoPoints is returned when a file yields no usable nodes.
var ErrNoPoints = errors.New("no nodes found")

// BBox defines a geographic bounding box for filtering.
// If non-zero, only nodes inside the box are kept.
type BBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// IsZero returns true if the bbox is unset.
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains returns true if the point is inside the bounding box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ParseBBox parses "minLat,minLng,maxLat,maxLng".
func ParseBBox(s string) (BBox, error) {
	var b BBox
	if _, err := fmt.Sscanf(s, "%f,%f,%f,%f", &b.MinLat, &b.MinLng, &b.MaxLat, &b.MaxLng); err != nil {
		return BBox{}, fmt.Errorf("invalid bbox %q (expected minLat,minLng,maxLat,maxLng): %w", s, err)
	}
	if b.MinLat > b.MaxLat || b.MinLng > b.MaxLng {
		return BBox{}, fmt.Errorf("invalid bbox %q: min exceeds max", s)
	}
	if err := geo.Validate(geo.LatLng{Lat: b.MinLat, Lng: b.MinLng}); err != nil {
		return BBox{}, fmt.Errorf("invalid bbox %q: %w", s, err)
	}
	if err := geo.Validate(geo.LatLng{Lat: b.MaxLat, Lng: b.MaxLng}); err != nil {
		return BBox{}, fmt.Errorf("invalid bbox %q: %w", s, err)
	}
	return b, nil
}

// LoadOptions configures LoadPoints.
type LoadOptions struct {
	BBox  BBox // if non-zero, keep only nodes inside
	Limit int  // stop after this many points; 0 means no limit
	Procs int  // decoder goroutines; 0 means 1
}

// LoadPoints scans the nodes of a PBF stream and returns their coordinates.
func LoadPoints(ctx context.Context, r io.Reader, opts LoadOptions) ([]geo.LatLng, error) {
	procs := opts.Procs
	if procs < 1 {
		procs = 1
	}

	scanner := osmpbf.New(ctx, r, procs)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	return collect(ctx, scanner, opts)
}

// collect reads nodes from sc, applying the bbox and limit in opts.
// Non-node objects are skipped.
func collect(ctx context.Context, sc osm.Scanner, opts LoadOptions) ([]geo.LatLng, error) {
	useBBox := !opts.BBox.IsZero()

	var points []geo.LatLng
	var filtered, invalid int
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, ok := sc.Object().(*osm.Node)
		if !ok {
			continue
		}

		ll := geo.LatLng{Lat: n.Lat, Lng: n.Lon}
		if err := geo.Validate(ll); err != nil {
			invalid++
			continue
		}
		if useBBox && !opts.BBox.Contains(ll.Lat, ll.Lng) {
			filtered++
			continue
		}

		points = append(points, ll)
		if opts.Limit > 0 && len(points) >= opts.Limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan nodes: %w", err)
	}

	if invalid > 0 {
		log.Warn().Int("invalid", invalid).Msg("Skipped nodes with invalid coordinates")
	}
	if filtered > 0 {
		log.Debug().Int("filtered", filtered).Msg("Filtered nodes outside bounding box")
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	log.Info().Int("points", len(points)).Msg("Loaded OSM sample points")
	return points, nil
}
