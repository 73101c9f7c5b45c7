package osm

import (
	"context"
	"strings"
	"testing"

	"github.com/paulmach/osm/osmxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coordbench/pkg/geo"
)

func TestBBoxContains(t *testing.T) {
	b := BBox{MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1}

	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{name: "inside", lat: 1.35, lng: 103.8, want: true},
		{name: "on edge", lat: 1.15, lng: 104.1, want: true},
		{name: "north", lat: 1.5, lng: 103.8, want: false},
		{name: "west", lat: 1.35, lng: 103.5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.lat, tt.lng))
		})
	}
}

func TestBBoxIsZero(t *testing.T) {
	assert.True(t, BBox{}.IsZero())
	assert.False(t, BBox{MaxLat: 1}.IsZero())
}

func TestParseBBox(t *testing.T) {
	b, err := ParseBBox("1.15,103.6,1.48,104.1")
	require.NoError(t, err)
	assert.Equal(t, BBox{MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1}, b)

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "2,0,1,1", "0,0,95,1"} {
		_, err := ParseBBox(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestLoadPointsRejectsGarbage(t *testing.T) {
	_, err := LoadPoints(context.Background(), strings.NewReader("definitely not a pbf file"), LoadOptions{})
	assert.Error(t, err)
}

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="1.3521" lon="103.8198" version="1"/>
  <node id="2" lat="1.2830" lon="103.8513" version="1"/>
  <node id="3" lat="51.5074" lon="-0.1278" version="1"/>
  <node id="4" lat="95.0" lon="103.9" version="1"/>
  <node id="5" lat="1.3644" lon="103.9915" version="1"/>
  <way id="10" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`

func TestCollect(t *testing.T) {
	singapore := BBox{MinLat: 1.15, MaxLat: 1.48, MinLng: 103.6, MaxLng: 104.1}

	tests := []struct {
		name    string
		opts    LoadOptions
		want    []geo.LatLng
		wantErr error
	}{
		{
			name: "all valid nodes, invalid latitude skipped",
			opts: LoadOptions{},
			want: []geo.LatLng{
				{Lat: 1.3521, Lng: 103.8198},
				{Lat: 1.2830, Lng: 103.8513},
				{Lat: 51.5074, Lng: -0.1278},
				{Lat: 1.3644, Lng: 103.9915},
			},
		},
		{
			name: "bbox drops London",
			opts: LoadOptions{BBox: singapore},
			want: []geo.LatLng{
				{Lat: 1.3521, Lng: 103.8198},
				{Lat: 1.2830, Lng: 103.8513},
				{Lat: 1.3644, Lng: 103.9915},
			},
		},
		{
			name: "limit stops early",
			opts: LoadOptions{BBox: singapore, Limit: 2},
			want: []geo.LatLng{
				{Lat: 1.3521, Lng: 103.8198},
				{Lat: 1.2830, Lng: 103.8513},
			},
		},
		{
			name:    "nothing inside bbox",
			opts:    LoadOptions{BBox: BBox{MinLat: -10, MaxLat: -5, MinLng: 10, MaxLng: 20}},
			wantErr: ErrNoPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sc := osmxml.New(ctx, strings.NewReader(sampleXML))
			defer sc.Close()

			got, err := collect(ctx, sc, tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectEmptyInput(t *testing.T) {
	ctx := context.Background()
	sc := osmxml.New(ctx, strings.NewReader(`<osm version="0.6"></osm>`))
	defer sc.Close()

	_, err := collect(ctx, sc, LoadOptions{})
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestCollectCanceled(t *testing.T) {
	sc := osmxml.New(context.Background(), strings.NewReader(sampleXML))
	defer sc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collect(ctx, sc, LoadOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
