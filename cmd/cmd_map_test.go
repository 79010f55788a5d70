// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanse77/geofotos/geo"
	"github.com/juanse77/geofotos/meta"
	"github.com/juanse77/geofotos/render"
)

// Only photos that carry coordinates reach the map, in batch order,
// labelled by base filename.
func TestGpsLocations(t *testing.T) {
	results := []meta.Result{
		{File: "/fotos/01.jpg", Point: geo.Point{Lat: 27.9964365, Lng: -15.4178604}, HasGPS: true},
		{File: "/fotos/02.jpg"},
		{File: "/fotos/03.jpg", Err: errors.New("corrupt payload")},
		{File: "/fotos/sub/04.jpg", Point: geo.Point{Lat: 28.1, Lng: -15.5}, HasGPS: true},
	}

	assert.Equal(t, []render.PhotoLocation{
		{Point: geo.Point{Lat: 27.9964365, Lng: -15.4178604}, Label: "01.jpg"},
		{Point: geo.Point{Lat: 28.1, Lng: -15.5}, Label: "04.jpg"},
	}, gpsLocations(results))
}

func TestGpsLocationsEmpty(t *testing.T) {
	assert.Empty(t, gpsLocations(nil))
	assert.Empty(t, gpsLocations([]meta.Result{{File: "/fotos/01.jpg"}}))
}

func writePointsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLocationsFromCSV(t *testing.T) {
	path := writePointsFile(t, "label,lat,long\nplaya, 27.9964365, -15.4179333\nmirador,28.1,-15.5\n")

	locations, err := locationsFromCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []render.PhotoLocation{
		{Point: geo.Point{Lat: 27.9964365, Lng: -15.4179333}, Label: "playa"},
		{Point: geo.Point{Lat: 28.1, Lng: -15.5}, Label: "mirador"},
	}, locations)
}

func TestLocationsFromCSVHeaderOrder(t *testing.T) {
	path := writePointsFile(t, "Long,Label,Lat\n-15.5,mirador,28.1\n")

	locations, err := locationsFromCSV(path)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "mirador", locations[0].Label)
	assert.Equal(t, 28.1, locations[0].Point.Lat)
}

func TestLocationsFromCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing column", "label,lat\nplaya,28.1\n"},
		{"no data rows", "label,lat,long\n"},
		{"bad latitude", "label,lat,long\nplaya,north,-15.5\n"},
		{"out of range", "label,lat,long\nplaya,91.0,-15.5\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := locationsFromCSV(writePointsFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}
