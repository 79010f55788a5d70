// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package geo

import "math"

const (
	earthRadius = 6378137.0 // spherical web-mercator radius, meters

	// maxMercatorLat is the latitude where the projection blows up;
	// anything beyond is clamped.
	maxMercatorLat = 85.05112878
)

// OriginShift is half the extent of the web-mercator plane, i.e. the x
// coordinate of longitude 180°.
const OriginShift = math.Pi * earthRadius

// XY is a planar coordinate in web-mercator (EPSG:3857) meters. All
// bounding-box and distance arithmetic happens in this space, never in
// geographic degrees.
type XY struct {
	X float64
	Y float64
}

// Project transforms a geographic point into web-mercator meters.
func Project(p Point) XY {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, p.Lat))

	return XY{
		X: earthRadius * p.Lng * math.Pi / 180,
		Y: earthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360)),
	}
}

// Unproject transforms web-mercator meters back into geographic degrees.
func Unproject(xy XY) Point {
	return Point{
		Lat: (2*math.Atan(math.Exp(xy.Y/earthRadius)) - math.Pi/2) * 180 / math.Pi,
		Lng: xy.X / earthRadius * 180 / math.Pi,
	}
}
