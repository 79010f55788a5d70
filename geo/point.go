// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

// Package geo implements the coordinate domain: signed decimal points,
// sexagesimal text conversion, GPS field normalization, web-mercator
// projection and map viewport arithmetic.
package geo

import "fmt"

// Point represents a geographical point with latitude and longitude in
// signed decimal degrees. Positive latitude is North, positive longitude
// is East.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// NewPoint builds a Point after validating the coordinate ranges.
func NewPoint(lat, lng float64) (Point, error) {
	if lat < -90 || lat > 90 {
		return Point{}, fmt.Errorf("geo: latitude %f out of range [-90, 90]", lat)
	}

	if lng < -180 || lng > 180 {
		return Point{}, fmt.Errorf("geo: longitude %f out of range [-180, 180]", lng)
	}

	return Point{Lat: lat, Lng: lng}, nil
}
