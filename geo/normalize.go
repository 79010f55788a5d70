// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package geo

import (
	"fmt"
	"log"
	"math"
	"strings"
)

// DefaultLongitudeRef is the hemisphere assumed when a photo carries no
// GPSLongitudeRef tag. The stock value expects a western-hemisphere
// operating region; it matches the historical output of this tool but is
// wrong anywhere east of Greenwich, so it is surfaced as the --lon-ref
// configuration default rather than buried as a constant.
const DefaultLongitudeRef = "W"

// ExtractSigned produces a canonical signed decimal point from the raw GPS
// fields of one photo. Raw fields arrive either as already-signed decimal
// numbers or as sexagesimal text; text is parsed with ParseDMS. A missing
// field means the photo has no coordinates, reported as ok == false with a
// nil error.
//
// Latitude is taken as extracted. The longitude sign is resolved from
// lonRef: W forces it negative, E forces it positive, and anything else
// (including an absent tag) falls back to defaultLonRef.
func ExtractSigned(rawLat, rawLon any, lonRef, defaultLonRef string) (Point, bool, error) {
	if rawLat == nil || rawLon == nil {
		return Point{}, false, nil
	}

	lat, err := coordinateValue(rawLat)
	if err != nil {
		return Point{}, false, fmt.Errorf("latitude: %w", err)
	}

	lon, err := coordinateValue(rawLon)
	if err != nil {
		return Point{}, false, fmt.Errorf("longitude: %w", err)
	}

	return Point{Lat: lat, Lng: resolveLongitude(lon, lonRef, defaultLonRef)}, true, nil
}

// coordinateValue coerces one raw metadata field into decimal degrees.
func coordinateValue(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return ParseDMS(v)
	default:
		return 0, fmt.Errorf("%w: unsupported coordinate type %T", ErrParse, raw)
	}
}

func resolveLongitude(lon float64, lonRef, defaultLonRef string) float64 {
	if defaultLonRef == "" {
		defaultLonRef = DefaultLongitudeRef
	}

	ref := strings.ToUpper(strings.TrimSpace(lonRef))

	switch ref {
	case "W":
		return -math.Abs(lon)
	case "E":
		return math.Abs(lon)
	case "":
		// No reference recorded; apply the configured regional default
		// without second-guessing the sign the extractor produced.
		ref = strings.ToUpper(defaultLonRef)
	default:
		log.Printf("Unknown longitude reference %q, assuming %q", lonRef, defaultLonRef)
		ref = strings.ToUpper(defaultLonRef)
	}

	if ref == "E" {
		return math.Abs(lon)
	}

	return -math.Abs(lon)
}
