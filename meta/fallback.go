// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// goexifExtractor decodes EXIF blocks in-process. It covers fewer formats
// than exiftool but keeps the tool usable on hosts without the binary.
type goexifExtractor struct{}

func (goexifExtractor) extract(path string) (any, any, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: opening %s: %v", ErrMetadata, path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// Images without an EXIF block (common for PNG or GIF) are a
		// normal no-coordinates outcome, not a failure.
		return nil, nil, "", nil
	}

	lat, lon, err := x.LatLong()
	if err != nil {
		return nil, nil, "", nil
	}

	// goexif resolves hemisphere references itself and returns signed
	// decimals, so hand the normalizer an explicit reference that keeps
	// the sign as decoded.
	lonRef := "E"
	if lon < 0 {
		lonRef = "W"
	}

	return lat, lon, lonRef, nil
}

func (goexifExtractor) close() error {
	return nil
}
