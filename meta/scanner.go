// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

// Package meta extracts GPS coordinates from photo metadata, preferring an
// external exiftool process and falling back to in-process EXIF decoding.
package meta

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"
)

// recognized image extensions, matched case-insensitively.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".bmp":  true,
	".gif":  true,
	".heic": true,
}

// ScanImages walks dir recursively and returns the image files found.
// Paths come back sorted: marker colors are assigned by position later, so
// the order has to be independent of filesystem traversal order.
func ScanImages(dir string) ([]string, error) {
	var images []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip the entry but keep walking.
			log.Printf("Error accessing %s: %v", path, err)

			return nil
		}

		if d.IsDir() {
			return nil
		}

		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			images = append(images, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	slices.Sort(images)

	return images, nil
}
