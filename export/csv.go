// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

// Package export writes the tabular artifacts of a scan: one row per
// photo with its coordinates as sexagesimal text.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Record is one exported row. The coordinate columns are empty strings
// when the photo carried no GPS metadata; the row is still written so the
// table accounts for every scanned photo.
type Record struct {
	Filename     string
	LatitudeDMS  string
	LongitudeDMS string
}

// column headers shared by the CSV and Excel artifacts.
var headers = []string{"Nombre de la foto", "Latitud", "Longitud"}

// WriteCSV writes the records as a delimited-text artifact. With no
// records nothing is written and no file is created.
func WriteCSV(records []Record, path string) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	writeErr := w.Write(headers)

	for _, r := range records {
		if writeErr != nil {
			break
		}

		writeErr = w.Write([]string{r.Filename, r.LatitudeDMS, r.LongitudeDMS})
	}

	w.Flush()

	if writeErr == nil {
		writeErr = w.Error()
	}

	if writeErr != nil {
		return errors.Join(fmt.Errorf("writing %s: %w", path, writeErr), f.Close())
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
