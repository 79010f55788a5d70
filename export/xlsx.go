// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteXLSX writes the records as a spreadsheet with the same columns as
// the CSV artifact. With no records nothing is written.
func WriteXLSX(records []Record, path string) error {
	if len(records) == 0 {
		return nil
	}

	f := excelize.NewFile()

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Closing workbook: %v", err)
		}
	}()

	for col, header := range headers {
		if err := setCell(f, col+1, 1, header); err != nil {
			return err
		}
	}

	for i, r := range records {
		row := i + 2

		for col, value := range []string{r.Filename, r.LatitudeDMS, r.LongitudeDMS} {
			if err := setCell(f, col+1, row, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("addressing cell (%d, %d): %w", col, row, err)
	}

	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("setting cell %s: %w", cell, err)
	}

	return nil
}
