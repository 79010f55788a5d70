// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/juanse77/geofotos/export"
	"github.com/juanse77/geofotos/geo"
	"github.com/juanse77/geofotos/meta"
)

var scanOptions = &meta.Options{}

var (
	scanCSV  string
	scanXLSX string
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Extrae las coordenadas GPS de las fotos y genera tablas CSV y Excel",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		images, err := meta.ScanImages(args[0])
		if err != nil {
			return err
		}

		log.Printf("Found %d images under %s", len(images), args[0])

		client := meta.NewClient(scanOptions)
		results := client.ExtractBatch(images)

		records := exportRecords(results)

		if err := export.WriteCSV(records, scanCSV); err != nil {
			return err
		}

		if err := export.WriteXLSX(records, scanXLSX); err != nil {
			return err
		}

		m := client.Metrics
		log.Printf(
			"Scan phase complete - %d images, %d with GPS, %d without, %d failed",
			m.Scanned, m.WithGPS, m.NoGPS, m.Failed,
		)

		return nil
	},
}

// exportRecords builds one table row per scanned photo. A photo without
// coordinates, or whose extraction failed, keeps its row with empty
// coordinate columns.
func exportRecords(results []meta.Result) []export.Record {
	records := make([]export.Record, len(results))

	for i, r := range results {
		records[i] = export.Record{Filename: filepath.Base(r.File)}
		if r.HasGPS {
			records[i].LatitudeDMS = geo.FormatDMS(r.Point.Lat, geo.Latitude)
			records[i].LongitudeDMS = geo.FormatDMS(r.Point.Lng, geo.Longitude)
		}
	}

	return records
}

// registers the extraction flags shared by scan and map.
func addMetaFlags(cmd *cobra.Command, o *meta.Options) {
	cmd.Flags().StringVar(
		&o.ExiftoolPath,
		"exiftool",
		"",
		"Ruta al binario exiftool. Por defecto se busca en el PATH",
	)
	cmd.Flags().StringVar(
		&o.DefaultLonRef,
		"lon-ref",
		geo.DefaultLongitudeRef,
		"Hemisferio asumido cuando la foto no registra GPSLongitudeRef (política regional)",
	)
	cmd.Flags().IntVar(
		&o.MaxProcs,
		"max-procs",
		0,
		"Número máximo de extracciones en paralelo. Por defecto el número de CPUs",
	)
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanCSV, "csv", "coordenadas_fotos.csv", "Archivo CSV de salida")
	scanCmd.Flags().StringVar(&scanXLSX, "xlsx", "coordenadas_fotos.xlsx", "Archivo Excel de salida")
	addMetaFlags(scanCmd, scanOptions)
}
