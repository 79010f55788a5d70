// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/juanse77/geofotos/geo"
	"github.com/juanse77/geofotos/meta"
	"github.com/juanse77/geofotos/render"
)

var (
	mapMetaOptions = &meta.Options{}
	mapOptions     = render.DefaultOptions()

	mapOutput     string
	mapTitle      string
	mapLegend     string
	mapPointsFile string
)

var mapCmd = &cobra.Command{
	Use:   "map <dir>",
	Short: "Genera un mapa satelital con la posición de cada foto",
	Long: `Genera una imagen PNG con las fotos marcadas sobre un mapa satelital.

Las posiciones se extraen de los metadatos GPS de las fotos del directorio
indicado, o bien de un archivo CSV de puntos (--points) con columnas
label, lat y long en grados decimales.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		corner, err := render.ParseCorner(mapLegend)
		if err != nil {
			return err
		}
		mapOptions.LegendCorner = corner
		mapOptions.UserAgent = fmt.Sprintf(
			"geofotos/%s (+https://github.com/juanse77/geofotos)", Version,
		)

		var locations []render.PhotoLocation
		switch {
		case mapPointsFile != "":
			locations, err = locationsFromCSV(mapPointsFile)
		case len(args) == 1:
			locations, err = locationsFromDir(args[0])
		default:
			return fmt.Errorf("a photo directory or --points file is required")
		}
		if err != nil {
			return err
		}

		render.AssignColors(locations)

		return render.NewComposer(mapOptions).Render(locations, mapOutput, mapTitle)
	},
}

// locationsFromDir scans dir and keeps the photos that carry GPS
// coordinates, in scan order, labelled by base filename.
func locationsFromDir(dir string) ([]render.PhotoLocation, error) {
	images, err := meta.ScanImages(dir)
	if err != nil {
		return nil, err
	}

	client := meta.NewClient(mapMetaOptions)
	locations := gpsLocations(client.ExtractBatch(images))

	m := client.Metrics
	log.Printf(
		"Extraction complete - %d images, %d with GPS, %d without, %d failed",
		m.Scanned, m.WithGPS, m.NoGPS, m.Failed,
	)

	return locations, nil
}

// gpsLocations keeps the photos that carry coordinates, in batch order,
// labelled by base filename. Failed or GPS-less photos contribute nothing
// to the map.
func gpsLocations(results []meta.Result) []render.PhotoLocation {
	locations := make([]render.PhotoLocation, 0, len(results))

	for _, r := range results {
		if r.Err != nil || !r.HasGPS {
			continue
		}

		locations = append(locations, render.PhotoLocation{
			Point: r.Point,
			Label: filepath.Base(r.File),
		})
	}

	return locations
}

// locationsFromCSV reads a points file with label, lat and long columns
// in decimal degrees. Columns are matched by header name.
func locationsFromCSV(path string) ([]render.PhotoLocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"label", "lat", "long"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	locations := make([]render.PhotoLocation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[col["lat"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(row[col["long"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		p, err := geo.NewPoint(lat, lng)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		locations = append(locations, render.PhotoLocation{
			Point: p,
			Label: strings.TrimSpace(row[col["label"]]),
		})
	}

	return locations, nil
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "mapa_fotos.png", "Imagen PNG de salida")
	mapCmd.Flags().StringVar(&mapTitle, "title", "Mapa de Fotos", "Título del mapa")
	mapCmd.Flags().IntVar(&mapOptions.Zoom, "zoom", mapOptions.Zoom, "Nivel de zoom de las teselas")
	mapCmd.Flags().Float64Var(&mapOptions.Margin, "margin", mapOptions.Margin, "Margen alrededor de los puntos, como fracción del lado")
	mapCmd.Flags().IntVar(&mapOptions.Size, "size", mapOptions.Size, "Lado de la imagen en píxeles")
	mapCmd.Flags().StringVar(&mapOptions.TileURL, "tile-url", mapOptions.TileURL, "Plantilla de URL de teselas XYZ")
	mapCmd.Flags().StringVar(&mapLegend, "legend", "upper-left", "Esquina de la leyenda: upper-left, upper-right, lower-left o lower-right")
	mapCmd.Flags().BoolVar(&mapOptions.TraceHTTP, "trace-http", false, "Registra las peticiones HTTP de teselas")
	mapCmd.Flags().StringVar(&mapPointsFile, "points", "", "Archivo CSV de puntos (label,lat,long) en grados decimales")
	addMetaFlags(mapCmd, mapMetaOptions)
}
