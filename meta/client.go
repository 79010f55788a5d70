// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/barasher/go-exiftool"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/juanse77/geofotos/geo"
)

// ErrMetadata reports that the metadata payload of one photo could not be
// obtained or decoded. It is distinct from a readable photo that simply
// carries no GPS fields, which is not an error.
var ErrMetadata = errors.New("meta: metadata extraction failed")

// Options configures extraction.
type Options struct {
	// ExiftoolPath overrides the exiftool binary looked up on the PATH.
	ExiftoolPath string

	// DefaultLonRef is the hemisphere assumed when GPSLongitudeRef is
	// absent from a photo. See geo.DefaultLongitudeRef.
	DefaultLonRef string

	// MaxProcs caps the number of parallel extractions. Defaults to the
	// number of CPUs.
	MaxProcs int
}

// Metrics tracks the outcome of one extraction batch.
type Metrics struct {
	Scanned int
	WithGPS int
	NoGPS   int
	Failed  int
}

// Merge combines the metrics from another batch into this one.
func (m *Metrics) Merge(other *Metrics) *Metrics {
	if other == nil {
		return m
	}

	m.Scanned += other.Scanned
	m.WithGPS += other.WithGPS
	m.NoGPS += other.NoGPS
	m.Failed += other.Failed

	return m
}

// Result is the outcome of extracting one photo. HasGPS distinguishes a
// photo with no coordinates from one whose extraction failed (Err != nil).
type Result struct {
	File   string
	Point  geo.Point
	HasGPS bool
	Err    error
}

// extractor reads the raw GPS fields of one image: latitude and longitude
// as either signed decimals or sexagesimal text, plus the hemisphere
// reference when the photo records one.
type extractor interface {
	extract(path string) (rawLat, rawLon any, lonRef string, err error)
	close() error
}

// exiftoolExtractor drives one external exiftool process. Instances are
// not safe for concurrent use; the pool gives each worker its own.
type exiftoolExtractor struct {
	et *exiftool.Exiftool
}

func newExiftoolExtractor(binary string) (*exiftoolExtractor, error) {
	opts := []func(*exiftool.Exiftool) error{exiftool.NoPrintConversion()}
	if binary != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binary))
	}

	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, fmt.Errorf("starting exiftool: %w", err)
	}

	return &exiftoolExtractor{et: et}, nil
}

func (e *exiftoolExtractor) extract(path string) (any, any, string, error) {
	metas := e.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return nil, nil, "", fmt.Errorf("%w: empty payload for %s", ErrMetadata, path)
	}

	fm := metas[0]
	if fm.Err != nil {
		return nil, nil, "", fmt.Errorf("%w: %s: %v", ErrMetadata, path, fm.Err)
	}

	lonRef, _ := fm.Fields["GPSLongitudeRef"].(string)

	return fm.Fields["GPSLatitude"], fm.Fields["GPSLongitude"], lonRef, nil
}

func (e *exiftoolExtractor) close() error {
	return e.et.Close()
}

// Client extracts GPS coordinates from a batch of photos.
type Client struct {
	options *Options
	Metrics Metrics

	// newExtractor is swapped in tests.
	newExtractor func() (extractor, error)
	fallbackOnce sync.Once
}

// NewClient creates a Client for the given options.
func NewClient(options *Options) *Client {
	c := &Client{options: options}
	c.newExtractor = func() (extractor, error) {
		return newExiftoolExtractor(options.ExiftoolPath)
	}

	return c
}

// ExtractBatch extracts coordinates from every path. Results preserve the
// input order regardless of which worker finished first, and a failed
// photo never aborts the batch. Metrics for the batch accumulate on the
// client.
func (c *Client) ExtractBatch(paths []string) []Result {
	n := len(paths)
	results := make([]Result, n)

	if n == 0 {
		return results
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetDescription("Extracting GPS metadata"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	maxProcs := c.options.MaxProcs
	if maxProcs == 0 {
		maxProcs = runtime.NumCPU()
	}

	if maxProcs > n {
		maxProcs = n
	}

	var wg sync.WaitGroup

	jobs := make(chan int)
	errChan := make(chan error, 2*n)

	for w := 0; w < maxProcs; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ext, err := c.newExtractor()
			if err != nil {
				c.fallbackOnce.Do(func() {
					log.Printf("exiftool unavailable (%s), falling back to built-in EXIF decoding", err)
				})

				ext = goexifExtractor{}
			}

			defer func() {
				if closeErr := ext.close(); closeErr != nil {
					errChan <- fmt.Errorf("closing extractor: %w", closeErr)
				}
			}()

			for i := range jobs {
				results[i] = c.extractOne(ext, paths[i])
				if results[i].Err != nil {
					errChan <- results[i].Err
				}

				if bar == nil {
					log.Printf("Processed %s", paths[i])
				} else if err := bar.Add(1); err != nil {
					errChan <- fmt.Errorf("updating progress bar: %w", err)
				}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}

	close(jobs)
	wg.Wait()
	close(errChan)

	for err := range errChan {
		log.Printf("Extraction failed - %s", err)
	}

	batch := Metrics{Scanned: n}

	for _, r := range results {
		switch {
		case r.Err != nil:
			batch.Failed++
		case r.HasGPS:
			batch.WithGPS++
		default:
			batch.NoGPS++
		}
	}

	c.Metrics.Merge(&batch)

	return results
}

func (c *Client) extractOne(ext extractor, path string) Result {
	res := Result{File: path}

	rawLat, rawLon, lonRef, err := ext.extract(path)
	if err != nil {
		res.Err = err

		return res
	}

	point, ok, err := geo.ExtractSigned(rawLat, rawLon, lonRef, c.options.DefaultLonRef)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)

		return res
	}

	res.Point, res.HasGPS = point, ok

	return res
}
