// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	// tile providers answer JPEG or PNG depending on the service
	_ "image/jpeg"
	_ "image/png"

	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/juanse77/geofotos/geo"
	"github.com/juanse77/geofotos/utils/httputils"
)

// DefaultTileURL is the Esri World Imagery XYZ endpoint, the satellite
// layer the maps have always used.
const DefaultTileURL = "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}"

// ErrBasemapUnavailable reports that no basemap tile could be fetched. The
// map is still rendered, just without the satellite layer.
var ErrBasemapUnavailable = errors.New("render: basemap unavailable")

const (
	tileSize = 256

	// maxRegionTiles bounds a basemap fetch. The zoom steps down until
	// the viewport fits, so a wide extent can never trigger an unbounded
	// download.
	maxRegionTiles = 64
)

// tileAt returns the XYZ tile column and row containing a mercator
// coordinate at the given zoom.
func tileAt(p geo.XY, zoom int) (int, int) {
	n := float64(int(1) << uint(zoom))

	x := int(math.Floor((p.X + geo.OriginShift) / (2 * geo.OriginShift) * n))
	y := int(math.Floor((geo.OriginShift - p.Y) / (2 * geo.OriginShift) * n))

	last := int(n) - 1

	return min(max(x, 0), last), min(max(y, 0), last)
}

// tileExtent returns the mercator region covered by one tile.
func tileExtent(x, y, zoom int) geo.Viewport {
	n := float64(int(1) << uint(zoom))
	side := 2 * geo.OriginShift / n

	minX := -geo.OriginShift + float64(x)*side
	maxY := geo.OriginShift - float64(y)*side

	return geo.Viewport{MinX: minX, MinY: maxY - side, MaxX: minX + side, MaxY: maxY}
}

// Mosaic is a fetched basemap layer along with the mercator extent it
// covers, always a superset of the requested viewport.
type Mosaic struct {
	Image  *image.RGBA
	Extent geo.Viewport
}

// TileClient downloads XYZ raster tiles over HTTP.
type TileClient struct {
	client      *http.Client
	urlTemplate string
}

// NewTileClient builds a client for the options' tile provider, decorating
// the transport with the configured User-Agent and optional tracing.
func NewTileClient(options *Options) *TileClient {
	transport := http.RoundTripper(http.DefaultTransport)

	if options.UserAgent != "" {
		transport = &httputils.AppendRequestHeadersRoundTripper{
			Transport: transport,
			Headers:   map[string]string{"User-Agent": options.UserAgent},
		}
	}

	if options.TraceHTTP {
		transport = &httputils.LoggingRoundTripper{Transport: transport, Writer: os.Stderr}
	}

	return &TileClient{
		client:      &http.Client{Timeout: options.Timeout, Transport: transport},
		urlTemplate: options.TileURL,
	}
}

func (c *TileClient) url(x, y, zoom int) string {
	return strings.NewReplacer(
		"{z}", strconv.Itoa(zoom),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	).Replace(c.urlTemplate)
}

// regionTiles computes the tile range covering vp, lowering the zoom while
// the range exceeds maxRegionTiles.
func regionTiles(vp geo.Viewport, zoom int) (x0, y0, x1, y1, z int) {
	for ; ; zoom-- {
		x0, y0 = tileAt(geo.XY{X: vp.MinX, Y: vp.MaxY}, zoom)
		x1, y1 = tileAt(geo.XY{X: vp.MaxX, Y: vp.MinY}, zoom)

		if (x1-x0+1)*(y1-y0+1) <= maxRegionTiles || zoom == 0 {
			return x0, y0, x1, y1, zoom
		}
	}
}

// FetchRegion downloads the tiles covering vp at the requested zoom and
// stitches them into a single image. A tile that fails leaves a gap; if
// every tile fails the result is ErrBasemapUnavailable.
func (c *TileClient) FetchRegion(vp geo.Viewport, zoom int) (*Mosaic, error) {
	x0, y0, x1, y1, zoom := regionTiles(vp, zoom)

	cols, rows := x1-x0+1, y1-y0+1
	mosaic := image.NewRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))

	var fetched int

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			tile, err := c.fetchTile(tx, ty, zoom)
			if err != nil {
				log.Printf("Tile %d/%d/%d failed - %s", zoom, tx, ty, err)

				continue
			}

			origin := image.Pt((tx-x0)*tileSize, (ty-y0)*tileSize)
			draw.Draw(mosaic, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(tileSize, tileSize))},
				tile, tile.Bounds().Min, draw.Src)

			fetched++
		}
	}

	if fetched == 0 {
		return nil, fmt.Errorf("%w: all %d tiles failed at zoom %d", ErrBasemapUnavailable, cols*rows, zoom)
	}

	topLeft := tileExtent(x0, y0, zoom)
	bottomRight := tileExtent(x1, y1, zoom)

	return &Mosaic{
		Image: mosaic,
		Extent: geo.Viewport{
			MinX: topLeft.MinX,
			MinY: bottomRight.MinY,
			MaxX: bottomRight.MaxX,
			MaxY: topLeft.MaxY,
		},
	}, nil
}

func (c *TileClient) fetchTile(x, y, zoom int) (image.Image, error) {
	resp, err := c.client.Get(c.url(x, y, zoom))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding tile: %w", err)
	}

	return img, nil
}
