// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"image"
	"log"
	"math"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	xdraw "golang.org/x/image/draw"

	"github.com/juanse77/geofotos/geo"
)

// PhotoLocation ties one photo's map point to its legend label and marker
// color. Color stays empty until AssignColors slices the palette over the
// full ordered collection.
type PhotoLocation struct {
	Point geo.Point
	Label string
	Color string
}

// AssignColors fills in the Color of every location from the default
// palette, indexed by position. Input order is therefore significant:
// reordering locations reassigns their colors.
func AssignColors(locations []PhotoLocation) {
	colors := DefaultPalette(len(locations))
	for i := range locations {
		locations[i].Color = colors[i]
	}
}

// Corner selects where the legend box is anchored.
type Corner int

// Legend anchors.
const (
	UpperLeft Corner = iota
	UpperRight
	LowerLeft
	LowerRight
)

// ParseCorner maps a flag value such as "upper-left" to its Corner.
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "upper-left":
		return UpperLeft, nil
	case "upper-right":
		return UpperRight, nil
	case "lower-left":
		return LowerLeft, nil
	case "lower-right":
		return LowerRight, nil
	default:
		return 0, fmt.Errorf("unknown legend corner %q", s)
	}
}

// Options configures map composition. The historical script variants
// differed only in margin, legend corner and zoom; those knobs live here.
type Options struct {
	// Size is the canvas side in pixels. The output is always square.
	Size int

	// Zoom is the requested basemap zoom level; the tile client may step
	// it down to keep the download bounded.
	Zoom int

	// Margin pads the viewport, as a fraction of its side.
	Margin float64

	// TileURL is the XYZ basemap endpoint with {z}/{x}/{y} placeholders.
	TileURL string

	// UserAgent identifies this tool to the tile provider.
	UserAgent string

	// TraceHTTP dumps tile requests and responses to stderr.
	TraceHTTP bool

	// Timeout bounds each tile request.
	Timeout time.Duration

	LegendCorner Corner
	LegendTitle  string
	MarkerRadius float64
}

// DefaultOptions returns the stock composition parameters.
func DefaultOptions() *Options {
	return &Options{
		Size:         2048,
		Zoom:         17,
		Margin:       0.1,
		TileURL:      DefaultTileURL,
		Timeout:      30 * time.Second,
		LegendCorner: UpperLeft,
		LegendTitle:  "Puntos",
		MarkerRadius: 12,
	}
}

// Composer renders photo locations into map artifacts.
type Composer struct {
	options *Options
	tiles   *TileClient
}

// NewComposer creates a Composer for the given options.
func NewComposer(options *Options) *Composer {
	return &Composer{options: options, tiles: NewTileClient(options)}
}

// Render writes a satellite map of the locations to outputPath, its sole
// side effect. With no locations it logs a diagnostic and writes nothing.
// A basemap failure degrades to markers over a neutral background.
func (c *Composer) Render(locations []PhotoLocation, outputPath, title string) error {
	if len(locations) == 0 {
		log.Printf("No locations to render, skipping %s", outputPath)

		return nil
	}

	// All frame arithmetic happens in projected meters; geographic
	// degrees never reach the viewport.
	projected := make([]geo.XY, len(locations))
	for i, loc := range locations {
		projected[i] = geo.Project(loc.Point)
	}

	vp := geo.SquareViewport(projected, c.options.Margin)

	size := c.options.Size
	dc := gg.NewContext(size, size)
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.Clear()

	if mosaic, err := c.tiles.FetchRegion(vp, c.options.Zoom); err != nil {
		log.Printf("Basemap layer skipped - %s", err)
	} else {
		drawBasemap(dc, mosaic, vp, size)
	}

	scale := float64(size) / vp.Width()

	for i, loc := range locations {
		x := (projected[i].X - vp.MinX) * scale
		y := (vp.MaxY - projected[i].Y) * scale

		dc.SetHexColor(loc.Color)
		dc.DrawCircle(x, y, c.options.MarkerRadius)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	c.drawLegend(dc, locations)
	c.drawTitle(dc, title)

	if err := gg.SavePNG(outputPath, dc.Image()); err != nil {
		return fmt.Errorf("writing map %s: %w", outputPath, err)
	}

	log.Printf("Map saved to %s", outputPath)

	return nil
}

// drawBasemap crops the viewport's region out of the mosaic and scales it
// onto the canvas.
func drawBasemap(dc *gg.Context, m *Mosaic, vp geo.Viewport, size int) {
	b := m.Image.Bounds()
	sx := float64(b.Dx()) / m.Extent.Width()
	sy := float64(b.Dy()) / m.Extent.Height()

	src := image.Rect(
		int((vp.MinX-m.Extent.MinX)*sx),
		int((m.Extent.MaxY-vp.MaxY)*sy),
		int(math.Ceil((vp.MaxX-m.Extent.MinX)*sx)),
		int(math.Ceil((m.Extent.MaxY-vp.MinY)*sy)),
	)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), m.Image, src, xdraw.Src, nil)
	dc.DrawImage(dst, 0, 0)
}

func fontFace(points float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building font face: %w", err)
	}

	return face, nil
}

// drawLegend paints a box associating each label with its marker color, in
// the same order as the input sequence.
func (c *Composer) drawLegend(dc *gg.Context, locations []PhotoLocation) {
	face, err := fontFace(22)
	if err != nil {
		log.Printf("Legend skipped - %s", err)

		return
	}
	dc.SetFontFace(face)

	const (
		pad    = 14.0
		swatch = 14.0
		lineH  = 30.0
		edge   = 20.0
	)

	maxW, _ := dc.MeasureString(c.options.LegendTitle)

	for _, loc := range locations {
		if w, _ := dc.MeasureString(loc.Label); w > maxW {
			maxW = w
		}
	}

	boxW := pad*3 + swatch + maxW
	boxH := pad*2 + lineH*float64(len(locations)+1)
	size := float64(c.options.Size)

	var x0, y0 float64

	switch c.options.LegendCorner {
	case UpperLeft:
		x0, y0 = edge, edge
	case UpperRight:
		x0, y0 = size-edge-boxW, edge
	case LowerLeft:
		x0, y0 = edge, size-edge-boxH
	case LowerRight:
		x0, y0 = size-edge-boxW, size-edge-boxH
	}

	dc.SetRGBA(1, 1, 1, 0.85)
	dc.DrawRoundedRectangle(x0, y0, boxW, boxH, 6)
	dc.Fill()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(c.options.LegendTitle, x0+pad, y0+pad+lineH/2, 0, 0.35)

	y := y0 + pad + lineH

	for _, loc := range locations {
		cy := y + lineH/2

		dc.SetHexColor(loc.Color)
		dc.DrawCircle(x0+pad+swatch/2, cy, swatch/2)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1.5)
		dc.Stroke()

		dc.DrawStringAnchored(loc.Label, x0+pad*2+swatch, cy, 0, 0.35)

		y += lineH
	}
}

func (c *Composer) drawTitle(dc *gg.Context, title string) {
	if title == "" {
		return
	}

	face, err := fontFace(34)
	if err != nil {
		log.Printf("Title skipped - %s", err)

		return
	}
	dc.SetFontFace(face)

	cx := float64(c.options.Size) / 2

	// Shadow keeps the title legible over bright imagery.
	dc.SetRGBA(0, 0, 0, 0.7)
	dc.DrawStringAnchored(title, cx+2, 42, 0.5, 0.5)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(title, cx, 40, 0.5, 0.5)
}
