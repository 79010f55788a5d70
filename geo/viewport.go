// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package geo

import "math"

// Viewport is the square region of projected space a rendered map frame
// displays, in web-mercator meters.
type Viewport struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns the horizontal extent of the viewport.
func (v Viewport) Width() float64 {
	return v.MaxX - v.MinX
}

// Height returns the vertical extent of the viewport.
func (v Viewport) Height() float64 {
	return v.MaxY - v.MinY
}

// degenerateExtent is the padding applied when every point coincides, so a
// single photo still gets a usable map frame instead of a zero-sized one.
const degenerateExtent = 100.0 // meters

// SquareViewport computes the axis-aligned bounding box of the points,
// grows the shorter axis symmetrically until the box is square, and then
// pads every edge with marginFraction of the resulting side. points must
// not be empty. With a positive marginFraction every input point ends up
// strictly inside the returned box.
func SquareViewport(points []XY, marginFraction float64) Viewport {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY

	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width, height := maxX-minX, maxY-minY
	if height > width {
		d := (height - width) / 2
		minX -= d
		maxX += d
	} else {
		d := (width - height) / 2
		minY -= d
		maxY += d
	}

	side := math.Max(width, height)

	buffer := side * marginFraction
	if side == 0 {
		buffer = degenerateExtent
	}

	return Viewport{
		MinX: minX - buffer,
		MinY: minY - buffer,
		MaxX: maxX + buffer,
		MaxY: maxY + buffer,
	}
}
