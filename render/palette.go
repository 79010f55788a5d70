// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

// Package render plots photo locations as colored markers with a legend
// over a satellite basemap and writes the result as a single PNG.
package render

import "fmt"

// Default saturation and lightness for marker colors.
const (
	defaultSaturation = 0.7
	defaultLightness  = 0.5
)

// Palette returns n marker colors as "#rrggbb" strings, sampling n equally
// spaced hues (i/n for i in 0..n-1) at the given saturation and lightness.
// Colors come back in hue order and are pairwise distinct for any n up to
// 360. n = 0 yields an empty palette.
func Palette(n int, saturation, lightness float64) []string {
	colors := make([]string, 0, n)

	for i := 0; i < n; i++ {
		r, g, b := hslToRGB(float64(i)/float64(n), saturation, lightness)
		colors = append(colors, fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255)))
	}

	return colors
}

// DefaultPalette returns n colors with the stock saturation and lightness.
func DefaultPalette(n int) []string {
	return Palette(n, defaultSaturation, defaultLightness)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}

	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// hslToRGB converts hue, saturation and lightness in [0, 1] to RGB
// components in [0, 1].
func hslToRGB(h, s, l float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}

	p := 2*l - q

	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}
