// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteEmpty(t *testing.T) {
	assert.Empty(t, DefaultPalette(0))
}

func TestPaletteLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 20, 360} {
		assert.Len(t, DefaultPalette(n), n)
	}
}

// Stock saturation 0.7 and lightness 0.5 put the first hue at a warm red
// and the half-turn hue at its cyan complement.
func TestPaletteKnownColors(t *testing.T) {
	assert.Equal(t, []string{"#d82626"}, DefaultPalette(1))
	assert.Equal(t, []string{"#d82626", "#26d8d8"}, DefaultPalette(2))
}

func TestPaletteDistinct(t *testing.T) {
	colors := DefaultPalette(360)
	seen := make(map[string]int, len(colors))

	for i, c := range colors {
		if prev, dup := seen[c]; dup {
			t.Fatalf("color %s repeated at indexes %d and %d", c, prev, i)
		}

		seen[c] = i
	}
}

func TestPaletteDeterministic(t *testing.T) {
	if diff := cmp.Diff(DefaultPalette(24), DefaultPalette(24)); diff != "" {
		t.Errorf("palette not deterministic (-first +second):\n%s", diff)
	}
}

func TestPaletteGrayscaleWithoutSaturation(t *testing.T) {
	colors := Palette(3, 0, 0.5)
	require.Len(t, colors, 3)

	for _, c := range colors {
		assert.Equal(t, "#7f7f7f", c)
	}
}
