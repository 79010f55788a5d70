// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareViewportExpandsShorterAxis(t *testing.T) {
	// Wide extent: height grows from 4 to 10, then a 10% buffer of the
	// 10-unit side pads every edge.
	v := SquareViewport([]XY{{X: 0, Y: 0}, {X: 10, Y: 4}}, 0.1)
	assert.Equal(t, Viewport{MinX: -1, MinY: -4, MaxX: 11, MaxY: 8}, v)

	// Tall extent: the x axis grows instead.
	v = SquareViewport([]XY{{X: 0, Y: 0}, {X: 4, Y: 10}}, 0.1)
	assert.Equal(t, Viewport{MinX: -4, MinY: -1, MaxX: 8, MaxY: 11}, v)
}

func TestSquareViewportProperties(t *testing.T) {
	tests := []struct {
		name   string
		points []XY
	}{
		{"two points", []XY{{X: -3, Y: 7}, {X: 12, Y: 9}}},
		{"cluster", []XY{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}}},
		{"collinear", []XY{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 20}}},
		{"negative quadrant", []XY{{X: -100, Y: -200}, {X: -50, Y: -180}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := SquareViewport(tc.points, 0.1)

			assert.InDelta(t, v.Width(), v.Height(), 1e-9, "viewport must be square")

			for _, p := range tc.points {
				assert.Greater(t, p.X, v.MinX)
				assert.Less(t, p.X, v.MaxX)
				assert.Greater(t, p.Y, v.MinY)
				assert.Less(t, p.Y, v.MaxY)
			}
		})
	}
}

// A single point (or coincident points) must still produce a non-empty
// frame instead of collapsing to a zero-sized box.
func TestSquareViewportDegenerate(t *testing.T) {
	for _, points := range [][]XY{
		{{X: 5, Y: 5}},
		{{X: 5, Y: 5}, {X: 5, Y: 5}},
	} {
		v := SquareViewport(points, 0.1)

		require.Positive(t, v.Width())
		assert.InDelta(t, v.Width(), v.Height(), 1e-9)
		assert.Greater(t, points[0].X, v.MinX)
		assert.Less(t, points[0].X, v.MaxX)
		assert.Greater(t, points[0].Y, v.MinY)
		assert.Less(t, points[0].Y, v.MaxY)
	}
}
