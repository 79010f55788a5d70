// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package geo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Axis selects the hemisphere letters used when formatting a coordinate.
type Axis int

// Coordinate axes.
const (
	Latitude Axis = iota
	Longitude
)

// ErrParse reports sexagesimal text that does not carry at least degrees,
// minutes and seconds.
var ErrParse = errors.New("geo: unparseable DMS text")

var dmsTokens = regexp.MustCompile(`\d+\.?\d*`)

// FormatDMS renders a signed decimal degree value as degrees, minutes and
// seconds with a hemisphere letter, e.g. 27.9964 becomes "27°59'47.0″N".
// The seconds mark is U+2033 so the output never embeds an ASCII double
// quote that would need escaping in delimited-text exports.
func FormatDMS(decimal float64, axis Axis) string {
	abs := math.Abs(decimal)
	degrees := int(abs)
	minutesFull := (abs - float64(degrees)) * 60
	minutes := int(minutesFull)
	seconds := (minutesFull - float64(minutes)) * 60

	var hemisphere string
	if axis == Latitude {
		if decimal >= 0 {
			hemisphere = "N"
		} else {
			hemisphere = "S"
		}
	} else {
		if decimal >= 0 {
			hemisphere = "E"
		} else {
			hemisphere = "W"
		}
	}

	return fmt.Sprintf("%d°%d'%.1f″%s", degrees, minutes, seconds, hemisphere)
}

// ParseDMS converts sexagesimal text such as `27 deg 59' 47.00"` to signed
// decimal degrees. The first three numeric tokens are taken as degrees,
// minutes and seconds in that order; no unit labels are inspected, so the
// caller must supply text where that order genuinely holds. The result is
// negative when the text mentions an S or W hemisphere anywhere.
func ParseDMS(text string) (float64, error) {
	tokens := dmsTokens.FindAllString(text, 3)
	if len(tokens) < 3 {
		return 0, fmt.Errorf("%w: need degrees, minutes and seconds in %q", ErrParse, text)
	}

	values := make([]float64, 3)

	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: token %q: %v", ErrParse, token, err)
		}

		values[i] = v
	}

	decimal := values[0] + values[1]/60 + values[2]/3600

	if strings.ContainsAny(strings.ToUpper(text), "SW") {
		decimal = -decimal
	}

	return decimal, nil
}
