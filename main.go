// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/juanse77/geofotos/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
