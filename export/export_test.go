// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sampleRecords = []Record{
	{Filename: "01.jpg", LatitudeDMS: "27°59'47.2″N", LongitudeDMS: "15°25'4.3″W"},
	{Filename: "02.jpg", LatitudeDMS: "", LongitudeDMS: ""}, // scanned, no GPS
	{Filename: "cumbre, la.jpg", LatitudeDMS: "28°0'0.0″N", LongitudeDMS: "15°35'0.0″W"},
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coordenadas.csv")

	require.NoError(t, WriteCSV(sampleRecords, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Nombre de la foto", "Latitud", "Longitud"},
		{"01.jpg", "27°59'47.2″N", "15°25'4.3″W"},
		{"02.jpg", "", ""},
		{"cumbre, la.jpg", "28°0'0.0″N", "15°35'0.0″W"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("csv content mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSVEmptyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteCSV(nil, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coordenadas.xlsx")

	require.NoError(t, WriteXLSX(sampleRecords, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(sampleRecords)+1)

	assert.Equal(t, []string{"Nombre de la foto", "Latitud", "Longitud"}, rows[0])
	assert.Equal(t, []string{"01.jpg", "27°59'47.2″N", "15°25'4.3″W"}, rows[1])
	assert.Equal(t, "02.jpg", rows[2][0])
}

func TestWriteXLSXEmptyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, WriteXLSX(nil, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
