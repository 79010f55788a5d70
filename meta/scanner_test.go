// Copyright 2026 The GeoFotos Authors
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestScanImages(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		"b.jpeg",
		"A.JPG", // extension match is case-insensitive
		"notes.txt",
		"z.heic",
		filepath.Join("nested", "deep", "c.png"),
		filepath.Join("nested", "skipped.pdf"),
	}

	for _, name := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	got, err := ScanImages(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "A.JPG"),
		filepath.Join(dir, "b.jpeg"),
		filepath.Join(dir, "nested", "deep", "c.png"),
		filepath.Join(dir, "z.heic"),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("image list mismatch (-want +got):\n%s", diff)
	}
}

func TestScanImagesEmptyDir(t *testing.T) {
	got, err := ScanImages(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, got)
}
