// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package carousel

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/carousel/pkg/types"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, perPage, want int
	}{
		{n: 1, perPage: 4, want: 1},
		{n: 4, perPage: 4, want: 1},
		{n: 5, perPage: 4, want: 2},
		{n: 12, perPage: 4, want: 3},
		{n: 13, perPage: 4, want: 4},
		{n: 10, perPage: 9, want: 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.n, tt.perPage),
			"PageCount(%d, %d)", tt.n, tt.perPage)
	}
}

func TestGridShape(t *testing.T) {
	tests := []struct {
		n, cols, rows int
	}{
		{n: 1, cols: 1, rows: 1},
		{n: 2, cols: 2, rows: 1},
		{n: 3, cols: 2, rows: 2},
		{n: 4, cols: 2, rows: 2},
		{n: 5, cols: 3, rows: 2},
		{n: 6, cols: 3, rows: 2},
		{n: 7, cols: 3, rows: 3},
		{n: 9, cols: 3, rows: 3},
	}
	for _, tt := range tests {
		cols, rows := GridShape(tt.n)
		assert.Equal(t, tt.cols, cols, "cols for %d", tt.n)
		assert.Equal(t, tt.rows, rows, "rows for %d", tt.n)
	}
}

func TestFitCellPreservesAspect(t *testing.T) {
	// wide cell: height-bound
	w, h := fitCell(10.0, 3.0)
	assert.InDelta(t, 3.0, h, 1e-9)
	assert.InDelta(t, 3.0*16/9, w, 1e-9)

	// tall cell: width-bound
	w, h = fitCell(4.0, 10.0)
	assert.InDelta(t, 4.0, w, 1e-9)
	assert.InDelta(t, 4.0*9/16, h, 1e-9)
}

func fakeImages(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := filepath.Join(dir, fmt.Sprintf("slide_%03d.png", i))
		require.NoError(t, os.WriteFile(p, []byte("png"), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestBuildGridPageCount(t *testing.T) {
	cfg := types.DefaultGridConfig()
	doc, err := BuildGrid(fakeImages(t, 10), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.SlideCount())
}

func TestBuildGridRejectsEmptyAndOversized(t *testing.T) {
	_, err := BuildGrid(nil, types.DefaultGridConfig())
	assert.Error(t, err)

	cfg := types.DefaultGridConfig()
	cfg.SlidesPerPage = 10
	_, err = BuildGrid(fakeImages(t, 3), cfg)
	assert.Error(t, err)
}

func TestCollectImagesNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"slide_10.png", "slide_2.png", "slide_1.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	images, err := CollectImages(dir, "slide_*.png")
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "slide_1.png", filepath.Base(images[0]))
	assert.Equal(t, "slide_2.png", filepath.Base(images[1]))
	assert.Equal(t, "slide_10.png", filepath.Base(images[2]))
}

func TestCollectImagesEmptyDir(t *testing.T) {
	_, err := CollectImages(t.TempDir(), "slide_*.png")
	assert.Error(t, err)
}
