// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/carousel/internal/pptx"
)

// fakeExecutor simulates soffice and pdftoppm by writing the files the
// real binaries would produce.
type fakeExecutor struct {
	missing map[string]bool
	pages   int
	calls   []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.missing[file] {
		return "", fmt.Errorf("%s not found", file)
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, name)
	switch name {
	case binSoffice:
		// args: --headless --convert-to pdf --outdir <dir> <deck>
		outDir := args[4]
		deck := args[5]
		stem := filepath.Base(deck)
		stem = stem[:len(stem)-len(filepath.Ext(stem))]
		return os.WriteFile(filepath.Join(outDir, stem+".pdf"), []byte("pdf"), 0o644)
	case binPdftoppm:
		// args: -r <dpi> -png <pdf> <prefix>
		prefix := args[4]
		for i := 1; i <= f.pages; i++ {
			name := fmt.Sprintf("%s-%d.png", prefix, i)
			if f.pages >= 10 {
				name = fmt.Sprintf("%s-%02d.png", prefix, i)
			}
			if err := os.WriteFile(name, []byte(fmt.Sprintf("page%d", i)), 0o644); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unexpected command %s", name)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		missing map[string]bool
		want    string
		wantErr bool
	}{
		{name: "native always works", backend: BackendNative, missing: map[string]bool{binSoffice: true}, want: BackendNative},
		{name: "soffice present", backend: BackendSoffice, want: BackendSoffice},
		{name: "soffice missing errors", backend: BackendSoffice, missing: map[string]bool{binSoffice: true}, wantErr: true},
		{name: "soffice without pdftoppm errors", backend: BackendSoffice, missing: map[string]bool{binPdftoppm: true}, wantErr: true},
		{name: "auto prefers soffice", backend: BackendAuto, want: BackendSoffice},
		{name: "auto falls back to native", backend: BackendAuto, missing: map[string]bool{binSoffice: true}, want: BackendNative},
		{name: "empty means auto", backend: "", want: BackendSoffice},
		{name: "unknown backend", backend: "imagemagick", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := detect(tt.backend, &fakeExecutor{missing: tt.missing})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, exp.Name())
		})
	}
}

func TestSofficeExport(t *testing.T) {
	deckPath := filepath.Join(t.TempDir(), "talk.pptx")
	require.NoError(t, os.WriteFile(deckPath, []byte("deck"), 0o644))
	outDir := filepath.Join(t.TempDir(), "images")

	exec := &fakeExecutor{pages: 3}
	exp := newSofficeExporter(exec)

	var progress bytes.Buffer
	paths, err := exp.Export(context.Background(), deckPath, outDir, nil, Options{Progress: &progress})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, p := range paths {
		assert.Equal(t, filepath.Join(outDir, fmt.Sprintf("slide_%03d.png", i+1)), p)
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("page%d", i+1), string(data))
	}
	assert.Equal(t, []string{binSoffice, binPdftoppm}, exec.calls)
	assert.Contains(t, progress.String(), "exported slide 3")
}

func TestSofficeExportSelectedIndices(t *testing.T) {
	deckPath := filepath.Join(t.TempDir(), "talk.pptx")
	require.NoError(t, os.WriteFile(deckPath, []byte("deck"), 0o644))
	outDir := t.TempDir()

	exp := newSofficeExporter(&fakeExecutor{pages: 12})
	paths, err := exp.Export(context.Background(), deckPath, outDir, []int{2, 11}, Options{})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// zero-padded pdftoppm names still sort into numeric page order
	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "page11", string(data))
}

func TestSofficeExportIndexOutOfRange(t *testing.T) {
	deckPath := filepath.Join(t.TempDir(), "talk.pptx")
	require.NoError(t, os.WriteFile(deckPath, []byte("deck"), 0o644))

	exp := newSofficeExporter(&fakeExecutor{pages: 2})
	_, err := exp.Export(context.Background(), deckPath, t.TempDir(), []int{3}, Options{})
	assert.Error(t, err)
}

func TestSofficeExportMissingDeck(t *testing.T) {
	exp := newSofficeExporter(&fakeExecutor{pages: 1})
	_, err := exp.Export(context.Background(), filepath.Join(t.TempDir(), "nope.pptx"), t.TempDir(), nil, Options{})
	assert.Error(t, err)
}

func buildTestDeck(t *testing.T) string {
	t.Helper()
	doc := pptx.NewDoc(16.0, 9.0)
	for i := 0; i < 2; i++ {
		slide := doc.AddSlide()
		rect := slide.AddRect(pptx.Inch(1.0), pptx.Inch(1.0), pptx.Inch(4.0), pptx.Inch(2.0))
		rect.FillHex = "3264C8"
	}
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, doc.Save(path))
	return path
}

func TestNativeExport(t *testing.T) {
	deckPath := buildTestDeck(t)
	outDir := filepath.Join(t.TempDir(), "images")

	exp := &nativeExporter{}
	paths, err := exp.Export(context.Background(), deckPath, outDir, nil, Options{DPI: 30, NoCache: true})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestNativeExportUsesCache(t *testing.T) {
	deckPath := buildTestDeck(t)
	cacheDir := t.TempDir()
	exp := &nativeExporter{}

	var first bytes.Buffer
	_, err := exp.Export(context.Background(), deckPath, t.TempDir(), []int{1},
		Options{DPI: 30, CacheDir: cacheDir, Progress: &first})
	require.NoError(t, err)
	assert.Contains(t, first.String(), "rendered slide 1")

	var second bytes.Buffer
	paths, err := exp.Export(context.Background(), deckPath, t.TempDir(), []int{1},
		Options{DPI: 30, CacheDir: cacheDir, Progress: &second})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, second.String(), "cached  slide 1")
}
