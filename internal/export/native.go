// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pdiddy/carousel/internal/cache"
	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/internal/render"
)

// nativeExporter rasterizes slides with the built-in renderer, consulting
// the SQLite render cache keyed by deck content hash.
type nativeExporter struct{}

func (e *nativeExporter) Name() string { return BackendNative }

func (e *nativeExporter) Export(ctx context.Context, deckPath, outDir string, indices []int, opts Options) ([]string, error) {
	deck, err := pptx.Open(deckPath)
	if err != nil {
		return nil, err
	}
	if indices == nil {
		indices = make([]int, len(deck.Slides))
		for i := range deck.Slides {
			indices[i] = i + 1
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	pixelWidth := int(math.Round(float64(opts.dpi()) * pptx.EMUToInch(deck.WidthEMU)))
	if pixelWidth < 1 {
		pixelWidth = 1
	}

	var store *cache.Store
	var deckHash string
	if !opts.NoCache {
		dir := opts.CacheDir
		if dir == "" {
			dir = cache.DefaultDir()
		}
		if store, err = cache.Open(dir); err != nil {
			return nil, err
		}
		defer store.Close()
		if deckHash, err = cache.HashFile(deckPath); err != nil {
			return nil, err
		}
	}

	fonts := render.NewFontCache(opts.FontDirs...)

	paths := make([]string, 0, len(indices))
	for _, idx := range indices {
		select {
		case <-ctx.Done():
			return paths, ctx.Err()
		default:
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("slide_%03d.png", idx))

		if store != nil {
			data, ok, err := store.Get(ctx, deckHash, idx, pixelWidth)
			if err != nil {
				return paths, err
			}
			if ok {
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return paths, fmt.Errorf("writing %s: %w", outPath, err)
				}
				progressf(opts.Progress, "cached  slide %d\n", idx)
				paths = append(paths, outPath)
				continue
			}
		}

		img, err := render.Slide(deck, idx, &render.Options{Width: pixelWidth, FontCache: fonts})
		if err != nil {
			return paths, fmt.Errorf("rendering slide %d: %w", idx, err)
		}
		data, err := render.EncodePNG(img)
		if err != nil {
			return paths, err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", outPath, err)
		}
		if store != nil {
			if err := store.Put(ctx, deckHash, idx, pixelWidth, data); err != nil {
				return paths, err
			}
		}
		progressf(opts.Progress, "rendered slide %d\n", idx)
		paths = append(paths, outPath)
	}

	return paths, nil
}
