// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	binSoffice  = "soffice"
	binPdftoppm = "pdftoppm"
)

// sofficeExporter converts the deck to PDF with LibreOffice, then
// rasterizes the pages with pdftoppm.
type sofficeExporter struct {
	exec executor
}

func newSofficeExporter(exec executor) *sofficeExporter {
	return &sofficeExporter{exec: exec}
}

func (e *sofficeExporter) Name() string { return BackendSoffice }

func (e *sofficeExporter) available() bool {
	if _, err := e.exec.LookPath(binSoffice); err != nil {
		return false
	}
	_, err := e.exec.LookPath(binPdftoppm)
	return err == nil
}

func (e *sofficeExporter) Export(ctx context.Context, deckPath, outDir string, indices []int, opts Options) ([]string, error) {
	if _, err := os.Stat(deckPath); err != nil {
		return nil, fmt.Errorf("opening %s: %w", deckPath, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	workDir, err := os.MkdirTemp("", "carousel-export-")
	if err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	progressf(opts.Progress, "converting %s to pdf\n", filepath.Base(deckPath))
	err = e.exec.Run(ctx, binSoffice, "--headless", "--convert-to", "pdf", "--outdir", workDir, deckPath)
	if err != nil {
		return nil, fmt.Errorf("running soffice on %s: %w", deckPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	pdfPath := filepath.Join(workDir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("soffice produced no pdf for %s: %w", deckPath, err)
	}

	progressf(opts.Progress, "rasterizing pdf at %d dpi\n", opts.dpi())
	err = e.exec.Run(ctx, binPdftoppm, "-r", strconv.Itoa(opts.dpi()), "-png", pdfPath, filepath.Join(workDir, "page"))
	if err != nil {
		return nil, fmt.Errorf("running pdftoppm on %s: %w", pdfPath, err)
	}

	pages, err := collectPages(workDir)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdfPath)
	}

	if indices == nil {
		indices = make([]int, len(pages))
		for i := range pages {
			indices[i] = i + 1
		}
	}

	paths := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > len(pages) {
			return paths, fmt.Errorf("slide %d out of range: deck has %d pages", idx, len(pages))
		}
		outPath := filepath.Join(outDir, fmt.Sprintf("slide_%03d.png", idx))
		if err := copyFile(pages[idx-1], outPath); err != nil {
			return paths, err
		}
		progressf(opts.Progress, "exported slide %d\n", idx)
		paths = append(paths, outPath)
	}
	return paths, nil
}

// collectPages lists pdftoppm output files in page order. pdftoppm
// zero-pads page numbers based on the page count, so sort numerically.
func collectPages(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "page-*.png"))
	if err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		return pageNumber(matches[i]) < pageNumber(matches[j])
	})
	return matches, nil
}

func pageNumber(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".png")
	n, err := strconv.Atoi(strings.TrimPrefix(base, "page-"))
	if err != nil {
		return 0
	}
	return n
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
