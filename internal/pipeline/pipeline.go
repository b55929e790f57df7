// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline chains definition extraction, image export, and
// carousel assembly into a single run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/carousel/internal/carousel"
	"github.com/pdiddy/carousel/internal/export"
	"github.com/pdiddy/carousel/internal/extract"
	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/internal/ranges"
)

// Options configures an end-to-end run.
type Options struct {
	// Output is the carousel deck path. Empty derives
	// <stem>_carousel.pptx beside the input.
	Output string

	// TemplatePath is the template deck whose layout drives the
	// carousel pages.
	TemplatePath string

	// KeepTemp writes intermediates beside the input instead of a
	// temporary directory and leaves them in place.
	KeepTemp bool

	// Backend picks the export backend; empty means auto.
	Backend string

	// DPI is the export resolution.
	DPI int

	// Range selects source slides, e.g. "1-10,15". Empty means all.
	Range string

	// NoCache bypasses the render cache.
	NoCache bool

	// CacheDir overrides the render cache location.
	CacheDir string

	// FontDirs lists extra font directories for the native backend.
	FontDirs []string
}

// Stem returns the input filename without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Run converts the input deck into a template carousel. Progress lines
// per stage go to w. Intermediates (definition document and exported
// images) live in a temporary directory removed on success, or beside
// the input when KeepTemp is set.
func Run(ctx context.Context, inputPath string, opts Options, w io.Writer) error {
	deck, err := pptx.Open(inputPath)
	if err != nil {
		return err
	}

	var indices []int
	if opts.Range != "" {
		indices, err = ranges.Parse(opts.Range, len(deck.Slides))
		if err != nil {
			return fmt.Errorf("parsing range %q: %w", opts.Range, err)
		}
	}

	stem := Stem(inputPath)
	workDir := filepath.Dir(inputPath)
	if !opts.KeepTemp {
		tmp, err := os.MkdirTemp("", "carousel-pipeline-")
		if err != nil {
			return fmt.Errorf("creating work directory: %w", err)
		}
		defer os.RemoveAll(tmp)
		workDir = tmp
	}
	defPath := filepath.Join(workDir, stem+"_definition.json")
	imagesDir := filepath.Join(workDir, stem+"_images")

	output := opts.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(inputPath), stem+"_carousel.pptx")
	}

	// stage 1: export slide images
	exporter, err := export.Detect(opts.Backend)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "exporting slides with %s backend\n", exporter.Name())
	paths, err := exporter.Export(ctx, inputPath, imagesDir, indices, export.Options{
		DPI:      opts.DPI,
		NoCache:  opts.NoCache,
		CacheDir: opts.CacheDir,
		FontDirs: opts.FontDirs,
		Progress: w,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "exported: %d\n", len(paths))

	// stage 2: definition document with image references
	def := extract.Build(deck, indices)
	for i := range def.Slides {
		def.Slides[i].SlideImage = filepath.Join(filepath.Base(imagesDir),
			fmt.Sprintf("slide_%03d.png", def.Slides[i].Index))
	}
	if err := extract.WriteFile(def, defPath, extract.FormatJSON, true); err != nil {
		return err
	}
	fmt.Fprintf(w, "definition: %s\n", defPath)

	// stage 3: template carousel
	template, err := pptx.Open(opts.TemplatePath)
	if err != nil {
		return err
	}
	layout := carousel.LayoutFromDefinition(extract.Build(template, nil))

	images, err := carousel.CollectImages(imagesDir, "slide_*.png")
	if err != nil {
		return err
	}
	doc, err := carousel.BuildCarousel(images, layout)
	if err != nil {
		return err
	}
	if err := doc.Save(output); err != nil {
		return err
	}

	fmt.Fprintf(w, "carousel: %s (%d pages)\n", output, doc.SlideCount())
	if opts.KeepTemp {
		fmt.Fprintf(w, "kept intermediates in %s\n", workDir)
	}
	return nil
}
