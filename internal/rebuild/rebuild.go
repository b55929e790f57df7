// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rebuild reconstructs a full-bleed deck from a definition
// document's exported slide images.
package rebuild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/carousel/internal/extract"
	"github.com/pdiddy/carousel/internal/pptx"
)

// Options overrides the output slide size; zero values fall back to the
// definition's metadata.
type Options struct {
	WidthInches  float64
	HeightInches float64
}

// FromDefinition reads the definition at defPath and builds a deck with
// one full-size image slide per definition slide that has an exported
// image. Image paths resolve relative to the definition file's
// directory; a missing image file is warned to w and its slide skipped.
func FromDefinition(defPath string, opts Options, w io.Writer) (*pptx.Doc, error) {
	def, err := extract.ReadFile(defPath)
	if err != nil {
		return nil, err
	}

	width := opts.WidthInches
	if width <= 0 {
		width = def.Metadata.SlideWidthInches
	}
	height := opts.HeightInches
	if height <= 0 {
		height = def.Metadata.SlideHeightInches
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("definition %s has no slide size and none was given", defPath)
	}

	baseDir := filepath.Dir(defPath)
	doc := pptx.NewDoc(width, height)
	placed := 0

	for _, slide := range def.Slides {
		if slide.SlideImage == "" {
			continue
		}
		imgPath := slide.SlideImage
		if !filepath.IsAbs(imgPath) {
			imgPath = filepath.Join(baseDir, imgPath)
		}
		if _, err := os.Stat(imgPath); err != nil {
			fmt.Fprintf(w, "warning: slide %d image missing: %s\n", slide.Index, imgPath)
			continue
		}

		page := doc.AddSlide()
		page.AddPicture(imgPath, 0, 0, pptx.Inch(width), pptx.Inch(height))
		placed++
	}

	if placed == 0 {
		return nil, fmt.Errorf("definition %s has no usable slide images", defPath)
	}
	return doc, nil
}
