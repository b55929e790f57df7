// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package carousel

import (
	"fmt"

	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/pkg/types"
)

// Grid page styling.
const (
	gridMargin      = 0.5 // inches
	gridTitleBand   = 1.0
	gridNoTitleBand = 0.2
	gridSpacing     = 0.3

	gridBackgroundHex = "F5F5F5" // 245,245,245
	gridTitleHex      = "323232" // 50,50,50
	gridBorderHex     = "B4B4B4" // 180,180,180
	gridLabelFillHex  = "323296" // 50,50,150

	thumbAspect = 16.0 / 9.0
)

// PageCount returns ceil(n / perPage).
func PageCount(n, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return (n + perPage - 1) / perPage
}

// GridShape returns the column and row count for n thumbnails on one
// page: up to two side by side, then 2x2, 3x2 and 3x3.
func GridShape(n int) (cols, rows int) {
	switch {
	case n <= 2:
		return n, 1
	case n <= 4:
		return 2, 2
	case n <= 6:
		return 3, 2
	default:
		return 3, 3
	}
}

// BuildGrid lays the images out as a review deck, K thumbnails per page
// with titles, borders and slide-number labels.
func BuildGrid(images []string, cfg types.GridConfig) (*pptx.Doc, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to lay out")
	}
	perPage := cfg.SlidesPerPage
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 9 {
		return nil, fmt.Errorf("slides per page must be at most 9, got %d", perPage)
	}

	doc := pptx.NewDoc(cfg.WidthInches, cfg.HeightInches)

	titleBand := gridNoTitleBand
	if cfg.Titles {
		titleBand = gridTitleBand
	}
	availableW := cfg.WidthInches - 2*gridMargin
	availableH := cfg.HeightInches - titleBand - gridMargin

	pages := PageCount(len(images), perPage)
	for page := 0; page < pages; page++ {
		start := page * perPage
		end := start + perPage
		if end > len(images) {
			end = len(images)
		}
		pageImages := images[start:end]

		slide := doc.AddSlide()
		slide.BackgroundHex = gridBackgroundHex

		if cfg.Titles {
			title := fmt.Sprintf("Slides %d - %d", start+1, end)
			if end-start == 1 {
				title = fmt.Sprintf("Slide %d", start+1)
			}
			t := slide.AddTextBox(title, pptx.Inch(gridMargin), pptx.Inch(0.3),
				pptx.Inch(availableW), pptx.Inch(0.6))
			t.SizePt = 32
			t.Bold = true
			t.ColorHex = gridTitleHex
			t.Align = "ctr"
		}

		cols, rows := GridShape(len(pageImages))
		cellW := (availableW - gridSpacing*float64(cols-1)) / float64(cols)
		cellH := (availableH - gridSpacing*float64(rows-1)) / float64(rows)
		fitW, fitH := fitCell(cellW, cellH)

		for i, img := range pageImages {
			row := i / cols
			col := i % cols
			cellLeft := gridMargin + float64(col)*(cellW+gridSpacing)
			cellTop := titleBand + float64(row)*(cellH+gridSpacing)

			// center the fitted thumbnail in its cell
			left := cellLeft + (cellW-fitW)/2
			top := cellTop + (cellH-fitH)/2

			pic := slide.AddPicture(img, pptx.Inch(left), pptx.Inch(top),
				pptx.Inch(fitW), pptx.Inch(fitH))
			if cfg.Borders {
				pic.BorderHex = gridBorderHex
				pic.BorderWidthPt = 2
			}

			label := slide.AddTextBox(fmt.Sprintf("%d", start+i+1),
				pptx.Inch(left), pptx.Inch(top), pptx.Inch(0.6), pptx.Inch(0.35))
			label.SizePt = 18
			label.Bold = true
			label.ColorHex = "FFFFFF"
			label.Align = "ctr"
			label.FillHex = gridLabelFillHex
		}
	}

	return doc, nil
}

// fitCell shrinks a 16:9 thumbnail to fit the cell.
func fitCell(cellW, cellH float64) (w, h float64) {
	w = cellW
	h = w / thumbAspect
	if h > cellH {
		h = cellH
		w = h * thumbAspect
	}
	return w, h
}
