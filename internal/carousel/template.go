// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package carousel

import (
	"fmt"
	"sort"

	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/pkg/types"
)

const centerBorderHex = "C8C8C8" // 200,200,200

// Slot is a picture placement in inches.
type Slot struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Overlay is a gradient rectangle placement.
type Overlay struct {
	Slot
	Rotation float64
}

// Layout is the carousel geometry extracted from a template deck: one
// x-sorted picture pattern per template slide, plus the first slide's
// overlay rectangles.
type Layout struct {
	WidthInches  float64
	HeightInches float64
	Patterns     [][]Slot
	Overlays     []Overlay
}

// LayoutFromDefinition reads the carousel geometry out of a template
// deck's definition document. Decks without picture shapes fall back to
// the built-in layout.
func LayoutFromDefinition(def *types.Definition) *Layout {
	layout := &Layout{
		WidthInches:  def.Metadata.SlideWidthInches,
		HeightInches: def.Metadata.SlideHeightInches,
	}
	if layout.WidthInches <= 0 || layout.HeightInches <= 0 {
		layout.WidthInches, layout.HeightInches = 32.0, 9.0
	}

	for _, slide := range def.Slides {
		var slots []Slot
		for _, shape := range slide.Shapes {
			if !shape.IsPicture {
				continue
			}
			slots = append(slots, Slot{
				Left:   shape.LeftInches,
				Top:    shape.TopInches,
				Width:  shape.WidthInches,
				Height: shape.HeightInches,
			})
		}
		if len(slots) == 0 {
			continue
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i].Left < slots[j].Left })
		layout.Patterns = append(layout.Patterns, slots)
	}

	if len(layout.Patterns) == 0 {
		return DefaultLayout(layout.WidthInches, layout.HeightInches)
	}

	if len(def.Slides) > 0 {
		var rects []Overlay
		for _, shape := range def.Slides[0].Shapes {
			if shape.Type != types.ShapeAutoShape {
				continue
			}
			rects = append(rects, Overlay{
				Slot: Slot{
					Left:   shape.LeftInches,
					Top:    shape.TopInches,
					Width:  shape.WidthInches,
					Height: shape.HeightInches,
				},
				Rotation: shape.Rotation,
			})
		}
		sort.Slice(rects, func(i, j int) bool { return rects[i].Left < rects[j].Left })
		layout.Overlays = rects
	}

	return layout
}

// DefaultLayout builds the stock ultra-wide layout for templates without
// picture shapes: a large centered slot flanked by two smaller slots on
// each side, with edge overlays a quarter of the page wide.
func DefaultLayout(widthInches, heightInches float64) *Layout {
	if widthInches <= 0 || heightInches <= 0 {
		widthInches, heightInches = 32.0, 9.0
	}

	centerH := heightInches * 0.85
	centerW := centerH * thumbAspect
	sideH := heightInches * 0.7
	sideW := sideH * thumbAspect
	gap := 0.3

	centerLeft := (widthInches - centerW) / 2
	centerTop := (heightInches - centerH) / 2
	sideTop := (heightInches - sideH) / 2

	center := Slot{Left: centerLeft, Top: centerTop, Width: centerW, Height: centerH}
	left := Slot{Left: centerLeft - gap - sideW, Top: sideTop, Width: sideW, Height: sideH}
	farLeft := Slot{Left: left.Left - gap - sideW, Top: sideTop, Width: sideW, Height: sideH}
	right := Slot{Left: centerLeft + centerW + gap, Top: sideTop, Width: sideW, Height: sideH}
	farRight := Slot{Left: right.Left + sideW + gap, Top: sideTop, Width: sideW, Height: sideH}

	overlayW := widthInches / 4
	return &Layout{
		WidthInches:  widthInches,
		HeightInches: heightInches,
		Patterns: [][]Slot{
			{center, right, farRight},
			{left, center, right, farRight},
			{farLeft, left, center, right, farRight},
			{farLeft, left, center, right},
			{farLeft, left, center},
		},
		Overlays: []Overlay{
			{Slot: Slot{Left: 0, Top: 0, Width: overlayW, Height: heightInches}},
			{Slot: Slot{Left: widthInches - overlayW, Top: 0, Width: overlayW, Height: heightInches}},
		},
	}
}

// patternFor picks the template pattern and the window of visible image
// indices for the page centering image centerIdx of total.
func patternFor(centerIdx, total, numPatterns int) (patternIdx int, visible []int) {
	span := func(lo, hi int) []int {
		if lo < 0 {
			lo = 0
		}
		if hi > total {
			hi = total
		}
		out := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			out = append(out, i)
		}
		return out
	}

	switch {
	case centerIdx == 0:
		return 0, span(0, 3)
	case centerIdx == 1 && numPatterns > 1:
		return 1, span(0, 4)
	case centerIdx >= 2 && centerIdx < total-2:
		return min(2, numPatterns-1), span(centerIdx-2, centerIdx+3)
	case centerIdx == total-2 && numPatterns > 3:
		return min(3, numPatterns-1), span(centerIdx-2, total)
	default:
		return min(numPatterns-1, 2), span(centerIdx-2, total)
	}
}

// BuildCarousel assembles one page per image: black background, the
// visible window of images placed at the pattern's slots, and gradient
// overlays fading both edges to black.
func BuildCarousel(images []string, layout *Layout) (*pptx.Doc, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to lay out")
	}
	if layout == nil || len(layout.Patterns) == 0 {
		return nil, fmt.Errorf("template has no picture layout")
	}

	doc := pptx.NewDoc(layout.WidthInches, layout.HeightInches)

	for centerIdx := range images {
		slide := doc.AddSlide()
		slide.BackgroundHex = "000000"

		patternIdx, visible := patternFor(centerIdx, len(images), len(layout.Patterns))
		slots := layout.Patterns[patternIdx]

		for slotIdx, slot := range slots {
			if slotIdx >= len(visible) {
				break
			}
			pic := slide.AddPicture(images[visible[slotIdx]],
				pptx.Inch(slot.Left), pptx.Inch(slot.Top),
				pptx.Inch(slot.Width), pptx.Inch(slot.Height))
			pic.BorderHex = centerBorderHex
			pic.BorderWidthPt = 1
		}

		// overlays go on top of the pictures
		if len(layout.Overlays) >= 2 {
			addOverlay(slide, layout.Overlays[0], 0)
			addOverlay(slide, layout.Overlays[1], 180)
		}
	}

	return doc, nil
}

// addOverlay places one gradient rectangle. Angle 0 fades opaque black
// into transparency left to right; angle 180 runs the other way.
func addOverlay(slide *pptx.DocSlide, o Overlay, angleDeg int) {
	rect := slide.AddRect(pptx.Inch(o.Left), pptx.Inch(o.Top),
		pptx.Inch(o.Width), pptx.Inch(o.Height))
	rect.Rotation = o.Rotation

	opaque := pptx.GradientStop{Pos: 0, Hex: "000000", Alpha: 100000}
	transparent := pptx.GradientStop{Pos: 100000, Hex: "000000", Alpha: 0}
	if angleDeg == 180 {
		opaque.Pos, transparent.Pos = 100000, 0
	}
	stops := []pptx.GradientStop{opaque, transparent}
	if opaque.Pos > transparent.Pos {
		stops = []pptx.GradientStop{transparent, opaque}
	}
	rect.Gradient = &pptx.Gradient{AngleDeg: angleDeg, Stops: stops}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
