// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Doc is a presentation under construction. Slides are appended in
// order and written out with Save or WriteTo.
type Doc struct {
	widthEMU  int64
	heightEMU int64
	slides    []*DocSlide
}

// NewDoc creates an empty presentation with the given page size in inches.
func NewDoc(widthInches, heightInches float64) *Doc {
	return &Doc{
		widthEMU:  Inch(widthInches),
		heightEMU: Inch(heightInches),
	}
}

// WidthEMU returns the page width in EMU.
func (d *Doc) WidthEMU() int64 { return d.widthEMU }

// HeightEMU returns the page height in EMU.
func (d *Doc) HeightEMU() int64 { return d.heightEMU }

// SlideCount returns the number of slides added so far.
func (d *Doc) SlideCount() int { return len(d.slides) }

// AddSlide appends a blank slide and returns it for population.
func (d *Doc) AddSlide() *DocSlide {
	s := &DocSlide{}
	d.slides = append(d.slides, s)
	return s
}

// DocSlide is one output slide. BackgroundHex, when set, paints the
// whole page with a solid color (six hex digits).
type DocSlide struct {
	BackgroundHex string
	shapes        []any
}

// Picture places an image file on a slide. Geometry is in EMU.
type Picture struct {
	Path string
	OffX int64
	OffY int64
	CX   int64
	CY   int64

	// BorderHex draws a solid outline when set; width in points.
	BorderHex     string
	BorderWidthPt float64
}

// AddPicture appends a picture shape referencing the image at path.
func (s *DocSlide) AddPicture(path string, offX, offY, cx, cy int64) *Picture {
	p := &Picture{Path: path, OffX: offX, OffY: offY, CX: cx, CY: cy}
	s.shapes = append(s.shapes, p)
	return p
}

// GradientStop is one stop of a linear gradient. Pos and Alpha are in
// thousandths of a percent (0-100000); Alpha 100000 is opaque.
type GradientStop struct {
	Pos   int
	Hex   string
	Alpha int
}

// Gradient is a linear gradient fill. Angle is in degrees, 0 pointing
// left-to-right.
type Gradient struct {
	AngleDeg int
	Stops    []GradientStop
}

// Rect is a rectangle shape with a solid or gradient fill and no outline.
type Rect struct {
	OffX     int64
	OffY     int64
	CX       int64
	CY       int64
	Rotation float64

	FillHex  string
	Gradient *Gradient
}

// AddRect appends a rectangle shape.
func (s *DocSlide) AddRect(offX, offY, cx, cy int64) *Rect {
	r := &Rect{OffX: offX, OffY: offY, CX: cx, CY: cy}
	s.shapes = append(s.shapes, r)
	return r
}

// TextBox is a single-paragraph text box.
type TextBox struct {
	OffX int64
	OffY int64
	CX   int64
	CY   int64

	Text     string
	SizePt   float64
	Bold     bool
	ColorHex string
	// Align is the paragraph alignment: "l", "ctr", or "r".
	Align string

	// FillHex paints the box background when set.
	FillHex string
}

// AddTextBox appends a text box shape.
func (s *DocSlide) AddTextBox(text string, offX, offY, cx, cy int64) *TextBox {
	t := &TextBox{Text: text, OffX: offX, OffY: offY, CX: cx, CY: cy}
	s.shapes = append(s.shapes, t)
	return t
}

// mediaEntry is one unique image referenced by the document.
type mediaEntry struct {
	path string
	ext  string
}

// mediaIndex assigns each unique image path a 1-based media number,
// in first-use order. The same image placed on many slides is stored once.
func (d *Doc) mediaIndex() ([]mediaEntry, map[string]int) {
	var entries []mediaEntry
	byPath := make(map[string]int)
	for _, slide := range d.slides {
		for _, shape := range slide.shapes {
			pic, ok := shape.(*Picture)
			if !ok {
				continue
			}
			if _, seen := byPath[pic.Path]; seen {
				continue
			}
			entries = append(entries, mediaEntry{path: pic.Path, ext: imageExt(pic.Path)})
			byPath[pic.Path] = len(entries)
		}
	}
	return entries, byPath
}

func imageExt(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg":
		return "jpeg"
	case "":
		return "png"
	}
	return ext
}

// maxImageFileSize bounds image files read into the package.
const maxImageFileSize = 50 << 20 // 50 MB

func readImageFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat image %s: %w", path, err)
	}
	if info.Size() > maxImageFileSize {
		return nil, fmt.Errorf("image %s too large: %d bytes (max %d)", path, info.Size(), maxImageFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return data, nil
}
