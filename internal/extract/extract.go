// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract walks a parsed deck into the definition document and
// serializes it as JSON or YAML.
package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/pkg/types"
)

// Supported serialization formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Build walks the deck's slides into a definition document. indices
// selects the slides to include (1-based, ascending); nil means all.
func Build(deck *pptx.Deck, indices []int) *types.Definition {
	selected := deck.Slides
	if indices != nil {
		selected = make([]*pptx.Slide, 0, len(indices))
		for _, idx := range indices {
			if idx >= 1 && idx <= len(deck.Slides) {
				selected = append(selected, deck.Slides[idx-1])
			}
		}
	}

	// SlideCount is the full deck count even for a subset, so slide
	// indices stay valid against it.
	def := &types.Definition{
		SourceFile: filepath.Base(deck.Path),
		Metadata: types.Metadata{
			SlideWidthInches:  pptx.RoundInches(pptx.EMUToInch(deck.WidthEMU)),
			SlideHeightInches: pptx.RoundInches(pptx.EMUToInch(deck.HeightEMU)),
			SlideCount:        len(deck.Slides),
		},
		Slides: make([]types.Slide, 0, len(selected)),
	}

	for _, slide := range selected {
		def.Slides = append(def.Slides, buildSlide(slide))
	}
	return def
}

func buildSlide(slide *pptx.Slide) types.Slide {
	out := types.Slide{
		Index:      slide.Index,
		LayoutName: slide.LayoutName,
		Notes:      slide.Notes,
		Shapes:     make([]types.Shape, 0, len(slide.Shapes)),
	}
	for i := range slide.Shapes {
		out.Shapes = append(out.Shapes, buildShape(&slide.Shapes[i]))
	}
	return out
}

func buildShape(shape *pptx.Shape) types.Shape {
	out := types.Shape{
		ID:           shape.ID,
		Name:         shape.Name,
		Type:         shape.Kind,
		LeftInches:   pptx.RoundInches(pptx.EMUToInch(shape.OffX)),
		TopInches:    pptx.RoundInches(pptx.EMUToInch(shape.OffY)),
		WidthInches:  pptx.RoundInches(pptx.EMUToInch(shape.CX)),
		HeightInches: pptx.RoundInches(pptx.EMUToInch(shape.CY)),
		Rotation:     shape.Rotation,
		HasTextFrame: shape.HasText,
		IsPicture:    shape.Kind == pptx.KindPicture,
	}

	if shape.HasText {
		out.Text = shape.FlatText()
		out.Paragraphs = buildParagraphs(shape.Paragraphs)
	}
	if shape.Table != nil {
		out.Table = buildTable(shape.Table)
	}
	for i := range shape.Children {
		out.GroupChildren = append(out.GroupChildren, buildShape(&shape.Children[i]))
	}
	return out
}

func buildParagraphs(paragraphs []pptx.Paragraph) []types.Paragraph {
	out := make([]types.Paragraph, 0, len(paragraphs))
	for i := range paragraphs {
		p := &paragraphs[i]
		tp := types.Paragraph{
			Text:      p.Text(),
			Alignment: p.Alignment,
			Level:     p.Level,
			Runs:      make([]types.Run, 0, len(p.Runs)),
		}
		for _, r := range p.Runs {
			tp.Runs = append(tp.Runs, types.Run{
				Text: r.Text,
				Font: types.RunFont{
					Name:      r.FontName,
					SizePt:    r.SizePt,
					Bold:      r.Bold,
					Italic:    r.Italic,
					Underline: r.Underline,
					ColorHex:  r.ColorHex,
				},
			})
		}
		out = append(out, tp)
	}
	return out
}

func buildTable(table *pptx.Table) *types.Table {
	out := &types.Table{
		Rows:  table.Rows,
		Cols:  table.Cols,
		Cells: make([][]types.TableCell, 0, len(table.Cells)),
	}
	for _, row := range table.Cells {
		cells := make([]types.TableCell, 0, len(row))
		for _, cell := range row {
			rowSpan, colSpan := cell.RowSpan, cell.ColSpan
			if rowSpan < 1 {
				rowSpan = 1
			}
			if colSpan < 1 {
				colSpan = 1
			}
			cells = append(cells, types.TableCell{
				Text:    cell.Text,
				RowSpan: rowSpan,
				ColSpan: colSpan,
			})
		}
		out.Cells = append(out.Cells, cells)
	}
	return out
}

// Marshal serializes the definition in the given format. Pretty controls
// JSON indentation and is ignored for YAML, which always indents.
func Marshal(def *types.Definition, format string, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		if pretty {
			return json.MarshalIndent(def, "", "  ")
		}
		return json.Marshal(def)
	case FormatYAML:
		return yaml.Marshal(def)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// WriteFile serializes the definition and writes it to path.
func WriteFile(def *types.Definition, path, format string, pretty bool) error {
	data, err := Marshal(def, format, pretty)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a definition document, picking the format from the file
// extension: .yaml/.yml parse as YAML, anything else as JSON.
func ReadFile(path string) (*types.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var def types.Definition
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	default:
		err = json.Unmarshal(data, &def)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &def, nil
}
