// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/pkg/types"
)

func sampleDeck() *pptx.Deck {
	return &pptx.Deck{
		Path:      "/decks/quarterly.pptx",
		WidthEMU:  pptx.Inch(13.3333),
		HeightEMU: pptx.Inch(7.5),
		Slides: []*pptx.Slide{
			{
				Index:      1,
				LayoutName: "Title Slide",
				Notes:      "opening remarks",
				Shapes: []pptx.Shape{
					{
						ID:      2,
						Name:    "Title 1",
						Kind:    pptx.KindPlaceholder,
						OffX:    pptx.Inch(1.0),
						OffY:    pptx.Inch(0.5),
						CX:      pptx.Inch(11.0),
						CY:      pptx.Inch(1.25),
						HasText: true,
						Paragraphs: []pptx.Paragraph{
							{
								Alignment: "ctr",
								Runs: []pptx.Run{
									{Text: "Q3 Review", FontName: "Calibri", SizePt: 44, Bold: true, ColorHex: "1F4E79"},
								},
							},
						},
					},
				},
			},
			{
				Index:      2,
				LayoutName: "Content",
				Shapes: []pptx.Shape{
					{ID: 3, Name: "Picture 1", Kind: pptx.KindPicture, CX: pptx.Inch(4.0), CY: pptx.Inch(3.0)},
					{
						ID:   4,
						Name: "Table 1",
						Kind: pptx.KindTable,
						Table: &pptx.Table{
							Rows: 2,
							Cols: 2,
							Cells: [][]pptx.Cell{
								{{Text: "a", RowSpan: 1, ColSpan: 2}, {Merged: true}},
								{{Text: "b", RowSpan: 1, ColSpan: 1}, {Text: "c", RowSpan: 1, ColSpan: 1}},
							},
						},
					},
					{
						ID:   5,
						Name: "Group 1",
						Kind: pptx.KindGroup,
						Children: []pptx.Shape{
							{ID: 6, Name: "Oval 1", Kind: pptx.KindAutoShape, OffX: pptx.Inch(0.25), CX: pptx.Inch(1.0), CY: pptx.Inch(1.0)},
						},
					},
				},
			},
			{
				Index:      3,
				LayoutName: "Content",
				Shapes:     []pptx.Shape{},
			},
		},
	}
}

func TestBuildAllSlides(t *testing.T) {
	def := Build(sampleDeck(), nil)

	assert.Equal(t, "quarterly.pptx", def.SourceFile)
	assert.InDelta(t, 13.3333, def.Metadata.SlideWidthInches, 1e-9)
	assert.InDelta(t, 7.5, def.Metadata.SlideHeightInches, 1e-9)
	assert.Equal(t, 3, def.Metadata.SlideCount)
	require.Len(t, def.Slides, 3)

	first := def.Slides[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "Title Slide", first.LayoutName)
	assert.Equal(t, "opening remarks", first.Notes)
	require.Len(t, first.Shapes, 1)

	title := first.Shapes[0]
	assert.Equal(t, types.ShapePlaceholder, title.Type)
	assert.True(t, title.HasTextFrame)
	assert.Equal(t, "Q3 Review", title.Text)
	assert.InDelta(t, 1.0, title.LeftInches, 1e-9)
	assert.InDelta(t, 1.25, title.HeightInches, 1e-9)
	require.Len(t, title.Paragraphs, 1)
	require.Len(t, title.Paragraphs[0].Runs, 1)
	run := title.Paragraphs[0].Runs[0]
	assert.Equal(t, "Calibri", run.Font.Name)
	assert.InDelta(t, 44.0, run.Font.SizePt, 1e-9)
	assert.True(t, run.Font.Bold)
	assert.Equal(t, "1F4E79", run.Font.ColorHex)
}

func TestBuildShapeKinds(t *testing.T) {
	def := Build(sampleDeck(), nil)
	shapes := def.Slides[1].Shapes
	require.Len(t, shapes, 3)

	assert.Equal(t, types.ShapePicture, shapes[0].Type)
	assert.True(t, shapes[0].IsPicture)

	table := shapes[1].Table
	require.NotNil(t, table)
	assert.Equal(t, 2, table.Rows)
	assert.Equal(t, 2, table.Cols)
	// merged continuation cells still get span floors of 1
	assert.Equal(t, 2, table.Cells[0][0].ColSpan)
	assert.Equal(t, 1, table.Cells[0][1].RowSpan)
	assert.Equal(t, 1, table.Cells[0][1].ColSpan)

	group := shapes[2]
	assert.Equal(t, types.ShapeGroup, group.Type)
	require.Len(t, group.GroupChildren, 1)
	assert.Equal(t, types.ShapeAutoShape, group.GroupChildren[0].Type)
	assert.InDelta(t, 0.25, group.GroupChildren[0].LeftInches, 1e-9)
}

func TestBuildWithIndices(t *testing.T) {
	def := Build(sampleDeck(), []int{1, 3})

	// a subset keeps the full deck count so indices stay within it
	assert.Equal(t, 3, def.Metadata.SlideCount)
	require.Len(t, def.Slides, 2)
	assert.Equal(t, 1, def.Slides[0].Index)
	assert.Equal(t, 3, def.Slides[1].Index)
}

func TestBuildSubsetIndicesWithinSlideCount(t *testing.T) {
	def := Build(sampleDeck(), []int{3})

	require.Len(t, def.Slides, 1)
	for _, s := range def.Slides {
		assert.LessOrEqual(t, s.Index, def.Metadata.SlideCount)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format string
		pretty bool
	}{
		{name: "json", file: "def.json", format: FormatJSON, pretty: false},
		{name: "json pretty", file: "def_pretty.json", format: FormatJSON, pretty: true},
		{name: "yaml", file: "def.yaml", format: FormatYAML, pretty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Build(sampleDeck(), nil)
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, WriteFile(def, path, tt.format, tt.pretty))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, def.SourceFile, got.SourceFile)
			assert.Equal(t, def.Metadata, got.Metadata)
			require.Len(t, got.Slides, len(def.Slides))
			assert.Equal(t, def.Slides[0].Shapes[0].Text, got.Slides[0].Shapes[0].Text)
		})
	}
}

func TestMarshalRejectsUnknownFormat(t *testing.T) {
	_, err := Marshal(&types.Definition{}, "toml", false)
	assert.Error(t, err)
}
