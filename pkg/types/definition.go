// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the passive records shared across the carousel
// pipeline: the definition document model and per-stage configuration.
package types

// ShapeType names in a definition document. These mirror the shape
// taxonomy of the source deck format.
const (
	ShapeAutoShape   = "auto_shape"
	ShapeChart       = "chart"
	ShapePicture     = "picture"
	ShapePlaceholder = "placeholder"
	ShapeGroup       = "group"
	ShapeLine        = "line"
	ShapeTable       = "table"
	ShapeTextBox     = "text_box"
	ShapeMedia       = "media"
	ShapeFreeform    = "freeform"
)

// Definition is the structural export of a deck: dimensions plus an
// ordered list of slides. It is built in one pass and never mutated.
type Definition struct {
	SourceFile string   `json:"source_file" yaml:"source_file"`
	Metadata   Metadata `json:"metadata" yaml:"metadata"`
	Slides     []Slide  `json:"slides" yaml:"slides"`
}

// Metadata carries deck-level dimensions. Inch values are rounded to
// four decimal places. SlideCount is the source deck's total, even when
// only a subset of slides was extracted.
type Metadata struct {
	SlideWidthInches  float64 `json:"slide_width_inches" yaml:"slide_width_inches"`
	SlideHeightInches float64 `json:"slide_height_inches" yaml:"slide_height_inches"`
	SlideCount        int     `json:"slide_count" yaml:"slide_count"`
}

// Slide is one slide's structural record. Index is 1-based. SlideImage
// is the exported PNG path, relative to the definition file's directory,
// and is present only when images were exported.
type Slide struct {
	Index      int     `json:"index" yaml:"index"`
	LayoutName string  `json:"layout_name" yaml:"layout_name"`
	SlideImage string  `json:"slide_image,omitempty" yaml:"slide_image,omitempty"`
	Shapes     []Shape `json:"shapes" yaml:"shapes"`
	Notes      string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Shape is one shape's geometry and content. Geometry is in inches,
// rounded to four decimal places, non-negative. Paragraphs is populated
// when the shape has a text frame, Table when the shape is a table, and
// GroupChildren when the shape is a group.
type Shape struct {
	ID           int     `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Type         string  `json:"type" yaml:"type"`
	LeftInches   float64 `json:"left_inches" yaml:"left_inches"`
	TopInches    float64 `json:"top_inches" yaml:"top_inches"`
	WidthInches  float64 `json:"width_inches" yaml:"width_inches"`
	HeightInches float64 `json:"height_inches" yaml:"height_inches"`
	Rotation     float64 `json:"rotation" yaml:"rotation"`
	HasTextFrame bool    `json:"has_text_frame" yaml:"has_text_frame"`

	Text          string      `json:"text,omitempty" yaml:"text,omitempty"`
	Paragraphs    []Paragraph `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Table         *Table      `json:"table,omitempty" yaml:"table,omitempty"`
	IsPicture     bool        `json:"is_picture,omitempty" yaml:"is_picture,omitempty"`
	GroupChildren []Shape     `json:"group_children,omitempty" yaml:"group_children,omitempty"`
}

// Paragraph is one paragraph of a text frame.
type Paragraph struct {
	Text      string `json:"text" yaml:"text"`
	Alignment string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Level     int    `json:"level,omitempty" yaml:"level,omitempty"`
	Runs      []Run  `json:"runs" yaml:"runs"`
}

// Run is a contiguous stretch of uniformly formatted text.
type Run struct {
	Text string  `json:"text" yaml:"text"`
	Font RunFont `json:"font" yaml:"font"`
}

// RunFont holds the formatting of a run. ColorHex is six upper-case hex
// digits without a leading '#', omitted when the color is unset.
type RunFont struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	SizePt    float64 `json:"size_pt,omitempty" yaml:"size_pt,omitempty"`
	Bold      bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty" yaml:"underline,omitempty"`
	ColorHex  string  `json:"color_hex,omitempty" yaml:"color_hex,omitempty"`
}

// Table is a row-major grid of cells.
type Table struct {
	Rows  int           `json:"rows" yaml:"rows"`
	Cols  int           `json:"cols" yaml:"cols"`
	Cells [][]TableCell `json:"cells" yaml:"cells"`
}

// TableCell is one table cell. Spans are always at least 1.
type TableCell struct {
	Text    string `json:"text" yaml:"text"`
	RowSpan int    `json:"row_span" yaml:"row_span"`
	ColSpan int    `json:"col_span" yaml:"col_span"`
}
