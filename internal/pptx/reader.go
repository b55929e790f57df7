// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// Shape kinds in the read model.
const (
	KindAutoShape   = "auto_shape"
	KindChart       = "chart"
	KindPicture     = "picture"
	KindPlaceholder = "placeholder"
	KindGroup       = "group"
	KindLine        = "line"
	KindTable       = "table"
	KindTextBox     = "text_box"
	KindMedia       = "media"
	KindFreeform    = "freeform"
)

// Deck is the read model of a presentation package.
type Deck struct {
	// Path is the file the deck was opened from; empty for in-memory reads.
	Path string

	WidthEMU  int64
	HeightEMU int64

	Slides []*Slide
}

// Slide is one slide of a deck. Index is 1-based and follows the
// presentation's slide order.
type Slide struct {
	Index      int
	LayoutName string
	Notes      string
	Shapes     []Shape
}

// Shape is one shape of the read model, geometry in EMU.
type Shape struct {
	ID       int
	Name     string
	Kind     string
	OffX     int64
	OffY     int64
	CX       int64
	CY       int64
	Rotation float64

	HasText    bool
	Paragraphs []Paragraph

	Table    *Table
	Children []Shape

	// FillHex is the shape's solid fill as six hex digits, empty when unset.
	FillHex string

	// Image holds the embedded media bytes for picture shapes.
	Image []byte
}

// FlatText joins the shape's paragraph texts with newlines.
func (s *Shape) FlatText() string {
	parts := make([]string, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		parts = append(parts, p.Text())
	}
	return strings.Join(parts, "\n")
}

// Paragraph is one paragraph of a text frame.
type Paragraph struct {
	Alignment string
	Level     int
	Runs      []Run
}

// Text joins the paragraph's run texts.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Run is a contiguous stretch of uniformly formatted text.
type Run struct {
	Text      string
	FontName  string
	SizePt    float64
	Bold      bool
	Italic    bool
	Underline bool
	ColorHex  string
}

// Table is a table shape's cell grid.
type Table struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// Cell is one table cell. Merged marks continuation cells of a span.
type Cell struct {
	Text    string
	RowSpan int
	ColSpan int
	Merged  bool
}

// reader parses a pptx zip into a Deck.
type reader struct {
	files map[string]*zip.File
}

// Open reads a PPTX file from disk.
func Open(filename string) (*Deck, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer zr.Close()

	deck, err := read(&zr.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	deck.Path = filename
	return deck, nil
}

// ReadFrom reads a PPTX package from an io.ReaderAt with the given size.
func ReadFrom(r io.ReaderAt, size int64) (*Deck, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}
	return read(zr)
}

func read(zr *zip.Reader) (*Deck, error) {
	r := &reader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	var pres presentationXML
	if err := r.unmarshal("ppt/presentation.xml", &pres); err != nil {
		return nil, fmt.Errorf("parsing presentation part: %w", err)
	}

	deck := &Deck{}
	if pres.SlideSz != nil {
		deck.WidthEMU = pres.SlideSz.Cx
		deck.HeightEMU = pres.SlideSz.Cy
	}

	slideParts, err := r.slideParts(&pres)
	if err != nil {
		return nil, err
	}
	if len(slideParts) == 0 {
		return nil, fmt.Errorf("presentation has no slides")
	}

	for i, part := range slideParts {
		slide, err := r.parseSlide(part, i+1)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", part, err)
		}
		deck.Slides = append(deck.Slides, slide)
	}

	return deck, nil
}

func (r *reader) validate() error {
	for _, name := range []string{"[Content_Types].xml", "ppt/presentation.xml"} {
		if _, ok := r.files[name]; !ok {
			return fmt.Errorf("not a presentation package: missing %s", name)
		}
	}
	return nil
}

func (r *reader) content(name string) ([]byte, error) {
	f, ok := r.files[name]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (r *reader) unmarshal(name string, v any) error {
	data, err := r.content(name)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// slideParts resolves the ordered slide part names, following sldIdLst
// through the presentation relationships. Decks with a missing or
// incomplete id list fall back to numeric part order.
func (r *reader) slideParts(pres *presentationXML) ([]string, error) {
	var rels relationshipsXML
	relErr := r.unmarshal("ppt/_rels/presentation.xml.rels", &rels)

	if pres.SlideIDList != nil && relErr == nil {
		byID := make(map[string]string, len(rels.Relationship))
		for _, rel := range rels.Relationship {
			byID[rel.ID] = rel.Target
		}
		parts := make([]string, 0, len(pres.SlideIDList.SlideID))
		for _, sid := range pres.SlideIDList.SlideID {
			target, ok := byID[sid.RID]
			if !ok {
				parts = nil
				break
			}
			parts = append(parts, resolveTarget("ppt", target))
		}
		if len(parts) > 0 {
			return parts, nil
		}
	}

	var parts []string
	for name := range r.files {
		if strings.HasPrefix(name, "ppt/slides/slide") &&
			strings.HasSuffix(name, ".xml") && !strings.Contains(name, "_rels") {
			parts = append(parts, name)
		}
	}
	sort.Slice(parts, func(i, j int) bool {
		return slideNumber(parts[i]) < slideNumber(parts[j])
	})
	return parts, nil
}

func slideNumber(part string) int {
	name := strings.TrimPrefix(part, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var n int
	fmt.Sscanf(name, "%d", &n)
	return n
}

// resolveTarget joins a relationship target onto the base directory,
// normalizing "../" segments.
func resolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(base, target))
}

func (r *reader) parseSlide(part string, index int) (*Slide, error) {
	var sx slideXML
	if err := r.unmarshal(part, &sx); err != nil {
		return nil, err
	}

	slide := &Slide{Index: index}

	rels := r.slideRels(part)
	slide.LayoutName = r.layoutName(rels)
	slide.Notes = r.notesText(rels)

	for _, node := range sx.CSld.SpTree.Children {
		if shape, ok := r.buildShape(node, rels); ok {
			slide.Shapes = append(slide.Shapes, shape)
		}
	}

	return slide, nil
}

// slideRels parses a slide's relationships, returning resolved targets
// keyed by relationship ID. Missing rels parts are not an error.
func (r *reader) slideRels(part string) map[string]relationshipXML {
	dir, file := path.Split(part)
	relsPart := path.Join(dir, "_rels", file+".rels")

	var rels relationshipsXML
	if err := r.unmarshal(relsPart, &rels); err != nil {
		return nil
	}
	m := make(map[string]relationshipXML, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		rel.Target = resolveTarget("ppt/slides", rel.Target)
		m[rel.ID] = rel
	}
	return m
}

func (r *reader) layoutName(rels map[string]relationshipXML) string {
	for _, rel := range rels {
		if rel.Type != relTypeSlideLayout {
			continue
		}
		var layout slideLayoutXML
		if err := r.unmarshal(rel.Target, &layout); err != nil {
			return ""
		}
		return layout.CSld.Name
	}
	return ""
}

// notesText extracts speaker notes, skipping the slide-image and
// slide-number placeholders of the notes layout.
func (r *reader) notesText(rels map[string]relationshipXML) string {
	for _, rel := range rels {
		if rel.Type != relTypeNotesSlide {
			continue
		}
		var notes notesSlideXML
		if err := r.unmarshal(rel.Target, &notes); err != nil {
			return ""
		}
		var parts []string
		for _, node := range notes.CSld.SpTree.Children {
			sp := node.Sp
			if sp == nil || sp.TxBody == nil {
				continue
			}
			if ph := sp.NvSpPr.NvPr.Ph; ph != nil && (ph.Type == "sldImg" || ph.Type == "sldNum") {
				continue
			}
			text := textBodyText(sp.TxBody)
			if text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

func textBodyText(body *txBodyXML) string {
	var lines []string
	for _, p := range body.P {
		var sb strings.Builder
		for _, run := range p.R {
			sb.WriteString(run.T)
		}
		lines = append(lines, sb.String())
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// buildShape converts one shape-tree node into the read model. Nodes
// with no usable representation report ok=false.
func (r *reader) buildShape(node shapeNode, rels map[string]relationshipXML) (Shape, bool) {
	switch {
	case node.Sp != nil:
		return r.buildSp(node.Sp), true
	case node.Pic != nil:
		return r.buildPic(node.Pic, rels), true
	case node.GraphicFrame != nil:
		return r.buildGraphicFrame(node.GraphicFrame), true
	case node.GrpSp != nil:
		return r.buildGroup(node.GrpSp, rels), true
	case node.CxnSp != nil:
		return r.buildCxn(node.CxnSp), true
	}
	return Shape{}, false
}

func (r *reader) buildSp(sp *spXML) Shape {
	shape := Shape{
		ID:   sp.NvSpPr.CNvPr.ID,
		Name: sp.NvSpPr.CNvPr.Name,
		Kind: spKind(sp),
	}
	applyXfrm(&shape, sp.SpPr.Xfrm)
	if sp.SpPr.SolidFill != nil && sp.SpPr.SolidFill.SrgbClr != nil {
		shape.FillHex = strings.ToUpper(sp.SpPr.SolidFill.SrgbClr.Val)
	}
	if sp.TxBody != nil {
		shape.HasText = true
		shape.Paragraphs = buildParagraphs(sp.TxBody)
	}
	return shape
}

func spKind(sp *spXML) string {
	switch {
	case sp.NvSpPr.NvPr.Ph != nil:
		return KindPlaceholder
	case sp.NvSpPr.CNvSpPr.TxBox == 1:
		return KindTextBox
	case sp.SpPr.CustGeom != nil:
		return KindFreeform
	case sp.SpPr.PrstGeom != nil && isLineGeometry(sp.SpPr.PrstGeom.Prst):
		return KindLine
	default:
		return KindAutoShape
	}
}

func isLineGeometry(prst string) bool {
	return prst == "line" || strings.HasPrefix(prst, "straightConnector") ||
		strings.HasPrefix(prst, "bentConnector") || strings.HasPrefix(prst, "curvedConnector")
}

func (r *reader) buildPic(pic *picXML, rels map[string]relationshipXML) Shape {
	shape := Shape{
		ID:   pic.NvPicPr.CNvPr.ID,
		Name: pic.NvPicPr.CNvPr.Name,
		Kind: KindPicture,
	}
	if pic.NvPicPr.NvPr.VideoFile != nil || pic.NvPicPr.NvPr.AudioFile != nil {
		shape.Kind = KindMedia
	}
	applyXfrm(&shape, pic.SpPr.Xfrm)

	if embed := pic.BlipFill.Blip.Embed; embed != "" {
		if rel, ok := rels[embed]; ok && rel.Type == relTypeImage {
			if data, err := r.content(rel.Target); err == nil {
				shape.Image = data
			}
		}
	}
	return shape
}

func (r *reader) buildGraphicFrame(gf *graphicFrameXML) Shape {
	shape := Shape{
		ID:   gf.NvGraphicFramePr.CNvPr.ID,
		Name: gf.NvGraphicFramePr.CNvPr.Name,
	}
	applyXfrm(&shape, gf.Xfrm)

	switch {
	case gf.Graphic.GraphicData.Tbl != nil:
		shape.Kind = KindTable
		shape.Table = buildTable(gf.Graphic.GraphicData.Tbl)
	case strings.Contains(gf.Graphic.GraphicData.URI, "chart"):
		shape.Kind = KindChart
	default:
		shape.Kind = KindAutoShape
	}
	return shape
}

func (r *reader) buildGroup(grp *grpSpXML, rels map[string]relationshipXML) Shape {
	shape := Shape{
		ID:   grp.NvGrpSpPr.CNvPr.ID,
		Name: grp.NvGrpSpPr.CNvPr.Name,
		Kind: KindGroup,
	}
	applyXfrm(&shape, grp.GrpSpPr.Xfrm)
	for _, node := range grp.SpTree.Children {
		if child, ok := r.buildShape(node, rels); ok {
			shape.Children = append(shape.Children, child)
		}
	}
	return shape
}

func (r *reader) buildCxn(cxn *cxnSpXML) Shape {
	shape := Shape{
		ID:   cxn.NvCxnSpPr.CNvPr.ID,
		Name: cxn.NvCxnSpPr.CNvPr.Name,
		Kind: KindLine,
	}
	applyXfrm(&shape, cxn.SpPr.Xfrm)
	return shape
}

func applyXfrm(shape *Shape, xfrm *xfrmXML) {
	if xfrm == nil {
		return
	}
	shape.OffX = xfrm.Off.X
	shape.OffY = xfrm.Off.Y
	shape.CX = xfrm.Ext.Cx
	shape.CY = xfrm.Ext.Cy
	// rot is in 60000ths of a degree.
	shape.Rotation = float64(xfrm.Rot) / 60000
}

func buildParagraphs(body *txBodyXML) []Paragraph {
	paras := make([]Paragraph, 0, len(body.P))
	for _, p := range body.P {
		para := Paragraph{}
		if p.PPr != nil {
			para.Alignment = p.PPr.Algn
			para.Level = p.PPr.Lvl
		}
		for _, rx := range p.R {
			run := Run{Text: rx.T}
			if rx.RPr != nil {
				// sz is in hundredths of a point.
				if rx.RPr.Sz > 0 {
					run.SizePt = float64(rx.RPr.Sz) / 100
				}
				run.Bold = rx.RPr.B != nil && *rx.RPr.B == 1
				run.Italic = rx.RPr.I != nil && *rx.RPr.I == 1
				run.Underline = rx.RPr.U != "" && rx.RPr.U != "none"
				if rx.RPr.Latin != nil {
					run.FontName = rx.RPr.Latin.Typeface
				}
				if rx.RPr.SolidFill != nil && rx.RPr.SolidFill.SrgbClr != nil {
					run.ColorHex = strings.ToUpper(rx.RPr.SolidFill.SrgbClr.Val)
				}
			}
			para.Runs = append(para.Runs, run)
		}
		paras = append(paras, para)
	}
	return paras
}

func buildTable(tbl *tblXML) *Table {
	t := &Table{
		Rows: len(tbl.Tr),
		Cols: len(tbl.TblGrid.GridCol),
	}
	for _, tr := range tbl.Tr {
		row := make([]Cell, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			cell := Cell{
				RowSpan: tc.RowSpan,
				ColSpan: tc.GridSpan,
				Merged:  tc.VMerge != nil || tc.HMerge != nil,
			}
			if cell.RowSpan < 1 {
				cell.RowSpan = 1
			}
			if cell.ColSpan < 1 {
				cell.ColSpan = 1
			}
			if tc.TxBody != nil {
				cell.Text = textBodyText(tc.TxBody)
			}
			row = append(row, cell)
		}
		t.Cells = append(t.Cells, row)
	}
	return t
}
