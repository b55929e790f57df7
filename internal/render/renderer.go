// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pdiddy/carousel/internal/pptx"
)

// Options configures slide rasterization.
type Options struct {
	// Width is the output width in pixels; height follows the slide
	// aspect ratio. Default 960.
	Width int

	// FontDirs are extra font directories searched in addition to the
	// system ones.
	FontDirs []string

	// FontCache shares a scanned cache across renders. Nil creates one
	// from FontDirs.
	FontCache *FontCache
}

// Slide rasterizes one slide of the deck. index is 1-based.
func Slide(deck *pptx.Deck, index int, opts *Options) (image.Image, error) {
	if index < 1 || index > len(deck.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (1-%d)", index, len(deck.Slides))
	}
	if opts == nil {
		opts = &Options{}
	}
	width := opts.Width
	if width <= 0 {
		width = 960
	}
	if deck.WidthEMU <= 0 || deck.HeightEMU <= 0 {
		return nil, fmt.Errorf("deck has no slide size")
	}

	height := int(float64(width) * float64(deck.HeightEMU) / float64(deck.WidthEMU))
	scale := float64(width) / float64(deck.WidthEMU)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &rasterizer{img: img, scale: scale, fonts: opts.FontCache}
	if r.fonts == nil {
		r.fonts = NewFontCache(opts.FontDirs...)
	}

	for i := range deck.Slides[index-1].Shapes {
		r.shape(&deck.Slides[index-1].Shapes[i])
	}
	return img, nil
}

// EncodePNG encodes the image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNG writes the image to path as PNG, creating parent directories.
func SavePNG(img image.Image, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

type rasterizer struct {
	img   *image.RGBA
	scale float64
	fonts *FontCache
}

func (r *rasterizer) px(emu int64) int {
	return int(float64(emu) * r.scale)
}

func (r *rasterizer) shape(s *pptx.Shape) {
	switch s.Kind {
	case pptx.KindPicture, pptx.KindMedia:
		r.picture(s)
	case pptx.KindLine:
		r.line(s)
	case pptx.KindTable:
		r.table(s)
	case pptx.KindGroup:
		for i := range s.Children {
			r.shape(&s.Children[i])
		}
	default:
		r.box(s)
	}
}

// box renders filled shapes with optional text: auto shapes, text boxes,
// placeholders and freeforms.
func (r *rasterizer) box(s *pptx.Shape) {
	rect := image.Rect(r.px(s.OffX), r.px(s.OffY), r.px(s.OffX+s.CX), r.px(s.OffY+s.CY))
	if fill, ok := parseHex(s.FillHex); ok {
		draw.Draw(r.img, rect, &image.Uniform{fill}, image.Point{}, draw.Over)
	}
	if s.HasText {
		r.paragraphs(s.Paragraphs, rect)
	}
}

func (r *rasterizer) picture(s *pptx.Shape) {
	rect := image.Rect(r.px(s.OffX), r.px(s.OffY), r.px(s.OffX+s.CX), r.px(s.OffY+s.CY))
	if len(s.Image) == 0 {
		r.strokeRect(rect, color.RGBA{R: 200, G: 200, B: 200, A: 255}, 1)
		return
	}
	src, _, err := image.Decode(bytes.NewReader(s.Image))
	if err != nil {
		r.strokeRect(rect, color.RGBA{R: 200, G: 200, B: 200, A: 255}, 1)
		return
	}
	draw.Draw(r.img, rect, resample(src, rect.Dx(), rect.Dy()), image.Point{}, draw.Over)
}

func (r *rasterizer) line(s *pptx.Shape) {
	c := color.RGBA{A: 255}
	if parsed, ok := parseHex(s.FillHex); ok {
		c = parsed
	}
	r.strokeLine(r.px(s.OffX), r.px(s.OffY), r.px(s.OffX+s.CX), r.px(s.OffY+s.CY), c)
}

func (r *rasterizer) table(s *pptx.Shape) {
	if s.Table == nil || s.Table.Rows == 0 || s.Table.Cols == 0 {
		return
	}
	x, y := r.px(s.OffX), r.px(s.OffY)
	w, h := r.px(s.CX), r.px(s.CY)
	cellW := w / s.Table.Cols
	cellH := h / s.Table.Rows

	border := color.RGBA{A: 255}
	for row := 0; row < s.Table.Rows && row < len(s.Table.Cells); row++ {
		for col := 0; col < s.Table.Cols && col < len(s.Table.Cells[row]); col++ {
			cell := s.Table.Cells[row][col]
			if cell.Merged {
				continue
			}
			rect := image.Rect(x+col*cellW, y+row*cellH, x+(col+1)*cellW, y+(row+1)*cellH)
			r.strokeRect(rect, border, 1)
			if cell.Text != "" {
				r.paragraphs([]pptx.Paragraph{{Runs: []pptx.Run{{Text: cell.Text, SizePt: 10}}}},
					rect.Inset(2))
			}
		}
	}
}

// --- text ---

type styledRun struct {
	text  string
	face  font.Face
	color color.RGBA
}

type line struct {
	runs   []styledRun
	width  int
	height int
	align  string
}

func (r *rasterizer) paragraphs(paragraphs []pptx.Paragraph, bounds image.Rectangle) {
	var lines []line
	for i := range paragraphs {
		p := &paragraphs[i]
		var runs []styledRun
		for _, run := range p.Runs {
			if run.Text == "" {
				continue
			}
			c := color.RGBA{A: 255}
			if parsed, ok := parseHex(run.ColorHex); ok {
				c = parsed
			}
			runs = append(runs, styledRun{
				text:  run.Text,
				face:  r.face(run.FontName, run.SizePt, run.Bold, run.Italic),
				color: c,
			})
		}
		l := buildLine(runs, p.Alignment)
		if l.width <= bounds.Dx() || bounds.Dx() <= 0 || len(l.runs) == 0 {
			lines = append(lines, l)
			continue
		}
		lines = append(lines, wrapLine(l, bounds.Dx())...)
	}

	curY := bounds.Min.Y
	for _, l := range lines {
		curY += l.height
		if curY > bounds.Max.Y {
			break
		}
		drawX := bounds.Min.X
		switch l.align {
		case "ctr":
			drawX = bounds.Min.X + (bounds.Dx()-l.width)/2
		case "r":
			drawX = bounds.Max.X - l.width
		}
		for _, run := range l.runs {
			d := &font.Drawer{
				Dst:  r.img,
				Src:  &image.Uniform{run.color},
				Face: run.face,
				Dot:  fixed.P(drawX, curY),
			}
			d.DrawString(run.text)
			drawX += font.MeasureString(run.face, run.text).Ceil()
		}
	}
}

func buildLine(runs []styledRun, align string) line {
	width, height := 0, 0
	for _, r := range runs {
		width += font.MeasureString(r.face, r.text).Ceil()
		if h := r.face.Metrics().Height.Ceil(); h > height {
			height = h
		}
	}
	if height <= 0 {
		height = 14
	}
	return line{runs: runs, width: width, height: height, align: align}
}

func wrapLine(l line, maxWidth int) []line {
	var words []styledRun
	for _, run := range l.runs {
		for i, w := range strings.Fields(run.text) {
			if i > 0 {
				w = " " + w
			}
			words = append(words, styledRun{text: w, face: run.face, color: run.color})
		}
	}
	if len(words) == 0 {
		return []line{l}
	}

	var result []line
	var cur []styledRun
	curWidth := 0
	for _, w := range words {
		ww := font.MeasureString(w.face, w.text).Ceil()
		if curWidth+ww > maxWidth && curWidth > 0 {
			result = append(result, buildLine(cur, l.align))
			cur = nil
			curWidth = 0
			w.text = strings.TrimLeft(w.text, " ")
			ww = font.MeasureString(w.face, w.text).Ceil()
		}
		cur = append(cur, w)
		curWidth += ww
	}
	if len(cur) > 0 {
		result = append(result, buildLine(cur, l.align))
	}
	return result
}

// face sizes the font so that a point of text spans the right number of
// output pixels for the current scale.
func (r *rasterizer) face(name string, sizePt float64, bold, italic bool) font.Face {
	if sizePt <= 0 {
		sizePt = 12
	}
	pixels := sizePt * emuPerPointF * r.scale
	if name == "" {
		name = "Calibri"
	}
	if face := r.fonts.Face(name, pixels, bold, italic); face != nil {
		return face
	}
	for _, fallback := range []string{"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans"} {
		if face := r.fonts.Face(fallback, pixels, bold, italic); face != nil {
			return face
		}
	}
	return basicfont.Face7x13
}

const emuPerPointF = 12700.0

// --- primitives ---

func (r *rasterizer) strokeRect(rect image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.set(x, rect.Min.Y+i, c)
			r.set(x, rect.Max.Y-1-i, c)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			r.set(rect.Min.X+i, y, c)
			r.set(rect.Max.X-1-i, y, c)
		}
	}
}

// strokeLine draws with Bresenham's algorithm.
func (r *rasterizer) strokeLine(x1, y1, x2, y2 int, c color.RGBA) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (r *rasterizer) set(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(r.img.Bounds()) {
		r.img.SetRGBA(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// resample scales src to dstW x dstH with nearest-neighbor sampling.
func resample(src image.Image, dstW, dstH int) image.Image {
	b := src.Bounds()
	if dstW <= 0 || dstH <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			dst.Set(x, y, src.At(b.Min.X+x*b.Dx()/dstW, b.Min.Y+y*b.Dy()/dstH))
		}
	}
	return dst
}

// parseHex parses a six-digit RGB hex string without '#'.
func parseHex(s string) (color.RGBA, bool) {
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	var v uint32
	for _, ch := range s {
		var d uint32
		switch {
		case ch >= '0' && ch <= '9':
			d = uint32(ch - '0')
		case ch >= 'a' && ch <= 'f':
			d = uint32(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			d = uint32(ch-'A') + 10
		default:
			return color.RGBA{}, false
		}
		v = v<<4 | d
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
