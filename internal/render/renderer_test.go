// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/carousel/internal/pptx"
)

func testDeck() *pptx.Deck {
	return &pptx.Deck{
		WidthEMU:  pptx.Inch(16.0),
		HeightEMU: pptx.Inch(9.0),
		Slides: []*pptx.Slide{
			{
				Index: 1,
				Shapes: []pptx.Shape{
					{
						Kind:    pptx.KindAutoShape,
						OffX:    pptx.Inch(1.0),
						OffY:    pptx.Inch(1.0),
						CX:      pptx.Inch(4.0),
						CY:      pptx.Inch(2.0),
						FillHex: "FF0000",
					},
					{
						Kind:    pptx.KindTextBox,
						OffX:    pptx.Inch(1.0),
						OffY:    pptx.Inch(4.0),
						CX:      pptx.Inch(8.0),
						CY:      pptx.Inch(2.0),
						HasText: true,
						Paragraphs: []pptx.Paragraph{
							{Runs: []pptx.Run{{Text: "hello carousel", SizePt: 24}}},
						},
					},
				},
			},
		},
	}
}

func TestSlideDimensions(t *testing.T) {
	img, err := Slide(testDeck(), 1, &Options{Width: 320})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 180, bounds.Dy())
}

func TestSlideFillsShapes(t *testing.T) {
	img, err := Slide(testDeck(), 1, &Options{Width: 320})
	require.NoError(t, err)

	// inside the red rectangle: 1"-5" x, 1"-3" y on a 16x9 slide
	r, g, b, _ := img.At(60, 40).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	// outside any shape stays white
	r, g, b, _ = img.At(310, 10).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0xFFFF), g)
	assert.Equal(t, uint32(0xFFFF), b)
}

func TestSlideIndexOutOfRange(t *testing.T) {
	_, err := Slide(testDeck(), 0, nil)
	assert.Error(t, err)
	_, err = Slide(testDeck(), 2, nil)
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	img, err := Slide(testDeck(), 1, &Options{Width: 160})
	require.NoError(t, err)

	data, err := EncodePNG(img)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 160, decoded.Bounds().Dx())
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		r, g uint8
	}{
		{in: "FF0000", ok: true, r: 255},
		{in: "00ff00", ok: true, g: 255},
		{in: "", ok: false},
		{in: "FFF", ok: false},
		{in: "GG0000", ok: false},
	}
	for _, tt := range tests {
		c, ok := parseHex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.r, c.R, tt.in)
			assert.Equal(t, tt.g, c.G, tt.in)
		}
	}
}
