// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/carousel/internal/pptx"
)

func buildDeck(t *testing.T, dir, name string, widthInches, heightInches float64, slides int) string {
	t.Helper()
	doc := pptx.NewDoc(widthInches, heightInches)
	for i := 0; i < slides; i++ {
		slide := doc.AddSlide()
		rect := slide.AddRect(pptx.Inch(1.0), pptx.Inch(1.0), pptx.Inch(3.0), pptx.Inch(2.0))
		rect.FillHex = "4472C4"
	}
	path := filepath.Join(dir, name)
	require.NoError(t, doc.Save(path))
	return path
}

func TestStem(t *testing.T) {
	assert.Equal(t, "talk", Stem("/decks/talk.pptx"))
	assert.Equal(t, "talk", Stem("talk.pptx"))
	assert.Equal(t, "talk.v2", Stem("talk.v2.pptx"))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := buildDeck(t, dir, "talk.pptx", 16.0, 9.0, 3)
	template := buildDeck(t, dir, "template.pptx", 32.0, 9.0, 1)
	output := filepath.Join(dir, "out.pptx")

	var progress bytes.Buffer
	err := Run(context.Background(), input, Options{
		Output:       output,
		TemplatePath: template,
		Backend:      "native",
		DPI:          30,
		NoCache:      true,
	}, &progress)
	require.NoError(t, err)

	deck, err := pptx.Open(output)
	require.NoError(t, err)
	assert.Len(t, deck.Slides, 3)
	assert.Equal(t, pptx.Inch(32.0), deck.WidthEMU)

	out := progress.String()
	assert.Contains(t, out, "exporting slides with native backend")
	assert.Contains(t, out, "exported: 3")
	assert.Contains(t, out, "carousel:")

	// intermediates are cleaned up without --keep-temp
	_, err = os.Stat(filepath.Join(dir, "talk_definition.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunKeepTemp(t *testing.T) {
	dir := t.TempDir()
	input := buildDeck(t, dir, "talk.pptx", 16.0, 9.0, 2)
	template := buildDeck(t, dir, "template.pptx", 32.0, 9.0, 1)

	var progress bytes.Buffer
	err := Run(context.Background(), input, Options{
		TemplatePath: template,
		Backend:      "native",
		DPI:          30,
		NoCache:      true,
		KeepTemp:     true,
	}, &progress)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "talk_definition.json"))
	assert.DirExists(t, filepath.Join(dir, "talk_images"))
	assert.FileExists(t, filepath.Join(dir, "talk_carousel.pptx"))
	assert.Contains(t, progress.String(), "kept intermediates")
}

func TestRunRangeSelection(t *testing.T) {
	dir := t.TempDir()
	input := buildDeck(t, dir, "talk.pptx", 16.0, 9.0, 5)
	template := buildDeck(t, dir, "template.pptx", 32.0, 9.0, 1)
	output := filepath.Join(dir, "out.pptx")

	var progress bytes.Buffer
	err := Run(context.Background(), input, Options{
		Output:       output,
		TemplatePath: template,
		Backend:      "native",
		DPI:          30,
		NoCache:      true,
		Range:        "2-4",
	}, &progress)
	require.NoError(t, err)

	deck, err := pptx.Open(output)
	require.NoError(t, err)
	assert.Len(t, deck.Slides, 3)
}

func TestRunBadRange(t *testing.T) {
	dir := t.TempDir()
	input := buildDeck(t, dir, "talk.pptx", 16.0, 9.0, 2)
	template := buildDeck(t, dir, "template.pptx", 32.0, 9.0, 1)

	var progress bytes.Buffer
	err := Run(context.Background(), input, Options{
		TemplatePath: template,
		Backend:      "native",
		NoCache:      true,
		Range:        "1-9",
	}, &progress)
	assert.Error(t, err)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	template := buildDeck(t, dir, "template.pptx", 32.0, 9.0, 1)

	var progress bytes.Buffer
	err := Run(context.Background(), filepath.Join(dir, "nope.pptx"), Options{
		TemplatePath: template,
		Backend:      "native",
	}, &progress)
	assert.Error(t, err)
}
