// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/carousel/pkg/types"
)

func templateDefinition() *types.Definition {
	pic := func(left, width float64) types.Shape {
		return types.Shape{
			Type: types.ShapePicture, IsPicture: true,
			LeftInches: left, TopInches: 1.0, WidthInches: width, HeightInches: 7.0,
		}
	}
	rect := func(left, width float64) types.Shape {
		return types.Shape{
			Type:       types.ShapeAutoShape,
			LeftInches: left, TopInches: 0, WidthInches: width, HeightInches: 9.0,
		}
	}
	return &types.Definition{
		Metadata: types.Metadata{SlideWidthInches: 32.0, SlideHeightInches: 9.0},
		Slides: []types.Slide{
			// patterns intentionally listed out of x order to check sorting
			{Index: 1, Shapes: []types.Shape{pic(22.0, 8.0), pic(9.0, 14.0), rect(24.0, 8.0), rect(0, 8.0)}},
			{Index: 2, Shapes: []types.Shape{pic(2.0, 6.0), pic(9.0, 14.0), pic(24.0, 6.0), pic(30.5, 1.5)}},
			{Index: 3, Shapes: []types.Shape{pic(0.0, 1.5), pic(2.0, 6.0), pic(9.0, 14.0), pic(24.0, 6.0), pic(30.5, 1.5)}},
			{Index: 4, Shapes: []types.Shape{pic(0.0, 1.5), pic(2.0, 6.0), pic(9.0, 14.0), pic(24.0, 6.0)}},
			{Index: 5, Shapes: []types.Shape{pic(0.0, 1.5), pic(2.0, 6.0), pic(9.0, 14.0)}},
		},
	}
}

func TestLayoutFromDefinition(t *testing.T) {
	layout := LayoutFromDefinition(templateDefinition())

	assert.InDelta(t, 32.0, layout.WidthInches, 1e-9)
	assert.InDelta(t, 9.0, layout.HeightInches, 1e-9)
	require.Len(t, layout.Patterns, 5)

	// first pattern sorted by left position
	require.Len(t, layout.Patterns[0], 2)
	assert.InDelta(t, 9.0, layout.Patterns[0][0].Left, 1e-9)
	assert.InDelta(t, 22.0, layout.Patterns[0][1].Left, 1e-9)

	// overlays from the first slide, x-sorted
	require.Len(t, layout.Overlays, 2)
	assert.InDelta(t, 0.0, layout.Overlays[0].Left, 1e-9)
	assert.InDelta(t, 24.0, layout.Overlays[1].Left, 1e-9)
}

func TestLayoutFromDefinitionFallsBack(t *testing.T) {
	def := &types.Definition{
		Metadata: types.Metadata{SlideWidthInches: 32.0, SlideHeightInches: 9.0},
		Slides:   []types.Slide{{Index: 1, Shapes: []types.Shape{{Type: types.ShapeTextBox}}}},
	}
	layout := LayoutFromDefinition(def)

	require.NotNil(t, layout)
	assert.Len(t, layout.Patterns, 5)
	assert.Len(t, layout.Overlays, 2)
	assert.InDelta(t, 32.0, layout.WidthInches, 1e-9)
}

func TestPatternForWindows(t *testing.T) {
	tests := []struct {
		name        string
		center      int
		total       int
		wantPattern int
		wantVisible []int
	}{
		{name: "single image", center: 0, total: 1, wantPattern: 0, wantVisible: []int{0}},
		{name: "first of two", center: 0, total: 2, wantPattern: 0, wantVisible: []int{0, 1}},
		{name: "last of two", center: 1, total: 2, wantPattern: 1, wantVisible: []int{0, 1}},
		{name: "first of three", center: 0, total: 3, wantPattern: 0, wantVisible: []int{0, 1, 2}},
		{name: "middle of three", center: 1, total: 3, wantPattern: 1, wantVisible: []int{0, 1, 2}},
		{name: "last of three", center: 2, total: 3, wantPattern: 2, wantVisible: []int{0, 1, 2}},
		{name: "first of four", center: 0, total: 4, wantPattern: 0, wantVisible: []int{0, 1, 2}},
		{name: "second of four", center: 1, total: 4, wantPattern: 1, wantVisible: []int{0, 1, 2, 3}},
		{name: "second to last of four", center: 2, total: 4, wantPattern: 3, wantVisible: []int{0, 1, 2, 3}},
		{name: "last of four", center: 3, total: 4, wantPattern: 2, wantVisible: []int{1, 2, 3}},
		{name: "middle of five", center: 2, total: 5, wantPattern: 2, wantVisible: []int{0, 1, 2, 3, 4}},
		{name: "middle of six", center: 3, total: 6, wantPattern: 2, wantVisible: []int{1, 2, 3, 4, 5}},
		{name: "middle of ten", center: 5, total: 10, wantPattern: 2, wantVisible: []int{3, 4, 5, 6, 7}},
		{name: "second to last of ten", center: 8, total: 10, wantPattern: 3, wantVisible: []int{6, 7, 8, 9}},
		{name: "last of ten", center: 9, total: 10, wantPattern: 2, wantVisible: []int{7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, visible := patternFor(tt.center, tt.total, 5)
			assert.Equal(t, tt.wantPattern, pattern)
			assert.Equal(t, tt.wantVisible, visible)
		})
	}
}

func TestPatternForFewTemplates(t *testing.T) {
	// a single-pattern template always picks pattern 0
	pattern, _ := patternFor(1, 4, 1)
	assert.Equal(t, 0, pattern)

	pattern, _ = patternFor(3, 6, 3)
	assert.Equal(t, 2, pattern)
}

func TestBuildCarouselPages(t *testing.T) {
	layout := DefaultLayout(32.0, 9.0)
	doc, err := BuildCarousel(fakeImages(t, 6), layout)
	require.NoError(t, err)
	assert.Equal(t, 6, doc.SlideCount())
	assert.InDelta(t, 32.0, float64(doc.WidthEMU())/914400.0, 1e-6)
}

func TestBuildCarouselErrors(t *testing.T) {
	_, err := BuildCarousel(nil, DefaultLayout(32.0, 9.0))
	assert.Error(t, err)

	_, err = BuildCarousel(fakeImages(t, 2), &Layout{WidthInches: 32, HeightInches: 9})
	assert.Error(t, err)
}
