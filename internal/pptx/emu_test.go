// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInchPointConversions(t *testing.T) {
	assert.Equal(t, int64(914400), Inch(1.0))
	assert.Equal(t, int64(457200), Inch(0.5))
	assert.Equal(t, int64(12700), Point(1.0))
	assert.Equal(t, int64(25400), Point(2.0))

	assert.InDelta(t, 1.0, EMUToInch(914400), 1e-9)
	assert.InDelta(t, 13.333, EMUToInch(12192000), 1e-3)
	assert.InDelta(t, 18.0, EMUToPoint(228600), 1e-9)
}

func TestRoundInches(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "exact", in: 1.5, want: 1.5},
		{name: "rounds up", in: 0.12346, want: 0.1235},
		{name: "rounds down", in: 0.12344, want: 0.1234},
		{name: "negative clamps to zero", in: -0.25, want: 0},
		{name: "zero", in: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundInches(tt.in), 1e-9)
		})
	}
}
