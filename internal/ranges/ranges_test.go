// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		expr string
		n    int
		want []int
	}{
		{
			name: "single literal",
			expr: "7",
			n:    10,
			want: []int{7},
		},
		{
			name: "dash interval",
			expr: "3-6",
			n:    10,
			want: []int{3, 4, 5, 6},
		},
		{
			name: "dotdot interval",
			expr: "3..6",
			n:    10,
			want: []int{3, 4, 5, 6},
		},
		{
			name: "open left",
			expr: "..3",
			n:    10,
			want: []int{1, 2, 3},
		},
		{
			name: "open right",
			expr: "8..",
			n:    10,
			want: []int{8, 9, 10},
		},
		{
			name: "mixed terms deduplicated and sorted",
			expr: "..5,7-9",
			n:    12,
			want: []int{1, 2, 3, 4, 5, 7, 8, 9},
		},
		{
			name: "overlapping terms",
			expr: "4,2-5,3",
			n:    6,
			want: []int{2, 3, 4, 5},
		},
		{
			name: "whitespace tolerated",
			expr: " 1 , 3 - 4 ",
			n:    5,
			want: []int{1, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		n    int
	}{
		{name: "empty expression", expr: "", n: 5},
		{name: "empty term", expr: "1,,3", n: 5},
		{name: "non-numeric", expr: "abc", n: 5},
		{name: "reversed interval", expr: "5-2", n: 5},
		{name: "dash missing left", expr: "-5", n: 5},
		{name: "dash missing right", expr: "2-", n: 5},
		{name: "index zero", expr: "0", n: 5},
		{name: "index beyond count", expr: "6", n: 5},
		{name: "interval beyond count", expr: "3..9", n: 5},
		{name: "zero slide count", expr: "1", n: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr, tt.n)
			assert.Error(t, err)
		})
	}
}
