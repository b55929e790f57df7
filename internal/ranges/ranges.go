// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ranges parses slide-range expressions such as "..5,7-9,12"
// into sets of 1-based slide indices.
package ranges

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse expands a comma-separated range expression over a deck of n
// slides into an ascending, de-duplicated list of 1-based indices.
//
// Each term is either a literal ("7"), a closed interval ("3-12" or
// "3..12"), an open-left interval ("..5", equivalent to "1..5"), or an
// open-right interval ("10..", equivalent to "10..n"). Indices must lie
// in [1, n] and intervals must not be reversed.
func Parse(expr string, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("slide count must be positive, got %d", n)
	}

	seen := make(map[int]bool)
	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("empty term in range expression %q", expr)
		}
		lo, hi, err := parseTerm(term, n)
		if err != nil {
			return nil, err
		}
		for i := lo; i <= hi; i++ {
			seen[i] = true
		}
	}

	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices, nil
}

// parseTerm resolves a single term to its inclusive bounds.
func parseTerm(term string, n int) (lo, hi int, err error) {
	var left, right string
	switch {
	case strings.Contains(term, ".."):
		parts := strings.SplitN(term, "..", 2)
		left, right = parts[0], parts[1]
	case strings.Contains(term, "-"):
		parts := strings.SplitN(term, "-", 2)
		left, right = parts[0], parts[1]
		// only the ".." form may leave an end open
		if left == "" || right == "" {
			return 0, 0, fmt.Errorf("incomplete interval %q", term)
		}
	default:
		idx, err := parseIndex(term, n)
		if err != nil {
			return 0, 0, err
		}
		return idx, idx, nil
	}

	lo = 1
	if left != "" {
		if lo, err = parseIndex(left, n); err != nil {
			return 0, 0, err
		}
	}
	hi = n
	if right != "" {
		if hi, err = parseIndex(right, n); err != nil {
			return 0, 0, err
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("reversed interval %q", term)
	}
	return lo, hi, nil
}

func parseIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid slide index %q", s)
	}
	if idx < 1 || idx > n {
		return 0, fmt.Errorf("slide index %d out of range (1-%d)", idx, n)
	}
	return idx, nil
}
