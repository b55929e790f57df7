// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package carousel assembles exported slide images into review-grid and
// ultra-wide carousel decks.
package carousel

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// CollectImages lists files in dir matching the glob pattern, sorted in
// natural numeric order so slide_10 follows slide_9.
func CollectImages(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "slide_*.png"
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %s in %s: %w", pattern, dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no images in %s matching %q", dir, pattern)
	}
	sort.Slice(matches, func(i, j int) bool {
		return naturalLess(filepath.Base(matches[i]), filepath.Base(matches[j]))
	})
	return matches, nil
}

// naturalLess compares strings segment by segment, treating digit runs
// as numbers.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aNum, aRest, aIsNum := splitLead(a)
		bNum, bRest, bIsNum := splitLead(b)
		if aIsNum && bIsNum {
			an, _ := strconv.Atoi(aNum)
			bn, _ := strconv.Atoi(bNum)
			if an != bn {
				return an < bn
			}
		} else if aNum != bNum {
			return aNum < bNum
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// splitLead splits off the leading run of digits or non-digits.
func splitLead(s string) (lead, rest string, isNum bool) {
	isNum = s[0] >= '0' && s[0] <= '9'
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r >= '0' && r <= '9') != isNum
	})
	if i < 0 {
		return s, "", isNum
	}
	return s[:i], s[i:], isNum
}
