// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx reads and writes PPTX (Office Open XML presentation)
// packages: a typed read model over the zip container, and a builder
// plus writer for assembling new decks.
package pptx

import "math"

// EMU (English Metric Units) conversions.
// 1 inch = 914400 EMU, 1 point = 12700 EMU.
const (
	emuPerInch  = 914400
	emuPerPoint = 12700

	// maxEMU is the maximum safe EMU value to prevent overflow.
	maxEMU = math.MaxInt64 / 2
)

// Inch converts inches to EMU, clamped to the safe range.
func Inch(n float64) int64 {
	return clampEMU(n * emuPerInch)
}

// Point converts points to EMU.
func Point(n float64) int64 {
	return clampEMU(n * emuPerPoint)
}

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// EMUToPoint converts EMU to points.
func EMUToPoint(emu int64) float64 {
	return float64(emu) / emuPerPoint
}

// RoundInches rounds an inch value to four decimal places, the precision
// used throughout definition documents. Negative geometry is clamped to
// zero.
func RoundInches(v float64) float64 {
	if v < 0 {
		v = 0
	}
	return math.Round(v*10000) / 10000
}

func clampEMU(v float64) int64 {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return int64(v)
}
