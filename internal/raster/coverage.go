// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// Supersampling constants. Each pixel is sampled on a 4x4 sub-cell grid;
// a pixel's coverage is the fraction of its sub-cells inside the fill.
const (
	// SubShift controls supersampling level: 2 means 4x (1 << 2 = 4).
	SubShift = 2

	// SubScale is the number of sub-cells per pixel along each axis.
	SubScale = 1 << SubShift

	// SubCells is the total number of sub-cells per pixel. Full coverage
	// is exactly SubCells counts, so interior pixels reach 1.0 exactly.
	SubCells = SubScale * SubScale
)

// RowCoverage accumulates sub-cell hit counts for one pixel row.
// Counts saturate at SubCells so that spans touching at a shared boundary
// pixel never push cumulative coverage past 1.0.
type RowCoverage struct {
	x0, x1 int // pixel column bounds [x0, x1)
	counts []uint8
}

// NewRowCoverage creates an accumulator for pixel columns [x0, x1).
func NewRowCoverage(x0, x1 int) *RowCoverage {
	if x1 < x0 {
		x1 = x0
	}
	return &RowCoverage{
		x0:     x0,
		x1:     x1,
		counts: make([]uint8, x1-x0),
	}
}

// Reset clears the accumulator for the next pixel row.
func (c *RowCoverage) Reset() {
	for i := range c.counts {
		c.counts[i] = 0
	}
}

// AddSpan accumulates one sub-scanline's inside-span [xl, xr).
// A sub-cell is counted when its center lies inside the span, so a span
// of zero width contributes nothing and abutting spans share no sub-cell.
func (c *RowCoverage) AddSpan(xl, xr float32) {
	if xr <= xl {
		return
	}

	// Sub-cell column k has its center at (k + 0.5) / SubScale.
	s0 := int(math32.Ceil(xl*SubScale - 0.5))
	s1 := int(math32.Ceil(xr*SubScale - 0.5))

	if s0 < c.x0*SubScale {
		s0 = c.x0 * SubScale
	}
	if s1 > c.x1*SubScale {
		s1 = c.x1 * SubScale
	}

	for s := s0; s < s1; s++ {
		i := (s >> SubShift) - c.x0
		if c.counts[i] < SubCells {
			c.counts[i]++
		}
	}
}
