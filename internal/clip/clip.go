// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package clip restricts the rasterizer's scanline sweep to a device
// clip rectangle.
//
// Clipping here is a scan-range restriction, not a general polygon clip:
// the path geometry is never reshaped. Coverage for pixels outside the
// clip is simply never sampled, which is sufficient because the sweep is
// the only producer of output samples.
package clip

import "github.com/chewxy/math32"

// Rect is a device-space clip rectangle with integer origin and size.
// Zero or negative area is legal and yields an empty scan range.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bounds is the float extent of flattened geometry in device space.
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Range is a bounded scan range: pixel rows [Y0, Y1) and pixel columns
// [X0, X1) that the sweep may sample.
type Range struct {
	X0, Y0 int
	X1, Y1 int
}

// Empty reports whether the range contains no pixels.
func (r Range) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// ScanRange intersects the geometry extent with the clip rectangle.
// An empty clip or a geometry extent fully outside the clip produces an
// empty range, short-circuiting the rest of the pipeline.
func ScanRange(b Bounds, clip Rect) Range {
	if clip.Empty() {
		return Range{}
	}

	y0 := int(math32.Floor(b.MinY))
	y1 := int(math32.Ceil(b.MaxY))
	x0 := int(math32.Floor(b.MinX))
	x1 := int(math32.Ceil(b.MaxX))

	if y0 < clip.Y {
		y0 = clip.Y
	}
	if y1 > clip.Y+clip.Height {
		y1 = clip.Y + clip.Height
	}
	if x0 < clip.X {
		x0 = clip.X
	}
	if x1 > clip.X+clip.Width {
		x1 = clip.X + clip.Width
	}

	r := Range{X0: x0, Y0: y0, X1: x1, Y1: y1}
	if r.Empty() {
		return Range{}
	}
	return r
}
