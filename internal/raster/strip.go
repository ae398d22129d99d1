// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Vertex is one coverage sample of the output strip (internal copy to
// avoid import cycle). X and Y are at the pixel sample center.
type Vertex struct {
	X, Y     float32
	Coverage float32
}

// StripBuilder consumes the per-row coverage stream and emits every
// covered sample as one vertex, preserving scanline order: left to right
// within a row, rows top to bottom. The scan order is what makes the
// alternating-parity triangle-strip face convention valid downstream.
//
// No deduplication and no vertex welding across rows.
type StripBuilder struct {
	verts []Vertex
}

// NewStripBuilder creates an empty strip builder.
func NewStripBuilder() *StripBuilder {
	return &StripBuilder{}
}

// AddRow appends one vertex per covered pixel of the given row.
// Pixels with zero coverage are absent from the output.
func (b *StripBuilder) AddRow(row int, cov *RowCoverage) {
	for i, cnt := range cov.counts {
		if cnt == 0 {
			continue
		}
		b.verts = append(b.verts, Vertex{
			X:        float32(cov.x0+i) + 0.5,
			Y:        float32(row) + 0.5,
			Coverage: float32(cnt) / SubCells,
		})
	}
}

// Len returns the number of vertices collected so far.
func (b *StripBuilder) Len() int {
	return len(b.verts)
}

// Build returns the collected vertex sequence. An empty input stream
// yields a zero-length result, which is a legal non-error outcome.
func (b *StripBuilder) Build() []Vertex {
	return b.verts
}
