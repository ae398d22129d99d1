// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts flattened edges into coverage-weighted strip
// vertices using a supersampled scanline sweep.
package raster

import "github.com/gogpu/tristrip/internal/clip"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleEvenOdd toggles insideness at every crossing.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero treats a nonzero running winding sum as inside.
	FillRuleNonZero
)

// activeEdge holds an edge with its X intersection at the current
// sweep line.
type activeEdge struct {
	edge *Edge
	x    float32
}

// Scan sweeps the clipped scan range top to bottom and returns one
// vertex per covered pixel in scan order.
//
// Each pixel row is sampled on SubScale sub-scanlines. At every sub-
// scanline the active edge set is updated incrementally (edges must not
// be mutated during the sweep), X intersections are sorted left to right,
// and inside-spans resolved per the fill rule are accumulated into the
// row's coverage before the row is emitted.
func Scan(el *EdgeList, rule FillRule, rng clip.Range) []Vertex {
	sb := NewStripBuilder()
	if rng.Empty() || el.Len() == 0 {
		return sb.Build()
	}

	el.SortByYMin()
	edges := el.Edges()
	next := 0

	active := make([]activeEdge, 0, 32)
	cov := NewRowCoverage(rng.X0, rng.X1)

	for row := rng.Y0; row < rng.Y1; row++ {
		cov.Reset()

		for s := 0; s < SubScale; s++ {
			y := float32(row) + (float32(s)+0.5)/SubScale

			// Admit edges whose top has been reached. Edges that also
			// end above this sample straddle no sweep line and are
			// dropped without ever becoming active.
			for next < len(edges) && edges[next].YMin <= y {
				if edges[next].YMax > y {
					active = append(active, activeEdge{edge: &edges[next]})
				}
				next++
			}

			// Retire edges that end at or above this sample.
			j := 0
			for i := range active {
				if active[i].edge.YMax > y {
					active[j] = active[i]
					j++
				}
			}
			active = active[:j]

			if len(active) == 0 {
				continue
			}

			for i := range active {
				active[i].x = active[i].edge.XAtY(y)
			}
			sortActiveByX(active)

			if rule == FillRuleNonZero {
				spansNonZero(active, cov)
			} else {
				spansEvenOdd(active, cov)
			}
		}

		sb.AddRow(row, cov)
	}

	return sb.Build()
}

// sortActiveByX sorts active edges by their current X position.
func sortActiveByX(active []activeEdge) {
	// Insertion sort (usually nearly sorted)
	for i := 1; i < len(active); i++ {
		j := i
		for j > 0 && active[j].x < active[j-1].x {
			active[j], active[j-1] = active[j-1], active[j]
			j--
		}
	}
}

// spansEvenOdd pairs crossings left to right: the region between the
// 1st and 2nd crossing is inside, between the 2nd and 3rd outside, and
// so on. A trailing unpaired crossing bounds no area and is dropped.
func spansEvenOdd(active []activeEdge, cov *RowCoverage) {
	for i := 0; i+1 < len(active); i += 2 {
		cov.AddSpan(active[i].x, active[i+1].x)
	}
}

// spansNonZero keeps a running signed sum of edge directions; the region
// is inside while the sum is nonzero. A sweep that never returns to zero
// bounds no closed area past its last crossing and contributes nothing
// there.
func spansNonZero(active []activeEdge, cov *RowCoverage) {
	winding := 0
	var xl float32

	for i := range active {
		if winding == 0 {
			xl = active[i].x
		}
		winding += int(active[i].edge.Dir)
		if winding == 0 {
			cov.AddSpan(xl, active[i].x)
		}
	}
}
