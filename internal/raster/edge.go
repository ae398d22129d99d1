// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// Epsilon is a small value for floating point comparison.
const Epsilon = 1e-6

// Edge represents a non-horizontal line segment for scanline conversion,
// normalized so YMin <= YMax. Edges are derived from path segments with
// curves already flattened to lines.
type Edge struct {
	// YMin is the minimum Y coordinate (top of edge).
	YMin float32

	// YMax is the maximum Y coordinate (bottom of edge).
	YMax float32

	// XAtYMin is the X coordinate at YMin.
	XAtYMin float32

	// DXDY is the inverse slope: change in X per unit Y.
	DXDY float32

	// Dir is the winding direction in the original point order:
	// +1 for downward edges, -1 for upward.
	Dir int8
}

// XAtY calculates the X coordinate at a given Y value.
// This is the core calculation for scanline intersection.
func (e *Edge) XAtY(y float32) float32 {
	return e.XAtYMin + (y-e.YMin)*e.DXDY
}

// EdgeList is a collection of edges with utility methods.
type EdgeList struct {
	edges []Edge
}

// NewEdgeList creates a new empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{
		edges: make([]Edge, 0, 64),
	}
}

// Reset clears the edge list for reuse.
func (el *EdgeList) Reset() {
	el.edges = el.edges[:0]
}

// AddLine adds a directed line segment as an edge. Horizontal segments
// contribute no scanline crossings and are skipped.
func (el *EdgeList) AddLine(x0, y0, x1, y1 float32) {
	var dir int8 = 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		dir = -1
	}

	dy := y1 - y0
	if dy < Epsilon {
		return
	}

	el.edges = append(el.edges, Edge{
		YMin:    y0,
		YMax:    y1,
		XAtYMin: x0,
		DXDY:    (x1 - x0) / dy,
		Dir:     dir,
	})
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

// Edges returns the underlying slice.
func (el *EdgeList) Edges() []Edge {
	return el.edges
}

// SortByYMin sorts edges by their minimum Y coordinate.
func (el *EdgeList) SortByYMin() {
	// Insertion sort (usually nearly sorted already)
	for i := 1; i < len(el.edges); i++ {
		j := i
		for j > 0 && el.edges[j].YMin < el.edges[j-1].YMin {
			el.edges[j], el.edges[j-1] = el.edges[j-1], el.edges[j]
			j--
		}
	}
}

// Bounds returns the bounding rectangle of all edges.
func (el *EdgeList) Bounds() (minX, minY, maxX, maxY float32) {
	if len(el.edges) == 0 {
		return 0, 0, 0, 0
	}

	minX = math32.MaxFloat32
	minY = math32.MaxFloat32
	maxX = -math32.MaxFloat32
	maxY = -math32.MaxFloat32

	for i := range el.edges {
		e := &el.edges[i]

		if e.YMin < minY {
			minY = e.YMin
		}
		if e.YMax > maxY {
			maxY = e.YMax
		}

		// Check X at both ends of the edge.
		x0 := e.XAtYMin
		x1 := e.XAtY(e.YMax)
		minX = math32.Min(minX, math32.Min(x0, x1))
		maxX = math32.Max(maxX, math32.Max(x0, x1))
	}

	return minX, minY, maxX, maxY
}
