// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package flatten subdivides cubic Bezier curves into line segments
// within an error tolerance.
package flatten

import "github.com/chewxy/math32"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float32
}

// MaxDepth bounds the subdivision recursion. Pathological control points
// (including non-finite intermediates) terminate by emitting the chord
// endpoint once the bound is reached.
const MaxDepth = 24

// Cubic approximates the cubic Bezier curve (p0, p1, p2, p3) with line
// segments whose maximum deviation from the true curve is tol, and calls
// emit for each successive polyline endpoint.
//
// The final emitted point is always p3. p0 is never emitted; the caller
// already holds it as the running current point.
func Cubic(p0, p1, p2, p3 Point, tol float32, emit func(Point)) {
	cubicRec(p0, p1, p2, p3, tol, 0, emit)
}

func cubicRec(p0, p1, p2, p3 Point, tol float32, depth int, emit func(Point)) {
	// Flatness error: the larger perpendicular distance of the two
	// control points from the chord p0-p3.
	d := math32.Max(distToChord(p1, p0, p3), distToChord(p2, p0, p3))
	if d <= tol || depth >= MaxDepth {
		emit(p3)
		return
	}

	// De Casteljau split at t = 0.5.
	q0 := lerp(p0, p1)
	q1 := lerp(p1, p2)
	q2 := lerp(p2, p3)
	r0 := lerp(q0, q1)
	r1 := lerp(q1, q2)
	s := lerp(r0, r1)

	cubicRec(p0, q0, r0, s, tol, depth+1, emit)
	cubicRec(s, r1, q2, p3, tol, depth+1, emit)
}

// lerp returns the midpoint of a and b.
func lerp(a, b Point) Point {
	return Point{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}

// distToChord returns the perpendicular distance from p to the infinite
// line through a and b. A degenerate chord falls back to the distance
// from p to a.
func distToChord(p, a, b Point) float32 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	apx := p.X - a.X
	apy := p.Y - a.Y

	abLen := math32.Hypot(abx, aby)
	if abLen < 1e-10 {
		return math32.Hypot(apx, apy)
	}
	cross := abx*apy - aby*apx
	return math32.Abs(cross) / abLen
}
