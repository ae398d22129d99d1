package tristrip

import (
	"fmt"

	"github.com/gogpu/tristrip/internal/clip"
	"github.com/gogpu/tristrip/internal/flatten"
	"github.com/gogpu/tristrip/internal/raster"
)

// ClipRect is a device-space clip rectangle with integer origin and
// size. A rect with non-positive width or height is legal and rasterizes
// to an empty vertex buffer.
type ClipRect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no area.
func (c ClipRect) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Rasterize runs the full pipeline on a path: curve flattening, scan
// range clipping, anti-aliased scan conversion per the path's fill rule,
// and triangle strip assembly. The path is read but not modified.
//
// The returned VertexBuffer is owned by the caller. An empty result (for
// an empty path, a degenerate clip, or geometry fully outside the clip)
// is a legal non-error outcome with zero vertices.
//
// Rasterize uses its own scratch state per call, so independent paths
// may be rasterized concurrently.
func Rasterize(p *Path, clipRect ClipRect, opts ...Option) (*VertexBuffer, error) {
	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	vb := &VertexBuffer{clip: clipRect}

	if clipRect.Empty() {
		log.Debug("rasterize: degenerate clip", "width", clipRect.Width, "height", clipRect.Height)
		return vb, nil
	}
	if p == nil || p.IsEmpty() {
		log.Debug("rasterize: empty path")
		return vb, nil
	}

	// Flatten: curves become polylines, subpaths become directed edges.
	edges := flattenPath(p, o.tolerance)
	if edges.Len() == 0 {
		log.Debug("rasterize: no scannable edges")
		return vb, nil
	}

	// Clip: restrict the sweep to the clip rectangle.
	minX, minY, maxX, maxY := edges.Bounds()
	rng := clip.ScanRange(
		clip.Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY},
		clip.Rect{X: clipRect.X, Y: clipRect.Y, Width: clipRect.Width, Height: clipRect.Height},
	)
	if rng.Empty() {
		log.Debug("rasterize: geometry outside clip", "edges", edges.Len())
		return vb, nil
	}

	// Scan + strip: sweep the range and collect covered samples.
	verts := raster.Scan(edges, fillRule(p.FillMode()), rng)
	if len(verts) > o.maxVertices {
		return nil, fmt.Errorf("%w: %d vertices (limit %d)", ErrBufferTooLarge, len(verts), o.maxVertices)
	}

	out := make([]Vertex, len(verts))
	for i, v := range verts {
		out[i] = Vertex{X: v.X, Y: v.Y, Coverage: v.Coverage}
	}
	vb.verts = out

	log.Debug("rasterize complete",
		"fill", p.FillMode().String(),
		"edges", edges.Len(),
		"rows", rng.Y1-rng.Y0,
		"vertices", len(out))
	return vb, nil
}

// fillRule maps the public fill mode onto the scan converter's rule.
func fillRule(m FillMode) raster.FillRule {
	if m == FillWinding {
		return raster.FillRuleNonZero
	}
	return raster.FillRuleEvenOdd
}

// flattenPath walks the path's tag stream and builds the edge list.
// Subpaths are chained from their Start point; Bezier groups are
// flattened within tolerance. No implicit closing segment is added: the
// only closing edge is the explicit point appended by Close.
func flattenPath(p *Path, tol float32) *raster.EdgeList {
	el := raster.NewEdgeList()
	pts := p.Points()
	tags := p.Tags()

	var cur Point
	hasCur := false

	emit := func(q Point) {
		el.AddLine(cur.X, cur.Y, q.X, q.Y)
		cur = q
	}

	for i := 0; i < len(pts); i++ {
		switch tags[i].Kind() {
		case SegStart:
			cur = pts[i]
			hasCur = true

		case SegLine:
			if !hasCur {
				continue
			}
			emit(pts[i])

		case SegBezier:
			// Bezier tags occur in complete groups of three; a
			// truncated group cannot be produced by the builder.
			if !hasCur || i+2 >= len(pts) {
				return el
			}
			p0 := flatten.Point{X: cur.X, Y: cur.Y}
			c1 := flatten.Point{X: pts[i].X, Y: pts[i].Y}
			c2 := flatten.Point{X: pts[i+1].X, Y: pts[i+1].Y}
			end := flatten.Point{X: pts[i+2].X, Y: pts[i+2].Y}
			flatten.Cubic(p0, c1, c2, end, tol, func(q flatten.Point) {
				emit(Pt(q.X, q.Y))
			})
			i += 2
		}
	}
	return el
}
