// Package tristrip rasterizes vector paths into anti-aliased triangle
// strips.
//
// # Overview
//
// tristrip converts a path description (line segments and cubic Bezier
// curves, with an even-odd or nonzero fill rule) into a single triangle
// strip of coverage-weighted vertices, clipped to an axis-aligned
// rectangle. The output is suitable for GPU rendering: each vertex carries
// device-space x, y and a scalar coverage in [0, 1], and consecutive
// vertex triples form faces with alternating winding parity so that all
// faces share a consistent front-facing orientation.
//
// # Quick Start
//
//	import "github.com/gogpu/tristrip"
//
//	p := tristrip.New()
//	p.MoveTo(10, 10)
//	p.LineTo(30, 10)
//	p.LineTo(30, 30)
//	p.LineTo(10, 30)
//	p.Close()
//
//	vb, err := tristrip.Rasterize(p, tristrip.ClipRect{X: 0, Y: 0, Width: 64, Height: 64})
//	if err != nil {
//	    // handle error
//	}
//	vb.WriteOBJ(os.Stdout)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Path, FillMode, ClipRect, Vertex, VertexBuffer, Rasterize
//   - Internal: flatten (curve subdivision), clip (scan-range restriction),
//     raster (scanline sweep, coverage, strip assembly)
//
// The pipeline runs strictly sequentially per invocation: geometry is
// flattened, clipped, scan-converted, and assembled into a strip. Each
// call uses its own scratch state, so independent paths may be rasterized
// concurrently from separate goroutines.
package tristrip
