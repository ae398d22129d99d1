package tristrip

import (
	"image"

	"github.com/chewxy/math32"
)

// Vertex is one output sample of the triangle strip: a device-space
// position already offset to the pixel sample center, plus the fraction
// of the pixel's footprint covered by the filled region at that sample.
type Vertex struct {
	X, Y     float32
	Coverage float32 // in [0, 1]
}

// VertexBuffer is an ordered vertex sequence forming one triangle strip.
//
// Adjacent triples (i, i+1, i+2) are faces. Face winding alternates by
// index parity: a triple starting at odd 1-based index n keeps order
// (n, n+1, n+2); a triple starting at even n is emitted as (n+1, n, n+2).
// The alternation keeps all faces front-facing even though vertices are
// emitted in scan order rather than geometric triangulation order.
//
// The buffer is allocated by [Rasterize] and owned by the caller.
type VertexBuffer struct {
	verts []Vertex
	clip  ClipRect
}

// Len returns the number of vertices in the strip.
func (vb *VertexBuffer) Len() int {
	return len(vb.verts)
}

// Vertices returns the vertex sequence. The slice is owned by the buffer;
// callers that need to retain it past the buffer's lifetime should copy.
func (vb *VertexBuffer) Vertices() []Vertex {
	return vb.verts
}

// Clip returns the clip rectangle the strip was rasterized against.
func (vb *VertexBuffer) Clip() ClipRect {
	return vb.clip
}

// Faces returns the strip's face list with 1-based vertex indices,
// applying the alternating winding parity rule. A buffer with fewer than
// three vertices has no faces.
func (vb *VertexBuffer) Faces() [][3]int {
	n := len(vb.verts)
	if n < 3 {
		return nil
	}
	faces := make([][3]int, 0, n-2)
	for i := 1; i <= n-2; i++ {
		if i%2 == 1 {
			faces = append(faces, [3]int{i, i + 1, i + 2})
		} else {
			faces = append(faces, [3]int{i + 1, i, i + 2})
		}
	}
	return faces
}

// CoverageImage renders the strip's coverage samples into a grayscale
// image over the clip rectangle, for previews and visual tests.
func (vb *VertexBuffer) CoverageImage() *image.Gray {
	r := image.Rect(vb.clip.X, vb.clip.Y, vb.clip.X+vb.clip.Width, vb.clip.Y+vb.clip.Height)
	img := image.NewGray(r)
	for _, v := range vb.verts {
		// Vertices sit at pixel centers; recover the pixel coordinate.
		x := int(math32.Floor(v.X))
		y := int(math32.Floor(v.Y))
		if !image.Pt(x, y).In(r) {
			continue
		}
		img.Pix[img.PixOffset(x, y)] = uint8(v.Coverage*255 + 0.5)
	}
	return img
}
