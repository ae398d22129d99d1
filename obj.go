package tristrip

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the strip as Wavefront OBJ text, the reference dump
// format consumed by downstream tooling.
//
// Each vertex becomes a line "v x y 0 c c c": position with the coverage
// replicated as a greyscale color. Each face becomes a line "f i j k"
// with 1-based indices in alternating winding parity order, as returned
// by [VertexBuffer.Faces].
func (vb *VertexBuffer) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range vb.verts {
		c := v.Coverage
		if _, err := fmt.Fprintf(bw, "v %f %f %f %f %f %f\n", v.X, v.Y, 0.0, c, c, c); err != nil {
			return fmt.Errorf("tristrip: writing obj vertex: %w", err)
		}
	}
	for _, f := range vb.Faces() {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2]); err != nil {
			return fmt.Errorf("tristrip: writing obj face: %w", err)
		}
	}
	return bw.Flush()
}
