package tristrip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripOf(n int) *VertexBuffer {
	vb := &VertexBuffer{clip: ClipRect{0, 0, 16, 16}}
	for i := 0; i < n; i++ {
		vb.verts = append(vb.verts, Vertex{
			X:        float32(i) + 0.5,
			Y:        0.5,
			Coverage: 1,
		})
	}
	return vb
}

func TestFacesAlternatingParity(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [][3]int
	}{
		{"empty", 0, nil},
		{"two vertices", 2, nil},
		{"one face", 3, [][3]int{{1, 2, 3}}},
		{"two faces", 4, [][3]int{{1, 2, 3}, {3, 2, 4}}},
		{"six vertices", 6, [][3]int{{1, 2, 3}, {3, 2, 4}, {3, 4, 5}, {5, 4, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripOf(tt.n).Faces())
		})
	}
}

func TestWriteOBJ(t *testing.T) {
	vb := &VertexBuffer{
		verts: []Vertex{
			{X: 10.5, Y: 10.5, Coverage: 1},
			{X: 11.5, Y: 10.5, Coverage: 0.5},
			{X: 12.5, Y: 10.5, Coverage: 1},
		},
	}

	var sb strings.Builder
	require.NoError(t, vb.WriteOBJ(&sb))

	want := "v 10.500000 10.500000 0.000000 1.000000 1.000000 1.000000\n" +
		"v 11.500000 10.500000 0.000000 0.500000 0.500000 0.500000\n" +
		"v 12.500000 10.500000 0.000000 1.000000 1.000000 1.000000\n" +
		"f 1 2 3\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteOBJEmpty(t *testing.T) {
	var sb strings.Builder
	vb := &VertexBuffer{}
	require.NoError(t, vb.WriteOBJ(&sb))
	assert.Empty(t, sb.String())
}

func TestCoverageImage(t *testing.T) {
	vb := &VertexBuffer{
		clip: ClipRect{0, 0, 4, 4},
		verts: []Vertex{
			{X: 1.5, Y: 1.5, Coverage: 1},
			{X: 2.5, Y: 1.5, Coverage: 0.5},
		},
	}

	img := vb.CoverageImage()
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(128), img.GrayAt(2, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
}
