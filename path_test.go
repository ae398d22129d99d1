package tristrip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathMoveLineClose(t *testing.T) {
	p := New()
	require.NoError(t, p.MoveTo(1, 2))
	require.NoError(t, p.LineTo(3, 2))
	require.NoError(t, p.LineTo(3, 4))
	p.Close()

	assert.Equal(t, []Point{{1, 2}, {3, 2}, {3, 4}, {1, 2}}, p.Points())
	assert.Equal(t, []SegTag{SegStart, SegLine, SegLine, SegLine | SegCloseSubpath}, p.Tags())
	assert.True(t, p.Tags()[3].ClosesSubpath())
	assert.Equal(t, SegLine, p.Tags()[3].Kind())
}

func TestPathCurveTo(t *testing.T) {
	p := New()
	require.NoError(t, p.MoveTo(0, 0))
	require.NoError(t, p.CurveTo(1, 0, 2, 1, 2, 2))

	assert.Equal(t, []SegTag{SegStart, SegBezier, SegBezier, SegBezier}, p.Tags())
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 1}, {2, 2}}, p.Points())
}

func TestPathCommandBeforeMoveTo(t *testing.T) {
	p := New()
	assert.ErrorIs(t, p.LineTo(1, 1), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.CurveTo(0, 0, 1, 1, 2, 2), ErrNoCurrentPoint)

	// Rejected commands must leave no partial state behind.
	assert.True(t, p.IsEmpty())
}

func TestPathCloseBeforeMoveToIsNoOp(t *testing.T) {
	p := New()
	p.Close()
	assert.True(t, p.IsEmpty())
}

func TestPathNonFiniteRejected(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	p := New()
	require.NoError(t, p.MoveTo(0, 0))

	assert.ErrorIs(t, p.MoveTo(nan, 0), ErrNonFinitePoint)
	assert.ErrorIs(t, p.LineTo(0, inf), ErrNonFinitePoint)
	assert.ErrorIs(t, p.CurveTo(0, 0, nan, 0, 1, 1), ErrNonFinitePoint)
	assert.ErrorIs(t, p.CurveTo(0, 0, 1, 1, -inf, 0), ErrNonFinitePoint)

	// Only the initial MoveTo landed.
	assert.Len(t, p.Points(), 1)
}

func TestPathNewStartDoesNotAutoClose(t *testing.T) {
	p := New()
	require.NoError(t, p.MoveTo(0, 0))
	require.NoError(t, p.LineTo(10, 0))
	require.NoError(t, p.MoveTo(20, 20))
	require.NoError(t, p.LineTo(30, 20))

	// No synthetic closing point between the subpaths.
	assert.Equal(t, []SegTag{SegStart, SegLine, SegStart, SegLine}, p.Tags())

	// Close now refers to the second subpath's start.
	p.Close()
	pts := p.Points()
	assert.Equal(t, Point{20, 20}, pts[len(pts)-1])
}

func TestPathFillMode(t *testing.T) {
	p := New()
	assert.Equal(t, FillAlternate, p.FillMode())

	p.SetFillMode(FillWinding)
	assert.Equal(t, FillWinding, p.FillMode())

	assert.Equal(t, "alternate", FillAlternate.String())
	assert.Equal(t, "winding", FillWinding.String())
}

func TestPathClear(t *testing.T) {
	p := New()
	p.SetFillMode(FillWinding)
	require.NoError(t, p.MoveTo(1, 1))
	require.NoError(t, p.LineTo(2, 2))

	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, FillWinding, p.FillMode())

	// Close after Clear is a no-op again.
	p.Close()
	assert.True(t, p.IsEmpty())
}

func TestPathFigureCount(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.FigureCount())
	require.NoError(t, p.MoveTo(0, 0))
	require.NoError(t, p.MoveTo(1, 1))
	assert.Equal(t, 2, p.FigureCount())
}

func TestPathUnsupportedCapabilities(t *testing.T) {
	p := New()
	require.NoError(t, p.Rect(0, 0, 10, 10))

	_, _, err := p.Bounds()
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = p.Figure(0)
	assert.ErrorIs(t, err, ErrUnsupported)

	assert.False(t, p.HasGaps())
	assert.False(t, p.HasHollows())
}

func TestPathRectShape(t *testing.T) {
	p := New()
	require.NoError(t, p.Rect(10, 10, 20, 20))

	tags := p.Tags()
	require.Len(t, tags, 5)
	assert.Equal(t, SegStart, tags[0])
	assert.True(t, tags[4].ClosesSubpath())
}

func TestPathCircleShape(t *testing.T) {
	p := New()
	require.NoError(t, p.Circle(50, 50, 25))

	// MoveTo + 4 cubics + close point.
	require.Len(t, p.Points(), 1+4*3+1)
	assert.Equal(t, SegBezier, p.Tags()[1].Kind())
}
