package tristrip

// SegTag classifies one path point. The low bits carry the segment kind;
// SegCloseSubpath may be OR'd onto the final point of a subpath.
//
// The encoding follows the conventional path-point type values: a run of
// exactly three consecutive SegBezier points holds one cubic curve's two
// control points and endpoint, measured from the preceding current point.
type SegTag byte

const (
	// SegStart marks the first point of a subpath.
	SegStart SegTag = 0x00

	// SegLine marks a straight segment from the current point.
	SegLine SegTag = 0x01

	// SegBezier marks one of the three points of a cubic curve.
	SegBezier SegTag = 0x03

	// SegCloseSubpath flags that the subpath is implicitly closed back
	// to its Start point after this point.
	SegCloseSubpath SegTag = 0x80
)

// Kind returns the tag with the close flag stripped.
func (t SegTag) Kind() SegTag {
	return t &^ SegCloseSubpath
}

// ClosesSubpath reports whether the close flag is set.
func (t SegTag) ClosesSubpath() bool {
	return t&SegCloseSubpath != 0
}

// FillMode specifies how self-intersections and overlapping subpaths are
// resolved when filling.
type FillMode int

const (
	// FillAlternate is the even-odd rule: a point is inside after an odd
	// number of edge crossings. This is the default.
	FillAlternate FillMode = iota

	// FillWinding is the nonzero rule: a point is inside where the
	// running signed crossing count is nonzero.
	FillWinding
)

// String returns the fill mode name.
func (m FillMode) String() string {
	switch m {
	case FillAlternate:
		return "alternate"
	case FillWinding:
		return "winding"
	default:
		return "unknown"
	}
}

// Path is a mutable vector path: an ordered sequence of points with a
// parallel sequence of segment tags, plus a single fill rule for the
// whole path.
//
// A Path is built incrementally, consumed read-only by [Rasterize], and
// owns no buffers beyond its own point and tag slices. A Path is not safe
// for concurrent mutation; distinct paths may be used concurrently.
type Path struct {
	points []Point
	tags   []SegTag
	fill   FillMode

	// initial is the most recent Start point; Close synthesizes the
	// closing segment back to it.
	initial    Point
	hasInitial bool
}

// New creates a new empty path with the Alternate fill mode.
func New() *Path {
	return &Path{
		points: make([]Point, 0, 16),
		tags:   make([]SegTag, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
//
// Issuing a new MoveTo implicitly ends the previous subpath without
// closing it: no closing line is added unless Close is called explicitly.
func (p *Path) MoveTo(x, y float32) error {
	pt := Pt(x, y)
	if !pt.IsFinite() {
		return ErrNonFinitePoint
	}
	p.points = append(p.points, pt)
	p.tags = append(p.tags, SegStart)
	p.initial = pt
	p.hasInitial = true
	return nil
}

// LineTo appends a straight segment from the current point to (x, y).
func (p *Path) LineTo(x, y float32) error {
	pt := Pt(x, y)
	if !pt.IsFinite() {
		return ErrNonFinitePoint
	}
	if !p.hasInitial {
		return ErrNoCurrentPoint
	}
	p.points = append(p.points, pt)
	p.tags = append(p.tags, SegLine)
	return nil
}

// CurveTo appends a cubic Bezier curve from the current point, defined by
// control points (c1x, c1y), (c2x, c2y) and endpoint (x, y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float32) error {
	c1 := Pt(c1x, c1y)
	c2 := Pt(c2x, c2y)
	end := Pt(x, y)
	if !c1.IsFinite() || !c2.IsFinite() || !end.IsFinite() {
		return ErrNonFinitePoint
	}
	if !p.hasInitial {
		return ErrNoCurrentPoint
	}
	p.points = append(p.points, c1, c2, end)
	p.tags = append(p.tags, SegBezier, SegBezier, SegBezier)
	return nil
}

// Close closes the current subpath: it appends a line point equal to the
// subpath's initial point, flagged with SegCloseSubpath.
//
// Close before any MoveTo is a no-op. This deliberately mirrors the
// contract that an unfinished subpath is never closed implicitly;
// changing it would alter fill results.
func (p *Path) Close() {
	if !p.hasInitial {
		return
	}
	p.points = append(p.points, p.initial)
	p.tags = append(p.tags, SegLine|SegCloseSubpath)
}

// SetFillMode sets the fill rule for the whole path.
func (p *Path) SetFillMode(m FillMode) {
	p.fill = m
}

// FillMode returns the path's fill rule.
func (p *Path) FillMode() FillMode {
	return p.fill
}

// Points returns the path's points. The slice is a read-only view; the
// caller must not modify it.
func (p *Path) Points() []Point {
	return p.points
}

// Tags returns the path's segment tags, parallel to Points. The slice is
// a read-only view.
func (p *Path) Tags() []SegTag {
	return p.tags
}

// IsEmpty reports whether no commands have been issued.
func (p *Path) IsEmpty() bool {
	return len(p.points) == 0
}

// Clear removes all points and tags, keeping allocated capacity. The fill
// mode is preserved.
func (p *Path) Clear() {
	p.points = p.points[:0]
	p.tags = p.tags[:0]
	p.initial = Point{}
	p.hasInitial = false
}

// HasGaps reports whether the path contains no-fill gap figures. Gap
// figures are not representable by this path model.
func (p *Path) HasGaps() bool { return false }

// HasHollows reports whether the path contains hollow figures. Hollow
// figures are not representable by this path model.
func (p *Path) HasHollows() bool { return false }

// FigureCount returns the number of figures for introspection purposes.
func (p *Path) FigureCount() int {
	n := 0
	for _, t := range p.tags {
		if t.Kind() == SegStart {
			n++
		}
	}
	return n
}

// Bounds reports the path's cached tight bounds. Bounds caching is not
// implemented by this core; the call always returns [ErrUnsupported].
func (p *Path) Bounds() (min, max Point, err error) {
	return Point{}, Point{}, ErrUnsupported
}

// Figure returns the figure at the given index for per-figure
// introspection. Figure enumeration is not implemented by this core; the
// call always returns [ErrUnsupported].
func (p *Path) Figure(index int) (*Path, error) {
	return nil, ErrUnsupported
}
