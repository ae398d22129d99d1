package tristrip

// Option configures a single Rasterize invocation.
//
// Example:
//
//	// Default flattening tolerance
//	vb, err := tristrip.Rasterize(p, clip)
//
//	// Finer curve flattening
//	vb, err := tristrip.Rasterize(p, clip, tristrip.WithTolerance(0.05))
type Option func(*rasterOptions)

// rasterOptions holds optional configuration for Rasterize.
type rasterOptions struct {
	tolerance   float32
	maxVertices int
}

// DefaultTolerance is the default curve flattening tolerance in device
// pixels: the maximum deviation of the flattened polyline from the true
// curve. A fraction of a pixel keeps faceting invisible without wasting
// vertices.
const DefaultTolerance = 0.25

// DefaultMaxVertices is the default output vertex limit for a single
// Rasterize call.
const DefaultMaxVertices = 1 << 24

// defaultRasterOptions returns the default rasterization options.
func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		tolerance:   DefaultTolerance,
		maxVertices: DefaultMaxVertices,
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
// Values <= 0 are replaced with [DefaultTolerance].
func WithTolerance(tol float32) Option {
	return func(o *rasterOptions) {
		if tol <= 0 {
			tol = DefaultTolerance
		}
		o.tolerance = tol
	}
}

// WithMaxVertices caps the number of output vertices. Rasterize returns
// [ErrBufferTooLarge] instead of a partial buffer when the cap would be
// exceeded. Values <= 0 are replaced with [DefaultMaxVertices].
func WithMaxVertices(n int) Option {
	return func(o *rasterOptions) {
		if n <= 0 {
			n = DefaultMaxVertices
		}
		o.maxVertices = n
	}
}
