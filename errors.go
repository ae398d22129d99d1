package tristrip

import "errors"

var (
	// ErrNoCurrentPoint indicates a line or curve command was issued
	// before any MoveTo established a current point.
	ErrNoCurrentPoint = errors.New("tristrip: no current point (MoveTo required)")

	// ErrNonFinitePoint indicates a NaN or infinite coordinate was
	// supplied to a path command.
	ErrNonFinitePoint = errors.New("tristrip: non-finite coordinate")

	// ErrUnsupported indicates an operation the core deliberately does
	// not implement, such as bounds caching or figure introspection.
	// Callers must treat this as a recoverable result.
	ErrUnsupported = errors.New("tristrip: unsupported operation")

	// ErrBufferTooLarge indicates the output vertex buffer would exceed
	// the configured vertex limit. No partial buffer is returned.
	ErrBufferTooLarge = errors.New("tristrip: vertex buffer exceeds limit")
)
