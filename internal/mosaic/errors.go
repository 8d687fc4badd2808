package mosaic

import (
	"errors"
	"fmt"
)

// Configuration faults. A pass that hits one of these produces no output.
var (
	// ErrInvalidGap indicates a gap factor that is zero, negative or not finite.
	ErrInvalidGap = errors.New("mosaic: gap factors must be positive and finite")

	// ErrInvalidRadius indicates a triangle radius that is zero, negative or not finite.
	ErrInvalidRadius = errors.New("mosaic: radius must be positive and finite")

	// ErrInvalidViewport indicates a negative or non-finite viewport dimension.
	ErrInvalidViewport = errors.New("mosaic: viewport dimensions must be non-negative and finite")

	// ErrRingLimit indicates a pass that would need more rings than allowed.
	ErrRingLimit = errors.New("mosaic: ring limit exceeded")
)

// ConfigError wraps a configuration fault with the offending field.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%s=%g)", e.Wrapped, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
