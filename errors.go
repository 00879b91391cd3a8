package sn3218

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpecifier is returned when a channel specifier is neither a
	// registered name nor an integer in 1..18.
	ErrInvalidSpecifier = errors.New("sn3218: invalid channel specifier")

	// ErrInvalidConfig is returned by New when the supplied channel aliases
	// are malformed.
	ErrInvalidConfig = errors.New("sn3218: invalid channel name config")

	// ErrInvalidGammaTable is returned when a gamma table does not have
	// exactly 256 entries.
	ErrInvalidGammaTable = errors.New("sn3218: gamma table must have 256 entries")

	// ErrInvalidValue is returned when a brightness level or gamma entry is
	// outside 0..255.
	ErrInvalidValue = errors.New("sn3218: value out of range")

	// ErrClosed is returned when an operation is invoked after Halt.
	ErrClosed = errors.New("sn3218: device is closed")
)

// errorf wraps a sentinel with call-site context.
func errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
}

// TransportError wraps a failed bus write. Reg is the register the write was
// addressed to. Unwrap returns the underlying bus error.
type TransportError struct {
	Reg byte
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sn3218: writing register %#02x: %v", e.Reg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
