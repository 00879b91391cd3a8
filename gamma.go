package sn3218

import "math"

// GammaTable maps a linear brightness level 0..255 to the PWM duty value
// written to the chip, compensating for perceived LED brightness.
type GammaTable [256]byte

// defaultGamma is computed once: entry i is floor(255^((i-1)/255)).
// Entry 0 has a negative exponent and truncates below 1 to 0, which is the
// wanted behavior: level 0 is fully off.
var defaultGamma = makeDefaultGamma()

func makeDefaultGamma() GammaTable {
	var t GammaTable
	for i := range t {
		t[i] = byte(math.Pow(255, float64(i-1)/255))
	}
	return t
}

// DefaultGamma returns the shared default correction curve.
func DefaultGamma() GammaTable {
	return defaultGamma
}

// NewGammaTable validates entries and returns it as a GammaTable. It fails
// with ErrInvalidGammaTable unless there are exactly 256 entries, and with
// ErrInvalidValue if any entry is outside 0..255.
func NewGammaTable(entries []int) (GammaTable, error) {
	var t GammaTable
	if len(entries) != len(t) {
		return t, errorf(ErrInvalidGammaTable, "got %d", len(entries))
	}
	for i, v := range entries {
		if v < 0 || v > 255 {
			return t, errorf(ErrInvalidValue, "gamma entry %d is %d", i, v)
		}
		t[i] = byte(v)
	}
	return t, nil
}
