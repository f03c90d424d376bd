// Package numeric provides helpers resolving loosely typed numeric
// options into safe integers.
package numeric

import (
	"fmt"
	"math"
)

// RoundingMode selects how a fractional value becomes an integer.
type RoundingMode int

// Rounding modes
const (
	// Trunc rounds toward zero.
	Trunc RoundingMode = iota
	// Round rounds to nearest, half away from zero.
	Round
	// Floor rounds toward negative infinity.
	Floor
	// Ceil rounds toward positive infinity.
	Ceil
)

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	switch m {
	case Trunc:
		return "trunc"
	case Round:
		return "round"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// Apply rounds f according to the mode. Unknown modes truncate.
func (m RoundingMode) Apply(f float64) float64 {
	switch m {
	case Round:
		return math.Round(f)
	case Floor:
		return math.Floor(f)
	case Ceil:
		return math.Ceil(f)
	}
	return math.Trunc(f)
}

// ToSafeInteger coerces v into an integer in [min, max].
// NaN and infinities resolve to fallback, which is clamped as well.
// It panics if min > max.
func ToSafeInteger(v float64, fallback int, mode RoundingMode, min, max int) int {
	if min > max {
		panic(fmt.Sprintf("numeric: invalid range [%d, %d]", min, max))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Clamp(fallback, min, max)
	}
	r := mode.Apply(v)
	// compare as floats first so huge values never overflow int.
	if r <= float64(min) {
		return min
	}
	if r >= float64(max) {
		return max
	}
	return int(r)
}

// Clamp limits v to [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
