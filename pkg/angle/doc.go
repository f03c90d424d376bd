// Package angle provides Angle, an immutable planar angle kept in
// degrees within [0, 360).
package angle

// Every Angle is built through a constructor that rejects NaN and
// infinities, so a held Angle is always finite and normalized. Angle has
// value semantics and no mutators; it is safe to share between goroutines.
//
// Formatting options are permissive: unknown precisions fall back to
// seconds and out-of-range fraction digits are clamped. Numeric inputs are
// strict and fail with an InvalidArgumentError.
