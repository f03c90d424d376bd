package angle

import "math"

const (
	zeroTurn = 0
	oneTurn  = 360

	degreesPerRadian  = 180 / math.Pi
	radiansPerDegree  = math.Pi / 180
	degreesPerGradian = 180.0 / 200.0
)

// Angle is a planar angle stored in degrees, always in [0, 360).
type Angle struct {
	degrees float64
}

// OfDegrees creates Angle from degrees.
func OfDegrees(d float64) (Angle, error) {
	n, err := Normalize(d)
	if err != nil {
		return Angle{}, err
	}
	return Angle{degrees: n}, nil
}

// OfRadians creates Angle from radians.
func OfRadians(r float64) (Angle, error) {
	d, err := DegreesFromRadians(r)
	if err != nil {
		return Angle{}, err
	}
	return Angle{degrees: d}, nil
}

// OfGradians creates Angle from gradians.
func OfGradians(g float64) (Angle, error) {
	d, err := FromGradians(g)
	if err != nil {
		return Angle{}, err
	}
	return Angle{degrees: d}, nil
}

// OfTurns creates Angle from turns.
func OfTurns(t float64) (Angle, error) {
	d, err := FromTurns(t)
	if err != nil {
		return Angle{}, err
	}
	return Angle{degrees: d}, nil
}

// MustOfDegrees is like OfDegrees but panics on invalid input.
func MustOfDegrees(d float64) Angle {
	a, err := OfDegrees(d)
	if err != nil {
		panic(err)
	}
	return a
}

// MustOfRadians is like OfRadians but panics on invalid input.
func MustOfRadians(r float64) Angle {
	a, err := OfRadians(r)
	if err != nil {
		panic(err)
	}
	return a
}

// Degrees gets angle in degrees, range [0, 360).
// Use it wherever the angle takes part in arithmetic or comparison.
func (a Angle) Degrees() float64 {
	return a.degrees
}

// Radians gets angle in radians, range [0, 2π).
func (a Angle) Radians() float64 {
	// the stored value is already normalized and finite, so this can't fail.
	r, _ := DegreesToRadians(a.degrees)
	return r
}

// Gradians gets angle in gradians, range [0, 400).
func (a Angle) Gradians() float64 {
	return a.degrees / degreesPerGradian
}

// Turns gets angle in turns, range [0, 1).
func (a Angle) Turns() float64 {
	return a.degrees / oneTurn
}

// String implements fmt.Stringer with the default DMS format.
func (a Angle) String() string {
	return a.DMSString(nil)
}

// Normalize maps finite degrees into [0, 360).
func Normalize(d float64) (float64, error) {
	if !isFinite(d) {
		return 0, invalidArgument("degrees")
	}
	return normalizeDegrees(d), nil
}

// DegreesFromRadians converts radians into normalized degrees.
func DegreesFromRadians(r float64) (float64, error) {
	if !isFinite(r) {
		return 0, invalidArgument("radians")
	}
	return normalizeDegrees(r * degreesPerRadian), nil
}

// DegreesToRadians normalizes degrees and converts them into radians.
func DegreesToRadians(d float64) (float64, error) {
	n, err := Normalize(d)
	if err != nil {
		return 0, err
	}
	return n * radiansPerDegree, nil
}

// FromGradians converts gradians into normalized degrees.
func FromGradians(g float64) (float64, error) {
	if !isFinite(g) {
		return 0, invalidArgument("gradians")
	}
	return normalizeDegrees(g * degreesPerGradian), nil
}

// FromTurns converts turns into normalized degrees.
func FromTurns(t float64) (float64, error) {
	if !isFinite(t) {
		return 0, invalidArgument("turns")
	}
	return normalizeDegrees(t * oneTurn), nil
}

// normalizeDegrees expects finite input.
// math.Mod truncates, so negative input leaves a negative remainder.
func normalizeDegrees(d float64) float64 {
	t := math.Mod(d, oneTurn)
	if t < zeroTurn {
		t += oneTurn
		// a tiny negative remainder rounds up to a full turn.
		if t >= oneTurn {
			t = zeroTurn
		}
	}
	if t == zeroTurn {
		// drops the sign of -0.
		return zeroTurn
	}
	return t
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
