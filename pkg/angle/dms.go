package angle

import (
	"math"
	"strconv"
	"strings"

	"github.com/robotalks/angle.go/pkg/numeric"
)

// Precision selects the smallest unit shown by FormatDMS.
type Precision string

// Precisions
const (
	// PrecisionAuto stops at the first unit without a fractional part.
	PrecisionAuto   Precision = "auto"
	PrecisionDegree Precision = "degree"
	PrecisionMinute Precision = "minute"
	PrecisionSecond Precision = "second"
)

// DMS symbols
const (
	DegreeSymbol = "°"
	MinuteSymbol = "′"
	SecondSymbol = "″"
)

// Fraction digit bounds for seconds.
const (
	MinSecondFractionDigits = 0
	MaxSecondFractionDigits = 6
)

// DMSOptions controls FormatDMS. The zero value formats down to whole
// seconds.
type DMSOptions struct {
	Precision Precision
	// SecondFractionDigits is truncated and clamped into [0, 6];
	// NaN and infinities mean 0.
	SecondFractionDigits float64
}

// Valid determines if p is a recognized precision.
func (p Precision) Valid() bool {
	switch p {
	case PrecisionAuto, PrecisionDegree, PrecisionMinute, PrecisionSecond:
		return true
	}
	return false
}

// Resolve returns p, or PrecisionSecond if p is not recognized.
func (p Precision) Resolve() Precision {
	if p.Valid() {
		return p
	}
	return PrecisionSecond
}

func (o *DMSOptions) precision() Precision {
	if o == nil {
		return PrecisionSecond
	}
	return o.Precision.Resolve()
}

func (o *DMSOptions) secondFractionDigits() int {
	var v float64
	if o != nil {
		v = o.SecondFractionDigits
	}
	return numeric.ToSafeInteger(v, MinSecondFractionDigits, numeric.Trunc,
		MinSecondFractionDigits, MaxSecondFractionDigits)
}

// DMSString formats the angle as degrees, minutes and seconds.
func (a Angle) DMSString(opts *DMSOptions) string {
	return formatDMS(a.degrees, opts)
}

// FormatDMS normalizes degrees and formats them as degrees, minutes and
// seconds, e.g. 1°13′48″. opts may be nil.
func FormatDMS(degrees float64, opts *DMSOptions) (string, error) {
	n, err := Normalize(degrees)
	if err != nil {
		return "", err
	}
	return formatDMS(n, opts), nil
}

// formatDMS expects normalized degrees.
func formatDMS(degrees float64, opts *DMSOptions) string {
	precision := opts.precision()
	var b strings.Builder

	dInt := math.Trunc(degrees)
	if precision == PrecisionDegree || (precision == PrecisionAuto && dInt == degrees) {
		b.WriteString(strconv.FormatFloat(math.Round(degrees), 'f', 0, 64))
		b.WriteString(DegreeSymbol)
		return b.String()
	}
	b.WriteString(strconv.FormatFloat(dInt, 'f', 0, 64))
	b.WriteString(DegreeSymbol)

	msNum := (degrees - dInt) * 60
	mInt := math.Trunc(msNum)
	if precision == PrecisionMinute || (precision == PrecisionAuto && mInt == msNum) {
		b.WriteString(pad2(math.Round(msNum)))
		b.WriteString(MinuteSymbol)
		return b.String()
	}
	b.WriteString(pad2(mInt))
	b.WriteString(MinuteSymbol)

	sNum := (msNum - mInt) * 60
	sInt := math.Trunc(sNum)
	// padding follows the truncated second, so a value rounding up to 10
	// prints as "010".
	if sInt < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatFloat(sNum, 'f', opts.secondFractionDigits(), 64))
	b.WriteString(SecondSymbol)
	return b.String()
}

// pad2 formats a whole number with at least 2 digits.
func pad2(f float64) string {
	s := strconv.FormatFloat(f, 'f', 0, 64)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
