package conv

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/robotalks/angle.go/pkg/angle"
	"github.com/robotalks/angle.go/pkg/angle/msgs"
	"github.com/robotalks/angle.go/pkg/cli/sh"
)

// Unit is the unit of a command argument.
type Unit string

// Units
const (
	Degrees  Unit = "deg"
	Radians  Unit = "rad"
	Gradians Unit = "grad"
	Turns    Unit = "turn"
)

// Angle creates an angle from a value in the unit.
func (u Unit) Angle(v float64) (angle.Angle, error) {
	switch u {
	case Radians:
		return angle.OfRadians(v)
	case Gradians:
		return angle.OfGradians(v)
	case Turns:
		return angle.OfTurns(v)
	}
	return angle.OfDegrees(v)
}

// Result is the output of a conversion.
type Result struct {
	Input    string  `json:"input"`
	Degrees  float64 `json:"degrees"`
	Radians  float64 `json:"radians"`
	Gradians float64 `json:"gradians"`
	Turns    float64 `json:"turns"`
	DMS      string  `json:"dms"`
}

// ResultOf creates the Result of an angle.
func ResultOf(input string, a angle.Angle, opts *angle.DMSOptions) Result {
	return Result{
		Input:    input,
		Degrees:  a.Degrees(),
		Radians:  a.Radians(),
		Gradians: a.Gradians(),
		Turns:    a.Turns(),
		DMS:      a.DMSString(opts),
	}
}

// String formats the result for display.
func (r Result) String() string {
	return fmt.Sprintf("%s: %s = %v° = %v rad = %v grad = %v turn",
		r.Input, r.DMS, r.Degrees, r.Radians, r.Gradians, r.Turns)
}

// Convert parses every argument in the unit. Arguments failing to
// parse or convert are reported together, the rest are still returned.
func Convert(u Unit, args []string, opts *angle.DMSOptions) ([]Result, error) {
	var errs sh.AggregatedError
	results := make([]Result, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			errs.AddInput(arg, err)
			continue
		}
		a, err := u.Angle(v)
		if err != nil {
			errs.AddInput(arg, err)
			continue
		}
		results = append(results, ResultOf(arg, a, opts))
	}
	return results, errs.Aggregate()
}

// DMSRequest parses VALUE [PRECISION [DIGITS]] on top of defaults.
func DMSRequest(args []string, defaults *angle.DMSOptions) (*msgs.DMSFormat, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("VALUE required")
	}
	req := &msgs.DMSFormat{}
	if defaults != nil {
		req.Precision = string(defaults.Precision)
		req.SecondFractionDigits = defaults.SecondFractionDigits
	}
	var err error
	if req.Degrees, err = strconv.ParseFloat(args[0], 64); err != nil {
		return nil, &sh.InputError{Input: args[0], Err: err}
	}
	if len(args) > 1 {
		req.Precision = args[1]
	}
	if len(args) > 2 {
		// any float is accepted, the formatter truncates and clamps it.
		if req.SecondFractionDigits, err = strconv.ParseFloat(args[2], 64); err != nil {
			return nil, &sh.InputError{Input: args[2], Err: err}
		}
	}
	return req, nil
}

// Encode encodes an angle in degrees as hex of its wire form.
func Encode(arg string) (string, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", &sh.InputError{Input: arg, Err: err}
	}
	a, err := angle.OfDegrees(v)
	if err != nil {
		return "", &sh.InputError{Input: arg, Err: err}
	}
	data, err := msgs.Encode(a)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// Decode decodes hex of the wire form.
func Decode(arg string, opts *angle.DMSOptions) (Result, error) {
	data, err := hex.DecodeString(arg)
	if err != nil {
		return Result{}, &sh.InputError{Input: arg, Err: err}
	}
	a, err := msgs.Decode(data)
	if err != nil {
		return Result{}, &sh.InputError{Input: arg, Err: err}
	}
	return ResultOf(arg, a, opts), nil
}
