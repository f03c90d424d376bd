package conv

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/angle.go/pkg/angle"
	"github.com/robotalks/angle.go/pkg/angle/msgs"
	"github.com/robotalks/angle.go/pkg/cli/sh"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		name    string
		unit    Unit
		arg     string
		degrees float64
		dms     string
	}{
		{name: "degrees", unit: Degrees, arg: "-0.5", degrees: 359.5, dms: "359°30′00″"},
		{name: "radians", unit: Radians, arg: strconv.FormatFloat(math.Pi, 'g', -1, 64), degrees: 180, dms: "180°00′00″"},
		{name: "gradians", unit: Gradians, arg: "100", degrees: 90, dms: "90°00′00″"},
		{name: "turns", unit: Turns, arg: "1.75", degrees: 270, dms: "270°00′00″"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := Convert(tc.unit, []string{tc.arg}, nil)
			require.NoError(t, err)
			require.Len(t, results, 1)
			require.Equal(t, tc.arg, results[0].Input)
			require.Equal(t, tc.degrees, results[0].Degrees)
			require.Equal(t, tc.dms, results[0].DMS)
		})
	}
}

func TestConvertAggregatesErrors(t *testing.T) {
	results, err := Convert(Degrees, []string{"90", "NaN", "abc", "Inf"}, &angle.DMSOptions{Precision: angle.PrecisionAuto})
	require.Len(t, results, 1)
	require.Equal(t, "90°", results[0].DMS)
	require.Equal(t, 0.25, results[0].Turns)

	var agg *sh.AggregatedError
	require.True(t, errors.As(err, &agg))
	require.Len(t, agg.Errors, 3)
	require.True(t, errors.Is(agg.Errors[0], angle.ErrInvalidArgument))
	require.False(t, errors.Is(agg.Errors[1], angle.ErrInvalidArgument))
	require.True(t, errors.Is(agg.Errors[2], angle.ErrInvalidArgument))

	var inputErr *sh.InputError
	require.True(t, errors.As(agg.Errors[1], &inputErr))
	require.Equal(t, "abc", inputErr.Input)
}

func TestDMSRequest(t *testing.T) {
	defaults := &angle.DMSOptions{Precision: angle.PrecisionAuto, SecondFractionDigits: 2}
	testCases := []struct {
		name   string
		args   []string
		expect string
	}{
		{name: "defaults", args: []string{"0.1"}, expect: "0°06′"},
		{name: "precision", args: []string{"1.23", "minute"}, expect: "1°14′"},
		{name: "digits", args: []string{"1.23", "second", "10"}, expect: "1°13′48.000000″"},
		{name: "NaN digits", args: []string{"1.23", "second", "NaN"}, expect: "1°13′48″"},
		{name: "unknown precision", args: []string{"6.8563", "", "0"}, expect: "6°51′23″"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := DMSRequest(tc.args, defaults)
			require.NoError(t, err)
			s, err := msgs.FormatRequest(req)
			require.NoError(t, err)
			require.Equal(t, tc.expect, s)
		})
	}

	_, err := DMSRequest(nil, defaults)
	require.Error(t, err)
	_, err = DMSRequest([]string{"1", "auto", "x"}, nil)
	require.Error(t, err)

	req, err := DMSRequest([]string{"Inf"}, nil)
	require.NoError(t, err)
	_, err = msgs.FormatRequest(req)
	require.True(t, errors.Is(err, angle.ErrInvalidArgument))
}

func TestEncodeDecode(t *testing.T) {
	s, err := Encode("450")
	require.NoError(t, err)
	require.Equal(t, "090000000000805640", s)

	r, err := Decode(s, nil)
	require.NoError(t, err)
	require.Equal(t, 90.0, r.Degrees)
	require.Equal(t, math.Pi/2, r.Radians)

	r, err = Decode("", nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Degrees)

	_, err = Encode("NaN")
	require.True(t, errors.Is(err, angle.ErrInvalidArgument))
	_, err = Decode("09000000000000f07f", nil)
	require.True(t, errors.Is(err, angle.ErrInvalidArgument))
	_, err = Decode("zz", nil)
	require.Error(t, err)
}
