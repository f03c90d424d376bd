package msgs

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/angle.go/pkg/angle"
)

func TestEncodeDecode(t *testing.T) {
	for _, d := range []float64{0, 0.1, 90, 359.9} {
		a := angle.MustOfDegrees(d)
		data, err := Encode(a)
		require.NoError(t, err)
		decoded, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, a, decoded)
	}
}

func TestDecodeNormalizes(t *testing.T) {
	data, err := proto.Marshal(&Angle{Degrees: -90})
	require.NoError(t, err)
	a, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 270.0, a.Degrees())
}

func TestDecodeRejectsNonFinite(t *testing.T) {
	data, err := proto.Marshal(&Angle{Degrees: math.Inf(-1)})
	require.NoError(t, err)
	_, err = Decode(data)
	require.True(t, errors.Is(err, angle.ErrInvalidArgument))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0x09, 0x01})
	require.Error(t, err)
}

func TestFormatRequest(t *testing.T) {
	testCases := []struct {
		name   string
		msg    DMSFormat
		expect string
	}{
		{name: "defaults", msg: DMSFormat{Degrees: 1.23}, expect: "1°13′48″"},
		{name: "minute", msg: DMSFormat{Degrees: 1.23, Precision: "minute"}, expect: "1°14′"},
		{name: "digits", msg: DMSFormat{Degrees: 0, SecondFractionDigits: 1}, expect: "0°00′00.0″"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := proto.Marshal(&tc.msg)
			require.NoError(t, err)
			var msg DMSFormat
			require.NoError(t, proto.Unmarshal(data, &msg))
			s, err := FormatRequest(&msg)
			require.NoError(t, err)
			require.Equal(t, tc.expect, s)
		})
	}

	_, err := FormatRequest(&DMSFormat{Degrees: math.NaN()})
	require.True(t, errors.Is(err, angle.ErrInvalidArgument))
}
