// Package msgs defines wire messages carrying angles.
package msgs

import (
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/angle.go/pkg/angle"
)

// Angle is the serialized form of angle.Angle.
type Angle struct {
	Degrees float64 `protobuf:"fixed64,1,opt,name=degrees,proto3" json:"degrees"`
}

// ProtoMessage implements proto.Message.
func (m *Angle) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Angle) Reset() { *m = Angle{} }

// String implements proto.Message.
func (m *Angle) String() string { return proto.CompactTextString(m) }

// DMSFormat requests an angle formatted as degrees, minutes and seconds.
type DMSFormat struct {
	Degrees              float64 `protobuf:"fixed64,1,opt,name=degrees,proto3" json:"degrees"`
	Precision            string  `protobuf:"bytes,2,opt,name=precision,proto3" json:"precision,omitempty"`
	SecondFractionDigits float64 `protobuf:"fixed64,3,opt,name=second_fraction_digits,proto3" json:"second_fraction_digits,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *DMSFormat) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DMSFormat) Reset() { *m = DMSFormat{} }

// String implements proto.Message.
func (m *DMSFormat) String() string { return proto.CompactTextString(m) }

// Options converts the request into angle.DMSOptions.
func (m *DMSFormat) Options() *angle.DMSOptions {
	return &angle.DMSOptions{
		Precision:            angle.Precision(m.Precision),
		SecondFractionDigits: m.SecondFractionDigits,
	}
}

// AngleFrom creates the message from an angle.
func AngleFrom(a angle.Angle) *Angle {
	return &Angle{Degrees: a.Degrees()}
}

// ToAngle validates the message and converts it back.
func (m *Angle) ToAngle() (angle.Angle, error) {
	return angle.OfDegrees(m.Degrees)
}

// Encode encodes an angle to bytes.
func Encode(a angle.Angle) ([]byte, error) {
	return proto.Marshal(AngleFrom(a))
}

// Decode decodes bytes into an angle. The payload is re-validated, so
// non-finite degrees fail with angle.ErrInvalidArgument.
func Decode(data []byte) (angle.Angle, error) {
	var m Angle
	if err := proto.Unmarshal(data, &m); err != nil {
		return angle.Angle{}, err
	}
	return m.ToAngle()
}

// FormatRequest formats the angle described by a DMSFormat message.
func FormatRequest(m *DMSFormat) (string, error) {
	return angle.FormatDMS(m.Degrees, m.Options())
}
