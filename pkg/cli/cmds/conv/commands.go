package conv

import (
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/angle.go/pkg/angle/msgs"
	"github.com/robotalks/angle.go/pkg/cli/sh"
)

func convertCmd(u Unit, aliases []string, help string) ishell.Cmd {
	return ishell.Cmd{
		Name:    string(u),
		Aliases: aliases,
		Help:    help,
		Func: sh.WithArgs(1, "VALUE", func(c *ishell.Context) {
			results, err := Convert(u, c.Args, sh.ShellFrom(c).Config.DMSOptions())
			if len(results) > 0 {
				lines := make([]string, len(results))
				for n, r := range results {
					lines[n] = r.String()
				}
				sh.Output(c, results, strings.Join(lines, "\n"))
			}
			if err != nil {
				sh.Fail(c, err)
			}
		}),
	}
}

var (
	// DegreesCmd converts degrees.
	DegreesCmd = convertCmd(Degrees, []string{"d"}, "VALUE(degrees)...")
	// RadiansCmd converts radians.
	RadiansCmd = convertCmd(Radians, []string{"r"}, "VALUE(radians)...")
	// GradiansCmd converts gradians.
	GradiansCmd = convertCmd(Gradians, []string{"g"}, "VALUE(gradians)...")
	// TurnsCmd converts turns.
	TurnsCmd = convertCmd(Turns, []string{"t"}, "VALUE(turns)...")

	// DMSCmd formats degrees as degrees, minutes and seconds.
	DMSCmd = ishell.Cmd{
		Name: "dms",
		Help: "VALUE(degrees) [auto|degree|minute|second [DIGITS]]",
		Func: sh.WithArgs(1, "VALUE", func(c *ishell.Context) {
			req, err := DMSRequest(c.Args, sh.ShellFrom(c).Config.DMSOptions())
			if err != nil {
				sh.Fail(c, err)
				return
			}
			s, err := msgs.FormatRequest(req)
			if err != nil {
				sh.Fail(c, err)
				return
			}
			sh.Output(c, map[string]interface{}{"request": req, "dms": s}, s)
		}),
	}

	// EncodeCmd prints the wire form of an angle.
	EncodeCmd = ishell.Cmd{
		Name: "encode",
		Help: "VALUE(degrees)",
		Func: sh.WithArgs(1, "VALUE", func(c *ishell.Context) {
			s, err := Encode(c.Args[0])
			if err != nil {
				sh.Fail(c, err)
				return
			}
			sh.Output(c, s, s)
		}),
	}

	// DecodeCmd decodes the wire form of an angle.
	DecodeCmd = ishell.Cmd{
		Name: "decode",
		Help: "HEX",
		Func: sh.WithArgs(1, "HEX", func(c *ishell.Context) {
			r, err := Decode(c.Args[0], sh.ShellFrom(c).Config.DMSOptions())
			if err != nil {
				sh.Fail(c, err)
				return
			}
			sh.Output(c, r, r.String())
		}),
	}
)

func init() {
	sh.AddCmds(
		&DegreesCmd,
		&RadiansCmd,
		&GradiansCmd,
		&TurnsCmd,
		&DMSCmd,
		&EncodeCmd,
		&DecodeCmd,
	)
}
