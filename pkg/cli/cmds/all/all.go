// Package all registers all shell commands.
package all

import (
	_ "github.com/robotalks/angle.go/pkg/cli/cmds/conv"
)
