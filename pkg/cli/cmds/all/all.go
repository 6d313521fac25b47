// Package all registers all shell commands.
package all

import (
	_ "github.com/robotalks/tracker.go/pkg/cli/cmds/lines"
	_ "github.com/robotalks/tracker.go/pkg/cli/cmds/mapper"
)
