package mapper

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/tracker.go/pkg/animation"
	"github.com/robotalks/tracker.go/pkg/cli/sh"
	"github.com/robotalks/tracker.go/pkg/mapper"
)

// Mapping is a coordinate with the indices it resolves to.
type Mapping struct {
	Ring    int `json:"ring"`
	Step    int `json:"step"`
	Virtual int `json:"virtual"`
	Index   int `json:"index"`
}

// MappingOf resolves a coordinate.
func MappingOf(c mapper.Coordinate) Mapping {
	return Mapping{
		Ring:    int(c.Ring),
		Step:    int(c.Step),
		Virtual: mapper.VirtualIndexOf(c),
		Index:   mapper.IndexOf(c),
	}
}

func (m Mapping) String() string {
	return fmt.Sprintf("(%d,%d) virtual=%d index=%d", m.Ring, m.Step, m.Virtual, m.Index)
}

func parseDegrees(args []string, n int) (mapper.Angle, error) {
	if len(args) <= n {
		return 0, fmt.Errorf("ANGLE required")
	}
	deg, err := strconv.ParseFloat(args[n], 64)
	if err != nil {
		return 0, fmt.Errorf("Invalid ANGLE: %v", err)
	}
	return mapper.AngleFromDegrees(deg), nil
}

// WorldMapping resolves DISTANCE ANGLE(degrees).
func WorldMapping(args []string) (Mapping, error) {
	vals, err := sh.IntArgs(args, "DISTANCE")
	if err != nil {
		return Mapping{}, err
	}
	angle, err := parseDegrees(args, 1)
	if err != nil {
		return Mapping{}, err
	}
	return MappingOf(mapper.FromWorldAngle(vals[0], angle)), nil
}

// HeadingMapping resolves the pointer slot of ANGLE(degrees).
func HeadingMapping(args []string) (Mapping, error) {
	angle, err := parseDegrees(args, 0)
	if err != nil {
		return Mapping{}, err
	}
	return MappingOf(animation.PointerCoordinate(angle)), nil
}

// FormatTable renders the lookup table, one ring per row.
func FormatTable(t *mapper.IndexTable) string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "    ")
	for step := 0; step < mapper.StepCount; step++ {
		fmt.Fprintf(&w, " %3d", step)
	}
	for ring, row := range t {
		fmt.Fprintf(&w, "\n%3d:", ring)
		for _, index := range row {
			fmt.Fprintf(&w, " %3d", index)
		}
	}
	return w.String()
}

var (
	// MapCmd resolves a ring/step coordinate.
	MapCmd = ishell.Cmd{
		Name:    "map",
		Aliases: []string{"m"},
		Help:    "RING STEP",
		Func: func(c *ishell.Context) {
			args, err := sh.IntArgs(c.Args, "RING", "STEP")
			if err != nil {
				c.Err(err)
				return
			}
			m := MappingOf(mapper.NewCoordinate(args[0], args[1]))
			sh.Output(c, m, m.String())
		},
	}

	// WorldCmd resolves a distance and heading in degrees.
	WorldCmd = ishell.Cmd{
		Name:    "world",
		Aliases: []string{"w"},
		Help:    "DISTANCE ANGLE(degrees)",
		Func: func(c *ishell.Context) {
			m, err := WorldMapping(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, m, m.String())
		},
	}

	// HeadingCmd shows the LED the pointer animation lights for a heading.
	HeadingCmd = ishell.Cmd{
		Name:    "heading",
		Aliases: []string{"hdg"},
		Help:    "ANGLE(degrees)",
		Func: func(c *ishell.Context) {
			m, err := HeadingMapping(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, m, m.String())
		},
	}

	// TableCmd prints the lookup table.
	TableCmd = ishell.Cmd{
		Name: "table",
		Help: "",
		Func: func(c *ishell.Context) {
			t := mapper.Table()
			sh.Output(c, t, FormatTable(t))
		},
	}
)

func init() {
	sh.AddCmds(
		&MapCmd,
		&WorldCmd,
		&HeadingCmd,
		&TableCmd,
	)
}
