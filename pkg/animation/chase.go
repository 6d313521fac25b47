package animation

import (
	"github.com/golang/glog"

	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/mapper"
)

// Chase lights a single LED walking physical indices, cycling the colour
// wheel independently.
type Chase struct {
	Strip   Strip
	Palette []NamedColor

	pixels Pixels
	index  int
	color  int
}

// NewChase creates a Chase over Wheel.
func NewChase(strip Strip) *Chase {
	return &Chase{Strip: strip, Palette: Wheel}
}

// Control implements Controller. An empty Palette falls back to Wheel.
func (c *Chase) Control(fx.ControlContext) error {
	palette := c.Palette
	if len(palette) == 0 {
		palette = Wheel
	}
	color := palette[c.color%len(palette)]
	glog.V(4).Infof("chase %d %s", c.index, color.Name)
	c.pixels.Clear()
	c.pixels[c.index] = color.Color
	c.index = (c.index + 1) % mapper.LEDCount
	c.color = (c.color + 1) % len(palette)
	return c.Strip.Show(&c.pixels)
}

// Name implements Named.
func (c *Chase) Name() string { return "chase" }
