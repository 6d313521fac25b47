package animation

import (
	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/mapper"
)

// Spiral lights one LED per tick, sweeping all sectors of a distance band
// before moving outwards.
type Spiral struct {
	Strip Strip
	Color RGB

	pixels   Pixels
	previous int
	distance int
	sector   int
}

// NewSpiral creates a Spiral.
func NewSpiral(strip Strip) *Spiral {
	return &Spiral{Strip: strip, Color: MarkerColor}
}

// Control implements Controller.
func (s *Spiral) Control(fx.ControlContext) error {
	coord := mapper.FromWorld(s.distance, s.sector*(360/mapper.StepCount))
	index := mapper.Lookup(coord)
	s.pixels[s.previous] = Black
	s.pixels[index] = s.Color
	s.previous = index

	if s.sector++; s.sector >= mapper.StepCount {
		s.sector = 0
		s.distance = (s.distance + 1) % mapper.RingCount
	}
	return s.Strip.Show(&s.pixels)
}

// Name implements Named.
func (s *Spiral) Name() string { return "spiral" }
