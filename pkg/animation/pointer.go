package animation

import (
	"math"
	"sync/atomic"

	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/mapper"
)

// PointerRing is the ring the heading is shown on.
const PointerRing = 3

// HeadingSetter receives orientation updates.
type HeadingSetter interface {
	SetHeading(mapper.Angle)
}

// PointerCoordinate is the slot lit for a heading.
func PointerCoordinate(a mapper.Angle) mapper.Coordinate {
	return mapper.NewCoordinate(PointerRing, mapper.StepFromAngle(a))
}

// Pointer lights the single LED on PointerRing facing the latest heading.
// SetHeading may be called from any goroutine.
type Pointer struct {
	Strip Strip
	Color RGB

	heading uint64
	pixels  Pixels
	shown   bool
	index   int
}

// NewPointer creates a Pointer heading to 0.
func NewPointer(strip Strip) *Pointer {
	return &Pointer{Strip: strip, Color: MarkerColor}
}

// SetHeading implements HeadingSetter.
func (p *Pointer) SetHeading(a mapper.Angle) {
	atomic.StoreUint64(&p.heading, math.Float64bits(float64(a)))
}

// Heading returns the latest heading.
func (p *Pointer) Heading() mapper.Angle {
	return mapper.Angle(math.Float64frombits(atomic.LoadUint64(&p.heading)))
}

// Control implements Controller. The strip is only updated when the lit
// LED changes.
func (p *Pointer) Control(fx.ControlContext) error {
	index := mapper.Lookup(PointerCoordinate(p.Heading()))
	if p.shown && index == p.index {
		return nil
	}
	p.shown, p.index = true, index
	p.pixels.Clear()
	p.pixels[index] = p.Color
	return p.Strip.Show(&p.pixels)
}

// Name implements Named.
func (p *Pointer) Name() string { return "pointer" }
