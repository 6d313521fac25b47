package mapper

import "fmt"

// Grid dimensions.
const (
	RingCount    = 5
	StepCount    = 16
	VirtualCount = RingCount * StepCount
	// LEDCount is the number of physical LEDs on the strip.
	LEDCount = 57
)

// MaxRing is the outermost ring.
const MaxRing = RingCount - 1

// Coordinate addresses a slot on the face. Ring 0 is the tip.
type Coordinate struct {
	Ring uint8
	Step uint8
}

// NewCoordinate creates a Coordinate, wrapping out of range values.
func NewCoordinate(ring, step int) Coordinate {
	return Coordinate{Ring: uint8(mod(ring, RingCount)), Step: uint8(mod(step, StepCount))}
}

// FromWorld quantizes a distance and a heading in degrees. Distance is
// clamped to the outermost ring and the angle is rounded to the nearest of
// 16 sectors, halves rounding up.
func FromWorld(distance, angleDegrees int) Coordinate {
	ring := distance
	if ring < 0 {
		ring = 0
	} else if ring > MaxRing {
		ring = MaxRing
	}
	angle := mod(angleDegrees, 360)
	step := (angle*StepCount + 180) / 360
	return Coordinate{Ring: uint8(ring), Step: uint8(step % StepCount)}
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Ring, c.Step)
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
