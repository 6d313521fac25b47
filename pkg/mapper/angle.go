package mapper

import "math"

// Angle is an orientation in radians, normalized to [-Pi, Pi].
type Angle float64

// AngleFromDegrees creates Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return Angle(normalizeRadians(d * math.Pi / 180.0))
}

// AngleFromRadians creates Angle from radians.
func AngleFromRadians(r float64) Angle {
	return Angle(normalizeRadians(r))
}

// Radians gets angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees gets angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// StepFromAngle maps an orientation (e.g. IMU roll) to a step, -Pi being
// step 0 and the steps growing counter-clockwise.
func StepFromAngle(a Angle) int {
	step := int(math.Floor((float64(a) + math.Pi) / (2 * math.Pi) * StepCount))
	return mod(step, StepCount)
}

// FromWorldAngle is FromWorld with an Angle, rounded to whole degrees in
// [0, 360).
func FromWorldAngle(distance int, a Angle) Coordinate {
	return FromWorld(distance, int(math.Round(a.Degrees())))
}

func normalizeRadians(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r >= 2*math.Pi || r <= -2*math.Pi {
		r = math.Remainder(r, 2*math.Pi)
	}
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}
