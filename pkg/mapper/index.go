package mapper

// Boundaries of the devirtualization regions.
const (
	fullRegionEnd = 48
	halfRegionEnd = 64
	tipIndex      = LEDCount - 1
)

// VirtualIndexOf linearizes c into [0, VirtualCount), counting down from
// the tip.
func VirtualIndexOf(c Coordinate) int {
	return mod(VirtualCount-1-(int(c.Ring)*StepCount+int(c.Step)), VirtualCount)
}

// Devirtualize folds a virtual index onto the physical strip:
// the outer rings map one to one, the next ring two slots per LED and the
// remaining slots all land on the tip LED.
func Devirtualize(virtualIndex int) int {
	v := mod(virtualIndex, VirtualCount)
	switch {
	case v < fullRegionEnd:
		return v
	case v < halfRegionEnd:
		return fullRegionEnd + (v-fullRegionEnd)/2
	default:
		return tipIndex
	}
}

// IndexOf returns the LED index in [0, LEDCount) addressed by c.
func IndexOf(c Coordinate) int {
	return Devirtualize(VirtualIndexOf(c))
}
