package animation

import (
	"github.com/robotalks/tracker.go/pkg/mapper"
)

// Pixels holds one colour per physical LED.
type Pixels [mapper.LEDCount]RGB

// Clear turns every LED off.
func (p *Pixels) Clear() {
	*p = Pixels{}
}

// Set sets a single LED, ignoring indices out of range.
func (p *Pixels) Set(index int, c RGB) {
	if index >= 0 && index < len(p) {
		p[index] = c
	}
}

// Paint sets the LEDs addressed by coords.
func (p *Pixels) Paint(coords []mapper.Coordinate, c RGB) {
	for _, coord := range coords {
		p[mapper.Lookup(coord)] = c
	}
}

// Lit returns the indices of LEDs which are on.
func (p *Pixels) Lit() []int {
	var lit []int
	for i, c := range p {
		if !c.IsBlack() {
			lit = append(lit, i)
		}
	}
	return lit
}

// Bytes returns R, G, B triples in physical order.
func (p *Pixels) Bytes() []byte {
	data := make([]byte, 0, len(p)*3)
	for _, c := range p {
		data = append(data, c.R, c.G, c.B)
	}
	return data
}
