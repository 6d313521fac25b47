package animation

import (
	"fmt"

	"github.com/golang/glog"
)

// Strip displays pixels.
type Strip interface {
	Show(*Pixels) error
}

// ShowFunc is func form of Strip.
type ShowFunc func(*Pixels) error

// Show implements Strip.
func (f ShowFunc) Show(p *Pixels) error {
	return f(p)
}

// Strips shows on every strip, stopping at the first error.
type Strips []Strip

// Show implements Strip.
func (s Strips) Show(p *Pixels) error {
	for _, strip := range s {
		if err := strip.Show(p); err != nil {
			return err
		}
	}
	return nil
}

// SwapRGStrip adjusts colours for strips which take green first (SK6812).
type SwapRGStrip struct {
	Strip Strip
}

// Show implements Strip.
func (s *SwapRGStrip) Show(p *Pixels) error {
	var swapped Pixels
	for i, c := range p {
		swapped[i] = c.SwapRG()
	}
	return s.Strip.Show(&swapped)
}

// ForLEDType adapts strip to the colour order of ledType.
func ForLEDType(ledType string, strip Strip) (Strip, error) {
	switch ledType {
	case "", "ws2812":
		return strip, nil
	case "sk6812":
		return &SwapRGStrip{Strip: strip}, nil
	default:
		return nil, fmt.Errorf("unknown LED type: %q", ledType)
	}
}

// LogStrip logs lit LEDs at verbosity 3.
type LogStrip struct{}

// Show implements Strip.
func (LogStrip) Show(p *Pixels) error {
	if glog.V(3) {
		glog.Infof("pixels: %v", p.Lit())
	}
	return nil
}
