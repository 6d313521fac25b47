// Package animation renders LED patterns over the tracker's ring/step layout.
package animation

import "fmt"

// RGB is a pixel colour.
type RGB struct {
	R, G, B uint8
}

// Named colours.
var (
	Black         = RGB{0, 0, 0}
	White         = RGB{255, 255, 255}
	Red           = RGB{255, 0, 0}
	Green         = RGB{0, 128, 0}
	Blue          = RGB{0, 0, 255}
	Yellow        = RGB{255, 255, 0}
	Orange        = RGB{255, 165, 0}
	OrangeRed     = RGB{255, 69, 0}
	Firebrick     = RGB{178, 34, 34}
	Gainsboro     = RGB{220, 220, 220}
	DarkSlateGray = RGB{47, 79, 79}
	BlueViolet    = RGB{138, 43, 226}
	Cyan          = RGB{0, 255, 255}
	Magenta       = RGB{255, 0, 255}
)

// Div divides every channel by n.
func (c RGB) Div(n uint8) RGB {
	if n == 0 {
		return c
	}
	return RGB{c.R / n, c.G / n, c.B / n}
}

// SwapRG exchanges red and green, for strips wired GRB as RGB.
func (c RGB) SwapRG() RGB {
	return RGB{c.G, c.R, c.B}
}

// IsBlack reports whether the pixel is off.
func (c RGB) IsBlack() bool {
	return c == Black
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NamedColor pairs a colour with its name.
type NamedColor struct {
	Name  string
	Color RGB
}

// Wheel is the palette cycled by Chase.
var Wheel = []NamedColor{
	{"red", Red},
	{"orange", Orange},
	{"yellow", Yellow},
	{"green", Green},
	{"cyan", Cyan},
	{"blue", Blue},
	{"blue-violet", BlueViolet},
	{"magenta", Magenta},
	{"white", White},
}

// MarkerColor is orange red with green pulled down, used for single-LED markers.
var MarkerColor = RGB{OrangeRed.R, OrangeRed.G - 40, OrangeRed.B}
