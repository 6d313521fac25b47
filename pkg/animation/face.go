package animation

import (
	"math/rand"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/mapper"
)

// Face feature coordinates.
var (
	Nose  = []mapper.Coordinate{{Ring: 0, Step: 0}, {Ring: 1, Step: 8}, {Ring: 1, Step: 6}, {Ring: 1, Step: 10}}
	Mouth = []mapper.Coordinate{{Ring: 3, Step: 5}, {Ring: 3, Step: 6}, {Ring: 3, Step: 7}, {Ring: 3, Step: 8}, {Ring: 3, Step: 9}, {Ring: 3, Step: 10}, {Ring: 3, Step: 11}}
	Eyes  = []mapper.Coordinate{
		// left
		{Ring: 2, Step: 15}, {Ring: 2, Step: 14}, {Ring: 3, Step: 14},
		// right
		{Ring: 2, Step: 2}, {Ring: 2, Step: 3}, {Ring: 3, Step: 3},
	}
)

// Face colours, before dimming.
var (
	NoseColor            = Yellow
	MouthColor           = Firebrick
	EyeColor             = Gainsboro
	EyeClosedColor       = DarkSlateGray.Div(2)
	EyeReopenColor       = BlueViolet
	FaceBrightness uint8 = 9
)

// Blink intervals, [min, max) in milliseconds.
const (
	EyesOpenMinMs   = 5000
	EyesOpenMaxMs   = 8000
	EyesClosedMinMs = 100
	EyesClosedMaxMs = 800
)

// Face draws a smiley and blinks at random intervals.
type Face struct {
	Strip Strip
	Rand  *rand.Rand

	pixels  Pixels
	started bool
	closed  bool
	next    time.Time
}

// NewFace creates a Face.
func NewFace(strip Strip) *Face {
	return &Face{Strip: strip, Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Control implements Controller. The strip is only updated on changes.
func (f *Face) Control(cc fx.ControlContext) error {
	now := cc.Time()
	if !f.started {
		f.started = true
		f.paint(Nose, NoseColor)
		f.paint(Mouth, MouthColor)
		f.paint(Eyes, EyeColor)
		f.schedule(now, EyesOpenMinMs, EyesOpenMaxMs)
		return f.Strip.Show(&f.pixels)
	}
	if now.Before(f.next) {
		return nil
	}
	if f.closed = !f.closed; f.closed {
		f.paint(Eyes, EyeClosedColor)
		f.schedule(now, EyesClosedMinMs, EyesClosedMaxMs)
	} else {
		f.paint(Eyes, EyeReopenColor)
		f.schedule(now, EyesOpenMinMs, EyesOpenMaxMs)
	}
	return f.Strip.Show(&f.pixels)
}

// Name implements Named.
func (f *Face) Name() string { return "face" }

func (f *Face) paint(coords []mapper.Coordinate, c RGB) {
	f.pixels.Paint(coords, c.Div(FaceBrightness))
}

func (f *Face) schedule(now time.Time, minMs, maxMs int64) {
	ms := minMs + f.Rand.Int63n(maxMs-minMs)
	glog.V(3).Infof("eyes closed=%v for %dms", f.closed, ms)
	f.next = now.Add(time.Duration(ms) * time.Millisecond)
}
