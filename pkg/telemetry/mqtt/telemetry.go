package mqtt

import (
	"bytes"
	"context"

	"github.com/golang/glog"

	"github.com/robotalks/tracker.go/pkg/animation"
	"github.com/robotalks/tracker.go/pkg/lines"
	"github.com/robotalks/tracker.go/pkg/telemetry/msgs"
)

// Telemetry topics, relative to the publisher prefix.
const (
	FramesTopic = "frames"
	PixelsTopic = "pixels"
)

// FrameHandler publishes every frame as msgs.Frame.
func (p *Publisher) FrameHandler(source string) lines.FrameHandler {
	var seq uint64
	return lines.HandleFrameFunc(func(_ context.Context, frame []byte) {
		seq++
		msg := &msgs.Frame{
			Source:     source,
			Seq:        seq,
			Data:       bytes.TrimSuffix(frame, []byte{lines.Delimiter}),
			Terminated: bytes.HasSuffix(frame, []byte{lines.Delimiter}),
		}
		if err := p.Publish(FramesTopic, msg); err != nil {
			glog.Warningf("publish frame %d: %v", seq, err)
		}
	})
}

// PixelStrip publishes every shown frame as msgs.Pixels.
func (p *Publisher) PixelStrip() animation.Strip {
	var tick uint64
	return animation.ShowFunc(func(pixels *animation.Pixels) error {
		msg := &msgs.Pixels{Data: pixels.Bytes(), Tick: tick}
		tick++
		return p.Publish(PixelsTopic, msg)
	})
}
