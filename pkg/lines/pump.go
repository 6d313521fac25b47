package lines

import (
	"context"
	"errors"

	"github.com/golang/glog"
)

// FrameHandler is called for every frame read by a Pump.
// The frame is only valid during the call.
type FrameHandler interface {
	HandleFrame(ctx context.Context, frame []byte)
}

// HandleFrameFunc is func type of FrameHandler.
type HandleFrameFunc func(context.Context, []byte)

// HandleFrame implements FrameHandler.
func (f HandleFrameFunc) HandleFrame(ctx context.Context, frame []byte) {
	f(ctx, frame)
}

// DefaultFrameSize is the frame buffer size used by a Pump when none is set.
const DefaultFrameSize = 256

// Pump reads frames until end-of-stream and dispatches them to Handler.
type Pump struct {
	Reader  *Reader
	Handler FrameHandler
	// Size of the frame buffer, DefaultFrameSize if 0.
	Size int
	// OnFull is called after the Reader is reset on ErrFull.
	OnFull func(dropped int)

	frames uint64
}

// NewPump creates a Pump.
func NewPump(reader *Reader, handler FrameHandler) *Pump {
	return &Pump{Reader: reader, Handler: handler}
}

// Frames returns the number of frames dispatched so far.
func (p *Pump) Frames() uint64 {
	return p.frames
}

// Run implements Runnable.
func (p *Pump) Run(ctx context.Context) error {
	size := p.Size
	if size <= 0 {
		size = DefaultFrameSize
	}
	frame := make([]byte, size)
	for {
		n, err := p.Reader.ReadLineContext(ctx, frame)
		if errors.Is(err, ErrFull) {
			dropped := p.Reader.Buffered()
			glog.Warningf("frame exceeds %d bytes, dropping %d buffered bytes", p.Reader.Capacity(), dropped)
			p.Reader.Reset()
			if p.OnFull != nil {
				p.OnFull(dropped)
			}
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			glog.V(2).Infof("end of stream after %d frames", p.frames)
			return nil
		}
		p.frames++
		if glog.V(4) {
			glog.Infof("frame[%d] %q", p.frames, frame[:n])
		}
		if h := p.Handler; h != nil {
			h.HandleFrame(ctx, frame[:n])
		}
	}
}
