package lines

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/tracker.go/pkg/cli/sh"
	"github.com/robotalks/tracker.go/pkg/env"
	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/lines"
	"github.com/robotalks/tracker.go/pkg/source"
)

// FrameStats summarizes a ReadFrames run.
type FrameStats struct {
	Frames  int `json:"frames"`
	Resyncs int `json:"resyncs"`
	Dropped int `json:"dropped"`
}

// ReadFrames reads up to max frames from src (all if max <= 0) with the
// buffer settings of conf.
func ReadFrames(ctx context.Context, src io.Reader, conf *env.Config, max int, fn func([]byte)) (stats FrameStats, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	reader := lines.NewReader(src, conf.RingCapacity)
	reader.Retry = conf.Retry
	pump := lines.NewPump(reader, lines.HandleFrameFunc(func(_ context.Context, frame []byte) {
		if max > 0 && stats.Frames >= max {
			return
		}
		stats.Frames++
		fn(frame)
		if max > 0 && stats.Frames >= max {
			cancel()
		}
	}))
	pump.Size = conf.FrameSize
	pump.OnFull = func(dropped int) {
		stats.Resyncs++
		stats.Dropped += dropped
	}
	err = pump.Run(ctx)
	if errors.Is(err, context.Canceled) && max > 0 && stats.Frames >= max {
		err = nil
	}
	return
}

var (
	// FramesCmd prints frames read from a source.
	FramesCmd = ishell.Cmd{
		Name:    "frames",
		Aliases: []string{"f"},
		Help:    "[SOURCE] [MAX]",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			url, max := s.Config.SourceURL, 0
			for _, arg := range c.Args {
				if n, err := strconv.Atoi(arg); err == nil {
					max = n
				} else {
					url = arg
				}
			}
			src, err := source.Open(url)
			if err != nil {
				c.Err(err)
				return
			}
			var stats FrameStats
			err = fx.RunWithContextCloser(context.Background(), src, func() (err error) {
				stats, err = ReadFrames(context.Background(), src, s.Config, max, func(frame []byte) {
					c.Printf("%q\n", frame)
				})
				return
			})
			if err != nil {
				c.Err(err)
			}
			sh.Output(c, stats, fmt.Sprintf("%d frames, %d resyncs dropping %d bytes",
				stats.Frames, stats.Resyncs, stats.Dropped))
		},
	}
)

func init() {
	sh.AddCmds(&FramesCmd)
}
