package framework

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// DefaultInterval is the Loop interval when none is set.
const DefaultInterval = 100 * time.Millisecond

// Loop runs controllers at a fixed interval.
type Loop struct {
	Interval time.Duration

	controllers []Controller
	tick        uint64
}

type loopIteration struct {
	ctx  context.Context
	time time.Time
	tick uint64
}

func (t *loopIteration) Context() context.Context { return t.ctx }
func (t *loopIteration) Time() time.Time          { return t.time }
func (t *loopIteration) Tick() uint64             { return t.tick }

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: DefaultInterval}
}

// AddController registers controllers, in invocation order.
func (l *Loop) AddController(ctls ...Controller) *Loop {
	l.controllers = append(l.controllers, ctls...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.runIteration(ctx, now)
		}
	}
}

func (l *Loop) runIteration(ctx context.Context, now time.Time) {
	iter := &loopIteration{ctx: ctx, time: now, tick: l.tick}
	l.tick++
	for _, ctl := range l.controllers {
		if err := ctl.Control(iter); err != nil {
			glog.Errorf("controller error: %v", err)
		}
	}
}
