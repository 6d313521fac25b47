package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/tracker.go/pkg/animation"
	"github.com/robotalks/tracker.go/pkg/env"
	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/lines"
	"github.com/robotalks/tracker.go/pkg/mapper"
	"github.com/robotalks/tracker.go/pkg/source"
	"github.com/robotalks/tracker.go/pkg/telemetry/mqtt"
)

func init() {
	env.SetupFlags()
}

func runSource(ctx context.Context, conf *env.Config, handler lines.FrameHandler) error {
	src, err := source.Open(conf.SourceURL)
	if err != nil {
		return err
	}
	glog.Infof("reading frames from %s", conf.SourceURL)
	reader := lines.NewReader(src, conf.RingCapacity)
	reader.Retry = conf.Retry
	pump := lines.NewPump(reader, handler)
	pump.Size = conf.FrameSize
	pump.OnFull = func(dropped int) {
		glog.V(1).Infof("resync after dropping %d bytes", dropped)
	}
	err = fx.RunWithContextCloser(ctx, src, func() error {
		return pump.Run(ctx)
	})
	glog.Infof("source stopped after %d frames: %v", pump.Frames(), err)
	return err
}

func main() {
	flag.Parse()

	conf := env.Default()
	if err := conf.Validate(); err != nil {
		glog.Exitln(err)
	}
	runner := fx.NewRunner().HandleSignals()

	var strips animation.Strips
	hardware, err := animation.ForLEDType(conf.LEDType, animation.LogStrip{})
	if err != nil {
		glog.Exitln(err)
	}
	strips = append(strips, hardware)

	frames := lines.FrameHandler(lines.HandleFrameFunc(func(context.Context, []byte) {}))
	if conf.MQTTBrokerURL != "" {
		q, err := mqtt.NewQueueFromURL(conf.MQTTBrokerURL)
		if err != nil {
			glog.Exitf("MQTT broker %q: %v", conf.MQTTBrokerURL, err)
		}
		pub := mqtt.NewPublisher(q, conf.DeviceID)
		frames = pub.FrameHandler(conf.SourceURL)
		strips = append(strips, pub.PixelStrip())
		runner.Go(pub)
	}

	anim, err := animation.New(conf.Animation, strips)
	if err != nil {
		glog.Exitln(err)
	}
	if hs, ok := anim.(animation.HeadingSetter); ok {
		hs.SetHeading(mapper.AngleFromDegrees(conf.Heading))
	}
	loop := fx.NewLoop().AddController(anim)
	loop.Interval = conf.Interval

	glog.Infof("tracker %s starting, animation %s", conf.DeviceID, anim.Name())
	runner.Go(
		fx.NamedRun("animation", loop),
		fx.NamedRun("source", fx.RunFunc(func(ctx context.Context) error {
			return runSource(ctx, conf, frames)
		})),
	)
	// the source ending, cleanly or not, stops the daemon.
	if err := runner.WaitAny(); err != nil {
		glog.Exitln(err)
	}
}
