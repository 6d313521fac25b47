package main

import (
	"context"
	"flag"
	"reflect"

	"github.com/golang/glog"

	"github.com/robotalks/tracker.go/pkg/env"
	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/telemetry/mqtt"
	"github.com/robotalks/tracker.go/pkg/telemetry/msgs"
)

var topic = "#"

func init() {
	flag.StringVar(&topic, "topic", topic, "Topic pattern to subscribe.")
	env.SetupFlags()
}

func main() {
	flag.Parse()
	flag.Set("logtostderr", "true")

	q, err := mqtt.NewQueueFromURL(env.Default().MQTTBrokerURL)
	if err != nil {
		glog.Exitln(err)
	}

	q.SubMessages(topic, func(topic string, msg msgs.Message, err error) {
		if err != nil {
			glog.Warningf("%s: bad message: %v", topic, err)
			return
		}
		glog.Infof("%s: [%s] %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.String())
	})

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.RunFunc(func(ctx context.Context) error {
		token := q.Connect()
		token.Wait()
		if err := token.Error(); err != nil {
			return err
		}
		<-ctx.Done()
		return q.Close()
	}))
	if err := runner.Wait(); err != nil {
		glog.Exitln(err)
	}
}
