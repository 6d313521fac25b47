package mqtt

import (
	"context"
	"errors"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/tracker.go/pkg/telemetry/msgs"
)

// DefaultPublishTimeout bounds the wait for a publish to be handed to the broker.
const DefaultPublishTimeout = time.Second

// ErrTimeout indicates the broker didn't acknowledge in time.
var ErrTimeout = errors.New("mqtt timeout")

// Publisher publishes telemetry messages under a device prefix.
type Publisher struct {
	Queue *Queue
	// Prefix is prepended to every topic, usually "<device-id>/".
	Prefix string
	// Timeout of a single publish, 0 doesn't wait.
	Timeout time.Duration
}

// NewPublisher creates a Publisher.
func NewPublisher(q *Queue, deviceID string) *Publisher {
	p := &Publisher{Queue: q, Timeout: DefaultPublishTimeout}
	if deviceID != "" {
		p.Prefix = deviceID + "/"
	}
	return p
}

// Publish encodes msg and publishes it to topic.
func (p *Publisher) Publish(topic string, msg msgs.Message) error {
	data, err := msgs.Encode(msg)
	if err != nil {
		return err
	}
	token := p.Queue.Pub(p.Prefix+topic, data)
	if p.Timeout <= 0 {
		return nil
	}
	if !token.WaitTimeout(p.Timeout) {
		return ErrTimeout
	}
	return token.Error()
}

// Run implements Runnable. It connects the queue and disconnects when ctx is done.
func (p *Publisher) Run(ctx context.Context) error {
	token := p.Queue.Connect()
	for !token.WaitTimeout(100 * time.Millisecond) {
		if ctx.Err() != nil {
			p.Queue.Close()
			return ctx.Err()
		}
	}
	if err := token.Error(); err != nil {
		return err
	}
	<-ctx.Done()
	glog.Info("disconnecting broker")
	return p.Queue.Close()
}

// Name implements Named.
func (p *Publisher) Name() string {
	return "mqtt-publisher"
}

// MessageHandler receives decoded telemetry.
type MessageHandler func(topic string, msg msgs.Message, err error)

// SubMessages subscribes a topic pattern and decodes every payload.
func (q *Queue) SubMessages(topic string, handler MessageHandler) paho.Token {
	return q.Sub(topic, func(topic string, payload []byte) {
		msg, err := msgs.Decode(payload)
		handler(topic, msg, err)
	})
}
