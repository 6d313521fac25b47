// Package env assembles the tracker configuration from defaults,
// environment variables and command line flags.
package env

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/tracker.go/pkg/lines"
)

// Config provides the options shared by the tracker binaries.
type Config struct {
	// DeviceID is used as the topic segment for telemetry.
	DeviceID string
	// SourceURL specifies the position byte stream, see source.Open.
	SourceURL string
	// MQTTBrokerURL specifies the MQTT broker to use, empty disables telemetry.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	RingCapacity int
	FrameSize    int
	Retry        lines.RetryPolicy

	Animation string
	Interval  time.Duration
	// Heading in degrees for the pointer animation.
	Heading float64
	// LEDType is ws2812 or sk6812, the latter swaps red and green.
	LEDType string
}

var defaultConfig = Config{
	SourceURL:     "-",
	MQTTBrokerURL: "mqtt://localhost:1883/tracker/",
	RingCapacity:  128,
	FrameSize:     lines.DefaultFrameSize,
	Retry:         lines.RetryPolicy{MaxRetries: 3, Backoff: 100 * time.Millisecond},
	Animation:     "face",
	Interval:      50 * time.Millisecond,
	LEDType:       "ws2812",
}

func init() {
	defaultConfig.DeviceID = MachineID()
	loadEnv(&defaultConfig, os.Getenv)
}

func loadEnv(c *Config, getenv func(string) string) {
	strs := map[string]*string{
		"TRACKER_ID":        &c.DeviceID,
		"TRACKER_SOURCE":    &c.SourceURL,
		"TRACKER_MQTT_URL":  &c.MQTTBrokerURL,
		"TRACKER_ANIMATION": &c.Animation,
		"TRACKER_LED_TYPE":  &c.LEDType,
	}
	for key, ptr := range strs {
		if val := getenv(key); val != "" {
			*ptr = val
		}
	}
	ints := map[string]*int{
		"TRACKER_RING_CAPACITY": &c.RingCapacity,
		"TRACKER_FRAME_SIZE":    &c.FrameSize,
		"TRACKER_RETRIES":       &c.Retry.MaxRetries,
	}
	for key, ptr := range ints {
		if val := getenv(key); val != "" {
			n, err := strconv.Atoi(val)
			if err != nil {
				glog.Warningf("ignoring %s=%q: %v", key, val, err)
				continue
			}
			*ptr = n
		}
	}
	if val := getenv("TRACKER_HEADING"); val != "" {
		deg, err := strconv.ParseFloat(val, 64)
		if err != nil {
			glog.Warningf("ignoring TRACKER_HEADING=%q: %v", val, err)
		} else {
			c.Heading = deg
		}
	}
	durs := map[string]*time.Duration{
		"TRACKER_BACKOFF":  &c.Retry.Backoff,
		"TRACKER_INTERVAL": &c.Interval,
	}
	for key, ptr := range durs {
		if val := getenv(key); val != "" {
			d, err := time.ParseDuration(val)
			if err != nil {
				glog.Warningf("ignoring %s=%q: %v", key, val, err)
				continue
			}
			*ptr = d
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	defaultConfig.SetupFlags(flag.CommandLine)
}

// SetupFlags registers flags bound to c.
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DeviceID, "id", c.DeviceID, "Device ID")
	fs.StringVar(&c.SourceURL, "source", c.SourceURL, "Position source URL: -, file, serial://, tcp://, ws://")
	fs.StringVar(&c.MQTTBrokerURL, "mqtt", c.MQTTBrokerURL, "MQTT broker URL, empty to disable")
	fs.IntVar(&c.RingCapacity, "ring", c.RingCapacity, "Line buffer capacity in bytes")
	fs.IntVar(&c.FrameSize, "frame-size", c.FrameSize, "Max frame size in bytes")
	fs.IntVar(&c.Retry.MaxRetries, "retries", c.Retry.MaxRetries, "Retries on transient source errors")
	fs.DurationVar(&c.Retry.Backoff, "backoff", c.Retry.Backoff, "Wait between retries")
	fs.StringVar(&c.Animation, "animation", c.Animation, "Animation: face, spiral, chase, pointer")
	fs.Float64Var(&c.Heading, "heading", c.Heading, "Pointer heading in degrees")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "Animation tick interval")
	fs.StringVar(&c.LEDType, "led", c.LEDType, "LED type: ws2812, sk6812")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Validate checks the values are usable.
func (c *Config) Validate() error {
	if c.RingCapacity <= 0 {
		return fmt.Errorf("ring capacity must be positive: %d", c.RingCapacity)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("frame size must be positive: %d", c.FrameSize)
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retries must not be negative: %d", c.Retry.MaxRetries)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive: %v", c.Interval)
	}
	switch c.LEDType {
	case "ws2812", "sk6812":
	default:
		return fmt.Errorf("unknown LED type: %q", c.LEDType)
	}
	return nil
}
