package source

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.bug.st/serial"
)

// PortOptions describes the serial line settings.
type PortOptions struct {
	BaudRate int    `json:"baud_rate"`
	DataBits int    `json:"data_bits"`
	StopBits int    `json:"stop_bits"`
	Parity   string `json:"parity"`
}

// DefaultBaudRate matches the GPS receiver factory setting.
const DefaultBaudRate = 9600

// Normalize validates the options and applies defaults for any unset values.
func (o PortOptions) Normalize() (PortOptions, error) {
	opts := o
	if opts.BaudRate <= 0 {
		opts.BaudRate = DefaultBaudRate
	}
	if opts.DataBits == 0 {
		opts.DataBits = 8
	}
	if opts.DataBits < 5 || opts.DataBits > 8 {
		return opts, fmt.Errorf("invalid data bits %d: must be between 5 and 8", opts.DataBits)
	}
	if opts.StopBits == 0 {
		opts.StopBits = 1
	}
	if opts.StopBits != 1 && opts.StopBits != 2 {
		return opts, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", opts.StopBits)
	}

	switch parity := strings.TrimSpace(strings.ToUpper(opts.Parity)); parity {
	case "", "N", "NONE":
		opts.Parity = "N"
	case "E", "EVEN":
		opts.Parity = "E"
	case "O", "ODD":
		opts.Parity = "O"
	default:
		return opts, fmt.Errorf("unsupported parity %q: expected N, E, or O", opts.Parity)
	}
	return opts, nil
}

// SerialMode converts the options into the mode used to open the port.
func (o PortOptions) SerialMode() (*serial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}
	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	if opts.StopBits == 2 {
		mode.StopBits = serial.TwoStopBits
	}
	switch opts.Parity {
	case "E":
		mode.Parity = serial.EvenParity
	case "O":
		mode.Parity = serial.OddParity
	}
	return mode, nil
}

// PortOptionsFromQuery parses baud, databits, stopbits and parity.
func PortOptionsFromQuery(q url.Values) (opts PortOptions, err error) {
	ints := []struct {
		key string
		val *int
	}{
		{"baud", &opts.BaudRate},
		{"databits", &opts.DataBits},
		{"stopbits", &opts.StopBits},
	}
	for _, item := range ints {
		str := q.Get(item.key)
		if str == "" {
			continue
		}
		if *item.val, err = strconv.Atoi(str); err != nil {
			return opts, fmt.Errorf("invalid %s %q: %v", item.key, str, err)
		}
	}
	opts.Parity = q.Get("parity")
	return opts.Normalize()
}
