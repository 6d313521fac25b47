package source

import (
	"context"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

// DefaultPollInterval bounds how long a serial read waits before checking
// for cancellation.
const DefaultPollInterval = 50 * time.Millisecond

// Port is the part of serial.Port used by SerialSource.
type Port interface {
	Read(p []byte) (int, error)
	Close() error
	SetReadTimeout(t time.Duration) error
}

// SerialSource reads from a serial port. A read which times out is not
// end-of-stream: Read keeps waiting and ReadContext checks ctx in between.
type SerialSource struct {
	Port Port
	Path string
}

// OpenSerial opens a serial port.
func OpenSerial(path string, opts PortOptions) (*SerialSource, error) {
	mode, err := opts.SerialMode()
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	glog.Infof("serial %s opened at %d baud", path, mode.BaudRate)
	return NewSerialSource(port, path)
}

// NewSerialSource wraps an opened port.
func NewSerialSource(port Port, path string) (*SerialSource, error) {
	if err := port.SetReadTimeout(DefaultPollInterval); err != nil {
		port.Close()
		return nil, err
	}
	return &SerialSource{Port: port, Path: path}, nil
}

// Read implements io.Reader.
func (s *SerialSource) Read(p []byte) (int, error) {
	for {
		n, err := s.Port.Read(p)
		if n > 0 || err != nil || len(p) == 0 {
			return n, err
		}
	}
}

// ReadContext implements lines.ContextReader.
func (s *SerialSource) ReadContext(ctx context.Context, p []byte) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := s.Port.Read(p)
		if n > 0 || err != nil || len(p) == 0 {
			return n, err
		}
	}
}

// Close implements io.Closer.
func (s *SerialSource) Close() error {
	return s.Port.Close()
}

// Name implements Named.
func (s *SerialSource) Name() string {
	return "serial:" + s.Path
}
