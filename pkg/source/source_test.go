package source

import (
	"context"
	"errors"
	"io/ioutil"
	"net"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"

	"github.com/robotalks/tracker.go/pkg/lines"
)

var _ lines.ContextReader = (*SerialSource)(nil)

func TestPortOptionsNormalize(t *testing.T) {
	opts, err := PortOptions{}.Normalize()
	require.NoError(t, err)
	require.Equal(t, PortOptions{BaudRate: 9600, DataBits: 8, StopBits: 1, Parity: "N"}, opts)

	opts, err = PortOptions{BaudRate: 115200, DataBits: 7, StopBits: 2, Parity: "even"}.Normalize()
	require.NoError(t, err)
	require.Equal(t, PortOptions{BaudRate: 115200, DataBits: 7, StopBits: 2, Parity: "E"}, opts)

	for _, bad := range []PortOptions{
		{DataBits: 9},
		{DataBits: 4},
		{StopBits: 3},
		{Parity: "M"},
	} {
		_, err := bad.Normalize()
		require.Error(t, err, "%+v", bad)
	}
}

func TestPortOptionsSerialMode(t *testing.T) {
	mode, err := PortOptions{StopBits: 2, Parity: "O"}.SerialMode()
	require.NoError(t, err)
	require.Equal(t, &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   serial.OddParity,
		StopBits: serial.TwoStopBits,
	}, mode)

	_, err = PortOptions{Parity: "X"}.SerialMode()
	require.Error(t, err)
}

func TestPortOptionsFromQuery(t *testing.T) {
	q, err := url.ParseQuery("baud=4800&databits=7&parity=e")
	require.NoError(t, err)
	opts, err := PortOptionsFromQuery(q)
	require.NoError(t, err)
	require.Equal(t, PortOptions{BaudRate: 4800, DataBits: 7, StopBits: 1, Parity: "E"}, opts)

	q, err = url.ParseQuery("baud=fast")
	require.NoError(t, err)
	_, err = PortOptionsFromQuery(q)
	require.Error(t, err)
}

func TestDevicePath(t *testing.T) {
	cases := map[string]string{
		"serial:///dev/ttyACM0?baud=9600": "/dev/ttyACM0",
		"serial://COM3":                   "COM3",
		"serial:/dev/ttyS1":               "/dev/ttyS1",
	}
	for raw, expected := range cases {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		require.Equal(t, expected, devicePath(u), raw)
	}
}

func TestOriginOf(t *testing.T) {
	u, err := url.Parse("wss://gps.local:8443/nmea")
	require.NoError(t, err)
	require.Equal(t, "https://gps.local:8443/", originOf(u))
	u, err = url.Parse("ws://gps.local/nmea")
	require.NoError(t, err)
	require.Equal(t, "http://gps.local/", originOf(u))
}

func TestOpenFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nmea.log")
	require.NoError(t, ioutil.WriteFile(fn, []byte("$GPGGA\n"), 0644))
	for _, raw := range []string{fn, "file://" + fn} {
		src, err := Open(raw)
		require.NoError(t, err, raw)
		data, err := ioutil.ReadAll(src)
		require.NoError(t, err)
		require.Equal(t, "$GPGGA\n", string(data))
		require.NoError(t, src.Close())
	}

	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestOpenTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Write([]byte("hello\n"))
		conn.Close()
	}()

	src, err := Open("tcp://" + ln.Addr().String())
	require.NoError(t, err)
	defer src.Close()
	data, err := ioutil.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data))
}

func TestOpenUnknownScheme(t *testing.T) {
	_, err := Open("gopher://somewhere")
	require.Error(t, err)
	_, err = Open("serial:///dev/null?databits=12")
	require.Error(t, err)
}

type fakePort struct {
	reads   []string
	timeout time.Duration
	closed  bool
	err     error
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.reads) == 0 {
		if p.err != nil {
			return 0, p.err
		}
		return 0, nil
	}
	s := p.reads[0]
	p.reads = p.reads[1:]
	return copy(b, s), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) SetReadTimeout(t time.Duration) error {
	p.timeout = t
	return nil
}

func TestSerialSourceSkipsPollTimeouts(t *testing.T) {
	port := &fakePort{reads: []string{"", "", "ab", "", "c"}}
	src, err := NewSerialSource(port, "/dev/fake")
	require.NoError(t, err)
	require.Equal(t, DefaultPollInterval, port.timeout)
	require.Equal(t, "serial:/dev/fake", src.Name())

	buf := make([]byte, 8)
	n, err := src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "ab", string(buf[:n]))
	n, err = src.ReadContext(context.Background(), buf)
	require.NoError(t, err)
	require.Equal(t, "c", string(buf[:n]))

	port.err = errors.New("port gone")
	_, err = src.Read(buf)
	require.EqualError(t, err, "port gone")

	require.NoError(t, src.Close())
	require.True(t, port.closed)
}

func TestSerialSourceReadContextCanceled(t *testing.T) {
	src, err := NewSerialSource(&fakePort{}, "/dev/fake")
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = src.ReadContext(ctx, make([]byte, 4))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
