package source

import (
	"context"
	"io"
	"io/ioutil"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tracker.go/pkg/framework"
	"github.com/robotalks/tracker.go/pkg/lines"
)

var _ lines.ContextReader = (*CancelableReader)(nil)

func TestCancelableReaderStopsPump(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	src := NewCancelableReader(pr)
	frames := make(chan string, 4)
	pump := lines.NewPump(lines.NewReader(src, 64), lines.HandleFrameFunc(func(_ context.Context, frame []byte) {
		frames <- string(frame)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- fx.RunWithContextCloser(ctx, ioutil.NopCloser(src), func() error {
			return pump.Run(ctx)
		})
	}()
	_, err := pw.Write([]byte("$GPGGA\n"))
	require.NoError(t, err)
	select {
	case frame := <-frames:
		require.Equal(t, "$GPGGA\n", frame)
	case <-time.After(time.Second):
		t.Fatal("frame not delivered")
	}

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("pump still running after cancel")
	}
	require.Empty(t, frames)
}

func TestCancelableReaderKeepsAbandonedRead(t *testing.T) {
	pr, pw := io.Pipe()
	src := NewCancelableReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := src.ReadContext(ctx, make([]byte, 8))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		pw.Write([]byte("late\n"))
		pw.Close()
	}()
	buf := make([]byte, 2)
	var data []byte
	for {
		n, err := src.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, "late\n", string(data))
	require.NoError(t, src.Close())
}

func TestOpenStdinIsCancelable(t *testing.T) {
	src, err := Open("-")
	require.NoError(t, err)
	_, ok := src.(lines.ContextReader)
	require.True(t, ok)
}
