package lines

import (
	"context"
	"errors"
	"io"
	"time"
)

// Delimiter terminates a frame.
const Delimiter byte = '\n'

// ContextReader is a byte source which suspends until data, an error or
// end-of-stream is available, or ctx is done.
type ContextReader interface {
	ReadContext(ctx context.Context, p []byte) (int, error)
}

// Reader reads frames from a byte source.
// It must be driven by one goroutine at a time.
type Reader struct {
	Retry RetryPolicy

	src    io.Reader
	buffer ring
	eof    bool
}

// NewReader creates a Reader buffering at most capacity bytes of a frame.
func NewReader(src io.Reader, capacity int) *Reader {
	if capacity <= 0 {
		panic("lines: capacity must be positive")
	}
	return &Reader{src: src, buffer: newRing(capacity)}
}

// Capacity returns the ring capacity.
func (r *Reader) Capacity() int {
	return r.buffer.cap()
}

// Buffered returns the number of bytes waiting for a delimiter.
func (r *Reader) Buffered() int {
	return r.buffer.len()
}

// Reset discards buffered bytes. End-of-stream stays sticky.
func (r *Reader) Reset() {
	r.buffer.reset()
}

// ReadLine copies the next frame into out and returns its length, including
// the trailing delimiter. After end-of-stream the remaining bytes are
// returned undelimited, and then 0 on every call.
// The source is read into out, so len(out) bounds a single source read.
func (r *Reader) ReadLine(out []byte) (int, error) {
	return r.readLine(nil, out)
}

// ReadLineContext is ReadLine suspending on the source read. When ctx is
// done while waiting for the source, ctx.Err() is returned and buffered bytes
// are kept.
func (r *Reader) ReadLineContext(ctx context.Context, out []byte) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return r.readLine(ctx, out)
}

func (r *Reader) readLine(ctx context.Context, out []byte) (int, error) {
	if len(out) == 0 {
		return 0, io.ErrShortBuffer
	}
	attempts := 0
	for {
		if pos := r.buffer.indexByte(Delimiter); pos >= 0 {
			if pos >= len(out) {
				return 0, io.ErrShortBuffer
			}
			return r.buffer.read(out[:pos+1]), nil
		}
		if r.eof {
			return r.buffer.read(out), nil
		}

		n, err := r.fill(ctx, out)
		for _, b := range out[:n] {
			if !r.buffer.push(b) {
				return 0, ErrFull
			}
		}
		switch {
		case errors.Is(err, io.EOF), n == 0 && err == nil:
			r.eof = true
		case err != nil:
			if ctx != nil && ctx.Err() != nil {
				return 0, ctx.Err()
			}
			attempts++
			if !r.Retry.allows(attempts, err) {
				return 0, &ReadError{Err: err, Transient: IsTransient(err), Attempts: attempts}
			}
			if err = r.backoff(ctx); err != nil {
				return 0, err
			}
		default:
			attempts = 0
		}
	}
}

func (r *Reader) fill(ctx context.Context, p []byte) (int, error) {
	if ctx == nil {
		return r.src.Read(p)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if cr, ok := r.src.(ContextReader); ok {
		return cr.ReadContext(ctx, p)
	}
	return r.src.Read(p)
}

func (r *Reader) backoff(ctx context.Context) error {
	d := r.Retry.Backoff
	if d <= 0 {
		return nil
	}
	if ctx == nil {
		time.Sleep(d)
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
