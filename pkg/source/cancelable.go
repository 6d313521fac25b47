package source

import (
	"context"
	"io"
)

type readResult struct {
	n   int
	err error
}

// CancelableReader turns a blocking io.Reader into a lines.ContextReader.
// The source read runs in its own goroutine; a read abandoned on cancel is
// kept pending and its data is returned by the next call.
// It must be driven by one goroutine at a time.
type CancelableReader struct {
	src     io.Reader
	buf     []byte
	rest    []byte
	err     error
	pending chan readResult
}

// NewCancelableReader wraps src.
func NewCancelableReader(src io.Reader) *CancelableReader {
	return &CancelableReader{src: src}
}

// Read implements io.Reader.
func (r *CancelableReader) Read(p []byte) (int, error) {
	return r.ReadContext(context.Background(), p)
}

// ReadContext implements lines.ContextReader.
func (r *CancelableReader) ReadContext(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(r.rest) == 0 && r.err == nil {
		if r.pending == nil {
			r.start(len(p))
		}
		select {
		case res := <-r.pending:
			r.pending = nil
			r.rest, r.err = r.buf[:res.n], res.err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	if len(r.rest) > 0 {
		return n, nil
	}
	err := r.err
	r.err = nil
	return n, err
}

func (r *CancelableReader) start(size int) {
	if cap(r.buf) < size {
		r.buf = make([]byte, size)
	}
	buf := r.buf[:size]
	ch := make(chan readResult, 1)
	go func() {
		n, err := r.src.Read(buf)
		ch <- readResult{n: n, err: err}
	}()
	r.pending = ch
}

// Close closes the source if it is an io.Closer.
func (r *CancelableReader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
