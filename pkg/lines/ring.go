package lines

import "bytes"

// ring is a fixed-capacity byte FIFO. push fails instead of overwriting.
type ring struct {
	buf         []byte
	start, size int
}

func newRing(capacity int) ring {
	return ring{buf: make([]byte, capacity)}
}

func (r *ring) len() int { return r.size }

func (r *ring) cap() int { return len(r.buf) }

func (r *ring) push(b byte) bool {
	if r.size == len(r.buf) {
		return false
	}
	r.buf[(r.start+r.size)%len(r.buf)] = b
	r.size++
	return true
}

// indexByte returns the offset from the front of the first c, or -1.
func (r *ring) indexByte(c byte) int {
	head, tail := r.spans()
	if n := bytes.IndexByte(head, c); n >= 0 {
		return n
	}
	if n := bytes.IndexByte(tail, c); n >= 0 {
		return len(head) + n
	}
	return -1
}

// read removes up to len(p) bytes from the front.
func (r *ring) read(p []byte) int {
	read := 0
	for len(p) > 0 && r.size > 0 {
		end := r.start + r.size
		if end > len(r.buf) {
			end = len(r.buf)
		}
		n := copy(p, r.buf[r.start:end])
		p = p[n:]
		r.start = (r.start + n) % len(r.buf)
		r.size -= n
		read += n
	}
	if r.size == 0 {
		r.start = 0
	}
	return read
}

func (r *ring) reset() {
	r.start, r.size = 0, 0
}

// spans returns the buffered bytes as two contiguous slices.
func (r *ring) spans() (head, tail []byte) {
	end := r.start + r.size
	if end <= len(r.buf) {
		return r.buf[r.start:end], nil
	}
	return r.buf[r.start:], r.buf[:end-len(r.buf)]
}
