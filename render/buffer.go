package render

import (
	"sync/atomic"
	"unicode/utf8"
)

// minBufferCap is the smallest capacity allocated for a non-empty Buffer.
const minBufferCap = 64

// Buffer accumulates the output of one render call.
//
// A Buffer is a single contiguous, growable byte region. Its contents are
// always valid UTF-8 when observed from outside this package: filters may
// leave the region inconsistent mid-operation, but must repair it before
// returning. A Buffer is exclusively owned by one render call and must not
// be shared between goroutines.
type Buffer struct {
	buf []byte
}

// NewBuffer creates an empty Buffer. No storage is allocated until the
// first write.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferSize creates an empty Buffer with at least n bytes of capacity.
func NewBufferSize(n int) *Buffer {
	if n <= 0 {
		return &Buffer{}
	}
	return &Buffer{buf: make([]byte, 0, n)}
}

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the capacity of the underlying storage.
func (b *Buffer) Cap() int { return cap(b.buf) }

// String returns the accumulated contents. The result shares no storage
// with the Buffer.
func (b *Buffer) String() string { return string(b.buf) }

// Bytes returns the accumulated contents as a mutable byte slice bounded
// to [0, Len()). Mutations must keep the contents valid UTF-8. The slice
// is invalidated by the next write to the Buffer.
func (b *Buffer) Bytes() []byte { return b.buf }

// Clear discards the contents but keeps the allocated storage for reuse.
func (b *Buffer) Clear() { b.buf = b.buf[:0] }

// Grow ensures the Buffer can accept n more bytes without reallocating.
func (b *Buffer) Grow(n int) {
	if n <= 0 {
		return
	}
	b.grow(n)
}

// grow reallocates geometrically so that total append cost stays linear
// in the final output size.
func (b *Buffer) grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	c := 2 * cap(b.buf)
	if c < need {
		c = need
	}
	if c < minBufferCap {
		c = minBufferCap
	}
	nb := make([]byte, len(b.buf), c)
	copy(nb, b.buf)
	b.buf = nb
}

// WriteString appends s to the Buffer. It never fails; running out of
// memory is fatal, not an error the render call can handle.
func (b *Buffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Write appends p to the Buffer, implementing io.Writer so encoders can
// stream directly into it. The error is always nil.
func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteByte appends a single byte. The caller is responsible for keeping
// the contents valid UTF-8 (c must be ASCII or part of a complete rune
// sequence written around it).
func (b *Buffer) WriteByte(c byte) error {
	b.grow(1)
	b.buf = append(b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Buffer) WriteRune(r rune) (int, error) {
	b.grow(utf8.UTFMax)
	n := len(b.buf)
	b.buf = utf8.AppendRune(b.buf, r)
	return len(b.buf) - n, nil
}

// setLen truncates or restores the Buffer to n bytes.
//
// This is the trusted mutator the filters rely on: the caller must have
// independently verified that [0, n) is valid UTF-8 and that n does not
// exceed a length the Buffer actually held. It stays unexported so the
// invariant can only be broken, and must be repaired, inside this package.
func (b *Buffer) setLen(n int) {
	b.buf = b.buf[:n]
}

// SizeHint tracks the output size of repeated renders so later calls can
// allocate the whole Buffer up front. It is safe for concurrent use; a
// single hint is typically shared by every render of one template.
type SizeHint struct {
	v atomic.Int64
}

// Get returns the suggested initial capacity: the largest size recorded
// so far plus a small margin, or zero if nothing has been recorded.
func (h *SizeHint) Get() int {
	n := int(h.v.Load())
	return n + n/8
}

// Update records the final size of a completed render. Smaller sizes than
// the current record are ignored.
func (h *SizeHint) Update(n int) {
	for {
		cur := h.v.Load()
		if int64(n) <= cur {
			return
		}
		if h.v.CompareAndSwap(cur, int64(n)) {
			return
		}
	}
}
