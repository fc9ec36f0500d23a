// Package multiscan implements the low-level, allocation-conscious pieces
// used by the multipart decoder: a chunked pull-buffer and a
// CRLF/bare-LF-tolerant delimiter scanner. It has no notion of
// Content-Disposition or form structure — that lives one layer up in
// pkg/multipart, the way the teacher splits raw byte scanning
// (internal/fastparser) from the public message types (pkg/http).
package multiscan

// Source is the minimal pull contract the buffer refills from: return up
// to n bytes, or a nil slice with a nil error to signal EOF.
type Source interface {
	Read(n int) ([]byte, error)
}

// Buffer is a carry-over byte buffer between reads from a Source. Scanners
// consume a contiguous prefix of Bytes() and call Consume to advance past
// it; Refill requests chunkSize bytes and appends whatever chunk the Source
// returns (a one-shot SliceSource returns its whole slice).
type Buffer struct {
	src       Source
	chunkSize int
	buf       []byte
	eof       bool
}

// NewBuffer returns a Buffer pulling chunkSize bytes at a time from src.
// chunkSize must be positive.
func NewBuffer(src Source, chunkSize int) *Buffer {
	if chunkSize <= 0 {
		panic("multiscan: chunkSize must be positive")
	}
	return &Buffer{src: src, chunkSize: chunkSize}
}

// Bytes returns the currently buffered, unconsumed bytes. The returned
// slice is only valid until the next Refill or Consume call.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of unconsumed bytes currently buffered.
func (b *Buffer) Len() int { return len(b.buf) }

// AtEOF reports whether the underlying Source has already signaled EOF.
func (b *Buffer) AtEOF() bool { return b.eof }

// Consume drops the first n bytes of the buffered prefix.
func (b *Buffer) Consume(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.buf) {
		b.buf = b.buf[:0]
		return
	}
	b.buf = append(b.buf[:0], b.buf[n:]...)
}

// SetRemainder replaces the buffered bytes wholesale, used by the body
// scanner when it has located a terminator and knows exactly what trails it.
func (b *Buffer) SetRemainder(rest []byte) {
	b.buf = append(b.buf[:0], rest...)
}

// Refill pulls one chunk from the Source and appends it to the buffer.
// It returns (false, nil) on clean EOF (nothing pulled, nothing to append),
// and (false, err) if the Source itself returned an error. A successful
// pull returns (true, nil).
func (b *Buffer) Refill() (bool, error) {
	if b.eof {
		return false, nil
	}
	chunk, err := b.src.Read(b.chunkSize)
	if err != nil {
		return false, err
	}
	if len(chunk) == 0 {
		b.eof = true
		return false, nil
	}
	b.buf = append(b.buf, chunk...)
	return true, nil
}
