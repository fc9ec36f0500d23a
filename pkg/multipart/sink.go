package multipart

import (
	"os"

	"github.com/shapestone/shape-multipart/internal/multiscan"
)

// memorySink accumulates a part's body in memory, enforcing maxSize
// against the running written-byte count as spec.md §4.4 requires.
type memorySink struct {
	buf     []byte
	written int64
	maxSize int64
}

func newMemorySink(maxSize int64) *memorySink {
	return &memorySink{maxSize: maxSize}
}

func (s *memorySink) Write(p []byte) error {
	s.written += int64(len(p))
	if s.maxSize > 0 && s.written > s.maxSize {
		return multiscan.ErrBodyTooLarge
	}
	s.buf = append(s.buf, p...)
	return nil
}

func (s *memorySink) String() string { return string(s.buf) }

// fileSink streams a part's body into an already-created temp file,
// enforcing maxSize the same way memorySink does.
type fileSink struct {
	f       *os.File
	written int64
	maxSize int64
}

func newFileSink(f *os.File, maxSize int64) *fileSink {
	return &fileSink{f: f, maxSize: maxSize}
}

func (s *fileSink) Write(p []byte) error {
	s.written += int64(len(p))
	if s.maxSize > 0 && s.written > s.maxSize {
		return multiscan.ErrBodyTooLarge
	}
	_, err := s.f.Write(p)
	if err != nil {
		return wrapErr(ErrTempFileFailure, err, "failed writing part body to temp file")
	}
	return nil
}
