package multipart

import "io"

// Reader is the pull-style byte source the decoder consumes. Read should
// return up to n bytes; returning a nil/empty slice with a nil error
// signals EOF, matching spec.md §6.2.
type Reader interface {
	Read(n int) ([]byte, error)
}

// Writer is the push-style sink the encoder writes to. WriteFile is only
// required when the form contains file-bearing parts; its absence on a
// form that needs it is a ProgrammerError raised before any I/O.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// FileWriter is implemented by a Writer that can stream part of an
// already-open file directly to the sink, e.g. via sendfile-style copy.
// WriteFile is asked to move length bytes starting at offset from file.
// When closeAfter is true the callee must close file once done
// (the encoder opened it itself from a Pathname); otherwise the caller
// that supplied the handle retains ownership.
type FileWriter interface {
	Writer
	WriteFile(file readerAtCloser, length int64, offset int64, closeAfter bool) (n int64, err error)
}

// readerAtCloser is the minimal surface WriteFile needs from an *os.File.
type readerAtCloser interface {
	io.ReaderAt
	io.Closer
}

// StdReader adapts a stdlib io.Reader to the pull-style Reader contract.
type StdReader struct {
	r io.Reader
}

// NewStdReader wraps r so it can be passed to Decode.
func NewStdReader(r io.Reader) *StdReader { return &StdReader{r: r} }

// Read pulls up to n bytes from the wrapped io.Reader. EOF is reported as
// (nil, nil), per the Reader contract; any other error is passed through.
func (s *StdReader) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	k, err := s.r.Read(buf)
	if k > 0 {
		return buf[:k], nil
	}
	if err == io.EOF {
		return nil, nil
	}
	return nil, err
}

// StdWriter adapts a stdlib io.Writer to the push-style Writer/FileWriter
// contract, streaming file bodies with io.Copy via an io.SectionReader.
type StdWriter struct {
	w io.Writer
}

// NewStdWriter wraps w so it can be passed to Encode.
func NewStdWriter(w io.Writer) *StdWriter { return &StdWriter{w: w} }

func (s *StdWriter) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *StdWriter) WriteFile(file readerAtCloser, length int64, offset int64, closeAfter bool) (int64, error) {
	if closeAfter {
		defer file.Close()
	}
	sr := io.NewSectionReader(file, offset, length)
	return io.Copy(s.w, sr)
}
