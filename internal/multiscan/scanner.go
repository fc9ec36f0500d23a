package multiscan

import (
	"bytes"
	"errors"
)

// ErrBodyTooLarge is returned by ScanBody when the accumulated unresolved
// buffer has reached maxSize bytes and needs a refill (or when the sink's
// own written-byte counter exceeds maxSize). The
// caller (pkg/multipart) re-wraps this into its typed *Error.
var ErrBodyTooLarge = errors.New("multiscan: body exceeds maxsize")

// ErrInsufficientData is returned by ScanBody when the Source reaches EOF
// before a dash-boundary delimiter is located.
var ErrInsufficientData = errors.New("multiscan: source exhausted before delimiter")

// Sink receives body bytes as they're confirmed not to be part of a
// delimiter. Implementations (in-memory, temp-file) are expected to track
// their own written-byte count and return ErrBodyTooLarge once it exceeds
// their configured maxsize, per spec.md §4.4's "both must be enforced" rule.
type Sink interface {
	Write(p []byte) error
}

// ScanBody streams bytes from buf into sink up to (but not including) the
// next "\r\n--dashBoundary" or "\n--dashBoundary" delimiter, implementing
// spec.md §4.4. maxSize <= 0 means unbounded. On success it returns
// more=true if the delimiter was a part delimiter (more parts follow) or
// more=false if it was the close-delimiter ("--dashBoundary--").
func ScanBody(buf *Buffer, dashBoundary string, maxSize int64, sink Sink) (more bool, err error) {
	db := []byte(dashBoundary)

	// The buffer's unconsumed prefix is always exactly the unresolved
	// carry-over: every segment confirmed to be plain data is written to
	// the sink and immediately consumed, so scanning always starts at
	// index 0 of the current buffer contents.
	for {
		data := buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			if maxSize > 0 && int64(len(data)) >= maxSize {
				return false, ErrBodyTooLarge
			}
			ok, rerr := buf.Refill()
			if rerr != nil {
				return false, rerr
			}
			if !ok {
				return false, ErrInsufficientData
			}
			continue
		}

		needed := idx + 1 + len(db) + 2
		if needed > len(data) {
			if maxSize > 0 && int64(len(data)) >= maxSize {
				return false, ErrBodyTooLarge
			}
			ok, rerr := buf.Refill()
			if rerr != nil {
				return false, rerr
			}
			if !ok {
				return false, ErrInsufficientData
			}
			continue
		}

		rest := data[idx+1:]
		if bytes.HasPrefix(rest, db) {
			end := idx
			if idx > 0 && data[idx-1] == '\r' {
				end = idx - 1
			}
			if err := sink.Write(data[:end]); err != nil {
				return false, err
			}
			return scanAfterDashBoundary(buf, idx+1+len(db), maxSize)
		}

		if err := sink.Write(data[:idx+1]); err != nil {
			return false, err
		}
		buf.Consume(idx + 1)
	}
}

// scanAfterDashBoundary resolves whether the delimiter just matched is the
// close-delimiter ("--" immediately following) or an ordinary part
// delimiter (optionally followed by transport padding then CR?LF),
// refilling as needed since either can straddle a chunk boundary.
func scanAfterDashBoundary(buf *Buffer, afterBoundary int, maxSize int64) (bool, error) {
	for {
		data := buf.Bytes()
		if len(data) >= afterBoundary+2 {
			if data[afterBoundary] == '-' && data[afterBoundary+1] == '-' {
				buf.SetRemainder(data[afterBoundary+2:])
				return false, nil
			}
			break
		}
		if maxSize > 0 && int64(len(data)) >= maxSize {
			return false, ErrBodyTooLarge
		}
		ok, err := buf.Refill()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrInsufficientData
		}
	}

	p := afterBoundary
	for {
		data := buf.Bytes()
		for p < len(data) && (data[p] == ' ' || data[p] == '\t') {
			p++
		}
		if p < len(data) && (data[p] == '\r' || data[p] == '\n') {
			break
		}
		if p < len(data) {
			// Unexpected byte where padding or CRLF was expected; stop
			// skipping here rather than failing — spec only asks that
			// padding be tolerated, not strictly validated.
			break
		}
		if maxSize > 0 && int64(len(data)) >= maxSize {
			return false, ErrBodyTooLarge
		}
		ok, err := buf.Refill()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrInsufficientData
		}
	}

	data := buf.Bytes()
	if p < len(data) && data[p] == '\r' {
		p++
	}
	for p >= len(data) {
		if maxSize > 0 && int64(len(data)) >= maxSize {
			return false, ErrBodyTooLarge
		}
		ok, err := buf.Refill()
		if err != nil {
			return false, err
		}
		if !ok {
			// Source exhausted right after the CR with no LF to follow;
			// leave p where it is and let the caller's next read surface
			// the real failure (e.g. a missing header block).
			data = buf.Bytes()
			buf.SetRemainder(data[p:])
			return true, nil
		}
		data = buf.Bytes()
	}
	if p < len(data) && data[p] == '\n' {
		p++
	}
	buf.SetRemainder(data[p:])
	return true, nil
}
