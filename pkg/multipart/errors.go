package multipart

import "fmt"

// Kind identifies the taxonomy of errors this package can return from
// Decode/Encode. ProgrammerError conditions are not represented here —
// those panic synchronously at the API boundary before any I/O occurs.
type Kind int

const (
	// ErrUnknown is the zero value and should not appear in returned errors.
	ErrUnknown Kind = iota
	// ErrInsufficientData means the source reached EOF before a terminator
	// (dash-boundary or close-delimiter) was located.
	ErrInsufficientData
	// ErrInvalidHeader means a header line failed the relaxed header grammar.
	ErrInvalidHeader
	// ErrMissingName means a part's Content-Disposition lacked a name parameter.
	ErrMissingName
	// ErrPrematureClose means the close-delimiter appeared before any body part.
	ErrPrematureClose
	// ErrBodyTooLarge means a part body exceeded the configured MaxSize.
	ErrBodyTooLarge
	// ErrReaderFailure wraps an error returned by the caller-supplied reader.
	ErrReaderFailure
	// ErrTempFileFailure means a temp file could not be created, written, or rewound.
	ErrTempFileFailure
	// ErrInvalidPart means an encoder input part had a field of the wrong shape.
	ErrInvalidPart
	// ErrFileOpenFailed means a pathname-backed encoder part could not be opened.
	ErrFileOpenFailed
	// ErrWriterFailure wraps an error returned by the caller-supplied writer.
	ErrWriterFailure
	// ErrInvalidBoundary means the boundary string failed the bchars grammar.
	ErrInvalidBoundary
)

func (k Kind) String() string {
	switch k {
	case ErrInsufficientData:
		return "InsufficientData"
	case ErrInvalidHeader:
		return "InvalidHeader"
	case ErrMissingName:
		return "MissingName"
	case ErrPrematureClose:
		return "PrematureClose"
	case ErrBodyTooLarge:
		return "BodyTooLarge"
	case ErrReaderFailure:
		return "ReaderFailure"
	case ErrTempFileFailure:
		return "TempFileFailure"
	case ErrInvalidPart:
		return "InvalidPart"
	case ErrFileOpenFailed:
		return "FileOpenFailed"
	case ErrWriterFailure:
		return "WriterFailure"
	case ErrInvalidBoundary:
		return "InvalidBoundary"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by Decode and Encode for every
// DecodeError/EncodeError condition named in the taxonomy. Position is 0
// and Line is empty when not applicable.
type Error struct {
	Kind     Kind
	Message  string
	Line     string // offending header line, for ErrInvalidHeader
	Position int    // byte offset, 0 if unknown
	Cause    error  // wrapped underlying error, if any
}

func (e *Error) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("multipart: %s: %s (line %q)", e.Kind, e.Message, e.Line)
	}
	if e.Position > 0 {
		return fmt.Sprintf("multipart: %s: %s (at byte %d)", e.Kind, e.Message, e.Position)
	}
	return fmt.Sprintf("multipart: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &multipart.Error{Kind: multipart.ErrBodyTooLarge}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func newErrf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapErr(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// ProgrammerError is panicked (never returned) for caller-contract
// violations detected before any I/O: an invalid boundary, a writer missing
// a required method, or a negative chunksize (zero selects the default).
type ProgrammerError struct {
	Message string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("multipart: programmer error: %s", e.Message)
}

func panicf(format string, args ...interface{}) {
	panic(&ProgrammerError{Message: fmt.Sprintf(format, args...)})
}
