package multipart

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shapestone/shape-multipart/internal/multiscan"
)

const defaultChunkSize = 4096

// DefaultFileTemplate is the filetmpl used when DecodeOptions.FileTemplate
// is empty. "_XXXXXX" (six random filesystem-safe characters) is always
// appended to whatever template is in effect, per spec.md §6.2.
const DefaultFileTemplate = "/tmp/go_multipart_form"

// DecodeOptions configures Decode. The zero value selects the documented
// defaults: chunksize 4096, unbounded MaxSize, DefaultFileTemplate.
type DecodeOptions struct {
	FileTemplate string
	MaxSize      int64
	ChunkSize    int
}

func (o DecodeOptions) normalized() DecodeOptions {
	if o.FileTemplate == "" {
		o.FileTemplate = DefaultFileTemplate
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = defaultChunkSize
	}
	if o.ChunkSize < 0 {
		panicf("chunksize must be positive, got %d", o.ChunkSize)
	}
	return o
}

// Decode reads a multipart/form-data body from reader and reconstructs it
// into a Form, per spec.md §4.5/§6.2. File-bearing parts (those with a
// filename, including an empty one) are spilled to a temp file named
// "<FileTemplate>_<6 random chars>"; every other part is kept as an
// in-memory string.
//
// On any failure, every part already captured during this call is closed
// and its temp file removed before the error is returned — no leaks
// survive a failed Decode.
func Decode(reader Reader, boundary string, opts DecodeOptions) (Form, error) {
	if err := ValidateBoundary(boundary, false); err != nil {
		panicf("invalid boundary: %v", err)
	}
	if reader == nil {
		panicf("reader must not be nil")
	}
	opts = opts.normalized()

	bctx := newBoundaryContext(boundary)
	buf := multiscan.NewBuffer(reader, opts.ChunkSize)

	form := Form{}
	if err := discardPreamble(buf, bctx); err != nil {
		return nil, err
	}

	for {
		more, err := decodeOnePart(buf, bctx, opts, form)
		if err != nil {
			discardForm(form)
			return nil, err
		}
		if !more {
			break
		}
	}

	if err := discardEpilogue(buf); err != nil {
		discardForm(form)
		return nil, err
	}

	return form, nil
}

// DecodeBytes decodes an in-memory multipart body in one shot, using the
// one-shot Source semantics of spec.md §4.2.
func DecodeBytes(data []byte, boundary string, opts DecodeOptions) (Form, error) {
	if err := ValidateBoundary(boundary, false); err != nil {
		panicf("invalid boundary: %v", err)
	}
	opts = opts.normalized()

	bctx := newBoundaryContext(boundary)
	buf := multiscan.NewBuffer(multiscan.NewSliceSource(data), opts.ChunkSize)

	form := Form{}
	if err := discardPreamble(buf, bctx); err != nil {
		return nil, err
	}
	for {
		more, err := decodeOnePart(buf, bctx, opts, form)
		if err != nil {
			discardForm(form)
			return nil, err
		}
		if !more {
			break
		}
	}
	buf.SetRemainder(nil)
	return form, nil
}

// discardPreamble reads lines until one equals exactly dashBoundary,
// failing PrematureClose if the close-delimiter appears first.
func discardPreamble(buf *multiscan.Buffer, bctx *boundaryContext) error {
	closeLine := bctx.dashBoundary + "--"
	for {
		line, err := readLine(buf)
		if err != nil {
			return err
		}
		s := string(line)
		if s == bctx.dashBoundary {
			return nil
		}
		if s == closeLine {
			return newErr(ErrPrematureClose, "close-delimiter seen before any body part")
		}
		// unknown preamble line, drop it
	}
}

// discardEpilogue drains the remaining source until EOF.
func discardEpilogue(buf *multiscan.Buffer) error {
	for {
		ok, err := buf.Refill()
		if err != nil {
			return wrapErr(ErrReaderFailure, err, "reader failed while discarding epilogue")
		}
		if !ok {
			return nil
		}
		buf.Consume(buf.Len())
	}
}

// decodeOnePart parses one part's header block and body, appending it to
// form, and reports whether another part follows.
func decodeOnePart(buf *multiscan.Buffer, bctx *boundaryContext, opts DecodeOptions, form Form) (more bool, err error) {
	hdr, err := parseHeaderBlock(buf)
	if err != nil {
		return false, err
	}

	name, ok := hdr.cdParams["name"]
	if !ok {
		return false, newErr(ErrMissingName, "Content-Disposition lacked a name parameter")
	}

	filename, hasFile := hdr.cdParams["filename"]
	if star, ok := hdr.cdParams["filename*"]; ok {
		filename = star
		hasFile = true
	}

	part := &Part{Name: name, Header: hdr.header, Filename: filename, HasFile: hasFile}

	if hasFile {
		f, pathname, cerr := createTempFile(opts.FileTemplate)
		if cerr != nil {
			return false, cerr
		}
		sink := newFileSink(f, opts.MaxSize)
		more, err = scanBody(buf, bctx, opts.MaxSize, sink)
		if err != nil {
			f.Close()
			os.Remove(pathname)
			return false, err
		}
		if _, serr := f.Seek(0, 0); serr != nil {
			f.Close()
			os.Remove(pathname)
			return false, wrapErr(ErrTempFileFailure, serr, "failed to rewind temp file")
		}
		part.File = f
		part.Pathname = pathname
		part.guard = newFileGuard(pathname)
	} else {
		sink := newMemorySink(opts.MaxSize)
		more, err = scanBody(buf, bctx, opts.MaxSize, sink)
		if err != nil {
			return false, err
		}
		part.Data = sink.String()
	}

	form[name] = append(form[name], part)
	return more, nil
}

func scanBody(buf *multiscan.Buffer, bctx *boundaryContext, maxSize int64, sink multiscan.Sink) (bool, error) {
	more, err := multiscan.ScanBody(buf, bctx.dashBoundary, maxSize, sink)
	if err != nil {
		switch err {
		case multiscan.ErrBodyTooLarge:
			return false, newErr(ErrBodyTooLarge, "part body exceeded maxsize")
		case multiscan.ErrInsufficientData:
			return false, newErr(ErrInsufficientData, "source exhausted before a delimiter was found")
		default:
			if merr, ok := err.(*Error); ok {
				return false, merr
			}
			return false, wrapErr(ErrReaderFailure, err, "reader failed while scanning part body")
		}
	}
	return more, nil
}

func createTempFile(template string) (*os.File, string, error) {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	pathname := template + "_" + suffix
	f, err := os.OpenFile(pathname, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, "", wrapErr(ErrTempFileFailure, err, "failed to create temp file")
	}
	return f, pathname, nil
}

// discardForm walks every already-captured part, closing open file
// handles and removing temp files, per spec.md §4.5's failure policy.
// Cleanup errors are logged, not returned — the caller always propagates
// the original decode error.
func discardForm(form Form) {
	for _, parts := range form {
		for _, p := range parts {
			if err := p.Close(); err != nil {
				Logger.Warn().Err(errors.Wrap(err, "discardForm: failed to release part")).
					Str("name", p.Name).Str("pathname", p.Pathname).Msg("multipart: cleanup error")
			}
		}
	}
}
