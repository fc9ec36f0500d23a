package multipart

import (
	"os"
)

// EncodeForm is the encoder-side counterpart of Form: an ordered sequence
// of EncodePart values per name, iterated in the order they should appear
// on the wire.
type EncodeForm map[string][]EncodePart

// EncodeOptions configures Encode. A zero ChunkSize selects 4096 and a
// negative one panics; the value is not passed to the Writer, and
// StdWriter.WriteFile copies file bodies with io.Copy.
type EncodeOptions struct {
	ChunkSize int
}

func (o EncodeOptions) normalized() EncodeOptions {
	if o.ChunkSize == 0 {
		o.ChunkSize = defaultChunkSize
	}
	if o.ChunkSize < 0 {
		panicf("chunksize must be positive, got %d", o.ChunkSize)
	}
	return o
}

// Encode serializes form to writer using boundary as the part delimiter,
// implementing spec.md §4.6. It returns the number of bytes written.
//
// Body dispatch per part follows the priority table in spec.md §3: an
// open FileSource wins over Pathname, which wins over a Scalar; a part
// with Filename set but neither FileSource nor Pathname is silently
// skipped (and logged at warn level, per spec.md §9's suggested hook).
func Encode(writer Writer, form EncodeForm, boundary string, opts EncodeOptions) (int64, error) {
	if err := ValidateBoundary(boundary, false); err != nil {
		panicf("invalid boundary: %v", err)
	}
	if writer == nil {
		panicf("writer must not be nil")
	}
	opts = opts.normalized()

	if needsFileWriter(form) {
		if _, ok := writer.(FileWriter); !ok {
			panicf("form contains file-bearing parts but writer does not implement FileWriter")
		}
	}

	var total int64
	dashBoundary := "--" + boundary

	for name, parts := range form {
		for _, part := range parts {
			n, err := encodeOnePart(writer, dashBoundary, name, part)
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err := writer.Write([]byte(dashBoundary + "--"))
	total += int64(n)
	if err != nil {
		return total, wrapErr(ErrWriterFailure, err, "writer failed on final delimiter")
	}
	return total, nil
}

func needsFileWriter(form EncodeForm) bool {
	for _, parts := range form {
		for _, p := range parts {
			if p.HasFile && (p.FileSource != nil || p.Pathname != "") {
				return true
			}
		}
	}
	return false
}

func encodeOnePart(writer Writer, dashBoundary, name string, part EncodePart) (int64, error) {
	if part.HasFile && part.FileSource == nil && part.Pathname == "" {
		Logger.Warn().Str("name", name).Msg("multipart: skipping part with filename but no body source")
		return 0, nil
	}
	if !part.HasFile && part.Scalar == nil {
		return 0, nil
	}

	var total int64
	buf := make([]byte, 0, 256)
	buf = append(buf, dashBoundary...)
	buf = appendCRLF(buf)

	for key, val := range part.Header {
		if key == "" || containsWhitespace(key) {
			continue
		}
		buf = appendHeaderLine(buf, key, val)
	}

	if part.HasFile {
		buf = appendFileContentDisposition(buf, name, part.Filename)
		n, err := writer.Write(buf)
		total += int64(n)
		if err != nil {
			return total, wrapErr(ErrWriterFailure, err, "writer failed on part header")
		}

		n64, err := writeFileBody(writer, part)
		total += n64
		if err != nil {
			return total, err
		}
	} else {
		data := part.Scalar.String()
		buf = appendDataContentDisposition(buf, name)
		buf = append(buf, data...)
		n, err := writer.Write(buf)
		total += int64(n)
		if err != nil {
			return total, wrapErr(ErrWriterFailure, err, "writer failed on part body")
		}
	}

	n, err := writer.Write([]byte("\r\n"))
	total += int64(n)
	if err != nil {
		return total, wrapErr(ErrWriterFailure, err, "writer failed on part terminator")
	}
	return total, nil
}

func writeFileBody(writer Writer, part EncodePart) (int64, error) {
	fw := writer.(FileWriter)

	file := part.FileSource
	closeAfter := false
	if file == nil {
		f, err := os.Open(part.Pathname)
		if err != nil {
			return 0, wrapErr(ErrFileOpenFailed, err, "failed to open pathname for encoding")
		}
		file = f
		closeAfter = true
	}

	info, err := file.Stat()
	if err != nil {
		if closeAfter {
			file.Close()
		}
		return 0, wrapErr(ErrFileOpenFailed, err, "failed to stat file for encoding")
	}

	n, err := fw.WriteFile(file, info.Size(), 0, closeAfter)
	if err != nil {
		return n, wrapErr(ErrWriterFailure, err, "writer failed streaming file body")
	}
	return n, nil
}

func containsWhitespace(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return true
		}
	}
	return false
}
