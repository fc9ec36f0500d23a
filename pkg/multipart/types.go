// Package multipart encodes and decodes the multipart/form-data media type
// (RFC 2046 §5.1, RFC 7578) against a pull-style reader and a push-style
// writer, spilling file-bearing parts to temporary storage while keeping
// small parts in memory.
//
// # Thread Safety
//
// A single Decoder or Encoder call owns its own context and touches no
// shared mutable state; concurrent Decode/Encode calls from different
// goroutines are safe as long as they don't share a Part or Form value.
package multipart

import (
	"os"
	"strings"
)

// Header is an ordered, repeatable list of header values keyed by lowercase
// header name, mirroring the shape of net/textproto.MIMEHeader but
// preserving repeat order per key as spec'd.
type Header map[string][]string

// Get returns the first value for key (case-insensitive lookup against the
// already-lowercased map), or "" if absent.
func (h Header) Get(key string) string {
	vals := h[strings.ToLower(key)]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// Values returns all values stored for key.
func (h Header) Values(key string) []string {
	return h[strings.ToLower(key)]
}

// Add appends value to the sequence stored under key.
func (h Header) Add(key, value string) {
	k := strings.ToLower(key)
	h[k] = append(h[k], value)
}

// Part is one decoded form part.
//
// Exactly one of Data or File/Pathname is populated for a decoded part:
// Data holds the body when HasFile is false, File+Pathname point at a
// temp file on disk when HasFile is true (the filename parameter was
// present, even if its value is the empty string).
type Part struct {
	Name     string
	Filename string
	HasFile  bool // Filename parameter was present on the wire (may be "")
	Header   Header

	Data string // in-memory body, valid when HasFile is false

	File     *os.File // open file handle, positioned at 0, valid when HasFile is true
	Pathname string    // filesystem path backing File

	guard *fileGuard
}

// Close releases the resources held by a decoded file-bearing part: it
// closes File (if open) and runs the temp-file guard, removing Pathname
// from disk unless Keep has disarmed the guard. Calling Close is required for callers that do not
// otherwise move or fully consume the temp file; it is always safe to call,
// including on a Part with no file.
func (p *Part) Close() error {
	var err error
	if p.File != nil {
		err = p.File.Close()
		p.File = nil
	}
	if p.guard != nil {
		p.guard.release()
	}
	return err
}

// Keep disarms the lifetime guard without removing Pathname, transferring
// ownership of the temp file to the caller. The caller becomes responsible
// for eventually removing Pathname from disk.
func (p *Part) Keep() {
	if p.guard != nil {
		p.guard.disarm()
	}
}

// Form is a decoded set of named, ordered part sequences (EncodeForm is
// the encoder-side counterpart).
// Iteration order of the map itself is unspecified, as in the spec; the
// order of each name's slice reflects wire/insertion order.
type Form map[string][]*Part

// Value returns the first non-file part's Data under name along with
// whether a (non-file) part with that name exists.
func (f Form) Value(name string) (string, bool) {
	for _, p := range f[name] {
		if !p.HasFile {
			return p.Data, true
		}
	}
	return "", false
}

// Values returns every in-memory Data value under name, in wire order,
// skipping any file-bearing parts that share the name.
func (f Form) Values(name string) []string {
	var out []string
	for _, p := range f[name] {
		if !p.HasFile {
			out = append(out, p.Data)
		}
	}
	return out
}

// File returns the first file-bearing part under name.
func (f Form) File(name string) (*Part, bool) {
	for _, p := range f[name] {
		if p.HasFile {
			return p, true
		}
	}
	return nil, false
}

// Close releases every part in the form. Call this on any decode failure
// path the caller observes after Decode has returned, or whenever a
// successfully decoded form is no longer needed.
func (f Form) Close() error {
	var first error
	for _, parts := range f {
		for _, p := range parts {
			if err := p.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

// Scalar is a tagged union of the value types the encoder accepts for a
// data-backed (non-file) part: string, integer, floating point, or boolean.
// Booleans render as "true"/"false"; numbers render via their natural
// textual representation.
type Scalar struct {
	kind scalarKind
	s    string
	i    int64
	f    float64
	b    bool
}

type scalarKind int

const (
	scalarString scalarKind = iota
	scalarInt
	scalarFloat
	scalarBool
)

// StringScalar wraps a string value.
func StringScalar(s string) Scalar { return Scalar{kind: scalarString, s: s} }

// IntScalar wraps an integer value.
func IntScalar(i int64) Scalar { return Scalar{kind: scalarInt, i: i} }

// FloatScalar wraps a floating point value.
func FloatScalar(f float64) Scalar { return Scalar{kind: scalarFloat, f: f} }

// BoolScalar wraps a boolean value; it stringifies as "true"/"false".
func BoolScalar(b bool) Scalar { return Scalar{kind: scalarBool, b: b} }

// EncodePart is one entry in an encoder-side Form's value sequence: either
// a Scalar (encoded as in-memory data) or a file-bearing record selected
// by the priority rule in FileSource/Pathname/Filename.
type EncodePart struct {
	Header map[string]interface{}

	// Scalar, when non-nil and HasFile is false, is encoded as in-memory
	// data, named by the form key and with no filename parameter.
	Scalar *Scalar

	// HasFile marks this as file-bearing, with Filename (which may be "")
	// as its filename parameter. Body source priority: FileSource first,
	// then Pathname (opened and closed by the encoder), else the part is
	// silently skipped.
	Filename   string
	HasFile    bool
	FileSource *os.File
	Pathname   string
}
