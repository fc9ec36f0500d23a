package multipart

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/shapestone/shape-multipart/internal/multiscan"
)

// contentDispositionParam extracts key=value pairs from a header value
// using the permissive pattern spec.md §4.3/§9 mandates verbatim:
// ([^\s]+)="?([^"]+)"? — deliberately tolerant of unquoted and
// oddly-quoted values, matching the source behavior the spec calls out
// as worth preserving bit-for-bit rather than replacing with a stricter
// RFC 2045 parameter grammar.
var contentDispositionParam = regexp.MustCompile(`([^\s]+)="?([^"]+)"?`)

// contentDispositionEmptyParam catches key="" explicitly: the mandated
// pattern above requires at least one non-quote character inside the
// value, so it never matches an explicitly empty quoted value (e.g.
// filename="") on its own.
var contentDispositionEmptyParam = regexp.MustCompile(`([^\s=]+)=""`)

// headerResult is the parsed header block for one part, plus the
// Content-Disposition parameters promoted to top-level fields per
// spec.md §4.3.
type headerResult struct {
	header   Header
	cdParams map[string]string
}

// parseHeaderBlock consumes bytes from buf up to and including the first
// blank line, implementing spec.md §4.3. The relaxed grammar is:
// "field-name *WSP \":\" *WSP field-value *WSP (CR? LF)"; a line that
// doesn't match (no colon) is a fatal ErrInvalidHeader. Header block
// termination is the sequence of a blank line (bare CRLF or LF).
func parseHeaderBlock(buf *multiscan.Buffer) (*headerResult, error) {
	res := &headerResult{header: Header{}, cdParams: map[string]string{}}

	for {
		line, err := readLine(buf)
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			return res, nil
		}

		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, &Error{Kind: ErrInvalidHeader, Message: "missing ':' in header line", Line: string(line)}
		}

		name := strings.ToLower(strings.TrimSpace(string(line[:colon])))
		if name == "" {
			return nil, &Error{Kind: ErrInvalidHeader, Message: "empty header field-name", Line: string(line)}
		}
		value := strings.TrimSpace(string(line[colon+1:]))
		res.header.Add(name, value)

		if name == "content-disposition" {
			for _, m := range contentDispositionEmptyParam.FindAllStringSubmatch(value, -1) {
				res.cdParams[strings.ToLower(m[1])] = ""
			}
			for _, m := range contentDispositionParam.FindAllStringSubmatch(value, -1) {
				res.cdParams[strings.ToLower(m[1])] = m[2]
			}
		}
	}
}

// readLine reads bytes up to and including the next CR?LF or bare LF,
// refilling buf as needed, and returns the line with the line ending
// stripped. Reaching EOF before any line ending is ErrInsufficientData.
func readLine(buf *multiscan.Buffer) ([]byte, error) {
	for {
		data := buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx >= 0 {
			end := idx
			if idx > 0 && data[idx-1] == '\r' {
				end = idx - 1
			}
			line := append([]byte(nil), data[:end]...)
			buf.Consume(idx + 1)
			return line, nil
		}
		ok, err := buf.Refill()
		if err != nil {
			return nil, wrapErr(ErrReaderFailure, err, "reader failed while scanning header line")
		}
		if !ok {
			return nil, newErr(ErrInsufficientData, "source exhausted while scanning for a header line terminator")
		}
	}
}
