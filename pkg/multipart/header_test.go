package multipart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-multipart/internal/multiscan"
)

func TestParseHeaderBlock_Basic(t *testing.T) {
	raw := "Content-Disposition: form-data; name=\"foo\"\r\nX-Custom: Value\r\n\r\nbody follows"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	res, err := parseHeaderBlock(buf)
	require.NoError(t, err)
	require.Equal(t, "foo", res.cdParams["name"])
	require.Equal(t, "Value", res.header.Get("x-custom"))
	require.Equal(t, string(buf.Bytes()), "body follows")
}

func TestParseHeaderBlock_LowercasesNames(t *testing.T) {
	raw := "Content-Type: text/plain\r\n\r\n"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	res, err := parseHeaderBlock(buf)
	require.NoError(t, err)
	for key := range res.header {
		require.Equal(t, key, lowerASCII(key))
	}
}

func TestParseHeaderBlock_BareLF(t *testing.T) {
	raw := "Content-Disposition: form-data; name=\"foo\"\n\nrest"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	res, err := parseHeaderBlock(buf)
	require.NoError(t, err)
	require.Equal(t, "foo", res.cdParams["name"])
}

func TestParseHeaderBlock_InvalidLine(t *testing.T) {
	raw := "not-a-header-line\r\n\r\n"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	_, err := parseHeaderBlock(buf)
	require.Error(t, err)
	var merr *Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, ErrInvalidHeader, merr.Kind)
}

func TestParseHeaderBlock_FilenameAndFilenameStarKeptSeparate(t *testing.T) {
	raw := "Content-Disposition: form-data; name=\"f\"; filename=\"a.txt\"; filename*=\"b.txt\"\r\n\r\n"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	res, err := parseHeaderBlock(buf)
	require.NoError(t, err)
	require.Equal(t, "a.txt", res.cdParams["filename"])
	require.Equal(t, "b.txt", res.cdParams["filename*"])
}

func TestParseHeaderBlock_EmptyQuotedFilenameRecognized(t *testing.T) {
	raw := "Content-Disposition: form-data; name=\"f\"; filename=\"\"\r\n\r\n"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	res, err := parseHeaderBlock(buf)
	require.NoError(t, err)
	filename, ok := res.cdParams["filename"]
	require.True(t, ok, "filename param should be present even when empty")
	require.Equal(t, "", filename)
}

func TestParseHeaderBlock_RepeatedHeaderAppends(t *testing.T) {
	raw := "X-Tag: one\r\nX-Tag: two\r\n\r\n"
	buf := multiscan.NewBuffer(multiscan.NewSliceSource([]byte(raw)), 64)

	res, err := parseHeaderBlock(buf)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, res.header.Values("x-tag"))
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
