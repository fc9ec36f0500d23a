package multipart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader_GetIsCaseInsensitiveOnStoredKey(t *testing.T) {
	h := Header{}
	h.Add("X-Meta", "one")
	h.Add("X-Meta", "two")

	require.Equal(t, "one", h.Get("x-meta"))
	require.Equal(t, "one", h.Get("X-META"))
	require.Equal(t, []string{"one", "two"}, h.Values("x-meta"))
}

func TestHeader_GetMissingKey(t *testing.T) {
	h := Header{}
	require.Equal(t, "", h.Get("absent"))
	require.Nil(t, h.Values("absent"))
}

func TestForm_ValueSkipsFileParts(t *testing.T) {
	f := Form{
		"f": {{Name: "f", HasFile: true, Filename: "a.txt"}},
	}
	_, ok := f.Value("f")
	require.False(t, ok)
}

func TestForm_ValuesSkipsFilePartsAmongScalars(t *testing.T) {
	f := Form{
		"f": {
			{Name: "f", Data: "one"},
			{Name: "f", HasFile: true, Filename: "a.txt"},
			{Name: "f", Data: "two"},
		},
	}
	require.Equal(t, []string{"one", "two"}, f.Values("f"))
}

func TestForm_FileReturnsFirstFileBearingPart(t *testing.T) {
	f := Form{
		"f": {
			{Name: "f", Data: "scalar"},
			{Name: "f", HasFile: true, Filename: "a.txt"},
			{Name: "f", HasFile: true, Filename: "b.txt"},
		},
	}
	part, ok := f.File("f")
	require.True(t, ok)
	require.Equal(t, "a.txt", part.Filename)
}

func TestForm_FileAbsent(t *testing.T) {
	f := Form{"f": {{Name: "f", Data: "scalar"}}}
	_, ok := f.File("f")
	require.False(t, ok)
}

func TestForm_CloseReleasesAllParts(t *testing.T) {
	p1 := &Part{Name: "a", guard: newFileGuard("/nonexistent/a")}
	p2 := &Part{Name: "b", guard: newFileGuard("/nonexistent/b")}
	p1.guard.disarm()
	p2.guard.disarm()

	f := Form{"a": {p1}, "b": {p2}}
	require.NoError(t, f.Close())
}

func TestPart_CloseOnPartWithNoFileIsNoop(t *testing.T) {
	p := &Part{Name: "a", Data: "x"}
	require.NoError(t, p.Close())
}
