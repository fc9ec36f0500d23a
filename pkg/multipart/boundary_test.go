package multipart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateBoundary_Valid(t *testing.T) {
	for _, b := range []string{"simple boundary", "B", "a'()+_,-./:=?Z", "----1234"} {
		require.NoError(t, ValidateBoundary(b, false), "boundary %q should validate", b)
	}
}

func TestValidateBoundary_RejectsBadCharacter(t *testing.T) {
	err := ValidateBoundary("foo#bar", false)
	require.Error(t, err)
	var merr *Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, ErrInvalidBoundary, merr.Kind)
	require.Contains(t, merr.Error(), "#")
}

func TestValidateBoundary_TrailingSpaceRejected(t *testing.T) {
	err := ValidateBoundary("abc ", false)
	require.Error(t, err)
}

func TestValidateBoundary_InteriorSpaceAllowed(t *testing.T) {
	require.NoError(t, ValidateBoundary("abc def", false))
}

func TestValidateBoundary_Empty(t *testing.T) {
	require.Error(t, ValidateBoundary("", false))
}

func TestValidateBoundary_StrictLength(t *testing.T) {
	long := make([]byte, 71)
	for i := range long {
		long[i] = 'a'
	}
	require.NoError(t, ValidateBoundary(string(long), false))
	require.Error(t, ValidateBoundary(string(long), true))
}

func TestRandomBoundary_IsValid(t *testing.T) {
	b, err := RandomBoundary()
	require.NoError(t, err)
	require.Len(t, b, 60)
	require.NoError(t, ValidateBoundary(b, true))
}

func TestFormDataContentType_QuotesWhenNeeded(t *testing.T) {
	require.Equal(t, `multipart/form-data; boundary=simple`, FormDataContentType("simple"))
	require.Equal(t, `multipart/form-data; boundary="a b"`, FormDataContentType("a b"))
}
