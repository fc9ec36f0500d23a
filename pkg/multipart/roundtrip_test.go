package multipart

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_ScalarForm(t *testing.T) {
	form := EncodeForm{
		"name":  {{Scalar: scalarPtr(StringScalar("Ada Lovelace"))}},
		"admin": {{Scalar: scalarPtr(BoolScalar(false))}},
		"age":   {{Scalar: scalarPtr(IntScalar(36))}},
		"tags": {
			{Scalar: scalarPtr(StringScalar("math"))},
			{Scalar: scalarPtr(StringScalar("computing"))},
		},
	}

	var out bytes.Buffer
	_, err := Encode(NewStdWriter(&out), form, "RTBOUND", EncodeOptions{})
	require.NoError(t, err)

	decoded, err := DecodeBytes(out.Bytes(), "RTBOUND", DecodeOptions{})
	require.NoError(t, err)

	want := map[string][]string{
		"name":  {"Ada Lovelace"},
		"admin": {"false"},
		"age":   {"36"},
		"tags":  {"math", "computing"},
	}
	for name, vals := range want {
		got := decoded.Values(name)
		if diff := cmp.Diff(vals, got); diff != "" {
			t.Errorf("Values(%q) mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestRoundTrip_HeaderLowercasing(t *testing.T) {
	form := EncodeForm{
		"f": {{
			Header: map[string]interface{}{"X-Meta": "v"},
			Scalar: scalarPtr(StringScalar("data")),
		}},
	}
	var out bytes.Buffer
	_, err := Encode(NewStdWriter(&out), form, "B", EncodeOptions{})
	require.NoError(t, err)

	decoded, err := DecodeBytes(out.Bytes(), "B", DecodeOptions{})
	require.NoError(t, err)

	parts := decoded["f"]
	require.Len(t, parts, 1)
	for key := range parts[0].Header {
		require.Equal(t, key, lowerASCII(key))
	}
	require.Equal(t, "v", parts[0].Header.Get("x-meta"))
}
