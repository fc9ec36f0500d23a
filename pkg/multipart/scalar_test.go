package multipart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalar_String(t *testing.T) {
	cases := []struct {
		name string
		s    Scalar
		want string
	}{
		{"string", StringScalar("hello"), "hello"},
		{"int", IntScalar(42), "42"},
		{"negative int", IntScalar(-7), "-7"},
		{"float", FloatScalar(3.5), "3.5"},
		{"bool true", BoolScalar(true), "true"},
		{"bool false", BoolScalar(false), "false"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.s.String())
		})
	}
}
