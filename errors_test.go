package ini_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/KimNorgaard/go-ini"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "MalformedNode", ini.KindMalformedNode.String())
	require.Equal(t, "CastNotAllowed", ini.KindCastNotAllowed.String())
	require.Equal(t, "UnsupportedType", ini.KindUnsupportedType.String())
	require.Equal(t, "Kind(42)", ini.Kind(42).String())
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Kind only",
			err:      &ini.Error{Kind: ini.KindEmptyNodeValue},
			expected: "ini: empty node value",
		},
		{
			name:     "With line and text",
			err:      &ini.Error{Kind: ini.KindMalformedNode, Line: 7, Text: "oops"},
			expected: `ini: line 7: malformed node: "oops"`,
		},
		{
			name:     "With cause",
			err:      &ini.Error{Kind: ini.KindInvalidValue, Text: "x", Err: errors.New("bad")},
			expected: `ini: invalid value: "x": bad`,
		},
		{
			name:     "Unknown kind",
			err:      &ini.Error{Kind: ini.Kind(99)},
			expected: "ini: Kind(99)",
		},
		{
			name: "Decode error",
			err: &ini.DecodeError{
				Section: "server",
				Key:     "port",
				Type:    reflect.TypeFor[uint16](),
				Err:     &ini.Error{Kind: ini.KindInvalidValue, Text: "http"},
			},
			expected: `ini: cannot decode [server] port into Go value of type uint16: invalid value: "http"`,
		},
		{
			name: "Marshaler error",
			err: &ini.MarshalerError{
				Type: reflect.TypeFor[int](),
				Err:  errors.New("nope"),
			},
			expected: "ini: error calling MarshalText for type int: nope",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.EqualError(t, tc.err, tc.expected)
		})
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("cause")
	err := fmt.Errorf("loading config: %w", &ini.Error{Kind: ini.KindMalformedHeader, Line: 2, Err: cause})

	require.ErrorIs(t, err, ini.ErrMalformedHeader)
	require.NotErrorIs(t, err, ini.ErrMalformedNode)
	require.ErrorIs(t, err, cause)

	decodeErr := &ini.DecodeError{Section: "", Key: "k", Type: reflect.TypeFor[int](), Err: &ini.Error{Kind: ini.KindEmptyNodeValue}}
	require.ErrorIs(t, decodeErr, ini.ErrEmptyNodeValue)
}
