package mapper

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type embedded struct {
	Shared string `ini:"shared"`
}

type sample struct {
	embedded
	Name     string `ini:"name"`
	Port     int    `ini:"port,omitempty"`
	Untagged bool
	Skipped  string `ini:"-"`
	hidden   string //nolint:unused
}

func TestCachedFields(t *testing.T) {
	fields := CachedFields(reflect.TypeFor[sample]())

	expected := []Field{
		{Name: "shared", Index: []int{0, 0}, Tagged: true},
		{Name: "name", Index: []int{1}, Tagged: true},
		{Name: "port", Index: []int{2}, Tagged: true, OmitEmpty: true},
		{Name: "Untagged", Index: []int{3}},
	}
	require.Equal(t, expected, fields)

	// Second lookup is served from the cache.
	again := CachedFields(reflect.TypeFor[sample]())
	require.Equal(t, fields, again)
}

func TestFold(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		caseSensitive bool
		expected      string
	}{
		{name: "Lower-cases", input: "Server", expected: "server"},
		{name: "Hyphen to underscore", input: "max-conns", expected: "max_conns"},
		{name: "Case sensitive unchanged", input: "Max-Conns", caseSensitive: true, expected: "Max-Conns"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Fold(tc.input, tc.caseSensitive))
		})
	}
}
