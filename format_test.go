package ini

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	sample := NewStructure().
		AddNode(NewHeader("server"), NewNode("host", " localhost ")).
		AddNode(NewHeader(""), NewNode("name", "demo")).
		AddNode(NewHeader("server"), NewNode("port", "8080")).
		AddNode(NewHeader("paths"), NewNode("path", "/a")).
		AddNode(NewHeader("paths"), NewNode("path", "/b"))

	testCases := []struct {
		name     string
		s        *Structure
		opts     *options
		expected string
	}{
		{
			name:     "Default",
			s:        sample,
			opts:     &options{},
			expected: "name = demo\n\n[server]\nhost = localhost\nport = 8080\n\n[paths]\npath = /a\npath = /b\n",
		},
		{
			name:     "Compact",
			s:        sample,
			opts:     &options{compact: true},
			expected: "name=demo\n\n[server]\nhost=localhost\nport=8080\n\n[paths]\npath=/a\npath=/b\n",
		},
		{
			name:     "Empty Structure",
			s:        NewStructure(),
			opts:     &options{},
			expected: "",
		},
		{
			name:     "Section Without Nodes",
			s:        NewStructure().AddNodes(NewHeader("empty")),
			opts:     &options{},
			expected: "[empty]\n",
		},
		{
			name:     "Only Root Nodes",
			s:        NewStructure().AddNode(NewHeader(""), NewNode("a", "1")),
			opts:     &options{},
			expected: "a = 1\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := newFormatter(&buf, tc.opts)
			err := f.format(tc.s)

			require.NoError(t, err)
			require.Equal(t, tc.expected, buf.String())
			require.Equal(t, int64(buf.Len()), f.written)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatter_WriteError(t *testing.T) {
	s := NewStructure().AddNode(NewHeader("a"), NewNode("k", "v"))
	_, err := s.WriteTo(failingWriter{})
	require.EqualError(t, err, "disk full")
}

func TestStructureString(t *testing.T) {
	s, err := ParseStructure("[b]\nk = v ; c\n[a]\nk=1\n[b]\nj=2")
	require.NoError(t, err)
	require.Equal(t, "[b]\nk = v\nj = 2\n\n[a]\nk = 1\n", s.String())
}
