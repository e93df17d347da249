package ini

import (
	"bytes"

	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// Parse parses INI-encoded data into a Structure. See [ParseStructure].
func Parse(data []byte, opts ...Option) (*Structure, error) {
	return ParseStructure(string(data), opts...)
}

// Format returns s in INI form, honoring the Compact option.
func Format(s *Structure, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the INI-encoded data and stores the result in the
// struct pointed to by v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	s, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	return s.Unmarshal(v, opts...)
}

// Marshal returns the INI encoding of v, which must be a struct, a
// pointer to a struct, or a *Structure.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Trim removes leading and trailing spaces, tabs, carriage returns and
// line feeds from s. It is the trimming applied by ModeTrim and by the
// parser.
func Trim(s string) string {
	return textutil.Trim(s)
}
