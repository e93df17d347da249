package ini

import (
	"strings"

	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// Header is a section label. Headers are comparable values: two headers
// are equal when their names are equal, so a Header can be used directly
// as a map key.
type Header struct {
	name string
}

// NewHeader returns a header with the given name, stored as given.
func NewHeader(name string) Header {
	return Header{name: name}
}

// ParseHeader parses a "[name]" line. The name is the trimmed text between
// the first '[' and the first ']'; anything after the ']' is ignored. A
// line that lacks either bracket, or whose first ']' comes before its
// first '[', fails with KindMalformedHeader. A reversed pair such as "]a["
// is rejected rather than read as a header with an empty name.
func ParseHeader(line string) (Header, error) {
	buf := textutil.Trim(line)
	open := strings.IndexByte(buf, '[')
	closing := strings.IndexByte(buf, ']')
	if open < 0 || closing < 0 || closing < open {
		return Header{}, &Error{Kind: KindMalformedHeader, Text: line}
	}
	return Header{name: textutil.Trim(buf[open+1 : closing])}, nil
}

// Name returns the header's name.
func (h Header) Name() string { return h.name }

// String returns the header as "[name]".
func (h Header) String() string {
	return "[" + h.name + "]"
}
