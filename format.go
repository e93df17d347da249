package ini

import (
	"io"

	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// formatter writes a Structure to an output stream.
type formatter struct {
	w       io.Writer
	opts    *options
	written int64
}

// newFormatter returns a new formatter that writes to w.
func newFormatter(w io.Writer, opts *options) *formatter {
	return &formatter{w: w, opts: opts}
}

func (f *formatter) write(s string) error {
	n, err := io.WriteString(f.w, s)
	f.written += int64(n)
	return err
}

// format writes the nodes of the unnamed section first, without a header
// line, then every named section in order of first appearance. Sections
// are separated by a blank line.
func (f *formatter) format(s *Structure) error {
	first := true
	if nodes, ok := s.tree[""]; ok && len(nodes) > 0 {
		if err := f.writeNodes(nodes); err != nil {
			return err
		}
		first = false
	}

	for _, name := range s.order {
		if name == "" {
			continue
		}
		if !first {
			if err := f.write("\n"); err != nil {
				return err
			}
		}
		first = false
		if err := f.write(NewHeader(name).String() + "\n"); err != nil {
			return err
		}
		if err := f.writeNodes(s.tree[name]); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeNodes(nodes []*Node) error {
	sep := " = "
	if f.opts.compact {
		sep = "="
	}
	for _, n := range nodes {
		if err := f.write(n.Name() + sep + textutil.Trim(n.RawValue()) + "\n"); err != nil {
			return err
		}
	}
	return nil
}
