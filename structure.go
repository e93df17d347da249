package ini

import (
	"bytes"
	"io"
	"slices"
)

// Structure is a parsed INI document: a mapping from header name to the
// ordered sequence of nodes recorded under that header.
//
// Nodes that precede the first header live under the empty header name.
// Node names need not be unique within a header. A Structure owns its
// nodes and is not safe for concurrent mutation.
type Structure struct {
	tree  map[string][]*Node
	order []string // header names in the order they were first added
}

// NewStructure returns an empty Structure.
func NewStructure() *Structure {
	return &Structure{tree: make(map[string][]*Node)}
}

// AddNode appends n to the nodes of h, creating the sequence if needed.
func (s *Structure) AddNode(h Header, n *Node) *Structure {
	return s.AddNodes(h, n)
}

// AddNodes appends nodes to the nodes of h in order. The header is
// recorded even when nodes is empty.
func (s *Structure) AddNodes(h Header, nodes ...*Node) *Structure {
	if s.tree == nil {
		s.tree = make(map[string][]*Node)
	}
	name := h.Name()
	existing, ok := s.tree[name]
	if !ok {
		s.order = append(s.order, name)
		existing = []*Node{}
	}
	s.tree[name] = append(existing, nodes...)
	return s
}

// AllNodesOf returns the nodes recorded under the header name, in
// insertion order. The nodes are shared with s, so changing them changes
// the document. It fails with KindHeaderNotFound if no nodes were ever
// added under name.
func (s *Structure) AllNodesOf(name string) ([]*Node, error) {
	nodes, ok := s.tree[name]
	if !ok {
		return nil, &Error{Kind: KindHeaderNotFound, Text: name}
	}
	return nodes, nil
}

// Node returns the first node called name under header.
func (s *Structure) Node(header, name string) (*Node, error) {
	nodes, err := s.AllNodesOf(header)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Name() == name {
			return n, nil
		}
	}
	return nil, &Error{Kind: KindNodeNotFound, Text: Header{name: header}.String() + " " + name}
}

// HasHeader reports whether nodes were ever added under name.
func (s *Structure) HasHeader(name string) bool {
	_, ok := s.tree[name]
	return ok
}

// Headers returns the header names in the order they first appeared.
func (s *Structure) Headers() []string {
	return slices.Clone(s.order)
}

// Len returns the total number of nodes in s.
func (s *Structure) Len() int {
	total := 0
	for _, nodes := range s.tree {
		total += len(nodes)
	}
	return total
}

// WriteTo writes s to w in INI form: the nodes of the empty header first,
// then every other header in order of first appearance.
func (s *Structure) WriteTo(w io.Writer) (int64, error) {
	f := newFormatter(w, &options{})
	err := f.format(s)
	return f.written, err
}

// String returns s in INI form. See [Structure.WriteTo].
func (s *Structure) String() string {
	var buf bytes.Buffer
	_, _ = s.WriteTo(&buf)
	return buf.String()
}
