package ini

import (
	"reflect"
	"strings"

	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// Node is a single name = value entry. The value is kept as raw, untyped
// text and converted on demand by a [Deserializer].
type Node struct {
	name  string
	value string
}

// NewNode returns a node with the given name and raw value, both stored
// as given.
func NewNode(name, value string) *Node {
	return &Node{name: name, value: value}
}

// NewValueNode returns a node whose raw value is v written by s.
func NewValueNode[T any](name string, v T, s Serializer[T]) *Node {
	return &Node{name: name, value: s.Serialize(v)}
}

// ParseNode parses a "name=value" line. The name is the trimmed text before
// the first '='; the value is everything after it, untrimmed. A line
// without '=' fails with KindMalformedNode.
func ParseNode(line string) (*Node, error) {
	name, value, found := strings.Cut(line, "=")
	if !found {
		return nil, &Error{Kind: KindMalformedNode, Text: line}
	}
	return &Node{name: textutil.Trim(name), value: value}, nil
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// RawValue returns the node's untyped value text.
func (n *Node) RawValue() string { return n.value }

// SetName renames the node.
func (n *Node) SetName(name string) *Node {
	n.name = name
	return n
}

// SetRawValue replaces the node's value text.
func (n *Node) SetRawValue(value string) *Node {
	n.value = value
	return n
}

// String returns the node as "name = value".
func (n *Node) String() string {
	return n.name + " = " + n.value
}

// Get reads n's value with d. It fails with KindEmptyNodeValue when the
// value is blank after trimming, before d is consulted.
func Get[T any](n *Node, d Deserializer[T]) (T, error) {
	var zero T
	if textutil.Trim(n.value) == "" {
		return zero, &Error{Kind: KindEmptyNodeValue, Text: n.name}
	}
	v, err := d.Deserialize(n.value)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// GetAs reads n's value with a deserializer declared for S and returns it
// as T. Unless S and T are the same type, d must allow casting; otherwise
// GetAs fails with KindCastNotAllowed without reading the value. The
// result is converted with Go conversion rules, and a result that does
// not convert to T also fails with KindCastNotAllowed.
func GetAs[T, S any](n *Node, d Deserializer[S]) (T, error) {
	var zero T
	from, to := reflect.TypeFor[S](), reflect.TypeFor[T]()
	if from != to && !d.AllowCast() {
		return zero, castError(from, to)
	}

	v, err := Get(n, d)
	if err != nil {
		return zero, err
	}
	if t, ok := any(v).(T); ok {
		return t, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !rv.CanConvert(to) {
		return zero, castError(from, to)
	}
	return rv.Convert(to).Interface().(T), nil
}

// Value reads n's value with the default deserializer for T.
// See [DefaultDeserializer].
func Value[T any](n *Node) (T, error) {
	d, err := DefaultDeserializer[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return Get(n, d)
}

// Set replaces n's value with v written by s.
func Set[T any](n *Node, v T, s Serializer[T]) *Node {
	n.value = s.Serialize(v)
	return n
}
