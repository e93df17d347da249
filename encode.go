package ini

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/KimNorgaard/go-ini/internal/mapper"
)

// Encoder writes INI documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the INI encoding of v to the stream. v is either a
// *Structure, written as is, or a struct (or pointer to one) that is
// converted following the rules of [Marshal].
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	s, ok := v.(*Structure)
	if !ok {
		es := &encodeState{}
		if s, err = es.structure(reflect.ValueOf(v)); err != nil {
			return err
		}
	}
	return newFormatter(e.w, o).format(s)
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

type encodeState struct{}

// structure converts a struct value into a Structure.
func (es *encodeState) structure(v reflect.Value) (*Structure, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("ini: Marshal(nil %s)", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		if !v.IsValid() {
			return nil, fmt.Errorf("ini: Marshal(nil)")
		}
		return nil, fmt.Errorf("ini: cannot marshal Go value of type %s", v.Type())
	}

	s := NewStructure()
	root := NewHeader("")
	for _, f := range mapper.CachedFields(v.Type()) {
		fv := v.FieldByIndex(f.Index)
		if f.OmitEmpty && isEmptyValue(fv) {
			continue
		}
		if isSectionValue(fv) {
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			nodes, err := es.section(f.Name, fv)
			if err != nil {
				return nil, err
			}
			s.AddNodes(NewHeader(f.Name), nodes...)
			continue
		}
		nodes, err := es.nodes(f.Name, fv)
		if err != nil {
			return nil, err
		}
		if len(nodes) > 0 {
			s.AddNodes(root, nodes...)
		}
	}
	return s, nil
}

func isSectionValue(v reflect.Value) bool {
	t := v.Type()
	if t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return false
	}
	return isSectionType(t)
}

// section converts a struct or string-keyed map into the nodes of one
// section. Map entries are written in sorted key order.
func (es *encodeState) section(name string, v reflect.Value) ([]*Node, error) {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	var out []*Node
	switch v.Kind() {
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		for _, k := range keys {
			nodes, err := es.nodes(k.String(), v.MapIndex(k))
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
	case reflect.Struct:
		for _, f := range mapper.CachedFields(v.Type()) {
			fv := v.FieldByIndex(f.Index)
			if f.OmitEmpty && isEmptyValue(fv) {
				continue
			}
			if isSectionValue(fv) {
				return nil, &Error{Kind: KindUnsupportedType, Text: "nested section [" + name + "] " + f.Name}
			}
			nodes, err := es.nodes(f.Name, fv)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
	}
	return out, nil
}

// nodes converts a scalar into a single node and a slice into one node per
// element. Nil pointers and interfaces produce no node.
func (es *encodeState) nodes(name string, v reflect.Value) ([]*Node, error) {
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		t := v.Type()
		isText := t.Implements(textMarshalerType) || t.Elem().Kind() == reflect.Uint8
		if !isText {
			out := make([]*Node, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				text, ok, err := es.scalar(v.Index(i))
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, NewNode(name, text))
				}
			}
			return out, nil
		}
	}

	text, ok, err := es.scalar(v)
	if err != nil || !ok {
		return nil, err
	}
	return []*Node{NewNode(name, text)}, nil
}

// scalar renders a single value. ok is false for nil pointers and
// interfaces.
func (es *encodeState) scalar(v reflect.Value) (text string, ok bool, err error) {
	if v.CanInterface() {
		if m, isMarshaler := v.Interface().(encoding.TextMarshaler); isMarshaler {
			if v.Kind() == reflect.Pointer && v.IsNil() {
				return "", false, nil
			}
			b, err := m.MarshalText()
			if err != nil {
				return "", false, &MarshalerError{Type: v.Type(), Err: err}
			}
			return string(b), true, nil
		}
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		if m, isMarshaler := v.Addr().Interface().(encoding.TextMarshaler); isMarshaler {
			b, err := m.MarshalText()
			if err != nil {
				return "", false, &MarshalerError{Type: v.Type(), Err: err}
			}
			return string(b), true, nil
		}
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false, nil
		}
		v = v.Elem()
	}

	if (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && v.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, v.Len())
		reflect.Copy(reflect.ValueOf(b), v)
		return string(b), true, nil
	}
	if s, isScalar := formatScalar(v); isScalar {
		return s, true, nil
	}
	return "", false, &Error{Kind: KindUnsupportedType, Text: v.Type().String()}
}

// isEmptyValue reports whether v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
