package ini

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/KimNorgaard/go-ini/internal/mapper"
	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// Decoder reads and decodes INI documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and stores it in the struct pointed to by
// v. See [Unmarshal] for the mapping rules.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("ini: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v, d.opts...)
}

// Unmarshal stores the structure in the struct pointed to by v.
// See the package documentation for the mapping rules.
func (s *Structure) Unmarshal(v any, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	ds := &decodeState{s: s, opts: o}
	return ds.decode(v)
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

type decodeState struct {
	s    *Structure
	opts *options
}

func (ds *decodeState) decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("ini: Unmarshal(non-pointer %T or nil)", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("ini: cannot unmarshal into Go value of type %s", rv.Type())
	}

	sections := make(map[string]string)
	for _, name := range ds.s.order {
		key := mapper.Fold(name, ds.opts.caseSensitive)
		if _, ok := sections[key]; !ok {
			sections[key] = name
		}
	}
	root := ds.nodeIndex("")

	for _, f := range mapper.CachedFields(rv.Type()) {
		fv := rv.FieldByIndex(f.Index)
		key := mapper.Fold(f.Name, ds.opts.caseSensitive)
		if isSectionType(fv.Type()) {
			header, ok := sections[key]
			if !ok {
				ds.opts.logger.Debug("ini: no section for field", slog.String("section", f.Name))
				continue
			}
			if err := ds.decodeSection(header, fv); err != nil {
				return err
			}
			continue
		}
		if nodes := root[key]; len(nodes) > 0 {
			if err := ds.assign("", nodes, fv); err != nil {
				return err
			}
		}
	}
	return nil
}

// isSectionType reports whether values of t are filled from a whole
// section rather than a single node.
func isSectionType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	default:
		return false
	}
}

// nodeIndex groups the nodes of header by their folded name.
func (ds *decodeState) nodeIndex(header string) map[string][]*Node {
	idx := make(map[string][]*Node)
	for _, n := range ds.s.tree[header] {
		key := mapper.Fold(n.Name(), ds.opts.caseSensitive)
		idx[key] = append(idx[key], n)
	}
	return idx
}

func (ds *decodeState) decodeSection(header string, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return ds.decodeMap(header, rv)
	case reflect.Struct:
		idx := ds.nodeIndex(header)
		for _, f := range mapper.CachedFields(rv.Type()) {
			nodes := idx[mapper.Fold(f.Name, ds.opts.caseSensitive)]
			if len(nodes) == 0 {
				continue
			}
			if err := ds.assign(header, nodes, rv.FieldByIndex(f.Index)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("ini: cannot unmarshal section [%s] into Go value of type %s", header, rv.Type())
	}
}

func (ds *decodeState) decodeMap(header string, rv reflect.Value) error {
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(rv.Type()))
	}
	keyType, elemType := rv.Type().Key(), rv.Type().Elem()

	grouped := make(map[string][]*Node)
	var names []string
	for _, n := range ds.s.tree[header] {
		if _, ok := grouped[n.Name()]; !ok {
			names = append(names, n.Name())
		}
		grouped[n.Name()] = append(grouped[n.Name()], n)
	}

	for _, name := range names {
		elem := reflect.New(elemType).Elem()
		if err := ds.assign(header, grouped[name], elem); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(name).Convert(keyType), elem)
	}
	return nil
}

// assign stores nodes into rv. Slices receive every node in order; any
// other kind receives the last node, so later duplicates win.
func (ds *decodeState) assign(header string, nodes []*Node, rv reflect.Value) error {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 &&
		!reflect.PointerTo(rv.Type()).Implements(textUnmarshalerType) {
		slice := reflect.MakeSlice(rv.Type(), len(nodes), len(nodes))
		for i, n := range nodes {
			if err := ds.setScalar(header, n, slice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil
	}
	return ds.setScalar(header, nodes[len(nodes)-1], rv)
}

func (ds *decodeState) setScalar(header string, n *Node, rv reflect.Value) error { //nolint:gocyclo
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	fail := func(err error) error {
		return &DecodeError{Section: header, Key: n.Name(), Type: rv.Type(), Err: err}
	}

	raw := n.RawValue()
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(textutil.Trim(raw))); err != nil {
				return fail(err)
			}
			return nil
		}
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(ds.opts.mode.apply(raw))
		return nil
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fail(&Error{Kind: KindUnsupportedType, Text: rv.Type().String()})
		}
		rv.Set(reflect.ValueOf(ds.opts.mode.apply(raw)))
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			rv.SetBytes([]byte(ds.opts.mode.apply(raw)))
			return nil
		}
	}

	text := textutil.Trim(raw)
	if text == "" {
		return fail(&Error{Kind: KindEmptyNodeValue, Text: n.Name()})
	}

	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return fail(invalidValue(text, err))
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return fail(invalidValue(text, err))
		}
		if rv.OverflowInt(i) {
			return fail(&Error{Kind: KindInvalidValue, Text: text, Err: fmt.Errorf("overflows %s", rv.Type())})
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return fail(invalidValue(text, err))
		}
		if rv.OverflowUint(u) {
			return fail(&Error{Kind: KindInvalidValue, Text: text, Err: fmt.Errorf("overflows %s", rv.Type())})
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return fail(invalidValue(text, err))
		}
		rv.SetFloat(f)
	default:
		return fail(&Error{Kind: KindUnsupportedType, Text: rv.Type().String()})
	}
	return nil
}
