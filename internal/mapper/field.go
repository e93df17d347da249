package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field describes an exported struct field that takes part in INI mapping.
type Field struct {
	Name      string // tag name, or the Go field name when untagged
	Index     []int  // index sequence for reflect.Value.FieldByIndex
	Tagged    bool
	OmitEmpty bool
}

// fieldCache caches the fields of each struct type.
var fieldCache sync.Map // map[reflect.Type][]Field

// CachedFields returns the mappable fields of the struct type t in
// declaration order. Unexported fields and fields tagged `ini:"-"` are
// skipped; fields of untagged embedded structs are promoted. The result is
// cached per type and must not be modified.
func CachedFields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	var fields []Field
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			tag := sf.Tag.Get("ini")
			if tag == "-" {
				continue
			}
			index := append(append([]int(nil), idx...), i)

			// Only embedded struct values are promoted; pointer embeds
			// would need allocation while decoding.
			if sf.Anonymous && tag == "" && sf.Type.Kind() == reflect.Struct {
				walk(sf.Type, index)
				continue
			}
			if !sf.IsExported() {
				continue
			}

			f := Field{Index: index}
			name, opts, _ := strings.Cut(tag, ",")
			if name != "" {
				f.Name = name
				f.Tagged = true
			} else {
				f.Name = sf.Name
			}

			for opts != "" {
				var opt string
				opt, opts, _ = strings.Cut(opts, ",")
				if strings.TrimSpace(opt) == "omitempty" {
					f.OmitEmpty = true
				}
			}
			fields = append(fields, f)
		}
	}
	walk(t, nil)

	fieldCache.Store(t, fields)
	return fields
}

// Fold returns the form of name used for matching. Unless caseSensitive is
// set, names are lower-cased and '-' is treated as '_'.
func Fold(name string, caseSensitive bool) string {
	if caseSensitive {
		return name
	}
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}
