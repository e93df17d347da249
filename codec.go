package ini

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// Integer is the set of Go integer types a node value can be read into.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point types a node value can be read into.
type Float interface {
	~float32 | ~float64
}

// Number is the union of Integer and Float.
type Number interface {
	Integer | Float
}

// Serializer converts a value of type T into its text representation.
type Serializer[T any] interface {
	Serialize(v T) string
}

// Deserializer converts value text into a value of type T.
//
// AllowCast reports whether the deserializer may be used to produce a type
// other than T (see [GetAs]). It must return a constant.
type Deserializer[T any] interface {
	Deserialize(s string) (T, error)
	AllowCast() bool
}

// NumberSerializer writes numbers in locale-free decimal form, the way
// strconv formats them.
type NumberSerializer[T Number] struct{}

func (NumberSerializer[T]) Serialize(v T) string {
	s, _ := formatScalar(reflect.ValueOf(v))
	return s
}

// StringSerializer writes strings unchanged.
type StringSerializer struct{}

func (StringSerializer) Serialize(v string) string { return v }

// BoolSerializer writes "true" or "false".
type BoolSerializer struct{}

func (BoolSerializer) Serialize(v bool) string { return strconv.FormatBool(v) }

type (
	U8Serializer  = NumberSerializer[uint8]
	U16Serializer = NumberSerializer[uint16]
	U32Serializer = NumberSerializer[uint32]
	U64Serializer = NumberSerializer[uint64]

	I8Serializer  = NumberSerializer[int8]
	I16Serializer = NumberSerializer[int16]
	I32Serializer = NumberSerializer[int32]
	I64Serializer = NumberSerializer[int64]

	F32Serializer = NumberSerializer[float32]
	F64Serializer = NumberSerializer[float64]
)

// NumberDeserializer parses decimal integer and floating-point literals.
//
// Surrounding whitespace is ignored regardless of Mode. Integers are parsed
// at 64 bits and then narrowed to T with Go's conversion rules, so a value
// that does not fit wraps around: 256 read as uint8 yields 0 and -1 read as
// uint8 yields 255.
//
// The whole trimmed text must be a number. Partial reads are rejected:
// "2.5" read as an integer and "80 tcp" both fail with KindInvalidValue
// instead of yielding 2 and 80.
type NumberDeserializer[T Number] struct {
	Mode Mode
}

// AllowCast returns false: a NumberDeserializer only produces T.
func (NumberDeserializer[T]) AllowCast() bool { return false }

func (d NumberDeserializer[T]) Deserialize(s string) (T, error) {
	var zero T
	text := textutil.Trim(d.Mode.apply(s))

	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return zero, invalidValue(text, err)
		}
		return T(f), nil
	case reflect.Float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return zero, invalidValue(text, err)
		}
		return T(f), nil
	default:
		bits, err := parseIntegerBits(text)
		if err != nil {
			return zero, invalidValue(text, err)
		}
		return T(bits), nil
	}
}

// StringDeserializer returns the value text, pre-processed by Mode.
// It allows casting to any type a string converts to.
type StringDeserializer struct {
	Mode Mode
}

func (StringDeserializer) AllowCast() bool { return true }

func (d StringDeserializer) Deserialize(s string) (string, error) {
	return d.Mode.apply(s), nil
}

// BoolDeserializer parses the literals accepted by strconv.ParseBool.
// Surrounding whitespace is ignored regardless of Mode.
type BoolDeserializer struct {
	Mode Mode
}

func (BoolDeserializer) AllowCast() bool { return false }

func (d BoolDeserializer) Deserialize(s string) (bool, error) {
	text := textutil.Trim(d.Mode.apply(s))
	b, err := strconv.ParseBool(text)
	if err != nil {
		return false, invalidValue(text, err)
	}
	return b, nil
}

type (
	U8Deserializer  = NumberDeserializer[uint8]
	U16Deserializer = NumberDeserializer[uint16]
	U32Deserializer = NumberDeserializer[uint32]
	U64Deserializer = NumberDeserializer[uint64]

	I8Deserializer  = NumberDeserializer[int8]
	I16Deserializer = NumberDeserializer[int16]
	I32Deserializer = NumberDeserializer[int32]
	I64Deserializer = NumberDeserializer[int64]

	F32Deserializer = NumberDeserializer[float32]
	F64Deserializer = NumberDeserializer[float64]
)

// DefaultDeserializer returns the deserializer used by [Value] for T.
// Strings are read verbatim (ModeNone). It fails with KindUnsupportedType
// for types other than the predeclared numeric types, string and bool.
func DefaultDeserializer[T any]() (Deserializer[T], error) {
	var d any
	switch reflect.TypeFor[T]() {
	case reflect.TypeFor[string]():
		d = StringDeserializer{}
	case reflect.TypeFor[bool]():
		d = BoolDeserializer{}
	case reflect.TypeFor[int]():
		d = NumberDeserializer[int]{}
	case reflect.TypeFor[int8]():
		d = NumberDeserializer[int8]{}
	case reflect.TypeFor[int16]():
		d = NumberDeserializer[int16]{}
	case reflect.TypeFor[int32]():
		d = NumberDeserializer[int32]{}
	case reflect.TypeFor[int64]():
		d = NumberDeserializer[int64]{}
	case reflect.TypeFor[uint]():
		d = NumberDeserializer[uint]{}
	case reflect.TypeFor[uint8]():
		d = NumberDeserializer[uint8]{}
	case reflect.TypeFor[uint16]():
		d = NumberDeserializer[uint16]{}
	case reflect.TypeFor[uint32]():
		d = NumberDeserializer[uint32]{}
	case reflect.TypeFor[uint64]():
		d = NumberDeserializer[uint64]{}
	case reflect.TypeFor[uintptr]():
		d = NumberDeserializer[uintptr]{}
	case reflect.TypeFor[float32]():
		d = NumberDeserializer[float32]{}
	case reflect.TypeFor[float64]():
		d = NumberDeserializer[float64]{}
	}
	if typed, ok := d.(Deserializer[T]); ok {
		return typed, nil
	}
	return nil, &Error{Kind: KindUnsupportedType, Text: reflect.TypeFor[T]().String()}
}

// parseIntegerBits parses a base-10 integer literal and returns its 64-bit
// two's complement representation. Values above math.MaxInt64 are accepted
// when they fit an unsigned 64-bit integer.
func parseIntegerBits(s string) (uint64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return uint64(i), nil
	}
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
		u, uerr := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
		if uerr == nil {
			return u, nil
		}
	}
	return 0, err
}

func invalidValue(text string, err error) *Error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &Error{Kind: KindInvalidValue, Text: text, Err: err}
}

// formatScalar renders a string, bool or numeric reflect.Value the way the
// serializers in this package do. ok is false for any other kind.
func formatScalar(v reflect.Value) (s string, ok bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true
	default:
		return "", false
	}
}
