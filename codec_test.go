package ini_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-ini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSerializer(t *testing.T) {
	assert.Equal(t, "255", ini.U8Serializer{}.Serialize(255))
	assert.Equal(t, "65535", ini.U16Serializer{}.Serialize(math.MaxUint16))
	assert.Equal(t, "4294967295", ini.U32Serializer{}.Serialize(math.MaxUint32))
	assert.Equal(t, "18446744073709551615", ini.U64Serializer{}.Serialize(math.MaxUint64))
	assert.Equal(t, "-128", ini.I8Serializer{}.Serialize(math.MinInt8))
	assert.Equal(t, "-32768", ini.I16Serializer{}.Serialize(math.MinInt16))
	assert.Equal(t, "20", ini.I32Serializer{}.Serialize(20))
	assert.Equal(t, "-9223372036854775808", ini.I64Serializer{}.Serialize(math.MinInt64))
	assert.Equal(t, "2.5", ini.F32Serializer{}.Serialize(2.5))
	assert.Equal(t, "0.1", ini.F32Serializer{}.Serialize(0.1))
	assert.Equal(t, "0.1", ini.F64Serializer{}.Serialize(0.1))
	assert.Equal(t, "1e+21", ini.F64Serializer{}.Serialize(1e21))
	assert.Equal(t, "-3", ini.F64Serializer{}.Serialize(-3))
}

type port uint16

func TestNumberSerializer_NamedType(t *testing.T) {
	require.Equal(t, "8080", ini.NumberSerializer[port]{}.Serialize(8080))
}

func TestNumberDeserializer(t *testing.T) {
	t.Run("Wrapping", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
			got   func(string) (any, error)
			want  any
		}{
			{name: "256 to u8", input: "256", got: deserialize(ini.U8Deserializer{}), want: uint8(0)},
			{name: "257 to u8", input: "257", got: deserialize(ini.U8Deserializer{}), want: uint8(1)},
			{name: "-1 to u8", input: "-1", got: deserialize(ini.U8Deserializer{}), want: uint8(255)},
			{name: "128 to i8", input: "128", got: deserialize(ini.I8Deserializer{}), want: int8(-128)},
			{name: "65536 to u16", input: "65536", got: deserialize(ini.U16Deserializer{}), want: uint16(0)},
			{name: "-1 to u64", input: "-1", got: deserialize(ini.U64Deserializer{}), want: uint64(math.MaxUint64)},
			{name: "max u64 to i64", input: "18446744073709551615", got: deserialize(ini.I64Deserializer{}), want: int64(-1)},
			{name: "plus sign", input: "+12", got: deserialize(ini.I16Deserializer{}), want: int16(12)},
			{name: "surrounding whitespace", input: " \t42\r\n", got: deserialize(ini.U32Deserializer{}), want: uint32(42)},
			{name: "float64", input: "-0.25", got: deserialize(ini.F64Deserializer{}), want: -0.25},
			{name: "float exponent", input: "1e3", got: deserialize(ini.F32Deserializer{}), want: float32(1000)},
			{name: "named type", input: "8080", got: deserialize(ini.NumberDeserializer[port]{}), want: port(8080)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				v, err := tc.got(tc.input)
				require.NoError(t, err)
				require.Equal(t, tc.want, v)
			})
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{"abc", "1.5", "0x10", "99999999999999999999", "-99999999999999999999", "1 2"} {
			_, err := ini.I64Deserializer{}.Deserialize(input)
			require.ErrorIs(t, err, ini.ErrInvalidValue, input)
		}
		_, err := ini.F64Deserializer{}.Deserialize("1e400")
		require.ErrorIs(t, err, ini.ErrInvalidValue)
		_, err = ini.F32Deserializer{}.Deserialize("two")
		require.ErrorIs(t, err, ini.ErrInvalidValue)
	})

	t.Run("No Cast", func(t *testing.T) {
		require.False(t, ini.U8Deserializer{}.AllowCast())
		require.False(t, ini.F64Deserializer{Mode: ini.ModeTrim}.AllowCast())
		require.False(t, ini.BoolDeserializer{}.AllowCast())
		require.True(t, ini.StringDeserializer{}.AllowCast())
	})
}

func deserialize[T any](d ini.Deserializer[T]) func(string) (any, error) {
	return func(s string) (any, error) {
		return d.Deserialize(s)
	}
}

func TestStringDeserializer(t *testing.T) {
	v, err := ini.StringDeserializer{}.Deserialize("  keep  ")
	require.NoError(t, err)
	require.Equal(t, "  keep  ", v)

	v, err = ini.StringDeserializer{Mode: ini.ModeTrim}.Deserialize(" \ttrim\r\n")
	require.NoError(t, err)
	require.Equal(t, "trim", v)
}

func TestBoolDeserializer(t *testing.T) {
	for input, want := range map[string]bool{"true": true, " 1 ": true, "FALSE": false, "f": false} {
		v, err := ini.BoolDeserializer{}.Deserialize(input)
		require.NoError(t, err, input)
		require.Equal(t, want, v, input)
	}
	_, err := ini.BoolDeserializer{}.Deserialize("yes")
	require.ErrorIs(t, err, ini.ErrInvalidValue)
}

func TestDefaultDeserializer(t *testing.T) {
	d, err := ini.DefaultDeserializer[uint32]()
	require.NoError(t, err)
	v, err := d.Deserialize("320")
	require.NoError(t, err)
	require.Equal(t, uint32(320), v)

	_, err = ini.DefaultDeserializer[[]string]()
	require.ErrorIs(t, err, ini.ErrUnsupportedType)
	require.EqualError(t, err, `ini: unsupported type: "[]string"`)
}

func TestMode(t *testing.T) {
	require.True(t, ini.ModeTrim.Has(ini.ModeTrim))
	require.True(t, ini.ModeTrim.Has(ini.ModeNone))
	require.False(t, ini.ModeNone.Has(ini.ModeTrim))

	m := ini.ModeNone.With(ini.ModeTrim)
	require.Equal(t, ini.ModeTrim, m)
	require.Equal(t, ini.ModeNone, m.Without(ini.ModeTrim))

	require.Equal(t, "none", ini.ModeNone.String())
	require.Equal(t, "trim", ini.ModeTrim.String())
	require.Equal(t, "trim|0x80", (ini.ModeTrim | 0x80).String())
}
