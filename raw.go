package wrapper

import (
	"math"

	"github.com/wippyai/wrapper/errors"
)

// WrapRaw boxes a raw bit pattern without numeric conversion. FLOAT and
// DOUBLE reinterpret the low 32 or all 64 bits as IEEE-754; LONG and OBJECT
// return Long(bits) unchanged; the other kinds truncate the low bits as
// WrapInt does. VOID returns nil.
func (k Kind) WrapRaw(bits int64) any {
	switch k {
	case KindFloat:
		return Float(math.Float32frombits(uint32(bits)))
	case KindDouble:
		return Double(math.Float64frombits(uint64(bits)))
	case KindLong, KindObject:
		return Long(bits)
	}
	return k.WrapInt(int32(bits))
}

// UnwrapRaw returns the bit pattern of a boxed value, the inverse of WrapRaw.
// Signed kinds and FLOAT sign-extend from their width, CHAR zero-extends and
// BOOLEAN is 0 or 1. x may also be the kind's primitive Go value. VOID
// returns 0; OBJECT cannot be unwrapped.
func (k Kind) UnwrapRaw(x any) (int64, error) {
	switch k {
	case KindObject:
		return 0, errors.UnsupportedConversion(errors.PhaseUnwrap, typeName(x), k.SimpleName(),
			"cannot unwrap a reference kind")
	case KindVoid:
		return 0, nil
	case KindFloat:
		switch v := x.(type) {
		case Float:
			return int64(int32(math.Float32bits(float32(v)))), nil
		case float32:
			return int64(int32(math.Float32bits(v))), nil
		}
	case KindDouble:
		switch v := x.(type) {
		case Double:
			return int64(math.Float64bits(float64(v))), nil
		case float64:
			return int64(math.Float64bits(v)), nil
		}
	case KindInt:
		switch v := x.(type) {
		case Int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		}
	case KindLong:
		switch v := x.(type) {
		case Long:
			return int64(v), nil
		case int64:
			return v, nil
		}
	case KindShort:
		switch v := x.(type) {
		case Short:
			return int64(v), nil
		case int16:
			return int64(v), nil
		}
	case KindByte:
		switch v := x.(type) {
		case Byte:
			return int64(v), nil
		case int8:
			return int64(v), nil
		}
	case KindChar:
		switch v := x.(type) {
		case Char:
			return int64(v), nil
		case uint16:
			return int64(v), nil
		}
	case KindBoolean:
		switch v := x.(type) {
		case Boolean:
			return boolBits(bool(v)), nil
		case bool:
			return boolBits(v), nil
		}
	}
	if _, ok := numberValue(x); x == nil || !ok {
		return 0, errors.UnsupportedConversion(errors.PhaseUnwrap, typeName(x), k.SimpleName(),
			"value is not a number, boolean or character")
	}
	return 0, errors.IncompatibleType(errors.PhaseUnwrap, typeName(x), catalog[k].boxed.String())
}

func boolBits(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
