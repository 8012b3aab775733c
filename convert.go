package wrapper

import (
	"reflect"

	"github.com/wippyai/wrapper/errors"
)

// Wrap boxes x into this kind, performing the standard primitive conversions
// including truncation and float conversions. OBJECT returns x unchanged and
// VOID returns nil. For numeric kinds a nil x wraps as zero; bool counts as
// 0 or 1 and Char as its code unit. BOOLEAN is true for any nonzero integer
// part.
func (k Kind) Wrap(x any) (any, error) {
	switch k {
	case KindObject:
		return x, nil
	case KindVoid:
		return nil, nil
	}
	n, ok := numberValue(x)
	if !ok {
		return nil, errors.UnsupportedConversion(errors.PhaseWrap, typeName(x), k.SimpleName(),
			"value is not a number, boolean or character")
	}
	return k.wrapNumber(n), nil
}

// WrapInt boxes an int-or-smaller value. OBJECT boxes it as Int.
func (k Kind) WrapInt(x int32) any {
	switch k {
	case KindObject:
		return Int(x)
	case KindVoid:
		return nil
	}
	return k.wrapNumber(number{i: int64(x)})
}

func (k Kind) wrapNumber(n number) any {
	switch k {
	case KindInt:
		return Int(n.toInt32())
	case KindLong:
		return Long(n.toInt64())
	case KindFloat:
		return Float(n.toFloat32())
	case KindDouble:
		return Double(n.toFloat64())
	case KindShort:
		return Short(int16(n.toInt32()))
	case KindByte:
		return Byte(int8(n.toInt32()))
	case KindChar:
		return Char(uint16(n.toInt32()))
	case KindBoolean:
		return Boolean(n.toInt64() != 0)
	}
	panic(errors.InvariantViolation("kind %d has no numeric box", uint8(k)))
}

// BoxedTypeFor checks that example is compatible with this kind and returns
// the boxed type to convert into. example may be the boxed type, the
// primitive type, or an interface the boxed type implements. For OBJECT any
// type is accepted and normalized to any.
func (k Kind) BoxedTypeFor(example reflect.Type) (reflect.Type, error) {
	d := &catalog[k]
	switch {
	case example == nil:
	case example == d.boxed:
		return example, nil
	case example == d.primitive, k == KindObject:
		return d.boxed, nil
	case IsInterfaceType(example) && d.boxed.Implements(example):
		return d.boxed, nil
	}
	return nil, errors.IncompatibleType(errors.PhaseConvert, typeString(example), d.primitive.String())
}

// Cast converts x to t, which must be compatible with this kind (see
// BoxedTypeFor). Narrowing conversions are performed. The result is a boxed
// value, or x itself when it already has the boxed type.
func (k Kind) Cast(x any, t reflect.Type) (any, error) {
	return k.convert(x, t, true)
}

// Convert is Cast without narrowing: the kind of x must satisfy
// k.IsConvertibleFrom. x may be a boxed value or a catalog primitive.
func (k Kind) Convert(x any, t reflect.Type) (any, error) {
	return k.convert(x, t, false)
}

func (k Kind) convert(x any, t reflect.Type, allowNarrowing bool) (any, error) {
	if t == nil {
		return nil, errors.InvalidArgument(errors.PhaseConvert, "nil target type", nil)
	}
	if k == KindObject {
		return convertReference(x, t)
	}
	boxed, err := k.BoxedTypeFor(t)
	if err != nil {
		return nil, err
	}
	if x == nil {
		if k == KindVoid {
			return nil, nil
		}
		return nil, errors.UnsupportedConversion(errors.PhaseConvert, "nil", boxed.String(),
			"nil has no primitive value")
	}
	src := reflect.TypeOf(x)
	if src == boxed && k != KindVoid {
		return x, nil
	}
	if !allowNarrowing {
		from, ok := sourceKind(src)
		if !ok || !k.IsConvertibleFrom(from) {
			return nil, errors.IncompatibleType(errors.PhaseConvert, src.String(), boxed.String())
		}
	}
	// VOID accepts any catalog value and discards it.
	if k == KindVoid {
		return nil, nil
	}
	return k.Wrap(x)
}

// convertReference is the OBJECT path: no boxing happens and x is passed
// through when its dynamic type fits t. nil fits every target.
func convertReference(x any, t reflect.Type) (any, error) {
	if x == nil {
		return nil, nil
	}
	src := reflect.TypeOf(x)
	if IsInterfaceType(t) {
		// Interface target: the method set is the only check.
		if src.Implements(t) {
			return x, nil
		}
	} else if src.AssignableTo(t) {
		return x, nil
	}
	return nil, errors.IncompatibleType(errors.PhaseConvert, src.String(), t.String())
}

// sourceKind finds the kind of a dynamic value type: boxed types first, then
// raw catalog primitives.
func sourceKind(t reflect.Type) (Kind, bool) {
	if k, ok := findBoxedType(t); ok {
		return k, true
	}
	return findPrimitiveType(t)
}
