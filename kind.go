package wrapper

import (
	"reflect"

	"github.com/wippyai/wrapper/internal/format"
)

// Kind is one of the ten catalog kinds. Methods other than String and Valid
// panic for values outside the catalog.
type Kind uint8

const (
	KindBoolean Kind = iota
	// KindByte through KindDouble are in the order of widening primitive conversions.
	KindByte
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
	// KindVoid must stay last: it is "assignable" from every other kind.
	KindVoid
)

const kindCount = int(KindVoid) + 1

var kindNames = [kindCount]string{
	KindBoolean: "BOOLEAN",
	KindByte:    "BYTE",
	KindShort:   "SHORT",
	KindChar:    "CHAR",
	KindInt:     "INT",
	KindLong:    "LONG",
	KindFloat:   "FLOAT",
	KindDouble:  "DOUBLE",
	KindObject:  "OBJECT",
	KindVoid:    "VOID",
}

type descriptor struct {
	boxed     reflect.Type
	primitive reflect.Type
	zero      any
	name      string
	format    format.Word
	tag       byte
}

var (
	objectType = reflect.TypeFor[any]()
	voidType   = reflect.TypeFor[struct{}]()
)

var catalog = [kindCount]descriptor{
	KindBoolean: {reflect.TypeFor[Boolean](), reflect.TypeFor[bool](), Boolean(false), "Boolean", format.Unsigned(1), 'Z'},
	KindByte:    {reflect.TypeFor[Byte](), reflect.TypeFor[int8](), Byte(0), "Byte", format.Signed(8), 'B'},
	KindShort:   {reflect.TypeFor[Short](), reflect.TypeFor[int16](), Short(0), "Short", format.Signed(16), 'S'},
	KindChar:    {reflect.TypeFor[Char](), reflect.TypeFor[uint16](), Char(0), "Char", format.Unsigned(16), 'C'},
	KindInt:     {reflect.TypeFor[Int](), reflect.TypeFor[int32](), Int(0), "Int", format.Signed(32), 'I'},
	KindLong:    {reflect.TypeFor[Long](), reflect.TypeFor[int64](), Long(0), "Long", format.Signed(64), 'J'},
	KindFloat:   {reflect.TypeFor[Float](), reflect.TypeFor[float32](), Float(0), "Float", format.Floating(32), 'F'},
	KindDouble:  {reflect.TypeFor[Double](), reflect.TypeFor[float64](), Double(0), "Double", format.Floating(64), 'D'},
	KindObject:  {objectType, objectType, nil, "Object", format.Other(1), 'L'},
	KindVoid:    {reflect.TypeFor[Void](), voidType, nil, "Void", format.Other(0), 'V'},
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) Valid() bool {
	return k <= KindVoid
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "unknown"
}

// SimpleName is the short name of the boxed type ("Int", "Object", ...).
func (k Kind) SimpleName() string { return catalog[k].name }

// Tag is the one-byte type code: Z B S C I J F D L V.
func (k Kind) Tag() byte { return catalog[k].tag }

// BoxedType is the Go type that carries a boxed value of this kind.
func (k Kind) BoxedType() reflect.Type { return catalog[k].boxed }

// PrimitiveType is the unboxed Go type. Only OBJECT shares it with BoxedType.
func (k Kind) PrimitiveType() reflect.Type { return catalog[k].primitive }

// Format returns the packed format word.
func (k Kind) Format() format.Word { return catalog[k].format }

// BitWidth returns the number of value bits; 0 for OBJECT and VOID.
func (k Kind) BitWidth() int { return catalog[k].format.BitWidth() }

// StackSlots returns how many 32-bit slots the value occupies; 0 for VOID.
func (k Kind) StackSlots() int { return catalog[k].format.Slots() }

func (k Kind) IsSingleSlot() bool { return catalog[k].format.IsSingleSlot() }
func (k Kind) IsDoubleSlot() bool { return catalog[k].format.IsDoubleSlot() }

// IsNumeric is true for every kind except OBJECT and VOID.
func (k Kind) IsNumeric() bool { return catalog[k].format.IsNumeric() }

// IsIntegral is true for numeric kinds other than FLOAT and DOUBLE.
func (k Kind) IsIntegral() bool { return catalog[k].format.IsIntegral() }

// IsSubwordOrInt is true for BOOLEAN, BYTE, SHORT, CHAR and INT.
func (k Kind) IsSubwordOrInt() bool { return k.IsIntegral() && k.IsSingleSlot() }

// IsSigned is true for BYTE, SHORT, INT and LONG.
func (k Kind) IsSigned() bool { return catalog[k].format.IsSigned() }

// IsUnsigned is true for BOOLEAN and CHAR.
func (k Kind) IsUnsigned() bool { return catalog[k].format.IsUnsigned() }

func (k Kind) IsFloating() bool { return catalog[k].format.IsFloating() }

// Zero returns the value of a default-initialized variable of this kind:
// numeric zero, Boolean(false), or nil for OBJECT and VOID.
func (k Kind) Zero() any { return catalog[k].zero }

// ZeroAs returns Zero converted to t, which must be compatible with the kind.
func (k Kind) ZeroAs(t reflect.Type) (any, error) {
	return k.convert(catalog[k].zero, t, false)
}

// IsConvertibleFrom reports whether a variable of this kind may be assigned
// from a value of kind src:
//   - unboxing followed by widening primitive conversion
//   - any kind converted to VOID
//   - boxing followed by widening reference conversion to OBJECT
//   - BOOLEAN converted to any kind
//
// SHORT and CHAR are never convertible to each other.
func (k Kind) IsConvertibleFrom(src Kind) bool {
	if k == src {
		return true
	}
	if k < src {
		// narrowing at best
		return false
	}
	if catalog[k].format^catalog[src].format == format.ShortCharMask {
		return false
	}
	return true
}

// RawPrimitive reports the kind whose storage holds this kind's raw value:
// INT for every single-slot primitive (and VOID), LONG for DOUBLE, and the
// kind itself for INT, LONG and OBJECT.
func (k Kind) RawPrimitive() Kind {
	switch k {
	case KindShort, KindByte, KindChar, KindBoolean, KindVoid, KindFloat:
		return KindInt
	case KindDouble:
		return KindLong
	}
	return k
}

// RawPrimitiveType is the primitive type of RawPrimitive.
func (k Kind) RawPrimitiveType() reflect.Type {
	return catalog[k.RawPrimitive()].primitive
}
