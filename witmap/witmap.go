// Package witmap relates catalog kinds to WIT primitive types.
//
// Each numeric kind has exactly one WIT counterpart; CHAR is a UTF-16 code
// unit and maps to u16, not to the WIT char type (a Unicode scalar value).
// OBJECT and VOID have no primitive counterpart.
package witmap

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/wrapper"
	"github.com/wippyai/wrapper/errors"
)

var witTypes = map[wrapper.Kind]wit.Type{
	wrapper.KindBoolean: wit.Bool{},
	wrapper.KindByte:    wit.S8{},
	wrapper.KindShort:   wit.S16{},
	wrapper.KindChar:    wit.U16{},
	wrapper.KindInt:     wit.S32{},
	wrapper.KindLong:    wit.S64{},
	wrapper.KindFloat:   wit.F32{},
	wrapper.KindDouble:  wit.F64{},
}

var witNames = map[wrapper.Kind]string{
	wrapper.KindBoolean: "bool",
	wrapper.KindByte:    "s8",
	wrapper.KindShort:   "s16",
	wrapper.KindChar:    "u16",
	wrapper.KindInt:     "s32",
	wrapper.KindLong:    "s64",
	wrapper.KindFloat:   "f32",
	wrapper.KindDouble:  "f64",
}

// ToWIT returns the WIT primitive for k.
func ToWIT(k wrapper.Kind) (wit.Type, error) {
	if t, ok := witTypes[k]; ok {
		return t, nil
	}
	return nil, errors.InvalidArgument(errors.PhaseWIT, k.String()+" has no WIT primitive", k)
}

// FromWIT returns the kind for a WIT primitive. Unsigned types other than
// u16, char, string and every defined type are rejected.
func FromWIT(t wit.Type) (wrapper.Kind, error) {
	switch t.(type) {
	case wit.Bool:
		return wrapper.KindBoolean, nil
	case wit.S8:
		return wrapper.KindByte, nil
	case wit.S16:
		return wrapper.KindShort, nil
	case wit.U16:
		return wrapper.KindChar, nil
	case wit.S32:
		return wrapper.KindInt, nil
	case wit.S64:
		return wrapper.KindLong, nil
	case wit.F32:
		return wrapper.KindFloat, nil
	case wit.F64:
		return wrapper.KindDouble, nil
	}
	return 0, errors.New(errors.PhaseWIT, errors.KindInvalidArgument).
		GoType(fmt.Sprintf("%T", t)).
		Detail("no kind for WIT type").
		Value(t).
		Build()
}

// TypeName returns the WIT spelling of k's primitive, or "" for OBJECT and
// VOID.
func TypeName(k wrapper.Kind) string {
	return witNames[k]
}

// ParseKind parses a WIT primitive type name such as "s16" into a kind.
func ParseKind(s string) (wrapper.Kind, error) {
	t, err := wit.ParseType(s)
	if err != nil {
		return 0, errors.New(errors.PhaseWIT, errors.KindInvalidArgument).
			Detailf("parse %q", s).
			Cause(err).
			Build()
	}
	return FromWIT(t)
}

// FlatCount is the number of flat core values k occupies in the canonical
// ABI: 0 for VOID, 1 otherwise. An OBJECT travels as a single handle.
// This differs from StackSlots, which counts LONG and DOUBLE twice.
func FlatCount(k wrapper.Kind) int {
	if k == wrapper.KindVoid {
		return 0
	}
	return 1
}
