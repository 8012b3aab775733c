package wrapper

import (
	"reflect"
	"strconv"

	"github.com/wippyai/wrapper/errors"
)

// Perfect hashes over the ten catalog entries:
//
//	tags            (c + c>>1) % 16
//	primitive names (n[0] + 3*n[len-1]) % 16   int8..int64 share n[0..2]
//	boxed names     (3*n[1] + n[2]) % 16       the unnamed any hashes to 0
//
// buildTables rejects any collision, so a catalog change that breaks a hash
// fails at package initialization.
const tableSize = 16

const noKind Kind = 0xff

type lookupTables struct {
	primitive [tableSize]Kind
	boxed     [tableSize]Kind
	tag       [tableSize]Kind
}

var tables = mustBuildTables()

func mustBuildTables() *lookupTables {
	lt, err := buildTables(catalog[:])
	if err != nil {
		panic(err)
	}
	return lt
}

func buildTables(descs []descriptor) (*lookupTables, error) {
	lt := &lookupTables{}
	for i := 0; i < tableSize; i++ {
		lt.primitive[i] = noKind
		lt.boxed[i] = noKind
		lt.tag[i] = noKind
	}
	for i := range descs {
		d := &descs[i]
		k := Kind(i)
		if err := place(&lt.primitive, "primitive", hashPrimitive(d.primitive), k, descs); err != nil {
			return nil, err
		}
		if err := place(&lt.boxed, "boxed", hashBoxed(d.boxed), k, descs); err != nil {
			return nil, err
		}
		if err := place(&lt.tag, "tag", hashTag(d.tag), k, descs); err != nil {
			return nil, err
		}
	}
	return lt, nil
}

func place(table *[tableSize]Kind, name string, slot int, k Kind, descs []descriptor) error {
	if prev := table[slot]; prev != noKind {
		return errors.InvariantViolation("%s hash slot %d holds %s, cannot add %s",
			name, slot, descs[prev].name, descs[k].name)
	}
	table[slot] = k
	return nil
}

func hashPrimitive(t reflect.Type) int {
	n := t.String()
	if len(n) < 3 {
		return 0
	}
	return (int(n[0]) + 3*int(n[len(n)-1])) % tableSize
}

func hashBoxed(t reflect.Type) int {
	n := t.Name()
	if len(n) < 3 {
		return 0
	}
	return (3*int(n[1]) + int(n[2])) % tableSize
}

func hashTag(c byte) int {
	return (int(c) + int(c>>1)) % tableSize
}

func findPrimitiveType(t reflect.Type) (Kind, bool) {
	if t == nil {
		return 0, false
	}
	k := tables.primitive[hashPrimitive(t)]
	if k != noKind && catalog[k].primitive == t {
		return k, true
	}
	return 0, false
}

func findBoxedType(t reflect.Type) (Kind, bool) {
	if t == nil {
		return 0, false
	}
	k := tables.boxed[hashBoxed(t)]
	if k != noKind && catalog[k].boxed == t {
		return k, true
	}
	if IsInterfaceType(t) {
		return KindObject, true
	}
	return 0, false
}

// ForPrimitiveType returns the kind whose primitive type is t.
// The type may be any, meaning OBJECT; otherwise it must be one of the
// catalog primitives (bool, int8, int16, uint16, int32, int64, float32,
// float64, struct{}).
func ForPrimitiveType(t reflect.Type) (Kind, error) {
	if k, ok := findPrimitiveType(t); ok {
		return k, nil
	}
	return 0, errors.InvalidArgument(errors.PhaseLookup, "not primitive: "+typeString(t), t)
}

// MustForPrimitiveType is ForPrimitiveType for static tables; it panics on a
// type outside the catalog.
func MustForPrimitiveType(t reflect.Type) Kind {
	k, err := ForPrimitiveType(t)
	if err != nil {
		panic(err)
	}
	return k
}

// ForBoxedType returns the kind that boxes values into t.
// Any interface type that is not itself a boxed type resolves to OBJECT.
func ForBoxedType(t reflect.Type) (Kind, error) {
	if k, ok := findBoxedType(t); ok {
		return k, nil
	}
	return 0, errors.InvalidArgument(errors.PhaseLookup, "not a boxed type: "+typeString(t), t)
}

// ForBasicType returns the kind for a tag byte, OBJECT for 'L'.
// The array marker '[' is not a basic type tag.
func ForBasicType(tag byte) (Kind, error) {
	k := tables.tag[hashTag(tag)]
	if k != noKind && catalog[k].tag == tag {
		return k, nil
	}
	return 0, errors.InvalidArgument(errors.PhaseLookup, "not a basic type tag: "+strconv.QuoteRune(rune(tag)), tag)
}

// MustForBasicType is ForBasicType for static tables; it panics on a bad tag.
func MustForBasicType(tag byte) Kind {
	k, err := ForBasicType(tag)
	if err != nil {
		panic(err)
	}
	return k
}

// ForType returns the kind for t if it is primitive, else OBJECT.
// Every reference type resolves to OBJECT, including boxed types, slices
// and arrays.
func ForType(t reflect.Type) (Kind, error) {
	if t == nil {
		return 0, errors.InvalidArgument(errors.PhaseLookup, "nil type", nil)
	}
	if IsPrimitiveType(t) {
		return ForPrimitiveType(t)
	}
	return KindObject, nil
}

// IsBoxedType reports whether t is a boxed type or an interface.
func IsBoxedType(t reflect.Type) bool {
	_, ok := findBoxedType(t)
	return ok
}

// AsBoxedType returns the boxed type for a catalog primitive, else t unchanged.
func AsBoxedType(t reflect.Type) reflect.Type {
	if k, ok := findPrimitiveType(t); ok {
		return catalog[k].boxed
	}
	return t
}

// AsPrimitiveType returns the primitive type for a boxed type, else t unchanged.
// Interfaces other than any are returned unchanged.
func AsPrimitiveType(t reflect.Type) reflect.Type {
	k, ok := findBoxedType(t)
	if !ok || (k == KindObject && t != objectType) {
		return t
	}
	return catalog[k].primitive
}

// BasicTypeTag returns the tag for t. Every non-primitive reports 'L'.
func BasicTypeTag(t reflect.Type) (byte, error) {
	k, err := ForType(t)
	if err != nil {
		return 0, err
	}
	return catalog[k].tag, nil
}
