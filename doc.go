// Package wrapper is the closed catalog of primitive value kinds used by a
// dynamic value-conversion layer.
//
// Ten kinds exist, in widening order:
//
//	BOOLEAN < BYTE < SHORT < CHAR < INT < LONG < FLOAT < DOUBLE < OBJECT < VOID
//
// Each kind has a primitive Go type, a boxed Go type, a one-byte tag, a zero
// value and a packed format word (sign class, bit width, slot count).
//
// # Architecture Overview
//
//	wrapper/            Kind catalog, lookup tables, conversion engine
//	├── internal/format Format word packing and predicates
//	├── errors/         Structured error types
//	├── slots/          Kinds as wazero stack slots and host functions
//	├── refs/           Handle table for object references in slots
//	├── witmap/         Kinds as WIT primitive types
//	└── cmd/kinds/      Catalog inspector and interactive explorer
//
// # Boxed Types
//
// A boxed value is one of the named types Boolean, Byte, Short, Char, Int,
// Long, Float, Double or Void carried in an any. The named type keeps the kind
// of the value; the underlying Go primitive does not (Int and int32 share a
// representation but only Int resolves back to INT). OBJECT is boxed as any.
//
// # Quick Start
//
// Resolve a kind, then convert:
//
//	k, err := wrapper.ForBasicType('B')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := k.Wrap(257)        // wrapper.Byte(1)
//	ok := wrapper.KindInt.IsConvertibleFrom(k) // true
//
//	// Strict conversion refuses narrowing, Cast permits it.
//	_, err = wrapper.KindInt.Convert(wrapper.Long(1), reflect.TypeFor[int32]())
//	// err matches errors.ErrIncompatibleType
//	n, _ := wrapper.CastTo[int32](wrapper.Long(1 << 40)) // 0
//
// # Thread Safety
//
// The catalog and the lookup tables are built during package initialization
// and never written again. Every function in this package is safe for
// concurrent use.
package wrapper
