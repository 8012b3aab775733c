package wrapper

import (
	"reflect"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		simple string
	}{
		{KindBoolean, "BOOLEAN", "Boolean"},
		{KindByte, "BYTE", "Byte"},
		{KindShort, "SHORT", "Short"},
		{KindChar, "CHAR", "Char"},
		{KindInt, "INT", "Int"},
		{KindLong, "LONG", "Long"},
		{KindFloat, "FLOAT", "Float"},
		{KindDouble, "DOUBLE", "Double"},
		{KindObject, "OBJECT", "Object"},
		{KindVoid, "VOID", "Void"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.SimpleName(); got != tt.simple {
				t.Errorf("SimpleName() = %q, want %q", got, tt.simple)
			}
		})
	}

	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("Kind(42).String() = %q, want unknown", got)
	}
	if Kind(42).Valid() {
		t.Error("Kind(42) should not be valid")
	}
}

func TestKinds(t *testing.T) {
	ks := Kinds()
	if len(ks) != 10 {
		t.Fatalf("len(Kinds()) = %d, want 10", len(ks))
	}
	for i, k := range ks {
		if int(k) != i {
			t.Errorf("Kinds()[%d] = %v", i, k)
		}
	}
	ks[0] = KindVoid
	if Kinds()[0] != KindBoolean {
		t.Error("Kinds() should return a fresh slice")
	}
}

func TestKindAttributes(t *testing.T) {
	tests := []struct {
		kind      Kind
		tag       byte
		primitive reflect.Type
		boxed     reflect.Type
		width     int
		slots     int
	}{
		{KindBoolean, 'Z', reflect.TypeFor[bool](), reflect.TypeFor[Boolean](), 1, 1},
		{KindByte, 'B', reflect.TypeFor[int8](), reflect.TypeFor[Byte](), 8, 1},
		{KindShort, 'S', reflect.TypeFor[int16](), reflect.TypeFor[Short](), 16, 1},
		{KindChar, 'C', reflect.TypeFor[uint16](), reflect.TypeFor[Char](), 16, 1},
		{KindInt, 'I', reflect.TypeFor[int32](), reflect.TypeFor[Int](), 32, 1},
		{KindLong, 'J', reflect.TypeFor[int64](), reflect.TypeFor[Long](), 64, 2},
		{KindFloat, 'F', reflect.TypeFor[float32](), reflect.TypeFor[Float](), 32, 1},
		{KindDouble, 'D', reflect.TypeFor[float64](), reflect.TypeFor[Double](), 64, 2},
		{KindObject, 'L', reflect.TypeFor[any](), reflect.TypeFor[any](), 0, 1},
		{KindVoid, 'V', reflect.TypeFor[struct{}](), reflect.TypeFor[Void](), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Tag(); got != tt.tag {
				t.Errorf("Tag() = %c, want %c", got, tt.tag)
			}
			if got := tt.kind.PrimitiveType(); got != tt.primitive {
				t.Errorf("PrimitiveType() = %v, want %v", got, tt.primitive)
			}
			if got := tt.kind.BoxedType(); got != tt.boxed {
				t.Errorf("BoxedType() = %v, want %v", got, tt.boxed)
			}
			if got := tt.kind.BitWidth(); got != tt.width {
				t.Errorf("BitWidth() = %d, want %d", got, tt.width)
			}
			if got := tt.kind.StackSlots(); got != tt.slots {
				t.Errorf("StackSlots() = %d, want %d", got, tt.slots)
			}
			if got := tt.kind.IsSingleSlot(); got != (tt.slots == 1) {
				t.Errorf("IsSingleSlot() = %v", got)
			}
			if got := tt.kind.IsDoubleSlot(); got != (tt.slots == 2) {
				t.Errorf("IsDoubleSlot() = %v", got)
			}
			if tt.kind != KindObject && tt.kind.PrimitiveType() == tt.kind.BoxedType() {
				t.Error("only OBJECT may share primitive and boxed type")
			}
		})
	}
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind                                   Kind
		numeric, integral, subword, signed, fp bool
		unsigned                               bool
	}{
		{KindBoolean, true, true, true, false, false, true},
		{KindByte, true, true, true, true, false, false},
		{KindShort, true, true, true, true, false, false},
		{KindChar, true, true, true, false, false, true},
		{KindInt, true, true, true, true, false, false},
		{KindLong, true, true, false, true, false, false},
		{KindFloat, true, false, false, false, true, false},
		{KindDouble, true, false, false, false, true, false},
		{KindObject, false, false, false, false, false, false},
		{KindVoid, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsNumeric(); got != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", got, tt.numeric)
			}
			if got := tt.kind.IsIntegral(); got != tt.integral {
				t.Errorf("IsIntegral() = %v, want %v", got, tt.integral)
			}
			if got := tt.kind.IsSubwordOrInt(); got != tt.subword {
				t.Errorf("IsSubwordOrInt() = %v, want %v", got, tt.subword)
			}
			if got := tt.kind.IsSigned(); got != tt.signed {
				t.Errorf("IsSigned() = %v, want %v", got, tt.signed)
			}
			if got := tt.kind.IsUnsigned(); got != tt.unsigned {
				t.Errorf("IsUnsigned() = %v, want %v", got, tt.unsigned)
			}
			if got := tt.kind.IsFloating(); got != tt.fp {
				t.Errorf("IsFloating() = %v, want %v", got, tt.fp)
			}
		})
	}
}

func TestZero(t *testing.T) {
	tests := []struct {
		kind Kind
		want any
	}{
		{KindBoolean, Boolean(false)},
		{KindByte, Byte(0)},
		{KindShort, Short(0)},
		{KindChar, Char(0)},
		{KindInt, Int(0)},
		{KindLong, Long(0)},
		{KindFloat, Float(0)},
		{KindDouble, Double(0)},
		{KindObject, nil},
		{KindVoid, nil},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Zero(); got != tt.want {
				t.Errorf("Zero() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestZeroAs(t *testing.T) {
	t.Run("primitive target", func(t *testing.T) {
		got, err := KindInt.ZeroAs(reflect.TypeFor[int32]())
		if err != nil {
			t.Fatalf("ZeroAs() error = %v", err)
		}
		if got != Int(0) {
			t.Errorf("ZeroAs() = %#v, want Int(0)", got)
		}
	})

	t.Run("boxed target", func(t *testing.T) {
		got, err := KindBoolean.ZeroAs(reflect.TypeFor[Boolean]())
		if err != nil {
			t.Fatalf("ZeroAs() error = %v", err)
		}
		if got != Boolean(false) {
			t.Errorf("ZeroAs() = %#v, want Boolean(false)", got)
		}
	})

	t.Run("object", func(t *testing.T) {
		got, err := KindObject.ZeroAs(reflect.TypeFor[*int]())
		if err != nil || got != nil {
			t.Errorf("ZeroAs() = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("void", func(t *testing.T) {
		got, err := KindVoid.ZeroAs(reflect.TypeFor[Void]())
		if err != nil || got != nil {
			t.Errorf("ZeroAs() = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("incompatible", func(t *testing.T) {
		if _, err := KindInt.ZeroAs(reflect.TypeFor[int64]()); err == nil {
			t.Error("ZeroAs(int64) on INT should fail")
		}
	})
}

func TestIsConvertibleFrom(t *testing.T) {
	t.Run("reflexive", func(t *testing.T) {
		for _, k := range Kinds() {
			if !k.IsConvertibleFrom(k) {
				t.Errorf("%v.IsConvertibleFrom(%v) = false", k, k)
			}
		}
	})

	t.Run("short char exception", func(t *testing.T) {
		if KindChar.IsConvertibleFrom(KindShort) {
			t.Error("CHAR should not be convertible from SHORT")
		}
		if KindShort.IsConvertibleFrom(KindChar) {
			t.Error("SHORT should not be convertible from CHAR")
		}
		if !KindInt.IsConvertibleFrom(KindShort) || !KindInt.IsConvertibleFrom(KindChar) {
			t.Error("INT should be convertible from SHORT and CHAR")
		}
	})

	t.Run("ordering", func(t *testing.T) {
		for _, dst := range Kinds() {
			for _, src := range Kinds() {
				exception := (dst == KindChar && src == KindShort) || (dst == KindShort && src == KindChar)
				want := dst >= src && !exception
				if got := dst.IsConvertibleFrom(src); got != want {
					t.Errorf("%v.IsConvertibleFrom(%v) = %v, want %v", dst, src, got, want)
				}
			}
		}
	})

	t.Run("void accepts everything", func(t *testing.T) {
		for _, k := range Kinds() {
			if !KindVoid.IsConvertibleFrom(k) {
				t.Errorf("VOID.IsConvertibleFrom(%v) = false", k)
			}
		}
	})
}

func TestRawPrimitive(t *testing.T) {
	tests := []struct {
		kind Kind
		want Kind
	}{
		{KindBoolean, KindInt},
		{KindByte, KindInt},
		{KindShort, KindInt},
		{KindChar, KindInt},
		{KindInt, KindInt},
		{KindLong, KindLong},
		{KindFloat, KindInt},
		{KindDouble, KindLong},
		{KindObject, KindObject},
		{KindVoid, KindInt},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.RawPrimitive(); got != tt.want {
				t.Errorf("RawPrimitive() = %v, want %v", got, tt.want)
			}
			if got := tt.kind.RawPrimitiveType(); got != tt.want.PrimitiveType() {
				t.Errorf("RawPrimitiveType() = %v, want %v", got, tt.want.PrimitiveType())
			}
		})
	}
}
