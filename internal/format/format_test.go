package format

import (
	"errors"
	"testing"

	wrerrors "github.com/wippyai/wrapper/errors"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name      string
		class     Class
		size      int
		slots     int
		wantWidth int
		wantSlots int
	}{
		{"boolean", ClassUnsigned, 1, 1, 1, 1},
		{"byte", ClassSigned, 8, 1, 8, 1},
		{"short", ClassSigned, 16, 1, 16, 1},
		{"char", ClassUnsigned, 16, 1, 16, 1},
		{"int", ClassSigned, 32, 1, 32, 1},
		{"long", ClassSigned, 64, 2, 64, 2},
		{"float", ClassFloating, 32, 1, 32, 1},
		{"double", ClassFloating, 64, 2, 64, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Pack(tt.class, tt.size, tt.slots)
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			if got := w.BitWidth(); got != tt.wantWidth {
				t.Errorf("BitWidth() = %d, want %d", got, tt.wantWidth)
			}
			if got := w.Slots(); got != tt.wantSlots {
				t.Errorf("Slots() = %d, want %d", got, tt.wantSlots)
			}
			if got := w.Class(); got != tt.class {
				t.Errorf("Class() = %d, want %d", got, tt.class)
			}
		})
	}
}

func TestPack_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		size  int
		slots int
	}{
		{"class with low bits", ClassSigned | 1, 32, 1},
		{"unknown class", 2 << ClassShift, 32, 1},
		{"width not power of two", ClassSigned, 24, 1},
		{"zero integral width", ClassUnsigned, 0, 1},
		{"floating width 16", ClassFloating, 16, 1},
		{"two slots narrow", ClassSigned, 32, 2},
		{"one slot wide", ClassSigned, 64, 1},
		{"zero slots", ClassSigned, 8, 0},
		{"width overflows field", ClassSigned, 2048, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pack(tt.class, tt.size, tt.slots)
			if err == nil {
				t.Fatal("Pack() should fail")
			}
			if !errors.Is(err, wrerrors.ErrInvariantViolation) {
				t.Errorf("error = %v, want invariant violation", err)
			}
		})
	}
}

func TestMustPack_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustPack should panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, wrerrors.ErrInvariantViolation) {
			t.Errorf("panic value = %v, want invariant violation", r)
		}
	}()
	MustPack(ClassFloating, 8, 1)
}

func TestReferenceWords(t *testing.T) {
	if Signed(32) != Int {
		t.Errorf("Signed(32) = %d, want %d", Signed(32), Int)
	}
	if Signed(16) != Short {
		t.Errorf("Signed(16) = %d, want %d", Signed(16), Short)
	}
	if Unsigned(1) != Boolean {
		t.Errorf("Unsigned(1) = %d, want %d", Unsigned(1), Boolean)
	}
	if Unsigned(16) != Char {
		t.Errorf("Unsigned(16) = %d, want %d", Unsigned(16), Char)
	}
	if Floating(32) != Float {
		t.Errorf("Floating(32) = %d, want %d", Floating(32), Float)
	}
	if Other(0) != Void {
		t.Errorf("Other(0) = %d, want %d", Other(0), Void)
	}
	if Signed(64).Slots() != 2 || Floating(64).Slots() != 2 {
		t.Error("64-bit words should take two slots")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name                                    string
		w                                       Word
		numeric, integral, signed, unsigned, fp bool
		single, double                          bool
	}{
		{"boolean", Unsigned(1), true, true, false, true, false, true, false},
		{"byte", Signed(8), true, true, true, false, false, true, false},
		{"short", Signed(16), true, true, true, false, false, true, false},
		{"char", Unsigned(16), true, true, false, true, false, true, false},
		{"int", Signed(32), true, true, true, false, false, true, false},
		{"long", Signed(64), true, true, true, false, false, false, true},
		{"float", Floating(32), true, false, false, false, true, true, false},
		{"double", Floating(64), true, false, false, false, true, false, true},
		{"object", Other(1), false, false, false, false, false, true, false},
		{"void", Other(0), false, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.IsNumeric(); got != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", got, tt.numeric)
			}
			if got := tt.w.IsIntegral(); got != tt.integral {
				t.Errorf("IsIntegral() = %v, want %v", got, tt.integral)
			}
			if got := tt.w.IsSigned(); got != tt.signed {
				t.Errorf("IsSigned() = %v, want %v", got, tt.signed)
			}
			if got := tt.w.IsUnsigned(); got != tt.unsigned {
				t.Errorf("IsUnsigned() = %v, want %v", got, tt.unsigned)
			}
			if got := tt.w.IsFloating(); got != tt.fp {
				t.Errorf("IsFloating() = %v, want %v", got, tt.fp)
			}
			if got := tt.w.IsSingleSlot(); got != tt.single {
				t.Errorf("IsSingleSlot() = %v, want %v", got, tt.single)
			}
			if got := tt.w.IsDoubleSlot(); got != tt.double {
				t.Errorf("IsDoubleSlot() = %v, want %v", got, tt.double)
			}
		})
	}
}

func TestShortCharMask(t *testing.T) {
	words := []Word{
		Unsigned(1), Signed(8), Signed(16), Unsigned(16), Signed(32),
		Signed(64), Floating(32), Floating(64), Other(1), Other(0),
	}
	pairs := 0
	for i, a := range words {
		for j, b := range words {
			if i != j && a^b == ShortCharMask {
				pairs++
			}
		}
	}
	// SHORT/CHAR and CHAR/SHORT
	if pairs != 2 {
		t.Errorf("ShortCharMask matches %d ordered pairs, want 2", pairs)
	}
}
