package format

import (
	"github.com/wippyai/wrapper/errors"
)

// Word is a packed format word.
type Word int32

// Class is the sign class field of a Word, already shifted into place.
type Class int32

// Bit offsets of the Word fields: slot count, bit width, sign class.
const (
	// SlotShift positions the 2-bit slot count.
	SlotShift = 0
	// SizeShift positions the 10-bit width.
	SizeShift = 2
	// ClassShift positions the sign class, which fills the remaining high bits.
	ClassShift = 12
)

// Sign classes. Signed words are negative, so class order is word order.
const (
	ClassSigned   Class = -1 << ClassShift
	ClassUnsigned Class = 0 << ClassShift
	ClassFloating Class = 1 << ClassShift
)

const (
	// SlotMask extracts the slot count after shifting by SlotShift.
	SlotMask = (1 << (SizeShift - SlotShift)) - 1
	// SizeMask extracts the width after shifting by SizeShift.
	SizeMask = (1 << (ClassShift - SizeShift)) - 1
)

// Reference words used by the class predicates and the SHORT/CHAR exception.
const (
	Int     = Word(ClassSigned) | 32<<SizeShift | 1<<SlotShift
	Short   = Word(ClassSigned) | 16<<SizeShift | 1<<SlotShift
	Boolean = Word(ClassUnsigned) | 1<<SizeShift | 1<<SlotShift
	Char    = Word(ClassUnsigned) | 16<<SizeShift | 1<<SlotShift
	Float   = Word(ClassFloating) | 32<<SizeShift | 1<<SlotShift
	Void    = Word(ClassUnsigned) | 0<<SizeShift | 0<<SlotShift

	// NumMask selects the width and class fields; it is zero only for
	// object and void.
	NumMask = Word(-1) << SizeShift

	// ShortCharMask is the XOR of the SHORT and CHAR words. No other pair of
	// catalog words differs by exactly these bits.
	ShortCharMask = Short ^ Char
)

// Pack builds a word, checking the field invariants.
func Pack(class Class, size, slots int) (Word, error) {
	if (class>>ClassShift)<<ClassShift != class {
		return 0, errors.InvariantViolation("class %d has bits below shift %d", class, ClassShift)
	}
	if size < 0 || size > SizeMask || size&(size-1) != 0 {
		return 0, errors.InvariantViolation("width %d is not a power of two", size)
	}
	switch class {
	case ClassSigned, ClassUnsigned:
		if size == 0 {
			return 0, errors.InvariantViolation("integral width must be positive")
		}
	case ClassFloating:
		if size != 32 && size != 64 {
			return 0, errors.InvariantViolation("floating width %d must be 32 or 64", size)
		}
	default:
		return 0, errors.InvariantViolation("unknown class %d", class)
	}
	switch slots {
	case 2:
		if size != 64 {
			return 0, errors.InvariantViolation("two slots require width 64, got %d", size)
		}
	case 1:
		if size > 32 {
			return 0, errors.InvariantViolation("one slot holds at most 32 bits, got %d", size)
		}
	default:
		return 0, errors.InvariantViolation("slot count %d must be 1 or 2", slots)
	}
	return Word(class) | Word(size<<SizeShift) | Word(slots<<SlotShift), nil
}

// MustPack is Pack for static catalog construction; it panics on a broken invariant.
func MustPack(class Class, size, slots int) Word {
	w, err := Pack(class, size, slots)
	if err != nil {
		panic(err)
	}
	return w
}

func slotsFor(size int) int {
	if size > 32 {
		return 2
	}
	return 1
}

// Signed builds a signed integral word of the given width.
func Signed(size int) Word { return MustPack(ClassSigned, size, slotsFor(size)) }

// Unsigned builds an unsigned integral word of the given width.
func Unsigned(size int) Word { return MustPack(ClassUnsigned, size, slotsFor(size)) }

// Floating builds a floating word; size must be 32 or 64.
func Floating(size int) Word { return MustPack(ClassFloating, size, slotsFor(size)) }

// Other builds the unclassified word used by object and void.
func Other(slots int) Word { return Word(slots << SlotShift) }

// BitWidth returns the width field; 0 for object and void.
func (w Word) BitWidth() int { return int(w>>SizeShift) & SizeMask }

// Slots returns the slot count field; 0 for void.
func (w Word) Slots() int { return int(w>>SlotShift) & SlotMask }

// Class returns the sign class field. Object and void report ClassUnsigned.
func (w Word) Class() Class { return Class((w >> ClassShift) << ClassShift) }

// IsSingleSlot reports a one-slot value (everything but LONG, DOUBLE and void).
func (w Word) IsSingleSlot() bool { return w&(1<<SlotShift) != 0 }

// IsDoubleSlot reports a two-slot value.
func (w Word) IsDoubleSlot() bool { return w&(2<<SlotShift) != 0 }

// IsNumeric reports a word with a width, i.e. not object or void.
func (w Word) IsNumeric() bool { return w&NumMask != 0 }

// IsIntegral reports a numeric, non-floating word. BOOLEAN counts.
func (w Word) IsIntegral() bool { return w.IsNumeric() && w < Float }

// IsSigned reports the signed class.
func (w Word) IsSigned() bool { return w < Void }

// IsUnsigned reports an unsigned integral word (BOOLEAN and CHAR).
func (w Word) IsUnsigned() bool { return w >= Boolean && w < Float }

// IsFloating reports the floating class.
func (w Word) IsFloating() bool { return w >= Float }
