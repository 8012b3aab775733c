package wrapper

import (
	"go.uber.org/zap"

	"github.com/wippyai/wrapper/errors"
	"github.com/wippyai/wrapper/internal/format"
)

// Verify re-runs the catalog consistency checks: every format word repacks
// from its own fields, the hash tables build without collision, and every
// kind round-trips through all three lookups. Package initialization already
// panics on a broken catalog; Verify reports the same checks for tooling.
func Verify() error {
	log := Logger()

	if _, err := buildTables(catalog[:]); err != nil {
		log.Error("lookup tables collide", zap.Error(err))
		return err
	}

	for _, k := range Kinds() {
		d := &catalog[k]
		if err := verifyFormat(k, d.format); err != nil {
			log.Error("format word broken", zap.Stringer("kind", k), zap.Error(err))
			return err
		}
		if got, err := ForBasicType(d.tag); err != nil || got != k {
			return errors.InvariantViolation("tag %q resolves to %s, want %s", d.tag, got, k)
		}
		if got, err := ForPrimitiveType(d.primitive); err != nil || got != k {
			return errors.InvariantViolation("primitive %s resolves to %s, want %s", d.primitive, got, k)
		}
		if got, err := ForBoxedType(d.boxed); err != nil || got != k {
			return errors.InvariantViolation("boxed %s resolves to %s, want %s", d.boxed, got, k)
		}
		log.Debug("kind verified",
			zap.Stringer("kind", k),
			zap.String("tag", string(rune(d.tag))),
			zap.Int("width", d.format.BitWidth()),
			zap.Int("slots", d.format.Slots()))
	}
	return nil
}

func verifyFormat(k Kind, w format.Word) error {
	if !w.IsNumeric() {
		want := format.Other(w.Slots())
		if w != want || (k != KindObject && k != KindVoid) {
			return errors.InvariantViolation("%s: unclassified word %d", k, w)
		}
		return nil
	}
	repacked, err := format.Pack(w.Class(), w.BitWidth(), w.Slots())
	if err != nil {
		return err
	}
	if repacked != w {
		return errors.InvariantViolation("%s: word %d repacks as %d", k, w, repacked)
	}
	return nil
}
