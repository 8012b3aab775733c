package slots

import (
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wrapper"
	"github.com/wippyai/wrapper/errors"
	"github.com/wippyai/wrapper/refs"
)

// ValueType returns the core value type that carries k. FLOAT is f32 even
// though its raw storage kind is INT. VOID has no value type.
func ValueType(k wrapper.Kind) (api.ValueType, error) {
	switch k {
	case wrapper.KindVoid:
		return 0, errors.InvalidArgument(errors.PhaseSlots, "VOID has no value type", k)
	case wrapper.KindObject:
		return api.ValueTypeExternref, nil
	case wrapper.KindFloat:
		return api.ValueTypeF32, nil
	}
	if !k.Valid() {
		return 0, errors.InvalidArgument(errors.PhaseSlots, "unknown kind", uint8(k))
	}
	switch k.RawPrimitive() {
	case wrapper.KindLong:
		if k.IsFloating() {
			return api.ValueTypeF64, nil
		}
		return api.ValueTypeI64, nil
	default:
		return api.ValueTypeI32, nil
	}
}

// Signature maps kinds to value types, dropping VOID entries.
func Signature(kinds []wrapper.Kind) ([]api.ValueType, error) {
	out := make([]api.ValueType, 0, len(kinds))
	for _, k := range kinds {
		if k == wrapper.KindVoid {
			continue
		}
		vt, err := ValueType(k)
		if err != nil {
			return nil, err
		}
		out = append(out, vt)
	}
	return out, nil
}

// Encode converts x into kind k and packs it into one stack slot.
// OBJECT values are inserted into opts.Refs and encoded as their handle;
// nil encodes as handle 0. The handle belongs to whoever receives the slot
// and stays in the table until passed to Release.
func Encode(k wrapper.Kind, x any, opts Options) (uint64, error) {
	vt, err := ValueType(k)
	if err != nil {
		return 0, err
	}
	if k == wrapper.KindObject {
		if opts.Refs == nil {
			return 0, errors.InvalidArgument(errors.PhaseSlots, "OBJECT needs a reference table", nil)
		}
		h, err := opts.Refs.Put(x)
		if err != nil {
			return 0, err
		}
		return api.EncodeExternref(uintptr(h)), nil
	}

	var boxed any
	if opts.AllowNarrowing {
		boxed, err = k.Cast(x, k.BoxedType())
	} else {
		boxed, err = k.Convert(x, k.BoxedType())
	}
	if err != nil {
		return 0, err
	}
	raw, err := k.UnwrapRaw(boxed)
	if err != nil {
		return 0, err
	}

	switch vt {
	case api.ValueTypeI32:
		return api.EncodeI32(int32(raw)), nil
	case api.ValueTypeI64:
		return api.EncodeI64(raw), nil
	case api.ValueTypeF32:
		return api.EncodeF32(math.Float32frombits(uint32(raw))), nil
	default:
		return api.EncodeF64(math.Float64frombits(uint64(raw))), nil
	}
}

// Decode unpacks a stack slot into a boxed value of kind k. OBJECT slots are
// resolved through opts.Refs; the handle stays live.
func Decode(k wrapper.Kind, slot uint64, opts Options) (any, error) {
	vt, err := ValueType(k)
	if err != nil {
		return nil, err
	}

	var raw int64
	switch vt {
	case api.ValueTypeExternref:
		if opts.Refs == nil {
			return nil, errors.InvalidArgument(errors.PhaseSlots, "OBJECT needs a reference table", nil)
		}
		return opts.Refs.Resolve(refs.Handle(api.DecodeExternref(slot)))
	case api.ValueTypeI32:
		raw = int64(api.DecodeI32(slot))
	case api.ValueTypeI64:
		raw = int64(slot)
	case api.ValueTypeF32:
		raw = int64(int32(math.Float32bits(api.DecodeF32(slot))))
	default:
		raw = int64(math.Float64bits(api.DecodeF64(slot)))
	}
	return k.WrapRaw(raw), nil
}

// Release frees the table entry behind an OBJECT slot produced by Encode and
// returns the value it held. Slots of other kinds, and handle 0, hold nothing
// and report false.
func Release(k wrapper.Kind, slot uint64, opts Options) (any, bool) {
	if k != wrapper.KindObject || opts.Refs == nil {
		return nil, false
	}
	h := refs.Handle(api.DecodeExternref(slot))
	if h == 0 {
		return nil, false
	}
	return opts.Refs.Remove(h)
}
