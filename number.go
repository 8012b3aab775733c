package wrapper

import "math"

// number is the numeric view Wrap converts from. Integers keep their
// two's-complement bits in i; floats keep their value in f.
type number struct {
	f        float64
	i        int64
	floating bool
	unsigned bool
}

// numberValue handles every Go numeric type, bool, the boxed types, and nil
// (numeric zero). Char and uint16 are code units.
func numberValue(value any) (number, bool) {
	switch v := value.(type) {
	case nil:
		return number{}, true
	case bool:
		return boolNumber(v), true
	case Boolean:
		return boolNumber(bool(v)), true
	case int:
		return number{i: int64(v)}, true
	case int8:
		return number{i: int64(v)}, true
	case int16:
		return number{i: int64(v)}, true
	case int32:
		return number{i: int64(v)}, true
	case int64:
		return number{i: v}, true
	case Byte:
		return number{i: int64(v)}, true
	case Short:
		return number{i: int64(v)}, true
	case Int:
		return number{i: int64(v)}, true
	case Long:
		return number{i: int64(v)}, true
	case uint8:
		return number{i: int64(v)}, true
	case uint16:
		return number{i: int64(v)}, true
	case Char:
		return number{i: int64(v)}, true
	case uint32:
		return number{i: int64(v)}, true
	case uint:
		return number{i: int64(v), unsigned: true}, true
	case uint64:
		return number{i: int64(v), unsigned: true}, true
	case uintptr:
		return number{i: int64(v), unsigned: true}, true
	case float32:
		return number{f: float64(v), floating: true}, true
	case float64:
		return number{f: v, floating: true}, true
	case Float:
		return number{f: float64(v), floating: true}, true
	case Double:
		return number{f: float64(v), floating: true}, true
	}
	return number{}, false
}

func boolNumber(b bool) number {
	if b {
		return number{i: 1}
	}
	return number{}
}

func (n number) toInt32() int32 {
	if n.floating {
		return saturateInt32(n.f)
	}
	return int32(n.i)
}

func (n number) toInt64() int64 {
	if n.floating {
		return saturateInt64(n.f)
	}
	return n.i
}

func (n number) toFloat32() float32 {
	switch {
	case n.floating:
		return float32(n.f)
	case n.unsigned:
		return float32(uint64(n.i))
	}
	return float32(n.i)
}

func (n number) toFloat64() float64 {
	switch {
	case n.floating:
		return n.f
	case n.unsigned:
		return float64(uint64(n.i))
	}
	return float64(n.i)
}

// saturateInt32 rounds toward zero and clamps; NaN becomes 0.
func saturateInt32(f float64) int32 {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// saturateInt64 rounds toward zero and clamps; NaN becomes 0.
func saturateInt64(f float64) int64 {
	switch {
	case f != f:
		return 0
	case f >= float64(math.MaxInt64):
		return math.MaxInt64
	case f <= float64(math.MinInt64):
		return math.MinInt64
	}
	return int64(f)
}
