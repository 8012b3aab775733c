package wrapper

import (
	"reflect"

	"github.com/wippyai/wrapper/errors"
)

// CastTo converts x to T through the kind of T, permitting narrowing.
// T may be a boxed type, a catalog primitive, or any reference type (OBJECT).
func CastTo[T any](x any) (T, error) {
	return convertTo[T](x, true)
}

// ConvertTo is CastTo without narrowing.
func ConvertTo[T any](x any) (T, error) {
	return convertTo[T](x, false)
}

func convertTo[T any](x any, allowNarrowing bool) (T, error) {
	var out T
	t := reflect.TypeFor[T]()
	k, ok := findBoxedType(t)
	if !ok {
		var err error
		if k, err = ForType(t); err != nil {
			return out, err
		}
	}
	v, err := k.convert(x, t, allowNarrowing)
	if err != nil || v == nil {
		return out, err
	}
	if r, ok := v.(T); ok {
		return r, nil
	}
	// A boxed result for a primitive T, e.g. Int for int32.
	rv := reflect.ValueOf(v)
	if !rv.Type().ConvertibleTo(t) {
		return out, errors.IncompatibleType(errors.PhaseConvert, rv.Type().String(), t.String())
	}
	return rv.Convert(t).Interface().(T), nil
}
