package wrapper

import "reflect"

// IsPrimitiveType reports whether t is the primitive type of a catalog kind:
// bool, int8, int16, uint16, int32, int64, float32, float64 or struct{} (void).
// Other predeclared types such as int, uint64 and complex128 have no kind and
// are not primitive.
func IsPrimitiveType(t reflect.Type) bool {
	_, ok := findPrimitiveType(t)
	return ok
}

// IsInterfaceType reports whether t is an interface type.
func IsInterfaceType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface
}

// typeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
