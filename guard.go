package reluri

//go:generate go tool mockgen -source=guard.go -destination=guard_mock_test.go -package=reluri_test

import "reflect"

// TypeGuard decides which values are strings and converts them.
type TypeGuard interface {
	// AsString returns the string form of v and true,
	// or false if v must not be classified as a string.
	AsString(v any) (string, bool)
}

// TypeGuardFunc is an adapter to use ordinary functions as [TypeGuard].
type TypeGuardFunc func(v any) (string, bool)

func (f TypeGuardFunc) AsString(v any) (string, bool) { return f(v) }

var (
	// StrictStringGuard accepts only values of the predeclared string type.
	// Named string types, byte slices and pointers are rejected.
	StrictStringGuard TypeGuard = TypeGuardFunc(strictString)
	// LenientStringGuard accepts any value of string kind and byte slices.
	LenientStringGuard TypeGuard = TypeGuardFunc(lenientString)
)

func strictString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func lenientString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), true
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return string(rv.Bytes()), true
	default:
		return "", false
	}
}
