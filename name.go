package typereg

import (
	"fmt"
	"reflect"
)

// DeriveName returns the declared type name of item, the key used when an
// item is registered without an explicit one. Pointers are followed to
// their element type, so *Sedan and Sedan both derive "Sedan".
//
// Unnamed types (function values, anonymous structs, slices, maps) have no
// declared name; DeriveName returns ErrInvalidArgument for them and callers
// must supply an explicit key instead.
func DeriveName(item any) (string, error) {
	t := reflect.TypeOf(item)
	if t == nil {
		return "", fmt.Errorf("derive name: nil item: %w", ErrInvalidArgument)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return "", fmt.Errorf("derive name: type %s has no declared name: %w", t, ErrInvalidArgument)
	}
	return name, nil
}

// isNilItem reports whether item is a nil value of a nilable kind (or a nil
// interface). Non-nilable kinds are never nil.
func isNilItem(item any) bool {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
