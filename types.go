package urlenc

import (
	"encoding"
	"reflect"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into a form value.
type Marshaler interface {
	MarshalForm() (string, error)
}

// Variant is the interface implemented by enumeration-like types. A variant
// without a payload encodes as its name; a variant that reports a non-nil
// payload cannot be represented and fails to encode. To decode a variant
// from its name, implement [Unmarshaler] as well.
type Variant interface {
	FormVariant() (name string, payload any)
}

// Char is a rune that encodes as the one-character string it represents
// rather than as its integer code point. Struct fields of type rune can get
// the same treatment with the "char" tag option.
type Char rune

// Pair is a key/value pair as it appears in form data. For example, "a=b" is
// the pair {a, b}.
type Pair struct {
	Key   string
	Value string
}

var (
	charType            = reflect.TypeOf(Char(0))
	marshalerType       = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	variantType         = reflect.TypeOf((*Variant)(nil)).Elem()
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// implements reports whether values of t, or pointers to them, implement the
// interface type iface.
func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}

// asInterface returns v as an I, taking its address first when v is
// addressable so that pointer receiver methods are found.
func asInterface[I any](v reflect.Value) (I, bool) {
	var zero I
	if !v.CanInterface() {
		return zero, false
	}
	if v.CanAddr() {
		if i, ok := v.Addr().Interface().(I); ok {
			return i, true
		}
	}
	i, ok := v.Interface().(I)
	return i, ok
}
