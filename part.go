package urlenc

import (
	"encoding"
	"math/big"
	"reflect"
	"unicode/utf8"
)

var bigIntType = reflect.TypeOf(big.Int{})

// serializePart visits v once and reports the text it resolves to through
// exactly one method of s. Optionals and sequences re-enter through
// s.acceptSome.
func serializePart[T any](s sink[T], v reflect.Value) (T, error) {
	var zero T
	if !v.IsValid() {
		return s.acceptNone()
	}
	if b, ok := asBigInt(v); ok {
		return s.acceptBorrowed(formatBig(b))
	}

	// Nil pointers and interfaces must not reach a method call, so custom
	// text is only considered once they have been dereferenced. A nil slice
	// or map is absent even when its type marshals itself.
	k := v.Kind()
	if (k == reflect.Slice || k == reflect.Map) && v.IsNil() && hasCustomText(v.Type()) {
		return s.acceptNone()
	}
	if k != reflect.Pointer && k != reflect.Interface {
		text, ok, err := customText(v)
		if err != nil {
			return zero, err
		}
		if ok {
			return s.acceptOwned(text)
		}
		if vr, ok := asInterface[Variant](v); ok {
			name, payload := vr.FormVariant()
			if payload != nil {
				return zero, s.unsupported(v.Type())
			}
			return s.acceptStatic(name)
		}
	}

	if v.Type() == charType {
		return s.acceptOwned(string(rune(v.Int())))
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return s.acceptStatic("true")
		}
		return s.acceptStatic("false")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.acceptBorrowed(formatInt(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.acceptBorrowed(formatUint(v.Uint()))
	case reflect.Float32, reflect.Float64:
		return s.acceptBorrowed(formatFloat(v.Float(), v.Type().Bits()))
	case reflect.String:
		return s.acceptBorrowed(v.String())
	case reflect.Pointer:
		if v.IsNil() {
			return s.acceptNone()
		}
		return s.acceptSome(v.Elem())
	case reflect.Interface:
		// An interface is a dynamic type, not an optional: only nil is
		// absent, and the held value is visited in place.
		if v.IsNil() {
			return s.acceptNone()
		}
		return serializePart(s, v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return s.acceptNone()
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return serializeBytes(s, v.Bytes())
		}
		return serializeSeq(s, v, v.Len())
	case reflect.Array:
		return serializeSeq(s, v, v.Len())
	case reflect.Func:
		if !isSeqFunc(v.Type()) {
			break
		}
		if v.IsNil() {
			return s.acceptNone()
		}
		return serializeSeq(s, v, -1)
	case reflect.Struct:
		t := v.Type()
		switch {
		case t.NumField() == 0 && t.Name() == "":
			// A bare struct{} carries no name to encode.
			return zero, s.unsupported(t)
		case t.NumField() == 0:
			return s.acceptStatic(t.Name())
		case t.NumField() == 1 && t.Field(0).Anonymous && t.Field(0).IsExported():
			return serializePart(s, v.Field(0))
		}
	}
	return zero, s.unsupported(v.Type())
}

// serializeSeq submits every element of v to s.acceptSome. size is the
// declared length, or -1 when it is not known up front. A declared empty
// sequence still produces one empty value so that it can be told apart from
// an absent one; a sequence of unknown length that turns out to be empty
// produces nothing.
func serializeSeq[T any](s sink[T], v reflect.Value, size int) (T, error) {
	var zero T
	if v.Kind() == reflect.Func {
		for elem := range v.Seq() {
			if _, err := s.acceptSome(elem); err != nil {
				return zero, err
			}
		}
	} else {
		for i := 0; i < v.Len(); i++ {
			if _, err := s.acceptSome(v.Index(i)); err != nil {
				return zero, err
			}
		}
	}

	if size == 0 {
		return s.acceptSome(reflect.ValueOf(""))
	}
	return s.acceptNone()
}

func serializeBytes[T any](s sink[T], b []byte) (T, error) {
	var zero T
	if !utf8.Valid(b) {
		return zero, &InvalidUTF8Error{Offset: invalidUTF8Offset(b)}
	}
	return s.acceptBorrowed(string(b))
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// customText materializes the text of a value implementing Marshaler or
// encoding.TextMarshaler. ok is false when v implements neither.
func customText(v reflect.Value) (text string, ok bool, err error) {
	if m, ok := asInterface[Marshaler](v); ok {
		text, err := m.MarshalForm()
		if err != nil {
			return "", true, &MarshalerError{Type: v.Type(), Err: err}
		}
		return text, true, nil
	}
	if m, ok := asInterface[encoding.TextMarshaler](v); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", true, &MarshalerError{Type: v.Type(), Err: err}
		}
		return string(b), true, nil
	}
	return "", false, nil
}

func hasCustomText(t reflect.Type) bool {
	return implements(t, marshalerType) || implements(t, textMarshalerType)
}

// isSeqFunc reports whether t is a range-over-func iterator of the form
// func(yield func(E) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// asBigInt returns the integer held by a big.Int or a non-nil *big.Int.
func asBigInt(v reflect.Value) (*big.Int, bool) {
	switch {
	case !v.CanInterface():
		return nil, false
	case v.Type() == bigIntType:
		if v.CanAddr() {
			return v.Addr().Interface().(*big.Int), true
		}
		b := v.Interface().(big.Int)
		return &b, true
	case v.Kind() == reflect.Pointer && v.Type().Elem() == bigIntType && !v.IsNil():
		return v.Interface().(*big.Int), true
	}
	return nil, false
}
