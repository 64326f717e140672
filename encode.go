package urlenc

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// EncodeToString is a convenience function that returns the form encoding of v
// as a string.
func EncodeToString(v any) (string, error) {
	var b Builder
	if err := MarshalTo(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Marshal returns the form encoding of v.
//
// The top-level value must be a struct, a map, or a slice or array of pairs.
// Struct fields are encoded in declaration order under the name given by
// their "form" tag. Map entries are encoded in ascending order of their key
// text. A pair is a [Pair], a two-element array, or any struct with exactly
// two fields, the first being the key.
//
// Values are encoded as follows. Booleans, integers of any width (including
// [big.Int]), floats and strings encode as their text. A [Char], or a rune
// field tagged "char", encodes as a one-character string. Byte slices must
// hold valid UTF-8. Types implementing [Marshaler] or
// [encoding.TextMarshaler] encode as the text they return, and types
// implementing [Variant] encode as their name. A named struct type with no
// fields encodes as its type name, and a struct whose only field is embedded
// encodes as that field.
//
// Nil pointers, interfaces and slices are omitted. Slices, arrays and
// iterators of the form func(yield func(E) bool) repeat their key once per
// element; an empty non-nil slice encodes as a single pair with an empty
// value, while an iterator that yields nothing is omitted.
//
// Anything else in value position, such as a map, a struct with several
// fields or a bare struct{}, yields an [*UnsupportedTypeError].
func Marshal(v any) ([]byte, error) {
	var b Builder
	if err := MarshalTo(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// AppendPairs appends the pairs encoding v to dst, unescaped, and returns
// the extended slice. On error, dst is returned unchanged.
func AppendPairs(dst []Pair, v any) ([]Pair, error) {
	l := PairList(dst)
	if err := MarshalTo(&l, v); err != nil {
		return dst, err
	}
	return l, nil
}

// MarshalKey returns the key that v encodes to when used as a map key or as
// the first element of a pair.
func MarshalKey(v any) (Key, error) {
	return serializePart[Key](newKeySink(identityKey), reflect.ValueOf(v))
}

// MarshalTo encodes v as pairs appended to t. Pairs appended before an error
// is encountered are left in t.
func MarshalTo(t Target, v any) error {
	if v == nil {
		return nil
	}
	return marshalTopLevel(t, reflect.ValueOf(v))
}

func marshalTopLevel(t Target, v reflect.Value) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	// Text-like values are scalars even when their underlying kind is a
	// struct or an array.
	if implements(v.Type(), marshalerType) ||
		implements(v.Type(), textMarshalerType) ||
		implements(v.Type(), variantType) ||
		v.Type() == bigIntType {
		return &UnsupportedTypeError{Role: roleTopLevel, Type: v.Type()}
	}

	switch v.Kind() {
	case reflect.Struct:
		return marshalStruct(t, v)
	case reflect.Map:
		return marshalMap(t, v)
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return marshalPairs(t, v)
		}
	}
	return &UnsupportedTypeError{Role: roleTopLevel, Type: v.Type()}
}

func marshalStruct(t Target, v reflect.Value) error {
	tags := tags(v)
	for i := 0; i < v.NumField(); i++ {
		tag := tags[i]
		if tag.Ignore {
			continue
		}
		fv := v.Field(i)
		if tag.Embedded {
			if err := marshalEmbedded(t, fv); err != nil {
				return err
			}
			continue
		}
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		if tag.Char && fv.Kind() == reflect.Int32 {
			fv = fv.Convert(charType)
		}
		if _, err := serializePart[struct{}](newValueSink(t, tag.Name), fv); err != nil {
			return err
		}
	}
	return nil
}

// marshalEmbedded promotes the fields of an embedded struct into the parent.
func marshalEmbedded(t Target, v reflect.Value) error {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return marshalStruct(t, v)
}

type mapEntry struct {
	key   string
	typ   string
	value reflect.Value
}

func marshalMap(t Target, v reflect.Value) error {
	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := serializePart[Key](newKeySink(identityKey), iter.Key())
		if err != nil {
			return err
		}
		k := iter.Key()
		if k.Kind() == reflect.Interface && !k.IsNil() {
			k = k.Elem()
		}
		entries = append(entries, mapEntry{key: key.Owned(), typ: k.Type().String(), value: iter.Value()})
	}

	// Distinct keys of an interface-typed map can share their text, as with
	// 1 and "1"; order those by type and then by value so output is stable.
	slices.SortFunc(entries, func(a, b mapEntry) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		if c := cmp.Compare(a.typ, b.typ); c != 0 {
			return c
		}
		return cmp.Compare(fmt.Sprint(a.value), fmt.Sprint(b.value))
	})
	for _, e := range entries {
		if _, err := serializePart[struct{}](newValueSink(t, e.key), e.value); err != nil {
			return err
		}
	}
	return nil
}

func marshalPairs(t Target, v reflect.Value) error {
	for i := 0; i < v.Len(); i++ {
		if err := marshalPair(t, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// marshalPair resolves the key of a single pair and, once known, encodes the
// value under it.
func marshalPair(t Target, pair reflect.Value) error {
	for pair.Kind() == reflect.Pointer || pair.Kind() == reflect.Interface {
		if pair.IsNil() {
			return &UnsupportedTypeError{Role: rolePair}
		}
		pair = pair.Elem()
	}

	var key, value reflect.Value
	switch {
	case pair.Kind() == reflect.Array && pair.Len() == 2:
		key, value = pair.Index(0), pair.Index(1)
	case pair.Kind() == reflect.Struct && pair.NumField() == 2:
		key, value = pair.Field(0), pair.Field(1)
	default:
		return &UnsupportedTypeError{Role: rolePair, Type: pair.Type()}
	}

	s := newKeySink(func(k Key) (struct{}, error) {
		return serializePart[struct{}](newValueSink(t, k.String()), value)
	})
	_, err := serializePart[struct{}](s, key)
	return err
}

func identityKey(k Key) (Key, error) {
	return k, nil
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer, reflect.Func:
		return v.IsZero()
	}
	return false
}
