package urlenc

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// InvalidUnmarshalError describes an invalid argument passed to [Unmarshal].
// (The argument to [Unmarshal] must be a non-nil pointer.)
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "urlenc: Unmarshal(nil)"
	}

	if e.Type.Kind() != reflect.Pointer {
		return "urlenc: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "urlenc: Unmarshal(nil " + e.Type.String() + ")"
}

// Unmarshaler is the interface implemented by types that can unmarshal a form
// value of themselves. [Unmarshaler.UnmarshalForm] must copy the form data if
// it wishes to retain the data after returning.
type Unmarshaler interface {
	UnmarshalForm(string) error
}

// DecodeString is a convenience function that parses the form data in the
// string and stores the result in the value pointed to by v. If v is nil or not
// a pointer, DecodeString returns an [InvalidUnmarshalError].
func DecodeString(data string, v any) error {
	return Unmarshal([]byte(data), v)
}

// Unmarshal parses the form data and stores the result in the value pointed to
// by v. If v is nil or not a pointer, Unmarshal returns an
// [InvalidUnmarshalError].
//
// v may point to a struct, a map, a slice of [Pair] or of [2]string, or an
// empty struct. Repeated keys append to slice fields and map values, and
// replace any other value. An empty value decodes into a pointer as nil.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidUnmarshalError{reflect.TypeOf(v)}
	}

	// Make sure to trim spaces to avoid keys containing only spaces.
	pairs, err := ParsePairs([]byte(strings.TrimSpace(string(data))))
	if err != nil {
		return err
	}
	return unmarshalPairs(pairs, rv.Elem())
}

func unmarshalPairs(pairs []Pair, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		return unmarshalStruct(pairs, v)
	case reflect.Map:
		return unmarshalMap(pairs, v)
	case reflect.Slice:
		return unmarshalPairSlice(pairs, v)
	default:
		return fmt.Errorf("urlenc: cannot unmarshal into %v", v.Type())
	}
}

func unmarshalStruct(pairs []Pair, v reflect.Value) error {
	if v.NumField() == 0 {
		if len(pairs) > 0 {
			return fmt.Errorf("urlenc: unexpected field %q for %v", pairs[0].Key, v.Type())
		}
		return nil
	}
	for _, p := range pairs {
		field := findStructField(v, p.Key)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("urlenc: unknown field %q in struct %v", p.Key, v.Type())
		}
		if err := assign(field, p.Value); err != nil {
			return fmt.Errorf("urlenc: field %q: %w", p.Key, err)
		}
	}
	return nil
}

func unmarshalMap(pairs []Pair, v reflect.Value) error {
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}

	keyType := v.Type().Key()
	elemType := v.Type().Elem()
	for _, p := range pairs {
		key := reflect.New(keyType).Elem()
		if err := assignLeaf(key, p.Key); err != nil {
			return fmt.Errorf("urlenc: key %q: %w", p.Key, err)
		}

		elem := reflect.New(elemType).Elem()
		if existing := v.MapIndex(key); existing.IsValid() {
			elem.Set(existing)
		}
		if err := assign(elem, p.Value); err != nil {
			return fmt.Errorf("urlenc: key %q: %w", p.Key, err)
		}
		v.SetMapIndex(key, elem)
	}
	return nil
}

// unmarshalPairSlice decodes pairs into a slice of two-element arrays or
// two-field structs, the first element holding the key. When the value
// element is a sequence, repeated keys collect into the entry of their first
// occurrence.
func unmarshalPairSlice(pairs []Pair, v reflect.Value) error {
	elemType := v.Type().Elem()
	var valueType reflect.Type
	switch {
	case elemType.Kind() == reflect.Array && elemType.Len() == 2:
		valueType = elemType.Elem()
	case elemType.Kind() == reflect.Struct && elemType.NumField() == 2 &&
		elemType.Field(0).IsExported() && elemType.Field(1).IsExported():
		valueType = elemType.Field(1).Type
	default:
		return fmt.Errorf("urlenc: cannot unmarshal pairs into %v", v.Type())
	}
	group := valueType.Kind() == reflect.Slice && !isLeafType(valueType)

	index := make(map[string]int)
	for _, p := range pairs {
		if i, ok := index[p.Key]; ok && group {
			if err := assign(pairPart(v.Index(i), 1), p.Value); err != nil {
				return fmt.Errorf("urlenc: key %q: %w", p.Key, err)
			}
			continue
		}

		entry := reflect.New(elemType).Elem()
		if err := assignLeaf(pairPart(entry, 0), p.Key); err != nil {
			return fmt.Errorf("urlenc: key %q: %w", p.Key, err)
		}
		if err := assign(pairPart(entry, 1), p.Value); err != nil {
			return fmt.Errorf("urlenc: key %q: %w", p.Key, err)
		}
		index[p.Key] = v.Len()
		v.Set(reflect.Append(v, entry))
	}
	return nil
}

func pairPart(pair reflect.Value, i int) reflect.Value {
	if pair.Kind() == reflect.Array {
		return pair.Index(i)
	}
	return pair.Field(i)
}

// assign decodes val into v. Sequences collect one element per call; any
// other value is replaced.
func assign(v reflect.Value, val string) error {
	if v.Kind() == reflect.Slice && !isLeafType(v.Type()) {
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := assignLeaf(elem, val); err != nil {
			return err
		}
		v.Set(reflect.Append(v, elem))
		return nil
	}
	return assignLeaf(v, val)
}

// isLeafType reports whether t decodes from a single value even though it
// is a slice.
func isLeafType(t reflect.Type) bool {
	return t.Elem().Kind() == reflect.Uint8 ||
		implements(t, unmarshalerType) ||
		implements(t, textUnmarshalerType)
}

// assign a leaf value (string) to v. If v implements [Unmarshaler] or
// [encoding.TextUnmarshaler], use that.
func assignLeaf(v reflect.Value, val string) error {
	if v.Kind() == reflect.Pointer {
		if val == "" {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return assignLeaf(v.Elem(), val)
	}
	if u, ok := asInterface[Unmarshaler](v); ok {
		return u.UnmarshalForm(val)
	}
	if u, ok := asInterface[encoding.TextUnmarshaler](v); ok {
		return u.UnmarshalText([]byte(val))
	}
	if v.Type() == charType {
		return setChar(v, val)
	}
	return setScalar(v, val)
}

func findStructField(v reflect.Value, key string) reflect.Value {
	tags := tags(v)
	for i := 0; i < v.NumField(); i++ {
		if tags[i].Ignore {
			continue
		}
		if tags[i].Embedded {
			if f := findEmbeddedField(v.Field(i), key); f.IsValid() {
				return f
			}
			continue
		}
		if tags[i].Name == key {
			if tags[i].Char && v.Field(i).Kind() == reflect.Int32 {
				return v.Field(i).Addr().Convert(reflect.PointerTo(charType)).Elem()
			}
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func findEmbeddedField(v reflect.Value, key string) reflect.Value {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			if !v.CanSet() {
				return reflect.Value{}
			}
			// Only allocate when the embedded struct owns the key.
			probe := reflect.New(v.Type().Elem())
			if !findStructField(probe.Elem(), key).IsValid() {
				return reflect.Value{}
			}
			v.Set(probe)
		}
		v = v.Elem()
	}
	return findStructField(v, key)
}

func setScalar(v reflect.Value, val string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(v, val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return setUint(v, val)
	case reflect.Float32, reflect.Float64:
		return setFloat(v, val)
	case reflect.Bool:
		return parseBool(v, val)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("unsupported type: %v", v.Type())
		}
		v.SetBytes([]byte(val))
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return fmt.Errorf("unsupported type: %v", v.Type())
		}
		v.Set(reflect.ValueOf(val))
	case reflect.Struct:
		return setStruct(v, val)
	default:
		return fmt.Errorf("unsupported type: %v", v.Type())
	}
	return nil
}

// setStruct decodes the structs that have a text form: big integers and
// named unit types.
func setStruct(v reflect.Value, val string) error {
	t := v.Type()
	switch {
	case t == bigIntType:
		b, ok := new(big.Int).SetString(val, 10)
		if !ok {
			return fmt.Errorf("setBigInt: invalid integer %q", val)
		}
		v.Set(reflect.ValueOf(b).Elem())
		return nil
	case t.NumField() == 0 && t.Name() != "":
		if val != t.Name() {
			return fmt.Errorf("expected %q, got %q", t.Name(), val)
		}
		return nil
	}
	return fmt.Errorf("unsupported type: %v", t)
}

func setChar(v reflect.Value, s string) error {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return fmt.Errorf("setChar: expected a single character, got %q", s)
	}
	v.SetInt(int64(r))
	return nil
}

func setInt(v reflect.Value, s string) error {
	if s == "" {
		v.SetInt(0)
		return nil
	}
	i, err := strconv.ParseInt(s, 10, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("setInt: %w", err)
	}
	v.SetInt(i)
	return nil
}

func setUint(v reflect.Value, s string) error {
	if s == "" {
		v.SetUint(0)
		return nil
	}
	i, err := strconv.ParseUint(s, 10, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("parseUint: %w", err)
	}
	v.SetUint(i)
	return nil
}

func setFloat(v reflect.Value, s string) error {
	if s == "" {
		v.SetFloat(0)
		return nil
	}
	f, err := strconv.ParseFloat(s, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("parseFloat: %w", err)
	}
	v.SetFloat(f)
	return nil
}

func parseBool(v reflect.Value, s string) error {
	if s == "" {
		v.SetBool(false)
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("parseBool: %w", err)
	}
	v.SetBool(b)
	return nil
}
