package urlenc

import (
	"fmt"
	"reflect"
)

const (
	roleKey      = "key"
	roleValue    = "value"
	rolePair     = "pair"
	roleTopLevel = "top-level value"
)

// UnsupportedTypeError is returned when a value has a shape that the flat
// key=value format cannot represent in the position it was found: a nested
// map or struct as a value, an optional key, a bare unit, or a variant
// carrying a payload.
type UnsupportedTypeError struct {
	Role string       // "key", "value", "pair" or "top-level value"
	Type reflect.Type // nil when the value was absent
}

func (e *UnsupportedTypeError) Error() string {
	msg := "urlenc: unsupported " + e.Role
	if e.Role == roleTopLevel {
		msg = "urlenc: top-level serializer supports only maps and structs"
	}
	if e.Type != nil {
		msg += " (" + e.Type.String() + ")"
	}
	return msg
}

// InvalidUTF8Error is returned when a byte slice being encoded as text is
// not valid UTF-8.
type InvalidUTF8Error struct {
	Offset int // index of the first invalid byte
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("urlenc: invalid UTF-8 in byte slice at offset %d", e.Offset)
}

// MarshalerError wraps an error returned by a [Marshaler] or an
// [encoding.TextMarshaler].
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "urlenc: error marshaling type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error {
	return e.Err
}
