package urlenc

import "reflect"

// sink is where the part serializer reports the text it resolves a value to.
// The key sink turns that text into a [Key]; the value sink appends it as a
// pair under a key it already knows.
type sink[T any] interface {
	// acceptStatic receives text fixed at build time: "true", "false", type
	// names and variant names.
	acceptStatic(text string) (T, error)
	// acceptBorrowed receives text read from the value, including formatted
	// numbers.
	acceptBorrowed(text string) (T, error)
	// acceptOwned receives text that had to be materialized, such as a Char
	// or the output of a Marshaler.
	acceptOwned(text string) (T, error)
	acceptNone() (T, error)
	// acceptSome receives the element of a present optional and of each
	// sequence item.
	acceptSome(v reflect.Value) (T, error)
	unsupported(t reflect.Type) error
}

// keySink resolves a value to a Key and hands it to end.
type keySink[T any] struct {
	end func(Key) (T, error)
}

func newKeySink[T any](end func(Key) (T, error)) keySink[T] {
	return keySink[T]{end: end}
}

func (s keySink[T]) acceptStatic(text string) (T, error) {
	return s.end(staticKey(text))
}

func (s keySink[T]) acceptBorrowed(text string) (T, error) {
	return s.end(dynamicKey(text))
}

func (s keySink[T]) acceptOwned(text string) (T, error) {
	return s.end(dynamicKey(text))
}

// A key can never be absent.
func (s keySink[T]) acceptNone() (T, error) {
	var zero T
	return zero, s.unsupported(nil)
}

func (s keySink[T]) acceptSome(v reflect.Value) (T, error) {
	var zero T
	return zero, s.unsupported(v.Type())
}

func (s keySink[T]) unsupported(t reflect.Type) error {
	return &UnsupportedTypeError{Role: roleKey, Type: t}
}

// valueSink appends every text it receives as a pair under key.
type valueSink struct {
	target Target
	key    string
}

func newValueSink(target Target, key string) *valueSink {
	return &valueSink{target: target, key: key}
}

func (s *valueSink) acceptBorrowed(text string) (struct{}, error) {
	s.target.AppendPair(s.key, text)
	return struct{}{}, nil
}

func (s *valueSink) acceptStatic(text string) (struct{}, error) {
	return s.acceptBorrowed(text)
}

func (s *valueSink) acceptOwned(text string) (struct{}, error) {
	return s.acceptBorrowed(text)
}

// An absent value omits the pair entirely.
func (s *valueSink) acceptNone() (struct{}, error) {
	return struct{}{}, nil
}

func (s *valueSink) acceptSome(v reflect.Value) (struct{}, error) {
	return serializePart[struct{}](s, v)
}

func (s *valueSink) unsupported(t reflect.Type) error {
	return &UnsupportedTypeError{Role: roleValue, Type: t}
}
