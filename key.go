package urlenc

import "strings"

// Key is the text of a field name about to be emitted. A static key refers
// to text fixed at build time, such as a struct tag or a variant name. A
// dynamic key was computed from the value being encoded.
type Key struct {
	text   string
	static bool
}

func staticKey(text string) Key {
	return Key{text: text, static: true}
}

func dynamicKey(text string) Key {
	return Key{text: text}
}

// String returns the text of the key.
func (k Key) String() string {
	return k.text
}

// IsStatic reports whether the key text was fixed at build time.
func (k Key) IsStatic() bool {
	return k.static
}

// Owned returns the key text in a form that is safe to retain. Dynamic keys
// are copied so they do not pin the memory of the value they came from.
func (k Key) Owned() string {
	if k.static {
		return k.text
	}
	return strings.Clone(k.text)
}
