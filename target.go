package urlenc

import (
	"net/url"
	"strings"
)

// Target is the destination of encoded pairs. AppendPair is called once per
// pair, in the order the pairs are produced.
type Target interface {
	AppendPair(key, value string)
}

// Builder is a [Target] that renders pairs as application/x-www-form-urlencoded
// text, escaping keys and values with [url.QueryEscape] and joining the
// pairs with '&'. The zero value is ready to use.
type Builder struct {
	buf strings.Builder
}

// AppendPair appends key=value to the encoded output.
func (b *Builder) AppendPair(key, value string) {
	if b.buf.Len() > 0 {
		b.buf.WriteByte('&')
	}
	b.buf.WriteString(url.QueryEscape(key))
	b.buf.WriteByte('=')
	b.buf.WriteString(url.QueryEscape(value))
}

// String returns the encoded output.
func (b *Builder) String() string {
	return b.buf.String()
}

// Bytes returns a copy of the encoded output.
func (b *Builder) Bytes() []byte {
	return []byte(b.buf.String())
}

// Len returns the number of bytes of encoded output.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Reset discards all output.
func (b *Builder) Reset() {
	b.buf.Reset()
}

// PairList is a [Target] that records pairs unescaped, in order.
type PairList []Pair

// AppendPair appends the pair {key, value} to the list.
func (l *PairList) AppendPair(key, value string) {
	*l = append(*l, Pair{Key: key, Value: value})
}

// Encode renders the list as application/x-www-form-urlencoded text.
func (l PairList) Encode() string {
	var b Builder
	for _, p := range l {
		b.AppendPair(p.Key, p.Value)
	}
	return b.String()
}
