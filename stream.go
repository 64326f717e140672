package urlenc

import (
	"fmt"
	"io"
)

// Decoder reads form-urlencoded data from an [io.Reader] and decodes it into a
// Go value.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the form-urlencoded data from the underlying [io.Reader] and
// decodes it into v.
func (d *Decoder) Decode(v any) error {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return fmt.Errorf("urlenc: failed to read body: %w", err)
	}

	return Unmarshal(body, v)
}

// Pairs reads the form-urlencoded data from the underlying [io.Reader] and
// returns its pairs in order.
func (d *Decoder) Pairs() ([]Pair, error) {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("urlenc: failed to read body: %w", err)
	}

	return ParsePairs(body)
}

// Encoder writes form-urlencoded data to an [io.Writer].
type Encoder struct {
	w io.Writer
	b Builder
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode encodes v as form-urlencoded data and writes it to the underlying
// [io.Writer]. Nothing is written if v cannot be encoded.
func (e *Encoder) Encode(v any) error {
	e.b.Reset()
	if err := MarshalTo(&e.b, v); err != nil {
		return err
	}

	_, err := io.WriteString(e.w, e.b.String())
	return err
}
