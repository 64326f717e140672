package urlenc_test

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Comparer for MyDate type.
var MyDateComparer = cmp.Comparer(func(x, y MyDate) bool {
	return time.Time(x).Equal(time.Time(y))
})

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns"`
}

type ComplexPerson struct {
	ID        int      `form:"id"`
	Name      string   `form:"name"`
	Age       int      `form:"age,omitempty"`
	Pronouns  []string `form:"pronouns,omitempty"`
	CreatedAt MyDate   `form:"created_at"`
	Private   string   `form:"-"`
	Optional  *string  `form:"optional,omitempty"`
}

type IgnoredFieldsForm struct {
	Public  string `form:"public"`
	Private string `form:"-"`
	Ignored string `form:",ignore"`
	NoTag   string
	Empty   string `form:""`
	Omitted string `form:",omitempty"`
	Complex MyDate `form:"complex,omitempty"`
	hidden  string
}

type User struct {
	Name    string  `form:"name"`
	Age     int     `form:"age,omitempty"`
	Address Address `form:"address"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
	State  string `form:"state"`
	Zip    string `form:"zip"`
}

type WithVec struct {
	One *[]int `form:"one"`
	Two *[]int `form:"two"`
}

type Paging struct {
	Page  int `form:"page"`
	Limit int `form:"limit,omitempty"`
}

type Search struct {
	Paging
	Query string `form:"q"`
}

type Initial struct {
	Letter rune `form:"letter,char"`
	Code   rune `form:"code"`
}

type Unit struct{}

type Count int

// Counter wraps a single value and encodes as that value.
type Counter struct {
	Count
}

type Huge struct {
	*big.Int
}

type MyDate time.Time

func (d MyDate) MarshalForm() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

func (d *MyDate) UnmarshalForm(b string) error {
	t, err := time.Parse("2006.01.02", b)
	if err != nil {
		return err
	}
	*d = MyDate(t)
	return nil
}

// X is an enumeration whose variants carry no payload.
type X int

const (
	A X = iota
	B
	C
)

var xNames = []string{"A", "B", "C"}

func (x X) FormVariant() (string, any) {
	return xNames[x], nil
}

func (x *X) UnmarshalForm(s string) error {
	i := slices.Index(xNames, s)
	if i < 0 {
		return fmt.Errorf("unknown variant %q", s)
	}
	*x = X(i)
	return nil
}

// Shape is an enumeration whose Circle variant carries a radius.
type Shape struct {
	Kind   string
	Radius float64
}

func (s Shape) FormVariant() (string, any) {
	if s.Kind == "circle" {
		return "Circle", s.Radius
	}
	return "Point", nil
}

type failingMarshaler struct{}

var errMarshal = errors.New("marshal failed")

func (failingMarshaler) MarshalForm() (string, error) {
	return "", errMarshal
}

func ptr[T any](v T) *T {
	return &v
}
