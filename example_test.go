package urlenc_test

import (
	"fmt"
	"os"
	"slices"

	"github.com/tomasbasham/urlenc"
)

type Animal int

const (
	Unknown Animal = iota
	Gopher
	Zebra
)

func (a Animal) MarshalForm() (string, error) {
	switch a {
	case Gopher:
		return "gopher", nil
	case Zebra:
		return "zebra", nil
	default:
		return "unknown", nil
	}
}

func (a *Animal) UnmarshalForm(value string) error {
	switch value {
	case "gopher":
		*a = Gopher
	case "zebra":
		*a = Zebra
	default:
		*a = Unknown
	}
	return nil
}

func Example_customMarshal() {
	type PetOwner struct {
		OwnerName string   `form:"owner_name"`
		PetType   Animal   `form:"pet_type"`
		Others    []Animal `form:"others,omitempty"`
	}

	owner := PetOwner{
		OwnerName: "Alice",
		PetType:   Gopher,
		Others:    []Animal{Zebra, Unknown},
	}

	data, err := urlenc.Marshal(owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// owner_name=Alice&pet_type=gopher&others=zebra&others=unknown
}

func ExampleMarshal() {
	type Query struct {
		Term   string   `form:"q"`
		Tags   []string `form:"tag"`
		Page   *int     `form:"page"`
		Strict bool     `form:"strict"`
	}

	data, err := urlenc.Marshal(Query{
		Term:   "flat forms",
		Tags:   []string{"go", "web"},
		Strict: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// q=flat+forms&tag=go&tag=web&strict=true
}

func ExampleMarshal_pairs() {
	pairs := [][2]any{
		{"first", 23},
		{"middle", nil},
		{"last", 42},
		{"empty", []int{}},
		{"lazy", slices.Values([]int{})},
	}

	data, err := urlenc.Marshal(pairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// first=23&last=42&empty=
}

func ExampleMarshal_unsupported() {
	_, err := urlenc.Marshal(map[string]any{
		"user": map[string]string{"name": "john"},
	})
	fmt.Println(err)
	// Output:
	// urlenc: unsupported value (map[string]string)
}

func ExampleUnmarshal() {
	type Filter struct {
		Status []string `form:"status"`
		Owner  *string  `form:"owner"`
		Limit  int      `form:"limit"`
	}

	var f Filter
	if err := urlenc.Unmarshal([]byte("status=open&limit=10&status=closed&owner="), &f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("%q %v %d\n", f.Status, f.Owner, f.Limit)
	// Output:
	// ["open" "closed"] <nil> 10
}

func ExampleParsePairs() {
	pairs, err := urlenc.ParsePairs([]byte("b=2&a=1&b=3"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	for _, p := range pairs {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}
	// Output:
	// b=2
	// a=1
	// b=3
}
