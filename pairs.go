package urlenc

import (
	"fmt"
	"net/url"
	"strings"
)

// ParsePairs splits form data into its pairs, in order. Empty segments are
// skipped, and a segment without '=' is a key with an empty value. Keys and
// values are unescaped with [url.QueryUnescape].
func ParsePairs(data []byte) ([]Pair, error) {
	var pairs []Pair
	query := string(data)
	for query != "" {
		var segment string
		segment, query, _ = strings.Cut(query, "&")
		if segment == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(segment, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("urlenc: invalid form data: %w", err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("urlenc: invalid form data: %w", err)
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}
