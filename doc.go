// Package urlenc provides encoding and decoding of flat
// application/x-www-form-urlencoded data into Go types.
//
// Each top-level field becomes one key=value pair. Optional values (nil
// pointers and interfaces) are omitted, and sequences repeat their key once
// per element, so a field Multi []int tagged "multi" holding [1 2] encodes
// as multi=1&multi=2. The format is deliberately flat: maps, structs and
// other composites are only accepted at the top level and are rejected with
// an [*UnsupportedTypeError] anywhere else.
package urlenc
