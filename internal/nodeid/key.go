package nodeid

import (
	"cmp"
	"fmt"
)

// Fn is the tag naming the kind of computation a node performs,
// e.g., "file_hash" or "link".
type Fn string

// Key uniquely identifies one node: one function kind applied to one
// argument. Keys are immutable values; copying one is cheap and two keys
// are the same node exactly when they compare equal with ==.
type Key struct {
	Fn  Fn
	Arg string
}

// New creates a key for the given function kind and argument.
func New(fn Fn, arg string) Key {
	return Key{Fn: fn, Arg: arg}
}

// String serializes the key into its canonical `fn(arg)` representation.
func (k Key) String() string {
	return fmt.Sprintf("%s(%s)", k.Fn, k.Arg)
}

// Compare orders keys by function kind first, then by argument. The order is
// total and has no semantic meaning beyond determinism: it exists so that
// collections of keys can be sorted reproducibly for output.
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Fn, other.Fn); c != 0 {
		return c
	}
	return cmp.Compare(k.Arg, other.Arg)
}

// Less reports whether k orders before other under Compare.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// IsZero reports whether the key is the zero value, which never names a
// real node.
func (k Key) IsZero() bool {
	return k == Key{}
}
