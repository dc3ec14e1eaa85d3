package sharedset

import (
	"iter"
	"slices"
	"sync"
)

// Set is an immutable, deduplicated, ordered collection of elements.
// The zero value is an empty set. Sets must not be copied after creation;
// always pass them by pointer.
type Set[T comparable] struct {
	// direct holds this set's own elements, in insertion order, possibly
	// with duplicates. Deduplication happens during flattening.
	direct []T
	// from holds references to the sets merged into this one, in merge
	// order. They are never copied or modified.
	from []*Set[T]

	// flattenOnce guards the lazy computation of flat.
	flattenOnce sync.Once
	// flat is the memoized deduplicated element sequence in compile order.
	flat []T
}

// Empty returns a new empty set.
func Empty[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Of creates a set holding the given elements, deduplicated, in order.
func Of[T comparable](elems ...T) *Set[T] {
	return Union(elems)
}

// Union creates a set containing the direct elements followed by the contents
// of every merged set, in order. The merged sets are retained by reference;
// nil entries are skipped. Both input slices are copied so later mutation by
// the caller cannot be observed through the set.
func Union[T comparable](direct []T, from ...*Set[T]) *Set[T] {
	s := &Set[T]{
		direct: slices.Clone(direct),
	}
	for _, f := range from {
		if f != nil {
			s.from = append(s.from, f)
		}
	}
	return s
}

// flatten computes the memoized compile-order element sequence: this set's
// direct elements first, then each merged set's flattened elements, with every
// element kept only at its first occurrence.
func (s *Set[T]) flatten() []T {
	s.flattenOnce.Do(func() {
		if len(s.from) == 0 && !hasDuplicates(s.direct) {
			s.flat = s.direct
			return
		}

		seen := make(map[T]struct{}, len(s.direct))
		var flat []T
		appendUnseen := func(elems []T) {
			for _, e := range elems {
				if _, ok := seen[e]; ok {
					continue
				}
				seen[e] = struct{}{}
				flat = append(flat, e)
			}
		}

		appendUnseen(s.direct)
		for _, f := range s.from {
			appendUnseen(f.flatten())
		}
		s.flat = flat
	})
	return s.flat
}

func hasDuplicates[T comparable](elems []T) bool {
	if len(elems) < 2 {
		return false
	}
	seen := make(map[T]struct{}, len(elems))
	for _, e := range elems {
		if _, ok := seen[e]; ok {
			return true
		}
		seen[e] = struct{}{}
	}
	return false
}

// All returns a restartable iterator over the set's elements in compile order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.flatten() {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice returns the set's elements in compile order. The returned slice is
// owned by the set and must not be modified.
func (s *Set[T]) Slice() []T {
	return s.flatten()
}

// Len returns the number of distinct elements in the set.
func (s *Set[T]) Len() int {
	return len(s.flatten())
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether v is an element of the set.
func (s *Set[T]) Contains(v T) bool {
	return slices.Contains(s.flatten(), v)
}
