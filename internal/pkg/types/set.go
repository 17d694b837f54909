package types

import (
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types, backed by map[T]struct{}.
//
// A Set is mutable: Add modifies it in place. Use Clone to obtain an
// independent copy before handing a set to code that must not observe
// later mutations.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is a member of the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of distinct elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns a shallow copy of the set. A nil set clones to an empty one.
func (s Set[T]) Clone() Set[T] {
	if s == nil {
		return make(Set[T])
	}
	return maps.Clone(s)
}

// ToSlice returns a slice containing all elements in the set.
//
// The order of elements is not guaranteed; use ToSortedSlice when callers
// need a stable order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(maps.Keys(s))
}

// ToSortedSlice returns the elements of the set ordered by cmp.
func (s Set[T]) ToSortedSlice(cmp func(a, b T) int) []T {
	out := s.ToSlice()
	slices.SortFunc(out, cmp)
	return out
}
