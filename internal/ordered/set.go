// Package ordered provides sets and maps whose iteration order is the sorted
// order of their elements, independent of insertion order.
package ordered

import (
	"fmt"
	"slices"
)

// Item is an element that can be stored in a Set or used as a Map key.
type Item[T any] interface {
	comparable
	Compare(other T) int
}

// Set is an unordered collection of unique items that iterates in sorted order.
// The zero value is an empty set ready to use.
type Set[T Item[T]] struct {
	items map[T]struct{}
}

// NewSet creates a set holding the given items.
func NewSet[T Item[T]](items ...T) Set[T] {
	var s Set[T]
	s.Insert(items...)
	return s
}

// Insert adds items to the set. It reports whether any item was not already present.
func (s *Set[T]) Insert(items ...T) bool {
	if s.items == nil {
		s.items = make(map[T]struct{}, len(items))
	}
	added := false
	for _, item := range items {
		if _, ok := s.items[item]; ok {
			continue
		}
		s.items[item] = struct{}{}
		added = true
	}
	return added
}

// Contains reports whether item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items in the set.
func (s Set[T]) Len() int {
	return len(s.items)
}

// Items returns the items in sorted order. The returned slice is never nil.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b T) int { return a.Compare(b) })
	return out
}

// Clone returns a copy of the set that shares no state with s.
func (s Set[T]) Clone() Set[T] {
	out := Set[T]{items: make(map[T]struct{}, len(s.items))}
	for item := range s.items {
		out.items[item] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same items.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for item := range s.items {
		if _, ok := other.items[item]; !ok {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (s Set[T]) String() string {
	return fmt.Sprint(s.Items())
}
