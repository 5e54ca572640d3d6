package containers

import "maps"

// HashSet is an unordered set backed by a map.
type HashSet[E comparable] struct {
	items map[E]struct{}
}

// NewHashSet creates a set holding elements.
func NewHashSet[E comparable](elements ...E) *HashSet[E] {
	s := &HashSet[E]{items: make(map[E]struct{}, len(elements))}
	for _, e := range elements {
		s.items[e] = struct{}{}
	}
	return s
}

// Len returns the number of distinct elements.
func (s *HashSet[E]) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no elements.
func (s *HashSet[E]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether e is in the set.
func (s *HashSet[E]) Contains(e E) bool {
	_, ok := s.items[e]
	return ok
}

// Add inserts e and reports false when it was already present.
func (s *HashSet[E]) Add(e E) (bool, error) {
	if s.Contains(e) {
		return false, nil
	}
	s.items[e] = struct{}{}
	return true, nil
}

// Remove deletes e and reports whether it was present.
func (s *HashSet[E]) Remove(e E) (bool, error) {
	if !s.Contains(e) {
		return false, nil
	}
	delete(s.items, e)
	return true, nil
}

// Clear removes every element.
func (s *HashSet[E]) Clear() error {
	clear(s.items)
	return nil
}

// ToSlice returns the elements in map iteration order, which is unspecified.
func (s *HashSet[E]) ToSlice() []E {
	out := make([]E, 0, len(s.items))
	for e := range maps.Keys(s.items) {
		out = append(out, e)
	}
	return out
}
