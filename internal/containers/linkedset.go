package containers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LinkedSet is a set that iterates in insertion order.
type LinkedSet[E comparable] struct {
	order []E
	index map[E]struct{}
}

// NewLinkedSet creates a set; later duplicates of an element are ignored.
func NewLinkedSet[E comparable](elements ...E) *LinkedSet[E] {
	s := &LinkedSet[E]{index: make(map[E]struct{}, len(elements))}
	for _, e := range elements {
		s.insert(e)
	}
	return s
}

func (s *LinkedSet[E]) insert(e E) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = struct{}{}
	s.order = append(s.order, e)
	return true
}

// Len returns the number of distinct elements.
func (s *LinkedSet[E]) Len() int { return len(s.order) }

// IsEmpty reports whether the set has no elements.
func (s *LinkedSet[E]) IsEmpty() bool { return len(s.order) == 0 }

// Contains reports whether e is in the set.
func (s *LinkedSet[E]) Contains(e E) bool {
	_, ok := s.index[e]
	return ok
}

// Add inserts e unless it is already present.
func (s *LinkedSet[E]) Add(e E) (bool, error) {
	return s.insert(e), nil
}

// Remove deletes e, keeping the order of the remaining elements.
func (s *LinkedSet[E]) Remove(e E) (bool, error) {
	if _, ok := s.index[e]; !ok {
		return false, nil
	}
	delete(s.index, e)
	for i, v := range s.order {
		if v == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Clear removes every element.
func (s *LinkedSet[E]) Clear() error {
	s.order = nil
	s.index = make(map[E]struct{})
	return nil
}

// ToSlice returns a copy of the elements in insertion order.
func (s *LinkedSet[E]) ToSlice() []E {
	out := make([]E, len(s.order))
	copy(out, s.order)
	return out
}

// MarshalYAML encodes the set as a YAML sequence in insertion order.
func (s *LinkedSet[E]) MarshalYAML() (interface{}, error) {
	return s.ToSlice(), nil
}

// UnmarshalYAML decodes a YAML sequence and rejects duplicates.
func (s *LinkedSet[E]) UnmarshalYAML(node *yaml.Node) error {
	var items []E
	if err := node.Decode(&items); err != nil {
		return err
	}
	decoded := NewLinkedSet(items...)
	if decoded.Len() != len(items) {
		return fmt.Errorf("line %d: set contains duplicate elements", node.Line)
	}
	*s = *decoded
	return nil
}
