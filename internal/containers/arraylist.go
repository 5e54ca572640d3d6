package containers

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// ArrayList is a growable, ordered list that allows duplicates.
type ArrayList[E comparable] struct {
	items []E
}

// NewArrayList creates a list holding elements in order.
func NewArrayList[E comparable](elements ...E) *ArrayList[E] {
	return &ArrayList[E]{items: slices.Clone(elements)}
}

// Len returns the number of elements, counting duplicates.
func (l *ArrayList[E]) Len() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[E]) IsEmpty() bool { return len(l.items) == 0 }

// Contains reports whether e occurs at least once.
func (l *ArrayList[E]) Contains(e E) bool {
	return slices.Contains(l.items, e)
}

// Add appends e. It always changes the list.
func (l *ArrayList[E]) Add(e E) (bool, error) {
	l.items = append(l.items, e)
	return true, nil
}

// Remove deletes the first occurrence of e.
func (l *ArrayList[E]) Remove(e E) (bool, error) {
	i := slices.Index(l.items, e)
	if i < 0 {
		return false, nil
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true, nil
}

// Clear removes every element.
func (l *ArrayList[E]) Clear() error {
	l.items = nil
	return nil
}

// ToSlice returns a copy of the elements in insertion order.
func (l *ArrayList[E]) ToSlice() []E {
	return slices.Clone(l.items)
}

// MarshalYAML encodes the list as a YAML sequence.
func (l *ArrayList[E]) MarshalYAML() (interface{}, error) {
	if l.items == nil {
		return []E{}, nil
	}
	return l.items, nil
}

// UnmarshalYAML decodes a YAML sequence.
func (l *ArrayList[E]) UnmarshalYAML(node *yaml.Node) error {
	var items []E
	if err := node.Decode(&items); err != nil {
		return err
	}
	l.items = items
	return nil
}
