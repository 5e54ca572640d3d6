package containers

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ImmutableList is an ordered list whose contents are fixed at creation.
type ImmutableList[E comparable] struct {
	items []E
}

// NewImmutableList creates a list holding a copy of elements.
func NewImmutableList[E comparable](elements ...E) *ImmutableList[E] {
	return &ImmutableList[E]{items: slices.Clone(elements)}
}

// Len returns the number of elements.
func (l *ImmutableList[E]) Len() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *ImmutableList[E]) IsEmpty() bool { return len(l.items) == 0 }

// Contains reports whether e occurs in the list.
func (l *ImmutableList[E]) Contains(e E) bool {
	return slices.Contains(l.items, e)
}

// Add always fails with errors.ErrUnsupported.
func (l *ImmutableList[E]) Add(E) (bool, error) {
	return false, fmt.Errorf("immutable list: add: %w", errors.ErrUnsupported)
}

// Remove always fails with errors.ErrUnsupported.
func (l *ImmutableList[E]) Remove(E) (bool, error) {
	return false, fmt.Errorf("immutable list: remove: %w", errors.ErrUnsupported)
}

// Clear always fails with errors.ErrUnsupported.
func (l *ImmutableList[E]) Clear() error {
	return fmt.Errorf("immutable list: clear: %w", errors.ErrUnsupported)
}

// ToSlice returns a copy of the elements in construction order.
func (l *ImmutableList[E]) ToSlice() []E {
	return slices.Clone(l.items)
}

// MarshalYAML encodes the list as a YAML sequence.
func (l *ImmutableList[E]) MarshalYAML() (interface{}, error) {
	if l.items == nil {
		return []E{}, nil
	}
	return l.items, nil
}

// UnmarshalYAML decodes a YAML sequence.
func (l *ImmutableList[E]) UnmarshalYAML(node *yaml.Node) error {
	var items []E
	if err := node.Decode(&items); err != nil {
		return err
	}
	l.items = items
	return nil
}
