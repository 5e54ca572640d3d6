package feature

import (
	"sort"
	"strings"
)

// Feature is an opaque capability tag describing something an
// implementation under test supports.
type Feature string

// String makes Feature satisfy the fmt.Stringer interface.
func (f Feature) String() string {
	return string(f)
}

// Set is an unordered collection of features.
type Set map[Feature]struct{}

// NewSet creates a set holding the given features.
func NewSet(features ...Feature) Set {
	s := make(Set, len(features))
	for _, f := range features {
		s[f] = struct{}{}
	}
	return s
}

// Copy returns an independent copy of the set. A nil set copies to an empty one.
func (s Set) Copy() Set {
	out := make(Set, len(s))
	for f := range s {
		out[f] = struct{}{}
	}
	return out
}

// Add inserts features into the set.
func (s Set) Add(features ...Feature) {
	for _, f := range features {
		s[f] = struct{}{}
	}
}

// Remove deletes features from the set.
func (s Set) Remove(features ...Feature) {
	for _, f := range features {
		delete(s, f)
	}
}

// Contains reports whether f is in the set.
func (s Set) Contains(f Feature) bool {
	_, ok := s[f]
	return ok
}

// ContainsAll reports whether every feature in fs is in the set.
func (s Set) ContainsAll(fs ...Feature) bool {
	for _, f := range fs {
		if !s.Contains(f) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one feature in fs is in the set.
func (s Set) ContainsAny(fs ...Feature) bool {
	for _, f := range fs {
		if s.Contains(f) {
			return true
		}
	}
	return false
}

// Union returns a new set holding the features of s and other.
func (s Set) Union(other Set) Set {
	out := s.Copy()
	for f := range other {
		out[f] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the features present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for f := range s {
		if other.Contains(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the features of s missing from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for f := range s {
		if !other.Contains(f) {
			out[f] = struct{}{}
		}
	}
	return out
}

// Sorted returns the features in lexical order.
func (s Set) Sorted() []Feature {
	out := make([]Feature, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the set as "[a, b, c]" in lexical order.
func (s Set) String() string {
	names := make([]string, 0, len(s))
	for _, f := range s.Sorted() {
		names = append(names, string(f))
	}
	return "[" + strings.Join(names, ", ") + "]"
}
