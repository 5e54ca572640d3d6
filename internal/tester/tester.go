package tester

import (
	"sort"

	"collsuite/internal/feature"
	"collsuite/internal/suite"
)

// Case describes one test case run against a generator of type G.
type Case[G any] struct {
	// Key identifies the case for suppression. Keys must be unique within
	// a tester list.
	Key suite.TestKey
	// Name is the display name; the key is used when empty.
	Name string
	// Requires lists features that must all be present.
	Requires []feature.Feature
	// Absent lists features that must all be missing.
	Absent []feature.Feature
	// Fn runs the case.
	Fn func(t suite.T, g G)
}

// DisplayName returns Name, falling back to the key.
func (c Case[G]) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return string(c.Key)
}

// Applies reports whether the case should run given the closed feature set.
func (c Case[G]) Applies(closed feature.Set) bool {
	if !closed.ContainsAll(c.Requires...) {
		return false
	}
	return !closed.ContainsAny(c.Absent...)
}

// Tester is a named group of related test cases.
type Tester[G any] interface {
	Name() string
	Cases() []Case[G]
}

// Group is a Tester backed by a static list.
type Group[G any] struct {
	Title string
	List  []Case[G]
}

// Name returns the group title.
func (g Group[G]) Name() string { return g.Title }

// Cases returns the static case list.
func (g Group[G]) Cases() []Case[G] { return g.List }

// KeySet is a set of test keys to suppress.
type KeySet map[suite.TestKey]struct{}

// NewKeySet creates a set of keys.
func NewKeySet(keys ...suite.TestKey) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Contains reports whether k is suppressed.
func (s KeySet) Contains(k suite.TestKey) bool {
	_, ok := s[k]
	return ok
}

// Sorted returns the keys in lexical order.
func (s KeySet) Sorted() []suite.TestKey {
	out := make([]suite.TestKey, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
