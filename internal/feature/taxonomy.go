package feature

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownFeature is returned when a feature is not registered in a taxonomy.
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrDuplicateFeature is returned when a feature is registered twice.
	ErrDuplicateFeature = errors.New("feature already registered")
)

// Resolver computes the implication closure of a feature set.
type Resolver interface {
	// Closure returns a new set containing the input features plus every
	// feature they transitively imply. The input set is not modified.
	Closure(features Set) (Set, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(features Set) (Set, error)

// Closure calls f(features).
func (f ResolverFunc) Closure(features Set) (Set, error) {
	return f(features)
}

// Definition describes one registered feature.
type Definition struct {
	Feature     Feature
	Description string
	Implies     []Feature
}

// Taxonomy is a registry of features and their direct implications.
type Taxonomy struct {
	mu          sync.RWMutex
	definitions map[Feature]Definition
}

// NewTaxonomy creates an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		definitions: make(map[Feature]Definition),
	}
}

// Register adds a feature with its direct implications. Implied features
// do not have to be registered first, but must be registered before
// Closure is called on a set that reaches them.
func (t *Taxonomy) Register(f Feature, description string, implies ...Feature) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.definitions[f]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFeature, f)
	}

	t.definitions[f] = Definition{
		Feature:     f,
		Description: description,
		Implies:     append([]Feature(nil), implies...),
	}
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level taxonomy setup.
func (t *Taxonomy) MustRegister(f Feature, description string, implies ...Feature) {
	if err := t.Register(f, description, implies...); err != nil {
		panic(err)
	}
}

// Lookup returns the definition of f.
func (t *Taxonomy) Lookup(f Feature) (Definition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	def, ok := t.definitions[f]
	return def, ok
}

// Describe returns the description of f, or "" if f is not registered.
func (t *Taxonomy) Describe(f Feature) string {
	def, _ := t.Lookup(f)
	return def.Description
}

// Parse converts feature names into a set, rejecting names the taxonomy
// does not know.
func (t *Taxonomy) Parse(names ...string) (Set, error) {
	out := make(Set, len(names))
	for _, name := range names {
		f := Feature(name)
		if _, ok := t.Lookup(f); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, name)
		}
		out.Add(f)
	}
	return out, nil
}

// All returns every registered definition ordered by feature name.
func (t *Taxonomy) All() []Definition {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Definition, 0, len(t.definitions))
	for _, def := range t.definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Feature < out[j].Feature })
	return out
}

// Closure expands features under the registered implications.
func (t *Taxonomy) Closure(features Set) (Set, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(Set, len(features))
	queue := make([]Feature, 0, len(features))
	for f := range features {
		queue = append(queue, f)
	}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if out.Contains(f) {
			continue
		}

		def, ok := t.definitions[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, f)
		}
		out.Add(f)
		queue = append(queue, def.Implies...)
	}

	return out, nil
}

var _ Resolver = (*Taxonomy)(nil)
