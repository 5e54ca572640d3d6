package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"collsuite/internal/collection"
	"collsuite/internal/config"
	"collsuite/internal/containers"
	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/suite"
	"collsuite/internal/tester"
	"collsuite/pkg/logging"
)

var (
	// ErrUnknownContainer is returned when a declaration names a container
	// kind that is not registered.
	ErrUnknownContainer = errors.New("unknown container")
	// ErrDuplicateContainer is returned when a kind is registered twice.
	ErrDuplicateContainer = errors.New("container already registered")
)

// buildFunc builds a suite for one declaration with a resolved feature set.
type buildFunc func(ctx context.Context, name string, features feature.Set, suppressed []suite.TestKey) (*suite.Suite, error)

// Entry describes a registered container kind.
type Entry struct {
	Kind     string
	Features []feature.Feature
	build    buildFunc
}

// Catalog maps container kinds to suite builders.
type Catalog struct {
	mu       sync.RWMutex
	taxonomy *feature.Taxonomy
	entries  map[string]Entry
}

// New creates an empty catalog that resolves features with taxonomy.
func New(taxonomy *feature.Taxonomy) *Catalog {
	return &Catalog{
		taxonomy: taxonomy,
		entries:  make(map[string]Entry),
	}
}

// Default returns a catalog holding the bundled containers.
func Default() *Catalog {
	c := New(feature.Default())
	profiles := containers.Features()
	mustRegister(c, containers.KindArrayList, containers.ArrayListGenerator(), profiles[containers.KindArrayList]...)
	mustRegister(c, containers.KindLinkedSet, containers.LinkedSetGenerator(), profiles[containers.KindLinkedSet]...)
	mustRegister(c, containers.KindHashSet, containers.HashSetGenerator(), profiles[containers.KindHashSet]...)
	mustRegister(c, containers.KindImmutableList, containers.ImmutableListGenerator(), profiles[containers.KindImmutableList]...)
	return c
}

func mustRegister[C collection.Collection[E], E comparable](c *Catalog, kind string, g generator.ContainerGenerator[C, E], features ...feature.Feature) {
	if err := Register(c, kind, g, features...); err != nil {
		panic(err)
	}
}

// Register adds a container kind whose suites are built from g. features
// are the container's own capabilities, added to every declaration.
func Register[C collection.Collection[E], E comparable](c *Catalog, kind string, g generator.ContainerGenerator[C, E], features ...feature.Feature) error {
	builder := collection.NewSuiteBuilder[C, E](c.taxonomy)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateContainer, kind)
	}

	c.entries[kind] = Entry{
		Kind:     kind,
		Features: append([]feature.Feature(nil), features...),
		build: func(ctx context.Context, name string, fs feature.Set, suppressed []suite.TestKey) (*suite.Suite, error) {
			cfg := collection.NewConfig[C, E](name, g).
				WithFeatureSet(fs).
				Suppressing(suppressed...)
			return builder.Build(ctx, cfg)
		},
	}

	logging.Debug("Catalog", "Registered container %s with features %s", kind, feature.NewSet(features...))
	return nil
}

// Lookup returns the entry registered for kind.
func (c *Catalog) Lookup(kind string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[kind]
	return e, ok
}

// Kinds returns the registered container kinds in lexical order.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	kinds := make([]string, 0, len(c.entries))
	for k := range c.entries {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Taxonomy returns the taxonomy used to parse and close features.
func (c *Catalog) Taxonomy() *feature.Taxonomy {
	return c.taxonomy
}

// Build builds the suite for one declaration. Declared feature names must
// be known to the taxonomy.
func (c *Catalog) Build(ctx context.Context, decl config.SuiteDeclaration) (*suite.Suite, error) {
	entry, ok := c.Lookup(decl.Container)
	if !ok {
		return nil, fmt.Errorf("suite %s: %w: %s", decl.Name, ErrUnknownContainer, decl.Container)
	}

	declared, err := c.taxonomy.Parse(decl.Features...)
	if err != nil {
		return nil, fmt.Errorf("suite %s: %w", decl.Name, err)
	}
	features := declared.Union(feature.NewSet(entry.Features...))

	known := tester.NewKeySet(KnownKeys()...)
	suppressed := make([]suite.TestKey, 0, len(decl.Suppress))
	for _, key := range decl.Suppress {
		if !known.Contains(suite.TestKey(key)) {
			logging.Warn("Catalog", "Suite %s suppresses unknown test %s", decl.Name, key)
		}
		suppressed = append(suppressed, suite.TestKey(key))
	}

	logging.Debug("Catalog", "Building suite %s (%s) with features %s, %d suppressed",
		decl.Name, decl.Container, features, len(suppressed))

	return entry.build(ctx, decl.Name, features, suppressed)
}

// BuildAll builds the enabled declarations in order under a common root.
// It stops at the first failure.
func (c *Catalog) BuildAll(ctx context.Context, rootName string, decls []config.SuiteDeclaration) (*suite.Suite, error) {
	root := suite.New(rootName)
	for _, decl := range decls {
		if decl.Disabled {
			logging.Debug("Catalog", "Skipping disabled suite %s", decl.Name)
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := c.Build(ctx, decl)
		if err != nil {
			return nil, err
		}
		root.AddSuite(s)
	}
	return root, nil
}

// KnownKeys returns every test key the battery defines, for validating
// suppression lists.
func KnownKeys() []suite.TestKey {
	var keys []suite.TestKey
	for _, tr := range collection.Testers[*containers.ArrayList[string], string]() {
		for _, c := range tr.Cases() {
			keys = append(keys, c.Key)
		}
	}
	return keys
}
