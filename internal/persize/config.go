package persize

import (
	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/suite"
	"collsuite/internal/tester"
)

// Config describes one per-size suite to build. It is an immutable value:
// every method returns a modified copy and leaves the receiver untouched.
type Config[C, E any] struct {
	name       string
	features   feature.Set
	testers    []tester.Tester[generator.OneSizeGenerator[C, E]]
	suppressed tester.KeySet
	generator  generator.ContainerGenerator[C, E]
}

// NewConfig returns an empty configuration.
func NewConfig[C, E any]() Config[C, E] {
	return Config[C, E]{}
}

// Named sets the suite name.
func (c Config[C, E]) Named(name string) Config[C, E] {
	c.name = name
	return c
}

// WithFeatures adds features to the requested set.
func (c Config[C, E]) WithFeatures(features ...feature.Feature) Config[C, E] {
	next := c.features.Copy()
	next.Add(features...)
	c.features = next
	return c
}

// WithFeatureSet adds every feature of fs to the requested set.
func (c Config[C, E]) WithFeatureSet(fs feature.Set) Config[C, E] {
	c.features = c.features.Union(fs)
	return c
}

// UsingGenerator sets the element source.
func (c Config[C, E]) UsingGenerator(g generator.ContainerGenerator[C, E]) Config[C, E] {
	c.generator = g
	return c
}

// WithTesters appends testers.
func (c Config[C, E]) WithTesters(testers ...tester.Tester[generator.OneSizeGenerator[C, E]]) Config[C, E] {
	next := make([]tester.Tester[generator.OneSizeGenerator[C, E]], 0, len(c.testers)+len(testers))
	next = append(next, c.testers...)
	next = append(next, testers...)
	c.testers = next
	return c
}

// Suppressing adds test keys to exclude from every size branch.
func (c Config[C, E]) Suppressing(keys ...suite.TestKey) Config[C, E] {
	next := make(tester.KeySet, len(c.suppressed)+len(keys))
	for k := range c.suppressed {
		next[k] = struct{}{}
	}
	for _, k := range keys {
		next[k] = struct{}{}
	}
	c.suppressed = next
	return c
}

// Name returns the suite name.
func (c Config[C, E]) Name() string {
	return c.name
}

// Features returns a copy of the requested features.
func (c Config[C, E]) Features() feature.Set {
	return c.features.Copy()
}

// Generator returns the element source.
func (c Config[C, E]) Generator() generator.ContainerGenerator[C, E] {
	return c.generator
}

// Testers returns the tester list. Callers must not modify it.
func (c Config[C, E]) Testers() []tester.Tester[generator.OneSizeGenerator[C, E]] {
	return c.testers
}

// Suppressed returns the suppressed key set. Callers must not modify it.
func (c Config[C, E]) Suppressed() tester.KeySet {
	return c.suppressed
}

// OneSizeConfig is the configuration of a single size branch. It is handed
// to both the inner builder and the derived-suite hook.
type OneSizeConfig[C, E any] struct {
	Name       string
	Size       feature.Feature
	Generator  generator.OneSizeGenerator[C, E]
	Features   feature.Set
	Testers    []tester.Tester[generator.OneSizeGenerator[C, E]]
	Suppressed tester.KeySet
}

// TesterConfig converts the branch into an inner builder configuration.
func (o OneSizeConfig[C, E]) TesterConfig() tester.Config[generator.OneSizeGenerator[C, E]] {
	return tester.Config[generator.OneSizeGenerator[C, E]]{
		Name:       o.Name,
		Generator:  o.Generator,
		Features:   o.Features,
		Testers:    o.Testers,
		Suppressed: o.Suppressed,
	}
}
