package collection

import (
	"context"

	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/persize"
	"collsuite/internal/suite"
	"collsuite/internal/tester"
	"collsuite/pkg/logging"
)

// SuiteBuilder builds collection suites. For serializable collections each
// size branch also gets a "[reserialized]" suite that reruns the battery
// against containers that went through a YAML round trip.
type SuiteBuilder[C Collection[E], E comparable] struct {
	resolver    feature.Resolver
	reserialize Reserializer[C]
	inner       *tester.FeatureSpecificBuilder[generator.OneSizeGenerator[C, E]]
	builder     *persize.Builder[C, E]
}

// NewSuiteBuilder creates a builder that resolves features with resolver.
func NewSuiteBuilder[C Collection[E], E comparable](resolver feature.Resolver) *SuiteBuilder[C, E] {
	b := &SuiteBuilder[C, E]{
		resolver:    resolver,
		reserialize: YAMLReserializer[C](),
		inner:       tester.NewFeatureSpecificBuilder[generator.OneSizeGenerator[C, E]](resolver),
	}
	b.builder = persize.NewBuilder[C, E](
		persize.WithResolver[C, E](resolver),
		persize.WithInnerBuilder[C, E](b.inner),
		persize.WithDerivedSuites[C, E](b),
	)
	return b
}

// WithReserializer replaces the YAML round trip.
func (b *SuiteBuilder[C, E]) WithReserializer(r Reserializer[C]) *SuiteBuilder[C, E] {
	b.reserialize = r
	return b
}

// NewConfig returns a configuration preloaded with the collection battery.
func NewConfig[C Collection[E], E comparable](name string, g generator.ContainerGenerator[C, E]) persize.Config[C, E] {
	return persize.NewConfig[C, E]().
		Named(name).
		UsingGenerator(g).
		WithTesters(Testers[C, E]()...)
}

// Build assembles the per-size suite for cfg.
func (b *SuiteBuilder[C, E]) Build(ctx context.Context, cfg persize.Config[C, E]) (*suite.Suite, error) {
	return b.builder.Build(ctx, cfg)
}

// DeriveSuites implements persize.DerivedSuiteFactory.
func (b *SuiteBuilder[C, E]) DeriveSuites(_ context.Context, parent persize.OneSizeConfig[C, E]) ([]*suite.Suite, error) {
	closed, err := b.resolver.Closure(parent.Features)
	if err != nil {
		return nil, err
	}
	if !closed.Contains(feature.Serializable) {
		return nil, nil
	}

	// The round-tripped copy is not required to be serializable again.
	features := parent.Features.Copy()
	features.Remove(feature.Serializable)

	derived, err := b.inner.Build(tester.Config[generator.OneSizeGenerator[C, E]]{
		Name: parent.Name + " [reserialized]",
		Generator: reserializedGenerator[C, E]{
			OneSizeGenerator: parent.Generator,
			reserialize:      b.reserialize,
		},
		Features:   features,
		Testers:    parent.Testers,
		Suppressed: parent.Suppressed,
	})
	if err != nil {
		return nil, err
	}

	logging.Debug("Collection", "%s: derived reserialized suite with %d tests", parent.Name, derived.CountTests())
	return []*suite.Suite{derived}, nil
}

var _ persize.DerivedSuiteFactory[Collection[int], int] = (*SuiteBuilder[Collection[int], int])(nil)
