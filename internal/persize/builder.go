package persize

import (
	"context"
	"fmt"

	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/suite"
	"collsuite/internal/tester"
	"collsuite/pkg/logging"
)

const subsystem = "PerSize"

// ErrIncompleteConfig is returned when the configuration lacks a name or a
// generator. It is the same sentinel the inner builder uses.
var ErrIncompleteConfig = tester.ErrIncompleteConfig

// DerivedSuiteFactory creates extra suites for one size branch, e.g. suites
// exercising a derived view of the fixture. Implementations must not modify
// parent and must depend only on it.
type DerivedSuiteFactory[C, E any] interface {
	DeriveSuites(ctx context.Context, parent OneSizeConfig[C, E]) ([]*suite.Suite, error)
}

// DerivedSuiteFunc adapts a function to DerivedSuiteFactory.
type DerivedSuiteFunc[C, E any] func(ctx context.Context, parent OneSizeConfig[C, E]) ([]*suite.Suite, error)

// DeriveSuites calls f(ctx, parent).
func (f DerivedSuiteFunc[C, E]) DeriveSuites(ctx context.Context, parent OneSizeConfig[C, E]) ([]*suite.Suite, error) {
	return f(ctx, parent)
}

// NoDerivedSuites is the default hook; it derives nothing.
type NoDerivedSuites[C, E any] struct{}

// DeriveSuites returns no suites.
func (NoDerivedSuites[C, E]) DeriveSuites(context.Context, OneSizeConfig[C, E]) ([]*suite.Suite, error) {
	return nil, nil
}

// Option customizes a Builder.
type Option[C, E any] func(*Builder[C, E])

// WithResolver sets the feature implication service. It is also used by the
// default inner builder.
func WithResolver[C, E any](r feature.Resolver) Option[C, E] {
	return func(b *Builder[C, E]) {
		b.resolver = r
	}
}

// WithInnerBuilder replaces the builder used for each size branch.
func WithInnerBuilder[C, E any](inner tester.InnerBuilder[generator.OneSizeGenerator[C, E]]) Option[C, E] {
	return func(b *Builder[C, E]) {
		b.inner = inner
	}
}

// WithDerivedSuites sets the hook invoked once per size branch.
func WithDerivedSuites[C, E any](d DerivedSuiteFactory[C, E]) Option[C, E] {
	return func(b *Builder[C, E]) {
		b.derived = d
	}
}

// Builder creates a composite suite with one child suite per size variant.
type Builder[C, E any] struct {
	resolver feature.Resolver
	inner    tester.InnerBuilder[generator.OneSizeGenerator[C, E]]
	derived  DerivedSuiteFactory[C, E]
}

// NewBuilder creates a builder. Defaults: the feature.Default taxonomy, a
// tester.FeatureSpecificBuilder and no derived suites.
func NewBuilder[C, E any](opts ...Option[C, E]) *Builder[C, E] {
	b := &Builder[C, E]{}
	for _, opt := range opts {
		opt(b)
	}

	if b.resolver == nil {
		b.resolver = feature.Default()
	}
	if b.inner == nil {
		b.inner = tester.NewFeatureSpecificBuilder[generator.OneSizeGenerator[C, E]](b.resolver)
	}
	if b.derived == nil {
		b.derived = NoDerivedSuites[C, E]{}
	}
	return b
}

// Build resolves the size variants of cfg and assembles the composite suite.
//
// Branches are built in the order EMPTY, SINGLE, MULTIPLE. The first error
// from the inner builder or the hook aborts the build and is returned
// unchanged; branches built before it are discarded together with the
// composite, so Build never returns a partial suite. ctx is checked between
// branches.
func (b *Builder[C, E]) Build(ctx context.Context, cfg Config[C, E]) (*suite.Suite, error) {
	if cfg.name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrIncompleteConfig)
	}
	if generator.IsNil(cfg.generator) {
		return nil, fmt.Errorf("%w: %s: generator is required", ErrIncompleteConfig, cfg.name)
	}

	logging.Debug(subsystem, "Testing: %s", cfg.name)

	sizes, remaining, err := ResolveSizes(b.resolver, cfg.name, cfg.features)
	if err != nil {
		return nil, err
	}

	logging.Debug(subsystem, "%s sizes: %s", cfg.name, feature.NewSet(sizes...))

	composite := suite.New(cfg.name)
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		child, err := b.buildOneSize(ctx, cfg, size, remaining)
		if err != nil {
			logging.Debug(subsystem, "%s: branch %s failed: %v", cfg.name, feature.SizeName(size), err)
			return nil, err
		}
		composite.AddSuite(child)
	}

	return composite, nil
}

func (b *Builder[C, E]) buildOneSize(ctx context.Context, cfg Config[C, E], size feature.Feature, remaining feature.Set) (*suite.Suite, error) {
	oneSize, err := generator.NewOneSize(cfg.generator, size)
	if err != nil {
		return nil, err
	}

	features := remaining.Copy()
	features.Add(size)

	branch := OneSizeConfig[C, E]{
		Name:       OneSizeName(cfg.name, size),
		Size:       size,
		Generator:  oneSize,
		Features:   features,
		Testers:    cfg.testers,
		Suppressed: cfg.suppressed,
	}

	child, err := b.inner.Build(branch.TesterConfig())
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, fmt.Errorf("%s: inner builder returned no suite", branch.Name)
	}

	derived, err := b.derived.DeriveSuites(ctx, branch)
	if err != nil {
		return nil, err
	}
	for i, d := range derived {
		if d == nil {
			return nil, fmt.Errorf("%s: derived suite %d is nil", branch.Name, i)
		}
	}
	child.AddSuite(derived...)

	return child, nil
}

// OneSizeName returns the display name of a size branch.
func OneSizeName(name string, size feature.Feature) string {
	return fmt.Sprintf("%s [collection size: %s]", name, feature.SizeName(size))
}
