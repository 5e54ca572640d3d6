package tester

import (
	"errors"
	"fmt"

	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/suite"
	"collsuite/pkg/logging"
)

var (
	// ErrIncompleteConfig is returned when a builder configuration lacks a
	// name or a generator.
	ErrIncompleteConfig = errors.New("incomplete suite configuration")
	// ErrDuplicateKey is returned when two cases share a key.
	ErrDuplicateKey = errors.New("duplicate test key")
)

// Config is everything an inner builder needs to produce one suite.
type Config[G any] struct {
	Name       string
	Generator  G
	Features   feature.Set
	Testers    []Tester[G]
	Suppressed KeySet
}

// InnerBuilder turns one configuration into a runnable suite.
type InnerBuilder[G any] interface {
	Build(cfg Config[G]) (*suite.Suite, error)
}

// InnerBuilderFunc adapts a function to InnerBuilder.
type InnerBuilderFunc[G any] func(cfg Config[G]) (*suite.Suite, error)

// Build calls f(cfg).
func (f InnerBuilderFunc[G]) Build(cfg Config[G]) (*suite.Suite, error) {
	return f(cfg)
}

// FeatureSpecificBuilder builds a suite holding one nested suite per tester,
// keeping only the cases whose feature requirements are met by the closure
// of the configured features and whose keys are not suppressed.
type FeatureSpecificBuilder[G any] struct {
	resolver feature.Resolver
}

// NewFeatureSpecificBuilder creates a builder using resolver for feature
// implication.
func NewFeatureSpecificBuilder[G any](resolver feature.Resolver) *FeatureSpecificBuilder[G] {
	return &FeatureSpecificBuilder[G]{resolver: resolver}
}

// Build implements InnerBuilder.
func (b *FeatureSpecificBuilder[G]) Build(cfg Config[G]) (*suite.Suite, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrIncompleteConfig)
	}
	if generator.IsNil(cfg.Generator) {
		return nil, fmt.Errorf("%w: %s: generator is required", ErrIncompleteConfig, cfg.Name)
	}

	closed, err := b.resolver.Closure(cfg.Features)
	if err != nil {
		return nil, err
	}

	root := suite.New(cfg.Name)
	seen := make(map[suite.TestKey]struct{})
	included, skipped, suppressed := 0, 0, 0

	for _, tr := range cfg.Testers {
		child := suite.New(tr.Name())
		for _, c := range tr.Cases() {
			if _, dup := seen[c.Key]; dup {
				return nil, fmt.Errorf("%w: %s (tester %s)", ErrDuplicateKey, c.Key, tr.Name())
			}
			seen[c.Key] = struct{}{}

			if cfg.Suppressed.Contains(c.Key) {
				suppressed++
				continue
			}
			if !c.Applies(closed) {
				skipped++
				continue
			}

			g := cfg.Generator
			child.AddTest(suite.Test{
				Key:  c.Key,
				Name: c.DisplayName(),
				Fn:   func(t suite.T) { c.Fn(t, g) },
			})
			included++
		}
		if len(child.Tests) > 0 {
			root.AddSuite(child)
		}
	}

	logging.Debug("Tester", "%s: %d cases included, %d not applicable, %d suppressed",
		cfg.Name, included, skipped, suppressed)

	return root, nil
}

var _ InnerBuilder[any] = (*FeatureSpecificBuilder[any])(nil)
