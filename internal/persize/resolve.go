package persize

import (
	"errors"
	"fmt"

	"collsuite/internal/feature"
)

// ErrNoSizeVariants is returned when a configuration resolves to no size
// variant at all.
var ErrNoSizeVariants = errors.New("no size variants specified")

// ConfigError reports a declaration that cannot produce any size branch.
type ConfigError struct {
	Suite     string
	Requested feature.Set
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (requested features: %s)", e.Suite, ErrNoSizeVariants, e.Requested)
}

// Unwrap lets errors.Is match ErrNoSizeVariants.
func (e *ConfigError) Unwrap() error {
	return ErrNoSizeVariants
}

// ResolveSizes splits the size tags out of requested, expands them under
// resolver and returns the applicable variants in build order together with
// the remaining non-size features. requested is never modified.
//
// Only explicitly requested size tags are expanded; a non-size feature that
// happens to imply a size tag does not add a branch.
func ResolveSizes(resolver feature.Resolver, name string, requested feature.Set) ([]feature.Feature, feature.Set, error) {
	remaining := requested.Copy()

	requestedSizes := feature.NewSet()
	for _, tag := range feature.SizeTags() {
		if remaining.Contains(tag) {
			requestedSizes.Add(tag)
		}
	}
	remaining.Remove(feature.SizeTags()...)

	closed, err := resolver.Closure(requestedSizes)
	if err != nil {
		return nil, nil, err
	}

	var sizes []feature.Feature
	for _, variant := range feature.SizeVariants() {
		if closed.Contains(variant) {
			sizes = append(sizes, variant)
		}
	}

	if len(sizes) == 0 {
		return nil, nil, &ConfigError{Suite: name, Requested: requested.Copy()}
	}

	return sizes, remaining, nil
}
