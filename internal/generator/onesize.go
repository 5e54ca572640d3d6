package generator

import (
	"errors"
	"fmt"

	"collsuite/internal/feature"
)

var (
	// ErrSampleRange is returned when more samples are requested than the
	// pool holds.
	ErrSampleRange = errors.New("sample request out of range")
	// ErrUnknownSize is returned when a source is bound to a feature that is
	// not a size variant.
	ErrUnknownSize = errors.New("not a size variant")
)

// SampleRangeError reports a sample request outside [0, Capacity].
type SampleRangeError struct {
	Requested int
	Capacity  int
}

func (e *SampleRangeError) Error() string {
	return fmt.Sprintf("requested %d sample elements, pool capacity is %d", e.Requested, e.Capacity)
}

// Unwrap lets errors.Is match ErrSampleRange.
func (e *SampleRangeError) Unwrap() error {
	return ErrSampleRange
}

// OneSizeGenerator is a ContainerGenerator fixed to one size variant.
// Testers receive one of these per size branch.
type OneSizeGenerator[C, E any] interface {
	ContainerGenerator[C, E]
	// Inner returns the wrapped generator.
	Inner() ContainerGenerator[C, E]
	// CollectionSize returns the bound size variant.
	CollectionSize() feature.Feature
	// NumElements returns the fixture element count of the variant.
	NumElements() int
	// CreateTestSubject builds the fixture from the first NumElements samples.
	CreateTestSubject() C
	// SampleElements returns the first howMany samples in pool order.
	SampleElements(howMany int) ([]E, error)
}

// OneSize binds a ContainerGenerator to a size variant.
type OneSize[C, E any] struct {
	generator ContainerGenerator[C, E]
	size      feature.Feature
	count     int
}

// NewOneSize wraps g for the given size variant.
func NewOneSize[C, E any](g ContainerGenerator[C, E], size feature.Feature) (*OneSize[C, E], error) {
	if IsNil(g) {
		return nil, fmt.Errorf("nil generator for size %s", size)
	}
	count, ok := feature.NumElements(size)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSize, size)
	}
	if count > SampleCapacity {
		return nil, &SampleRangeError{Requested: count, Capacity: SampleCapacity}
	}
	return &OneSize[C, E]{
		generator: g,
		size:      size,
		count:     count,
	}, nil
}

// Inner returns the wrapped generator.
func (o *OneSize[C, E]) Inner() ContainerGenerator[C, E] {
	return o.generator
}

// CollectionSize returns the bound size variant.
func (o *OneSize[C, E]) CollectionSize() feature.Feature {
	return o.size
}

// NumElements returns how many elements the fixture holds.
func (o *OneSize[C, E]) NumElements() int {
	return o.count
}

// Samples delegates to the wrapped generator.
func (o *OneSize[C, E]) Samples() SampleElements[E] {
	return o.generator.Samples()
}

// Create delegates to the wrapped generator.
func (o *OneSize[C, E]) Create(elements ...E) C {
	return o.generator.Create(elements...)
}

// CreateArray delegates to the wrapped generator.
func (o *OneSize[C, E]) CreateArray(n int) []E {
	return o.generator.CreateArray(n)
}

// Order delegates to the wrapped generator.
func (o *OneSize[C, E]) Order(insertionOrder []E) []E {
	return o.generator.Order(insertionOrder)
}

// CreateTestSubject builds the fixture for the bound size. The count is
// validated in NewOneSize, so this cannot fail.
func (o *OneSize[C, E]) CreateTestSubject() C {
	pool := o.generator.Samples()
	elements := make([]E, o.count)
	copy(elements, pool[:o.count])
	return o.generator.Create(elements...)
}

// SampleElements returns a fresh slice of the first howMany samples. It does
// not depend on the bound size.
func (o *OneSize[C, E]) SampleElements(howMany int) ([]E, error) {
	if howMany < 0 || howMany > SampleCapacity {
		return nil, &SampleRangeError{Requested: howMany, Capacity: SampleCapacity}
	}
	pool := o.generator.Samples()
	out := make([]E, howMany)
	copy(out, pool[:howMany])
	return out, nil
}

var _ OneSizeGenerator[[]int, int] = (*OneSize[[]int, int])(nil)
