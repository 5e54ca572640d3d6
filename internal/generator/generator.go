package generator

import "reflect"

// SampleCapacity is the number of distinct sample elements every generator
// provides.
const SampleCapacity = 5

// SampleElements is the fixed pool of distinct sample elements. Fixtures are
// built from prefixes of the pool, so later elements are the ones guaranteed
// to be absent from small fixtures.
type SampleElements[E any] [SampleCapacity]E

// NewSampleElements builds a pool from exactly five elements.
func NewSampleElements[E any](e0, e1, e2, e3, e4 E) SampleElements[E] {
	return SampleElements[E]{e0, e1, e2, e3, e4}
}

// Slice returns the pool as a fresh slice in pool order.
func (s SampleElements[E]) Slice() []E {
	out := make([]E, SampleCapacity)
	copy(out, s[:])
	return out
}

// ContainerGenerator creates instances of a container type C holding
// elements of type E. Test authors provide one per implementation under test.
type ContainerGenerator[C, E any] interface {
	// Samples returns the sample pool.
	Samples() SampleElements[E]
	// Create builds a container holding exactly the given elements.
	Create(elements ...E) C
	// CreateArray returns a zeroed element slice of length n.
	CreateArray(n int) []E
	// Order returns the elements in the order the container will iterate
	// them, given the order they were inserted in.
	Order(insertionOrder []E) []E
}

// Funcs is a ContainerGenerator assembled from plain functions. A nil
// OrderFunc keeps insertion order.
type Funcs[C, E any] struct {
	Pool       SampleElements[E]
	CreateFunc func(elements ...E) C
	OrderFunc  func(insertionOrder []E) []E
}

// Samples returns the configured pool.
func (f Funcs[C, E]) Samples() SampleElements[E] {
	return f.Pool
}

// Create calls CreateFunc.
func (f Funcs[C, E]) Create(elements ...E) C {
	return f.CreateFunc(elements...)
}

// CreateArray returns make([]E, n).
func (f Funcs[C, E]) CreateArray(n int) []E {
	return make([]E, n)
}

// Order calls OrderFunc, or copies insertionOrder when it is nil.
func (f Funcs[C, E]) Order(insertionOrder []E) []E {
	if f.OrderFunc != nil {
		return f.OrderFunc(insertionOrder)
	}
	out := make([]E, len(insertionOrder))
	copy(out, insertionOrder)
	return out
}

// IsNil reports whether v is nil or a typed nil of a nillable kind, such as
// a nil *T stored in a ContainerGenerator.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

var _ ContainerGenerator[[]int, int] = Funcs[[]int, int]{}
