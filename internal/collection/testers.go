package collection

import (
	"errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/suite"
	"collsuite/internal/tester"
)

// absentIndex is the pool index of a sample that no fixture contains.
const absentIndex = feature.MultipleCount

// Testers returns the collection battery for container type C.
func Testers[C Collection[E], E comparable]() []tester.Tester[generator.OneSizeGenerator[C, E]] {
	return []tester.Tester[generator.OneSizeGenerator[C, E]]{
		sizeTester[C, E](),
		containsTester[C, E](),
		iterationTester[C, E](),
		addTester[C, E](),
		removeTester[C, E](),
		clearTester[C, E](),
		creationTester[C, E](),
	}
}

type group[C Collection[E], E comparable] = tester.Group[generator.OneSizeGenerator[C, E]]
type testCase[C Collection[E], E comparable] = tester.Case[generator.OneSizeGenerator[C, E]]

// fixtureElements returns the samples the fixture was built from.
func fixtureElements[C Collection[E], E comparable](t suite.T, g generator.OneSizeGenerator[C, E]) []E {
	t.Helper()
	elements, err := g.SampleElements(g.NumElements())
	require.NoError(t, err)
	return elements
}

func sizeTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "SizeTester",
		List: []testCase[C, E]{
			{
				Key:  "size.len",
				Name: "len matches fixture size",
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.Equal(t, g.NumElements(), g.CreateTestSubject().Len())
				},
			},
			{
				Key:      "size.is_empty",
				Name:     "empty fixture is empty",
				Requires: []feature.Feature{feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.True(t, g.CreateTestSubject().IsEmpty())
				},
			},
			{
				Key:    "size.is_not_empty",
				Name:   "populated fixture is not empty",
				Absent: []feature.Feature{feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.False(t, g.CreateTestSubject().IsEmpty())
				},
			},
		},
	}
}

func containsTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "ContainsTester",
		List: []testCase[C, E]{
			{
				Key:    "contains.present",
				Name:   "contains first sample",
				Absent: []feature.Feature{feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.True(t, g.CreateTestSubject().Contains(g.Samples()[0]))
				},
			},
			{
				Key:  "contains.absent",
				Name: "does not contain unused sample",
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.False(t, g.CreateTestSubject().Contains(g.Samples()[absentIndex]))
				},
			},
			{
				Key:  "contains.all",
				Name: "contains every fixture element",
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					for _, e := range fixtureElements(t, g) {
						assert.True(t, subject.Contains(e), "missing %v", e)
					}
				},
			},
		},
	}
}

func iterationTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "IterationTester",
		List: []testCase[C, E]{
			{
				Key:      "iteration.known_order",
				Name:     "iterates in documented order",
				Requires: []feature.Feature{feature.KnownOrder},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					expected := g.Order(fixtureElements(t, g))
					actual := g.CreateTestSubject().ToSlice()
					if len(expected) == 0 {
						assert.Empty(t, actual)
						return
					}
					assert.Equal(t, expected, actual)
				},
			},
			{
				Key:    "iteration.unknown_order",
				Name:   "iterates every element",
				Absent: []feature.Feature{feature.KnownOrder},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.ElementsMatch(t, fixtureElements(t, g), g.CreateTestSubject().ToSlice())
				},
			},
			{
				Key:    "iteration.to_slice_is_copy",
				Name:   "to slice returns a copy",
				Absent: []feature.Feature{feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					out := subject.ToSlice()
					out[0] = g.Samples()[absentIndex]
					assert.False(t, subject.Contains(g.Samples()[absentIndex]))
				},
			},
		},
	}
}

func addTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "AddTester",
		List: []testCase[C, E]{
			{
				Key:      "add.absent",
				Name:     "add unused sample",
				Requires: []feature.Feature{feature.SupportsAdd},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					changed, err := subject.Add(g.Samples()[absentIndex])
					require.NoError(t, err)
					assert.True(t, changed)
					assert.True(t, subject.Contains(g.Samples()[absentIndex]))
					assert.Equal(t, g.NumElements()+1, subject.Len())
				},
			},
			{
				Key:      "add.duplicate_allowed",
				Name:     "add present sample keeps both",
				Requires: []feature.Feature{feature.SupportsAdd, feature.AllowsDuplicates},
				Absent:   []feature.Feature{feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					changed, err := subject.Add(g.Samples()[0])
					require.NoError(t, err)
					assert.True(t, changed)
					assert.Equal(t, g.NumElements()+1, subject.Len())
				},
			},
			{
				Key:      "add.duplicate_rejected",
				Name:     "add present sample is a no-op",
				Requires: []feature.Feature{feature.SupportsAdd},
				Absent:   []feature.Feature{feature.SizeEmpty, feature.AllowsDuplicates},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					changed, err := subject.Add(g.Samples()[0])
					require.NoError(t, err)
					assert.False(t, changed)
					assert.Equal(t, g.NumElements(), subject.Len())
				},
			},
			{
				Key:    "add.unsupported",
				Name:   "add is rejected",
				Absent: []feature.Feature{feature.SupportsAdd},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					_, err := subject.Add(g.Samples()[absentIndex])
					assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)
					assert.Equal(t, g.NumElements(), subject.Len())
					assert.False(t, subject.Contains(g.Samples()[absentIndex]))
				},
			},
		},
	}
}

func removeTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "RemoveTester",
		List: []testCase[C, E]{
			{
				Key:      "remove.present",
				Name:     "remove present sample",
				Requires: []feature.Feature{feature.SupportsRemove},
				Absent:   []feature.Feature{feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					changed, err := subject.Remove(g.Samples()[0])
					require.NoError(t, err)
					assert.True(t, changed)
					assert.False(t, subject.Contains(g.Samples()[0]))
					assert.Equal(t, g.NumElements()-1, subject.Len())
				},
			},
			{
				Key:      "remove.absent",
				Name:     "remove unused sample is a no-op",
				Requires: []feature.Feature{feature.SupportsRemove},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					changed, err := subject.Remove(g.Samples()[absentIndex])
					require.NoError(t, err)
					assert.False(t, changed)
					assert.Equal(t, g.NumElements(), subject.Len())
				},
			},
			{
				Key:    "remove.unsupported",
				Name:   "remove is rejected",
				Absent: []feature.Feature{feature.SupportsRemove, feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					_, err := subject.Remove(g.Samples()[0])
					assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)
					assert.True(t, subject.Contains(g.Samples()[0]))
				},
			},
		},
	}
}

func clearTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "ClearTester",
		List: []testCase[C, E]{
			{
				Key:      "clear.supported",
				Name:     "clear empties the collection",
				Requires: []feature.Feature{feature.SupportsRemove},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					require.NoError(t, subject.Clear())
					assert.True(t, subject.IsEmpty())
					assert.Equal(t, 0, subject.Len())
				},
			},
			{
				Key:    "clear.unsupported",
				Name:   "clear is rejected",
				Absent: []feature.Feature{feature.SupportsRemove, feature.SizeEmpty},
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					subject := g.CreateTestSubject()
					err := subject.Clear()
					assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)
					assert.Equal(t, g.NumElements(), subject.Len())
				},
			},
		},
	}
}

func creationTester[C Collection[E], E comparable]() group[C, E] {
	return group[C, E]{
		Title: "CreationTester",
		List: []testCase[C, E]{
			{
				Key:  "create.array",
				Name: "create array has requested length",
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					assert.Len(t, g.CreateArray(g.NumElements()), g.NumElements())
				},
			},
			{
				Key:  "create.from_all_samples",
				Name: "create from the whole pool",
				Fn: func(t suite.T, g generator.OneSizeGenerator[C, E]) {
					all, err := g.SampleElements(generator.SampleCapacity)
					require.NoError(t, err)
					assert.Equal(t, generator.SampleCapacity, g.Create(all...).Len())
				},
			},
		},
	}
}
