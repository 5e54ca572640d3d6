package persize

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collsuite/internal/feature"
	"collsuite/internal/generator"
	"collsuite/internal/suite"
	"collsuite/internal/tester"
)

type branchGen = generator.OneSizeGenerator[[]string, string]

func sliceGenerator() generator.ContainerGenerator[[]string, string] {
	return generator.Funcs[[]string, string]{
		Pool: generator.NewSampleElements("a", "b", "c", "d", "e"),
		CreateFunc: func(elements ...string) []string {
			return append([]string{}, elements...)
		},
	}
}

// recordingInner captures every configuration it is asked to build.
type recordingInner struct {
	calls []tester.Config[branchGen]
	fail  map[string]error
}

func (r *recordingInner) Build(cfg tester.Config[branchGen]) (*suite.Suite, error) {
	r.calls = append(r.calls, cfg)
	if err := r.fail[cfg.Name]; err != nil {
		return nil, err
	}
	s := suite.New(cfg.Name)
	s.AddTest(suite.Test{Key: "stub", Name: "stub", Fn: func(suite.T) {}})
	return s, nil
}

// descendingSizes implies multiple -> single -> empty.
var descendingSizes = feature.ResolverFunc(func(in feature.Set) (feature.Set, error) {
	out := in.Copy()
	if out.Contains(feature.SizeMultiple) {
		out.Add(feature.SizeSingle)
	}
	if out.Contains(feature.SizeSingle) {
		out.Add(feature.SizeEmpty)
	}
	return out, nil
})

func baseConfig() Config[[]string, string] {
	return NewConfig[[]string, string]().
		Named("Foo").
		UsingGenerator(sliceGenerator())
}

func TestBuild_MultipleImpliesAllSizes(t *testing.T) {
	inner := &recordingInner{}
	b := NewBuilder[[]string, string](
		WithResolver[[]string, string](descendingSizes),
		WithInnerBuilder[[]string, string](inner),
	)

	s, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeMultiple))
	require.NoError(t, err)

	assert.Equal(t, "Foo", s.Name)
	expected := []string{
		"Foo [collection size: empty]",
		"Foo [collection size: single]",
		"Foo [collection size: multiple]",
	}
	if diff := cmp.Diff(expected, s.ChildNames()); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_OneChildPerResolvedVariant(t *testing.T) {
	tests := []struct {
		name     string
		features []feature.Feature
		expected []feature.Feature
	}{
		{"any", []feature.Feature{feature.SizeAny}, []feature.Feature{feature.SizeEmpty, feature.SizeSingle, feature.SizeMultiple}},
		{"single only", []feature.Feature{feature.SizeSingle}, []feature.Feature{feature.SizeSingle}},
		{"any plus explicit", []feature.Feature{feature.SizeAny, feature.SizeEmpty}, []feature.Feature{feature.SizeEmpty, feature.SizeSingle, feature.SizeMultiple}},
		{"empty and multiple", []feature.Feature{feature.SizeMultiple, feature.SizeEmpty}, []feature.Feature{feature.SizeEmpty, feature.SizeMultiple}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &recordingInner{}
			b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

			s, err := b.Build(context.Background(), baseConfig().WithFeatures(tt.features...))
			require.NoError(t, err)
			require.Len(t, s.Children, len(tt.expected))
			require.Len(t, inner.calls, len(tt.expected))

			for i, size := range tt.expected {
				assert.Equal(t, OneSizeName("Foo", size), s.Children[i].Name)
				assert.Equal(t, size, inner.calls[i].Generator.CollectionSize())
				assert.True(t, inner.calls[i].Features.Contains(size))
			}
		})
	}
}

func TestBuild_NoSizeVariants(t *testing.T) {
	inner := &recordingInner{}
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

	_, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.KnownOrder))
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrNoSizeVariants))
	assert.Contains(t, err.Error(), "Foo")
	assert.Contains(t, err.Error(), "no size variants specified")
	assert.Contains(t, err.Error(), string(feature.KnownOrder))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "Foo", cfgErr.Suite)
	assert.Empty(t, inner.calls, "no branch may be built when resolution fails")
}

func TestBuild_EmptyFeatureSet(t *testing.T) {
	_, err := NewBuilder[[]string, string]().Build(context.Background(), baseConfig())
	assert.ErrorIs(t, err, ErrNoSizeVariants)
	assert.Contains(t, err.Error(), "no size variants specified")
}

func TestBuild_SharedTestersAndSuppressions(t *testing.T) {
	inner := &recordingInner{}
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

	stub := tester.Group[branchGen]{Title: "Stub"}
	cfg := baseConfig().
		WithFeatures(feature.SizeAny, feature.KnownOrder).
		WithTesters(stub).
		Suppressing("a.key", "b.key")

	_, err := b.Build(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, inner.calls, 3)

	first := inner.calls[0]
	for _, call := range inner.calls[1:] {
		// Same map and same backing array, not equal copies
		assert.Equal(t, reflect.ValueOf(first.Suppressed).Pointer(), reflect.ValueOf(call.Suppressed).Pointer())
		assert.Equal(t, reflect.ValueOf(first.Testers).Pointer(), reflect.ValueOf(call.Testers).Pointer())
		assert.Equal(t, first.Suppressed, call.Suppressed)
	}
	assert.Equal(t, tester.NewKeySet("a.key", "b.key"), first.Suppressed)
	assert.Equal(t, reflect.ValueOf(cfg.Suppressed()).Pointer(), reflect.ValueOf(first.Suppressed).Pointer())
}

func TestBuild_BranchFeatures(t *testing.T) {
	inner := &recordingInner{}
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

	cfg := baseConfig().WithFeatures(feature.SizeAny, feature.SizeSingle, feature.KnownOrder)
	_, err := b.Build(context.Background(), cfg)
	require.NoError(t, err)

	for _, call := range inner.calls {
		size := call.Generator.CollectionSize()
		assert.Equal(t, feature.NewSet(feature.KnownOrder, size), call.Features,
			"branch %s must see the remaining features plus its own size only", size)
	}
	// The caller's configuration is untouched
	assert.Equal(t, feature.NewSet(feature.SizeAny, feature.SizeSingle, feature.KnownOrder), cfg.Features())
}

func TestBuild_DistinctGeneratorsPerBranch(t *testing.T) {
	inner := &recordingInner{}
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

	_, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeAny))
	require.NoError(t, err)
	require.Len(t, inner.calls, 3)

	assert.NotSame(t, inner.calls[0].Generator, inner.calls[1].Generator)
	assert.NotSame(t, inner.calls[1].Generator, inner.calls[2].Generator)

	assert.Equal(t, []string{}, inner.calls[0].Generator.CreateTestSubject())
	assert.Equal(t, []string{"a"}, inner.calls[1].Generator.CreateTestSubject())
	assert.Equal(t, []string{"a", "b", "c"}, inner.calls[2].Generator.CreateTestSubject())
}

func TestBuild_RepeatedBuildsMatchStructure(t *testing.T) {
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](&recordingInner{}))
	cfg := baseConfig().WithFeatures(feature.SizeAny)

	first, err := b.Build(context.Background(), cfg)
	require.NoError(t, err)
	second, err := b.Build(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID, second.ID)
	if diff := cmp.Diff(first.Shape(), second.Shape()); diff != "" {
		t.Errorf("shape mismatch (-first +second):\n%s", diff)
	}
}

func TestBuild_DerivedSuitesAttachedInOrder(t *testing.T) {
	var seen []OneSizeConfig[[]string, string]
	hook := DerivedSuiteFunc[[]string, string](func(_ context.Context, parent OneSizeConfig[[]string, string]) ([]*suite.Suite, error) {
		seen = append(seen, parent)
		return []*suite.Suite{
			suite.New(parent.Name + " [first]"),
			suite.New(parent.Name + " [second]"),
		}, nil
	})

	inner := &recordingInner{}
	b := NewBuilder[[]string, string](
		WithInnerBuilder[[]string, string](inner),
		WithDerivedSuites[[]string, string](hook),
	)

	s, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeSingle, feature.SizeEmpty))
	require.NoError(t, err)
	require.Len(t, s.Children, 2)
	require.Len(t, seen, 2)

	for i, child := range s.Children {
		assert.Equal(t, []string{child.Name + " [first]", child.Name + " [second]"}, child.ChildNames())
		// The inner builder's own test stays in place
		assert.Len(t, child.Tests, 1)
		assert.Equal(t, child.Name, seen[i].Name)
		assert.Same(t, inner.calls[i].Generator, seen[i].Generator)
	}
}

func TestBuild_DefaultHookDerivesNothing(t *testing.T) {
	s, err := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](&recordingInner{})).
		Build(context.Background(), baseConfig().WithFeatures(feature.SizeAny))
	require.NoError(t, err)
	for _, child := range s.Children {
		assert.Empty(t, child.Children)
	}
}

func TestBuild_InnerFailurePropagatesUnchanged(t *testing.T) {
	boom := errors.New("boom")
	inner := &recordingInner{fail: map[string]error{
		OneSizeName("Foo", feature.SizeSingle): boom,
	}}
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

	s, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeAny))
	assert.Nil(t, s)
	assert.Same(t, boom, err)
	// The empty branch was built first, the multiple branch never started
	assert.Len(t, inner.calls, 2)
}

func TestBuild_HookFailurePropagatesUnchanged(t *testing.T) {
	boom := errors.New("hook failed")
	hook := DerivedSuiteFunc[[]string, string](func(context.Context, OneSizeConfig[[]string, string]) ([]*suite.Suite, error) {
		return nil, boom
	})
	b := NewBuilder[[]string, string](
		WithInnerBuilder[[]string, string](&recordingInner{}),
		WithDerivedSuites[[]string, string](hook),
	)

	s, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeAny))
	assert.Nil(t, s)
	assert.Same(t, boom, err)
}

func TestBuild_NilDerivedSuiteRejected(t *testing.T) {
	hook := DerivedSuiteFunc[[]string, string](func(context.Context, OneSizeConfig[[]string, string]) ([]*suite.Suite, error) {
		return []*suite.Suite{nil}, nil
	})
	b := NewBuilder[[]string, string](
		WithInnerBuilder[[]string, string](&recordingInner{}),
		WithDerivedSuites[[]string, string](hook),
	)

	_, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeEmpty))
	assert.ErrorContains(t, err, "derived suite 0 is nil")
}

func TestBuild_ResolverFailurePropagates(t *testing.T) {
	boom := errors.New("closure unavailable")
	b := NewBuilder[[]string, string](
		WithResolver[[]string, string](feature.ResolverFunc(func(feature.Set) (feature.Set, error) { return nil, boom })),
	)

	_, err := b.Build(context.Background(), baseConfig().WithFeatures(feature.SizeAny))
	assert.Same(t, boom, err)
}

func TestBuild_IncompleteConfig(t *testing.T) {
	b := NewBuilder[[]string, string]()

	_, err := b.Build(context.Background(), NewConfig[[]string, string]().UsingGenerator(sliceGenerator()).WithFeatures(feature.SizeAny))
	assert.ErrorIs(t, err, ErrIncompleteConfig)

	_, err = b.Build(context.Background(), NewConfig[[]string, string]().Named("Foo").WithFeatures(feature.SizeAny))
	assert.ErrorIs(t, err, ErrIncompleteConfig)

	var typed *generator.OneSize[[]string, string]
	s, err := b.Build(context.Background(), NewConfig[[]string, string]().
		Named("Foo").
		UsingGenerator(typed).
		WithFeatures(feature.SizeAny))
	assert.ErrorIs(t, err, ErrIncompleteConfig)
	assert.Nil(t, s)
}

func TestBuild_CancelledContext(t *testing.T) {
	inner := &recordingInner{}
	b := NewBuilder[[]string, string](WithInnerBuilder[[]string, string](inner))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, baseConfig().WithFeatures(feature.SizeAny))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, inner.calls)
}

func TestBuild_DefaultInnerBuilderEndToEnd(t *testing.T) {
	var subjects [][]string
	testers := []tester.Tester[branchGen]{
		tester.Group[branchGen]{Title: "Subject", List: []tester.Case[branchGen]{
			{Key: "subject.size", Name: "size", Fn: func(t suite.T, g branchGen) {
				subject := g.CreateTestSubject()
				subjects = append(subjects, subject)
				assert.Len(t, subject, g.NumElements())
			}},
			{Key: "subject.nonempty", Name: "nonempty", Absent: []feature.Feature{feature.SizeEmpty}, Fn: func(t suite.T, g branchGen) {
				assert.NotEmpty(t, g.CreateTestSubject())
			}},
		}},
	}

	cfg := baseConfig().WithFeatures(feature.SizeAny).WithTesters(testers...)
	s, err := NewBuilder[[]string, string]().Build(context.Background(), cfg)
	require.NoError(t, err)

	// nonempty is excluded from the empty branch only
	assert.Equal(t, 5, s.CountTests())
	s.Run(t)
	assert.Len(t, subjects, 3)
}
