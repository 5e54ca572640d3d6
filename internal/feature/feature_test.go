package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_CopyIsIndependent(t *testing.T) {
	original := NewSet(SupportsAdd)
	copied := original.Copy()
	copied.Add(SupportsRemove)

	assert.False(t, original.Contains(SupportsRemove))
	assert.True(t, copied.ContainsAll(SupportsAdd, SupportsRemove))
}

func TestSet_NilCopy(t *testing.T) {
	var s Set
	copied := s.Copy()
	assert.NotNil(t, copied)
	assert.Empty(t, copied)
}

func TestSet_UnionIntersect(t *testing.T) {
	a := NewSet(SizeEmpty, SizeSingle)
	b := NewSet(SizeSingle, SizeMultiple)

	assert.Equal(t, NewSet(SizeEmpty, SizeSingle, SizeMultiple), a.Union(b))
	assert.Equal(t, NewSet(SizeSingle), a.Intersect(b))
	// Operands stay untouched
	assert.Len(t, a, 2)
	assert.Len(t, b, 2)
}

func TestSet_StringIsSorted(t *testing.T) {
	s := NewSet(SizeSingle, KnownOrder, SizeEmpty)
	assert.Equal(t, "[collection.known_order, size.empty, size.single]", s.String())
}

func TestSet_ContainsAny(t *testing.T) {
	s := NewSet(KnownOrder)
	assert.True(t, s.ContainsAny(SupportsAdd, KnownOrder))
	assert.False(t, s.ContainsAny(SupportsAdd))
	assert.False(t, s.ContainsAny())
}

func TestNumElements(t *testing.T) {
	tests := []struct {
		feature Feature
		want    int
		ok      bool
	}{
		{SizeEmpty, 0, true},
		{SizeSingle, 1, true},
		{SizeMultiple, MultipleCount, true},
		{SizeAny, 0, false},
		{KnownOrder, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.feature.String(), func(t *testing.T) {
			got, ok := NumElements(tt.feature)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeName(t *testing.T) {
	assert.Equal(t, "empty", SizeName(SizeEmpty))
	assert.Equal(t, "single", SizeName(SizeSingle))
	assert.Equal(t, "multiple", SizeName(SizeMultiple))
}

func TestSet_Difference(t *testing.T) {
	s := NewSet(SizeEmpty, SizeSingle, KnownOrder)
	got := s.Difference(NewSet(SizeSingle, Serializable))
	assert.Equal(t, NewSet(SizeEmpty, KnownOrder), got)
	assert.Len(t, s, 3)
}
