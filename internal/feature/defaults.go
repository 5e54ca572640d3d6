package feature

import "strings"

// Size features. The three variants select fixture cardinality; SizeAny is
// a shorthand that implies all of them.
const (
	SizeEmpty    Feature = "size.empty"
	SizeSingle   Feature = "size.single"
	SizeMultiple Feature = "size.multiple"
	SizeAny      Feature = "size.any"
)

// MultipleCount is the number of elements in a SizeMultiple fixture. It is
// kept below the sample pool capacity so that some samples are always
// absent from every fixture.
const MultipleCount = 3

// Collection capability features.
const (
	SupportsAdd      Feature = "collection.supports_add"
	SupportsRemove   Feature = "collection.supports_remove"
	GeneralPurpose   Feature = "collection.general_purpose"
	KnownOrder       Feature = "collection.known_order"
	AllowsDuplicates Feature = "collection.allows_duplicates"
	Serializable     Feature = "collection.serializable"
)

// SizeVariants returns the recognized size variants in build order.
func SizeVariants() []Feature {
	return []Feature{SizeEmpty, SizeSingle, SizeMultiple}
}

// SizeTags returns every size-related tag, including SizeAny.
func SizeTags() []Feature {
	return []Feature{SizeEmpty, SizeSingle, SizeMultiple, SizeAny}
}

// IsSizeVariant reports whether f is one of the three size variants.
func IsSizeVariant(f Feature) bool {
	return f == SizeEmpty || f == SizeSingle || f == SizeMultiple
}

// NumElements returns the fixture element count for a size variant.
func NumElements(f Feature) (int, bool) {
	switch f {
	case SizeEmpty:
		return 0, true
	case SizeSingle:
		return 1, true
	case SizeMultiple:
		return MultipleCount, true
	default:
		return 0, false
	}
}

// SizeName returns the short display name of a size tag, e.g. "empty".
func SizeName(f Feature) string {
	return strings.TrimPrefix(string(f), "size.")
}

// Default returns a new taxonomy populated with the size and collection
// features.
func Default() *Taxonomy {
	t := NewTaxonomy()

	t.MustRegister(SizeEmpty, "fixture holds no elements")
	t.MustRegister(SizeSingle, "fixture holds exactly one element")
	t.MustRegister(SizeMultiple, "fixture holds several elements")
	t.MustRegister(SizeAny, "fixture may hold any number of elements", SizeEmpty, SizeSingle, SizeMultiple)

	t.MustRegister(SupportsAdd, "Add inserts elements")
	t.MustRegister(SupportsRemove, "Remove and Clear delete elements")
	t.MustRegister(GeneralPurpose, "fully mutable collection", SupportsAdd, SupportsRemove)
	t.MustRegister(KnownOrder, "iteration follows a documented order")
	t.MustRegister(AllowsDuplicates, "equal elements may be held more than once")
	t.MustRegister(Serializable, "survives a YAML round trip")

	return t
}
