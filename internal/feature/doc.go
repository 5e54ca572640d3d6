// Package feature provides capability tags and their implication rules.
//
// A Feature is an opaque string tag such as "collection.supports_add". A
// Taxonomy records which features imply which others and computes the
// transitive closure of a Set. Suite builders consult a Resolver (usually a
// Taxonomy) to decide which size variants and which test cases apply to an
// implementation under test.
//
// # Size features
//
// SizeEmpty, SizeSingle and SizeMultiple select the cardinality of the
// fixture under test. SizeAny implies all three. MultipleCount fixes the
// element count of the SizeMultiple variant.
//
// # Usage Example
//
//	tax := feature.Default()
//	closed, err := tax.Closure(feature.NewSet(feature.GeneralPurpose, feature.SizeAny))
//	if err != nil {
//	    return err
//	}
//	closed.Contains(feature.SupportsAdd) // true
package feature
