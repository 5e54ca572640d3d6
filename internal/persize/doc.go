// Package persize builds a composite test suite with one child suite per
// collection size variant.
//
// A Config names the suite and lists the requested features, the testers,
// the suppressed test keys and the element source. Builder.Build resolves
// which of the EMPTY, SINGLE and MULTIPLE variants apply (ResolveSizes),
// binds a fresh generator.OneSize to each of them, delegates each branch to
// an inner builder and attaches any suites produced by the
// DerivedSuiteFactory hook under that branch.
//
// Every branch shares the same tester slice and the same suppressed key set.
// A build that cannot resolve any size variant fails with a *ConfigError
// matching ErrNoSizeVariants.
//
// # Usage Example
//
//	cfg := persize.NewConfig[*ArrayList[string], string]().
//	    Named("ArrayList").
//	    WithFeatures(feature.GeneralPurpose, feature.SizeAny).
//	    UsingGenerator(gen).
//	    WithTesters(collection.Testers[*ArrayList[string], string]()...)
//
//	s, err := persize.NewBuilder[*ArrayList[string], string]().Build(ctx, cfg)
package persize
