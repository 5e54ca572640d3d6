// Package tester defines typed test-case descriptors and the inner builder
// that turns one configuration into a runnable suite.
//
// Testers group Cases. Each Case carries a stable key, the features it
// requires and the features that must be absent. FeatureSpecificBuilder keeps
// the cases that apply to the implication closure of the configured
// features and drops suppressed keys.
package tester
