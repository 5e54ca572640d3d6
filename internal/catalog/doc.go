// Package catalog turns suite declarations into built suites. Each
// container kind is registered with its generator and capability features;
// a declaration adds size tags and suppressions on top.
package catalog
