// Package suite holds the hierarchical test-suite tree produced by the
// builders.
//
// A Suite has a display name, a unique ID, test cases and nested suites.
// Test cases are written against the T interface so the same tree can run
// under go test (Suite.Run) or under the standalone runner.
package suite
