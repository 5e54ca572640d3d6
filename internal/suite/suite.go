package suite

import (
	"testing"

	"github.com/google/uuid"
)

// T is the subset of *testing.T that test cases use. It is satisfied by
// *testing.T and by the runner's recording implementation, and is
// compatible with testify's assert and require packages.
type T interface {
	Helper()
	Name() string
	Logf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	FailNow()
	Failed() bool
	Skipf(format string, args ...any)
}

var _ T = (*testing.T)(nil)

// TestKey is a stable identifier of one test case, used for suppression.
type TestKey string

// Test is one runnable test case.
type Test struct {
	Key  TestKey
	Name string
	Fn   func(t T)
}

// Suite is a named, hierarchical grouping of tests and nested suites.
type Suite struct {
	// ID is unique per instance, so two builds never produce equal suites
	// by identity even when their structure matches.
	ID       uuid.UUID
	Name     string
	Tests    []Test
	Children []*Suite
}

// New creates an empty suite.
func New(name string) *Suite {
	return &Suite{
		ID:   uuid.New(),
		Name: name,
	}
}

// AddTest appends a test case.
func (s *Suite) AddTest(test Test) {
	s.Tests = append(s.Tests, test)
}

// AddSuite appends nested suites in the given order.
func (s *Suite) AddSuite(children ...*Suite) {
	s.Children = append(s.Children, children...)
}

// CountTests returns the number of tests in s and all nested suites.
func (s *Suite) CountTests() int {
	count := len(s.Tests)
	for _, child := range s.Children {
		count += child.CountTests()
	}
	return count
}

// Walk visits s and every nested suite depth-first, parents before
// children. path holds the names from the root down to the visited suite.
// Returning false from fn stops descent into that suite's children.
func (s *Suite) Walk(fn func(path []string, s *Suite) bool) {
	s.walk(nil, fn)
}

func (s *Suite) walk(parent []string, fn func(path []string, s *Suite) bool) {
	path := append(append([]string(nil), parent...), s.Name)
	if !fn(path, s) {
		return
	}
	for _, child := range s.Children {
		child.walk(path, fn)
	}
}

// Run executes the suite under go test, one subtest per test and per
// nested suite.
func (s *Suite) Run(t *testing.T) {
	t.Helper()
	for _, test := range s.Tests {
		t.Run(test.Name, func(t *testing.T) {
			test.Fn(t)
		})
	}
	for _, child := range s.Children {
		t.Run(child.Name, child.Run)
	}
}
