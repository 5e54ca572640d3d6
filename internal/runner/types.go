package runner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"collsuite/internal/suite"
)

// Result represents the outcome of one test
type Result string

const (
	// ResultPassed indicates the test passed successfully
	ResultPassed Result = "PASSED"
	// ResultFailed indicates an assertion failed
	ResultFailed Result = "FAILED"
	// ResultSkipped indicates the test skipped itself or was not run
	ResultSkipped Result = "SKIPPED"
	// ResultError indicates the test panicked, timed out or was cancelled
	ResultError Result = "ERROR"
)

// Configuration defines how a suite tree is executed
type Configuration struct {
	// Parallel is the number of workers; values below 2 run sequentially
	Parallel int `json:"parallel"`
	// FailFast stops scheduling tests after the first failure or error
	FailFast bool `json:"fail_fast"`
	// Timeout bounds each test; zero disables it
	Timeout time.Duration `json:"timeout"`
	// Filter keeps only tests whose full name contains it
	Filter string `json:"filter,omitempty"`
}

// TestCase is a test together with the suite path that leads to it.
type TestCase struct {
	Path []string
	Test suite.Test
}

// FullName joins the suite path and the test name with slashes, the way
// go test names subtests.
func (c TestCase) FullName() string {
	return strings.Join(append(append([]string(nil), c.Path...), c.Test.Name), "/")
}

// TestResult represents the result of a single test
type TestResult struct {
	// Name is the full slash-separated test name
	Name string `json:"name"`
	// Key is the stable test key
	Key suite.TestKey `json:"key"`
	// Result is the outcome
	Result Result `json:"result"`
	// StartTime when test execution began
	StartTime time.Time `json:"start_time"`
	// EndTime when test execution completed
	EndTime time.Time `json:"end_time"`
	// Duration of test execution
	Duration time.Duration `json:"duration"`
	// Error message for failures, errors and skips
	Error string `json:"error,omitempty"`
	// Output holds the messages logged by the test
	Output []string `json:"output,omitempty"`
}

// RunResult represents the overall result of a run
type RunResult struct {
	// ID identifies the run
	ID uuid.UUID `json:"id"`
	// Suite is the name of the root suite
	Suite string `json:"suite"`
	// StartTime when the run began
	StartTime time.Time `json:"start_time"`
	// EndTime when the run completed
	EndTime time.Time `json:"end_time"`
	// Duration of the run
	Duration time.Duration `json:"duration"`
	// Total is the number of selected tests
	Total int `json:"total"`
	// Passed is the number of tests that passed
	Passed int `json:"passed"`
	// Failed is the number of tests that failed
	Failed int `json:"failed"`
	// Skipped is the number of tests that were skipped or not run
	Skipped int `json:"skipped"`
	// Errors is the number of tests that had errors
	Errors int `json:"errors"`
	// Results contains individual test results in tree order
	Results []TestResult `json:"results"`
	// Configuration used for this run
	Configuration Configuration `json:"configuration"`
}

// Succeeded reports whether no test failed or errored.
func (r *RunResult) Succeeded() bool {
	return r.Failed == 0 && r.Errors == 0
}

// Runner executes a suite tree outside go test
type Runner interface {
	// Run executes the tests of root according to the configuration
	Run(ctx context.Context, config Configuration, root *suite.Suite) (*RunResult, error)
}

// Reporter receives progress events. Calls are made from a single
// goroutine.
type Reporter interface {
	// ReportStart is called when the run begins
	ReportStart(run *RunResult)
	// ReportTestResult is called when a test completes
	ReportTestResult(result TestResult)
	// ReportRunResult is called when all tests complete
	ReportRunResult(run *RunResult)
}
