// Package runner executes suite trees outside of go test.
//
// Each test runs on its own goroutine against a recording suite.T, so
// FailNow, Skipf and panics end only that test. Tests run sequentially or
// on a worker pool, with an optional per-test timeout and fail-fast. Results
// keep the tree order regardless of parallelism.
//
// # Reporters
//
//   - Console: one line per test (verbose) or one symbol per test (compact),
//     followed by a summary and an optional JSON report file
//   - Quiet: failures and a one-line summary
//   - JSON: the whole run as a single JSON document
//
// # Usage Example
//
//	reporter := runner.NewConsoleReporter(os.Stdout, true, "")
//	result, err := runner.NewRunner(reporter).Run(ctx, runner.Configuration{
//	    Parallel: 4,
//	    FailFast: true,
//	    Timeout:  5 * time.Second,
//	}, root)
package runner
