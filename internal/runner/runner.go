package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"collsuite/internal/suite"
	"collsuite/pkg/logging"
)

// testRunner implements the Runner interface
type testRunner struct {
	reporter Reporter
}

// NewRunner creates a new runner that reports progress to reporter
func NewRunner(reporter Reporter) Runner {
	return &testRunner{reporter: reporter}
}

// Collect flattens root into its tests in tree order, keeping only those
// whose full name contains filter.
func Collect(root *suite.Suite, filter string) []TestCase {
	var cases []TestCase
	root.Walk(func(path []string, s *suite.Suite) bool {
		for _, test := range s.Tests {
			tc := TestCase{Path: path, Test: test}
			if filter != "" && !strings.Contains(tc.FullName(), filter) {
				continue
			}
			cases = append(cases, tc)
		}
		return true
	})
	return cases
}

// Run executes the tests of root according to the configuration. Tests that
// were not started because of fail-fast or cancellation are reported as
// skipped. When ctx is cancelled the partial result is returned together
// with the context error.
func (r *testRunner) Run(ctx context.Context, config Configuration, root *suite.Suite) (*RunResult, error) {
	if root == nil {
		return nil, errors.New("no suite to run")
	}

	cases := Collect(root, config.Filter)
	result := &RunResult{
		ID:            uuid.New(),
		Suite:         root.Name,
		StartTime:     time.Now(),
		Total:         len(cases),
		Results:       make([]TestResult, len(cases)),
		Configuration: config,
	}

	r.reporter.ReportStart(result)
	logging.Debug("Runner", "Run %s: %d tests in %s, parallel=%d fail-fast=%t",
		result.ID, len(cases), root.Name, config.Parallel, config.FailFast)

	if config.Parallel <= 1 {
		r.runSequential(ctx, config, cases, result)
	} else {
		r.runParallel(ctx, config, cases, result)
	}

	for _, res := range result.Results {
		r.updateCounters(result, res)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	r.reporter.ReportRunResult(result)
	logging.Debug("Runner", "Run %s finished in %v: %d passed, %d failed, %d errors, %d skipped",
		result.ID, result.Duration, result.Passed, result.Failed, result.Errors, result.Skipped)

	return result, ctx.Err()
}

func (r *testRunner) runSequential(ctx context.Context, config Configuration, cases []TestCase, result *RunResult) {
	stopReason := ""
	for i, tc := range cases {
		if stopReason == "" && ctx.Err() != nil {
			stopReason = fmt.Sprintf("not run: %v", ctx.Err())
		}

		var res TestResult
		if stopReason != "" {
			res = notRun(tc, stopReason)
		} else {
			res = runTest(ctx, tc, config.Timeout)
		}
		result.Results[i] = res
		r.reporter.ReportTestResult(res)

		if stopReason == "" && config.FailFast && isFailure(res.Result) {
			stopReason = fmt.Sprintf("not run: stopped after failure of %s", res.Name)
		}
	}
}

// runParallel executes tests with a worker pool. Results are stored at the
// index of their test so the final order matches the tree. Fail-fast stops
// dispatching new tests; tests already running finish normally.
func (r *testRunner) runParallel(ctx context.Context, config Configuration, cases []TestCase, result *RunResult) {
	type job struct {
		index int
		tc    TestCase
	}
	type outcome struct {
		index int
		res   TestResult
	}

	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()

	jobs := make(chan job)
	outcomes := make(chan outcome)

	numWorkers := min(config.Parallel, len(cases))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				logging.Debug("Runner", "Worker %d executing %s", workerID, j.tc.FullName())
				outcomes <- outcome{index: j.index, res: runTest(ctx, j.tc, config.Timeout)}
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for i, tc := range cases {
			if dispatchCtx.Err() != nil {
				return
			}
			select {
			case jobs <- job{index: i, tc: tc}:
			case <-dispatchCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	completed := make([]bool, len(cases))
	stopReason := ""
	for o := range outcomes {
		result.Results[o.index] = o.res
		completed[o.index] = true
		r.reporter.ReportTestResult(o.res)

		if stopReason == "" && config.FailFast && isFailure(o.res.Result) {
			stopReason = fmt.Sprintf("not run: stopped after failure of %s", o.res.Name)
			stopDispatch()
		}
	}

	if stopReason == "" && ctx.Err() != nil {
		stopReason = fmt.Sprintf("not run: %v", ctx.Err())
	}
	for i, tc := range cases {
		if completed[i] {
			continue
		}
		res := notRun(tc, stopReason)
		result.Results[i] = res
		r.reporter.ReportTestResult(res)
	}
}

// testOutcome is what the test goroutine reports back.
type testOutcome struct {
	panicked bool
	value    any
	stack    []byte
}

// runTest executes one test on its own goroutine so that FailNow, Skipf
// and panics are contained. A test that outlives its timeout or the context
// is abandoned and reported as an error.
func runTest(ctx context.Context, tc TestCase, timeout time.Duration) TestResult {
	res := TestResult{
		Name:      tc.FullName(),
		Key:       tc.Test.Key,
		StartTime: time.Now(),
	}
	rec := newRecorder(res.Name)

	done := make(chan testOutcome, 1)
	go func() {
		var o testOutcome
		defer func() {
			if v := recover(); v != nil {
				o = testOutcome{panicked: true, value: v, stack: debug.Stack()}
			}
			done <- o
		}()
		tc.Test.Fn(rec)
	}()

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case o := <-done:
		failed, skipped, output, reasons := rec.snapshot()
		res.Output = output
		switch {
		case o.panicked:
			res.Result = ResultError
			res.Error = fmt.Sprintf("panic: %v", o.value)
			res.Output = append(res.Output, string(o.stack))
		case failed:
			res.Result = ResultFailed
			res.Error = strings.Join(reasons, "\n")
		case skipped:
			res.Result = ResultSkipped
			res.Error = strings.Join(reasons, "\n")
		default:
			res.Result = ResultPassed
		}
	case <-timeoutC:
		res.Result = ResultError
		res.Error = fmt.Sprintf("timed out after %v", timeout)
		_, _, res.Output, _ = rec.snapshot()
	case <-ctx.Done():
		res.Result = ResultError
		res.Error = fmt.Sprintf("cancelled: %v", ctx.Err())
		_, _, res.Output, _ = rec.snapshot()
	}

	res.EndTime = time.Now()
	res.Duration = res.EndTime.Sub(res.StartTime)
	return res
}

func notRun(tc TestCase, reason string) TestResult {
	now := time.Now()
	return TestResult{
		Name:      tc.FullName(),
		Key:       tc.Test.Key,
		Result:    ResultSkipped,
		StartTime: now,
		EndTime:   now,
		Error:     reason,
	}
}

func isFailure(r Result) bool {
	return r == ResultFailed || r == ResultError
}

// updateCounters updates the run counters based on a test result
func (r *testRunner) updateCounters(run *RunResult, res TestResult) {
	switch res.Result {
	case ResultPassed:
		run.Passed++
	case ResultFailed:
		run.Failed++
	case ResultSkipped:
		run.Skipped++
	case ResultError:
		run.Errors++
	}
}
