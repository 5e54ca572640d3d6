package runner

import (
	"fmt"
	"runtime"
	"sync"

	"collsuite/internal/suite"
)

// recorder is a suite.T that records outcomes instead of reporting them to
// go test. FailNow and Skipf stop the calling goroutine with
// runtime.Goexit, so tests must run on a goroutine of their own.
type recorder struct {
	name string

	mu      sync.Mutex
	failed  bool
	skipped bool
	output  []string
	reasons []string
}

var _ suite.T = (*recorder)(nil)

func newRecorder(name string) *recorder {
	return &recorder{name: name}
}

func (r *recorder) Helper() {}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = append(r.output, fmt.Sprintf(format, args...))
}

func (r *recorder) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
	r.output = append(r.output, msg)
	r.reasons = append(r.reasons, msg)
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
	r.FailNow()
}

func (r *recorder) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *recorder) Skipf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.mu.Lock()
	r.skipped = true
	r.output = append(r.output, msg)
	r.reasons = append(r.reasons, msg)
	r.mu.Unlock()
	runtime.Goexit()
}

// snapshot returns the recorded state.
func (r *recorder) snapshot() (failed, skipped bool, output, reasons []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed, r.skipped,
		append([]string(nil), r.output...),
		append([]string(nil), r.reasons...)
}
