package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// consoleReporter implements the Reporter interface for terminals
type consoleReporter struct {
	out        io.Writer
	verbose    bool
	reportPath string
	failures   []TestResult
}

// NewConsoleReporter creates a reporter that prints every test when verbose
// and one symbol per test otherwise. A JSON report is saved to reportPath
// when it is set.
func NewConsoleReporter(out io.Writer, verbose bool, reportPath string) Reporter {
	return &consoleReporter{
		out:        out,
		verbose:    verbose,
		reportPath: reportPath,
	}
}

// ReportStart is called when the run begins
func (r *consoleReporter) ReportStart(run *RunResult) {
	fmt.Fprintf(r.out, "🧪 Running %s (%d tests)\n", run.Suite, run.Total)

	if r.verbose {
		cfg := run.Configuration
		fmt.Fprintf(r.out, "⚙️  Configuration:\n")
		fmt.Fprintf(r.out, "   • Run ID: %s\n", run.ID)
		fmt.Fprintf(r.out, "   • Parallel workers: %d\n", max(cfg.Parallel, 1))
		fmt.Fprintf(r.out, "   • Fail fast: %t\n", cfg.FailFast)
		fmt.Fprintf(r.out, "   • Timeout: %v\n", cfg.Timeout)
		if cfg.Filter != "" {
			fmt.Fprintf(r.out, "   • Filter: %s\n", cfg.Filter)
		}
		if r.reportPath != "" {
			fmt.Fprintf(r.out, "   • Report path: %s\n", r.reportPath)
		}
		fmt.Fprintf(r.out, "\n")
	}
}

// ReportTestResult is called when a test completes
func (r *consoleReporter) ReportTestResult(result TestResult) {
	if isFailure(result.Result) {
		r.failures = append(r.failures, result)
	}

	symbol := resultSymbol(result.Result)
	if !r.verbose {
		fmt.Fprint(r.out, symbol)
		return
	}

	fmt.Fprintf(r.out, "%s %s (%v)\n", symbol, result.Name, result.Duration)
	if result.Error != "" {
		fmt.Fprintf(r.out, "%s\n", indent(result.Error, "     "))
	}
}

// ReportRunResult is called when all tests complete
func (r *consoleReporter) ReportRunResult(run *RunResult) {
	if !r.verbose {
		fmt.Fprintf(r.out, "\n")
		for _, f := range r.failures {
			fmt.Fprintf(r.out, "%s %s\n%s\n", resultSymbol(f.Result), f.Name, indent(f.Error, "     "))
		}
	}

	fmt.Fprintf(r.out, "\n🏁 Run Complete\n")
	fmt.Fprintf(r.out, "⏱️  Duration: %v\n", run.Duration)
	fmt.Fprintf(r.out, "📊 Results:\n")
	fmt.Fprintf(r.out, "   ✅ Passed: %d\n", run.Passed)

	if run.Failed > 0 {
		fmt.Fprintf(r.out, "   ❌ Failed: %d\n", run.Failed)
	}
	if run.Errors > 0 {
		fmt.Fprintf(r.out, "   💥 Errors: %d\n", run.Errors)
	}
	if run.Skipped > 0 {
		fmt.Fprintf(r.out, "   ⏭️  Skipped: %d\n", run.Skipped)
	}
	fmt.Fprintf(r.out, "   📈 Total: %d\n", run.Total)

	successRate := 0.0
	if run.Total > 0 {
		successRate = float64(run.Passed) / float64(run.Total) * 100
	}
	fmt.Fprintf(r.out, "   📏 Success Rate: %.1f%%\n", successRate)

	if run.Succeeded() {
		fmt.Fprintf(r.out, "\n🎉 All tests passed!\n")
	} else {
		fmt.Fprintf(r.out, "\n💔 Some tests failed\n")
	}

	if r.reportPath != "" {
		if err := SaveReport(r.reportPath, run); err != nil {
			fmt.Fprintf(r.out, "⚠️  Failed to save detailed report: %v\n", err)
		} else {
			fmt.Fprintf(r.out, "📄 Detailed report saved to: %s\n", r.reportPath)
		}
	}
}

// SaveReport writes run as indented JSON to path, creating the parent
// directory if needed.
func SaveReport(path string, run *RunResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// resultSymbol returns an appropriate symbol for the test result
func resultSymbol(result Result) string {
	switch result {
	case ResultPassed:
		return "✅"
	case ResultFailed:
		return "❌"
	case ResultSkipped:
		return "⏭️"
	case ResultError:
		return "💥"
	default:
		return "❓"
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// NewQuietReporter creates a reporter that only outputs failures and a
// one-line summary
func NewQuietReporter(out io.Writer) Reporter {
	return &quietReporter{out: out}
}

// quietReporter implements minimal output for CI integration
type quietReporter struct {
	out io.Writer
}

func (r *quietReporter) ReportStart(*RunResult) {}

func (r *quietReporter) ReportTestResult(result TestResult) {
	if isFailure(result.Result) {
		fmt.Fprintf(r.out, "%s %s: %s\n", resultSymbol(result.Result), result.Name, firstLine(result.Error))
	}
}

func (r *quietReporter) ReportRunResult(run *RunResult) {
	if run.Succeeded() {
		fmt.Fprintf(r.out, "✅ All %d tests passed\n", run.Passed)
	} else {
		fmt.Fprintf(r.out, "❌ %d/%d tests failed\n", run.Failed+run.Errors, run.Total)
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// NewJSONReporter creates a reporter that outputs the whole run as JSON
// once it completes
func NewJSONReporter(out io.Writer) Reporter {
	return &jsonReporter{out: out}
}

// jsonReporter implements JSON output for machine consumption
type jsonReporter struct {
	out io.Writer
}

func (r *jsonReporter) ReportStart(*RunResult) {}

func (r *jsonReporter) ReportTestResult(TestResult) {}

func (r *jsonReporter) ReportRunResult(run *RunResult) {
	jsonData, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		fmt.Fprintf(r.out, `{"error": "Failed to marshal results: %v"}`+"\n", err)
		return
	}
	fmt.Fprintln(r.out, string(jsonData))
}
