package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collsuite/internal/suite"
)

func runWith(t *testing.T, rep Reporter, tests ...suite.Test) *RunResult {
	t.Helper()
	run, err := NewRunner(rep).Run(context.Background(), Configuration{}, newTree(tests...))
	require.NoError(t, err)
	return run
}

func TestConsoleReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	runWith(t, NewConsoleReporter(&buf, true, ""), passing("ok"), failing("bad"))

	out := buf.String()
	assert.Contains(t, out, "🧪 Running root (2 tests)")
	assert.Contains(t, out, "Run ID:")
	assert.Contains(t, out, "✅ root/child/ok")
	assert.Contains(t, out, "❌ root/child/bad")
	assert.Contains(t, out, "Not equal")
	assert.Contains(t, out, "Success Rate: 50.0%")
	assert.Contains(t, out, "💔 Some tests failed")
}

func TestConsoleReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	runWith(t, NewConsoleReporter(&buf, false, ""), passing("ok"), passing("fine"))

	out := buf.String()
	assert.Contains(t, out, "✅✅\n")
	assert.NotContains(t, out, "root/child/ok")
	assert.Contains(t, out, "🎉 All tests passed!")
}

func TestConsoleReporter_SavesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")

	var buf bytes.Buffer
	run := runWith(t, NewConsoleReporter(&buf, false, path), passing("ok"))
	assert.Contains(t, buf.String(), "Detailed report saved to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded RunResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, run.ID, decoded.ID)
	assert.Equal(t, 1, decoded.Passed)
}

func TestQuietReporter(t *testing.T) {
	var buf bytes.Buffer
	runWith(t, NewQuietReporter(&buf), passing("ok"), failing("bad"))

	out := buf.String()
	assert.Contains(t, out, "❌ root/child/bad: ")
	assert.Contains(t, out, "❌ 1/2 tests failed")
	assert.NotContains(t, out, "root/child/ok")
}

func TestQuietReporter_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	runWith(t, NewQuietReporter(&buf), passing("ok"))
	assert.Equal(t, "✅ All 1 tests passed\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	run := runWith(t, NewJSONReporter(&buf), passing("ok"), failing("bad"))

	var decoded RunResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, run.ID, decoded.ID)
	assert.Equal(t, "root", decoded.Suite)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, ResultFailed, decoded.Results[1].Result)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", indent("a\nb\n", "  "))
}
