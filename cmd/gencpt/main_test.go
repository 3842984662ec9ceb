package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdout(fn func() error) (string, error) {
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout = w
	runErr := fn()
	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		_ = r.Close()
		return "", err
	}
	_ = r.Close()
	return buf.String(), runErr
}

func runCaptured(t *testing.T, args ...string) []string {
	t.Helper()
	out, err := captureStdout(func() error {
		return run(context.Background(), args)
	})
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(out), "\n")
}

func field(line, key string) string {
	for _, f := range strings.Fields(line) {
		if v, ok := strings.CutPrefix(f, key+"="); ok {
			return v
		}
	}
	return ""
}

func TestRunRequiresCommand(t *testing.T) {
	require.ErrorContains(t, run(context.Background(), nil), "missing command")
	require.ErrorContains(t, run(context.Background(), []string{"bogus"}), "unknown command: bogus")
}

func TestGenerateMemory(t *testing.T) {
	lines := runCaptured(t, "generate", "-d", "2", "-c", "0,1", "-g", "1", "-seed", "7")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "arity=0 attempts=1 [ "), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "arity=1 attempts="), lines[1])

	summary := lines[2]
	require.Len(t, field(summary, "run_id"), 36)
	require.Equal(t, "memory", field(summary, "store"))
	require.Equal(t, "2", field(summary, "tables"))
	require.Equal(t, "3", field(summary, "rows"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	args := []string{"generate", "-d", "3", "-i", "0.3", "-c", "2", "-g", "2", "-seed", "11"}
	first := runCaptured(t, args...)
	second := runCaptured(t, args...)
	require.Equal(t, first[:2], second[:2])
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	ctx := context.Background()
	require.Error(t, run(ctx, []string{"generate", "-d", "1"}))
	require.Error(t, run(ctx, []string{"generate", "-i", "1"}))
	require.Error(t, run(ctx, []string{"generate", "-c", "1,x"}))
	require.Error(t, run(ctx, []string{"generate", "-store", "postgres"}))
	require.Error(t, run(ctx, []string{"generate", "extra"}))
}

func TestGenerateRowBudget(t *testing.T) {
	err := run(context.Background(), []string{"generate", "-d", "3", "-c", "5", "-max-rows", "100"})
	require.ErrorContains(t, err, "arity=5")
}

func TestGenerateSQLiteThenRunsAndShow(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cpt.db")
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
domain_size: 3
incompleteness: 0.2
seed: 5
arities: [0, 2]
count: 2
store:
  kind: sqlite
  path: `+dbPath+`
`), 0o600))

	lines := runCaptured(t, "generate", "-config", cfgPath)
	require.Len(t, lines, 5)
	summary := lines[4]
	runID := field(summary, "run_id")
	require.Equal(t, "sqlite", field(summary, "store"))
	require.Equal(t, "4", field(summary, "tables"))
	require.Equal(t, "20", field(summary, "rows"))

	runs := runCaptured(t, "runs", "-db-path", dbPath)
	require.Len(t, runs, 1)
	require.Equal(t, runID, field(runs[0], "run_id"))
	require.Equal(t, "3", field(runs[0], "d"))
	require.Equal(t, "4", field(runs[0], "tables"))

	shown := runCaptured(t, "show", "-db-path", dbPath, "-run", runID)
	require.Len(t, shown, 4)
	for i, line := range shown {
		require.Equal(t, lines[i][strings.Index(lines[i], "["):], line[strings.Index(line, "["):])
	}
	require.Equal(t, "0", field(shown[0], "arity"))
	require.Equal(t, "2", field(shown[3], "arity"))

	require.ErrorContains(t, run(context.Background(), []string{"show", "-db-path", dbPath, "-run", "nope"}), "run not found")
	require.Error(t, run(context.Background(), []string{"show", "-db-path", dbPath}))
}

func TestRunsEmpty(t *testing.T) {
	lines := runCaptured(t, "runs", "-db-path", filepath.Join(t.TempDir(), "empty.db"))
	require.Equal(t, []string{"no runs found"}, lines)
}

func TestCheck(t *testing.T) {
	lines := runCaptured(t, "check", "-d", "2", "-c", "1", "1", "2")
	require.Equal(t, []string{"degenerate=false vacuous=[]"}, lines)

	lines = runCaptured(t, "check", "-d", "2", "-c", "1", "2", "2")
	require.Equal(t, []string{"degenerate=true vacuous=[0]"}, lines)

	// Column 1 of a 2-parent table is ignored when outputs follow column 0.
	lines = runCaptured(t, "check", "-d", "2", "-c", "2", "1", "1", "*", "*")
	require.Equal(t, []string{"degenerate=true vacuous=[1]"}, lines)
}

func TestCheckErrors(t *testing.T) {
	ctx := context.Background()
	require.ErrorContains(t, run(ctx, []string{"check", "-d", "2", "-c", "1"}), "outputs are required")
	require.Error(t, run(ctx, []string{"check", "-d", "2", "-c", "1", "1"}))
	require.Error(t, run(ctx, []string{"check", "-d", "2", "-c", "1", "1", "3"}))
	require.Error(t, run(ctx, []string{"check", "-d", "2", "-c", "1", "1", "x"}))
}

func TestPairs(t *testing.T) {
	lines := runCaptured(t, "pairs", "-n", "5", "-d", "3", "-hamming", "2", "-count", "4", "-seed", "3")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, "2", field(line, "hamming"), line)
	}
	require.Error(t, run(context.Background(), []string{"pairs", "-n", "2", "-hamming", "3"}))
	require.Error(t, run(context.Background(), []string{"pairs", "-count", "0"}))
}
