package clean

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsweep/winsweep/internal/config"
)

// countingInvoker records invocations without running anything.
type countingInvoker struct {
	calls  int
	result StepResult
}

func (c *countingInvoker) invoke(step config.ToolStep) StepResult {
	c.calls++
	res := c.result
	res.Step = step
	return res
}

func TestDestructiveStepDeclined(t *testing.T) {
	prune := config.ToolStep{
		Name:        "docker",
		Args:        []string{"system", "prune", "--volumes", "--force"},
		Destructive: true,
	}
	cat := config.Category{ID: "containers", Label: "Container runtime", Steps: []config.ToolStep{prune}}

	inv := &countingInvoker{result: StepResult{Status: StepSucceeded}}
	runner := New(Options{
		Confirm: func(string) bool { return false },
		Invoke:  inv.invoke,
	})

	report := runner.RunCategory(cat)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, StepSkippedDeclined, report.Steps[0].Status)
	assert.Zero(t, inv.calls, "declined step must never be invoked")
}

func TestDestructiveStepConfirmed(t *testing.T) {
	prune := config.ToolStep{Name: "docker", Args: []string{"system", "prune"}, Destructive: true}
	cat := config.Category{ID: "containers", Steps: []config.ToolStep{prune}}

	inv := &countingInvoker{result: StepResult{Status: StepSucceeded}}
	runner := New(Options{
		Confirm: func(string) bool { return true },
		Invoke:  inv.invoke,
	})

	report := runner.RunCategory(cat)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, StepSucceeded, report.Steps[0].Status)
	assert.Equal(t, 1, inv.calls, "confirmed step runs exactly once")
}

func TestDefaultConfirmerDeclines(t *testing.T) {
	prune := config.ToolStep{Name: "docker", Destructive: true}
	cat := config.Category{ID: "containers", Steps: []config.ToolStep{prune}}

	inv := &countingInvoker{}
	runner := New(Options{Invoke: inv.invoke})

	report := runner.RunCategory(cat)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, StepSkippedDeclined, report.Steps[0].Status)
	assert.Zero(t, inv.calls)
}

func TestNonDestructiveStepNeedsNoConfirmation(t *testing.T) {
	step := config.ToolStep{Name: "npm", Args: []string{"cache", "clean", "--force"}}
	cat := config.Category{ID: "package-managers", Steps: []config.ToolStep{step}}

	inv := &countingInvoker{result: StepResult{Status: StepSucceeded}}
	confirmed := 0
	runner := New(Options{
		Confirm: func(string) bool { confirmed++; return false },
		Invoke:  inv.invoke,
	})

	runner.RunCategory(cat)
	assert.Equal(t, 1, inv.calls)
	assert.Zero(t, confirmed, "non-destructive steps bypass the gate")
}

func TestRunAllContainsFailures(t *testing.T) {
	root := t.TempDir()
	t.Setenv("WINSWEEP_TEST_ROOT", root)

	writeFile(t, filepath.Join(root, "one", "cache.dat"))
	// Category two matches a non-empty directory without the recursion
	// flag, which cannot be deleted.
	writeFile(t, filepath.Join(root, "two", "stuck", "held.bin"))
	writeFile(t, filepath.Join(root, "three", "cache.dat"))

	cats := []config.Category{
		{ID: "one", Patterns: []config.PathPattern{
			{Pattern: filepath.Join(`%WINSWEEP_TEST_ROOT%`, "one", "cache.dat")},
		}},
		{ID: "two", Patterns: []config.PathPattern{
			{Pattern: filepath.Join(`%WINSWEEP_TEST_ROOT%`, "two", "stuck")},
		}},
		{ID: "three", Patterns: []config.PathPattern{
			{Pattern: filepath.Join(`%WINSWEEP_TEST_ROOT%`, "three", "cache.dat")},
		}},
	}

	reports := New(Options{}).RunAll(cats)
	require.Len(t, reports, 3)

	require.Len(t, reports[0].Removals, 1)
	assert.Equal(t, Removed, reports[0].Removals[0].Status)

	require.Len(t, reports[1].Removals, 1)
	assert.Equal(t, SkippedError, reports[1].Removals[0].Status)
	assert.Len(t, reports[1].Failures(), 1)

	// The failure in category two must not stop category three.
	require.Len(t, reports[2].Removals, 1)
	assert.Equal(t, Removed, reports[2].Removals[0].Status)
	assert.NoFileExists(t, filepath.Join(root, "three", "cache.dat"))
}

func TestDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	t.Setenv("WINSWEEP_TEST_ROOT", root)
	file := filepath.Join(root, "cache.dat")
	writeFile(t, file)

	inv := &countingInvoker{}
	runner := New(Options{Invoke: inv.invoke, DryRun: true})

	report := runner.RunCategory(config.Category{
		ID: "dry",
		Patterns: []config.PathPattern{
			{Pattern: filepath.Join(`%WINSWEEP_TEST_ROOT%`, "cache.dat")},
		},
		Steps: []config.ToolStep{{Name: "npm", Args: []string{"cache", "clean"}}},
	})

	require.Len(t, report.Removals, 1)
	assert.Equal(t, SkippedDryRun, report.Removals[0].Status)
	assert.FileExists(t, file)

	require.Len(t, report.Steps, 1)
	assert.Equal(t, StepSkippedDryRun, report.Steps[0].Status)
	assert.Zero(t, inv.calls)
}

func TestRecycleBinStepRecorded(t *testing.T) {
	cat := config.Category{ID: "recycle-bin", RecycleBin: true}

	emptied := 0
	runner := New(Options{EmptyBin: func() error { emptied++; return nil }})
	report := runner.RunCategory(cat)

	require.Len(t, report.Steps, 1)
	assert.Equal(t, recycleBinStepName, report.Steps[0].Step.Name)
	assert.Equal(t, StepSucceeded, report.Steps[0].Status)
	assert.Equal(t, 1, emptied)
}

func TestRecycleBinUnsupportedIsSkip(t *testing.T) {
	cat := config.Category{ID: "recycle-bin", RecycleBin: true}

	runner := New(Options{EmptyBin: func() error { return ErrRecycleBinUnsupported }})
	report := runner.RunCategory(cat)

	require.Len(t, report.Steps, 1)
	assert.Equal(t, StepSkippedNotInstalled, report.Steps[0].Status)
}

func TestRecycleBinFailureRecorded(t *testing.T) {
	cat := config.Category{ID: "recycle-bin", RecycleBin: true}

	runner := New(Options{EmptyBin: func() error { return errors.New("HRESULT 0x80070005") }})
	report := runner.RunCategory(cat)

	require.Len(t, report.Steps, 1)
	assert.Equal(t, StepFailed, report.Steps[0].Status)
	assert.Contains(t, report.Steps[0].Reason, "0x80070005")
}

func TestReportCounts(t *testing.T) {
	report := Report{
		Removals: []Outcome{
			{Status: Removed},
			{Status: Removed},
			{Status: SkippedNotFound},
			{Status: SkippedError, Reason: "permission denied"},
		},
	}

	removed, skipped, failed := report.Counts()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, failed)
}

func TestRunCategoryStateless(t *testing.T) {
	root := t.TempDir()
	t.Setenv("WINSWEEP_TEST_ROOT", root)
	file := filepath.Join(root, "cache.dat")
	writeFile(t, file)

	cat := config.Category{ID: "repeat", Patterns: []config.PathPattern{
		{Pattern: filepath.Join(`%WINSWEEP_TEST_ROOT%`, "cache.dat")},
	}}

	runner := New(Options{})

	first := runner.RunCategory(cat)
	require.Len(t, first.Removals, 1)
	assert.Equal(t, Removed, first.Removals[0].Status)

	// Second run resolves nothing: the target is gone and resolution is
	// re-done from scratch each time.
	second := runner.RunCategory(cat)
	assert.Empty(t, second.Removals)

	// Recreating the file makes it resolvable again.
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	third := runner.RunCategory(cat)
	require.Len(t, third.Removals, 1)
	assert.Equal(t, Removed, third.Removals[0].Status)
}
