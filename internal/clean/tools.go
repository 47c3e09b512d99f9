package clean

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/winsweep/winsweep/internal/config"
)

// toolTimeout bounds how long one external cache-clear command may run.
// Package manager cleans can be slow on cold disks, but must not hang the
// whole run forever.
const toolTimeout = 120 * time.Second

// StepStatus classifies the result of one external tool step.
type StepStatus int

const (
	// StepSucceeded means the command ran and exited zero.
	StepSucceeded StepStatus = iota

	// StepSkippedNotInstalled means the command was not found on PATH.
	// Expected — most workstations have only a subset of the tools.
	StepSkippedNotInstalled

	// StepSkippedDeclined means a destructive step was refused at the
	// confirmation gate (explicitly or by default).
	StepSkippedDeclined

	// StepSkippedDryRun means invocation was suppressed by dry-run mode.
	StepSkippedDryRun

	// StepFailed means the command launched but exited non-zero, timed
	// out, or could not be started.
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepSucceeded:
		return "ok"
	case StepSkippedNotInstalled:
		return "not installed"
	case StepSkippedDeclined:
		return "declined"
	case StepSkippedDryRun:
		return "dry-run"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult records the result of one external tool step.
type StepResult struct {
	Step   config.ToolStep
	Status StepStatus
	Reason string
}

// RunTool executes one external cache-clear step. The command is first
// resolved on PATH; if absent, the step is skipped with no side effects.
// Execution is synchronous and the child's output is captured, not parsed —
// only the exit status decides success. A failure here never propagates as
// an error: it is contained in the returned result.
func RunTool(step config.ToolStep) StepResult {
	if _, err := exec.LookPath(step.Name); err != nil {
		return StepResult{Step: step, Status: StepSkippedNotInstalled}
	}

	ctx, cancel := context.WithTimeout(context.Background(), toolTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, step.Name, step.Args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return StepResult{Step: step, Status: StepFailed, Reason: exitReason(err, output)}
	}

	return StepResult{Step: step, Status: StepSucceeded}
}

// exitReason renders an exec error with enough of the child's output to be
// actionable, truncated at a valid UTF-8 boundary.
func exitReason(err error, output []byte) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timed out after %s", toolTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out := strings.TrimSpace(string(output))
		if len(out) > 200 {
			out = out[:200]
			for len(out) > 0 && !utf8.ValidString(out) {
				out = out[:len(out)-1]
			}
			out += "..."
		}
		if out != "" {
			return fmt.Sprintf("exit code %d: %s", exitErr.ExitCode(), out)
		}
		return fmt.Sprintf("exit code %d", exitErr.ExitCode())
	}

	return err.Error()
}
