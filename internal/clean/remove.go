package clean

import (
	"errors"
	"io/fs"
	"os"
)

// OutcomeStatus classifies the result of one removal attempt.
type OutcomeStatus int

const (
	// Removed means the target was deleted.
	Removed OutcomeStatus = iota

	// SkippedNotFound means the target no longer existed at deletion time.
	// Expected when another process races us or a pattern matched the same
	// path twice through different templates; never treated as a failure.
	SkippedNotFound

	// SkippedError means deletion failed (permission denied, file in use,
	// non-empty directory without the recursion flag). The target is left
	// as-is and the batch continues.
	SkippedError

	// SkippedDryRun means removal was suppressed by dry-run mode.
	SkippedDryRun
)

func (s OutcomeStatus) String() string {
	switch s {
	case Removed:
		return "removed"
	case SkippedNotFound:
		return "not found"
	case SkippedError:
		return "failed"
	case SkippedDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// Outcome records the result of removing one resolved target.
type Outcome struct {
	Target Target
	Status OutcomeStatus
	Reason string
}

// Remove attempts to delete one resolved target and reports the outcome.
// Failures are contained here: Remove never panics past its boundary and
// the caller is expected to keep processing the rest of the batch.
//
// Directories are removed with their contents only when the recursion flag
// is set. Files always use plain deletion — a file literally named like a
// cache directory must not trigger a recursive walk.
func Remove(t Target) Outcome {
	info, err := os.Lstat(t.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Outcome{Target: t, Status: SkippedNotFound}
	}
	if err != nil {
		return Outcome{Target: t, Status: SkippedError, Reason: reason(err)}
	}

	if info.IsDir() && t.Recurse {
		err = os.RemoveAll(t.Path)
	} else {
		err = os.Remove(t.Path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return Outcome{Target: t, Status: SkippedNotFound}
	}
	if err != nil {
		return Outcome{Target: t, Status: SkippedError, Reason: reason(err)}
	}

	return Outcome{Target: t, Status: Removed}
}

// reason shortens an os error to its operational cause. PathError prefixes
// repeat the target path already carried by the Outcome.
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
