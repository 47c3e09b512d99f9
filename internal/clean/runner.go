package clean

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/winsweep/winsweep/internal/config"
)

// recycleBinStepName labels the native Recycle Bin primitive in reports, in
// place of an external command name.
const recycleBinStepName = "recycle-bin"

// ConfirmFunc answers a yes/no question put to the operator. It must return
// false for anything that is not an explicit yes — refusal is the default.
type ConfirmFunc func(prompt string) bool

// Options configures a Runner. Zero-value fields get safe defaults: a
// confirmer that declines everything, the real tool invoker, and the real
// Recycle Bin primitive.
type Options struct {
	// Confirm gates destructive steps. Nil declines every request, so a
	// Runner wired without interaction can never run a destructive step.
	Confirm ConfirmFunc

	// Invoke runs one external tool step. Nil means RunTool.
	Invoke func(config.ToolStep) StepResult

	// EmptyBin empties the Recycle Bin. Nil means EmptyRecycleBin.
	EmptyBin func() error

	// DryRun resolves patterns for real but suppresses every removal and
	// invocation, reporting what would have happened.
	DryRun bool

	Logger zerolog.Logger
}

// Runner executes catalog categories. It keeps no state between runs beyond
// the report it is currently assembling.
type Runner struct {
	confirm  ConfirmFunc
	invoke   func(config.ToolStep) StepResult
	emptyBin func() error
	dryRun   bool
	logger   zerolog.Logger
}

// New creates a Runner.
func New(opts Options) *Runner {
	r := &Runner{
		confirm:  opts.Confirm,
		invoke:   opts.Invoke,
		emptyBin: opts.EmptyBin,
		dryRun:   opts.DryRun,
		logger:   opts.Logger,
	}
	if r.confirm == nil {
		r.confirm = func(string) bool { return false }
	}
	if r.invoke == nil {
		r.invoke = RunTool
	}
	if r.emptyBin == nil {
		r.emptyBin = EmptyRecycleBin
	}
	return r
}

// Report aggregates everything one category execution did. It is not
// persisted anywhere; it exists for the end-of-run summary and tests.
type Report struct {
	Category config.Category
	Removals []Outcome
	Steps    []StepResult
}

// Counts tallies removal outcomes for summary display.
func (r Report) Counts() (removed, skipped, failed int) {
	for _, o := range r.Removals {
		switch o.Status {
		case Removed:
			removed++
		case SkippedError:
			failed++
		default:
			skipped++
		}
	}
	return removed, skipped, failed
}

// Failures returns every contained failure (removal or step) as
// label+reason pairs so the operator can see what was skipped and why.
func (r Report) Failures() []string {
	var out []string
	for _, o := range r.Removals {
		if o.Status == SkippedError {
			out = append(out, fmt.Sprintf("%s: %s", o.Target.Path, o.Reason))
		}
	}
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			out = append(out, fmt.Sprintf("%s: %s", s.Step.Name, s.Reason))
		}
	}
	return out
}

// RunCategory executes one category: every pattern is resolved and every
// target removed, then every tool step runs, destructive ones behind the
// confirmation gate. No failure stops the remaining work; the returned
// report is always complete.
func (r *Runner) RunCategory(cat config.Category) Report {
	log := r.logger.With().Str("category", cat.ID).Logger()
	report := Report{Category: cat}

	for _, pattern := range cat.Patterns {
		for _, target := range Resolve(pattern) {
			outcome := r.removeTarget(target)
			log.Debug().
				Str("path", target.Path).
				Stringer("status", outcome.Status).
				Str("reason", outcome.Reason).
				Msg("removal")
			report.Removals = append(report.Removals, outcome)
		}
	}

	for _, step := range cat.Steps {
		result := r.runStep(step)
		log.Debug().
			Str("command", step.Command()).
			Stringer("status", result.Status).
			Str("reason", result.Reason).
			Msg("tool step")
		report.Steps = append(report.Steps, result)
	}

	if cat.RecycleBin {
		result := r.emptyRecycleBin(log)
		report.Steps = append(report.Steps, result)
	}

	return report
}

// RunAll executes every catalog category independently in declared order.
// A failure inside one category never prevents the next from running.
func (r *Runner) RunAll(cats []config.Category) []Report {
	reports := make([]Report, 0, len(cats))
	for _, cat := range cats {
		reports = append(reports, r.RunCategory(cat))
	}
	return reports
}

func (r *Runner) removeTarget(t Target) Outcome {
	if r.dryRun {
		return Outcome{Target: t, Status: SkippedDryRun}
	}
	return Remove(t)
}

func (r *Runner) runStep(step config.ToolStep) StepResult {
	if r.dryRun {
		return StepResult{Step: step, Status: StepSkippedDryRun}
	}
	if step.Destructive {
		prompt := fmt.Sprintf("Run %q? This can delete data beyond caches", step.Command())
		if !r.confirm(prompt) {
			return StepResult{Step: step, Status: StepSkippedDeclined}
		}
	}
	return r.invoke(step)
}

func (r *Runner) emptyRecycleBin(log zerolog.Logger) StepResult {
	result := StepResult{Step: config.ToolStep{Name: recycleBinStepName}}

	if r.dryRun {
		result.Status = StepSkippedDryRun
		return result
	}

	if size, err := QueryRecycleBin(); err == nil {
		log.Debug().Int64("bytes", size).Msg("recycle bin size before emptying")
	}

	switch err := r.emptyBin(); {
	case err == nil:
		result.Status = StepSucceeded
	case errors.Is(err, ErrRecycleBinUnsupported):
		result.Status = StepSkippedNotInstalled
		result.Reason = err.Error()
	default:
		result.Status = StepFailed
		result.Reason = err.Error()
	}
	return result
}
