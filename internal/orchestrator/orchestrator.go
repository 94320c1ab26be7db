package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/webstrap-labs/webstrap/internal/prereq"
	"github.com/webstrap-labs/webstrap/internal/project"
)

// snapshotMessage is the commit message for the finalize step.
const snapshotMessage = "Initial scaffold"

// Step is one unit of orchestrated work. A nil When predicate means the
// step always runs. Steps are stateless descriptors; the orchestrator owns
// the ordered sequence.
type Step struct {
	Name string
	When func(*project.Context) bool
	Run  func(ctx context.Context, pc *project.Context) error
}

// BaseScaffolder populates a prepared directory with the base project.
type BaseScaffolder interface {
	CreateProject(ctx context.Context, dir, template string) error
}

// Finalizer records the initial version-control snapshot.
type Finalizer interface {
	Snapshot(ctx context.Context, dir, message string) error
}

// Summary reports what one successful run did.
type Summary struct {
	Project  string
	Dir      string
	Executed []string
	Skipped  []string
	Elapsed  time.Duration
}

// Orchestrator drives one scaffolding run. All collaborators are injected;
// the orchestrator itself never touches the process working directory.
type Orchestrator struct {
	Prereqs    []prereq.Tool
	Scaffolder BaseScaffolder
	Steps      []Step
	Finalizer  Finalizer
	Log        *slog.Logger
}

// Run executes the full sequence against pc. The first failure aborts the
// run; steps already applied stay applied.
func (o *Orchestrator) Run(ctx context.Context, pc *project.Context) (*Summary, error) {
	start := time.Now()
	log := o.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// The name was validated at collection time; re-checking here keeps
	// the no-mutation-on-bad-input invariant independent of the caller.
	if err := project.ValidateName(pc.Name); err != nil {
		return nil, err
	}

	log.Info("checking prerequisites", "tools", len(o.Prereqs))
	if err := prereq.Check(o.Prereqs); err != nil {
		return nil, err
	}

	if _, err := os.Stat(pc.Dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDirExists, pc.Dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking project directory: %w", err)
	}
	if err := os.MkdirAll(pc.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}
	log.Info("created project directory", "dir", pc.Dir)

	log.Info("running base scaffold", "template", pc.Template)
	if err := o.Scaffolder.CreateProject(ctx, pc.Dir, pc.Template); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseScaffold, err)
	}

	summary := &Summary{Project: pc.Name, Dir: pc.Dir}
	for _, step := range o.Steps {
		if step.When != nil && !step.When(pc) {
			log.Debug("skipping step", "step", step.Name)
			summary.Skipped = append(summary.Skipped, step.Name)
			continue
		}
		log.Info("running step", "step", step.Name)
		if err := step.Run(ctx, pc); err != nil {
			return nil, &StepError{Step: step.Name, Err: err}
		}
		summary.Executed = append(summary.Executed, step.Name)
	}

	log.Info("recording initial snapshot")
	if err := o.Finalizer.Snapshot(ctx, pc.Dir, snapshotMessage); err != nil {
		return nil, &StepError{Step: "finalize", Err: err}
	}
	summary.Executed = append(summary.Executed, "finalize")

	summary.Elapsed = time.Since(start)
	log.Info("scaffold complete", "project", pc.Name, "dir", pc.Dir, "elapsed", summary.Elapsed)
	return summary, nil
}
