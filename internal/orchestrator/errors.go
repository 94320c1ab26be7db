package orchestrator

import (
	"errors"
	"fmt"
)

// ErrDirExists reports a target project directory that already exists.
// An existing directory is never overwritten, silently or otherwise.
var ErrDirExists = errors.New("project directory already exists")

// ErrBaseScaffold reports a template tool invocation that exited nonzero.
var ErrBaseScaffold = errors.New("base scaffold failed")

// StepError wraps a failed step with its name so the top level can report
// which step broke without re-running in a debug mode.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
