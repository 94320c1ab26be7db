package prereq

import (
	"fmt"
	"os/exec"
)

// Tool names one required external executable. MinVersion is advisory and
// only consulted by Probe/Report; the scaffolding gate is presence-only.
type Tool struct {
	Name       string
	MinVersion string
}

// Defaults returns the executables every scaffold run requires: the manifest
// tool runtime, the package manager, the package runner, and version control.
func Defaults() []Tool {
	return []Tool{
		{Name: "node", MinVersion: "18.0.0"},
		{Name: "npm", MinVersion: "9.0.0"},
		{Name: "npx"},
		{Name: "git", MinVersion: "2.20.0"},
	}
}

// MissingToolError reports the first required executable not found on PATH.
type MissingToolError struct {
	Tool string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("required tool %q not found on PATH", e.Tool)
}

// Check probes each tool for presence in declared order and fails on the
// first one missing. It has no side effects beyond the PATH lookup.
func Check(tools []Tool) error {
	for _, tool := range tools {
		if _, err := exec.LookPath(tool.Name); err != nil {
			return &MissingToolError{Tool: tool.Name}
		}
	}
	return nil
}
