package prereq

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Status describes the outcome of probing one tool.
type Status struct {
	Tool     Tool
	Path     string
	Version  string
	Missing  bool
	Outdated bool
}

// Probe resolves the tool on PATH and captures the version it reports.
// Version detection is best-effort: a tool that prints nothing parseable
// still counts as present.
func Probe(ctx context.Context, tool Tool) Status {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return Status{Tool: tool, Missing: true}
	}

	st := Status{Tool: tool, Path: path}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return st
	}
	st.Version = extractVersion(string(out))

	if tool.MinVersion != "" && st.Version != "" {
		cmp, cmpErr := CompareVersions(st.Version, tool.MinVersion)
		if cmpErr == nil && cmp < 0 {
			st.Outdated = true
		}
	}
	return st
}

// Report probes every tool and writes doctor-style status lines. It returns
// the number of missing tools so the caller can decide the exit status.
func Report(ctx context.Context, w io.Writer, tools []Tool) int {
	fmt.Fprintln(w, "Prerequisite check:")

	missing := 0
	for _, tool := range tools {
		st := Probe(ctx, tool)
		switch {
		case st.Missing:
			fmt.Fprintf(w, "  [MISS] %s not found\n", tool.Name)
			missing++
		case st.Outdated:
			fmt.Fprintf(w, "  [WARN] %s %s at %s (want >= %s)\n", tool.Name, st.Version, st.Path, tool.MinVersion)
		case st.Version == "":
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", tool.Name, st.Path)
		default:
			fmt.Fprintf(w, "  [ OK ] %s %s at %s\n", tool.Name, st.Version, st.Path)
		}
	}

	if missing > 0 {
		fmt.Fprintf(w, "\n  %d missing prerequisite(s). Install them and re-run.\n", missing)
	}
	return missing
}

// CompareVersions compares two version strings using semver.
// Returns -1 if current < required, 0 if equal, 1 if current > required.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(current, required string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", current, err)
	}
	rv, err := parseSemver(required)
	if err != nil {
		return 0, fmt.Errorf("parsing required version %q: %w", required, err)
	}
	return cv.Compare(rv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// extractVersion pulls the first semver-looking token out of --version
// output. Covers the shapes the required tools print: "v22.3.0" (node),
// "10.5.0" (npm/npx), and "git version 2.43.0".
func extractVersion(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	for _, field := range strings.Fields(line) {
		candidate := strings.TrimPrefix(field, "v")
		if _, err := semver.NewVersion(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
