package addons

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/webstrap-labs/webstrap/internal/artifact"
	"github.com/webstrap-labs/webstrap/internal/manifest"
	"github.com/webstrap-labs/webstrap/internal/npm"
	"github.com/webstrap-labs/webstrap/internal/project"
)

// writeStubNpm puts an executable npm stand-in on a fresh PATH so installs
// run without touching the network.
func writeStubNpm(t *testing.T, exitCode int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables require a POSIX shell")
	}
	dir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode)
	if err := os.WriteFile(filepath.Join(dir, "npm"), []byte(script), 0755); err != nil {
		t.Fatalf("writing stub npm: %v", err)
	}
	t.Setenv("PATH", dir)
}

func newTestProject(t *testing.T) *project.Context {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "demo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating project dir: %v", err)
	}
	seed := `{"name": "demo", "version": "0.1.0", "scripts": {"dev": "vite"}}`
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(seed), 0644); err != nil {
		t.Fatalf("seeding package.json: %v", err)
	}

	pc, err := project.New("demo", dir, "react", project.Options{project.FeatureTests: true})
	if err != nil {
		t.Fatalf("building context: %v", err)
	}
	return pc
}

func TestTestsInstaller_Install(t *testing.T) {
	writeStubNpm(t, 0)
	pc := newTestProject(t)

	installer := &TestsInstaller{
		NPM:     &npm.Client{},
		Emitter: artifact.NewEmitter(pc.Dir, nil),
	}
	if err := installer.Install(context.Background(), pc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []string{
		artifact.JestConfigPath,
		artifact.JestSetupPath,
		artifact.SampleTestPath,
	} {
		if _, err := os.Stat(filepath.Join(pc.Dir, path)); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	pkg, err := manifest.Parse(filepath.Join(pc.Dir, manifest.FileName))
	if err != nil {
		t.Fatalf("parsing patched manifest: %v", err)
	}
	if pkg.Scripts["dev"] != "vite" {
		t.Errorf("expected existing dev script preserved, got %q", pkg.Scripts["dev"])
	}
	for alias, command := range map[string]string{
		"test":          "jest",
		"test:watch":    "jest --watch",
		"test:coverage": "jest --coverage",
	} {
		if pkg.Scripts[alias] != command {
			t.Errorf("expected script %s = %q, got %q", alias, command, pkg.Scripts[alias])
		}
	}

	gitignore, err := os.ReadFile(filepath.Join(pc.Dir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if !strings.Contains(string(gitignore), "coverage") {
		t.Error("expected coverage entry in .gitignore")
	}
}

func TestTestsInstaller_WrapsNpmFailure(t *testing.T) {
	writeStubNpm(t, 1)
	pc := newTestProject(t)

	installer := &TestsInstaller{
		NPM:     &npm.Client{},
		Emitter: artifact.NewEmitter(pc.Dir, nil),
	}

	err := installer.Install(context.Background(), pc)
	if err == nil {
		t.Fatal("expected error when npm fails")
	}

	var featErr *FeatureError
	if !errors.As(err, &featErr) {
		t.Fatalf("expected FeatureError, got %T: %v", err, err)
	}
	if featErr.Feature != project.FeatureTests {
		t.Errorf("expected feature %q, got %q", project.FeatureTests, featErr.Feature)
	}
}

func TestTestsInstaller_Name(t *testing.T) {
	installer := &TestsInstaller{}
	if installer.Name() != project.FeatureTests {
		t.Errorf("expected name %q, got %q", project.FeatureTests, installer.Name())
	}
}

func TestFeatureError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("registry unreachable")
	err := &FeatureError{Feature: "tests", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be findable")
	}
	if got := err.Error(); got != `feature "tests": registry unreachable` {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestAddToGitignore_CreatesFile(t *testing.T) {
	dir := t.TempDir()

	if err := AddToGitignore(dir, "coverage"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if string(content) != "coverage\n" {
		t.Errorf("expected 'coverage\\n', got %q", content)
	}
}

func TestAddToGitignore_AppendsWithNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("node_modules"), 0644); err != nil {
		t.Fatalf("seeding .gitignore: %v", err)
	}

	if err := AddToGitignore(dir, "coverage"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if string(content) != "node_modules\ncoverage\n" {
		t.Errorf("expected newline before appended entry, got %q", content)
	}
}

func TestAddToGitignore_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	seed := "node_modules\ncoverage\n"
	if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
		t.Fatalf("seeding .gitignore: %v", err)
	}

	if err := AddToGitignore(dir, "coverage"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if string(content) != seed {
		t.Errorf("expected file unchanged, got %q", content)
	}
}
