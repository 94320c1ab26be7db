package addons

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/webstrap-labs/webstrap/internal/artifact"
	"github.com/webstrap-labs/webstrap/internal/manifest"
	"github.com/webstrap-labs/webstrap/internal/npm"
	"github.com/webstrap-labs/webstrap/internal/project"
)

// testDeps is the dev dependency bundle for the Jest stack.
var testDeps = []string{
	"jest",
	"jest-environment-jsdom",
	"@testing-library/react",
	"@testing-library/jest-dom",
	"identity-obj-proxy",
}

// testScripts are the command aliases the bundle adds to package.json.
var testScripts = map[string]string{
	"test":          "jest",
	"test:watch":    "jest --watch",
	"test:coverage": "jest --coverage",
}

// TestsInstaller wires the Jest testing stack into a project: dev
// dependencies, runner config, setup file, script aliases, and a starter
// test.
type TestsInstaller struct {
	NPM     *npm.Client
	Emitter *artifact.Emitter
	Log     *slog.Logger
}

// Name returns the feature flag this bundle is gated on.
func (t *TestsInstaller) Name() string { return project.FeatureTests }

// Install applies the bundle. Any sub-step failure aborts the install and
// is wrapped as a FeatureError; partial progress is left in place for the
// orchestrator's fail-fast handling.
func (t *TestsInstaller) Install(ctx context.Context, pc *project.Context) error {
	if err := t.install(ctx, pc); err != nil {
		return &FeatureError{Feature: t.Name(), Err: err}
	}
	return nil
}

func (t *TestsInstaller) install(ctx context.Context, pc *project.Context) error {
	log := t.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log.Info("installing test framework", "packages", len(testDeps))
	if err := t.NPM.InstallDev(ctx, pc.Dir, testDeps...); err != nil {
		return fmt.Errorf("installing test dependencies: %w", err)
	}

	data := artifact.NewData(pc.Name)
	renderers := []func(artifact.Data) (artifact.Artifact, error){
		artifact.JestConfig,
		artifact.JestSetup,
		artifact.SampleTest,
	}
	for _, render := range renderers {
		a, err := render(data)
		if err != nil {
			return err
		}
		if err := t.Emitter.Emit(a); err != nil {
			return err
		}
	}

	manifestPath := filepath.Join(pc.Dir, manifest.FileName)
	if err := manifest.PatchScripts(manifestPath, manifest.Patch{Scripts: testScripts}); err != nil {
		return fmt.Errorf("adding test scripts: %w", err)
	}

	if err := AddToGitignore(pc.Dir, "coverage"); err != nil {
		return err
	}

	log.Info("test framework installed", "feature", t.Name())
	return nil
}
