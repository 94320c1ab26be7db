package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/webstrap-labs/webstrap/internal/addons"
	"github.com/webstrap-labs/webstrap/internal/artifact"
	"github.com/webstrap-labs/webstrap/internal/manifest"
	"github.com/webstrap-labs/webstrap/internal/npm"
	"github.com/webstrap-labs/webstrap/internal/project"
)

// baseScripts are the command aliases every scaffold gets, independent of
// feature selections.
var baseScripts = map[string]string{
	"lint":    "eslint . --ext .js,.jsx",
	"format":  "prettier --write .",
	"prepare": "husky install",
}

// Deps carries the collaborators the default step list closes over.
type Deps struct {
	NPM   *npm.Client
	Tests addons.Installer
	Log   *slog.Logger
}

// DefaultSteps returns the canonical step list. Order matters: the test
// bundle patches its script aliases before the base aliases land, and
// verification runs against the fully patched manifest.
func DefaultSteps(d Deps) []Step {
	emit := func(render func(artifact.Data) (artifact.Artifact, error)) func(context.Context, *project.Context) error {
		return func(_ context.Context, pc *project.Context) error {
			a, err := render(artifact.NewData(pc.Name))
			if err != nil {
				return err
			}
			return artifact.NewEmitter(pc.Dir, d.Log).Emit(a)
		}
	}

	return []Step{
		{
			Name: "install-dependencies",
			Run: func(ctx context.Context, pc *project.Context) error {
				return d.NPM.Install(ctx, pc.Dir)
			},
		},
		{
			Name: "testing-library",
			When: func(pc *project.Context) bool { return pc.Options.Enabled(project.FeatureTests) },
			Run: func(ctx context.Context, pc *project.Context) error {
				return d.Tests.Install(ctx, pc)
			},
		},
		{Name: "lint-config", Run: emit(artifact.LintConfig)},
		{Name: "format-config", Run: emit(artifact.FormatConfig)},
		{Name: "editor-settings", Run: emit(artifact.EditorSettings)},
		{Name: "git-hooks", Run: emit(artifact.PreCommitHook)},
		{
			Name: "manifest-scripts",
			Run: func(_ context.Context, pc *project.Context) error {
				path := filepath.Join(pc.Dir, manifest.FileName)
				return manifest.PatchScripts(path, manifest.Patch{Scripts: baseScripts})
			},
		},
		{
			Name: "verify-manifest",
			Run: func(_ context.Context, pc *project.Context) error {
				return verifyManifest(filepath.Join(pc.Dir, manifest.FileName))
			},
		},
	}
}

// verifyManifest confirms the patched package.json still has a valid shape.
func verifyManifest(path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		return nil
	}

	parts := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return fmt.Errorf("manifest validation: %s", strings.Join(parts, "; "))
}
