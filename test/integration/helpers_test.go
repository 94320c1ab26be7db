//go:build integration

package integration_test

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/webstrap-labs/webstrap/internal/addons"
	"github.com/webstrap-labs/webstrap/internal/artifact"
	"github.com/webstrap-labs/webstrap/internal/git"
	"github.com/webstrap-labs/webstrap/internal/npm"
	"github.com/webstrap-labs/webstrap/internal/orchestrator"
	"github.com/webstrap-labs/webstrap/internal/project"
)

// fakeScaffold is what the npx stand-in writes into the project directory.
// It mirrors the files a create-vite run leaves behind, enough for the
// manifest patching and git snapshot to operate on.
const fakeScaffold = `#!/bin/sh
cat > package.json <<'EOF'
{
  "name": "app",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build"
  }
}
EOF
mkdir -p src
echo 'export default function App() { return null; }' > src/App.jsx
echo '<!doctype html>' > index.html
exit 0
`

// setupToolchain shadows npm and npx with stand-ins so no run touches the
// network, while the real git stays reachable further down PATH. Commit
// identity is pinned for machines without global git config.
func setupToolchain(t *testing.T, npmExit int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables require a POSIX shell")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	binDir := t.TempDir()
	writeExecutable(t, filepath.Join(binDir, "npx"), fakeScaffold)
	writeExecutable(t, filepath.Join(binDir, "npm"), scriptExiting(npmExit))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@webstrap.dev")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@webstrap.dev")
}

func scriptExiting(code int) string {
	if code == 0 {
		return "#!/bin/sh\nexit 0\n"
	}
	return "#!/bin/sh\nexit 1\n"
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// newOrchestrator wires the full production step list against the given
// project context, logging into the discard handler.
func newOrchestrator(pc *project.Context) *orchestrator.Orchestrator {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	npmClient := &npm.Client{}
	return &orchestrator.Orchestrator{
		Scaffolder: npmClient,
		Steps: orchestrator.DefaultSteps(orchestrator.Deps{
			NPM: npmClient,
			Tests: &addons.TestsInstaller{
				NPM:     npmClient,
				Emitter: artifact.NewEmitter(pc.Dir, log),
				Log:     log,
			},
			Log: log,
		}),
		Finalizer: &git.Client{},
		Log:       log,
	}
}

func newProjectContext(t *testing.T, name string, opts project.Options) *project.Context {
	t.Helper()
	pc, err := project.New(name, filepath.Join(t.TempDir(), name), "react", opts)
	if err != nil {
		t.Fatalf("building context: %v", err)
	}
	return pc
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}
