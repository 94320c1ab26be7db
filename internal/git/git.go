package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client runs git against a project directory.
type Client struct{}

// Snapshot records the initial commit for a freshly scaffolded project:
// init if needed, stage everything, commit. A repository that already has
// nothing to commit is left as-is rather than treated as a failure.
func (c *Client) Snapshot(ctx context.Context, dir, message string) error {
	if !c.isRepo(ctx, dir) {
		if output, err := c.run(ctx, dir, "init"); err != nil {
			return fmt.Errorf("git init: %w\nOutput: %s", err, output)
		}
	}

	if output, err := c.run(ctx, dir, "add", "-A"); err != nil {
		return fmt.Errorf("staging scaffold files: %w\nOutput: %s", err, output)
	}

	if output, err := c.run(ctx, dir, "commit", "-m", message); err != nil {
		if strings.Contains(string(output), "nothing to commit") {
			return nil
		}
		return fmt.Errorf("committing scaffold: %w\nOutput: %s", err, output)
	}

	return nil
}

// isRepo reports whether dir is already inside a git repository.
func (c *Client) isRepo(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	return cmd.CombinedOutput()
}
