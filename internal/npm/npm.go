package npm

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// createPackage is the scaffolding template tool handed to npx. Its output
// is treated as a black box; only its exit status matters here.
const createPackage = "create-vite@latest"

// Client invokes npm and npx inside a project directory.
type Client struct {
	// Stdout and Stderr receive subprocess output; both default to io.Discard.
	Stdout io.Writer
	Stderr io.Writer
}

// CreateProject runs the template tool in dir, populating it with the base
// scaffold for the given template (e.g. "react", "react-ts", "vue").
func (c *Client) CreateProject(ctx context.Context, dir, template string) error {
	return c.run(ctx, "npx", dir, "--yes", createPackage, ".", "--template", template)
}

// Install installs the scaffold's declared dependencies in dir.
func (c *Client) Install(ctx context.Context, dir string) error {
	return c.run(ctx, "npm", dir, "install", "--prefer-offline")
}

// InstallDev installs the given packages as dev dependencies in dir.
func (c *Client) InstallDev(ctx context.Context, dir string, pkgs ...string) error {
	args := append([]string{"install", "--save-dev", "--prefer-offline"}, pkgs...)
	return c.run(ctx, "npm", dir, args...)
}

// run executes one tool invocation with dir as working directory, blocking
// until the subprocess exits.
func (c *Client) run(ctx context.Context, tool, dir string, args ...string) error {
	bin, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", tool, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", tool, strings.Join(args, " "), err)
	}
	return nil
}

func (c *Client) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return io.Discard
}

func (c *Client) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return io.Discard
}
