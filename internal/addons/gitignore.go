package addons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AddToGitignore appends entry to the project's .gitignore. If the entry
// already exists, this is a no-op. A missing .gitignore is created.
func AddToGitignore(projectDir, entry string) error {
	gitignorePath := filepath.Join(projectDir, ".gitignore")

	content, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	// Check if the entry already exists.
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	// Append the entry. Ensure there's a newline before our addition.
	suffix := entry + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening .gitignore for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return fmt.Errorf("writing to .gitignore: %w", err)
	}

	return nil
}
