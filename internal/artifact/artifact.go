package artifact

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Artifact is one fully rendered configuration file, addressed relative to
// the project root.
type Artifact struct {
	Path    string
	Content []byte
	Mode    os.FileMode
}

// Emitter writes artifacts under a fixed project root.
type Emitter struct {
	root string
	log  *slog.Logger
}

// NewEmitter constructs an Emitter rooted at dir.
func NewEmitter(dir string, log *slog.Logger) *Emitter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Emitter{root: dir, log: log}
}

// Emit writes one artifact beneath the emitter root, creating parent
// directories as needed. An existing file at the artifact path is replaced.
func (e *Emitter) Emit(a Artifact) error {
	mode := a.Mode
	if mode == 0 {
		mode = 0644
	}

	dest := filepath.Join(e.root, a.Path)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", a.Path, err)
	}
	if err := WriteFile(dest, a.Content, mode); err != nil {
		return fmt.Errorf("writing %s: %w", a.Path, err)
	}

	e.log.Debug("artifact written", "path", a.Path, "bytes", len(a.Content))
	return nil
}

// WriteFile writes data to path atomically: the full content goes to a temp
// file in the destination directory, then a rename swaps it into place.
// Readers never observe partial content at path.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once the rename has happened

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
