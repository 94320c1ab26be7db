package artifact

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEmitter_Emit(t *testing.T) {
	tmp := t.TempDir()
	e := NewEmitter(tmp, nil)

	a := Artifact{Path: ".eslintrc.json", Content: []byte(`{"root": true}`)}
	if err := e.Emit(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tmp, ".eslintrc.json"))
	if err != nil {
		t.Fatalf("reading emitted file: %v", err)
	}
	if !bytes.Equal(got, a.Content) {
		t.Errorf("expected content %q, got %q", a.Content, got)
	}
}

func TestEmitter_Emit_CreatesParentDirectories(t *testing.T) {
	tmp := t.TempDir()
	e := NewEmitter(tmp, nil)

	a := Artifact{Path: ".vscode/settings.json", Content: []byte(`{}`)}
	if err := e.Emit(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, ".vscode", "settings.json")); err != nil {
		t.Errorf("expected nested file to exist: %v", err)
	}
}

func TestEmitter_Emit_ReplacesExistingFile(t *testing.T) {
	tmp := t.TempDir()
	dest := filepath.Join(tmp, ".prettierrc.json")
	if err := os.WriteFile(dest, []byte("stale"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	e := NewEmitter(tmp, nil)
	if err := e.Emit(Artifact{Path: ".prettierrc.json", Content: []byte("fresh")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != "fresh" {
		t.Errorf("expected replaced content 'fresh', got %q", got)
	}
}

func TestEmitter_Emit_IsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	e := NewEmitter(tmp, nil)

	a, err := LintConfig(NewData("demo"))
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}

	if err := e.Emit(a); err != nil {
		t.Fatalf("first emit: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(tmp, a.Path))
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	if err := e.Emit(a); err != nil {
		t.Fatalf("second emit: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(tmp, a.Path))
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("expected byte-identical content after repeated emit")
	}
}

func TestEmitter_Emit_AppliesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tmp := t.TempDir()
	e := NewEmitter(tmp, nil)

	a, err := PreCommitHook(NewData("demo"))
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if err := e.Emit(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(filepath.Join(tmp, PreCommitHookPath))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("expected mode 0755, got %o", info.Mode().Perm())
	}
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	tmp := t.TempDir()
	dest := filepath.Join(tmp, "out.json")

	if err := WriteFile(dest, []byte("{}"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only out.json, got %v", names)
	}
}

func TestWriteFile_FailsWhenDirectoryMissing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "absent", "out.json")
	if err := WriteFile(dest, []byte("{}"), 0644); err == nil {
		t.Fatal("expected error when parent directory does not exist")
	}
}
