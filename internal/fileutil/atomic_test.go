package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// onlyFile fails the test if dir holds anything besides name
func onlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != name {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "match_abc.txt")

	if err := WriteFileAtomic(path, []byte("=== MATCH abc ===\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "=== MATCH abc ===\n" {
		t.Errorf("File content mismatch: got %q", string(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0o644)
	}

	onlyFile(t, dir, "match_abc.txt")
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "summary.txt")

	for i := range 3 {
		if err := WriteFileAtomic(path, []byte(fmt.Sprintf("run %d", i)), 0o600); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "run 2" {
		t.Errorf("got %q, want last write", string(data))
	}
	onlyFile(t, dir, "summary.txt")
}

func TestAtomicFileAbortKeepsOldContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "summary.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := CreateAtomic(path, 0o644)
	if err != nil {
		t.Fatalf("CreateAtomic failed: %v", err)
	}
	if _, err := f.Write([]byte("new")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// pending contents are invisible until commit
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Errorf("destination changed before commit: %q", string(data))
	}

	f.Abort()
	f.Abort()

	data, _ = os.ReadFile(path)
	if string(data) != "old" {
		t.Errorf("abort changed destination: %q", string(data))
	}
	onlyFile(t, dir, "summary.txt")

	if _, err := f.Write([]byte("x")); err != ErrFinished {
		t.Errorf("Write after abort: got %v, want ErrFinished", err)
	}
	if err := f.Commit(); err != ErrFinished {
		t.Errorf("Commit after abort: got %v, want ErrFinished", err)
	}
}

func TestCreateAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := CreateAtomic(filepath.Join(t.TempDir(), "missing", "file.txt"), 0o644)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
