// Package fileutil writes transcripts and reports so readers never observe a
// half-written file.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicFile collects writes in a temporary file next to its destination.
// Commit renames it into place; Abort throws it away. Until Commit, the
// destination keeps its previous contents, if any.
type AtomicFile struct {
	tmp  *os.File
	path string
	perm os.FileMode
	done bool
}

var _ io.Writer = (*AtomicFile)(nil)

// ErrFinished is returned when writing to a committed or aborted file
var ErrFinished = errors.New("atomic file already finished")

// CreateAtomic starts an atomic write of filename. The temporary file lives
// in the same directory because renames across filesystems are not atomic.
func CreateAtomic(filename string, perm os.FileMode) (*AtomicFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicFile{tmp: tmp, path: filename, perm: perm}, nil
}

// Write appends to the pending contents
func (f *AtomicFile) Write(p []byte) (int, error) {
	if f.done {
		return 0, ErrFinished
	}
	return f.tmp.Write(p)
}

// Commit flushes the pending contents to disk and moves them into place
func (f *AtomicFile) Commit() error {
	if f.done {
		return ErrFinished
	}
	f.done = true

	if err := f.tmp.Sync(); err != nil {
		f.discard()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(f.tmp.Name(), f.perm); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Abort discards the pending contents. It is a no-op after Commit, so it
// can be deferred.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.discard()
}

func (f *AtomicFile) discard() {
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}

// WriteFileAtomic writes data to filename in one atomic step
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	f, err := CreateAtomic(filename, perm)
	if err != nil {
		return err
	}
	defer f.Abort()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	return f.Commit()
}
