// Package storage provides durable file writes for export output.
package storage

import (
	"io"
	"os"
	"path/filepath"
)

// AtomicWriter writes to a temp file in the target directory and renames it
// over the target on Commit, so readers never observe a half-written file.
type AtomicWriter struct {
	path    string
	tmpPath string
	perm    os.FileMode
	file    *os.File
}

// NewAtomicWriter creates a writer that will replace path with mode perm.
// The parent directory is created if missing.
func NewAtomicWriter(path string, perm os.FileMode) (*AtomicWriter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	tmpFile, err := os.CreateTemp(dir, ".ytexport-*.tmp")
	if err != nil {
		return nil, &StorageError{Op: "create", Path: path, Err: err}
	}

	return &AtomicWriter{
		path:    path,
		tmpPath: tmpFile.Name(),
		perm:    perm,
		file:    tmpFile,
	}, nil
}

// Write writes data to the temporary file.
func (w *AtomicWriter) Write(p []byte) (n int, err error) {
	return w.file.Write(p)
}

// Commit syncs the temp file and renames it over the target.
func (w *AtomicWriter) Commit() error {
	if err := w.file.Chmod(w.perm); err != nil {
		w.Abort()
		return &StorageError{Op: "chmod", Path: w.path, Err: err}
	}
	if err := w.file.Sync(); err != nil {
		w.Abort()
		return &StorageError{Op: "sync", Path: w.path, Err: err}
	}
	if err := w.file.Close(); err != nil {
		os.Remove(w.tmpPath)
		return &StorageError{Op: "close", Path: w.path, Err: err}
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath) // Best effort cleanup
		return &StorageError{Op: "rename", Path: w.path, Err: err}
	}
	return nil
}

// Abort discards the temporary file without committing.
func (w *AtomicWriter) Abort() error {
	w.file.Close()
	return os.Remove(w.tmpPath)
}

// WriteFile atomically replaces path with whatever fn writes.
// If fn fails the previous contents of path are left untouched.
func WriteFile(path string, perm os.FileMode, fn func(io.Writer) error) error {
	w, err := NewAtomicWriter(path, perm)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		w.Abort()
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return w.Commit()
}
