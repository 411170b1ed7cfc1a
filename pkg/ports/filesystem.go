package ports

import (
	"os"
)

// FileSystem abstracts the file system operations the pipeline needs.
type FileSystem interface {
	// ReadDir lists the immediate entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Stat returns metadata for a single file or directory.
	Stat(path string) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents. It succeeds
	// when the directory already exists.
	MkdirAll(path string) error

	// MkdirTemp creates a fresh temporary directory and returns its path.
	MkdirTemp(dir, pattern string) (string, error)

	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error

	// RemoveAll deletes a path and anything beneath it.
	RemoveAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}
