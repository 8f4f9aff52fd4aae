package filesystem

import (
	"io"
	"io/fs"
	"path/filepath"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// WalkFunc is called for every file and directory visited by Walk,
// including the root. Returning filepath.SkipDir skips a directory.
type WalkFunc = filepath.WalkFunc

// FileSystem is the set of host filesystem primitives the file manager
// relies on. All paths are interpreted by the backing filesystem as given;
// callers resolve relative names before calling.
type FileSystem interface {
	// Exists reports whether path exists. A missing path is not an error.
	Exists(path string) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) (bool, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// ReadDir returns the immediate children of path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Walk traverses the tree rooted at root in lexical order.
	// If fn returns an error (other than SkipDir), walking stops.
	Walk(root string, fn WalkFunc) error

	// Mkdir creates exactly one directory. It fails if path exists or its
	// parent is missing.
	Mkdir(path string) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// Remove deletes a file or an empty directory.
	Remove(path string) error

	// RemoveAll deletes path and everything beneath it.
	RemoveAll(path string) error

	// Rename atomically renames oldPath to newPath where the backing
	// filesystem supports it.
	Rename(oldPath, newPath string) error

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)

	// Create opens path for writing, creating it or truncating an existing file.
	Create(path string) (io.WriteCloser, error)
}
