package filesystem

import (
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// MemoryFileSystem is an in-memory FileSystem for tests, rooted at a
// virtual directory that exists from construction.
type MemoryFileSystem struct {
	*AferoFileSystem
	root string
}

// NewMemoryFileSystem creates a new in-memory filesystem with root created.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = filepath.Clean(root)
	backend := afero.NewMemMapFs()
	_ = backend.MkdirAll(root, dirPerm)

	return &MemoryFileSystem{
		AferoFileSystem: NewAferoFileSystem(backend),
		root:            root,
	}
}

// Root returns the root directory of the virtual filesystem.
func (m *MemoryFileSystem) Root() string { return m.root }

// AddFile adds a file to the in-memory filesystem, creating parent
// directories. Relative paths are placed under the root.
func (m *MemoryFileSystem) AddFile(path string, content string) {
	m.AddFileWithTime(path, content, time.Time{})
}

// AddFileWithTime adds a file with a specific modification time.
// A zero modTime keeps the time of creation.
func (m *MemoryFileSystem) AddFileWithTime(path string, content string, modTime time.Time) {
	absPath := m.abs(path)
	_ = m.fs.MkdirAll(filepath.Dir(absPath), dirPerm)
	_ = afero.WriteFile(m.fs, absPath, []byte(content), filePerm)
	if !modTime.IsZero() {
		_ = m.fs.Chtimes(absPath, modTime, modTime)
	}
}

// AddDir adds an empty directory (and its parents).
func (m *MemoryFileSystem) AddDir(path string) {
	_ = m.fs.MkdirAll(m.abs(path), dirPerm)
}

func (m *MemoryFileSystem) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.root, path)
}
