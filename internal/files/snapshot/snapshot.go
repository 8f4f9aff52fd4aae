package snapshot

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/vvka-141/fshell/internal/files/filesystem"
)

// Entry is a captured filesystem entry.
type Entry interface {
	// Name returns the base name of the entry.
	Name() string

	// Path returns the path the entry was captured from.
	Path() string

	// Size returns the byte size. For a Directory it is the sum of all
	// contained entries, recomputed on every call.
	Size() int64

	// CreatedAt returns the creation time. It is sourced from the same
	// last-write timestamp as ModifiedAt.
	CreatedAt() time.Time

	// ModifiedAt returns the last modification time at capture.
	ModifiedAt() time.Time

	// IsDir reports whether the entry is a Directory.
	IsDir() bool
}

// base holds the metadata common to every entry.
type base struct {
	name    string
	path    string
	modTime time.Time
}

func (b base) Name() string          { return b.name }
func (b base) Path() string          { return b.path }
func (b base) CreatedAt() time.Time  { return b.modTime }
func (b base) ModifiedAt() time.Time { return b.modTime }

// File is a terminal entry with no children.
type File struct {
	base
	size int64
}

func (f *File) Size() int64 { return f.size }
func (f *File) IsDir() bool { return false }

// Directory owns the entries that were its immediate children at capture.
type Directory struct {
	base
	children []Entry
}

// Children returns the captured children in name order.
func (d *Directory) Children() []Entry { return d.children }

func (d *Directory) Size() int64 {
	var total int64
	for _, child := range d.children {
		total += child.Size()
	}
	return total
}

func (d *Directory) IsDir() bool { return true }

// Take captures the entry at path, naming it after the path's base name.
func Take(fsys filesystem.FileSystem, path string) (Entry, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return newDirectory(fsys, filepath.Base(path), path, info)
	}
	return newFile(filepath.Base(path), path, info), nil
}

// NewFile captures the regular file at path under the given display name.
func NewFile(fsys filesystem.FileSystem, name, path string) (*File, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return newFile(name, path, info), nil
}

// NewDirectory captures the directory at path and its whole subtree.
// The first error encountered aborts construction of the subtree.
func NewDirectory(fsys filesystem.FileSystem, name, path string) (*Directory, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}
	return newDirectory(fsys, name, path, info)
}

func newFile(name, path string, info filesystem.FileInfo) *File {
	return &File{
		base: base{name: name, path: path, modTime: info.ModTime()},
		size: info.Size(),
	}
}

func newDirectory(fsys filesystem.FileSystem, name, path string, info filesystem.FileInfo) (*Directory, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", path, err)
	}

	dir := &Directory{
		base:     base{name: name, path: path, modTime: info.ModTime()},
		children: make([]Entry, 0, len(entries)),
	}

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			child, err := newDirectory(fsys, entry.Name(), childPath, entry)
			if err != nil {
				return nil, err
			}
			dir.children = append(dir.children, child)
			continue
		}
		dir.children = append(dir.children, newFile(entry.Name(), childPath, entry))
	}

	return dir, nil
}

// Count returns the number of files and directories beneath entry,
// excluding entry itself.
func Count(entry Entry) (files, dirs int) {
	d, ok := entry.(*Directory)
	if !ok {
		return 0, 0
	}
	for _, child := range d.children {
		if child.IsDir() {
			dirs++
			f, sub := Count(child)
			files += f
			dirs += sub
			continue
		}
		files++
	}
	return files, dirs
}
