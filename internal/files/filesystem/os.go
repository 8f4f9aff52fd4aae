package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// AferoFileSystem implements FileSystem on top of an afero.Fs backend.
type AferoFileSystem struct {
	fs afero.Fs
}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *AferoFileSystem {
	return &AferoFileSystem{fs: afero.NewOsFs()}
}

// NewAferoFileSystem wraps an arbitrary afero backend.
// Panics if backend is nil.
func NewAferoFileSystem(backend afero.Fs) *AferoFileSystem {
	if backend == nil {
		panic("backend cannot be nil")
	}
	return &AferoFileSystem{fs: backend}
}

// Backend returns the underlying afero filesystem.
func (p *AferoFileSystem) Backend() afero.Fs { return p.fs }

func (p *AferoFileSystem) Exists(path string) (bool, error) {
	return afero.Exists(p.fs, path)
}

func (p *AferoFileSystem) IsDir(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (p *AferoFileSystem) IsFile(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (p *AferoFileSystem) Stat(path string) (FileInfo, error) {
	return p.fs.Stat(path)
}

func (p *AferoFileSystem) ReadDir(path string) ([]FileInfo, error) {
	entries, err := afero.ReadDir(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	return entries, nil
}

func (p *AferoFileSystem) Walk(root string, fn WalkFunc) error {
	return afero.Walk(p.fs, root, func(path string, info os.FileInfo, walkErr error) (callbackErr error) {
		defer func() {
			if r := recover(); r != nil {
				callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
			}
		}()
		return fn(path, info, walkErr)
	})
}

func (p *AferoFileSystem) Mkdir(path string) error {
	if parent := filepath.Dir(path); parent != path {
		// MemMapFs creates missing parents implicitly; keep Mkdir strict on every backend.
		ok, err := p.IsDir(parent)
		if err != nil {
			return err
		}
		if !ok {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
		}
	}
	return p.fs.Mkdir(path, dirPerm)
}

func (p *AferoFileSystem) MkdirAll(path string) error {
	return p.fs.MkdirAll(path, dirPerm)
}

func (p *AferoFileSystem) Remove(path string) error {
	return p.fs.Remove(path)
}

func (p *AferoFileSystem) RemoveAll(path string) error {
	return p.fs.RemoveAll(path)
}

func (p *AferoFileSystem) Rename(oldPath, newPath string) error {
	return p.fs.Rename(oldPath, newPath)
}

func (p *AferoFileSystem) Open(path string) (io.ReadCloser, error) {
	return p.fs.Open(path)
}

func (p *AferoFileSystem) Create(path string) (io.WriteCloser, error) {
	return p.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
}

// Verify AferoFileSystem implements the interface at compile time
var _ FileSystem = (*AferoFileSystem)(nil)
