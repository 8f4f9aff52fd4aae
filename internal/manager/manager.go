package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vvka-141/fshell/internal/checksum"
	"github.com/vvka-141/fshell/internal/files/filesystem"
	"github.com/vvka-141/fshell/internal/files/scanner"
	"github.com/vvka-141/fshell/internal/files/snapshot"
	"github.com/vvka-141/fshell/internal/logging"
	"github.com/vvka-141/fshell/internal/retry"
	"github.com/vvka-141/fshell/pkg/fshell"
)

// Operation names reported in Result.Op and OpError.Op.
const (
	OpList       = "list"
	OpCreateFile = "create"
	OpCreateDir  = "mkdir"
	OpRemove     = "remove"
	OpRename     = "rename"
	OpCopy       = "copy"
	OpMove       = "move"
	OpChdir      = "chdir"
	OpPwd        = "pwd"
	OpSearch     = "search"
	OpStat       = "stat"
	OpTree       = "tree"
)

const timeLayout = "2006-01-02 15:04:05"

// Manager owns the current directory and performs filesystem operations
// relative to it. A Manager is not safe for concurrent use; the shell
// drives it from a single goroutine.
type Manager struct {
	fsys       filesystem.FileSystem
	scanner    *scanner.Scanner
	calculator checksum.Calculator
	logger     fshell.Logger
	retrier    *retry.Executor
	currentDir string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics. Defaults to a NullLogger.
func WithLogger(logger fshell.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithCalculator sets the checksum used to verify move fallbacks.
func WithCalculator(calc checksum.Calculator) Option {
	return func(m *Manager) {
		if calc != nil {
			m.calculator = calc
		}
	}
}

// WithRetry sets the executor used to repeat removals and renames that
// fail transiently. Defaults to three retries with exponential backoff.
func WithRetry(executor *retry.Executor) Option {
	return func(m *Manager) {
		if executor != nil {
			m.retrier = executor
		}
	}
}

// New creates a Manager whose current directory is startDir.
// startDir is made absolute and must be an existing directory.
// Panics if fsys is nil.
func New(fsys filesystem.FileSystem, startDir string, opts ...Option) (*Manager, error) {
	if fsys == nil {
		panic("fsys cannot be nil")
	}

	m := &Manager{
		fsys:       fsys,
		scanner:    scanner.NewScannerWithFS(fsys),
		calculator: checksum.New(),
		logger:     logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.retrier == nil {
		m.retrier = retry.NewExecutor(retry.NewFilesystemErrorClassifier(), retry.NewExponentialBackoff(3))
	}
	m.retrier = m.retrier.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		m.logger.Verbose("Retrying after %v (attempt %d): %v", delay, attempt+1, err)
	})

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	isDir, err := fsys.IsDir(absDir)
	if err != nil {
		return nil, fsError(OpChdir, absDir, err)
	}
	if !isDir {
		return nil, m.notDirectory(OpChdir, absDir)
	}

	m.currentDir = absDir
	m.logger.Verbose("Starting in %s", absDir)
	return m, nil
}

// CurrentDir returns the current directory.
func (m *Manager) CurrentDir() string {
	return m.currentDir
}

// resolve joins name onto the current directory.
func (m *Manager) resolve(name string) string {
	return filepath.Join(m.currentDir, name)
}

// ListDirectory lists the names of the current directory's immediate
// children in name order.
func (m *Manager) ListDirectory() fshell.Result {
	entries, err := m.fsys.ReadDir(m.currentDir)
	if err != nil {
		return fshell.Failed(OpList, fsError(OpList, m.currentDir, err))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return fshell.Result{Op: OpList, Output: names}
}

// CreateFile creates an empty file, creating missing parent directories.
// An existing file is truncated.
func (m *Manager) CreateFile(name string) fshell.Result {
	path := m.resolve(name)

	if err := m.fsys.MkdirAll(filepath.Dir(path)); err != nil {
		return fshell.Failed(OpCreateFile, fsError(OpCreateFile, path, err))
	}

	w, err := m.fsys.Create(path)
	if err != nil {
		return fshell.Failed(OpCreateFile, fsError(OpCreateFile, path, err))
	}
	if err := w.Close(); err != nil {
		return fshell.Failed(OpCreateFile, fsError(OpCreateFile, path, err))
	}

	return fshell.Result{Op: OpCreateFile, Message: fmt.Sprintf("File created: %s", path)}
}

// CreateDirectory creates exactly one directory. Parents are not created.
func (m *Manager) CreateDirectory(name string) fshell.Result {
	path := m.resolve(name)

	if err := m.fsys.Mkdir(path); err != nil {
		return fshell.Failed(OpCreateDir, fsError(OpCreateDir, path, err))
	}

	return fshell.Result{Op: OpCreateDir, Message: fmt.Sprintf("Directory created: %s", path)}
}

// RemoveFileOrDirectory deletes a file, or a directory and its contents.
func (m *Manager) RemoveFileOrDirectory(name string) fshell.Result {
	path := m.resolve(name)

	info, err := m.fsys.Stat(path)
	if err != nil {
		return fshell.Failed(OpRemove, fsError(OpRemove, path, err))
	}

	switch {
	case info.IsDir():
		if err := m.retryable(func() error { return m.fsys.RemoveAll(path) }); err != nil {
			return fshell.Failed(OpRemove, fsError(OpRemove, path, err))
		}
		return fshell.Result{Op: OpRemove, Message: fmt.Sprintf("Directory removed: %s", path)}

	case info.Mode().IsRegular():
		if err := m.retryable(func() error { return m.fsys.Remove(path) }); err != nil {
			return fshell.Failed(OpRemove, fsError(OpRemove, path, err))
		}
		return fshell.Result{Op: OpRemove, Message: fmt.Sprintf("File removed: %s", path)}

	default:
		return fshell.Failed(OpRemove, opError(OpRemove, path, "", fshell.KindWrongType, errNotFileOrDirectory))
	}
}

// RenameFileOrDirectory renames oldName to newName in a single rename call.
func (m *Manager) RenameFileOrDirectory(oldName, newName string) fshell.Result {
	oldPath := m.resolve(oldName)
	newPath := m.resolve(newName)

	exists, err := m.fsys.Exists(oldPath)
	if err != nil {
		return fshell.Failed(OpRename, fsError(OpRename, oldPath, err))
	}
	if !exists {
		return fshell.Failed(OpRename, notFound(OpRename, oldPath))
	}

	if err := m.fsys.Rename(oldPath, newPath); err != nil {
		e := fsError(OpRename, oldPath, err)
		e.Dest = newPath
		e.Kind = fshell.KindFilesystem
		return fshell.Failed(OpRename, e)
	}

	return fshell.Result{Op: OpRename, Message: fmt.Sprintf("Renamed %s to %s", oldPath, newPath)}
}

// CopyFileOrDirectory copies a file, or a directory tree, to destination.
// Copying a directory onto an existing directory merges into it; files
// already present at the destination are overwritten.
func (m *Manager) CopyFileOrDirectory(source, destination string) fshell.Result {
	src := m.resolve(source)
	dst := m.resolve(destination)

	info, err := m.fsys.Stat(src)
	if err != nil {
		return fshell.Failed(OpCopy, fsError(OpCopy, src, err))
	}

	switch {
	case info.IsDir():
		if contains(src, dst) {
			return fshell.Failed(OpCopy, opError(OpCopy, src, dst, fshell.KindUserInput, errCopyIntoSelf))
		}
		if err := m.copyTree(src, dst); err != nil {
			return fshell.Failed(OpCopy, err)
		}
		return fshell.Result{Op: OpCopy, Message: fmt.Sprintf("Directory copied: %s to %s", src, dst)}

	case info.Mode().IsRegular():
		if err := m.copyFile(src, dst); err != nil {
			return fshell.Failed(OpCopy, err)
		}
		return fshell.Result{Op: OpCopy, Message: fmt.Sprintf("File copied: %s to %s", src, dst)}

	default:
		return fshell.Failed(OpCopy, opError(OpCopy, src, "", fshell.KindWrongType, errNotFileOrDirectory))
	}
}

// MoveFileOrDirectory moves source to destination. It tries a rename
// first; if the rename fails (for example across devices) it copies,
// verifies the copy, and only then deletes the source. When the fallback
// fails the source is left in place.
func (m *Manager) MoveFileOrDirectory(source, destination string) fshell.Result {
	src := m.resolve(source)
	dst := m.resolve(destination)

	info, err := m.fsys.Stat(src)
	if err != nil {
		return fshell.Failed(OpMove, fsError(OpMove, src, err))
	}

	kind := "File"
	switch {
	case info.IsDir():
		kind = "Directory"
		if src != dst && contains(src, dst) {
			return fshell.Failed(OpMove, opError(OpMove, src, dst, fshell.KindUserInput, errMoveIntoSelf))
		}
	case !info.Mode().IsRegular():
		return fshell.Failed(OpMove, opError(OpMove, src, "", fshell.KindWrongType, errNotFileOrDirectory))
	}

	renameErr := m.fsys.Rename(src, dst)
	if renameErr != nil {
		m.logger.Verbose("Rename %s to %s failed (%v); falling back to copy and delete", src, dst, renameErr)

		if info.IsDir() {
			err = m.moveTree(src, dst)
		} else {
			err = m.moveFile(src, dst)
		}
		if err != nil {
			return fshell.Failed(OpMove, err)
		}
	}

	return fshell.Result{Op: OpMove, Message: fmt.Sprintf("%s moved: %s to %s", kind, src, dst)}
}

// ChangeDirectory makes name the current directory. ".." moves to the
// parent; at the filesystem root it stays at the root. The current
// directory is only changed when the target is an existing directory.
func (m *Manager) ChangeDirectory(name string) fshell.Result {
	var target string
	if name == fshell.ParentDirectory {
		target = filepath.Dir(m.currentDir)
	} else {
		target = m.resolve(name)
	}

	isDir, err := m.fsys.IsDir(target)
	if err != nil {
		return fshell.Failed(OpChdir, fsError(OpChdir, target, err))
	}
	if !isDir {
		return fshell.Failed(OpChdir, m.notDirectory(OpChdir, target))
	}

	m.logger.Verbose("Current directory %s -> %s", m.currentDir, target)
	m.currentDir = target
	return fshell.Result{Op: OpChdir, Message: fmt.Sprintf("Current directory changed to: %s", target)}
}

// ShowCurrentPath reports the current directory.
func (m *Manager) ShowCurrentPath() fshell.Result {
	return fshell.Result{Op: OpPwd, Message: fmt.Sprintf("Current path: %s", m.currentDir)}
}

// SearchFiles lists every regular file beneath the current directory whose
// name contains pattern literally. An empty pattern matches every file.
func (m *Manager) SearchFiles(pattern string) fshell.Result {
	res := fshell.Result{
		Op:      OpSearch,
		Message: fmt.Sprintf("Searching for files matching pattern: %s", pattern),
	}

	matches, err := m.scanner.Search(m.currentDir, pattern)
	if err != nil {
		res.Err = fsError(OpSearch, m.currentDir, err)
		return res
	}

	res.Output = matches
	return res
}

// Snapshot captures name (the current directory when empty) as a
// point-in-time snapshot.
func (m *Manager) Snapshot(name string) (snapshot.Entry, error) {
	path := m.currentDir
	if name != "" {
		path = m.resolve(name)
	}

	entry, err := snapshot.Take(m.fsys, path)
	if err != nil {
		return nil, fsError(OpStat, path, err)
	}
	return entry, nil
}

// Stat describes name: its kind, aggregate size and timestamps.
func (m *Manager) Stat(name string) fshell.Result {
	entry, err := m.Snapshot(name)
	if err != nil {
		return fshell.Failed(OpStat, err)
	}

	kind := "file"
	if entry.IsDir() {
		kind = "directory"
	}

	size := entry.Size()
	lines := []string{
		fmt.Sprintf("Name:     %s", entry.Name()),
		fmt.Sprintf("Path:     %s", entry.Path()),
		fmt.Sprintf("Type:     %s", kind),
		fmt.Sprintf("Size:     %s (%s bytes)", humanize.Bytes(uint64(size)), humanize.Comma(size)),
		fmt.Sprintf("Created:  %s", entry.CreatedAt().Format(timeLayout)),
		fmt.Sprintf("Modified: %s", entry.ModifiedAt().Format(timeLayout)),
	}
	if entry.IsDir() {
		files, dirs := snapshot.Count(entry)
		lines = append(lines, fmt.Sprintf("Contains: %d files, %d directories", files, dirs))
	}

	return fshell.Result{Op: OpStat, Output: lines}
}

// Tree renders name (the current directory when empty) and everything
// beneath it.
func (m *Manager) Tree(name string) fshell.Result {
	entry, err := m.Snapshot(name)
	if err != nil {
		return fshell.Failed(OpTree, err)
	}

	rendered := strings.TrimSuffix(snapshot.Render(entry), "\n")
	return fshell.Result{Op: OpTree, Output: strings.Split(rendered, "\n")}
}

// retryable runs fn, repeating it while it fails transiently.
func (m *Manager) retryable(fn func() error) error {
	return m.retrier.Execute(context.Background(), func(context.Context) error { return fn() })
}

// notDirectory classifies a path that cannot be entered.
func (m *Manager) notDirectory(op, path string) *fshell.OpError {
	exists, err := m.fsys.Exists(path)
	if err == nil && !exists {
		return notFound(op, path)
	}
	return opError(op, path, "", fshell.KindWrongType, errNotDirectory)
}

// contains reports whether child is dir itself or lies beneath it.
func contains(dir, child string) bool {
	rel, err := filepath.Rel(dir, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
