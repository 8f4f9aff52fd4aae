package manager

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/vvka-141/fshell/internal/checksum"
	"github.com/vvka-141/fshell/pkg/fshell"
)

// stagingPath returns a unique sibling of dst used while its content is
// being written.
func stagingPath(dst string) string {
	name := fshell.StagingPrefix + filepath.Base(dst) + "-" + uuid.NewString()
	return filepath.Join(filepath.Dir(dst), name)
}

// copyFile streams src into a staging file next to dst and renames it into
// place, so dst is never observed half-written. Both handles are released
// on every return path and the staging file is removed on failure.
func (m *Manager) copyFile(src, dst string) (err error) {
	in, err := m.fsys.Open(src)
	if err != nil {
		return fsError(OpCopy, src, err)
	}
	defer in.Close()

	staging := stagingPath(dst)
	out, err := m.fsys.Create(staging)
	if err != nil {
		return fsError(OpCopy, dst, err)
	}
	defer func() {
		if err != nil {
			_ = m.fsys.Remove(staging)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return fsError(OpCopy, dst, err)
	}
	if err = out.Close(); err != nil {
		return fsError(OpCopy, dst, err)
	}
	if err = m.retryable(func() error { return m.fsys.Rename(staging, dst) }); err != nil {
		return fsError(OpCopy, dst, err)
	}

	m.logger.Verbose("Copied %s to %s", src, dst)
	return nil
}

// copyTree copies the directory src to dst, recursing with each child's
// full source path. An existing dst directory is merged into.
func (m *Manager) copyTree(src, dst string) error {
	if err := m.fsys.Mkdir(dst); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return fsError(OpCopy, dst, err)
		}
		isDir, statErr := m.fsys.IsDir(dst)
		if statErr != nil {
			return fsError(OpCopy, dst, statErr)
		}
		if !isDir {
			return opError(OpCopy, dst, "", fshell.KindWrongType, errNotDirectory)
		}
	}

	entries, err := m.fsys.ReadDir(src)
	if err != nil {
		return fsError(OpCopy, src, err)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			err = m.copyTree(from, to)
		case entry.Mode().IsRegular():
			err = m.copyFile(from, to)
		default:
			m.logger.Verbose("Skipping %s: %v", from, errNotFileOrDirectory)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// moveFile is the copy-then-delete fallback for a single file.
func (m *Manager) moveFile(src, dst string) error {
	if err := m.copyFile(src, dst); err != nil {
		return err
	}

	same, err := checksum.SameContent(m.fsys, m.calculator, src, dst)
	if err != nil {
		return fsError(OpMove, dst, err)
	}
	if !same {
		_ = m.fsys.Remove(dst)
		return opError(OpMove, src, dst, fshell.KindFilesystem, errVerifyFailed)
	}

	if err := m.retryable(func() error { return m.fsys.Remove(src) }); err != nil {
		return fsError(OpMove, src, err)
	}
	return nil
}

// moveTree is the copy-then-delete fallback for a directory tree. The
// source is removed only after every copied file has been verified.
func (m *Manager) moveTree(src, dst string) error {
	if err := m.copyTree(src, dst); err != nil {
		return err
	}
	if err := m.verifyTree(src, dst); err != nil {
		return err
	}
	if err := m.retryable(func() error { return m.fsys.RemoveAll(src) }); err != nil {
		return fsError(OpMove, src, err)
	}
	return nil
}

// verifyTree checks that every regular file under src has an identical
// counterpart under dst.
func (m *Manager) verifyTree(src, dst string) error {
	return m.fsys.Walk(src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return fsError(OpMove, path, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fsError(OpMove, path, err)
		}
		target := filepath.Join(dst, rel)

		same, err := checksum.SameContent(m.fsys, m.calculator, path, target)
		if err != nil {
			return fsError(OpMove, target, err)
		}
		if !same {
			return opError(OpMove, path, target, fshell.KindFilesystem, errVerifyFailed)
		}
		return nil
	})
}
