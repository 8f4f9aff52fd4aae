package manager

import (
	"bytes"
	"io/fs"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fshell/internal/files/filesystem"
	"github.com/vvka-141/fshell/internal/logging"
	"github.com/vvka-141/fshell/internal/retry"
	"github.com/vvka-141/fshell/pkg/fshell"
)

// busyFS reports EBUSY for the first failures calls to Remove.
type busyFS struct {
	filesystem.FileSystem
	failures int
	calls    int
}

func (b *busyFS) Remove(path string) error {
	b.calls++
	if b.calls <= b.failures {
		return &fs.PathError{Op: "unlink", Path: path, Err: syscall.EBUSY}
	}
	return b.FileSystem.Remove(path)
}

func fastRetry(attempts int) Option {
	return WithRetry(retry.NewExecutor(
		retry.NewFilesystemErrorClassifier(),
		retry.NewExponentialBackoff(attempts, retry.WithInitialDelay(time.Millisecond), retry.WithJitter(0)),
	))
}

func TestRemoveFileOrDirectory_RetriesBusyFile(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("locked.txt", "x")
	fsys := &busyFS{FileSystem: mfs, failures: 2}

	var logs bytes.Buffer
	m, err := New(fsys, "/work", fastRetry(3), WithLogger(logging.NewConsoleLoggerTo(&logs, true)))
	require.NoError(t, err)

	res := m.RemoveFileOrDirectory("locked.txt")
	require.NoError(t, res.Err)
	assert.Equal(t, 3, fsys.calls)
	assert.Contains(t, logs.String(), "Retrying after")

	exists, err := mfs.Exists("/work/locked.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRemoveFileOrDirectory_GivesUpWhenStillBusy(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("locked.txt", "x")
	fsys := &busyFS{FileSystem: mfs, failures: 100}

	m, err := New(fsys, "/work", fastRetry(2))
	require.NoError(t, err)

	res := m.RemoveFileOrDirectory("locked.txt")
	assert.Equal(t, fshell.KindFilesystem, res.Kind())
	assert.ErrorIs(t, res.Err, syscall.EBUSY)
	assert.Equal(t, 3, fsys.calls)
}
