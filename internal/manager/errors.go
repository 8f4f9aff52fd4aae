package manager

import (
	"errors"
	"io/fs"
	"os"

	"github.com/vvka-141/fshell/pkg/fshell"
)

var (
	errNotFileOrDirectory = errors.New("not a file or directory")
	errNotDirectory       = errors.New("not a directory")
	errCopyIntoSelf       = errors.New("cannot copy a directory into itself")
	errMoveIntoSelf       = errors.New("cannot move a directory into itself")
	errVerifyFailed       = errors.New("copied content does not match source")
)

// opError builds an OpError of an explicit kind.
func opError(op, path, dest string, kind fshell.ErrorKind, err error) *fshell.OpError {
	return &fshell.OpError{Op: op, Path: path, Dest: dest, Kind: kind, Err: err}
}

// fsError wraps an error returned by the filesystem. Missing paths are
// classified as not-found, everything else as a filesystem failure. The
// path is carried by the OpError, so the PathError/LinkError shell is
// stripped to keep the message readable.
func fsError(op, path string, err error) *fshell.OpError {
	var opErr *fshell.OpError
	if errors.As(err, &opErr) {
		return opErr
	}

	kind := fshell.KindFilesystem
	if errors.Is(err, fs.ErrNotExist) {
		kind = fshell.KindNotFound
	}

	var pathErr *fs.PathError
	var linkErr *os.LinkError
	switch {
	case errors.As(err, &pathErr):
		err = pathErr.Err
	case errors.As(err, &linkErr):
		err = linkErr.Err
	}

	return opError(op, path, "", kind, err)
}

// notFound reports that path does not exist.
func notFound(op, path string) *fshell.OpError {
	return opError(op, path, "", fshell.KindNotFound, fs.ErrNotExist)
}
