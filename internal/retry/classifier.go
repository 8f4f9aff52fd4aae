package retry

import (
	"errors"
	"syscall"

	"github.com/vvka-141/fshell/pkg/fshell"
)

// transientErrnos are failures that typically clear up on their own:
// another process holds the file, or the call was interrupted.
var transientErrnos = []syscall.Errno{
	syscall.EBUSY,
	syscall.EAGAIN,
	syscall.EINTR,
}

// FilesystemErrorClassifier treats busy and interrupted filesystem calls
// as transient. Missing files, permission problems and cross-device
// renames are permanent.
type FilesystemErrorClassifier struct{}

// NewFilesystemErrorClassifier creates a new FilesystemErrorClassifier.
func NewFilesystemErrorClassifier() *FilesystemErrorClassifier {
	return &FilesystemErrorClassifier{}
}

// IsTransient reports whether err is worth retrying.
func (c *FilesystemErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	for _, transient := range transientErrnos {
		if errno == transient {
			return true
		}
	}
	return false
}

var _ fshell.ErrorClassifier = (*FilesystemErrorClassifier)(nil)
