package retry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilesystemErrorClassifier_IsTransient(t *testing.T) {
	c := NewFilesystemErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"busy", syscall.EBUSY, true},
		{"interrupted", syscall.EINTR, true},
		{"try again", syscall.EAGAIN, true},
		{"busy inside PathError", &fs.PathError{Op: "unlink", Path: "/x", Err: syscall.EBUSY}, true},
		{"busy inside LinkError", &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.EBUSY}, true},
		{"wrapped busy", fmt.Errorf("remove failed: %w", &fs.PathError{Op: "unlink", Path: "/x", Err: syscall.EBUSY}), true},
		{"cross device", &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.EXDEV}, false},
		{"not exist", fs.ErrNotExist, false},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: syscall.EACCES}, false},
		{"plain error", errors.New("device busy"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTransient(tt.err))
		})
	}
}
