package fshell_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/fshell/pkg/fshell"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, fshell.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), fshell.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), fshell.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), fshell.ExitUsageError},
		{"invalid config", fmt.Errorf("start directory: %w", fshell.ErrInvalidConfig), fshell.ExitConfigError},
		{"user input", fshell.ErrUserInput, fshell.ExitUsageError},
		{"general error", errors.New("something went wrong"), fshell.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fshell.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpError_UnwrapsKindAndCause(t *testing.T) {
	err := &fshell.OpError{Op: "remove", Path: "/tmp/x", Kind: fshell.KindFilesystem, Err: fs.ErrPermission}

	assert.ErrorIs(t, err, fshell.ErrFilesystem)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, fshell.ErrNotFound)
	assert.Equal(t, "remove /tmp/x: permission denied", err.Error())
}

func TestOpError_TwoPathMessage(t *testing.T) {
	err := &fshell.OpError{Op: "rename", Path: "/a", Dest: "/b", Kind: fshell.KindNotFound, Err: fs.ErrNotExist}

	assert.Equal(t, "rename /a to /b: file does not exist", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want fshell.ErrorKind
	}{
		{"nil", nil, fshell.KindNone},
		{"op error", &fshell.OpError{Op: "stat", Kind: fshell.KindWrongType}, fshell.KindWrongType},
		{"wrapped op error", fmt.Errorf("outer: %w", &fshell.OpError{Op: "stat", Kind: fshell.KindNotFound}), fshell.KindNotFound},
		{"sentinel", fmt.Errorf("bad args: %w", fshell.ErrUserInput), fshell.KindUserInput},
		{"plain error", errors.New("disk full"), fshell.KindFilesystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fshell.KindOf(tt.err))
		})
	}
}

func TestResult_Succeeded(t *testing.T) {
	ok := fshell.Result{Op: "pwd", Message: "Current path: /"}
	assert.True(t, ok.Succeeded())
	assert.Equal(t, fshell.KindNone, ok.Kind())

	failed := fshell.Failed("rm", &fshell.OpError{Op: "remove", Kind: fshell.KindNotFound})
	assert.False(t, failed.Succeeded())
	assert.Equal(t, fshell.KindNotFound, failed.Kind())
	assert.Equal(t, "rm", failed.Op)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "not-found", fshell.KindNotFound.String())
	assert.Equal(t, "user-input", fshell.KindUserInput.String())
	assert.Equal(t, "kind(42)", fshell.ErrorKind(42).String())
}
