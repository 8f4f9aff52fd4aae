package fshell

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds a filesystem operation can report.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res := mgr.RemoveFileOrDirectory("build")
//	if errors.Is(res.Err, fshell.ErrNotFound) {
//	    // Nothing to remove
//	}
var (
	// ErrNotFound indicates the referenced path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrWrongType indicates the operation expected a file and got a directory, or vice versa.
	ErrWrongType = errors.New("wrong entry type")

	// ErrFilesystem indicates an OS-level failure (permissions, cross-device, disk full).
	ErrFilesystem = errors.New("filesystem failure")

	// ErrUserInput indicates missing or malformed command arguments.
	ErrUserInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ErrorKind classifies a failed operation.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindWrongType
	KindFilesystem
	KindUserInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not-found"
	case KindWrongType:
		return "wrong-type"
	case KindFilesystem:
		return "filesystem"
	case KindUserInput:
		return "user-input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// sentinel returns the package sentinel matching the kind.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindWrongType:
		return ErrWrongType
	case KindFilesystem:
		return ErrFilesystem
	case KindUserInput:
		return ErrUserInput
	default:
		return nil
	}
}

// OpError records a failed File Manager operation and the path(s) it touched.
// It unwraps to both the kind sentinel and the underlying cause, so
// errors.Is(err, ErrNotFound) and errors.Is(err, fs.ErrPermission) both work.
type OpError struct {
	Op   string
	Path string
	Dest string // set for two-path operations (rename, copy, move)
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Dest != "" {
		b.WriteString(" to ")
		b.WriteString(e.Dest)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the ErrorKind carried by err.
// Returns KindNone for nil and KindFilesystem for unclassified errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var opErr *OpError
	if errors.As(err, &opErr) && opErr.Kind != KindNone {
		return opErr.Kind
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrWrongType):
		return KindWrongType
	case errors.Is(err, ErrUserInput):
		return KindUserInput
	}
	return KindFilesystem
}

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUserInput):
		return ExitUsageError
	}

	// cobra reports flag and argument problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
