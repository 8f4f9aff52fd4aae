// Package manager implements the file manager: a stateful facade holding a
// current directory and exposing list, create, remove, rename, copy, move,
// change-directory and search operations on top of filesystem.FileSystem.
//
// Every operation returns an fshell.Result instead of printing. Failures
// carry an *fshell.OpError classified as not-found, wrong-type,
// filesystem or user-input, so callers can branch with errors.Is while
// the shell renders the same Result as text.
//
// Names are always resolved with filepath.Join against the current
// directory, absolute names included.
package manager
