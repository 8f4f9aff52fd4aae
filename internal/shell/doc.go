// Package shell implements the fshell read-eval-print loop.
//
// Each line read from the input is split on single spaces and dispatched on
// its first token to a manager.Manager operation; the result is handed to a
// ui.Renderer. The loop ends on "exit", at end of input, or when its
// context is cancelled.
package shell
