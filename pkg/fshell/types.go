package fshell

// Result is the outcome of a single File Manager operation.
//
// Result replaces console printing at the manager boundary: callers inspect
// Err (or Kind) programmatically, and the shell renders Message and Output
// for interactive use.
type Result struct {
	// Op names the operation, e.g. "copy" or "chdir".
	Op string

	// Message is the human-readable status line. Empty when the operation
	// only produces Output (e.g. a directory listing).
	Message string

	// Output carries payload lines such as listed names or search matches.
	Output []string

	// Err is nil on success, otherwise typically an *OpError.
	Err error
}

// Succeeded reports whether the operation completed without error.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Kind classifies the failure, or KindNone on success.
func (r Result) Kind() ErrorKind {
	return KindOf(r.Err)
}

// Failed builds a failed Result for op.
func Failed(op string, err error) Result {
	return Result{Op: op, Err: err}
}
