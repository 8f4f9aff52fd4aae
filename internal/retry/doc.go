// Package retry repeats filesystem calls that fail for transient reasons,
// such as a file briefly held busy by another process, with exponential
// backoff between attempts.
//
//	executor := retry.NewExecutor(retry.NewFilesystemErrorClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fsys.RemoveAll(path)
//	})
//
// Executor instances are safe for concurrent use.
package retry
