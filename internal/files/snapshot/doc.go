// Package snapshot materializes a point-in-time view of a filesystem entry.
//
// A Snapshot is built eagerly: constructing a Directory walks its whole
// subtree once and records every descendant. It is never refreshed;
// filesystem changes made after construction are invisible to it. To
// observe new state, take a new snapshot.
//
// Entries:
//   - File: a regular (terminal) entry
//   - Directory: an entry owning its immediate children, recursively
package snapshot
