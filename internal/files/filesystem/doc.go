// Package filesystem provides the host filesystem capability used by the
// file manager.
//
// This package defines one interface covering every primitive the manager
// needs (existence and type checks, metadata, listing, walking, creation,
// removal, rename, and byte streams), enabling testability through
// in-memory implementations while maintaining compatibility with the OS
// filesystem.
//
// Implementations (both backed by github.com/spf13/afero):
//   - NewOSFileSystem: Production implementation using the OS filesystem
//   - NewMemoryFileSystem: In-memory implementation for testing
package filesystem
