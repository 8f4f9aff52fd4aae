// Package scanner provides recursive file discovery by name.
//
// The scanner package is responsible for:
//   - Recursively walking a directory tree
//   - Selecting regular files whose base name contains a literal substring
//
// The scanner is designed to be filesystem-agnostic through the use of
// the filesystem.FileSystem interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
