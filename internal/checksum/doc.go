// Package checksum provides content hashing used to verify copies.
//
// A move that cannot be done with a single rename falls back to copying the
// data and deleting the source. Before the source is deleted, the copy is
// compared against it by SHA-256 so a short or corrupted write never costs
// the original.
//
// # Example Usage
//
//	calculator := checksum.New()
//	same, err := checksum.SameContent(fsys, calculator, src, dst)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
