package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/vvka-141/fshell/internal/files/filesystem"
)

// Calculator is an interface for computing content checksums.
// This abstraction allows for different checksum algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of an in-memory buffer.
	CalculateRaw(content []byte) string

	// CalculateReader computes a checksum of everything read from r.
	CalculateReader(r io.Reader) (string, error)
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateReader streams r through SHA-256.
func (c SHA256) CalculateReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File computes the checksum of the file at path.
func File(fsys filesystem.FileSystem, calc Calculator, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sum, err := calc.CalculateReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return sum, nil
}

// SameContent reports whether the files at a and b hash identically.
func SameContent(fsys filesystem.FileSystem, calc Calculator, a, b string) (bool, error) {
	sumA, err := File(fsys, calc, a)
	if err != nil {
		return false, err
	}
	sumB, err := File(fsys, calc, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}

// Verify SHA256 implements the interface at compile time
var _ Calculator = SHA256{}
