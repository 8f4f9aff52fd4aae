package scanner

import (
	"fmt"
	"strings"

	"github.com/vvka-141/fshell/internal/files/filesystem"
)

// Scanner discovers files in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided filesystem is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystem
}

// NewScanner creates a new file scanner using the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystem) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// Search walks root recursively and returns the full path of every regular
// file whose base name contains pattern as a literal substring (not a glob,
// not a regular expression). An empty pattern matches every file.
// Paths are returned in lexical walk order.
func (s *Scanner) Search(root, pattern string) ([]string, error) {
	var matches []string

	err := s.fsProvider.Walk(root, func(path string, info filesystem.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if strings.Contains(info.Name(), pattern) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
