// Package files groups the file-handling building blocks of fshell.
//
//   - filesystem: FileSystem abstraction with OS and in-memory (afero) backends
//   - scanner: recursive search for files by name
//   - snapshot: point-in-time tree of files and directories with sizes
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fshell/internal/files/filesystem"
//	    "github.com/vvka-141/fshell/internal/files/scanner"
//	    "github.com/vvka-141/fshell/internal/files/snapshot"
//	)
//
//	fsys := filesystem.NewOSFileSystem()
//	matches, err := scanner.NewScannerWithFS(fsys).Search("/srv/data", "report")
//
//	entry, err := snapshot.Take(fsys, "/srv/data")
//	fmt.Print(snapshot.Render(entry))
package files
