package shell

import (
	"github.com/vvka-141/fshell/internal/manager"
	"github.com/vvka-141/fshell/pkg/fshell"
)

// command binds a command word to a manager operation. args is the number
// of arguments the command needs; extra arguments are ignored.
type command struct {
	name  string
	args  int
	usage string
	help  string
	run   func(m *manager.Manager, args []string) fshell.Result
}

var commands = []command{
	{
		name: "ls",
		help: "ls - list the contents of the current directory",
		run:  func(m *manager.Manager, _ []string) fshell.Result { return m.ListDirectory() },
	},
	{
		name:  "cd",
		args:  1,
		usage: "Specify a directory to change to",
		help:  "cd <directory> - change to a directory (cd .. for the parent)",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.ChangeDirectory(a[0]) },
	},
	{
		name: "pwd",
		help: "pwd - show the current directory",
		run:  func(m *manager.Manager, _ []string) fshell.Result { return m.ShowCurrentPath() },
	},
	{
		name:  "mkfile",
		args:  1,
		usage: "Specify a file name to create",
		help:  "mkfile <file> - create an empty file",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.CreateFile(a[0]) },
	},
	{
		name:  "mkdir",
		args:  1,
		usage: "Specify a directory name to create",
		help:  "mkdir <directory> - create a directory",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.CreateDirectory(a[0]) },
	},
	{
		name:  "rm",
		args:  1,
		usage: "Specify a name to remove",
		help:  "rm <name> - remove a file or a directory with its contents",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.RemoveFileOrDirectory(a[0]) },
	},
	{
		name:  "mv",
		args:  2,
		usage: "Specify source and destination to move",
		help:  "mv <source> <destination> - move a file or directory",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.MoveFileOrDirectory(a[0], a[1]) },
	},
	{
		name:  "cp",
		args:  2,
		usage: "Specify source and destination to copy",
		help:  "cp <source> <destination> - copy a file or directory",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.CopyFileOrDirectory(a[0], a[1]) },
	},
	{
		name:  "rn",
		args:  2,
		usage: "Specify old and new name to rename",
		help:  "rn <old> <new> - rename a file or directory",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.RenameFileOrDirectory(a[0], a[1]) },
	},
	{
		name:  "sr",
		args:  1,
		usage: "Specify a pattern to search for",
		help:  "sr <pattern> - search files below the current directory by name",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.SearchFiles(a[0]) },
	},
	{
		name:  "stat",
		args:  1,
		usage: "Specify a name to inspect",
		help:  "stat <name> - show size and timestamps of a file or directory",
		run:   func(m *manager.Manager, a []string) fshell.Result { return m.Stat(a[0]) },
	},
	{
		name: "tree",
		help: "tree [directory] - show a directory tree with sizes",
		run: func(m *manager.Manager, a []string) fshell.Result {
			if len(a) == 0 {
				return m.Tree("")
			}
			return m.Tree(a[0])
		},
	},
}

const (
	helpCommand = "help"
	exitCommand = "exit"
)

var commandIndex = func() map[string]command {
	idx := make(map[string]command, len(commands))
	for _, c := range commands {
		idx[c.name] = c
	}
	return idx
}()

// HelpLines returns one description line per command, in display order.
func HelpLines() []string {
	lines := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		lines = append(lines, c.help)
	}
	return append(lines,
		"help - show this list",
		"exit - leave the shell",
	)
}
