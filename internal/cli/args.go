package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NoPositionalArgs rejects positional arguments with a hint pointing at
// --dir, which is the usual intent of "fshell <path>".
func NoPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf(`accepts 0 arg(s), received %d

Usage: %s

Example:
  %s --dir %s`, len(args), cmd.UseLine(), cmd.CommandPath(), args[0])
}
