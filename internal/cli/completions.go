package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fshell/internal/ui"
)

// colorModes contains the values accepted by --color for shell completion.
var colorModes = []string{string(ui.ColorAuto), string(ui.ColorAlways), string(ui.ColorNever)}

// completeColorModes provides shell completion for --color values.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range colorModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
