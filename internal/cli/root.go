package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fshell",
	Short: "Interactive filesystem shell",
	Long: `fshell is a small interactive shell for everyday file management.

It keeps a current directory and resolves every name relative to it:
list, create, remove, rename, copy, move and search files without leaving
the prompt. Type 'help' at the prompt to see the commands.

Configuration is read from $XDG_CONFIG_HOME/fshell/fshell.yaml (or --config),
then FSHELL_START_DIR, FSHELL_PROMPT and FSHELL_COLOR (a .env file in the
working directory is honored), then flags.

Exit Codes:
  0  - Success (exit command or end of input)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (bad start directory or config file)`,
	Args:         NoPositionalArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVarP(&shellFlags.dir, "dir", "d", "", "Start directory (default: current directory)")
	rootCmd.Flags().StringVar(&shellFlags.config, "config", "", "Path to fshell.yaml (default: $XDG_CONFIG_HOME/fshell/fshell.yaml)")
	rootCmd.Flags().BoolVar(&shellFlags.noBanner, "no-banner", false, "Do not print the command list at start-up")
	rootCmd.Flags().StringVar(&shellFlags.color, "color", "", "Color output: auto, always or never")

	_ = rootCmd.RegisterFlagCompletionFunc("dir", completeDirectories)
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
	_ = rootCmd.MarkFlagFilename("config", "yaml", "yml")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
