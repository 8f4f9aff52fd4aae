package fshell

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Shell terminated normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or start directory
)

const (
	// DefaultPrompt is printed before every input line.
	DefaultPrompt = "> "

	// ParentDirectory is the argument that moves the current directory one level up.
	ParentDirectory = ".."

	// StagingPrefix marks partially written copy targets. Staging files live
	// next to their destination so the final rename never crosses devices.
	StagingPrefix = ".fshell-staging-"

	// ConfigFileName is the name of the optional YAML configuration file.
	ConfigFileName = "fshell.yaml"
)
