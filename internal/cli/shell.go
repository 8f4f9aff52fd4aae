package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fshell/internal/config"
	"github.com/vvka-141/fshell/internal/files/filesystem"
	"github.com/vvka-141/fshell/internal/logging"
	"github.com/vvka-141/fshell/internal/manager"
	"github.com/vvka-141/fshell/internal/shell"
	"github.com/vvka-141/fshell/internal/ui"
	"github.com/vvka-141/fshell/pkg/fshell"
)

var shellFlags struct {
	dir      string
	config   string
	noBanner bool
	color    string
}

func resetShellFlags() {
	shellFlags.dir = ""
	shellFlags.config = ""
	shellFlags.noBanner = false
	shellFlags.color = ""
}

func runShell(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	cfg, err := resolveConfig(logger)
	if err != nil {
		return err
	}

	startDir := cfg.StartDir
	if startDir == "" {
		startDir = "."
	}

	mgr, err := manager.New(filesystem.NewOSFileSystem(), startDir, manager.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%w: invalid start directory: %w", fshell.ErrInvalidConfig, err)
	}

	renderer := ui.NewRenderer(cmd.OutOrStdout(), cfg.ColorMode().Styled())
	sh := shell.New(mgr, cmd.InOrStdin(), renderer,
		shell.WithPrompt(cfg.Prompt),
		shell.WithBanner(cfg.ShowBanner()),
		shell.WithLogger(logger),
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// resolveConfig layers defaults, the config file, FSHELL_* environment
// variables (after loading .env) and flags, in increasing priority.
func resolveConfig(logger fshell.Logger) (*config.Config, error) {
	_ = godotenv.Load()

	cfg := config.Default()

	fileCfg, err := loadConfigFile(logger)
	if err != nil {
		return nil, err
	}
	cfg.Merge(fileCfg)
	cfg.Merge(config.FromEnv(os.LookupEnv))

	if shellFlags.dir != "" {
		cfg.StartDir = shellFlags.dir
	}
	if shellFlags.color != "" {
		cfg.Color = shellFlags.color
	}
	if shellFlags.noBanner {
		banner := false
		cfg.Banner = &banner
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile returns nil when no config file exists at the default
// location. A missing file named by --config is an error.
func loadConfigFile(logger fshell.Logger) (*config.Config, error) {
	path := shellFlags.config
	explicit := path != ""
	if !explicit {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			logger.Verbose("No default config location: %v", err)
			return nil, nil
		}
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			logger.Verbose("No config file at %s", path)
			return nil, nil
		}
		if errors.Is(err, fshell.ErrInvalidConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to load %s: %w", fshell.ErrInvalidConfig, path, err)
	}

	logger.Verbose("Loaded config from %s", path)
	return cfg, nil
}
