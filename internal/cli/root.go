package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sfz/config"
	"sfz/internal/adapter/logger"
	"sfz/internal/domain"
	"sfz/internal/usecase"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	log      *logger.ConsoleLogger
)

var rootCmd = &cobra.Command{
	Use:   "sfz",
	Short: "sfz - Walk, inspect and remove filesystem trees",
	Long: `sfz walks directory trees in a deterministic, name-sorted order and
reports every entry as a directory, file, symlink, broken symlink, cycle or
other node. It can also remove trees, manipulate path strings and record
snapshots of a tree for later comparison.

Example usage:
  sfz walk .                  # List every entry under the current directory
  sfz walk --logical src      # Follow symbolic links
  sfz rmtree build            # Remove a tree without following links
  sfz path split a/b/c        # Split a path string
  sfz snapshot . && sfz diff  # Record a tree and compare it later`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		log = logger.NewConsoleLogger(os.Stderr, level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sfz.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// walkOptions builds walk options from config, letting logical override the
// configured mode.
func walkOptions(logical bool) (usecase.WalkOptions, error) {
	walkType, err := domain.ParseWalkType(cfg.Walk.Mode)
	if err != nil {
		return usecase.WalkOptions{}, err
	}
	if logical {
		walkType = domain.WalkLogical
	}
	return usecase.WalkOptions{
		Type:     walkType,
		Includes: cfg.Walk.Includes,
		Excludes: cfg.Walk.Excludes,
	}, nil
}

// resolvePath returns args[0], or the root directory when no path is given.
func resolvePath(args []string) (string, error) {
	if len(args) == 0 {
		return GetRootDir(), nil
	}
	return args[0], nil
}
