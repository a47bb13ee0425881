package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"sfz/config"
	"sfz/internal/adapter/fs"
	"sfz/internal/adapter/store"
	"sfz/internal/usecase"
)

var snapshotLogical bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [path]",
	Short: "Record the entries of a tree for later comparison",
	Long: `Walk a tree and store one record per entry (kind, mode, size and
modification time) in .sfz/snapshot.db inside the root directory. Taking a
snapshot replaces the previous one.

Examples:
  sfz snapshot .          # Record the current directory
  sfz snapshot -L src     # Record with symbolic links followed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().BoolVarP(&snapshotLogical, "logical", "L", false, "follow symbolic links")
	rootCmd.AddCommand(snapshotCmd)
}

// openStore opens the snapshot database under dir.
func openStore(dir string) (*store.BoltStore, error) {
	// Ensure .sfz directory exists
	if err := config.EnsureSFZDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .sfz directory: %w", err)
	}

	st, err := store.NewBoltStore(GetConfig().SnapshotDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	return st, nil
}

// checkStore compares the stored schema and walk configuration with the
// current config. A stale snapshot is cleared when clearStale is set and is
// an error otherwise.
func checkStore(st *store.BoltStore, clearStale bool) error {
	migrationResult, err := st.CheckMigration(GetConfig())
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}

	if migrationResult.NeedsRebuild {
		if !clearStale {
			return fmt.Errorf("stored snapshot is stale (%s); run sfz snapshot again", migrationResult.Reason)
		}
		log.Infof("Clearing snapshot: %s", migrationResult.Reason)
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
	} else if migrationResult.NeedsMigration {
		log.Debugf("Running schema migration: %s", migrationResult.Reason)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if !fs.IsDir(path) {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	if snapshotLogical {
		cfg.Walk.Mode = "logical"
	}
	opts, err := walkOptions(false)
	if err != nil {
		return err
	}

	st, err := openStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	// Check for schema migration or rebuild
	if err := checkStore(st, true); err != nil {
		return err
	}

	// Create snapshot use case
	snapshotUC := usecase.NewSnapshotUseCase(st, fs.NewWalker(), opts)

	result, err := snapshotUC.Take(path)
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	// Update schema info after a successful snapshot
	if err := st.Migrate(cfg); err != nil {
		return fmt.Errorf("failed to update schema info: %w", err)
	}

	fmt.Printf("Snapshot complete:\n")
	fmt.Printf("  Entries:     %d\n", result.Entries)
	fmt.Printf("  Files:       %d\n", result.Counts["file"])
	fmt.Printf("  Directories: %d\n", result.Counts["pre_directory"])
	fmt.Printf("  Symlinks:    %d\n", result.Counts["symlink"]+result.Counts["broken_symlink"])
	fmt.Printf("\nSnapshot stored at: %s\n", cfg.SnapshotDBPath(path))
	return nil
}
