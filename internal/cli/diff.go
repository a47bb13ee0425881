package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"sfz/internal/adapter/fs"
	"sfz/internal/adapter/store"
	"sfz/internal/domain"
	"sfz/internal/usecase"
)

var diffJSON bool

var diffCmd = &cobra.Command{
	Use:   "diff [path]",
	Short: "Compare a tree against its stored snapshot",
	Long: `Walk a tree again with the settings its snapshot was taken with and
report entries that were added, removed or changed. An entry has changed when
its kind, mode, size or modification time differs. Exits with status 1 when
differences are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "print the diff as JSON")
	rootCmd.AddCommand(diffCmd)
}

var errTreeChanged = errors.New("tree differs from snapshot")

func runDiff(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	st, err := openStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.GetMeta()
	if errors.Is(err, store.ErrNoSnapshot) {
		return fmt.Errorf("no snapshot for %s; run sfz snapshot first", path)
	}
	if err != nil {
		return err
	}

	// Compare with the mode the snapshot was taken in
	GetConfig().Walk.Mode = meta.WalkType
	if err := checkStore(st, false); err != nil {
		return err
	}

	opts, err := walkOptions(false)
	if err != nil {
		return err
	}

	snapshotUC := usecase.NewSnapshotUseCase(st, fs.NewWalker(), opts)
	diff, err := snapshotUC.Diff(path)
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	if diffJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(diff); err != nil {
			return err
		}
	} else {
		printDiff(diff, meta)
	}

	if !diff.Empty() {
		cmd.SilenceErrors = true
		return errTreeChanged
	}
	return nil
}

func printDiff(diff domain.SnapshotDiff, meta domain.SnapshotMeta) {
	fmt.Printf("Comparing against snapshot of %s taken %s\n\n", meta.Root, meta.TakenAt.Format("2006-01-02 15:04:05"))
	if diff.Empty() {
		fmt.Println("No changes.")
		return
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	changed := color.New(color.FgYellow)
	for _, p := range diff.Added {
		added.Printf("+ %s\n", p)
	}
	for _, p := range diff.Removed {
		removed.Printf("- %s\n", p)
	}
	for _, p := range diff.Changed {
		changed.Printf("~ %s\n", p)
	}
	fmt.Printf("\n%d added, %d removed, %d changed\n", len(diff.Added), len(diff.Removed), len(diff.Changed))
}
