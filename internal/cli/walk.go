package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"sfz/internal/adapter/fs"
	"sfz/internal/domain"
	"sfz/internal/usecase"
)

var (
	walkLogical bool
	walkJSON    bool
	walkSummary bool
)

var walkCmd = &cobra.Command{
	Use:   "walk [path]",
	Short: "List every entry of a tree in visit order",
	Long: `Walk a tree depth-first with siblings sorted by name and print one line
per callback: the entry kind followed by its path. Directories are reported
twice, before and after their contents.

Examples:
  sfz walk .                # Physical walk of the current directory
  sfz walk --logical /etc   # Follow symbolic links
  sfz walk --json src       # One JSON object per entry`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().BoolVarP(&walkLogical, "logical", "L", false, "follow symbolic links")
	walkCmd.Flags().BoolVar(&walkJSON, "json", false, "print entries as JSON lines")
	walkCmd.Flags().BoolVar(&walkSummary, "summary", false, "print per-kind counts after the walk")
	rootCmd.AddCommand(walkCmd)
}

type walkRecord struct {
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Mode    string `json:"mode"`
	Size    int64  `json:"size"`
	ModTime string `json:"mod_time"`
}

func runWalk(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	opts, err := walkOptions(walkLogical)
	if err != nil {
		return err
	}
	log.Debugf("walking %s (%s)", path, opts.Type)

	// Create inventory use case
	inventoryUC := usecase.NewInventoryUseCase(fs.NewWalker(), opts)

	result, err := inventoryUC.Run(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, e := range result.Entries {
		if walkJSON {
			rec := walkRecord{
				Kind:    e.Kind.String(),
				Path:    e.Path,
				Mode:    e.Stat.Mode.String(),
				Size:    e.Stat.Size,
				ModTime: e.Stat.ModTime.Format("2006-01-02T15:04:05Z07:00"),
			}
			if err := enc.Encode(rec); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%-15s %s\n", e.Kind, e.Path)
	}

	if walkSummary {
		printSummary(result.Summary)
	}
	return nil
}

func printSummary(s usecase.Summary) {
	kinds := make([]domain.Kind, 0, len(s.Counts))
	for k := range s.Counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Printf("\nSummary:\n")
	for _, k := range kinds {
		fmt.Printf("  %-15s %d\n", k.String()+":", s.Counts[k])
	}
	fmt.Printf("  %-15s %d\n", "bytes:", s.Bytes)
}
