package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"sfz/internal/usecase"
)

var rmtreeQuiet bool

var rmtreeCmd = &cobra.Command{
	Use:   "rmtree path...",
	Short: "Remove directory trees without following symbolic links",
	Long: `Remove each path and everything below it. Symbolic links are removed,
never followed. Paths that do not exist are skipped.

Examples:
  sfz rmtree build dist   # Remove two trees
  sfz rmtree -q tmp       # No progress output`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRmtree,
}

func init() {
	rmtreeCmd.Flags().BoolVarP(&rmtreeQuiet, "quiet", "q", false, "do not show progress")
	rootCmd.AddCommand(rmtreeCmd)
}

func runRmtree(cmd *cobra.Command, args []string) error {
	var onRemove func(string)

	// Create spinner; the total is unknown until the walk finishes
	if !rmtreeQuiet {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Removing[reset]"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
		defer bar.Finish()
		onRemove = func(string) { bar.Add(1) }
	}

	rmtreeUC := usecase.NewRmtreeUseCase(log)
	result, err := rmtreeUC.Run(args, onRemove)
	if err != nil {
		return err
	}

	for _, p := range result.Missing {
		log.Warnf("%s does not exist, skipped", p)
	}
	log.Infof("removed %d entries", result.Removed)
	return nil
}
