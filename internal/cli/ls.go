package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"sfz/internal/adapter/fs"
)

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List a single directory, following symbolic links",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolvePath(args)
		if err != nil {
			return err
		}
		entries, err := fs.Scandir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s %10d %s\n", e.Stat.Mode, e.Stat.Size, e.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
