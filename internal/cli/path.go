package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"sfz/internal/adapter/pathmodel"
)

var pathStyle string

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Manipulate path strings without touching the filesystem",
	Long: `Split, join and decompose path strings using POSIX or Windows rules.
The style defaults to the path.style config value, then the host convention.

Examples:
  sfz path split /usr/lib/          # "/usr" "lib"
  sfz path --style windows splitdrive 'C:\x'
  sfz path join a b /c d            # "/c/d"`,
}

func init() {
	pathCmd.PersistentFlags().StringVar(&pathStyle, "style", "", "path style: native, posix, windows")

	pathCmd.AddCommand(&cobra.Command{
		Use:   "split path",
		Short: "Print the directory and base name of a path",
		Args:  cobra.ExactArgs(1),
		RunE: withStyle(func(s pathmodel.Style, args []string) {
			dir, base := s.Split(args[0])
			fmt.Printf("%q %q\n", dir, base)
		}),
	})
	pathCmd.AddCommand(&cobra.Command{
		Use:   "splitdrive path",
		Short: "Print the drive and remainder of a path",
		Args:  cobra.ExactArgs(1),
		RunE: withStyle(func(s pathmodel.Style, args []string) {
			drive, rest := s.SplitDrive(args[0])
			fmt.Printf("%q %q\n", drive, rest)
		}),
	})
	pathCmd.AddCommand(&cobra.Command{
		Use:   "dirname path",
		Short: "Print the directory part of a path",
		Args:  cobra.ExactArgs(1),
		RunE: withStyle(func(s pathmodel.Style, args []string) {
			fmt.Println(s.Dirname(args[0]))
		}),
	})
	pathCmd.AddCommand(&cobra.Command{
		Use:   "basename path",
		Short: "Print the last component of a path",
		Args:  cobra.ExactArgs(1),
		RunE: withStyle(func(s pathmodel.Style, args []string) {
			fmt.Println(s.Basename(args[0]))
		}),
	})
	pathCmd.AddCommand(&cobra.Command{
		Use:   "join root [segment...]",
		Short: "Join path segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: withStyle(func(s pathmodel.Style, args []string) {
			fmt.Println(s.Join(args[0], args[1:]...))
		}),
	})

	rootCmd.AddCommand(pathCmd)
}

func withStyle(fn func(pathmodel.Style, []string)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		name := pathStyle
		if name == "" {
			name = GetConfig().Path.Style
		}
		style, err := pathmodel.StyleByName(name)
		if err != nil {
			return err
		}
		fn(style, args)
		return nil
	}
}
