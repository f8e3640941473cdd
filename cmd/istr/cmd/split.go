package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
)

var splitLimit int

var splitCmd = &cobra.Command{
	Use:   "split <text> <pattern>",
	Short: "Split a string on a regular expression",
	Long: `Splits the string around every match of the pattern and prints one
fragment per line. When --limit is reached the final fragment contains
the unsplit remainder of the string.`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().IntVar(&splitLimit, "limit", 0, "maximum number of fragments (0 = unbounded)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	limit := splitLimit
	if limit == 0 {
		limit = cfg.Defaults.SplitLimit
	}

	fragments, err := istring.New(args[0]).SplitN(args[1], limit)
	if err != nil {
		return err
	}

	for _, fragment := range fragments {
		fmt.Println(fragment.Value())
	}
	return nil
}
