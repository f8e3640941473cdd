package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
	"github.com/msto63/istring/core/log"
)

var (
	findFrom       int
	findLast       bool
	findIgnoreCase bool
)

var findCmd = &cobra.Command{
	Use:   "find <text> <needle>",
	Short: "Find a substring and print its index",
	Long: `Prints the code-unit index of the first occurrence of the needle,
or -1 when it does not occur. With --last the search still starts at
--from and scans toward the end, reporting the rightmost match.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().IntVar(&findFrom, "from", 0, "index to start the search at")
	findCmd.Flags().BoolVar(&findLast, "last", false, "report the rightmost match")
	findCmd.Flags().BoolVarP(&findIgnoreCase, "ignore-case", "i", false, "case-insensitive search")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	s := istring.New(args[0])
	ignoreCase := findIgnoreCase || cfg.Defaults.IgnoreCase

	var idx int
	switch {
	case findLast && ignoreCase:
		idx = s.LastIndexOfIgnoreCase(args[1], findFrom)
	case findLast:
		idx = s.LastIndexOf(args[1], findFrom)
	case ignoreCase:
		idx = s.IndexOfIgnoreCase(args[1], findFrom)
	default:
		idx = s.IndexOf(args[1], findFrom)
	}

	logger.Debug("search finished",
		log.String("needle", args[1]),
		log.Int("index", idx))

	fmt.Println(idx)
	return nil
}
