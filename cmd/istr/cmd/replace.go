package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
	"github.com/msto63/istring/core/log"
)

var (
	replaceRegex      bool
	replaceFirst      bool
	replaceIgnoreCase bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace <text> <old> <new>",
	Short: "Replace occurrences of a substring or pattern",
	Long: `Replaces occurrences of <old> with <new> and prints the result.
By default <old> is literal text; with --regex it is a regular expression
and <new> may reference capture groups with $1, $name. The replacement
count is logged at debug level.`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().BoolVar(&replaceRegex, "regex", false, "treat <old> as a regular expression")
	replaceCmd.Flags().BoolVar(&replaceFirst, "first", false, "replace only the first match (regex mode)")
	replaceCmd.Flags().BoolVarP(&replaceIgnoreCase, "ignore-case", "i", false, "case-insensitive literal matching")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	s := istring.New(args[0])

	var (
		result istring.String
		count  int
		err    error
	)

	switch {
	case replaceRegex && replaceFirst:
		result, count, err = s.ReplaceFirst(args[1], args[2])
	case replaceRegex:
		result, count, err = s.ReplaceAll(args[1], args[2])
	case replaceIgnoreCase || cfg.Defaults.IgnoreCase:
		result, count = s.ReplaceIgnoreCase(args[1], args[2])
	default:
		result, count = s.Replace(args[1], args[2])
	}
	if err != nil {
		return err
	}

	logger.Debug("replace finished", log.Int("count", count))

	fmt.Println(result.Value())
	return nil
}
