package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
)

var matchGroups bool

var matchCmd = &cobra.Command{
	Use:   "match <text> <pattern>",
	Short: "Test a string against a regular expression",
	Long: `Prints "true" when the pattern matches anywhere in the string and
"false" otherwise. With --groups the whole match and each capture group
are printed one per line instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchGroups, "groups", false, "print match and capture groups")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	s := istring.New(args[0])

	if matchGroups {
		groups, err := s.MatchGroups(args[1])
		if err != nil {
			return err
		}
		for _, group := range groups {
			fmt.Println(group.Value())
		}
		return nil
	}

	matched, err := s.Matches(args[1])
	if err != nil {
		return err
	}

	fmt.Println(matched)
	return nil
}
