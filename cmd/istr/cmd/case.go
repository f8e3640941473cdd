package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
)

var caseCmd = &cobra.Command{
	Use:   "case <upper|lower|reverse> <text>",
	Short: "Convert case or reverse a string",
	Long: `Applies a code-unit-wise transformation: "upper" and "lower" fold
ASCII letters, "reverse" reverses the code units. None of the operations
are grapheme-aware.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"upper", "lower", "reverse"},
	RunE:      runCase,
}

func init() {
	rootCmd.AddCommand(caseCmd)
}

func runCase(cmd *cobra.Command, args []string) error {
	s := istring.New(args[1])

	var result istring.String
	switch args[0] {
	case "upper":
		result = s.ToUpperCase()
	case "lower":
		result = s.ToLowerCase()
	case "reverse":
		result = s.Reverse()
	default:
		return fmt.Errorf("unknown case operation %q", args[0])
	}

	fmt.Println(result.Value())
	return nil
}
