package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
)

var (
	trimMask  string
	trimLeft  bool
	trimRight bool
)

var trimCmd = &cobra.Command{
	Use:   "trim <text>",
	Short: "Strip leading and trailing mask characters",
	Long: `Strips characters that are members of the mask character set from
both ends of the string. --left or --right restrict trimming to one side.
The mask is a set of characters, not a pattern; the default strips ASCII
whitespace including NUL and vertical tab.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().StringVar(&trimMask, "mask", "", "characters to strip (default from config)")
	trimCmd.Flags().BoolVar(&trimLeft, "left", false, "trim the left side only")
	trimCmd.Flags().BoolVar(&trimRight, "right", false, "trim the right side only")
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	mask := trimMask
	if mask == "" {
		mask = cfg.Defaults.TrimMask
	}

	s := istring.New(args[0])
	var result istring.String
	switch {
	case trimLeft && !trimRight:
		result = s.TrimLeft(mask)
	case trimRight && !trimLeft:
		result = s.TrimRight(mask)
	default:
		result = s.Trim(mask)
	}

	fmt.Println(result.Value())
	return nil
}
