package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/istring"
	"github.com/msto63/istring/core/log"
)

var (
	padString string
	padRight  bool
)

var padCmd = &cobra.Command{
	Use:   "pad <text> <width>",
	Short: "Pad a string to a target width",
	Long: `Pads the string with repetitions of the pad text, truncated as
needed, until it reaches the target width in code units. Pads on the left
by default; use --right for right padding. A string already at or beyond
the width is printed unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: runPad,
}

func init() {
	padCmd.Flags().StringVar(&padString, "pad", "", "pad text (default from config)")
	padCmd.Flags().BoolVar(&padRight, "right", false, "pad on the right side")
	rootCmd.AddCommand(padCmd)
}

func runPad(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("width must be an integer: %w", err)
	}

	pad := padString
	if pad == "" {
		pad = cfg.Defaults.PadString
	}

	s := istring.New(args[0])
	var result istring.String
	if padRight {
		result = s.PadRight(width, pad)
	} else {
		result = s.PadLeft(width, pad)
	}

	logger.Debug("padded string",
		log.Int("input_length", s.Length()),
		log.Int("result_length", result.Length()))

	fmt.Println(result.Value())
	return nil
}
