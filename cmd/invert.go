package cmd

import (
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var invertCmd = newInvertCmd()

func init() {
	rootCmd.AddCommand(invertCmd)
}

func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "invert <pattern> <file>",
		Short:   "Print lines of a file that do not contain a literal pattern",
		Aliases: []string{"step4"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, newFileSearchArgs(m.ModeLiteralInverted, args[0], args[1]))
		},
	}
}
