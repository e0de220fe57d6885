package cmd

import (
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var findCmd = newFindCmd()

func init() {
	rootCmd.AddCommand(findCmd)
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "find <pattern> <file>",
		Short:   "Print lines of a file containing a literal pattern",
		Aliases: []string{"step2"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, newFileSearchArgs(m.ModeLiteral, args[0], args[1]))
		},
	}
}
