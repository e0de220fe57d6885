package cmd

import (
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var anchorCmd = newAnchorCmd()

func init() {
	rootCmd.AddCommand(anchorCmd)
}

// newAnchorCmd is regex search under a name that documents ^ and $ usage;
// both modes evaluate the expression one line at a time.
func newAnchorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "anchor <regex> <file>",
		Short:   "Print lines of a file matching a regular expression anchored with ^ or $",
		Long:    regexLongDescription,
		Aliases: []string{"step6"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, newFileSearchArgs(m.ModeRegexAnchored, args[0], args[1]))
		},
	}
}
