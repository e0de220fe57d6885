package cmd

import (
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var regexCmd = newRegexCmd()

func init() {
	rootCmd.AddCommand(regexCmd)
}

func newRegexCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "regex <regex> <file>",
		Short:   "Print lines of a file matching a regular expression",
		Long:    regexLongDescription,
		Aliases: []string{"step5"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, newFileSearchArgs(m.ModeRegex, args[0], args[1]))
		},
	}
}
