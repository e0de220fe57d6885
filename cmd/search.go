package cmd

import (
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var ignoreCaseFlag bool

var searchCmd = newSearchCmd()

func init() {
	rootCmd.AddCommand(searchCmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <regex> <file>",
		Short:   "Print lines of a file matching a regular expression, optionally ignoring case",
		Long:    regexLongDescription,
		Aliases: []string{"final"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := m.ModeRegex
			if ignoreCaseFlag {
				mode = m.ModeRegexCaseInsensitive
			}

			return runSearch(cmd, newFileSearchArgs(mode, args[0], args[1]))
		},
	}
	cmd.Flags().BoolVarP(&ignoreCaseFlag, "ignore-case", "i", false, "match the whole expression case-insensitively")

	return cmd
}
