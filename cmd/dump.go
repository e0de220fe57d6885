package cmd

import (
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var dumpCmd = newDumpCmd()

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dump <file>",
		Short:   "Print every line of a file",
		Aliases: []string{"step1"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, newFileSearchArgs(m.ModeDump, "", args[0]))
		},
	}
}
