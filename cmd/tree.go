package cmd

import (
	"fmt"

	"github.com/mouse-blink/seek/internal/domain"
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

var parallelFlag int

var treeCmd = newTreeCmd()

func init() {
	rootCmd.AddCommand(treeCmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tree <pattern> <dir>",
		Short:   "Print lines containing a literal pattern in every file below a directory",
		Long:    treeLongDescription,
		Aliases: []string{"step3"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if parallelFlag < 1 {
				return fmt.Errorf("--parallel must be at least 1, got %d", parallelFlag)
			}

			return runSearch(cmd, domain.SearchArgs{
				Mode:    m.ModeLiteral,
				Pattern: args[0],
				Target:  m.Path(args[1]),
				Tree:    true,
				Threads: parallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files to read and match concurrently")

	return cmd
}
