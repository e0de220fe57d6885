// Package cmd provides the root command and CLI setup for seek.
package cmd

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mouse-blink/seek/internal/adapter"
	"github.com/mouse-blink/seek/internal/controller"
	"github.com/mouse-blink/seek/internal/domain"
	"github.com/mouse-blink/seek/internal/logger"
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

// Exit statuses, following grep.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// errNoMatch is returned by a search that completed without printing a line.
var errNoMatch = errors.New("no lines selected")

var fsAdapter adapter.SourceFSAdapter
var newWorkflow func(ui controller.UI) domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	newWorkflow = func(ui controller.UI) domain.Workflow {
		return domain.NewWorkflow(fsAdapter, ui)
	}
}

var verboseFlag bool
var colorFlag string
var lineNumberFlag bool
var statsFlag bool
var interactiveFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seek",
		Short:         "Search files and directory trees for text",
		Long:          rootLongDescription,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger.SetVerbose(verboseFlag)

			_, err := controller.ParseColorMode(colorFlag)

			return err
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print diagnostics (skipped entries, timings) to stderr")
	cmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize output: auto, always or never")
	cmd.PersistentFlags().BoolVarP(&lineNumberFlag, "line-number", "n", false, "prefix each line with its 1-based line number")
	cmd.PersistentFlags().BoolVar(&statsFlag, "stats", false, "print a per-file summary table to stderr")
	cmd.PersistentFlags().BoolVar(&interactiveFlag, "interactive", false, "browse results in a terminal UI when stdout is a terminal")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(rootCmd, os.Args[1:]))
}

func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)

	return exitCode(cmd.ErrOrStderr(), cmd.Execute())
}

// exitCode reports err on w and maps it to a process exit status.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return exitMatch
	}

	if errors.Is(err, errNoMatch) {
		return exitNoMatch
	}

	red := color.New(color.FgRed)
	if !controller.IsTTY(w) {
		red.DisableColor()
	}

	_, _ = red.Fprintf(w, "seek: %v\n", err)

	return exitError
}

// runSearch executes one search with the output settings taken from the
// persistent flags.
func runSearch(cmd *cobra.Command, args domain.SearchArgs) error {
	// argument errors print usage; failures past this point do not
	cmd.SilenceUsage = true

	colorMode, err := controller.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}

	opts := controller.Options{
		Color:       colorMode,
		LineNumbers: lineNumberFlag,
		Stats:       statsFlag,
	}

	interactive := interactiveFlag && controller.IsTTY(cmd.OutOrStdout())
	ui := controller.NewUI(cmd, interactive, opts)

	logger.Debug("searching %s (mode %s, tree %t)", args.Target, args.Mode, args.Tree)

	if logger.IsVerbose() {
		start := time.Now()
		defer func() { logger.Info("search finished in %s", time.Since(start)) }()
	}

	summary, err := newWorkflow(ui).Search(cmd.Context(), args)
	if err != nil {
		return err
	}

	// an empty file dumped successfully is not a failed search
	if !summary.Matched() && args.Mode != m.ModeDump {
		return errNoMatch
	}

	return nil
}

func newFileSearchArgs(mode m.SearchMode, pattern, target string) domain.SearchArgs {
	return domain.SearchArgs{
		Mode:    mode,
		Pattern: pattern,
		Target:  m.Path(target),
	}
}
