package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by writing one line per record to the command's
// output. The summary table goes to the command's error stream so piped
// results stay clean.
type SimpleUI struct {
	cmd       *cobra.Command
	opts      Options
	highlight Highlighter

	pathColor  *color.Color
	lineColor  *color.Color
	matchColor *color.Color
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts Options) *SimpleUI {
	return &SimpleUI{
		cmd:        cmd,
		opts:       opts,
		pathColor:  color.New(color.FgMagenta),
		lineColor:  color.New(color.FgGreen),
		matchColor: color.New(color.FgRed, color.Bold),
	}
}

// Start applies the start options and resolves whether colors are used.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	s.highlight = cfg.highlight

	enabled := s.colorEnabled()
	for _, c := range []*color.Color{s.pathColor, s.lineColor, s.matchColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return nil
}

// DisplayMatch prints a single record.
func (s *SimpleUI) DisplayMatch(record m.MatchRecord) error {
	_, err := fmt.Fprintln(s.cmd.OutOrStdout(), s.format(record))
	return err
}

// DisplaySummary renders the per-file table when statistics were requested.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	if !s.opts.Stats {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Matches"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, stat := range summary.Files {
		table.Append([]string{string(stat.Path), strconv.Itoa(stat.Records)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summary.Files)),
		strconv.Itoa(summary.Records),
	})

	table.Render()

	s.errorf("\n%s", tableBuffer.String())

	if summary.Skipped > 0 {
		s.errorf("Skipped %d unreadable entries\n", summary.Skipped)
	}
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() error {
	return nil
}

func (s *SimpleUI) colorEnabled() bool {
	switch s.opts.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return IsTTY(s.cmd.OutOrStdout())
	}
}

// format mirrors m.MatchRecord.Format, adding colors when enabled.
func (s *SimpleUI) format(record m.MatchRecord) string {
	text := record.Line
	if s.highlight != nil {
		text = highlightSpans(record.Line, s.highlight(record.Line), identity, s.accent)
	}

	if s.opts.LineNumbers {
		text = s.lineColor.Sprint(strconv.Itoa(record.LineNumber)) + ":" + text
	}

	if record.Source == "" {
		return text
	}

	return s.pathColor.Sprint(string(record.Source)) + ": " + text
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func (s *SimpleUI) accent(text string) string {
	return s.matchColor.Sprint(text)
}

func identity(s string) string {
	return s
}
