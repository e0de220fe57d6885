// Package controller renders search results, either as plain text or in an
// interactive terminal browser.
package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/spf13/cobra"
)

// ColorMode controls ANSI coloring of plain-text output.
type ColorMode int

// Available ColorMode values.
const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode converts a --color flag value into a ColorMode.
func ParseColorMode(value string) (ColorMode, error) {
	switch value {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}

	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", value)
}

// Options holds the output settings chosen on the command line.
type Options struct {
	Color       ColorMode
	LineNumbers bool
	Stats       bool
}

// Highlighter returns the byte ranges of matched text inside a line.
type Highlighter func(line string) [][]int

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	title     string
	highlight Highlighter
	onQuit    func()
}

// WithTitle sets the heading shown by interactive UIs.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

// WithHighlighter enables highlighting of matched text.
func WithHighlighter(h Highlighter) StartOption {
	return func(c *StartConfig) {
		c.highlight = h
	}
}

// WithQuitHandler registers fn to run when an interactive UI is closed by
// the user. It lets the caller abandon a search that is still running.
func WithQuitHandler(fn func()) StartOption {
	return func(c *StartConfig) {
		c.onQuit = fn
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how a search reports its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	DisplayMatch(record m.MatchRecord) error
	DisplaySummary(summary m.Summary)
	Close()
	Wait() error // Wait for UI to finish (user closes it)
}

// NewUI creates a UI based on whether interactive mode is usable.
// When interactive is true, it returns a TUI (Bubble Tea).
// When interactive is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, interactive bool, opts Options) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout(), opts)
	}

	return NewSimpleUI(cmd, opts)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file, pipe or buffer.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
