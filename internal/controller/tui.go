package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/seek/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea: results stream into a filterable list
// that stays open until the user quits.
type TUI struct {
	output io.Writer
	opts   Options

	mu          sync.Mutex
	program     *tea.Program
	started     bool
	done        chan struct{}
	runErr      error
	highlight   Highlighter
	programOpts []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, opts Options) *TUI {
	return &TUI{
		output:      output,
		opts:        opts,
		done:        make(chan struct{}),
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Start launches the results browser.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	t.highlight = cfg.highlight

	model := newResultsModel(cfg.title, t.opts.LineNumbers)

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model = model.resize(width, height)
		}
	}

	return t.startWithModel(model, cfg.onQuit)
}

func (t *TUI) startWithModel(model tea.Model, onQuit func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("ui already started")
	}

	opts := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.programOpts...)
	t.program = tea.NewProgram(model, opts...)
	t.started = true

	go func() {
		defer close(t.done)

		_, err := t.program.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		if onQuit != nil {
			onQuit()
		}
	}()

	return nil
}

// DisplayMatch adds a record to the list.
func (t *TUI) DisplayMatch(record m.MatchRecord) error {
	var spans [][]int
	if t.highlight != nil {
		spans = t.highlight(record.Line)
	}

	t.send(matchMsg{record: record, spans: spans})

	return nil
}

// DisplaySummary marks the search as finished.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.send(summaryMsg{summary: summary})
}

// Close finalizes the UI. The browser stays open until the user quits.
func (t *TUI) Close() {

}

// Wait blocks until the user closes the browser and returns the error the
// Bubble Tea program exited with, if any.
func (t *TUI) Wait() error {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		return nil
	}

	<-t.done

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

// send forwards msg to the running program; it is a no-op before Start.
// After the program exits Send returns immediately.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}
