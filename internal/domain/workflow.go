package domain

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/mouse-blink/seek/internal/adapter"
	"github.com/mouse-blink/seek/internal/controller"
	"github.com/mouse-blink/seek/internal/logger"
	m "github.com/mouse-blink/seek/internal/model"
)

// ErrTreeMode is returned when a tree search is requested with a mode other
// than plain literal matching.
var ErrTreeMode = errors.New("directory search supports literal patterns only")

// SearchArgs describes one search.
type SearchArgs struct {
	Mode    m.SearchMode
	Pattern string // ignored for m.ModeDump
	Target  m.Path
	Tree    bool // walk Target recursively and prefix records with their path
	Threads int  // tree mode only
}

// Workflow defines the search operation driven by the CLI.
type Workflow interface {
	Search(ctx context.Context, args SearchArgs) (m.Summary, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
}

// NewWorkflow creates a new Workflow reading through fsAdapter and reporting
// to ui.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

// Search compiles the pattern, scans the target and hands every selected
// line to the UI. Pattern errors and, outside tree mode, read errors are
// returned before the UI is started, so nothing is printed for a failed run.
func (w *workflow) Search(ctx context.Context, args SearchArgs) (m.Summary, error) {
	if args.Tree && args.Mode != m.ModeLiteral {
		return m.Summary{}, fmt.Errorf("%w (got %s)", ErrTreeMode, args.Mode)
	}

	pattern, err := Compile(args.Pattern, args.Mode)
	if err != nil {
		return m.Summary{}, err
	}

	logger.Debug("compiled %s pattern %q", args.Mode, args.Pattern)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	scanner := NewScanner(w.fsAdapter, pattern, args.Threads)

	records, err := w.records(searchCtx, scanner, args)
	if err != nil {
		return m.Summary{}, err
	}

	err = w.ui.Start(
		controller.WithTitle(title(args)),
		controller.WithHighlighter(pattern.Locate),
		controller.WithQuitHandler(cancel),
	)
	if err != nil {
		return m.Summary{}, fmt.Errorf("failed to start output: %w", err)
	}

	var displayErr error

	for record := range records {
		if displayErr = w.ui.DisplayMatch(record); displayErr != nil {
			break
		}
	}

	summary := scanner.Summary()

	logger.Info("%d records from %d files, %d entries skipped", summary.Records, len(summary.Files), summary.Skipped)

	w.ui.DisplaySummary(summary)
	w.ui.Close()
	waitErr := w.ui.Wait()

	if displayErr != nil {
		return summary, fmt.Errorf("failed to write output: %w", displayErr)
	}

	if waitErr != nil {
		return summary, fmt.Errorf("output failed: %w", waitErr)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	return summary, nil
}

func (w *workflow) records(ctx context.Context, scanner *Scanner, args SearchArgs) (iter.Seq[m.MatchRecord], error) {
	if !args.Tree {
		return scanner.ScanFile(args.Target)
	}

	if _, err := w.fsAdapter.FileInfo(args.Target); err != nil {
		return nil, &ReadError{Path: args.Target, Err: err}
	}

	return scanner.ScanTree(ctx, args.Target), nil
}

func title(args SearchArgs) string {
	if args.Mode == m.ModeDump {
		return fmt.Sprintf("seek dump %s", args.Target)
	}

	return fmt.Sprintf("seek %s %q in %s", args.Mode, args.Pattern, args.Target)
}
