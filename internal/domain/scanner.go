package domain

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"slices"
	"strings"

	"github.com/mouse-blink/seek/internal/adapter"
	"github.com/mouse-blink/seek/internal/logger"
	m "github.com/mouse-blink/seek/internal/model"
	"golang.org/x/sync/errgroup"
)

var errStopWalk = errors.New("stop walk")

// Scanner feeds lines from files or directory trees through a Pattern.
// A Scanner is built per search; it accumulates the search's Summary.
type Scanner struct {
	fsAdapter adapter.SourceFSAdapter
	pattern   *Pattern
	threads   int
	summary   m.Summary
}

// NewScanner constructs a Scanner. threads <= 1 scans trees sequentially.
func NewScanner(fsAdapter adapter.SourceFSAdapter, pattern *Pattern, threads int) *Scanner {
	if threads < 1 {
		threads = 1
	}

	return &Scanner{
		fsAdapter: fsAdapter,
		pattern:   pattern,
		threads:   threads,
		summary:   m.Summary{Mode: pattern.Mode()},
	}
}

// Summary returns the statistics collected by the records consumed so far.
func (s *Scanner) Summary() m.Summary {
	summary := s.summary
	summary.Files = append([]m.FileStat(nil), s.summary.Files...)

	return summary
}

// ScanFile reads path fully and returns the selected lines. Any read failure
// is returned before a single record is produced. Records carry no source.
func (s *Scanner) ScanFile(path m.Path) (iter.Seq[m.MatchRecord], error) {
	content, err := s.fsAdapter.ReadText(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return s.emit(path, matchLines(s.pattern, "", content)), nil
}

// ScanTree walks root recursively and yields the selected lines of every
// regular file, each record carrying its file path. Entries that cannot be
// walked or read as text are skipped; they never end the scan.
func (s *Scanner) ScanTree(ctx context.Context, root m.Path) iter.Seq[m.MatchRecord] {
	if s.threads > 1 {
		return s.scanTreeParallel(ctx, root)
	}

	return func(yield func(m.MatchRecord) bool) {
		_ = s.fsAdapter.Walk(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				s.skip(path, err)
				return nil
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if !d.Type().IsRegular() {
				return nil
			}

			content, err := s.fsAdapter.ReadText(m.Path(path))
			if err != nil {
				s.skip(path, err)
				return nil
			}

			for record := range s.emit(m.Path(path), matchLines(s.pattern, m.Path(path), content)) {
				if !yield(record) {
					return errStopWalk
				}
			}

			return nil
		})
	}
}

// treeJob is one regular file of a parallel tree scan. done is closed once
// records or err is set.
type treeJob struct {
	path    m.Path
	records []m.MatchRecord
	err     error
	done    chan struct{}
}

// scanTreeParallel matches files on an errgroup worker pool and yields the
// results in walk order, so output is identical to the sequential scan.
func (s *Scanner) scanTreeParallel(ctx context.Context, root m.Path) iter.Seq[m.MatchRecord] {
	return func(yield func(m.MatchRecord) bool) {
		jobs := s.collectTreeJobs(ctx, root)

		ctx, cancel := context.WithCancel(ctx)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.threads)

		finished := make(chan struct{})

		go func() {
			defer close(finished)

			for _, job := range jobs {
				g.Go(func() error {
					defer close(job.done)

					if err := gctx.Err(); err != nil {
						job.err = err
						return nil
					}

					content, err := s.fsAdapter.ReadText(job.path)
					if err != nil {
						job.err = err
						return nil
					}

					job.records = slices.Collect(matchLines(s.pattern, job.path, content))

					return nil
				})
			}

			_ = g.Wait()
		}()

		defer func() {
			cancel()
			<-finished
		}()

		for _, job := range jobs {
			<-job.done

			if job.err != nil {
				if ctx.Err() == nil {
					s.skip(string(job.path), job.err)
				}

				continue
			}

			for record := range s.emit(job.path, slices.Values(job.records)) {
				if !yield(record) {
					return
				}
			}
		}
	}
}

func (s *Scanner) collectTreeJobs(ctx context.Context, root m.Path) []*treeJob {
	var jobs []*treeJob

	_ = s.fsAdapter.Walk(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.skip(path, err)
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.Type().IsRegular() {
			jobs = append(jobs, &treeJob{path: m.Path(path), done: make(chan struct{})})
		}

		return nil
	})

	return jobs
}

// emit registers path in the summary and counts each record the consumer
// actually receives.
func (s *Scanner) emit(path m.Path, records iter.Seq[m.MatchRecord]) iter.Seq[m.MatchRecord] {
	return func(yield func(m.MatchRecord) bool) {
		s.summary.Files = append(s.summary.Files, m.FileStat{Path: path})
		stat := &s.summary.Files[len(s.summary.Files)-1]

		for record := range records {
			stat.Records++
			s.summary.Records++

			if !yield(record) {
				return
			}
		}
	}
}

func (s *Scanner) skip(path string, err error) {
	s.summary.Skipped++
	logger.Warn("skipping %s: %v", path, err)
}

// matchLines yields a record for every line of content selected by pattern.
func matchLines(pattern *Pattern, source m.Path, content string) iter.Seq[m.MatchRecord] {
	return func(yield func(m.MatchRecord) bool) {
		for number, line := range splitLines(content) {
			if !pattern.IsMatch(line) {
				continue
			}

			if !yield(m.MatchRecord{Source: source, LineNumber: number, Line: line}) {
				return
			}
		}
	}
}

// splitLines yields 1-based line numbers and line text. Lines end at "\n";
// a trailing "\r" is dropped and a final unterminated line is still yielded.
func splitLines(content string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		number := 0

		for content != "" {
			line, rest, _ := strings.Cut(content, "\n")
			content = rest
			number++

			if !yield(number, strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}
