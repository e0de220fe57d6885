package domain

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/seek/internal/adapter"
	"github.com/mouse-blink/seek/internal/controller"
	controllermocks "github.com/mouse-blink/seek/internal/controller/mocks"
	m "github.com/mouse-blink/seek/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingUI collects what the workflow reports.
type recordingUI struct {
	started  bool
	options  []controller.StartOption
	records  []m.MatchRecord
	summary  *m.Summary
	closed   bool
	waited   bool
	matchErr error
	waitErr  error
}

func (r *recordingUI) Start(options ...controller.StartOption) error {
	r.started = true
	r.options = options

	return nil
}

func (r *recordingUI) DisplayMatch(record m.MatchRecord) error {
	if r.matchErr != nil {
		return r.matchErr
	}

	r.records = append(r.records, record)

	return nil
}

func (r *recordingUI) DisplaySummary(summary m.Summary) { r.summary = &summary }
func (r *recordingUI) Close()                           { r.closed = true }

func (r *recordingUI) Wait() error {
	r.waited = true

	return r.waitErr
}

func (r *recordingUI) lines() []string {
	return formatted(r.records)
}

func fruitFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fruit.txt")
	writeFile(t, path, "apple\nbanana\ngrape\n")

	return path
}

func TestWorkflow_Search_SingleFileModes(t *testing.T) {
	path := fruitFile(t)

	tests := []struct {
		name    string
		mode    m.SearchMode
		pattern string
		want    []string
	}{
		{name: "literal", mode: m.ModeLiteral, pattern: "an", want: []string{"banana"}},
		{name: "inverted", mode: m.ModeLiteralInverted, pattern: "an", want: []string{"apple", "grape"}},
		{name: "regex", mode: m.ModeRegex, pattern: `p{2}`, want: []string{"apple"}},
		{name: "anchored", mode: m.ModeRegexAnchored, pattern: `e$`, want: []string{"apple", "grape"}},
		{name: "case insensitive", mode: m.ModeRegexCaseInsensitive, pattern: `BAN`, want: []string{"banana"}},
		{name: "dump", mode: m.ModeDump, want: []string{"apple", "banana", "grape"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &recordingUI{}
			wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

			summary, err := wf.Search(context.Background(), SearchArgs{
				Mode:    tt.mode,
				Pattern: tt.pattern,
				Target:  m.Path(path),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, ui.lines())
			assert.True(t, ui.started)
			assert.True(t, ui.closed)
			assert.True(t, ui.waited)
			require.NotNil(t, ui.summary)
			assert.Equal(t, len(tt.want), summary.Records)
			assert.Equal(t, summary, *ui.summary)
			assert.Equal(t, tt.mode, summary.Mode)
		})
	}
}

func TestWorkflow_Search_Tree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "foo")
	writeFile(t, filepath.Join(root, "b.txt"), "foobar")

	for _, threads := range []int{0, 1, 8} {
		ui := &recordingUI{}
		wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

		summary, err := wf.Search(context.Background(), SearchArgs{
			Mode:    m.ModeLiteral,
			Pattern: "foo",
			Target:  m.Path(root),
			Tree:    true,
			Threads: threads,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(root, "a.txt") + ": foo",
			filepath.Join(root, "b.txt") + ": foobar",
		}, ui.lines())
		assert.True(t, summary.Matched())
	}
}

func TestWorkflow_Search_InvalidPatternIsFatal(t *testing.T) {
	path := fruitFile(t)

	fsAdapter := newFailingFSAdapter()
	ui := controllermocks.NewMockUI(t) // no expectations: the UI must never be touched
	wf := NewWorkflow(fsAdapter, ui)

	_, err := wf.Search(context.Background(), SearchArgs{
		Mode:    m.ModeRegex,
		Pattern: "(",
		Target:  m.Path(path),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Empty(t, fsAdapter.reads, "no file may be read for an invalid pattern")
}

func TestWorkflow_Search_ReadErrorIsFatal(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(context.Background(), SearchArgs{
		Mode:    m.ModeLiteral,
		Pattern: "x",
		Target:  m.Path(filepath.Join(t.TempDir(), "missing.txt")),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
}

func TestWorkflow_Search_MissingTreeRootIsFatal(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(context.Background(), SearchArgs{
		Mode:    m.ModeLiteral,
		Pattern: "x",
		Target:  m.Path(filepath.Join(t.TempDir(), "missing")),
		Tree:    true,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWorkflow_Search_TreeRejectsOtherModes(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	for _, mode := range []m.SearchMode{m.ModeLiteralInverted, m.ModeRegex, m.ModeRegexCaseInsensitive, m.ModeDump} {
		_, err := wf.Search(context.Background(), SearchArgs{
			Mode:    mode,
			Pattern: "x",
			Target:  m.Path(t.TempDir()),
			Tree:    true,
		})
		assert.ErrorIs(t, err, ErrTreeMode)
	}
}

func TestWorkflow_Search_WithMockUI(t *testing.T) {
	path := fruitFile(t)

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("DisplayMatch", m.MatchRecord{LineNumber: 2, Line: "banana"}).Return(nil).Once()
	ui.On("DisplaySummary", mock.MatchedBy(func(s m.Summary) bool {
		return s.Records == 1 && len(s.Files) == 1 && s.Files[0].Path == m.Path(path)
	})).Return().Once()
	ui.On("Close").Return().Once()
	ui.On("Wait").Return(nil).Once()

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(context.Background(), SearchArgs{
		Mode:    m.ModeLiteral,
		Pattern: "an",
		Target:  m.Path(path),
	})
	require.NoError(t, err)
}

func TestWorkflow_Search_StartError(t *testing.T) {
	path := fruitFile(t)

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no terminal")).Once()

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(context.Background(), SearchArgs{Mode: m.ModeDump, Target: m.Path(path)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal")
}

func TestWorkflow_Search_DisplayErrorStopsScan(t *testing.T) {
	path := fruitFile(t)

	broken := errors.New("broken pipe")
	ui := &recordingUI{matchErr: broken}
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	summary, err := wf.Search(context.Background(), SearchArgs{Mode: m.ModeDump, Target: m.Path(path)})

	require.Error(t, err)
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, 1, summary.Records)
	assert.True(t, ui.closed)
}

func TestWorkflow_Search_StartOptions(t *testing.T) {
	path := fruitFile(t)

	ui := &recordingUI{}
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(context.Background(), SearchArgs{Mode: m.ModeLiteral, Pattern: "an", Target: m.Path(path)})
	require.NoError(t, err)

	assert.Len(t, ui.options, 3)
}

func TestWorkflow_Search_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "foo")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := &recordingUI{}
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(ctx, SearchArgs{Mode: m.ModeLiteral, Pattern: "foo", Target: m.Path(root), Tree: true})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ui.records)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "seek dump a.txt", title(SearchArgs{Mode: m.ModeDump, Target: "a.txt"}))
	assert.Equal(t, `seek literal "foo" in dir`, title(SearchArgs{Mode: m.ModeLiteral, Pattern: "foo", Target: "dir"}))
}

func TestWorkflow_Search_WaitErrorIsReturned(t *testing.T) {
	path := fruitFile(t)

	crashed := errors.New("program was killed")
	ui := &recordingUI{waitErr: crashed}
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	summary, err := wf.Search(context.Background(), SearchArgs{Mode: m.ModeLiteral, Pattern: "an", Target: m.Path(path)})

	require.ErrorIs(t, err, crashed)
	assert.True(t, ui.waited)
	assert.Equal(t, 1, summary.Records)
}

func TestWorkflow_Search_WaitErrorFromMockUI(t *testing.T) {
	path := fruitFile(t)

	crashed := errors.New("terminal closed")

	ui := controllermocks.NewMockUI(t)
	ui.On("Start", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	ui.On("DisplayMatch", mock.Anything).Return(nil)
	ui.On("DisplaySummary", mock.Anything).Return().Once()
	ui.On("Close").Return().Once()
	ui.On("Wait").Return(crashed).Once()

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui)

	_, err := wf.Search(context.Background(), SearchArgs{Mode: m.ModeDump, Target: m.Path(path)})
	require.ErrorIs(t, err, crashed)
}
