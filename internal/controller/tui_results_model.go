package controller

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	lineNumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
)

// resultDelegate renders one record per row.
type resultDelegate struct {
	offset      int
	lineNumbers bool
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	prefix := ""
	if result.record.Source != "" {
		prefix = pathStyle.Render(string(result.record.Source)) + ": "
	}

	if d.lineNumbers {
		prefix += lineNumStyle.Render(strconv.Itoa(result.record.LineNumber)) + ":"
	}

	width := m.Width() - lipgloss.Width(prefix)

	if index == m.Index() {
		text := animateScroll(result.record.Line, width, d.offset)
		_, _ = fmt.Fprint(w, prefix+selectedStyle.Render(text))

		return
	}

	text := truncateToWidth(result.record.Line, width)
	spans := clipSpans(result.spans, visiblePrefix(result.record.Line, text))

	_, _ = fmt.Fprint(w, prefix+highlightSpans(text, spans, identity, renderMatch))
}

func renderMatch(text string) string {
	return matchStyle.Render(text)
}

// visiblePrefix returns how many bytes of line survive truncation into text.
func visiblePrefix(line, text string) int {
	if text == line {
		return len(line)
	}

	return max(len(text)-len("…"), 0)
}

func clipSpans(spans [][]int, limit int) [][]int {
	clipped := make([][]int, 0, len(spans))

	for _, span := range spans {
		if len(span) != 2 || span[0] >= limit {
			continue
		}

		clipped = append(clipped, []int{span[0], min(span[1], limit)})
	}

	return clipped
}

// resultsModel lists records as they arrive and keeps the list browsable
// after the search finishes.
type resultsModel struct {
	width        int
	height       int
	title        string
	results      list.Model
	delegate     resultDelegate
	finished     bool
	files        int
	skipped      int
	animOffset   int
	lastSelected int
}

func newResultsModel(title string, lineNumbers bool) resultsModel {
	delegate := resultDelegate{lineNumbers: lineNumbers}
	results := list.New([]list.Item{}, delegate, 80, 20)
	results.SetShowPagination(false)
	results.SetShowFilter(true)
	results.SetShowHelp(false)
	results.SetShowTitle(false)
	results.SetShowStatusBar(false)
	results.FilterInput.Placeholder = "Filter results…"

	return resultsModel{
		width:        80,
		height:       24,
		title:        title,
		results:      results,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m resultsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)

	case tickMsg:
		if m.results.FilterState() == list.Filtering {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.results.SetDelegate(m.delegate)

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case matchMsg:
		cmd = m.results.InsertItem(len(m.results.Items()), resultItem(msg))
		if m.lastSelected == -1 {
			m.lastSelected = 0
		}

	case summaryMsg:
		m.finished = true
		m.files = len(msg.summary.Files)
		m.skipped = msg.summary.Skipped
	}

	return m, cmd
}

func (m resultsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.results.FilterState() == list.Filtering

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !filtering {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.results, cmd = m.results.Update(msg)

	// Detect selection change to reset animation
	if m.results.Index() != m.lastSelected {
		m.lastSelected = m.results.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.results.SetDelegate(m.delegate)
	}

	return m, cmd
}

func (m resultsModel) resize(width, height int) resultsModel {
	m.width = width
	m.height = height

	// Title (2) + summary (2) + border (2) + footer (1)
	m.results.SetHeight(max(m.height-7, 3))
	// Margin (2) + border (2) + padding (2)
	m.results.SetWidth(max(m.width-6, 10))

	return m
}

func (m resultsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("🔎 " + m.title)

	count := accentStyle.Render(strconv.Itoa(len(m.results.Items())))

	var status string
	if m.finished {
		status = fmt.Sprintf("Matches: %s   Files: %s   Skipped: %s",
			count,
			accentStyle.Render(strconv.Itoa(m.files)),
			accentStyle.Render(strconv.Itoa(m.skipped)),
		)
	} else {
		status = fmt.Sprintf("Searching… %s matches so far", count)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summaryStyle.Render(status),
		box.Render(m.results.View()),
		footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"),
	)
}
