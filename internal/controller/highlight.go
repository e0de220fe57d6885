package controller

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// highlightSpans renders line with every span passed through accent and the
// text between spans through plain. Overlapping or out-of-range spans are
// clipped.
func highlightSpans(line string, spans [][]int, plain, accent func(string) string) string {
	if len(spans) == 0 {
		return plain(line)
	}

	sorted := make([][]int, 0, len(spans))
	for _, span := range spans {
		if len(span) == 2 {
			sorted = append(sorted, span)
		}
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	var b strings.Builder

	pos := 0

	for _, span := range sorted {
		start, end := max(span[0], pos), min(span[1], len(line))
		if start >= end {
			continue
		}

		if start > pos {
			b.WriteString(plain(line[pos:start]))
		}

		b.WriteString(accent(line[start:end]))
		pos = end
	}

	if pos < len(line) {
		b.WriteString(plain(line[pos:]))
	}

	return b.String()
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}
