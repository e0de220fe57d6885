package controller

import (
	"time"

	m "github.com/mouse-blink/seek/internal/model"
)

// Message types.
type tickMsg time.Time

type matchMsg struct {
	record m.MatchRecord
	spans  [][]int
}

type summaryMsg struct {
	summary m.Summary
}

// List item types.
type resultItem struct {
	record m.MatchRecord
	spans  [][]int
}

func (r resultItem) FilterValue() string {
	return string(r.record.Source) + " " + r.record.Line
}
