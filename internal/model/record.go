package model

import "strconv"

// MatchRecord is one selected line. Source is empty in single-file modes.
type MatchRecord struct {
	Source     Path
	LineNumber int // 1-based
	Line       string
}

// Format renders the record the way it is printed: "<path>: <line>" when the
// record carries a source, the bare line otherwise. withLineNumber inserts
// "N:" before the line text.
func (r MatchRecord) Format(withLineNumber bool) string {
	text := r.Line
	if withLineNumber {
		text = strconv.Itoa(r.LineNumber) + ":" + text
	}

	if r.Source == "" {
		return text
	}

	return string(r.Source) + ": " + text
}
