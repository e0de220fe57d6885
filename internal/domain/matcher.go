// Package domain implements pattern compilation, line scanning and the
// search workflow that ties them to the output UI.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/seek/internal/model"
)

const caseInsensitiveFlag = "(?i)"

// Pattern is a compiled search pattern. It is immutable once built and safe
// for concurrent use by multiple goroutines.
type Pattern struct {
	mode    m.SearchMode
	literal string
	re      *regexp.Regexp
}

// Compile builds a Pattern for the given mode. Literal and dump modes never
// fail; regex modes fail with a *PatternError when the syntax is malformed.
func Compile(raw string, mode m.SearchMode) (*Pattern, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported search mode %d", int(mode))
	}

	if !mode.IsRegex() {
		return &Pattern{mode: mode, literal: raw}, nil
	}

	source := raw
	if mode == m.ModeRegexCaseInsensitive {
		// the flag must prefix the whole expression, not one alternative
		source = caseInsensitiveFlag + raw
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, &PatternError{Pattern: raw, Mode: mode, Err: err}
	}

	return &Pattern{mode: mode, re: re}, nil
}

// Mode returns the mode the pattern was compiled for.
func (p *Pattern) Mode() m.SearchMode {
	return p.mode
}

// IsMatch reports whether line is selected. For the inverted mode the
// verdict is already negated.
func (p *Pattern) IsMatch(line string) bool {
	switch {
	case p.mode == m.ModeDump:
		return true
	case p.mode.IsRegex():
		return p.re.MatchString(line)
	default:
		return strings.Contains(line, p.literal) != p.mode.Inverted()
	}
}

// Locate returns the byte ranges of matched text within line. It is nil for
// dump and inverted modes, where no sub-range of the line is "the match".
func (p *Pattern) Locate(line string) [][]int {
	switch {
	case p.mode == m.ModeDump || p.mode.Inverted():
		return nil
	case p.mode.IsRegex():
		return p.re.FindAllStringIndex(line, -1)
	default:
		return locateLiteral(line, p.literal)
	}
}

func locateLiteral(line, literal string) [][]int {
	if literal == "" {
		return nil
	}

	var spans [][]int

	offset := 0

	for {
		idx := strings.Index(line[offset:], literal)
		if idx < 0 {
			return spans
		}

		start := offset + idx
		end := start + len(literal)
		spans = append(spans, []int{start, end})
		offset = end
	}
}
