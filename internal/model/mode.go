package model

// SearchMode selects how a raw pattern is compiled and how the per-line
// verdict is interpreted.
type SearchMode int

const (
	// ModeLiteral selects lines containing the pattern as a substring.
	ModeLiteral SearchMode = iota
	// ModeLiteralInverted selects lines that do NOT contain the pattern.
	ModeLiteralInverted
	// ModeRegex selects lines matched anywhere by a regular expression.
	ModeRegex
	// ModeRegexAnchored is ModeRegex used with ^ and $ anchors; anchors
	// always refer to the single line being tested.
	ModeRegexAnchored
	// ModeRegexCaseInsensitive is ModeRegex with case folding over the
	// whole expression.
	ModeRegexCaseInsensitive
	// ModeDump selects every line. No pattern is used.
	ModeDump
)

var modeNames = map[SearchMode]string{
	ModeLiteral:              "literal",
	ModeLiteralInverted:      "inverted",
	ModeRegex:                "regex",
	ModeRegexAnchored:        "anchored",
	ModeRegexCaseInsensitive: "regex-ignore-case",
	ModeDump:                 "dump",
}

// String returns a short human readable name for the mode.
func (m SearchMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return "unknown"
}

// IsRegex reports whether the raw pattern is regular-expression source.
func (m SearchMode) IsRegex() bool {
	return m == ModeRegex || m == ModeRegexAnchored || m == ModeRegexCaseInsensitive
}

// Inverted reports whether the match verdict is negated.
func (m SearchMode) Inverted() bool {
	return m == ModeLiteralInverted
}

// Valid reports whether m is one of the known modes.
func (m SearchMode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}
