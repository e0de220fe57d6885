package model

// FileStat holds the number of records emitted for one source.
type FileStat struct {
	Path    Path
	Records int
}

// Summary describes a finished search.
type Summary struct {
	Mode    SearchMode
	Files   []FileStat // visited files in scan order, including ones with no records
	Skipped int        // tree entries skipped because of walk or read errors
	Records int
}

// Matched reports whether at least one record was emitted.
func (s Summary) Matched() bool {
	return s.Records > 0
}
