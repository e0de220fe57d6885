package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/seek/internal/model"
)

var (
	// ErrInvalidPattern marks a pattern that cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrRead marks a source that could not be read as text.
	ErrRead = errors.New("read failed")
)

// PatternError reports a malformed regular expression. It is fatal for the
// search that produced it.
type PatternError struct {
	Pattern string
	Mode    m.SearchMode
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %v", e.Pattern, e.Err)
}

// Unwrap exposes both ErrInvalidPattern and the underlying regexp error.
func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// ReadError reports a source that could not be opened or is not valid text.
type ReadError struct {
	Path m.Path
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrRead and the underlying I/O error.
func (e *ReadError) Unwrap() []error {
	return []error{ErrRead, e.Err}
}
