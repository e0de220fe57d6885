// Package adapter contains the filesystem adapter the search layers read
// through.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	m "github.com/mouse-blink/seek/internal/model"
)

// ErrNotText is returned by ReadText when a file's contents are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning files and trees. It hides direct `os` access
// so the scanner can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root depth-first in lexical order. Symbolic links are
	// reported but never followed. Errors for individual entries are passed
	// to fn, which decides whether the walk continues.
	Walk(root m.Path, fn WalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadText loads a file and fails with ErrNotText when the content is
	// not valid UTF-8.
	ReadText(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// WalkFunc mirrors the callback shape used by filepath.WalkDir. It is defined
// here to avoid leaking the standard-library type directly into the domain
// layer.
type WalkFunc func(path string, entry fs.DirEntry, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root. A root that is itself a
// symbolic link to a directory is resolved; links below root are not.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn WalkFunc) error {
	rootStr := string(root)

	if info, err := os.Lstat(rootStr); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(rootStr); err == nil && target.IsDir() {
			rootStr += string(filepath.Separator)
		}
	}

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		return fn(path, d, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-named files is the purpose of the tool
	return os.ReadFile(string(path))
}

// ReadText loads file contents and validates them as UTF-8.
func (a *LocalSourceFSAdapter) ReadText(path m.Path) (string, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}

	return string(content), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
