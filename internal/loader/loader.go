// Package loader finds Python source files and reads their contents.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInputNotFound is returned when a path does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrInvalidEncoding is returned when a file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// DefaultExtensions are the file patterns kept when walking a directory.
var DefaultExtensions = []string{".py"}

// DefaultExclude are the directory names skipped when walking a directory.
var DefaultExclude = []string{".git", "__pycache__", ".venv", "venv", ".tox", "node_modules"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls file discovery.
type Options struct {
	// Extensions selects files inside directories. Entries starting with a
	// dot match the file extension; other entries are glob patterns matched
	// against the base name, e.g. "BUILD" or "*.bzl".
	Extensions []string
	// Exclude lists directory names that are not descended into.
	Exclude []string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// DefaultOptions returns discovery options for plain Python trees.
func DefaultOptions() Options {
	return Options{
		Extensions: slices.Clone(DefaultExtensions),
		Exclude:    slices.Clone(DefaultExclude),
	}
}

// Discover returns the files to analyze under root. A regular file is
// returned as is, whatever its name. A directory is walked in lexical order,
// so the result is deterministic for a given layout.
func Discover(root string, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && slices.Contains(opts.Exclude, d.Name()) {
				logger.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !matches(d.Name(), opts.Extensions) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("discovered files", "root", root, "count", len(files))
	return files, nil
}

func matches(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, ".") {
			if filepath.Ext(name) == pattern {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// ReadFile returns the text of path with any UTF-8 byte order mark removed.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return "", err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return string(data), nil
}

// Reader reads files from disk and logs each read.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a Reader. A nil logger discards output.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{logger: logger}
}

// ReadFile reads path via the package-level ReadFile.
func (r *Reader) ReadFile(path string) (string, error) {
	src, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	r.logger.Debug("read file", "path", path, "bytes", len(src))
	return src, nil
}
