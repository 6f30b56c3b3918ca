package lint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/parser"
)

// Reader loads the text of a file.
type Reader interface {
	ReadFile(path string) (string, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(path string) (string, error)

// ReadFile implements Reader.
func (f ReaderFunc) ReadFile(path string) (string, error) { return f(path) }

// Parser builds a syntax tree from source text.
type Parser interface {
	Parse(filename, src string) (*ast.Module, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(filename, src string) (*ast.Module, error)

// Parse implements Parser.
func (f ParserFunc) Parse(filename, src string) (*ast.Module, error) { return f(filename, src) }

// Config holds analyzer configuration.
type Config struct {
	// Reader loads file contents (optional, reads from disk if nil)
	Reader Reader
	// Parser builds syntax trees (optional, dispatches on file name if nil)
	Parser Parser
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
	// Jobs is the number of files analyzed concurrently by AnalyzeFiles
	Jobs int
	// KeepGoing records per-file failures instead of aborting AnalyzeFiles
	KeepGoing bool
}

// Analyzer runs the registered rules against files.
type Analyzer struct {
	reader    Reader
	parser    Parser
	logger    *slog.Logger
	jobs      int
	keepGoing bool
}

// NewAnalyzer creates an analyzer, filling unset collaborators with defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	a := &Analyzer{
		reader:    cfg.Reader,
		parser:    cfg.Parser,
		logger:    cfg.Logger,
		jobs:      cfg.Jobs,
		keepGoing: cfg.KeepGoing,
	}
	if a.reader == nil {
		a.reader = ReaderFunc(func(path string) (string, error) {
			data, err := os.ReadFile(path)
			return string(data), err
		})
	}
	if a.parser == nil {
		a.parser = ParserFunc(parser.ParseFile)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	if a.jobs < 1 {
		a.jobs = 1
	}
	return a
}

// AnalyzeFile reads one file and returns its violations ordered by line,
// then code. Read and parse failures are returned wrapped.
func (a *Analyzer) AnalyzeFile(path string) ([]Violation, error) {
	src, err := a.reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return a.AnalyzeSource(path, src)
}

// AnalyzeSource analyzes already loaded text as if it were the file at path.
func (a *Analyzer) AnalyzeSource(path, src string) ([]Violation, error) {
	mod, err := a.parser.Parse(path, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	lineViolations := ScanLines(path, SplitLines(src))
	treeViolations := ScanTree(path, mod)
	violations := Merge(lineViolations, treeViolations)

	a.logger.Debug("analyzed file",
		"path", path,
		"line_violations", len(lineViolations),
		"tree_violations", len(treeViolations))
	return violations, nil
}

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path       string
	Violations []Violation
	Err        error // set only when the analyzer keeps going past failures
}

// AnalyzeFiles analyzes paths with up to Jobs files in flight. Results are
// returned in input order whatever the scheduling. The first failure cancels
// the remaining work and is returned, unless KeepGoing is set, in which case
// each failure is recorded on its FileResult.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.jobs)

	for i, path := range paths {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			violations, err := a.AnalyzeFile(path)
			results[i] = FileResult{Path: path, Violations: violations}
			if err == nil {
				return nil
			}
			if a.keepGoing {
				a.logger.Warn("skipping file", "path", path, "error", err)
				results[i].Err = err
				return nil
			}
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// SplitLines splits text on \n, \r\n and \r. A trailing line break does not
// produce an empty final line.
func SplitLines(src string) []string {
	var lines []string
	for len(src) > 0 {
		i := strings.IndexAny(src, "\r\n")
		if i < 0 {
			lines = append(lines, src)
			break
		}
		lines = append(lines, src[:i])
		next := i + 1
		if src[i] == '\r' && next < len(src) && src[next] == '\n' {
			next++
		}
		src = src[next:]
	}
	return lines
}
