// Package source implements the lazy, idempotent source file loader used
// by diagnostics (spec component A): it caches each file as an ordered
// slice of lines and builds the snippets the error formatter renders.
package source

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// IndicatorType selects the visual underline a Snippet renders beneath the
// offending span.
type IndicatorType int

const (
	IndicatorCaret IndicatorType = iota
	IndicatorTilde
	IndicatorArrow
	IndicatorBrace
)

// Snippet is everything the diagnostic formatter needs to render one
// source-code excerpt: the offending line, its column span, a handful of
// context lines on either side, and the underline/annotation to draw.
type Snippet struct {
	Filename         string
	LineNumber       int
	SourceLine       string
	ColumnStart      int
	ColumnEnd        int
	Indicator        IndicatorType
	Underline        string
	ContextBefore    []string
	ContextAfter     []string
	HighlightMessage string
}

// Manager loads and caches source files by name. It is passed explicitly
// through the pipeline (lexer, parser, emitter diagnostics) rather than
// kept as a package-level global, so two independent compiles never share
// mutable state.
type Manager struct {
	group  singleflight.Group
	files  map[string][]string
	loaded map[string]bool
}

func NewManager() *Manager {
	return &Manager{
		files:  make(map[string][]string),
		loaded: make(map[string]bool),
	}
}

// Load reads filename into the line cache if it isn't cached already.
// Concurrent callers asking for the same filename collapse into a single
// disk read via singleflight. A read failure leaves the file marked not
// loaded and is returned as a wrapped error; GetLine, ContextLines and
// BuildSnippet discard that error, so at diagnostic time a missing file
// only means an absent snippet.
func (m *Manager) Load(filename string) error {
	if m.loaded[filename] {
		return nil
	}
	_, err, _ := m.group.Do(filename, func() (interface{}, error) {
		if m.loaded[filename] {
			return nil, nil
		}
		contents, readErr := os.ReadFile(filename)
		if readErr != nil {
			m.loaded[filename] = false
			return nil, errors.Wrapf(readErr, "source: loading %q", filename)
		}
		lines := strings.Split(string(contents), "\n")
		m.files[filename] = lines
		m.loaded[filename] = true
		return nil, nil
	})
	return err
}

// GetLine returns the 1-based line from filename, or "" if the file or line
// is unavailable. It triggers a lazy load.
func (m *Manager) GetLine(filename string, line int) string {
	_ = m.Load(filename)
	lines, ok := m.files[filename]
	if !ok || line <= 0 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// ContextLines returns up to contextLines lines before and after line
// (inclusive bounds clamped to the file), loading the file lazily.
func (m *Manager) ContextLines(filename string, line, contextLines int) []string {
	_ = m.Load(filename)
	lines, ok := m.files[filename]
	if !ok || line <= 0 || line > len(lines) {
		return nil
	}
	start := line - contextLines
	if start < 1 {
		start = 1
	}
	end := line + contextLines
	if end > len(lines) {
		end = len(lines)
	}
	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, lines[i-1])
	}
	return out
}

// BuildSnippet builds a rendering-ready Snippet for the given span. ok is
// false when the file has no cached/loadable content for that line — the
// caller should simply omit the snippet from its diagnostic rather than
// treat this as an error.
func (m *Manager) BuildSnippet(filename string, line, colStart, colEnd int, indicator IndicatorType, highlight string) (Snippet, bool) {
	sourceLine := m.GetLine(filename, line)
	lines, ok := m.files[filename]
	if !ok {
		return Snippet{}, false
	}

	snippet := Snippet{
		Filename:         filename,
		LineNumber:       line,
		SourceLine:       sourceLine,
		ColumnStart:      colStart,
		ColumnEnd:        colEnd,
		Indicator:        indicator,
		HighlightMessage: highlight,
		Underline:        generateIndicator(colStart, colEnd, indicator),
	}

	const window = 3
	start := line - window
	if start < 1 {
		start = 1
	}
	end := line + window
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < line; i++ {
		snippet.ContextBefore = append(snippet.ContextBefore, lines[i-1])
	}
	for i := line + 1; i <= end; i++ {
		snippet.ContextAfter = append(snippet.ContextAfter, lines[i-1])
	}
	return snippet, true
}

func generateIndicator(start, end int, kind IndicatorType) string {
	width := end - start
	if width < 1 {
		width = 1
	}
	switch kind {
	case IndicatorTilde:
		return strings.Repeat("~", width)
	case IndicatorArrow:
		return strings.Repeat("-", width) + ">"
	case IndicatorBrace, IndicatorCaret:
		return strings.Repeat("^", width)
	default:
		return strings.Repeat("^", width)
	}
}
