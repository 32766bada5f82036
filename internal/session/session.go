// Package session drives a Parser over line oriented input.
//
// Blank lines and lines starting with "#" are skipped, and a line consisting of exactly "end"
// stops processing. Each remaining line is rendered as a diagram or evaluated, depending on the
// Mode. A failing line prints an error line and, unless FailFast is set, processing continues
// with the next line.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/exprtree"
	"github.com/alecthomas/exprtree/lexer"
)

// Mode selects what is done with each parsed line.
type Mode int

const (
	// Render each line as a Mermaid diagram.
	Render Mode = iota
	// Evaluate each line, or check it against an expected value when the line contains "=".
	Evaluate
)

func (m Mode) String() string {
	switch m {
	case Render:
		return "render"
	case Evaluate:
		return "evaluate"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Stats summarises a run.
type Stats struct {
	// Lines processed, excluding skipped lines.
	Lines int
	// Skipped blank and comment lines.
	Skipped int
	// Failed lines.
	Failed int
	// Nodes in all successfully parsed trees, and how many of those were operators and literals.
	Nodes     int
	Operators int
	Literals  int
}

// parsed accumulates the sizes of the trees parsed during a run.
type parsed struct {
	nodes  int
	counts exprtree.Counts
}

func (p *parsed) record(tree *exprtree.Tree) {
	counts := tree.Count()
	p.nodes += tree.Nodes()
	p.counts.Operators += counts.Operators
	p.counts.Literals += counts.Literals
}

func (p parsed) add(stats Stats) Stats {
	stats.Nodes = p.nodes
	stats.Operators = p.counts.Operators
	stats.Literals = p.counts.Literals
	return stats
}

// LineTooLongError is reported for an input line longer than the Session's line length limit.
type LineTooLongError struct {
	Pos   lexer.Position
	Limit int
}

var _ exprtree.Error = &LineTooLongError{}

func (l *LineTooLongError) Error() string { return lexer.FormatError(l.Pos, l.Message()) }
func (l *LineTooLongError) Message() string { // nolint: golint
	return fmt.Sprintf("line longer than %d bytes", l.Limit)
}
func (l *LineTooLongError) Position() lexer.Position { return l.Pos } // nolint: golint

// An Option to modify the behaviour of a Session.
type Option func(s *Session) error

// FailFast stops processing at the first line that fails.
func FailFast() Option {
	return func(s *Session) error {
		s.failFast = true
		return nil
	}
}

// ParserOptions are passed through to exprtree.New.
func ParserOptions(options ...exprtree.Option) Option {
	return func(s *Session) error {
		s.parserOptions = append(s.parserOptions, options...)
		return nil
	}
}

// Filename reported in error positions.
func Filename(filename string) Option {
	return func(s *Session) error {
		s.filename = filename
		s.parserOptions = append(s.parserOptions, exprtree.Filename(filename))
		return nil
	}
}

// MaxLineLength sets the longest line, in bytes, that is processed. Longer lines fail with a
// *LineTooLongError and processing continues with the next line.
func MaxLineLength(limit int) Option {
	return func(s *Session) error {
		if limit < 1 {
			return fmt.Errorf("line length limit must be at least 1, not %d", limit)
		}
		s.maxLineLength = limit
		return nil
	}
}

// Trace calls fn with every successfully parsed tree.
func Trace(fn func(tree *exprtree.Tree)) Option {
	return func(s *Session) error {
		s.trace = fn
		return nil
	}
}

// A Session processes lines in a single Mode.
type Session struct {
	mode          Mode
	parser        *exprtree.Parser
	parserOptions []exprtree.Option
	filename      string
	failFast      bool
	trace         func(tree *exprtree.Tree)
	maxLineLength int
	parsed        parsed
}

// DefaultMaxLineLength is the longest line, in bytes, a Session processes unless MaxLineLength
// is used.
const DefaultMaxLineLength = 1024 * 1024

// New creates a Session.
func New(mode Mode, options ...Option) (*Session, error) {
	s := &Session{mode: mode, maxLineLength: DefaultMaxLineLength}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	parser, err := exprtree.New(s.parserOptions...)
	if err != nil {
		return nil, err
	}
	s.parser = parser
	return s, nil
}

// Run is a convenience function that creates a Session and runs it over r.
func Run(r io.Reader, w io.Writer, mode Mode, options ...Option) (Stats, error) {
	s, err := New(mode, options...)
	if err != nil {
		return Stats{}, err
	}
	return s.Run(r, w)
}

// Run reads lines from r until EOF or an "end" line, writing results to w.
//
// The returned error is only non-nil if reading or writing fails. Failures of individual lines,
// including lines longer than the line length limit, are written to w and counted in Stats.
func (s *Session) Run(r io.Reader, w io.Writer) (Stats, error) {
	s.parsed = parsed{}
	stats := Stats{}
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, tooLong, err := s.readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return s.parsed.add(stats), err
		}
		line = strings.TrimSuffix(line, "\r")
		if !tooLong && (strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")) {
			stats.Skipped++
			continue
		}
		if !tooLong && line == "end" {
			break
		}
		stats.Lines++
		var out string
		if tooLong {
			err = &LineTooLongError{Pos: lexer.Position{Filename: s.filename}, Limit: s.maxLineLength}
		} else {
			out, err = s.Line(line)
		}
		if err != nil {
			stats.Failed++
			out = FormatError(err)
		}
		if _, werr := io.WriteString(w, out); werr != nil {
			return s.parsed.add(stats), werr
		}
		if err != nil && s.failFast {
			break
		}
	}
	return s.parsed.add(stats), nil
}

// readLine returns the next line without its line terminator. Lines longer than
// maxLineLength are consumed and discarded, and reported with tooLong set.
func (s *Session) readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, rerr := r.ReadLine()
		if rerr != nil {
			if rerr == io.EOF && (len(buf) > 0 || tooLong) {
				return string(buf), tooLong, nil
			}
			return "", false, rerr
		}
		if !tooLong {
			if len(buf)+len(chunk) > s.maxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Line processes a single line and returns its output.
//
// Panics are recovered and returned as errors that FormatError reports as "exception".
func (s *Session) Line(line string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	if s.mode == Render {
		return s.render(line)
	}
	return s.evaluate(line)
}

func (s *Session) parse(line string) (*exprtree.Tree, error) {
	tree, err := s.parser.ParseString(line)
	if err != nil {
		return nil, err
	}
	s.parsed.record(tree)
	if s.trace != nil {
		s.trace(tree)
	}
	return tree, nil
}

func (s *Session) render(line string) (string, error) {
	tree, err := s.parse(line)
	if err != nil {
		return "", err
	}
	return tree.DiagramString(), nil
}

// evaluate a bare expression, or "<expr> = <expected>" which prints 1 on a match and 0 otherwise.
func (s *Session) evaluate(line string) (string, error) {
	expr, expected, check := strings.Cut(line, "=")
	tree, err := s.parse(expr)
	if err != nil {
		return "", err
	}
	value, err := tree.Eval()
	if err != nil {
		return "", err
	}
	if !check {
		return tree.String() + " = " + strconv.FormatInt(value, 10) + "\n\n", nil
	}
	want, err := exprtree.ParseInt(strings.TrimSpace(expected), s.expectedPos(line, expr, expected))
	if err != nil {
		return "", err
	}
	if value == want {
		return "1\n", nil
	}
	return "0\n", nil
}

func (s *Session) expectedPos(line, expr, expected string) lexer.Position {
	offset := len(expr) + 1 + len(expected) - len(strings.TrimLeftFunc(expected, unicode.IsSpace))
	return lexer.Position{
		Filename: s.filename,
		Offset:   offset,
		Line:     1,
		Column:   utf8.RuneCountInString(line[:offset]) + 1,
	}
}

// FormatError returns the output line for a failed input line.
//
// Errors from parsing or evaluation print as "Error: <message>", anything else as "exception".
func FormatError(err error) string {
	var structured exprtree.Error
	if errors.As(err, &structured) {
		return "Error: " + structured.Message() + "\n"
	}
	return "exception\n"
}

type panicError struct {
	value interface{}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}
