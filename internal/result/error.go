// Package result implements the Result[T]/Error/Trace machinery described
// in spec §3.4: a value-or-error sum whose error side carries a cause
// chain plus an ordered call-trace stack of (AST kind, Position) frames —
// one pushed per failing parser call on its way back out.
package result

import (
	"fmt"
	"strings"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
	"github.com/NotDragon/ArgonLang-sub000/internal/source"
	"github.com/NotDragon/ArgonLang-sub000/internal/stack"
)

type Kind int

const (
	// Lexical
	UnexpectedCharacter Kind = iota
	UnterminatedString
	UnterminatedComment
	InvalidNumberLiteral

	// Parse
	UnexpectedToken
	MissingToken
	MissingClosingBracket
	MissingClosingParen
	MissingClosingBrace
	InvalidExpression
	InvalidStatement
	InvalidType
	InvalidFunctionSignature
	InvalidGenericParameters
	InvalidArrayLiteral
	InvalidStructLiteral
	InvalidLambdaExpression

	// Type (reserved for the semantic pass; not produced by this front end)
	TypeMismatch
	UndefinedName
	InvalidGenericInstantiation
	ConstraintNotSatisfied

	// Code generation
	InvalidCodeGeneration
	UnsupportedFeature
	InternalCompilerError
)

var kindNames = map[Kind]string{
	UnexpectedCharacter: "unexpected character", UnterminatedString: "unterminated string",
	UnterminatedComment: "unterminated comment", InvalidNumberLiteral: "invalid number literal",
	UnexpectedToken: "unexpected token", MissingToken: "missing token",
	MissingClosingBracket: "missing closing bracket", MissingClosingParen: "missing closing paren",
	MissingClosingBrace: "missing closing brace", InvalidExpression: "invalid expression",
	InvalidStatement: "invalid statement", InvalidType: "invalid type",
	InvalidFunctionSignature: "invalid function signature", InvalidGenericParameters: "invalid generic parameters",
	InvalidArrayLiteral: "invalid array literal", InvalidStructLiteral: "invalid struct literal",
	InvalidLambdaExpression: "invalid lambda expression", TypeMismatch: "type mismatch",
	UndefinedName: "undefined name", InvalidGenericInstantiation: "invalid generic instantiation",
	ConstraintNotSatisfied: "constraint not satisfied", InvalidCodeGeneration: "invalid code generation",
	UnsupportedFeature: "unsupported feature", InternalCompilerError: "internal compiler error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown error"
}

type Severity int

const (
	Warning Severity = iota
	SeverityError
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Fatal:
		return "fatal error"
	default:
		return "error"
	}
}

// Context holds the optional expected/actual/suggestion/notes a diagnostic
// attaches to its headline message.
type Context struct {
	Expected      string
	Actual        string
	Suggestion    string
	HasSuggestion bool
	Notes         []string
}

// NodeKind is satisfied by the AST package's node-kind tag. Defined here
// (rather than imported) to keep this package free of a dependency on
// internal/ast — Trace only needs a String()-able tag, and internal/ast
// in turn depends on nothing in this package, so either direction would
// have worked; this one keeps the error machinery importable from the
// lexer, which has no notion of AST nodes at all.
type NodeKind interface {
	String() string
}

// Trace is one frame of the parser's call-trace stack: the AST kind being
// built and the token position at which the failing call was entered.
type Trace struct {
	Kind     NodeKind
	Position position.Position
}

func (t Trace) String() string {
	return fmt.Sprintf("%s at %s", t.Kind, t.Position)
}

// Error is the comprehensive diagnostic record: kind, message, position,
// severity, expected/actual context, a cause chain, an optional source
// snippet, and the trace stack pushed by each failing parser frame on its
// way back to the caller.
type Error struct {
	Kind     Kind
	Message  string
	Position position.Position
	Range    *position.Range
	Severity Severity
	Context  Context
	Causes   []*Error
	Snippet  *source.Snippet
	trace    stack.Stack[Trace]
}

func New(kind Kind, message string, pos position.Position) *Error {
	return &Error{Kind: kind, Message: message, Position: pos, Severity: SeverityError}
}

func NewRange(kind Kind, message string, r position.Range) *Error {
	return &Error{Kind: kind, Message: message, Position: r.Start, Range: &r, Severity: SeverityError}
}

func (e *Error) WithExpected(expected string) *Error {
	e.Context.Expected = expected
	return e
}

func (e *Error) WithActual(actual string) *Error {
	e.Context.Actual = actual
	return e
}

func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Context.Suggestion = suggestion
	e.Context.HasSuggestion = true
	return e
}

func (e *Error) WithNote(note string) *Error {
	e.Context.Notes = append(e.Context.Notes, note)
	return e
}

func (e *Error) CausedBy(cause *Error) *Error {
	e.Causes = append(e.Causes, cause)
	return e
}

func (e *Error) WithSnippet(snippet source.Snippet) *Error {
	e.Snippet = &snippet
	return e
}

// WithSeverity overrides the default SeverityError (e.g. for warnings that
// should not abort the pipeline).
func (e *Error) WithSeverity(s Severity) *Error {
	e.Severity = s
	return e
}

// pushTrace returns a shallow copy of e with frame pushed onto an
// independent trace stack — e itself, and any other Result still holding
// it, is left untouched. This is the one non-trivial propagation rule:
// "push a frame on failure".
func (e *Error) pushTrace(frame Trace) *Error {
	cp := *e
	cp.trace = e.trace.Clone()
	cp.trace.Push(frame)
	return &cp
}

func (e *Error) HasTrace() bool {
	return !e.trace.IsEmpty()
}

// TraceFrames returns the trace stack bottom-to-top (outermost call first).
func (e *Error) TraceFrames() []Trace {
	return e.trace.Slice()
}

// InnermostFrame returns the frame at which the error was originally
// raised — the top of the stack, i.e. the last one pushed.
func (e *Error) InnermostFrame() (Trace, bool) {
	return e.trace.TryTop()
}

func (e *Error) Error() string {
	return e.FormattedMessage()
}

// Unwrap exposes the first cause so errors.Is/As can walk into it.
func (e *Error) Unwrap() error {
	if len(e.Causes) == 0 {
		return nil
	}
	return e.Causes[0]
}

// FormattedMessage renders the diagnostic in the layout from spec §6.3.
func (e *Error) FormattedMessage() string {
	var b strings.Builder
	pos := e.Position.String()
	if e.Range != nil {
		pos = e.Range.String()
	}
	fmt.Fprintf(&b, "%s: %s: %s\n", pos, e.Severity, e.Message)

	if e.Context.Expected != "" {
		fmt.Fprintf(&b, "  Expected: %s\n", e.Context.Expected)
	}
	if e.Context.Actual != "" {
		fmt.Fprintf(&b, "  Actual:   %s\n", e.Context.Actual)
	}
	if e.Context.HasSuggestion {
		fmt.Fprintf(&b, "  Suggestion: %s\n", e.Context.Suggestion)
	}
	for _, note := range e.Context.Notes {
		fmt.Fprintf(&b, "  Note: %s\n", note)
	}

	if e.Snippet != nil {
		writeSnippet(&b, *e.Snippet)
	}

	for _, cause := range e.Causes {
		fmt.Fprintf(&b, "  Caused by: %s\n", cause.FormattedMessage())
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeSnippet(b *strings.Builder, s source.Snippet) {
	lineNum := s.LineNumber - len(s.ContextBefore)
	for _, line := range s.ContextBefore {
		fmt.Fprintf(b, "%d | %s\n", lineNum, line)
		lineNum++
	}
	fmt.Fprintf(b, "%d | %s\n", s.LineNumber, s.SourceLine)

	pad := s.ColumnStart - 1
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(b, "  | %s%s", strings.Repeat(" ", pad), s.Underline)
	if s.HighlightMessage != "" {
		fmt.Fprintf(b, " %s", s.HighlightMessage)
	}
	b.WriteString("\n")

	lineNum = s.LineNumber + 1
	for _, line := range s.ContextAfter {
		fmt.Fprintf(b, "%d | %s\n", lineNum, line)
		lineNum++
	}
}
