// Package emitter lowers an internal/ast tree into target C++ source text
// (spec §4.4/§4.5): a visitor-driven walk that prints straight-line C++,
// routes runtime constructs (par/await, filter/map/reduce, match, array/
// struct destructuring, try) through the internal/runtime/templates
// helpers, and tracks which of those templates the emitted unit actually
// needs so the caller only stitches in what's used.
package emitter

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
)

// Dependency tags one emitted unit's generated code may require support
// for, at runtime/templates' granularity.
const (
	DepScopeFutures = "scope_futures" // ScopeGuard/ScopeManager/ArgonFuture, par/await
	DepFunctional   = "functional"    // filter/map/reduce/map_pipe
	DepPattern      = "pattern"       // match/match_range/match_wildcard/match_value
	DepDestructure  = "destructure"   // destructure_array_element/rest, CompoundDestructure
	DepTry          = "try"           // Try<T,E>/try_catch
	DepBigInt       = "bigint"        // i128/u128 literal support
)

// Unit is one emitted translation unit: the generated C++ text plus the
// runtime dependency tags it exercises, so cmd/argonc can splice in only
// the templates actually needed.
type Unit struct {
	Source       string
	Dependencies map[string]bool
}

// Emitter walks a *ast.ProgramNode and prints C++. Constructed fresh per
// program; not safe for concurrent use (mirrors Parser).
type Emitter struct {
	out       strings.Builder
	deps      map[string]bool
	indent    int
	anonCount int
}

// uuidNamespace is a fixed namespace UUID this emitter hashes synthesized
// names against via uuid.NewSHA1, so two emits of the same program
// produce byte-identical output (no emitter-side randomness).
var uuidNamespace = uuid.MustParse("6f9a3c1e-2b77-4e33-9c4a-9c2a9f6d9a21")

func New() *Emitter {
	return &Emitter{deps: make(map[string]bool)}
}

// Emit lowers program to a Unit. Mirrors lexer.Tokenize/parser.Parse's
// "free function wrapping a fresh value" shape. Fails with
// InternalCompilerError when the program does not have exactly one
// top-level `main` (spec §3.3 invariant, enforced here rather than in the
// parser since a file may legitimately be parsed standalone before being
// linked with others).
func Emit(program *ast.ProgramNode) result.Result[Unit] {
	mains := program.MainFunctions()
	if len(mains) == 0 {
		return result.Fail[Unit](result.New(result.InternalCompilerError,
			"no top-level function named main", program.Pos()).
			WithSuggestion("every translated program needs exactly one func main"))
	}
	if len(mains) > 1 {
		return result.Fail[Unit](result.New(result.InternalCompilerError,
			"multiple top-level functions named main", mains[1].Pos()).
			WithNote(fmt.Sprintf("first definition at %s", mains[0].Pos())))
	}
	e := New()
	if err := e.emitProgram(program); err != nil {
		return result.Fail[Unit](err)
	}
	return result.Ok(Unit{Source: e.out.String(), Dependencies: e.deps})
}

func (e *Emitter) require(dep string) { e.deps[dep] = true }

func (e *Emitter) writeLine(format string, args ...interface{}) {
	e.out.WriteString(strings.Repeat("    ", e.indent))
	fmt.Fprintf(&e.out, format, args...)
	e.out.WriteString("\n")
}

func (e *Emitter) write(format string, args ...interface{}) {
	fmt.Fprintf(&e.out, format, args...)
}

// freshName synthesizes a UUID-namespaced identifier for an anonymous
// construct (a struct literal with no declared type, a par/block scope
// guard) — deterministic per call site via a monotonic counter mixed into
// the SHA1 namespace, so re-emitting the same program twice yields the
// same names.
func (e *Emitter) freshName(prefix string) string {
	e.anonCount++
	id := uuid.NewSHA1(uuidNamespace, []byte(fmt.Sprintf("%s#%d", prefix, e.anonCount)))
	return fmt.Sprintf("__argon_%s_%s", prefix, strings.ReplaceAll(id.String(), "-", ""))
}

func (e *Emitter) emitProgram(program *ast.ProgramNode) *result.Error {
	e.writeLine("// generated by argonc; do not edit")
	e.writeLine("#include \"ArgonRuntime.h\"")
	e.writeLine("")
	e.emitBuiltinConcepts()
	for _, decl := range program.Declarations {
		if err := e.emitTopLevel(decl); err != nil {
			return err
		}
		e.writeLine("")
	}
	return nil
}

// emitBuiltinConcepts emits the two built-in generic constraints the
// emitter knows about (spec §4.3 "Built-in constraints known by the
// emitter: Number ⇒ arithmetic types; Type ⇒ unconstrained") once at
// program start, ahead of any user constraint declaration that might
// reference them.
func (e *Emitter) emitBuiltinConcepts() {
	e.writeLine("template<typename T> concept Number = std::is_arithmetic_v<T>;")
	e.writeLine("template<typename T> concept Type = true;")
	e.writeLine("template<typename T, typename K> concept same_type_as = std::is_same_v<T, K>;")
	e.writeLine("")
}

func (e *Emitter) emitTopLevel(stmt ast.Statement) *result.Error {
	switch s := stmt.(type) {
	case *ast.ModuleDeclarationNode:
		e.writeLine("namespace %s {", strings.Join(s.Path, "::"))
		e.indent++
		return nil
	case *ast.ImportStatementNode:
		e.writeLine("#include \"%s.h\"", strings.Join(s.Path, "/"))
		return nil
	default:
		return e.emitStatement(stmt)
	}
}
