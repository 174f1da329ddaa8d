package parser

import (
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/lexer"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
)

func parseSource(t *testing.T, src string) *ast.ProgramNode {
	t.Helper()
	toks := lexer.Tokenize("test.arg", src)
	if toks.HasError() {
		t.Fatalf("lex error: %v", toks.Err())
	}
	prog := Parse("test.arg", toks.Value())
	if prog.HasError() {
		t.Fatalf("parse error: %v", prog.Err())
	}
	return prog.Value()
}

func parseExprSource(t *testing.T, src string) ast.Expression {
	t.Helper()
	toks := lexer.Tokenize("test.arg", src)
	if toks.HasError() {
		t.Fatalf("lex error: %v", toks.Err())
	}
	p := New("test.arg", toks.Value())
	e := p.ParseExpression()
	if e.HasError() {
		t.Fatalf("parse error: %v", e.Err())
	}
	return e.Value()
}

func TestParseVariableDeclaration(t *testing.T) {
	prog := parseSource(t, "def x: i32 = 5;")
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Declarations))
	}
	decl, ok := prog.Declarations[0].(*ast.VariableDeclarationNode)
	if !ok {
		t.Fatalf("expected VariableDeclarationNode, got %T", prog.Declarations[0])
	}
	if decl.Name != "x" || !decl.Mutable {
		t.Errorf("unexpected decl: %+v", decl)
	}
}

func TestParseConstIsImmutable(t *testing.T) {
	prog := parseSource(t, "const y = 1;")
	decl := prog.Declarations[0].(*ast.VariableDeclarationNode)
	if decl.Mutable {
		t.Errorf("const declaration should not be mutable")
	}
}

func TestParseFunctionDefinition(t *testing.T) {
	prog := parseSource(t, "func add(a: i32, b: i32) i32 { return a + b; }")
	fn, ok := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	if !ok {
		t.Fatalf("expected FunctionDefinitionNode, got %T", prog.Declarations[0])
	}
	if fn.Name != "add" || len(fn.Parameters) != 2 {
		t.Errorf("unexpected function: %+v", fn)
	}
	body, ok := fn.Body.(*ast.BlockStatementNode)
	if !ok || len(body.Statements) != 1 {
		t.Fatalf("expected a single-statement block body, got %+v", fn.Body)
	}
}

func TestParseExpressionBodiedFunction(t *testing.T) {
	prog := parseSource(t, "func add(a: i32, b: i32) i32 -> a + b;")
	fn, ok := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	if !ok {
		t.Fatalf("expected FunctionDefinitionNode, got %T", prog.Declarations[0])
	}
	stmt, ok := fn.Body.(*ast.ExpressionStatementNode)
	if !ok {
		t.Fatalf("expected an expression-statement body, got %T", fn.Body)
	}
	if _, ok := stmt.Expression.(*ast.BinaryExpressionNode); !ok {
		t.Fatalf("expected 'a + b' as the wrapped expression, got %T", stmt.Expression)
	}
}

func TestParseExactlyOneMainInvariant(t *testing.T) {
	prog := parseSource(t, "func main() { return; }")
	if !prog.HasExactlyOneMain() {
		t.Errorf("expected exactly one main function")
	}
}

func TestParseClassWithVisibilityAndConstructor(t *testing.T) {
	prog := parseSource(t, `
		class Point {
			pub def x: i32 = 0;
			pri def y: i32 = 0;
			pub constructor(x: i32, y: i32) { return; }
			pub func magnitude() i32 { return x; }
		}
	`)
	cls, ok := prog.Declarations[0].(*ast.ClassDeclarationNode)
	if !ok {
		t.Fatalf("expected ClassDeclarationNode, got %T", prog.Declarations[0])
	}
	if len(cls.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(cls.Members))
	}
	if cls.Members[0].Field == nil || cls.Members[0].Visibility != ast.Public {
		t.Errorf("expected public field for member 0: %+v", cls.Members[0])
	}
	if cls.Members[1].Field == nil || cls.Members[1].Visibility != ast.Private {
		t.Errorf("expected private field for member 1: %+v", cls.Members[1])
	}
	if cls.Members[2].Constructor == nil {
		t.Errorf("expected constructor for member 2: %+v", cls.Members[2])
	}
	if cls.Members[3].Method == nil {
		t.Errorf("expected method for member 3: %+v", cls.Members[3])
	}
}

func TestParseIfElseIfChain(t *testing.T) {
	prog := parseSource(t, `
		func classify(x: i32) {
			if (x < 0) { return; } else if (x == 0) { return; } else { return; }
		}
	`)
	fn := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	body := fn.Body.(*ast.BlockStatementNode)
	ifStmt := body.Statements[0].(*ast.IfStatementNode)
	elseIf, ok := ifStmt.Else.(*ast.IfStatementNode)
	if !ok {
		t.Fatalf("expected else branch to be a nested IfStatementNode, got %T", ifStmt.Else)
	}
	if elseIf.Else == nil {
		t.Errorf("expected a final else branch")
	}
}

func TestParseDoWhileTrailingCondition(t *testing.T) {
	prog := parseSource(t, `
		func loop() {
			dowhile { break; } while (true);
		}
	`)
	fn := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	body := fn.Body.(*ast.BlockStatementNode)
	ws, ok := body.Statements[0].(*ast.WhileStatementNode)
	if !ok || !ws.DoWhile {
		t.Fatalf("expected a dowhile statement, got %+v", body.Statements[0])
	}
}

func TestParseForStatement(t *testing.T) {
	prog := parseSource(t, `
		func sumAll(xs: i32[]) {
			for (item -> xs) { yield item; }
		}
	`)
	fn := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	body := fn.Body.(*ast.BlockStatementNode)
	fs, ok := body.Statements[0].(*ast.ForStatementNode)
	if !ok || fs.Variable != "item" || fs.VariableType != nil {
		t.Fatalf("expected for statement over 'item' with no declared type, got %+v", body.Statements[0])
	}
}

func TestParseForStatementWithExplicitType(t *testing.T) {
	prog := parseSource(t, `
		func sumAll(xs: i32[]) {
			for (item: i32 -> xs) { yield item; }
		}
	`)
	fn := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	body := fn.Body.(*ast.BlockStatementNode)
	fs, ok := body.Statements[0].(*ast.ForStatementNode)
	if !ok || fs.Variable != "item" {
		t.Fatalf("expected for statement over 'item', got %+v", body.Statements[0])
	}
	if _, ok := fs.VariableType.(*ast.IdentifierTypeNode); !ok {
		t.Fatalf("expected an explicit i32 loop-variable type, got %+v", fs.VariableType)
	}
}

func TestParseReturnSuper(t *testing.T) {
	prog := parseSource(t, `
		class Base {}
		class Derived {
			pub constructor(x: i32) { return super(x); }
		}
	`)
	cls := prog.Declarations[1].(*ast.ClassDeclarationNode)
	ctor := cls.Members[0].Constructor
	ret := ctor.Body.(*ast.BlockStatementNode).Statements[0].(*ast.ReturnStatementNode)
	if !ret.Super {
		t.Errorf("expected Super=true on 'return super(...)'")
	}
	call, ok := ret.Value.(*ast.FunctionCallExpressionNode)
	if !ok || len(call.Arguments) != 1 {
		t.Fatalf("expected a single-argument call wrapping the forwarded args, got %+v", ret.Value)
	}
}

func TestParseUnionDeclaration(t *testing.T) {
	prog := parseSource(t, `
		union Shape {
			Circle(f64),
			Rectangle(f64, f64),
			Point
		}
	`)
	u := prog.Declarations[0].(*ast.UnionDeclarationNode)
	if len(u.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(u.Variants))
	}
	if u.Variants[0].Name != "Circle" || len(u.Variants[0].Fields) != 1 {
		t.Errorf("unexpected first variant: %+v", u.Variants[0])
	}
	if len(u.Variants[2].Fields) != 0 {
		t.Errorf("expected a field-less variant for Point: %+v", u.Variants[2])
	}
}

func TestParseEnumDeclaration(t *testing.T) {
	prog := parseSource(t, `enum Color { Red, Green, Blue = 10 }`)
	e := prog.Declarations[0].(*ast.EnumDeclarationNode)
	if len(e.Members) != 3 || e.Members[2].Value == nil {
		t.Fatalf("unexpected enum: %+v", e)
	}
}

func TestParseTraitWithTypeconstAndWhere(t *testing.T) {
	prog := parseSource(t, `
		trait Comparable<T> where T: Ordered {
			typeconst Output: i32;
			func compareTo(other: T) i32;
		}
	`)
	tr := prog.Declarations[0].(*ast.TraitDeclarationNode)
	if tr.Name != "Comparable" || len(tr.TypeConsts) != 1 || len(tr.Methods) != 1 || len(tr.Where) != 1 {
		t.Fatalf("unexpected trait: %+v", tr)
	}
}

func TestParseInterIsAliasForTrait(t *testing.T) {
	prog := parseSource(t, `inter Runnable { func run(); }`)
	tr, ok := prog.Declarations[0].(*ast.TraitDeclarationNode)
	if !ok || tr.Name != "Runnable" {
		t.Fatalf("expected 'inter' to parse as a TraitDeclarationNode, got %+v", prog.Declarations[0])
	}
}

func TestParseConstraintDeclaration(t *testing.T) {
	prog := parseSource(t, `constraint Numeric = Add & Sub;`)
	c := prog.Declarations[0].(*ast.ConstraintDeclarationNode)
	if len(c.Requires) != 2 {
		t.Fatalf("expected 2 required types, got %d", len(c.Requires))
	}
}

func TestParseImplStatement(t *testing.T) {
	prog := parseSource(t, `
		impl Comparable for Point {
			func compareTo(other: Point) i32 { return 0; }
		}
	`)
	impl := prog.Declarations[0].(*ast.ImplStatementNode)
	if len(impl.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(impl.Methods))
	}
}

func TestParseModuleAndImport(t *testing.T) {
	prog := parseSource(t, "module app::core; import std::io;")
	mod, ok := prog.Declarations[0].(*ast.ModuleDeclarationNode)
	if !ok || len(mod.Path) != 2 {
		t.Fatalf("unexpected module decl: %+v", prog.Declarations[0])
	}
	imp, ok := prog.Declarations[1].(*ast.ImportStatementNode)
	if !ok || len(imp.Path) != 2 {
		t.Fatalf("unexpected import decl: %+v", prog.Declarations[1])
	}
}

func TestParseGenericTypeArgsVsLessThan(t *testing.T) {
	prog := parseSource(t, "def a: Box<i32> = b;")
	decl := prog.Declarations[0].(*ast.VariableDeclarationNode)
	generic, ok := decl.Type.(*ast.GenericTypeNode)
	if !ok || generic.Name != "Box" || len(generic.Args) != 1 {
		t.Fatalf("expected a generic type Box<i32>, got %+v", decl.Type)
	}
}

func TestParseLessThanIsNotMistakenForGenerics(t *testing.T) {
	expr := parseExprSource(t, "a < b")
	cmp, ok := expr.(*ast.ComparisonExpressionNode)
	if !ok || cmp.Operator != "<" {
		t.Fatalf("expected a less-than comparison, got %+v", expr)
	}
}

func TestParseLambdaVsParenExpression(t *testing.T) {
	lambda := parseExprSource(t, "(x: i32) => x")
	if _, ok := lambda.(*ast.LambdaExpressionNode); !ok {
		t.Fatalf("expected a LambdaExpressionNode, got %T", lambda)
	}
	paren := parseExprSource(t, "(1 + 2)")
	if _, ok := paren.(*ast.BinaryExpressionNode); !ok {
		t.Fatalf("expected the parenthesized binary expression to unwrap, got %T", paren)
	}
}

func TestParseToExpressionIsNotComparison(t *testing.T) {
	expr := parseExprSource(t, "0 to 10")
	to, ok := expr.(*ast.ToExpressionNode)
	if !ok || to.Inclusive {
		t.Fatalf("expected a non-inclusive ToExpressionNode, got %+v", expr)
	}
	inclusive := parseExprSource(t, "0 to= 10")
	toIncl, ok := inclusive.(*ast.ToExpressionNode)
	if !ok || !toIncl.Inclusive {
		t.Fatalf("expected an inclusive ToExpressionNode, got %+v", inclusive)
	}
}

func TestParseTernaryExpression(t *testing.T) {
	expr := parseExprSource(t, "5 > 3 ? 1 : 0")
	tern, ok := expr.(*ast.TernaryExpressionNode)
	if !ok {
		t.Fatalf("expected a TernaryExpressionNode, got %T", expr)
	}
	if _, ok := tern.Condition.(*ast.ComparisonExpressionNode); !ok {
		t.Fatalf("expected condition to be a comparison, got %T", tern.Condition)
	}
	if _, ok := tern.Then.(*ast.IntegralLiteralNode); !ok {
		t.Fatalf("expected then-branch to be an integral literal, got %T", tern.Then)
	}
	if _, ok := tern.Else.(*ast.IntegralLiteralNode); !ok {
		t.Fatalf("expected else-branch to be an integral literal, got %T", tern.Else)
	}
}

func TestParseNestedTernaryIsRightAssociative(t *testing.T) {
	expr := parseExprSource(t, "a ? b : c ? d : e")
	outer, ok := expr.(*ast.TernaryExpressionNode)
	if !ok {
		t.Fatalf("expected outer TernaryExpressionNode, got %T", expr)
	}
	if _, ok := outer.Else.(*ast.TernaryExpressionNode); !ok {
		t.Fatalf("expected else-branch to be a nested ternary, got %T", outer.Else)
	}
}

func TestParseIndexVariants(t *testing.T) {
	single := parseExprSource(t, "arr[0]")
	if _, ok := single.(*ast.IndexExpressionNode); !ok {
		t.Fatalf("expected IndexExpressionNode, got %T", single)
	}
	slice := parseExprSource(t, "arr[0:5]")
	if _, ok := slice.(*ast.SliceExpressionNode); !ok {
		t.Fatalf("expected SliceExpressionNode, got %T", slice)
	}
	openSlice := parseExprSource(t, "arr[0:]")
	sliceNode, ok := openSlice.(*ast.SliceExpressionNode)
	if !ok || sliceNode.High != nil {
		t.Fatalf("expected an open-ended SliceExpressionNode, got %+v", openSlice)
	}
	multi := parseExprSource(t, "arr[0, 1, 2]")
	multiNode, ok := multi.(*ast.MultiIndexExpressionNode)
	if !ok || len(multiNode.Indices) != 3 {
		t.Fatalf("expected MultiIndexExpressionNode with 3 indices, got %+v", multi)
	}
}

func TestParseMatchExpressionWithGuardAndPatterns(t *testing.T) {
	expr := parseExprSource(t, `
		match x {
			0 -> 1,
			n if n < 0 -> 2,
			_ -> 3
		}
	`)
	m, ok := expr.(*ast.MatchExpressionNode)
	if !ok || len(m.Branches) != 3 {
		t.Fatalf("expected a 3-branch match expression, got %+v", expr)
	}
	if _, ok := m.Branches[0].Pattern.(*ast.LiteralPatternNode); !ok {
		t.Errorf("expected branch 0 pattern to be a literal pattern, got %T", m.Branches[0].Pattern)
	}
	idPat, ok := m.Branches[1].Pattern.(*ast.IdentifierPatternNode)
	if !ok || idPat.Guard == nil {
		t.Errorf("expected branch 1 pattern to carry a guard, got %+v", m.Branches[1].Pattern)
	}
	if _, ok := m.Branches[2].Pattern.(*ast.WildcardPatternNode); !ok {
		t.Errorf("expected branch 2 pattern to be a wildcard, got %T", m.Branches[2].Pattern)
	}
}

func TestParseRangePattern(t *testing.T) {
	expr := parseExprSource(t, "match x { 0 to 10 -> 1, _ -> 2 }")
	m := expr.(*ast.MatchExpressionNode)
	rp, ok := m.Branches[0].Pattern.(*ast.RangePatternNode)
	if !ok || rp.Inclusive {
		t.Fatalf("expected a non-inclusive RangePatternNode, got %+v", m.Branches[0].Pattern)
	}
}

func TestParseTypePattern(t *testing.T) {
	expr := parseExprSource(t, "match v { i32(x) -> x, _ -> 0 }")
	m := expr.(*ast.MatchExpressionNode)
	tp, ok := m.Branches[0].Pattern.(*ast.TypePatternNode)
	if !ok || tp.Name != "x" {
		t.Fatalf("expected a TypePatternNode binding 'x', got %+v", m.Branches[0].Pattern)
	}
	idType, ok := tp.Type.(*ast.IdentifierTypeNode)
	if !ok || idType.Name != "i32" {
		t.Fatalf("expected the type pattern's type to be i32, got %+v", tp.Type)
	}
}

func TestParseConstructorAndStructPatterns(t *testing.T) {
	expr := parseExprSource(t, `
		match shape {
			Circle(r) -> r,
			Rectangle { width: w, height: h } -> w,
			_ -> 0
		}
	`)
	m := expr.(*ast.MatchExpressionNode)
	ctor, ok := m.Branches[0].Pattern.(*ast.ConstructorPatternNode)
	if !ok || ctor.Name != "Circle" || len(ctor.Arguments) != 1 {
		t.Fatalf("unexpected constructor pattern: %+v", m.Branches[0].Pattern)
	}
	structPat, ok := m.Branches[1].Pattern.(*ast.StructPatternNode)
	if !ok || structPat.TypeName != "Rectangle" || len(structPat.Fields) != 2 {
		t.Fatalf("unexpected struct pattern: %+v", m.Branches[1].Pattern)
	}
}

func TestParseArrayPatternWithRest(t *testing.T) {
	expr := parseExprSource(t, "match xs { [a, b, ...rest] -> a, _ -> 0 }")
	m := expr.(*ast.MatchExpressionNode)
	ap, ok := m.Branches[0].Pattern.(*ast.ArrayPatternNode)
	if !ok || len(ap.Elements) != 2 || ap.Rest != "rest" {
		t.Fatalf("unexpected array pattern: %+v", m.Branches[0].Pattern)
	}
}

func TestParseOwnershipPrefixedTypes(t *testing.T) {
	cases := []struct {
		src   string
		qual  ast.Ownership
	}{
		{"def a: *i32 = b;", ast.OwnershipPointer},
		{"def a: ~i32 = b;", ast.OwnershipOwned},
		{"def a: &i32 = b;", ast.OwnershipReference},
		{"def a: &&i32 = b;", ast.OwnershipMutableReference},
	}
	for _, c := range cases {
		prog := parseSource(t, c.src)
		decl := prog.Declarations[0].(*ast.VariableDeclarationNode)
		pt, ok := decl.Type.(*ast.PrefixedTypeNode)
		if !ok || pt.Qualifier != c.qual {
			t.Errorf("%q: expected qualifier %v, got %+v", c.src, c.qual, decl.Type)
		}
	}
}

func TestParseSumAndIntersectionTypes(t *testing.T) {
	prog := parseSource(t, "def a: i32 | str = b;")
	decl := prog.Declarations[0].(*ast.VariableDeclarationNode)
	sum, ok := decl.Type.(*ast.SumTypeNode)
	if !ok || len(sum.Alternatives) != 2 {
		t.Fatalf("expected a 2-alternative sum type, got %+v", decl.Type)
	}

	prog2 := parseSource(t, "def b: Reader & Writer = c;")
	decl2 := prog2.Declarations[0].(*ast.VariableDeclarationNode)
	inter, ok := decl2.Type.(*ast.IntersectionTypeNode)
	if !ok || len(inter.Members) != 2 {
		t.Fatalf("expected a 2-member intersection type, got %+v", decl2.Type)
	}
}

func TestParseArrayTypeSuffixes(t *testing.T) {
	prog := parseSource(t, "def a: i32[] = b; def c: i32[10] = d;")
	decl := prog.Declarations[0].(*ast.VariableDeclarationNode)
	arr, ok := decl.Type.(*ast.ArrayTypeNode)
	if !ok || arr.Size != nil {
		t.Fatalf("expected an unsized array type, got %+v", decl.Type)
	}
	decl2 := prog.Declarations[1].(*ast.VariableDeclarationNode)
	arr2, ok := decl2.Type.(*ast.ArrayTypeNode)
	if !ok || arr2.Size == nil {
		t.Fatalf("expected a sized array type, got %+v", decl2.Type)
	}
}

func TestParseGenericFunctionDeclarationWithBounds(t *testing.T) {
	prog := parseSource(t, `
		func max<T: Comparable & Ordered>(a: T, b: T) T { return a; }
	`)
	fn := prog.Declarations[0].(*ast.FunctionDefinitionNode)
	if len(fn.Generics) != 1 || len(fn.Generics[0].Bounds) != 2 {
		t.Fatalf("expected 1 generic param with 2 bounds, got %+v", fn.Generics)
	}
}

func TestParseGenericCallSyntax(t *testing.T) {
	expr := parseExprSource(t, "makeBox::<i32>(5)")
	call, ok := expr.(*ast.FunctionCallExpressionNode)
	if !ok || len(call.GenericArgs) != 1 || len(call.Arguments) != 1 {
		t.Fatalf("expected a generic call with 1 type arg and 1 value arg, got %+v", expr)
	}
}

func TestParseStructLiteralAnonymous(t *testing.T) {
	expr := parseExprSource(t, "{ x: 1, y: 2 }")
	s, ok := expr.(*ast.StructExpressionNode)
	if !ok || s.TypeName != "" || len(s.Fields) != 2 {
		t.Fatalf("expected an anonymous 2-field struct literal, got %+v", expr)
	}
}

func TestParsePrecedenceOfFilterMapReduce(t *testing.T) {
	// spec §4.3: filter ('|') binds loosest, then map ('&'), then reduce
	// ('^') tightest — so "xs | pred & transform ^ combine" must read as
	// xs | (pred & (transform ^ combine)).
	expr := parseExprSource(t, "xs | pred & transform ^ combine")
	top, ok := expr.(*ast.BinaryExpressionNode)
	if !ok || top.Operator != "|" {
		t.Fatalf("expected filter ('|') to bind loosest of the three, got %+v", expr)
	}
	mid, ok := top.Right.(*ast.BinaryExpressionNode)
	if !ok || mid.Operator != "&" {
		t.Fatalf("expected map ('&') nested under filter, got %+v", top.Right)
	}
	inner, ok := mid.Right.(*ast.BinaryExpressionNode)
	if !ok || inner.Operator != "^" {
		t.Fatalf("expected reduce ('^') to bind tightest of the three, got %+v", mid.Right)
	}
}

func TestParsePostfixIncrementVsPrefix(t *testing.T) {
	prefix := parseExprSource(t, "++x")
	pre, ok := prefix.(*ast.UnaryExpressionNode)
	if !ok || pre.Postfix {
		t.Fatalf("expected a prefix increment, got %+v", prefix)
	}
	postfix := parseExprSource(t, "x++")
	post, ok := postfix.(*ast.UnaryExpressionNode)
	if !ok || !post.Postfix {
		t.Fatalf("expected a postfix increment, got %+v", postfix)
	}
}

func TestParseTryExpression(t *testing.T) {
	expr := parseExprSource(t, "try risky()")
	if _, ok := expr.(*ast.TryExpressionNode); !ok {
		t.Fatalf("expected a TryExpressionNode, got %T", expr)
	}
}

func TestParseParallelAwaitLazy(t *testing.T) {
	par := parseExprSource(t, "par { 1; }")
	if _, ok := par.(*ast.ParallelExpressionNode); !ok {
		t.Fatalf("expected a ParallelExpressionNode, got %T", par)
	}
	await := parseExprSource(t, "await future")
	if _, ok := await.(*ast.AwaitExpressionNode); !ok {
		t.Fatalf("expected an AwaitExpressionNode, got %T", await)
	}
	lazy := parseExprSource(t, "lazy computeOnce()")
	if _, ok := lazy.(*ast.LazyExpressionNode); !ok {
		t.Fatalf("expected a LazyExpressionNode, got %T", lazy)
	}
}

func TestParseMalformedDeclarationReportsError(t *testing.T) {
	toks := lexer.Tokenize("test.arg", "def ; func foo() { return; }")
	if toks.HasError() {
		t.Fatalf("lex error: %v", toks.Err())
	}
	prog := Parse("test.arg", toks.Value())
	if !prog.HasError() {
		t.Fatalf("expected a parse error from the malformed 'def ;' declaration")
	}
}

func TestParseMissingTokenProducesExpectedActualContext(t *testing.T) {
	toks := lexer.Tokenize("test.arg", "def x = 5")
	if toks.HasError() {
		t.Fatalf("lex error: %v", toks.Err())
	}
	prog := Parse("test.arg", toks.Value())
	if !prog.HasError() {
		t.Fatalf("expected an error for a missing trailing semicolon")
	}
	err := prog.Err()
	if err.Kind != result.MissingToken {
		t.Errorf("expected MissingToken, got %v", err.Kind)
	}
	if err.Context.Expected != ";" {
		t.Errorf("expected Context.Expected %q, got %q", ";", err.Context.Expected)
	}
}
