package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/NotDragon/ArgonLang-sub000/internal/ast"
	"github.com/NotDragon/ArgonLang-sub000/internal/result"
	"github.com/NotDragon/ArgonLang-sub000/internal/token"
)

func fail[T any](err *result.Error) result.Result[T] { return result.Fail[T](err) }

// ParseExpression is the chain's entry point: assignment is the loosest
// binding form, everything else falls through to it via the functions
// below (spec §4.3's 25-level precedence chain).
func (p *Parser) ParseExpression() result.Result[ast.Expression] {
	return p.parseAssignment()
}

var assignmentOps = []token.Kind{
	token.Assign, token.PlusAssign, token.MinusAssign, token.MultiplyAssign, token.DivideAssign, token.ModuloAssign,
	token.BitAndEq, token.BitOrEq, token.BitXorEq, token.BitShlEq, token.BitShrEq,
	token.RangeFilterEq, token.RangeMapEq, token.RangeReduceEq, token.PipeEq, token.PipeOrEq, token.XorXorEq,
}

func (p *Parser) parseAssignment() result.Result[ast.Expression] {
	start := p.current().Position
	lhs := p.parseTernary()
	if lhs.HasError() {
		return lhs
	}
	if p.checkAny(assignmentOps...) {
		op := p.advance().Lexeme
		rhs := p.parseAssignment()
		if rhs.HasError() {
			return result.Chain[ast.Expression](rhs, result.Trace{Kind: ast.AssignmentExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewAssignmentExpression(start, lhs.Value(), op, rhs.Value()))
	}
	return lhs
}

// parseTernary handles the C-style `cond ? then : else` form recovered from
// original_source (tokenized there as QuestionMark but never actually wired
// into its parser — a dropped feature spec.md's §3.3 still names as an
// expression kind, so it's implemented here rather than left absent).
// Right-associative: the else-branch recurses into parseTernary so
// `a ? b : c ? d : e` reads as `a ? b : (c ? d : e)`.
func (p *Parser) parseTernary() result.Result[ast.Expression] {
	cond := p.parseParallel()
	if cond.HasError() {
		return cond
	}
	if !p.check(token.Question) {
		return cond
	}
	start := p.advance().Position
	thenExpr := p.ParseExpression()
	if thenExpr.HasError() {
		return result.Chain[ast.Expression](thenExpr, result.Trace{Kind: ast.TernaryExpressionKind, Position: start})
	}
	if _, err := p.expect(token.Colon, "ternary expression"); err != nil {
		return fail[ast.Expression](err)
	}
	elseExpr := p.parseTernary()
	if elseExpr.HasError() {
		return result.Chain[ast.Expression](elseExpr, result.Trace{Kind: ast.TernaryExpressionKind, Position: start})
	}
	return result.Ok[ast.Expression](ast.NewTernaryExpression(start, cond.Value(), thenExpr.Value(), elseExpr.Value()))
}

func (p *Parser) parseParallel() result.Result[ast.Expression] {
	if p.check(token.KeywordPar) {
		start := p.advance().Position
		body := p.parseBlockOrExpressionAsStatement()
		if body.HasError() {
			return result.Chain[ast.Expression](body, result.Trace{Kind: ast.ParallelExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewParallelExpression(start, body.Value()))
	}
	return p.parseAwait()
}

func (p *Parser) parseAwait() result.Result[ast.Expression] {
	if p.check(token.KeywordAwait) {
		start := p.advance().Position
		operand := p.parseAwait()
		if operand.HasError() {
			return result.Chain[ast.Expression](operand, result.Trace{Kind: ast.AwaitExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewAwaitExpression(start, operand.Value()))
	}
	return p.parseLazy()
}

func (p *Parser) parseLazy() result.Result[ast.Expression] {
	if p.check(token.KeywordLazy) {
		start := p.advance().Position
		operand := p.parseLazy()
		if operand.HasError() {
			return result.Chain[ast.Expression](operand, result.Trace{Kind: ast.LazyExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewLazyExpression(start, operand.Value()))
	}
	return p.parseMatch()
}

func (p *Parser) parseMatch() result.Result[ast.Expression] {
	if p.check(token.KeywordMatch) {
		return p.parseMatchExpression()
	}
	return p.parseFilter()
}

// parseFilter binds loosest of the three (spec §4.3 "filter(`|`) →
// map(`&`) → reduce(`^`)"). It loops on token.RangeMap, not
// token.RangeFilter: those Kind names track the type-position meaning of
// "&" (reference prefix, intersection types — see types.go) and don't
// line up with which binary operator is filter vs. map, so the lexeme
// bound to each Kind is what decides precedence here, not the Kind's
// name.
func (p *Parser) parseFilter() result.Result[ast.Expression] {
	left := p.parseMap()
	for left.IsValid() && p.check(token.RangeMap) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseMap()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

// parseMap binds next-tightest, one level inside filter (spec §4.3).
func (p *Parser) parseMap() result.Result[ast.Expression] {
	left := p.parseReduce()
	for left.IsValid() && p.check(token.RangeFilter) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseReduce()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseReduce() result.Result[ast.Expression] {
	left := p.parseLogicalOr()
	for left.IsValid() && p.check(token.RangeReduce) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseLogicalOr()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseLogicalOr() result.Result[ast.Expression] {
	left := p.parseLogicalAnd()
	for left.IsValid() && p.check(token.LogicalOr) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseLogicalAnd()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseLogicalAnd() result.Result[ast.Expression] {
	left := p.parseEquality()
	for left.IsValid() && p.check(token.LogicalAnd) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseEquality()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseEquality() result.Result[ast.Expression] {
	left := p.parseRelational()
	for left.IsValid() && p.checkAny(token.Equal, token.NotEqual) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseRelational()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.ComparisonExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewComparisonExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseRelational() result.Result[ast.Expression] {
	left := p.parseBitwise()
	for left.IsValid() && p.checkAny(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseBitwise()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.ComparisonExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewComparisonExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseBitwise() result.Result[ast.Expression] {
	left := p.parseShift()
	for left.IsValid() && p.checkAny(token.BitAnd, token.BitOr, token.BitXor) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseShift()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseShift() result.Result[ast.Expression] {
	left := p.parseTo()
	for left.IsValid() && p.checkAny(token.BitShl, token.BitShr) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseTo()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

// parseTo handles the range-construction form `lo to hi` / `lo to= hi`; it
// is not left-recursive like the binary levels around it — a range's
// bounds are themselves additive expressions, never further ranges.
func (p *Parser) parseTo() result.Result[ast.Expression] {
	left := p.parseAdditive()
	if left.HasError() {
		return left
	}
	if p.checkAny(token.KeywordTo, token.ToInclusive) {
		start := p.current().Position
		inclusive := p.current().Kind == token.ToInclusive
		p.advance()
		right := p.parseAdditive()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.ToExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewToExpression(start, left.Value(), right.Value(), inclusive))
	}
	return left
}

func (p *Parser) parseAdditive() result.Result[ast.Expression] {
	left := p.parseMultiplicative()
	for left.IsValid() && p.checkAny(token.Plus, token.Minus) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseMultiplicative()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

func (p *Parser) parseMultiplicative() result.Result[ast.Expression] {
	left := p.parseUnary()
	for left.IsValid() && p.checkAny(token.Multiply, token.Divide, token.Modulo) {
		start := p.current().Position
		op := p.advance().Lexeme
		right := p.parseUnary()
		if right.HasError() {
			return result.Chain[ast.Expression](right, result.Trace{Kind: ast.BinaryExpressionKind, Position: start})
		}
		left = result.Ok[ast.Expression](ast.NewBinaryExpression(start, left.Value(), op, right.Value()))
	}
	return left
}

// prefixUnaryOps covers bitwise-not/logical-not/unary plus-minus/prefix
// increment-decrement/reference/deref (spec §4.3's unary tiers, collapsed
// into one function since they share the same "prefix op, recurse" shape
// and the spec places no binary operator between them).
var prefixUnaryOps = []token.Kind{
	token.BitNot, token.LogicalNot, token.Plus, token.Minus,
	token.Increment, token.Decrement,
	token.RangeFilter, token.LogicalAnd, token.Multiply, token.Tilde,
}

func (p *Parser) parseUnary() result.Result[ast.Expression] {
	if p.check(token.KeywordTry) {
		start := p.advance().Position
		operand := p.parseUnary()
		if operand.HasError() {
			return result.Chain[ast.Expression](operand, result.Trace{Kind: ast.TryExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewTryExpression(start, operand.Value()))
	}
	if p.checkAny(prefixUnaryOps...) {
		start := p.current().Position
		op := p.advance().Lexeme
		operand := p.parseUnary()
		if operand.HasError() {
			return result.Chain[ast.Expression](operand, result.Trace{Kind: ast.UnaryExpressionKind, Position: start})
		}
		return result.Ok[ast.Expression](ast.NewUnaryExpression(start, op, operand.Value(), false))
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() result.Result[ast.Expression] {
	exprResult := p.parsePrimary()
	if exprResult.HasError() {
		return exprResult
	}
	expr := exprResult.Value()

	for {
		switch {
		case p.check(token.ScopeRes) && p.peekAhead(1).Kind == token.Less:
			p.advance() // ::
			args := p.parseGenericArgumentList()
			if args.HasError() {
				return result.Fail1[ast.Expression](args)
			}
			if _, err := p.expect(token.LeftParen, "generic function call"); err != nil {
				return fail[ast.Expression](err)
			}
			callArgs := p.parseArgumentList()
			if callArgs.HasError() {
				return result.Fail1[ast.Expression](callArgs)
			}
			expr = ast.NewFunctionCallExpression(expr.Pos(), expr, args.Value(), callArgs.Value())

		case p.check(token.LeftParen):
			p.advance()
			callArgs := p.parseArgumentList()
			if callArgs.HasError() {
				return result.Fail1[ast.Expression](callArgs)
			}
			expr = ast.NewFunctionCallExpression(expr.Pos(), expr, nil, callArgs.Value())

		case p.check(token.Dot):
			p.advance()
			name, err := p.expect(token.Identifier, "member access")
			if err != nil {
				return fail[ast.Expression](err)
			}
			expr = ast.NewMemberAccessExpression(expr.Pos(), expr, name.Lexeme, false)

		case p.check(token.LeftBracket):
			indexed := p.parseIndexSuffix(expr)
			if indexed.HasError() {
				return indexed
			}
			expr = indexed.Value()

		case p.checkAny(token.Increment, token.Decrement):
			op := p.advance().Lexeme
			expr = ast.NewUnaryExpression(expr.Pos(), op, expr, true)

		default:
			return result.Ok(expr)
		}
	}
}

func (p *Parser) peekAhead(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

// parseIndexSuffix parses arr[i], arr[lo:hi], and arr[a,b,c] — three
// distinct node kinds sharing the same "[" ... "]" syntax.
func (p *Parser) parseIndexSuffix(object ast.Expression) result.Result[ast.Expression] {
	start := p.advance().Position // consume '['

	if p.check(token.Colon) {
		p.advance()
		high := p.ParseExpression()
		if high.HasError() {
			return result.Chain[ast.Expression](high, result.Trace{Kind: ast.SliceExpressionKind, Position: start})
		}
		if _, err := p.expect(token.RightBracket, "slice expression"); err != nil {
			return fail[ast.Expression](err)
		}
		return result.Ok[ast.Expression](ast.NewSliceExpression(start, object, nil, high.Value()))
	}

	first := p.ParseExpression()
	if first.HasError() {
		return result.Chain[ast.Expression](first, result.Trace{Kind: ast.IndexExpressionKind, Position: start})
	}

	if p.check(token.Colon) {
		p.advance()
		var high ast.Expression
		if !p.check(token.RightBracket) {
			highResult := p.ParseExpression()
			if highResult.HasError() {
				return result.Chain[ast.Expression](highResult, result.Trace{Kind: ast.SliceExpressionKind, Position: start})
			}
			high = highResult.Value()
		}
		if _, err := p.expect(token.RightBracket, "slice expression"); err != nil {
			return fail[ast.Expression](err)
		}
		return result.Ok[ast.Expression](ast.NewSliceExpression(start, object, first.Value(), high))
	}

	if p.check(token.Comma) {
		indices := []ast.Expression{first.Value()}
		for p.match(token.Comma) {
			next := p.ParseExpression()
			if next.HasError() {
				return result.Chain[ast.Expression](next, result.Trace{Kind: ast.MultiIndexExpressionKind, Position: start})
			}
			indices = append(indices, next.Value())
		}
		if _, err := p.expect(token.RightBracket, "multi-index expression"); err != nil {
			return fail[ast.Expression](err)
		}
		return result.Ok[ast.Expression](ast.NewMultiIndexExpression(start, object, indices))
	}

	if _, err := p.expect(token.RightBracket, "index expression"); err != nil {
		return fail[ast.Expression](err)
	}
	return result.Ok[ast.Expression](ast.NewIndexExpression(start, object, first.Value()))
}

func (p *Parser) parseArgumentList() result.Result[[]ast.Expression] {
	var args []ast.Expression
	if p.check(token.RightParen) {
		p.advance()
		return result.Ok(args)
	}
	for {
		arg := p.ParseExpression()
		if arg.HasError() {
			return result.Fail1[[]ast.Expression](arg)
		}
		args = append(args, arg.Value())
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightParen, "call arguments"); err != nil {
		return fail[[]ast.Expression](err)
	}
	return result.Ok(args)
}

func (p *Parser) parsePrimary() result.Result[ast.Expression] {
	tok := p.current()
	switch tok.Kind {
	case token.IntegralLiteral:
		p.advance()
		return p.parseIntegralLiteral(tok)
	case token.FloatLiteral:
		p.advance()
		return p.parseFloatLiteral(tok)
	case token.StringLiteral:
		p.advance()
		return result.Ok[ast.Expression](ast.NewStringLiteral(tok.Position, tok.Lexeme))
	case token.CharLiteral:
		p.advance()
		r := []rune(tok.Lexeme)
		var c rune
		if len(r) > 0 {
			c = r[0]
		}
		return result.Ok[ast.Expression](ast.NewCharLiteral(tok.Position, c))
	case token.BooleanLiteral:
		p.advance()
		return result.Ok[ast.Expression](ast.NewBooleanLiteral(tok.Position, tok.Lexeme == "true"))
	case token.KeywordNull:
		p.advance()
		return result.Ok[ast.Expression](ast.NewNull(tok.Position))
	case token.KeywordSuper:
		p.advance()
		return result.Ok[ast.Expression](ast.NewIdentifier(tok.Position, "super"))
	case token.Identifier:
		p.advance()
		return result.Ok[ast.Expression](ast.NewIdentifier(tok.Position, tok.Lexeme))
	case token.LeftParen:
		return p.parseParenOrLambda()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseAnonymousStructLiteral()
	case token.KeywordFunc:
		return p.parseLambdaExpression()
	default:
		return fail[ast.Expression](result.New(result.InvalidExpression, "expected an expression", tok.Position).
			WithActual(tok.Lexeme))
	}
}

func stripWidthSuffix(lexeme string) (digits, suffix string) {
	for _, s := range []string{"i128", "i64", "i32", "i16", "i8", "u128", "u64", "u32", "u16", "u8", "f128", "f64", "f32"} {
		if strings.HasSuffix(lexeme, s) {
			return lexeme[:len(lexeme)-len(s)], s
		}
	}
	return lexeme, ""
}

func (p *Parser) parseIntegralLiteral(tok token.Token) result.Result[ast.Expression] {
	digits, suffix := stripWidthSuffix(tok.Lexeme)
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return fail[ast.Expression](result.New(result.InvalidNumberLiteral, "invalid integer literal", tok.Position).
			WithActual(tok.Lexeme))
	}
	return result.Ok[ast.Expression](ast.NewIntegralLiteral(tok.Position, value, ast.DetermineIntegerType(suffix)))
}

func (p *Parser) parseFloatLiteral(tok token.Token) result.Result[ast.Expression] {
	digits, suffix := stripWidthSuffix(tok.Lexeme)
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return fail[ast.Expression](result.New(result.InvalidNumberLiteral, "invalid float literal", tok.Position).
			WithActual(tok.Lexeme))
	}
	return result.Ok[ast.Expression](ast.NewFloatLiteral(tok.Position, value, ast.DetermineFloatType(suffix)))
}

// parseParenOrLambda disambiguates `(expr)` from `(params) => body` by
// attempting the lambda-parameter-list parse first and backtracking on
// failure — the generic-vs-comparison style bounded backtrack used
// throughout this parser (spec §4.3).
func (p *Parser) parseParenOrLambda() result.Result[ast.Expression] {
	save := p.pos
	if lambda := p.tryParseLambdaParams(); lambda != nil {
		return *lambda
	}
	p.pos = save

	start := p.advance().Position // '('
	inner := p.ParseExpression()
	if inner.HasError() {
		return result.Chain[ast.Expression](inner, result.Trace{Kind: ast.IdentifierKind, Position: start})
	}
	if _, err := p.expect(token.RightParen, "parenthesized expression"); err != nil {
		return fail[ast.Expression](err)
	}
	return inner
}

// tryParseLambdaParams attempts `(name [: Type])* => body`, returning nil
// (leaving p.pos unmodified on failure's caller responsibility to restore)
// when the tokens don't form a parameter list followed by "=>".
func (p *Parser) tryParseLambdaParams() *result.Result[ast.Expression] {
	start := p.current().Position
	if _, err := p.expect(token.LeftParen, "lambda parameters"); err != nil {
		return nil
	}
	var params []ast.FunctionArgument
	for !p.check(token.RightParen) {
		if !p.check(token.Identifier) {
			return nil
		}
		name := p.advance().Lexeme
		var paramType ast.Type
		if p.match(token.Colon) {
			t := p.parseType()
			if t.HasError() {
				return nil
			}
			paramType = t.Value()
		}
		params = append(params, ast.FunctionArgument{Name: name, Type: paramType})
		if !p.match(token.Comma) {
			break
		}
	}
	if !p.check(token.RightParen) {
		return nil
	}
	p.advance()
	if !p.check(token.FatArrow) {
		return nil
	}
	p.advance()
	body := p.parseLambdaBody()
	if body.HasError() {
		r := result.Chain[ast.Expression](body, result.Trace{Kind: ast.LambdaExpressionKind, Position: start})
		return &r
	}
	r := result.Ok[ast.Expression](ast.NewLambdaExpression(start, params, nil, body.Value(), nil))
	return &r
}

func (p *Parser) parseLambdaBody() result.Result[ast.Statement] {
	if p.check(token.LeftBrace) {
		return p.parseBlockStatement()
	}
	expr := p.ParseExpression()
	if expr.HasError() {
		return result.Fail1[ast.Statement](expr)
	}
	return result.Ok[ast.Statement](ast.NewExpressionStatement(expr.Value().Pos(), expr.Value()))
}

func (p *Parser) parseLambdaExpression() result.Result[ast.Expression] {
	start := p.advance().Position // 'func'
	if _, err := p.expect(token.LeftParen, "lambda parameters"); err != nil {
		return fail[ast.Expression](err)
	}
	var params []ast.FunctionArgument
	for !p.check(token.RightParen) {
		name, err := p.expect(token.Identifier, "lambda parameter")
		if err != nil {
			return fail[ast.Expression](err)
		}
		var paramType ast.Type
		if p.match(token.Colon) {
			t := p.parseType()
			if t.HasError() {
				return result.Fail1[ast.Expression](t)
			}
			paramType = t.Value()
		}
		params = append(params, ast.FunctionArgument{Name: name.Lexeme, Type: paramType})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightParen, "lambda parameters"); err != nil {
		return fail[ast.Expression](err)
	}
	var retType ast.Type
	if p.startsType() {
		t := p.parseType()
		if t.HasError() {
			return result.Fail1[ast.Expression](t)
		}
		retType = t.Value()
	}
	if p.match(token.Arrow) {
		expr := p.ParseExpression()
		if expr.HasError() {
			return result.Chain[ast.Expression](expr, result.Trace{Kind: ast.LambdaExpressionKind, Position: start})
		}
		bodyStmt := ast.NewExpressionStatement(expr.Value().Pos(), expr.Value())
		return result.Ok[ast.Expression](ast.NewLambdaExpression(start, params, retType, bodyStmt, nil))
	}
	body := p.parseBlockStatement()
	if body.HasError() {
		return result.Chain[ast.Expression](body, result.Trace{Kind: ast.LambdaExpressionKind, Position: start})
	}
	return result.Ok[ast.Expression](ast.NewLambdaExpression(start, params, retType, body.Value(), nil))
}

func (p *Parser) parseArrayLiteral() result.Result[ast.Expression] {
	start := p.advance().Position // '['
	var elements []ast.Expression
	for !p.check(token.RightBracket) {
		el := p.ParseExpression()
		if el.HasError() {
			return result.Chain[ast.Expression](el, result.Trace{Kind: ast.ArrayLiteralExpressionKind, Position: start})
		}
		elements = append(elements, el.Value())
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBracket, "array literal"); err != nil {
		return fail[ast.Expression](err)
	}
	return result.Ok[ast.Expression](ast.NewArrayLiteralExpression(start, elements))
}

// parseAnonymousStructLiteral parses `{ name: value, ... }`. The parser has
// no named struct literal form: no expression production builds a
// StructExpressionNode with a non-empty TypeName.
func (p *Parser) parseAnonymousStructLiteral() result.Result[ast.Expression] {
	start := p.advance().Position // '{'
	fields, err := p.parseStructFields()
	if err != nil {
		return fail[ast.Expression](err)
	}
	return result.Ok[ast.Expression](ast.NewStructExpression(start, "", fields))
}

func (p *Parser) parseStructFields() ([]ast.StructField, *result.Error) {
	var fields []ast.StructField
	for !p.check(token.RightBrace) {
		name, err := p.expect(token.Identifier, "struct literal field")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "struct literal field"); err != nil {
			return nil, err
		}
		value := p.ParseExpression()
		if value.HasError() {
			return nil, value.Err()
		}
		fields = append(fields, ast.StructField{Name: name.Lexeme, Value: value.Value()})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBrace, "struct literal"); err != nil {
		return nil, err
	}
	return fields, nil
}

func (p *Parser) parseMatchExpression() result.Result[ast.Expression] {
	start := p.advance().Position // 'match'
	subject := p.ParseExpression()
	if subject.HasError() {
		return result.Chain[ast.Expression](subject, result.Trace{Kind: ast.MatchExpressionKind, Position: start})
	}
	if _, err := p.expect(token.LeftBrace, "match expression"); err != nil {
		return fail[ast.Expression](err)
	}
	var branches []ast.MatchBranch
	for !p.check(token.RightBrace) {
		pat := p.parsePattern()
		if pat.HasError() {
			return result.Chain[ast.Expression](result.Fail1[ast.Expression](pat), result.Trace{Kind: ast.MatchExpressionKind, Position: start})
		}
		var guard ast.Expression
		if p.match(token.KeywordIf) {
			g := p.ParseExpression()
			if g.HasError() {
				return result.Chain[ast.Expression](g, result.Trace{Kind: ast.MatchExpressionKind, Position: start})
			}
			guard = g.Value()
		}
		if _, err := p.expect(token.Arrow, "match branch"); err != nil {
			return fail[ast.Expression](err)
		}
		body := p.ParseExpression()
		if body.HasError() {
			return result.Chain[ast.Expression](body, result.Trace{Kind: ast.MatchExpressionKind, Position: start})
		}
		branches = append(branches, ast.MatchBranch{Pattern: pat.Value(), Guard: guard, Body: body.Value()})
		if !p.match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBrace, "match expression"); err != nil {
		return fail[ast.Expression](err)
	}
	return result.Ok[ast.Expression](ast.NewMatchExpression(start, subject.Value(), branches))
}
