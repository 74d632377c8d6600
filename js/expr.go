package js

import (
	"bytes"
)

// innerContext is the context inside brackets, where the in operator is allowed again and the type and decorator restrictions of the enclosing production end.
func (p *Parser) innerContext() Context {
	return p.ctx.With(ContextIn).Without(ContextNoArrowReturnType | ContextInType | ContextDisallowConditionalTypes | ContextDecorator)
}

func (p *Parser) parseExprIn() IExpr {
	return withContext(p, p.ctx.With(ContextIn), p.parseExpr)
}

// parseExpr parses a comma separated list of assignment expressions.
func (p *Parser) parseExpr() IExpr {
	start := p.tok.Span.Start
	x := p.parseAssignExpr()
	if p.tt != CommaToken {
		return x
	}
	list := []IExpr{x}
	for p.tt == CommaToken {
		p.next()
		list = append(list, p.parseAssignExpr())
	}
	return Alloc(p.a, CommaExpr{Span: p.span(start), List: list})
}

func (p *Parser) parseAssignExpr() IExpr {
	if p.ctx.Has(ContextNoArrowReturnType) {
		// the restriction only holds for the outermost arrow function
		return withContext(p, p.ctx.Without(ContextNoArrowReturnType), func() IExpr {
			return p.parseAssignment(true)
		})
	}
	return p.parseAssignment(false)
}

func (p *Parser) parseAssignment(noArrowReturnType bool) IExpr {
	start := p.tok.Span.Start
	if p.tt == YieldToken && p.ctx.Has(ContextYield) {
		return p.parseYieldExpr()
	} else if arrow, ok := p.tryParseArrowFunc(noArrowReturnType); ok {
		return arrow
	}

	coverInits := len(p.coverInits)
	x := p.parseCondExpr()
	if IsAssignOperator(p.tt) {
		op := p.tt
		if op == EqToken {
			p.coverInits = p.coverInits[:coverInits]
		}
		if !isAssignTarget(x, op == EqToken) {
			p.error(x.Loc(), "invalid assignment target")
		}
		p.next()
		y := p.parseAssignExpr()
		return Alloc(p.a, BinaryExpr{Span: p.span(start), Op: op, X: x, Y: y})
	}
	if !p.inForInit || p.tt != InToken && p.tt != OfToken {
		p.reportCoverInits(coverInits)
	}
	return x
}

// reportCoverInits reports the first {a = b} shorthand since index n that turned out not to be part of a pattern.
func (p *Parser) reportCoverInits(n int) {
	if n < len(p.coverInits) {
		p.error(p.coverInits[n], "invalid shorthand property initializer")
		p.coverInits = p.coverInits[:n]
	}
}

func (p *Parser) parseYieldExpr() IExpr {
	start := p.tok.Span.Start
	p.next()
	yield := Alloc(p.a, YieldExpr{})
	if !p.tok.Newline {
		if p.tt == MulToken {
			yield.Generator = true
			p.next()
			yield.Value = p.parseAssignExpr()
		} else if p.isStartOfExpression() {
			yield.Value = p.parseAssignExpr()
		}
	}
	yield.Span = p.span(start)
	return yield
}

func (p *Parser) parseCondExpr() IExpr {
	start := p.tok.Span.Start
	cond := p.parseBinaryExpr(OpCond)
	if p.tt != QuestionToken {
		return cond
	}
	p.next()
	x := withContext(p, p.ctx.With(ContextIn|ContextNoArrowReturnType), p.parseAssignExpr)
	p.consume("conditional expression", ColonToken)
	y := p.parseAssignExpr()
	return Alloc(p.a, CondExpr{Span: p.span(start), Cond: cond, X: x, Y: y})
}

// parseBinaryExpr parses binary operators that bind tighter than minPrec.
func (p *Parser) parseBinaryExpr(minPrec OpPrec) IExpr {
	start := p.tok.Span.Start
	left := p.parseUnaryExpr()
	for {
		if p.st.TypeScript && (p.tt == AsToken || p.tt == SatisfiesToken) && !p.tok.Newline {
			if OpCompare <= minPrec {
				return left
			}
			op := p.tt
			p.next()
			var typ IType
			if op == AsToken && p.tt == ConstToken {
				typ = Alloc(p.a, TypeKeyword{Span: p.tok.Span, Kind: ConstToken})
				p.next()
			} else {
				typ = withContext(p, p.ctx.With(ContextInType), p.parseType)
			}
			if op == AsToken {
				left = Alloc(p.a, AsExpr{Span: p.span(start), X: left, Type: typ})
			} else {
				left = Alloc(p.a, SatisfiesExpr{Span: p.span(start), X: left, Type: typ})
			}
			continue
		}

		op := p.tt
		prec := binaryPrec(op)
		if prec <= minPrec || op == InToken && !p.ctx.Has(ContextIn) {
			return left
		}
		if op == ExpToken {
			if u, ok := left.(*UnaryExpr); ok && u.Op != PostIncrToken && u.Op != PostDecrToken {
				p.error(p.tok.Span, "unary expression cannot be the left operand of '**', use parentheses")
			}
			prec-- // right-associative
		}
		p.next()
		right := p.parseBinaryExpr(prec)
		if op == NullishToken || op == AndToken || op == OrToken {
			if mixesNullish(op, left) || mixesNullish(op, right) {
				p.error(right.Loc(), "'??' cannot be mixed with '&&' or '||' without parentheses")
			}
		}
		left = Alloc(p.a, BinaryExpr{Span: p.span(start), Op: op, X: left, Y: right})
	}
}

// mixesNullish returns true if operand x of op is an unparenthesized logical expression of the other kind.
func mixesNullish(op TokenType, x IExpr) bool {
	bin, ok := x.(*BinaryExpr)
	if !ok {
		return false
	} else if op == NullishToken {
		return bin.Op == AndToken || bin.Op == OrToken
	}
	return bin.Op == NullishToken
}

func (p *Parser) parseUnaryExpr() IExpr {
	start := p.tok.Span.Start
	op := p.tt
	switch op {
	case AddToken, SubToken, NotToken, BitNotToken, TypeofToken, VoidToken, DeleteToken, IncrToken, DecrToken:
		switch op {
		case AddToken:
			op = PosToken
		case SubToken:
			op = NegToken
		case IncrToken:
			op = PreIncrToken
		case DecrToken:
			op = PreDecrToken
		}
		p.next()
		x := p.parseUnaryExpr()
		if (op == PreIncrToken || op == PreDecrToken) && !isAssignTarget(x, false) {
			p.error(x.Loc(), "invalid update expression target")
		} else if op == DeleteToken && p.ctx.Has(ContextStrict) {
			if _, ok := x.(*Var); ok {
				p.error(x.Loc(), "cannot delete an identifier in strict mode")
			}
		}
		return Alloc(p.a, UnaryExpr{Span: p.span(start), Op: op, X: x})
	case AwaitToken:
		if p.ctx.Has(ContextAwait) {
			if p.ctx.Has(ContextClassField) {
				p.error(p.tok.Span, "await expressions are not allowed in class field initializers")
			}
			p.next()
			x := p.parseUnaryExpr()
			return Alloc(p.a, UnaryExpr{Span: p.span(start), Op: AwaitToken, X: x})
		}
	case LtToken:
		if p.st.TypeScript && !p.st.JSX {
			p.next()
			typ := withContext(p, p.ctx.With(ContextInType), p.parseType)
			p.consumeGt("type assertion")
			x := p.parseUnaryExpr()
			return Alloc(p.a, TypeAssertion{Span: p.span(start), Type: typ, X: x})
		}
	}

	x := p.parseLHSExpr()
	if (p.tt == IncrToken || p.tt == DecrToken) && !p.tok.Newline {
		if !isAssignTarget(x, false) {
			p.error(x.Loc(), "invalid update expression target")
		}
		op := PostIncrToken
		if p.tt == DecrToken {
			op = PostDecrToken
		}
		p.next()
		return Alloc(p.a, UnaryExpr{Span: p.span(start), Op: op, X: x})
	}
	return x
}

////////////////////////////////////////////////////////////////

// parseLHSExpr parses a member, call, or new expression.
func (p *Parser) parseLHSExpr() IExpr {
	start := p.tok.Span.Start
	var x IExpr
	switch p.tt {
	case NewToken:
		x = p.parseNewExpr()
	case SuperToken:
		x = Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: SuperToken, Data: p.data})
		p.next()
		if p.tt != OpenParenToken && p.tt != DotToken && p.tt != OpenBracketToken {
			p.error(x.Loc(), "'super' keyword unexpected here")
		}
	case ImportToken:
		x = p.parseImportMetaOrCall()
	default:
		x = p.parsePrimaryExpr()
	}
	return p.parseLHSRest(start, x, false)
}

func (p *Parser) parseImportMetaOrCall() IExpr {
	start := p.tok.Span.Start
	p.next()
	if p.tt == DotToken {
		p.next()
		if p.tt != MetaToken {
			p.fail("import.meta", MetaToken)
			return Alloc(p.a, BadExpr{Span: p.span(start)})
		} else if !p.st.Module {
			p.error(p.tok.Span, "'import.meta' may only appear in a module")
		}
		p.next()
		return Alloc(p.a, MetaProperty{Span: p.span(start), Meta: []byte("import"), Property: []byte("meta")})
	} else if p.tt != OpenParenToken {
		p.fail("import expression", OpenParenToken, DotToken)
		return Alloc(p.a, BadExpr{Span: p.span(start)})
	}
	p.next()
	x := Alloc(p.a, ImportExpr{})
	withContext(p, p.innerContext(), func() bool {
		x.Source = p.parseAssignExpr()
		if p.tt == CommaToken {
			p.next()
			if p.tt != CloseParenToken {
				x.Options = p.parseAssignExpr()
				if p.tt == CommaToken {
					p.next()
				}
			}
		}
		return true
	})
	p.consume("import expression", CloseParenToken)
	x.Span = p.span(start)
	return x
}

func (p *Parser) parseNewExpr() IExpr {
	start := p.tok.Span.Start
	p.next()
	if p.tt == DotToken {
		p.next()
		if p.tt != TargetToken {
			p.fail("new.target", TargetToken)
			return Alloc(p.a, BadExpr{Span: p.span(start)})
		}
		p.next()
		return Alloc(p.a, MetaProperty{Span: p.span(start), Meta: []byte("new"), Property: []byte("target")})
	}

	n := Alloc(p.a, NewExpr{})
	calleeStart := p.tok.Span.Start
	var callee IExpr
	switch p.tt {
	case NewToken:
		callee = p.parseNewExpr()
	case SuperToken:
		p.error(p.tok.Span, "'super' cannot be used with new")
		callee = Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: SuperToken, Data: p.data})
		p.next()
	case ImportToken:
		p.error(p.tok.Span, "cannot use new with import")
		callee = p.parseImportMetaOrCall()
	default:
		callee = p.parsePrimaryExpr()
	}
	callee = p.parseLHSRest(calleeStart, callee, true)
	if inst, ok := callee.(*InstantiationExpr); ok {
		callee, n.TypeArgs = inst.X, inst.TypeArgs
	}
	n.X = callee
	if p.tt == OpenParenToken {
		args := p.parseArgs()
		n.Args = &args
	}
	n.Span = p.span(start)
	return n
}

// parseLHSRest parses member accesses, calls, tagged templates, and the TypeScript postfixes following x. With noCall it stops at the arguments of a new expression.
func (p *Parser) parseLHSRest(start uint32, x IExpr, noCall bool) IExpr {
	chain := false
loop:
	for {
		switch p.tt {
		case DotToken:
			p.next()
			x = p.parseMemberName(start, x, false)
		case OptChainToken:
			if noCall {
				p.error(p.tok.Span, "optional chain is not allowed in new expression")
			}
			chain = true
			p.next()
			switch p.tt {
			case OpenParenToken:
				args := p.parseArgs()
				x = Alloc(p.a, CallExpr{Span: p.span(start), X: x, Args: args, Optional: true})
			case OpenBracketToken:
				x = p.parseIndexExpr(start, x, true)
			case LtToken, LtLtToken:
				if !p.st.TypeScript {
					p.fail("optional chain", IdentifierToken)
					break loop
				}
				typeArgs := p.parseTypeArgs()
				args := p.parseArgs()
				x = Alloc(p.a, CallExpr{Span: p.span(start), X: x, TypeArgs: typeArgs, Args: args, Optional: true})
			default:
				x = p.parseMemberName(start, x, true)
			}
		case OpenBracketToken:
			if p.ctx.Has(ContextDecorator) {
				break loop
			}
			x = p.parseIndexExpr(start, x, false)
		case OpenParenToken:
			if noCall {
				break loop
			}
			args := p.parseArgs()
			x = Alloc(p.a, CallExpr{Span: p.span(start), X: x, Args: args})
		case NoSubstitutionTemplateToken, TemplateHeadToken:
			if chain {
				p.error(p.tok.Span, "tagged template cannot be used in an optional chain")
			}
			x = p.parseTemplate(start, x, nil)
		case NotToken:
			if !p.st.TypeScript || p.tok.Newline {
				break loop
			}
			p.next()
			x = Alloc(p.a, NonNullExpr{Span: p.span(start), X: x})
		case LtToken, LtLtToken:
			if !p.st.TypeScript {
				break loop
			}
			typeArgs, ok := p.tryParseTypeArgsInExpr()
			if !ok {
				break loop
			}
			switch {
			case p.tt == OpenParenToken && !noCall:
				args := p.parseArgs()
				x = Alloc(p.a, CallExpr{Span: p.span(start), X: x, TypeArgs: typeArgs, Args: args})
			case p.tt == NoSubstitutionTemplateToken || p.tt == TemplateHeadToken:
				x = p.parseTemplate(start, x, typeArgs)
			default:
				x = Alloc(p.a, InstantiationExpr{Span: p.span(start), X: x, TypeArgs: typeArgs})
			}
		default:
			break loop
		}
	}
	if chain {
		x = Alloc(p.a, OptChainExpr{Span: p.span(start), X: x})
	}
	return x
}

func (p *Parser) parseMemberName(start uint32, x IExpr, optional bool) IExpr {
	var name []byte
	if IsIdentifierName(p.tt) || p.tt == PrivateIdentifierToken {
		name = p.data
		p.next()
	} else {
		p.fail("member expression", IdentifierToken)
	}
	return Alloc(p.a, DotExpr{Span: p.span(start), X: x, Y: name, Optional: optional})
}

func (p *Parser) parseIndexExpr(start uint32, x IExpr, optional bool) IExpr {
	p.next()
	index := withContext(p, p.innerContext(), p.parseExpr)
	p.consume("index expression", CloseBracketToken)
	return Alloc(p.a, IndexExpr{Span: p.span(start), X: x, Index: index, Optional: optional})
}

func (p *Parser) parseArgs() Args {
	start := p.tok.Span.Start
	args := Args{}
	p.next()
	withContext(p, p.innerContext(), func() bool {
		for p.tt != CloseParenToken && p.tt != EOFToken {
			spread := false
			if p.tt == EllipsisToken {
				spread = true
				p.next()
			}
			args.List = append(args.List, Arg{Value: p.parseAssignExpr(), Spread: spread})
			if p.tt != CloseParenToken && !p.consume("arguments", CommaToken) {
				break
			}
		}
		return true
	})
	p.consume("arguments", CloseParenToken)
	args.Span = p.span(start)
	return args
}

////////////////////////////////////////////////////////////////

func (p *Parser) parsePrimaryExpr() IExpr {
	start := p.tok.Span.Start
	switch p.tt {
	case StringToken, NumericToken, BigIntToken, TrueToken, FalseToken, NullToken, ThisToken:
		p.checkLeadingZero()
		x := Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: p.tt, Data: p.data})
		p.next()
		return x
	case DivToken, DivEqToken:
		p.setToken(p.l.ReLexRegExp(p.tok))
		x := Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: RegExpToken, Data: p.data})
		p.next()
		return x
	case NoSubstitutionTemplateToken, TemplateHeadToken:
		return p.parseTemplate(start, nil, nil)
	case OpenBracketToken:
		return p.parseArrayExpr()
	case OpenBraceToken:
		return p.parseObjectExpr()
	case OpenParenToken:
		return p.parseGroupExpr()
	case FunctionToken:
		return p.parseFuncDecl(start, false, false, false)
	case AsyncToken:
		if next := p.peek(); next.Kind == FunctionToken && !next.Newline {
			p.next()
			return p.parseFuncDecl(start, true, false, false)
		}
	case ClassToken:
		return p.parseClassDecl(start, nil, false, false, false)
	case AtToken:
		decorators := p.parseDecorators()
		if p.tt != ClassToken {
			p.fail("class expression", ClassToken)
			return Alloc(p.a, BadExpr{Span: p.span(start)})
		}
		return p.parseClassDecl(start, decorators, false, false, false)
	case LtToken:
		if p.st.JSX {
			return p.parseJSXElement(false)
		}
	case PrivateIdentifierToken:
		if p.peek().Kind == InToken {
			x := Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: PrivateIdentifierToken, Data: p.data})
			p.next()
			return x
		}
	}

	if p.isIdentifier(p.tt) {
		if p.ctx.Has(ContextClassField) && bytes.Equal(p.data, []byte("arguments")) {
			p.error(p.tok.Span, "'arguments' is not allowed in class field initializers")
		}
		x := Alloc(p.a, Var{Span: p.tok.Span, Data: p.data})
		p.next()
		return x
	}
	p.fail("expression")
	if p.tt != EOFToken && p.tt != CloseBraceToken && p.tt != CloseParenToken && p.tt != CloseBracketToken && p.tt != SemicolonToken {
		p.next()
	}
	return Alloc(p.a, BadExpr{Span: p.span(start)})
}

func (p *Parser) parseGroupExpr() IExpr {
	start := p.tok.Span.Start
	p.next()
	if p.tt == CloseParenToken {
		p.fail("parenthesized expression")
		p.next()
		return Alloc(p.a, BadExpr{Span: p.span(start)})
	}
	x := withContext(p, p.innerContext(), p.parseExpr)
	p.consume("parenthesized expression", CloseParenToken)
	return Alloc(p.a, GroupExpr{Span: p.span(start), X: x})
}

func (p *Parser) parseArrayExpr() IExpr {
	start := p.tok.Span.Start
	p.next()
	array := Alloc(p.a, ArrayExpr{})
	withContext(p, p.innerContext(), func() bool {
		for p.tt != CloseBracketToken && p.tt != EOFToken {
			if p.tt == CommaToken {
				array.List = append(array.List, Element{})
				p.next()
				continue
			}
			spread := false
			if p.tt == EllipsisToken {
				spread = true
				p.next()
			}
			array.List = append(array.List, Element{Value: p.parseAssignExpr(), Spread: spread})
			if p.tt != CloseBracketToken && !p.consume("array literal", CommaToken) {
				break
			}
		}
		return true
	})
	p.consume("array literal", CloseBracketToken)
	array.Span = p.span(start)
	return array
}

func (p *Parser) parseObjectExpr() IExpr {
	start := p.tok.Span.Start
	p.next()
	object := Alloc(p.a, ObjectExpr{})
	withContext(p, p.innerContext(), func() bool {
		for p.tt != CloseBraceToken && p.tt != EOFToken {
			object.List = append(object.List, p.parseProperty())
			if p.tt != CloseBraceToken && !p.consume("object literal", CommaToken) {
				break
			}
		}
		return true
	})
	p.consume("object literal", CloseBraceToken)
	object.Span = p.span(start)
	return object
}

func (p *Parser) parseProperty() *Property {
	start := p.tok.Span.Start
	prop := Alloc(p.a, Property{})
	if p.tt == EllipsisToken {
		p.next()
		prop.Kind = SpreadProperty
		prop.Value = p.parseAssignExpr()
		prop.Span = p.span(start)
		return prop
	}

	method := MethodDecl{}
	isMethod := p.parseMethodModifiers(&method)
	prop.Name = p.parsePropertyName("object literal")
	if prop.Name.Literal == PrivateIdentifierToken {
		p.error(prop.Name.Span, "private names are not allowed in object literals")
	}
	switch {
	case isMethod || p.tt == OpenParenToken || p.tt == LtToken:
		method.Name = prop.Name
		prop.Kind = MethodProperty
		prop.Value = p.parseMethod(start, method, false)
	case p.tt == ColonToken:
		p.next()
		prop.Kind = InitProperty
		prop.Value = p.parseAssignExpr()
	case !prop.Name.IsComputed() && IsIdentifierName(prop.Name.Literal):
		prop.Kind = ShorthandProperty
		if !p.isIdentifier(prop.Name.Literal) {
			p.error(prop.Name.Span, "'"+string(prop.Name.Data)+"' is a reserved word and cannot be used as a shorthand property")
		}
		prop.Value = Alloc(p.a, Var{Span: prop.Name.Span, Data: prop.Name.Data})
		if p.tt == EqToken {
			p.coverInits = append(p.coverInits, p.tok.Span)
			p.next()
			prop.Init = p.parseAssignExpr()
		}
	default:
		p.fail("object literal", ColonToken)
	}
	prop.Span = p.span(start)
	return prop
}

// parseMethodModifiers parses the async, *, get, and set prefixes of a method and returns true if any was present.
func (p *Parser) parseMethodModifiers(m *MethodDecl) bool {
	if p.tt == AsyncToken && p.isModifier(true) {
		m.Async = true
		p.next()
	}
	if p.tt == MulToken {
		m.Generator = true
		p.next()
		return true
	} else if !m.Async && (p.tt == GetToken || p.tt == SetToken) && p.isModifier(false) {
		m.Kind = GetMethod
		if p.tt == SetToken {
			m.Kind = SetMethod
		}
		p.next()
		return true
	}
	return m.Async
}

// isModifier returns true if the current keyword is followed by a property name, which makes it a modifier rather than the name itself.
func (p *Parser) isModifier(sameLine bool) bool {
	next := p.peek()
	if sameLine && next.Newline {
		return false
	}
	return isPropertyNameStart(next.Kind) || sameLine && next.Kind == MulToken
}

func isPropertyNameStart(tt TokenType) bool {
	switch tt {
	case StringToken, NumericToken, BigIntToken, PrivateIdentifierToken, OpenBracketToken:
		return true
	}
	return IsIdentifierName(tt)
}

// parsePropertyName parses the key of a property, method, or member.
func (p *Parser) parsePropertyName(in string) *PropertyName {
	start := p.tok.Span.Start
	name := Alloc(p.a, PropertyName{Literal: p.tt, Data: p.data})
	if p.tt == OpenBracketToken {
		p.next()
		name.Computed = withContext(p, p.innerContext(), p.parseAssignExpr)
		p.consume(in, CloseBracketToken)
	} else if isPropertyNameStart(p.tt) {
		p.checkLeadingZero()
		p.next()
	} else {
		p.fail(in, IdentifierToken)
		name.Literal, name.Data = ErrorToken, nil
	}
	name.Span = p.span(start)
	return name
}

// checkLeadingZero reports numeric literals that start with 0 followed by a digit in strict mode code.
func (p *Parser) checkLeadingZero() {
	if p.tt != NumericToken || !p.ctx.Has(ContextStrict) || len(p.data) < 2 || p.data[0] != '0' || !isDigit(p.data[1]) {
		return
	}
	for _, c := range p.data[1:] {
		if c == '8' || c == '9' || c == '.' || c == 'e' || c == 'E' {
			p.error(p.tok.Span, "decimals with leading zeros are not allowed in strict mode")
			return
		}
	}
	p.error(p.tok.Span, "legacy octal literals are not allowed in strict mode")
}

////////////////////////////////////////////////////////////////

// parseTemplate parses a template literal, optionally tagged.
func (p *Parser) parseTemplate(start uint32, tag IExpr, typeArgs *TypeArgs) IExpr {
	template := Alloc(p.a, TemplateExpr{Tag: tag, TypeArgs: typeArgs})
	litStart := p.tok.Span.Start
	for p.tt == TemplateHeadToken || p.tt == TemplateMiddleToken {
		value := p.data
		p.next()
		x := withContext(p, p.innerContext(), p.parseExpr)
		template.List = append(template.List, TemplatePart{Value: value, Expr: x})
		if !p.closeSubstitution("template literal", litStart) {
			template.Span = p.span(start)
			return template
		}
	}
	if p.tt == NoSubstitutionTemplateToken || p.tt == TemplateTailToken {
		template.Tail = p.data
		p.next()
	}
	template.Span = p.span(start)
	return template
}

// closeSubstitution expects the } that ends a template substitution and re-lexes it as the continuation of the template. It returns false when the template cannot be continued.
func (p *Parser) closeSubstitution(in string, start uint32) bool {
	if p.tt != CloseBraceToken {
		if p.speculating != 0 {
			p.fail(in, CloseBraceToken)
			return false
		}
		// without a } the template is unterminated and only the fatal error is reported
		closed := p.lookahead(func() bool {
			for p.tt != CloseBraceToken && p.tt != EOFToken {
				p.next()
			}
			return p.tt == CloseBraceToken
		})
		if !closed {
			for p.tt != EOFToken {
				p.next()
			}
			p.l.setFatal(int(start), len(p.src), "unterminated template literal")
			return false
		}
		p.fail(in, CloseBraceToken)
		for p.tt != CloseBraceToken && p.tt != EOFToken {
			p.next()
		}
	}
	p.setToken(p.l.ReLexTemplateTail(p.tok))
	return p.tt == TemplateMiddleToken || p.tt == TemplateTailToken
}

////////////////////////////////////////////////////////////////

// tryParseArrowFunc parses an arrow function if one starts at the current token. It commits as soon as the tokens can only be an arrow function, and otherwise parses speculatively.
func (p *Parser) tryParseArrowFunc(noReturnType bool) (IExpr, bool) {
	start := p.tok.Span.Start
	switch p.tt {
	case AsyncToken:
		next := p.peek()
		if next.Newline {
			return nil, false
		} else if p.isIdentifier(next.Kind) {
			if !p.lookahead(func() bool {
				p.next()
				p.next()
				return p.tt == ArrowToken && !p.tok.Newline
			}) {
				return nil, false
			}
			p.next()
			return p.parseSimpleArrow(start, true), true
		} else if next.Kind != OpenParenToken && (next.Kind != LtToken || !p.st.TypeScript) {
			return nil, false
		}
		var tri tristate
		p.lookahead(func() bool {
			p.next()
			tri = p.isParenthesizedArrow()
			return true
		})
		return p.parseParenArrowIf(tri, start, true, noReturnType)
	case OpenParenToken, LtToken:
		var tri tristate
		p.lookahead(func() bool {
			tri = p.isParenthesizedArrow()
			return true
		})
		return p.parseParenArrowIf(tri, start, false, noReturnType)
	}
	if p.isIdentifier(p.tt) {
		if next := p.peek(); next.Kind == ArrowToken && !next.Newline {
			return p.parseSimpleArrow(start, false), true
		}
	}
	return nil, false
}

func (p *Parser) parseParenArrowIf(tri tristate, start uint32, async, noReturnType bool) (IExpr, bool) {
	if tri == tristateTrue && noReturnType {
		tri = tristateMaybe
	}
	switch tri {
	case tristateTrue:
		arrow, _ := p.parseParenArrow(start, async, noReturnType)
		return arrow, true
	case tristateMaybe:
		return tryParse(p, "arrow function", func() (IExpr, bool) {
			return p.parseParenArrow(start, async, noReturnType)
		})
	}
	return nil, false
}

// arrowContext returns the context for the parameters and body of an arrow function.
func (p *Parser) arrowContext(async bool) Context {
	return p.ctx.Without(ContextNoArrowReturnType | ContextInType | ContextDisallowConditionalTypes | ContextDecorator).
		And(ContextAwait, async)
}

func (p *Parser) parseSimpleArrow(start uint32, async bool) IExpr {
	arrow := Alloc(p.a, ArrowFunc{Async: async})
	name := withContext(p, p.arrowContext(async), func() *BindingName {
		return p.parseBindingName("arrow function")
	})
	el := Alloc(p.a, BindingElement{Span: name.Span, Binding: name})
	arrow.Params = Params{Span: name.Span, List: []*BindingElement{el}}
	p.parseArrowBody(arrow)
	arrow.Span = p.span(start)
	return arrow
}

// parseParenArrow parses an arrow function with a parenthesized parameter list. It returns false when the result is not an arrow function after all.
func (p *Parser) parseParenArrow(start uint32, async, noReturnType bool) (IExpr, bool) {
	if async {
		p.next()
	}
	arrow := Alloc(p.a, ArrowFunc{Async: async})
	withContext(p, p.arrowContext(async).With(ContextIn), func() bool {
		if p.tt == LtToken || p.tt == LtLtToken {
			arrow.TypeParams = p.parseTypeParams()
		}
		arrow.Params = p.parseParams("arrow function")
		if p.st.TypeScript && p.tt == ColonToken {
			arrow.ReturnType = p.parseReturnType()
		}
		return true
	})
	if p.tt != ArrowToken {
		p.fail("arrow function", ArrowToken)
		arrow.Span = p.span(start)
		return arrow, false
	}
	p.parseArrowBody(arrow)
	arrow.Span = p.span(start)
	if noReturnType && arrow.ReturnType != nil && p.tt != ColonToken {
		return arrow, false
	}
	return arrow, true
}

func (p *Parser) parseArrowBody(arrow *ArrowFunc) {
	if p.tt != ArrowToken {
		p.fail("arrow function", ArrowToken)
		return
	} else if p.tok.Newline {
		p.error(p.tok.Span, "line terminator not permitted before arrow")
	}
	p.next()
	ctx := p.arrowContext(arrow.Async).Without(ContextYield)
	if p.tt == OpenBraceToken {
		arrow.Body = withContext(p, ctx.With(ContextReturn|ContextIn), func() *BlockStmt {
			return p.parseFuncBody("arrow function")
		})
	} else {
		arrow.Expr = withContext(p, ctx, p.parseAssignExpr)
	}
}

////////////////////////////////////////////////////////////////

// isAssignTarget returns true if x may appear on the left of an assignment or update. Array and object literals are only valid targets of a plain = assignment, where they are reinterpreted as patterns.
func isAssignTarget(x IExpr, pattern bool) bool {
	switch x := x.(type) {
	case *Var, *DotExpr, *IndexExpr, *BadExpr:
		return true
	case *ArrayExpr, *ObjectExpr:
		return pattern
	case *GroupExpr:
		return isAssignTarget(x.X, false)
	case *NonNullExpr:
		return isAssignTarget(x.X, false)
	case *AsExpr:
		return isAssignTarget(x.X, false)
	case *SatisfiesExpr:
		return isAssignTarget(x.X, false)
	case *TypeAssertion:
		return isAssignTarget(x.X, false)
	}
	return false
}
