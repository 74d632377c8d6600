package js

// parseStmt parses a statement. When listItem is false the statement is the body of an if, loop, with, or label, where declarations other than sloppy-mode functions are not allowed.
func (p *Parser) parseStmt(listItem bool) IStmt {
	start := p.tok.Span.Start
	moduleItem, topLevel := p.moduleItem, p.topLevel
	p.moduleItem, p.topLevel = false, false
	if !listItem && p.isDeclarationStart() {
		p.error(p.tok.Span, "declaration cannot appear in a single-statement context")
	}

	switch p.tt {
	case OpenBraceToken:
		return p.parseBlockStmt("block statement")
	case SemicolonToken:
		p.next()
		return Alloc(p.a, EmptyStmt{Span: p.span(start)})
	case VarToken:
		return p.parseVarStmt(start, false)
	case LetToken:
		if p.isLetDecl() {
			return p.parseVarStmt(start, false)
		}
	case ConstToken:
		if p.st.TypeScript && p.peek().Kind == EnumToken {
			p.next()
			return p.parseEnumDecl(start, true, false)
		}
		return p.parseVarStmt(start, false)
	case UsingToken:
		if p.isUsingDecl(false) {
			return p.parseUsingStmt(start, false, topLevel)
		}
	case AwaitToken:
		if p.isAwaitUsingDecl(false) {
			return p.parseUsingStmt(start, true, topLevel)
		}
	case IfToken:
		p.next()
		stmt := Alloc(p.a, IfStmt{})
		stmt.Cond = p.parseParenExpr("if statement")
		stmt.Body = p.parseStmt(false)
		if p.tt == ElseToken {
			p.next()
			stmt.Else = p.parseStmt(false)
		}
		stmt.Span = p.span(start)
		return stmt
	case WithToken:
		if p.ctx.Has(ContextStrict) {
			p.error(p.tok.Span, "with statement is not allowed in strict mode")
		}
		p.next()
		cond := p.parseParenExpr("with statement")
		body := p.parseStmt(false)
		return Alloc(p.a, WithStmt{Span: p.span(start), Cond: cond, Body: body})
	case DoToken:
		p.next()
		body := p.parseStmt(false)
		p.consume("do statement", WhileToken)
		cond := p.parseParenExpr("do statement")
		if p.tt == SemicolonToken {
			p.next()
		}
		return Alloc(p.a, DoWhileStmt{Span: p.span(start), Cond: cond, Body: body})
	case WhileToken:
		p.next()
		cond := p.parseParenExpr("while statement")
		body := p.parseStmt(false)
		return Alloc(p.a, WhileStmt{Span: p.span(start), Cond: cond, Body: body})
	case ForToken:
		return p.parseForStmt()
	case SwitchToken:
		return p.parseSwitchStmt()
	case ContinueToken, BreakToken:
		tt := p.tt
		p.next()
		var label []byte
		if !p.tok.Newline && p.isIdentifier(p.tt) {
			label = p.data
			p.next()
		}
		p.semicolon(tt.String() + " statement")
		return Alloc(p.a, BranchStmt{Span: p.span(start), Type: tt, Label: label})
	case ReturnToken:
		if !p.ctx.Has(ContextReturn) {
			p.error(p.tok.Span, "return statement is not allowed outside of a function")
		}
		p.next()
		var value IExpr
		if !p.tok.Newline && p.tt != SemicolonToken && p.tt != CloseBraceToken && p.tt != EOFToken {
			value = p.parseExprIn()
		}
		p.semicolon("return statement")
		return Alloc(p.a, ReturnStmt{Span: p.span(start), Value: value})
	case ThrowToken:
		p.next()
		if p.tok.Newline {
			p.error(p.tok.Span, "line break is not permitted after throw")
		}
		value := p.parseExprIn()
		p.semicolon("throw statement")
		return Alloc(p.a, ThrowStmt{Span: p.span(start), Value: value})
	case TryToken:
		return p.parseTryStmt()
	case DebuggerToken:
		p.next()
		p.semicolon("debugger statement")
		return Alloc(p.a, DebuggerStmt{Span: p.span(start)})
	case FunctionToken:
		if !listItem && p.ctx.Has(ContextStrict) {
			p.error(p.tok.Span, "function declarations are not allowed in a single-statement context in strict mode")
		}
		return p.parseFuncDecl(start, false, false, true)
	case AsyncToken:
		if next := p.peek(); next.Kind == FunctionToken && !next.Newline {
			p.next()
			return p.parseFuncDecl(start, true, false, true)
		}
	case ClassToken:
		return p.parseClassDecl(start, nil, false, false, true)
	case AtToken:
		decorators := p.parseDecorators()
		switch p.tt {
		case ClassToken:
			return p.parseClassDecl(start, decorators, false, false, true)
		case AbstractToken:
			p.next()
			return p.parseClassDecl(start, decorators, true, false, true)
		case ExportToken:
			if !moduleItem {
				p.error(p.tok.Span, "export declarations may only appear at the top level of a module")
			}
			return p.parseExportStmt(start, decorators)
		}
		p.fail("decorator", ClassToken)
		return Alloc(p.a, ExprStmt{Span: p.span(start), Value: Alloc(p.a, BadExpr{Span: p.span(p.tok.Span.Start)})})
	case ImportToken:
		if next := p.peek().Kind; next != OpenParenToken && next != DotToken {
			if !moduleItem {
				p.error(p.tok.Span, "import declarations may only appear at the top level of a module")
			}
			return p.parseImportStmt()
		}
	case ExportToken:
		if !moduleItem {
			p.error(p.tok.Span, "export declarations may only appear at the top level of a module")
		}
		return p.parseExportStmt(start, nil)
	}

	if stmt, ok := p.parseTSDeclStmt(start); ok {
		return stmt
	}

	if p.isIdentifier(p.tt) && p.peek().Kind == ColonToken {
		label := p.data
		p.next()
		p.next()
		if p.tt == FunctionToken && p.ctx.Has(ContextStrict) {
			p.error(p.tok.Span, "labelled function declarations are not allowed in strict mode")
		}
		value := p.parseStmt(false)
		return Alloc(p.a, LabelledStmt{Span: p.span(start), Label: label, Value: value})
	}

	value := p.parseExprIn()
	p.semicolon("expression statement")
	return Alloc(p.a, ExprStmt{Span: p.span(start), Value: value})
}

// isDeclarationStart returns true at let, const, class, and the TypeScript declaration keywords when they start a declaration.
func (p *Parser) isDeclarationStart() bool {
	switch p.tt {
	case ConstToken, ClassToken:
		return true
	case LetToken:
		return p.peek().Kind == OpenBracketToken
	case UsingToken:
		return p.isUsingDecl(false)
	case AwaitToken:
		return p.isAwaitUsingDecl(false)
	case InterfaceToken, EnumToken:
		return p.st.TypeScript
	case TypeToken:
		next := p.peek()
		return p.st.TypeScript && !next.Newline && p.isIdentifier(next.Kind)
	}
	return false
}

// isLetDecl returns true if let starts a lexical declaration rather than being an identifier.
func (p *Parser) isLetDecl() bool {
	next := p.peek()
	switch next.Kind {
	case OpenBracketToken, OpenBraceToken:
		return true
	case InToken, InstanceofToken, OfToken:
		return false
	}
	return p.isIdentifier(next.Kind) || next.Kind == YieldToken || next.Kind == AwaitToken || next.Kind == LetToken
}

// isUsingDecl returns true if using starts a using declaration rather than being an identifier. In a for head, using of is the start of a for-of statement.
func (p *Parser) isUsingDecl(forInit bool) bool {
	next := p.peek()
	if next.Newline || forInit && next.Kind == OfToken {
		return false
	}
	return p.isIdentifier(next.Kind)
}

func (p *Parser) isAwaitUsingDecl(forInit bool) bool {
	if next := p.peek(); !p.ctx.Has(ContextAwait) || next.Kind != UsingToken || next.Newline {
		return false
	}
	return p.lookahead(func() bool {
		p.next()
		return p.isUsingDecl(forInit)
	})
}

func (p *Parser) parseBlockStmt(in string) *BlockStmt {
	start := p.tok.Span.Start
	if !p.consume(in, OpenBraceToken) {
		return Alloc(p.a, BlockStmt{Span: p.span(start)})
	}
	list := p.parseStmtList()
	p.consume(in, CloseBraceToken)
	return Alloc(p.a, BlockStmt{Span: p.span(start), List: list})
}

func (p *Parser) parseStmtList() []IStmt {
	var list []IStmt
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		start := p.tok.Span.Start
		if stmt := p.parseStmt(true); stmt != nil {
			list = append(list, stmt)
		}
		p.skipIfStuck(start)
	}
	return list
}

// parseFuncBody parses a function body with its directive prologue. The caller sets the function context.
func (p *Parser) parseFuncBody(in string) *BlockStmt {
	start := p.tok.Span.Start
	if !p.consume(in, OpenBraceToken) {
		return Alloc(p.a, BlockStmt{Span: p.span(start)})
	}
	directives := p.parseDirectives()
	list := p.parseStmtList()
	p.consume(in, CloseBraceToken)
	return Alloc(p.a, BlockStmt{Span: p.span(start), Directives: directives, List: list})
}

func (p *Parser) parseParenExpr(in string) IExpr {
	p.consume(in, OpenParenToken)
	x := p.parseExprIn()
	p.consume(in, CloseParenToken)
	return x
}

func (p *Parser) parseVarStmt(start uint32, declare bool) IStmt {
	decl := p.parseVarDecl(start, declare)
	p.semicolon(decl.TokenType.String() + " declaration")
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseUsingStmt(start uint32, await, topLevel bool) IStmt {
	if topLevel && !p.st.Module {
		p.error(p.tok.Span, "using declarations are not allowed at the top level of a script")
	}
	decl := p.parseUsingDecl(start, await)
	p.semicolon("using declaration")
	decl.Span = p.span(start)
	return decl
}

// parseUsingDecl parses using or await using declarations, starting at using or await.
func (p *Parser) parseUsingDecl(start uint32, await bool) *VarDecl {
	if await {
		p.next()
	}
	decl := p.parseVarDecl(start, false)
	decl.Await = await
	return decl
}

func (p *Parser) parseVarDecl(start uint32, declare bool) *VarDecl {
	decl := Alloc(p.a, VarDecl{TokenType: p.tt, Declare: declare})
	p.next()
	for {
		decl.List = append(decl.List, p.parseDeclarator(decl.TokenType))
		if p.tt != CommaToken {
			break
		}
		p.next()
	}
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseDeclarator(tt TokenType) *BindingElement {
	start := p.tok.Span.Start
	if p.tt == LetToken && tt != VarToken {
		p.error(p.tok.Span, "let is disallowed as a lexically bound name")
	}
	el := Alloc(p.a, BindingElement{Binding: p.parseBindingTarget("variable declaration")})
	_, isName := el.Binding.(*BindingName)
	if tt == UsingToken && !isName {
		p.error(el.Binding.Loc(), "using declarations may not have binding patterns")
	}
	if p.st.TypeScript && p.tt == NotToken && !p.tok.Newline {
		el.Definite = true
		p.next()
	}
	if p.st.TypeScript && p.tt == ColonToken {
		el.Type = p.parseTypeAnnotation()
	}
	if p.tt == EqToken {
		p.next()
		el.Default = p.parseAssignExpr()
	} else if !p.inForInit && !p.ctx.Has(ContextAmbient) {
		if !isName && tt != UsingToken {
			p.error(p.span(start), "missing initializer in destructuring declaration")
		} else if isName && (tt == ConstToken || tt == UsingToken) {
			p.error(p.span(start), "missing initializer in "+tt.String()+" declaration")
		}
	}
	el.Span = p.span(start)
	return el
}

func (p *Parser) parseForStmt() IStmt {
	start := p.tok.Span.Start
	p.next()
	await := false
	if p.tt == AwaitToken && p.ctx.Has(ContextAwait) {
		await = true
		p.next()
	}
	p.consume("for statement", OpenParenToken)

	var init IExpr
	coverInits := len(p.coverInits)
	p.inForInit = true
	withContext(p, p.ctx.Without(ContextIn), func() bool {
		initStart := p.tok.Span.Start
		if p.tt == VarToken || p.tt == ConstToken || p.tt == LetToken && p.isLetDecl() {
			init = p.parseVarDecl(initStart, false)
		} else if p.tt == UsingToken && p.isUsingDecl(true) {
			init = p.parseUsingDecl(initStart, false)
		} else if p.tt == AwaitToken && p.isAwaitUsingDecl(true) {
			init = p.parseUsingDecl(initStart, true)
		} else if p.tt != SemicolonToken {
			init = p.parseExpr()
		}
		return true
	})
	p.inForInit = false

	switch p.tt {
	case InToken, OfToken:
		tt := p.tt
		if init == nil {
			p.fail("for statement", SemicolonToken)
		} else if decl, ok := init.(*VarDecl); ok {
			if decl.TokenType == UsingToken && tt == InToken {
				kind := "using"
				if decl.Await {
					kind = "await using"
				}
				p.error(decl.Span, kind+" declarations are not allowed in a for-in statement")
			} else if len(decl.List) != 1 {
				p.error(decl.Span, "only a single variable declaration is allowed in a for-"+tt.String()+" statement")
			} else if decl.List[0].Default != nil && (tt == OfToken || decl.TokenType != VarToken || p.ctx.Has(ContextStrict)) {
				p.error(decl.Span, "for-"+tt.String()+" loop variable declaration may not have an initializer")
			}
		} else if !isAssignTarget(init, true) {
			p.error(init.Loc(), "invalid left-hand side in for-"+tt.String()+" statement")
		}
		if await && tt == InToken {
			p.fail("for statement", OfToken)
		}
		p.coverInits = p.coverInits[:coverInits]
		p.next()
		var value IExpr
		if tt == InToken {
			value = p.parseExprIn()
		} else {
			value = withContext(p, p.ctx.With(ContextIn), p.parseAssignExpr)
		}
		p.consume("for statement", CloseParenToken)
		body := p.parseStmt(false)
		if tt == InToken {
			return Alloc(p.a, ForInStmt{Span: p.span(start), Init: init, Value: value, Body: body})
		}
		return Alloc(p.a, ForOfStmt{Span: p.span(start), Await: await, Init: init, Value: value, Body: body})
	}

	if await {
		p.fail("for statement", OfToken)
	}
	if decl, ok := init.(*VarDecl); ok && !p.ctx.Has(ContextAmbient) {
		for _, el := range decl.List {
			_, isName := el.Binding.(*BindingName)
			if el.Default != nil {
				continue
			} else if !isName && decl.TokenType != UsingToken {
				p.error(el.Span, "missing initializer in destructuring declaration")
			} else if isName && (decl.TokenType == ConstToken || decl.TokenType == UsingToken) {
				p.error(el.Span, "missing initializer in "+decl.TokenType.String()+" declaration")
			}
		}
	}
	p.reportCoverInits(coverInits)

	var cond, post IExpr
	p.consume("for statement", SemicolonToken)
	if p.tt != SemicolonToken {
		cond = p.parseExprIn()
	}
	p.consume("for statement", SemicolonToken)
	if p.tt != CloseParenToken {
		post = p.parseExprIn()
	}
	p.consume("for statement", CloseParenToken)
	body := p.parseStmt(false)
	return Alloc(p.a, ForStmt{Span: p.span(start), Init: init, Cond: cond, Post: post, Body: body})
}

func (p *Parser) parseSwitchStmt() IStmt {
	start := p.tok.Span.Start
	p.next()
	init := p.parseParenExpr("switch statement")
	stmt := Alloc(p.a, SwitchStmt{Init: init})
	p.consume("switch statement", OpenBraceToken)
	hasDefault := false
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		clauseStart := p.tok.Span.Start
		tt := p.tt
		var cond IExpr
		if tt == CaseToken {
			p.next()
			cond = p.parseExprIn()
		} else if tt == DefaultToken {
			if hasDefault {
				p.error(p.tok.Span, "more than one default clause in switch statement")
			}
			hasDefault = true
			p.next()
		} else {
			p.fail("switch statement", CaseToken, DefaultToken, CloseBraceToken)
			p.next()
			continue
		}
		p.consume("switch statement", ColonToken)

		var list []IStmt
		for p.tt != CaseToken && p.tt != DefaultToken && p.tt != CloseBraceToken && p.tt != EOFToken {
			stmtStart := p.tok.Span.Start
			list = append(list, p.parseStmt(true))
			p.skipIfStuck(stmtStart)
		}
		stmt.List = append(stmt.List, Alloc(p.a, CaseClause{Span: p.span(clauseStart), TokenType: tt, Cond: cond, List: list}))
	}
	p.consume("switch statement", CloseBraceToken)
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) parseTryStmt() IStmt {
	start := p.tok.Span.Start
	p.next()
	stmt := Alloc(p.a, TryStmt{Body: p.parseBlockStmt("try statement")})
	if p.tt == CatchToken {
		catchStart := p.tok.Span.Start
		p.next()
		clause := Alloc(p.a, CatchClause{})
		if p.tt == OpenParenToken {
			p.next()
			clause.Binding = p.parseBindingTarget("catch clause")
			if p.st.TypeScript && p.tt == ColonToken {
				clause.Type = p.parseTypeAnnotation()
			}
			p.consume("catch clause", CloseParenToken)
		}
		clause.Body = p.parseBlockStmt("catch clause")
		clause.Span = p.span(catchStart)
		stmt.Catch = clause
	}
	if p.tt == FinallyToken {
		p.next()
		stmt.Finally = p.parseBlockStmt("finally clause")
	}
	if stmt.Catch == nil && stmt.Finally == nil {
		p.fail("try statement", CatchToken, FinallyToken)
	}
	stmt.Span = p.span(start)
	return stmt
}

////////////////////////////////////////////////////////////////

// funcContext returns the context for the parameters and body of a function.
func (p *Parser) funcContext(async, generator bool) Context {
	return p.ctx.Without(ContextYield|ContextAwait|ContextNoArrowReturnType|ContextDisallowConditionalTypes|ContextInType|ContextDecorator|ContextClassField).
		With(ContextReturn|ContextIn).
		And(ContextYield, generator).
		And(ContextAwait, async)
}

// parseFuncDecl parses a function declaration or expression starting at the function keyword. Declarations without a body are TypeScript overloads or ambient declarations.
func (p *Parser) parseFuncDecl(start uint32, async, declare, nameRequired bool) *FuncDecl {
	p.next()
	fn := Alloc(p.a, FuncDecl{Async: async, Declare: declare})
	if p.tt == MulToken {
		fn.Generator = true
		p.next()
	}
	if p.isIdentifier(p.tt) || nameRequired && IsIdentifierName(p.tt) {
		fn.Name = p.parseBindingName("function declaration")
	} else if nameRequired {
		p.fail("function declaration", IdentifierToken)
	}

	withContext(p, p.funcContext(async, fn.Generator), func() bool {
		p.parseSignature("function declaration", &fn.TypeParams, &fn.Params, &fn.ReturnType)
		if p.tt == OpenBraceToken {
			if declare || p.ctx.Has(ContextAmbient) {
				p.error(p.tok.Span, "an implementation cannot be declared in ambient contexts")
			}
			fn.Body = p.parseFuncBody("function body")
		} else if p.st.TypeScript && nameRequired {
			p.semicolon("function declaration")
		} else {
			p.fail("function declaration", OpenBraceToken)
		}
		return true
	})
	fn.Span = p.span(start)
	return fn
}

// parseSignature parses optional type parameters, the parameter list, and an optional return type.
func (p *Parser) parseSignature(in string, typeParams **TypeParams, params *Params, returnType *IType) {
	if p.st.TypeScript && (p.tt == LtToken || p.tt == LtLtToken) {
		*typeParams = p.parseTypeParams()
	}
	*params = p.parseParams(in)
	if p.st.TypeScript && p.tt == ColonToken {
		*returnType = p.parseReturnType()
	}
}

func (p *Parser) parseParams(in string) Params {
	start := p.tok.Span.Start
	params := Params{}
	if !p.consume(in, OpenParenToken) {
		params.Span = p.span(start)
		return params
	}
	for p.tt != CloseParenToken && p.tt != EOFToken {
		if p.tt == EllipsisToken {
			restStart := p.tok.Span.Start
			p.next()
			params.Rest = p.parseParam(restStart, true)
			if p.tt == CommaToken {
				p.error(p.tok.Span, "rest parameter must be the last parameter")
				p.next()
			}
			break
		}
		params.List = append(params.List, p.parseParam(p.tok.Span.Start, false))
		if p.tt != CloseParenToken && !p.consume(in, CommaToken) {
			break
		}
	}
	p.consume(in, CloseParenToken)
	params.Span = p.span(start)
	return params
}

func (p *Parser) parseParam(start uint32, rest bool) *BindingElement {
	el := Alloc(p.a, BindingElement{})
	if !rest && p.tt == AtToken {
		el.Decorators = p.parseDecorators()
	}
	if p.st.TypeScript && !rest {
		el.Modifiers = p.parseParamModifiers()
	}
	if p.st.TypeScript && p.tt == ThisToken && !rest {
		thisStart := p.tok.Span.Start
		p.next()
		el.Binding = Alloc(p.a, BindingName{Span: p.span(thisStart), Data: []byte("this")})
	} else {
		el.Binding = p.parseBindingTarget("parameter")
	}
	if p.st.TypeScript && p.tt == QuestionToken {
		el.Optional = true
		p.next()
	}
	if p.st.TypeScript && p.tt == ColonToken {
		el.Type = p.parseTypeAnnotation()
	}
	if p.tt == EqToken {
		if rest {
			p.error(p.tok.Span, "rest parameter cannot have an initializer")
		} else if p.ctx.Has(ContextInType) {
			p.error(p.tok.Span, "parameter initializers are not allowed in function types")
		}
		p.next()
		el.Default = withContext(p, p.ctx.With(ContextIn), p.parseAssignExpr)
	}
	el.Span = p.span(start)
	return el
}

func (p *Parser) parseParamModifiers() ParamModifiers {
	var m ParamModifiers
	for {
		tt := p.tt
		switch tt {
		case PublicToken, PrivateToken, ProtectedToken, ReadonlyToken, OverrideToken:
		default:
			return m
		}
		if next := p.peek().Kind; !IsIdentifierName(next) && next != OpenBracketToken && next != OpenBraceToken {
			return m
		}
		switch tt {
		case ReadonlyToken:
			m.Readonly = true
		case OverrideToken:
			m.Override = true
		default:
			if m.Accessibility != 0 {
				p.error(p.tok.Span, "accessibility modifier already seen")
			}
			m.Accessibility = tt
		}
		p.next()
	}
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseBindingTarget(in string) IBinding {
	switch p.tt {
	case OpenBracketToken:
		return p.parseBindingArray(in)
	case OpenBraceToken:
		return p.parseBindingObject(in)
	}
	return p.parseBindingName(in)
}

// parseBindingElement parses a pattern entry with an optional default value.
func (p *Parser) parseBindingElement(in string) *BindingElement {
	start := p.tok.Span.Start
	el := Alloc(p.a, BindingElement{Binding: p.parseBindingTarget(in)})
	if p.tt == EqToken {
		p.next()
		el.Default = withContext(p, p.ctx.With(ContextIn), p.parseAssignExpr)
	}
	el.Span = p.span(start)
	return el
}

func (p *Parser) parseBindingArray(in string) *BindingArray {
	start := p.tok.Span.Start
	p.next()
	n := Alloc(p.a, BindingArray{})
	for p.tt != CloseBracketToken && p.tt != EOFToken {
		if p.tt == CommaToken {
			n.List = append(n.List, nil)
			p.next()
			continue
		} else if p.tt == EllipsisToken {
			p.next()
			n.Rest = p.parseBindingTarget(in)
			if p.tt == CommaToken {
				p.error(p.tok.Span, "rest element must be last element")
				p.next()
			}
			break
		}
		n.List = append(n.List, p.parseBindingElement(in))
		if p.tt != CloseBracketToken && !p.consume(in, CommaToken) {
			break
		}
	}
	p.consume(in, CloseBracketToken)
	n.Span = p.span(start)
	return n
}

func (p *Parser) parseBindingObject(in string) *BindingObject {
	start := p.tok.Span.Start
	p.next()
	n := Alloc(p.a, BindingObject{})
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		if p.tt == EllipsisToken {
			p.next()
			n.Rest = p.parseBindingName(in)
			if p.tt == CommaToken {
				p.error(p.tok.Span, "rest element must be last element")
				p.next()
			}
			break
		}
		itemStart := p.tok.Span.Start
		item := Alloc(p.a, BindingObjectItem{})
		if IsIdentifierName(p.tt) && p.peek().Kind != ColonToken {
			item.Value = p.parseBindingElement(in)
		} else {
			item.Key = p.parsePropertyName(in)
			p.consume(in, ColonToken)
			item.Value = p.parseBindingElement(in)
		}
		item.Span = p.span(itemStart)
		n.List = append(n.List, item)
		if p.tt != CloseBraceToken && !p.consume(in, CommaToken) {
			break
		}
	}
	p.consume(in, CloseBraceToken)
	n.Span = p.span(start)
	return n
}
