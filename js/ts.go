package js

// typeContext is the context for a type nested in brackets or following a colon.
func (p *Parser) typeContext() Context {
	return p.ctx.With(ContextInType).Without(ContextDisallowConditionalTypes | ContextDecorator | ContextNoArrowReturnType)
}

// parseTypeAnnotation parses : Type.
func (p *Parser) parseTypeAnnotation() IType {
	start := p.tok.Span.Start
	if !p.consume("type annotation", ColonToken) {
		return Alloc(p.a, BadType{Span: p.span(start)})
	}
	return withContext(p, p.typeContext(), p.parseType)
}

// parseReturnType parses the return type annotation of a signature, which may be a type predicate.
func (p *Parser) parseReturnType() IType {
	start := p.tok.Span.Start
	if !p.consume("return type", ColonToken) {
		return Alloc(p.a, BadType{Span: p.span(start)})
	}
	return withContext(p, p.typeContext(), p.parseTypeOrPredicate)
}

func (p *Parser) parseTypeOrPredicate() IType {
	start := p.tok.Span.Start
	next := p.peek()
	if p.tt == AssertsToken && !next.Newline && next.Kind != IsToken && (p.isIdentifier(next.Kind) || next.Kind == ThisToken) {
		p.next()
		pred := Alloc(p.a, TypePredicate{Asserts: true, Name: p.data})
		p.next()
		if p.tt == IsToken && !p.tok.Newline {
			p.next()
			pred.Type = p.parseType()
		}
		pred.Span = p.span(start)
		return pred
	} else if (p.isIdentifier(p.tt) || p.tt == ThisToken) && next.Kind == IsToken && !next.Newline {
		pred := Alloc(p.a, TypePredicate{Name: p.data})
		p.next()
		p.next()
		pred.Type = p.parseType()
		pred.Span = p.span(start)
		return pred
	}
	return p.parseType()
}

// parseType parses a type, including function, constructor, and conditional types.
func (p *Parser) parseType() IType {
	start := p.tok.Span.Start
	if p.isStartOfFunctionType() {
		return p.parseFunctionType(start, false, false)
	} else if p.tt == NewToken {
		return p.parseFunctionType(start, true, false)
	} else if p.tt == AbstractToken && p.peek().Kind == NewToken {
		p.next()
		return p.parseFunctionType(start, true, true)
	}

	check := p.parseUnionType()
	if p.ctx.Has(ContextDisallowConditionalTypes) || p.tt != ExtendsToken || p.tok.Newline {
		return check
	}
	p.next()
	cond := Alloc(p.a, ConditionalType{Check: check})
	cond.Extends = withContext(p, p.ctx.With(ContextDisallowConditionalTypes), p.parseType)
	p.consume("conditional type", QuestionToken)
	withContext(p, p.ctx.Without(ContextDisallowConditionalTypes), func() bool {
		cond.True = p.parseType()
		p.consume("conditional type", ColonToken)
		cond.False = p.parseType()
		return true
	})
	cond.Span = p.span(start)
	return cond
}

// parseFunctionType parses (params) => T, new (params) => T, and abstract new (params) => T.
func (p *Parser) parseFunctionType(start uint32, ctor, abstract bool) IType {
	if ctor {
		p.next()
	}
	var typeParams *TypeParams
	var params Params
	withContext(p, p.ctx.Without(ContextDisallowConditionalTypes), func() bool {
		if p.tt == LtToken || p.tt == LtLtToken {
			typeParams = p.parseTypeParams()
		}
		params = p.parseParams("function type")
		return true
	})
	var returnType IType
	if p.consume("function type", ArrowToken) {
		returnType = p.parseTypeOrPredicate()
	} else {
		returnType = Alloc(p.a, BadType{Span: p.span(p.tok.Span.Start)})
	}
	if ctor {
		return Alloc(p.a, ConstructorType{Span: p.span(start), Abstract: abstract, TypeParams: typeParams, Params: params, ReturnType: returnType})
	}
	return Alloc(p.a, FunctionType{Span: p.span(start), TypeParams: typeParams, Params: params, ReturnType: returnType})
}

// parseUnionType parses A | B, allowing a leading |.
func (p *Parser) parseUnionType() IType {
	start := p.tok.Span.Start
	if p.tt == BitOrToken {
		p.next()
	}
	t := p.parseIntersectionType()
	if p.tt != BitOrToken {
		return t
	}
	list := []IType{t}
	for p.tt == BitOrToken {
		p.next()
		list = append(list, p.parseIntersectionType())
	}
	return Alloc(p.a, UnionType{Span: p.span(start), List: list})
}

func (p *Parser) parseIntersectionType() IType {
	start := p.tok.Span.Start
	if p.tt == BitAndToken {
		p.next()
	}
	t := p.parseTypeOperator()
	if p.tt != BitAndToken {
		return t
	}
	list := []IType{t}
	for p.tt == BitAndToken {
		p.next()
		list = append(list, p.parseTypeOperator())
	}
	return Alloc(p.a, IntersectionType{Span: p.span(start), List: list})
}

// parseTypeOperator parses keyof, unique, readonly, and infer.
func (p *Parser) parseTypeOperator() IType {
	start := p.tok.Span.Start
	switch p.tt {
	case KeyofToken, UniqueToken, ReadonlyToken:
		op := p.tt
		p.next()
		t := p.parseTypeOperator()
		return Alloc(p.a, TypeOperator{Span: p.span(start), Op: op, Type: t})
	case InferToken:
		p.next()
		infer := Alloc(p.a, InferType{Name: p.parseBindingName("infer type")})
		if p.tt == ExtendsToken {
			// infer U extends C is a constraint unless it is the check type of a conditional type
			infer.Constraint, _ = tryParse(p, "infer constraint", func() (IType, bool) {
				p.next()
				constraint := withContext(p, p.ctx.With(ContextDisallowConditionalTypes), p.parseType)
				return constraint, p.ctx.Has(ContextDisallowConditionalTypes) || p.tt != QuestionToken
			})
		}
		infer.Span = p.span(start)
		return infer
	}
	return p.parsePostfixType()
}

// parsePostfixType parses T[] and T[K] on the same line.
func (p *Parser) parsePostfixType() IType {
	start := p.tok.Span.Start
	t := p.parsePrimaryType()
	for p.tt == OpenBracketToken && !p.tok.Newline {
		p.next()
		if p.tt == CloseBracketToken {
			p.next()
			t = Alloc(p.a, ArrayType{Span: p.span(start), Elem: t})
			continue
		}
		index := withContext(p, p.typeContext(), p.parseType)
		p.consume("indexed access type", CloseBracketToken)
		t = Alloc(p.a, IndexedAccessType{Span: p.span(start), Object: t, Index: index})
	}
	return t
}

func (p *Parser) parsePrimaryType() IType {
	start := p.tok.Span.Start
	switch p.tt {
	case VoidToken, NullToken, ThisToken:
		t := Alloc(p.a, TypeKeyword{Span: p.tok.Span, Kind: p.tt})
		p.next()
		return t
	case StringToken, NumericToken, BigIntToken, TrueToken, FalseToken:
		lit := Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: p.tt, Data: p.data})
		p.next()
		return Alloc(p.a, LiteralType{Span: lit.Span, Literal: lit})
	case SubToken:
		if next := p.peek().Kind; next == NumericToken || next == BigIntToken {
			p.next()
			lit := Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: p.tt, Data: p.data})
			p.next()
			neg := Alloc(p.a, UnaryExpr{Span: p.span(start), Op: NegToken, X: lit})
			return Alloc(p.a, LiteralType{Span: neg.Span, Literal: neg})
		}
	case NoSubstitutionTemplateToken, TemplateHeadToken:
		return p.parseTemplateLiteralType()
	case TypeofToken:
		return p.parseTypeQuery()
	case ImportToken:
		return p.parseImportType()
	case OpenBraceToken:
		if p.isStartOfMappedType() {
			return p.parseMappedType()
		}
		return p.parseTypeLiteral()
	case OpenBracketToken:
		return p.parseTupleType()
	case OpenParenToken:
		p.next()
		t := withContext(p, p.typeContext(), p.parseType)
		p.consume("parenthesized type", CloseParenToken)
		return Alloc(p.a, ParenType{Span: p.span(start), Type: t})
	}

	if IsTypeKeyword(p.tt) && p.peek().Kind != DotToken {
		t := Alloc(p.a, TypeKeyword{Span: p.tok.Span, Kind: p.tt})
		p.next()
		return t
	} else if IsIdentifierName(p.tt) {
		ref := Alloc(p.a, TypeReference{Name: p.parseEntityName("type reference")})
		if (p.tt == LtToken || p.tt == LtLtToken) && !p.tok.Newline {
			ref.TypeArgs = p.parseTypeArgs()
		}
		ref.Span = p.span(start)
		return ref
	}
	p.fail("type")
	if p.tt != EOFToken && p.tt != CloseBraceToken && p.tt != CloseParenToken && p.tt != CloseBracketToken && p.tt != SemicolonToken && p.tt != GtToken {
		p.next()
	}
	return Alloc(p.a, BadType{Span: p.span(start)})
}

// parseEntityName parses a dotted name such as A.B.C.
func (p *Parser) parseEntityName(in string) IExpr {
	start := p.tok.Span.Start
	var x IExpr
	if IsIdentifierName(p.tt) {
		x = Alloc(p.a, Var{Span: p.tok.Span, Data: p.data})
		p.next()
	} else {
		p.fail(in, IdentifierToken)
		return Alloc(p.a, BadExpr{Span: p.span(start)})
	}
	for p.tt == DotToken {
		p.next()
		x = p.parseMemberName(start, x, false)
	}
	return x
}

func (p *Parser) parseTypeQuery() IType {
	start := p.tok.Span.Start
	p.next()
	query := Alloc(p.a, TypeQuery{})
	if p.tt == ImportToken {
		query.Import = p.parseImportType().(*ImportType)
	} else {
		query.Name = p.parseEntityName("type query")
		if (p.tt == LtToken || p.tt == LtLtToken) && !p.tok.Newline {
			query.TypeArgs = p.parseTypeArgs()
		}
	}
	query.Span = p.span(start)
	return query
}

// parseImportType parses import("module").Name<Args>.
func (p *Parser) parseImportType() IType {
	start := p.tok.Span.Start
	p.next()
	t := Alloc(p.a, ImportType{})
	p.consume("import type", OpenParenToken)
	t.Argument = withContext(p, p.typeContext(), p.parseType)
	p.consume("import type", CloseParenToken)
	if p.tt == DotToken {
		p.next()
		t.Qualifier = p.parseEntityName("import type")
	}
	if (p.tt == LtToken || p.tt == LtLtToken) && !p.tok.Newline {
		t.TypeArgs = p.parseTypeArgs()
	}
	t.Span = p.span(start)
	return t
}

func (p *Parser) parseTemplateLiteralType() IType {
	start := p.tok.Span.Start
	t := Alloc(p.a, TemplateLiteralType{})
	for p.tt == TemplateHeadToken || p.tt == TemplateMiddleToken {
		value := p.data
		p.next()
		typ := withContext(p, p.typeContext(), p.parseType)
		t.List = append(t.List, TemplateTypePart{Value: value, Type: typ})
		if !p.closeSubstitution("template literal type", start) {
			t.Span = p.span(start)
			return t
		}
	}
	if p.tt == NoSubstitutionTemplateToken || p.tt == TemplateTailToken {
		t.Tail = p.data
		p.next()
	}
	t.Span = p.span(start)
	return t
}

func (p *Parser) parseTupleType() IType {
	start := p.tok.Span.Start
	p.next()
	tuple := Alloc(p.a, TupleType{})
	withContext(p, p.typeContext(), func() bool {
		for p.tt != CloseBracketToken && p.tt != EOFToken {
			tuple.List = append(tuple.List, p.parseTupleMember())
			if p.tt != CloseBracketToken && !p.consume("tuple type", CommaToken) {
				break
			}
		}
		return true
	})
	p.consume("tuple type", CloseBracketToken)
	tuple.Span = p.span(start)
	return tuple
}

func (p *Parser) parseTupleMember() IType {
	start := p.tok.Span.Start
	if p.tt == EllipsisToken {
		p.next()
		t := p.parseTupleMember()
		return Alloc(p.a, RestType{Span: p.span(start), Type: t})
	} else if p.isStartOfNamedTupleMember() {
		member := Alloc(p.a, NamedTupleMember{Name: p.data})
		p.next()
		if p.tt == QuestionToken {
			member.Optional = true
			p.next()
		}
		p.consume("tuple type", ColonToken)
		member.Type = p.parseType()
		member.Span = p.span(start)
		return member
	}
	t := p.parseType()
	if p.tt == QuestionToken {
		p.next()
		return Alloc(p.a, OptionalType{Span: p.span(start), Type: t})
	}
	return t
}

func (p *Parser) parseMappedType() IType {
	start := p.tok.Span.Start
	p.next()
	m := Alloc(p.a, MappedType{})
	if p.tt == AddToken || p.tt == SubToken {
		m.Readonly = mappedModifier(p.tt)
		p.next()
		p.consume("mapped type", ReadonlyToken)
	} else if p.tt == ReadonlyToken {
		m.Readonly = MappedTrue
		p.next()
	}
	p.consume("mapped type", OpenBracketToken)
	withContext(p, p.typeContext(), func() bool {
		m.Name = p.parseBindingName("mapped type")
		p.consume("mapped type", InToken)
		m.Constraint = p.parseType()
		if p.tt == AsToken {
			p.next()
			m.NameType = p.parseType()
		}
		p.consume("mapped type", CloseBracketToken)
		if p.tt == AddToken || p.tt == SubToken {
			m.Optional = mappedModifier(p.tt)
			p.next()
			p.consume("mapped type", QuestionToken)
		} else if p.tt == QuestionToken {
			m.Optional = MappedTrue
			p.next()
		}
		if p.tt == ColonToken {
			p.next()
			m.Type = p.parseType()
		}
		return true
	})
	if p.tt == SemicolonToken || p.tt == CommaToken {
		p.next()
	}
	p.consume("mapped type", CloseBraceToken)
	m.Span = p.span(start)
	return m
}

func mappedModifier(tt TokenType) MappedModifier {
	if tt == AddToken {
		return MappedPlus
	}
	return MappedMinus
}

func (p *Parser) parseTypeLiteral() IType {
	start := p.tok.Span.Start
	p.next()
	lit := Alloc(p.a, TypeLiteral{})
	lit.List = withContext(p, p.typeContext(), p.parseTypeMembers)
	p.consume("type literal", CloseBraceToken)
	lit.Span = p.span(start)
	return lit
}

// parseTypeMembers parses the members of an interface body or type literal up to the closing brace.
func (p *Parser) parseTypeMembers() []ISignature {
	var list []ISignature
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		start := p.tok.Span.Start
		list = append(list, p.parseTypeMember())
		if p.tt == SemicolonToken || p.tt == CommaToken {
			p.next()
		} else if !p.tok.Newline && p.tt != CloseBraceToken {
			p.fail("type member", SemicolonToken)
			if p.tok.Span.Start == start {
				p.next()
			}
			break
		}
	}
	return list
}

func (p *Parser) parseTypeMember() ISignature {
	start := p.tok.Span.Start
	switch p.tt {
	case OpenParenToken, LtToken:
		sig := Alloc(p.a, CallSignature{})
		p.parseSignature("call signature", &sig.TypeParams, &sig.Params, &sig.ReturnType)
		sig.Span = p.span(start)
		return sig
	case NewToken:
		if next := p.peek().Kind; next == OpenParenToken || next == LtToken {
			p.next()
			sig := Alloc(p.a, ConstructSignature{})
			p.parseSignature("construct signature", &sig.TypeParams, &sig.Params, &sig.ReturnType)
			sig.Span = p.span(start)
			return sig
		}
	}

	readonly := false
	if p.tt == ReadonlyToken && p.isModifier(false) {
		readonly = true
		p.next()
	}
	if p.tt == OpenBracketToken && p.isStartOfIndexSignature() {
		return p.parseIndexSignature(start, false, readonly)
	}
	kind := NormalMethod
	if (p.tt == GetToken || p.tt == SetToken) && p.isModifier(false) {
		kind = GetMethod
		if p.tt == SetToken {
			kind = SetMethod
		}
		p.next()
	}
	name := p.parsePropertyName("type member")
	optional := false
	if p.tt == QuestionToken {
		optional = true
		p.next()
	}
	if kind != NormalMethod || p.tt == OpenParenToken || p.tt == LtToken {
		sig := Alloc(p.a, MethodSignature{Kind: kind, Optional: optional, Name: name})
		p.parseSignature("method signature", &sig.TypeParams, &sig.Params, &sig.ReturnType)
		sig.Span = p.span(start)
		return sig
	}
	sig := Alloc(p.a, PropertySignature{Readonly: readonly, Optional: optional, Name: name})
	if p.tt == ColonToken {
		sig.Type = p.parseTypeAnnotation()
	}
	sig.Span = p.span(start)
	return sig
}

// parseIndexSignature parses [key: K]: T at the opening bracket.
func (p *Parser) parseIndexSignature(start uint32, static, readonly bool) *IndexSignature {
	p.next()
	sig := Alloc(p.a, IndexSignature{Static: static, Readonly: readonly})
	sig.Name = p.parseBindingName("index signature")
	sig.KeyType = p.parseTypeAnnotation()
	p.consume("index signature", CloseBracketToken)
	sig.Type = p.parseTypeAnnotation()
	sig.Span = p.span(start)
	return sig
}

////////////////////////////////////////////////////////////////

// parseTypeParams parses <T extends C = D, ...>.
func (p *Parser) parseTypeParams() *TypeParams {
	start := p.tok.Span.Start
	p.reLexLt()
	p.next()
	params := Alloc(p.a, TypeParams{})
	withContext(p, p.typeContext(), func() bool {
		for p.reLexGt(); p.tt != GtToken && p.tt != EOFToken; p.reLexGt() {
			params.List = append(params.List, p.parseTypeParam())
			p.reLexGt()
			if p.tt != GtToken && !p.consume("type parameters", CommaToken) {
				break
			}
		}
		return true
	})
	if len(params.List) == 0 {
		p.error(p.span(start), "type parameter list cannot be empty")
	}
	p.consumeGt("type parameters")
	params.Span = p.span(start)
	return params
}

func (p *Parser) parseTypeParam() *TypeParam {
	start := p.tok.Span.Start
	param := Alloc(p.a, TypeParam{})
	for (p.tt == ConstToken || p.tt == InToken || p.tt == OutToken) && IsIdentifierName(p.peek().Kind) {
		switch p.tt {
		case ConstToken:
			param.Const = true
		case InToken:
			param.In = true
		case OutToken:
			param.Out = true
		}
		p.next()
	}
	param.Name = p.parseBindingName("type parameter")
	if p.tt == ExtendsToken {
		p.next()
		param.Constraint = p.parseType()
	}
	if p.tt == EqToken {
		p.next()
		param.Default = p.parseType()
	}
	param.Span = p.span(start)
	return param
}

// parseTypeArgs parses <A, B>. A leading << or trailing >> is split as needed.
func (p *Parser) parseTypeArgs() *TypeArgs {
	start := p.tok.Span.Start
	p.reLexLt()
	p.next()
	args := Alloc(p.a, TypeArgs{})
	withContext(p, p.typeContext(), func() bool {
		for {
			args.List = append(args.List, p.parseType())
			p.reLexGt()
			if p.tt != CommaToken {
				break
			}
			p.next()
		}
		return true
	})
	p.consumeGt("type arguments")
	args.Span = p.span(start)
	return args
}
