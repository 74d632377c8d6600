package js

// parseTSDeclStmt parses the TypeScript declarations that start with a contextual keyword. It returns false when the keyword is used as an identifier instead.
func (p *Parser) parseTSDeclStmt(start uint32) (IStmt, bool) {
	if !p.st.TypeScript {
		if p.tt == EnumToken || p.tt == InterfaceToken && p.ctx.Has(ContextStrict) {
			p.error(p.tok.Span, "'"+string(p.data)+"' is a reserved word")
		}
		return nil, false
	}

	next := p.peek()
	switch p.tt {
	case TypeToken:
		if !next.Newline && p.isIdentifier(next.Kind) {
			return p.parseTypeAlias(start, false), true
		}
	case InterfaceToken:
		if !next.Newline && p.isIdentifier(next.Kind) {
			return p.parseInterfaceDecl(start, false), true
		}
	case EnumToken:
		return p.parseEnumDecl(start, false, false), true
	case AbstractToken:
		if !next.Newline && next.Kind == ClassToken {
			p.next()
			return p.parseClassDecl(start, nil, true, false, true), true
		}
	case NamespaceToken:
		if !next.Newline && p.isIdentifier(next.Kind) {
			return p.parseModuleDecl(start, false), true
		}
	case ModuleToken:
		if !next.Newline && (p.isIdentifier(next.Kind) || next.Kind == StringToken) {
			return p.parseModuleDecl(start, false), true
		}
	case GlobalToken:
		if !next.Newline && next.Kind == OpenBraceToken && p.ctx.Has(ContextAmbient) {
			return p.parseModuleDecl(start, false), true
		}
	case DeclareToken:
		if !next.Newline && isAmbientDeclStart(next.Kind) {
			p.next()
			return withContext(p, p.ctx.With(ContextAmbient), func() IStmt {
				return p.parseAmbientDecl(start)
			}), true
		}
	}
	return nil, false
}

func isAmbientDeclStart(tt TokenType) bool {
	switch tt {
	case VarToken, LetToken, ConstToken, FunctionToken, ClassToken, AbstractToken, EnumToken,
		TypeToken, InterfaceToken, NamespaceToken, ModuleToken, GlobalToken:
		return true
	}
	return false
}

// parseAmbientDecl parses the declaration following declare.
func (p *Parser) parseAmbientDecl(start uint32) IStmt {
	switch p.tt {
	case VarToken, LetToken, ConstToken:
		if p.tt == ConstToken && p.peek().Kind == EnumToken {
			p.next()
			return p.parseEnumDecl(start, true, true)
		}
		return p.parseVarStmt(start, true)
	case FunctionToken:
		return p.parseFuncDecl(start, false, true, true)
	case ClassToken:
		return p.parseClassDecl(start, nil, false, true, true)
	case AbstractToken:
		p.next()
		return p.parseClassDecl(start, nil, true, true, true)
	case EnumToken:
		return p.parseEnumDecl(start, false, true)
	case TypeToken:
		return p.parseTypeAlias(start, true)
	case InterfaceToken:
		return p.parseInterfaceDecl(start, true)
	}
	return p.parseModuleDecl(start, true)
}

func (p *Parser) parseTypeAlias(start uint32, declare bool) IStmt {
	p.next()
	decl := Alloc(p.a, TypeAliasDecl{Declare: declare})
	decl.Name = p.parseBindingName("type alias")
	if p.tt == LtToken || p.tt == LtLtToken {
		decl.TypeParams = p.parseTypeParams()
	}
	p.consume("type alias", EqToken)
	decl.Type = withContext(p, p.typeContext(), p.parseType)
	p.semicolon("type alias")
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseInterfaceDecl(start uint32, declare bool) IStmt {
	p.next()
	decl := Alloc(p.a, InterfaceDecl{Declare: declare})
	decl.Name = p.parseBindingName("interface declaration")
	if p.tt == LtToken || p.tt == LtLtToken {
		decl.TypeParams = p.parseTypeParams()
	}
	if p.tt == ExtendsToken {
		p.next()
		decl.Extends = p.parseHeritageTypes()
	}
	if p.consume("interface declaration", OpenBraceToken) {
		decl.List = withContext(p, p.typeContext(), p.parseTypeMembers)
		p.consume("interface declaration", CloseBraceToken)
	}
	decl.Span = p.span(start)
	return decl
}

// parseEnumDecl parses an enum declaration at the enum keyword.
func (p *Parser) parseEnumDecl(start uint32, isConst, declare bool) IStmt {
	p.next()
	decl := Alloc(p.a, EnumDecl{Const: isConst, Declare: declare})
	decl.Name = p.parseBindingName("enum declaration")
	if !p.consume("enum declaration", OpenBraceToken) {
		decl.Span = p.span(start)
		return decl
	}
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		memberStart := p.tok.Span.Start
		member := Alloc(p.a, EnumMember{Name: p.parsePropertyName("enum member")})
		if member.Name.Literal == NumericToken || member.Name.Literal == BigIntToken {
			p.error(member.Name.Span, "enum member names cannot be numeric")
		} else if member.Name.Literal == PrivateIdentifierToken {
			p.error(member.Name.Span, "enum member names cannot be private")
		}
		if p.tt == EqToken {
			p.next()
			member.Init = withContext(p, p.ctx.With(ContextIn), p.parseAssignExpr)
		}
		member.Span = p.span(memberStart)
		decl.Members = append(decl.Members, member)
		if p.tt != CloseBraceToken && !p.consume("enum declaration", CommaToken) {
			break
		}
	}
	p.consume("enum declaration", CloseBraceToken)
	decl.Span = p.span(start)
	return decl
}

// parseModuleDecl parses namespace N {}, module "m" {}, and global {} at the keyword.
func (p *Parser) parseModuleDecl(start uint32, declare bool) IStmt {
	kind := p.tt
	if kind != NamespaceToken && kind != ModuleToken && kind != GlobalToken {
		p.fail("declare statement", NamespaceToken, ModuleToken)
		return Alloc(p.a, EmptyStmt{Span: p.span(start)})
	}
	p.next()
	return p.parseModuleRest(start, kind, declare)
}

// parseModuleRest parses the name and body of a module declaration. Dotted names A.B declare nested modules.
func (p *Parser) parseModuleRest(start uint32, kind TokenType, declare bool) *ModuleDecl {
	decl := Alloc(p.a, ModuleDecl{Declare: declare, Kind: kind})
	switch {
	case kind == GlobalToken:
		decl.Name = []byte("global")
	case kind == ModuleToken && p.tt == StringToken:
		decl.Name = p.data
		p.next()
		if p.tt != OpenBraceToken {
			p.semicolon("module declaration")
			decl.Span = p.span(start)
			return decl
		}
	default:
		if p.isIdentifier(p.tt) {
			decl.Name = p.data
			p.next()
		} else {
			p.fail("module declaration", IdentifierToken)
		}
		if p.tt == DotToken {
			p.next()
			decl.Body = p.parseModuleRest(p.tok.Span.Start, kind, declare)
			decl.Span = p.span(start)
			return decl
		}
	}
	decl.Body = p.parseModuleBlock()
	decl.Span = p.span(start)
	return decl
}

// parseModuleBlock parses the body of a namespace, where import and export declarations are allowed.
func (p *Parser) parseModuleBlock() *BlockStmt {
	start := p.tok.Span.Start
	block := Alloc(p.a, BlockStmt{})
	if p.consume("module declaration", OpenBraceToken) {
		withContext(p, p.ctx.Without(ContextReturn|ContextYield), func() bool {
			for p.tt != CloseBraceToken && p.tt != EOFToken {
				itemStart := p.tok.Span.Start
				p.moduleItem = true
				if stmt := p.parseStmt(true); stmt != nil {
					block.List = append(block.List, stmt)
				}
				p.skipIfStuck(itemStart)
			}
			return true
		})
		p.consume("module declaration", CloseBraceToken)
	}
	block.Span = p.span(start)
	return block
}
