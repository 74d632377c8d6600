package js

import (
	"bytes"
)

// parseImportStmt parses an import declaration at the import keyword, including TypeScript's import A = B.
func (p *Parser) parseImportStmt() IStmt {
	start := p.tok.Span.Start
	p.next()
	stmt := Alloc(p.a, ImportStmt{})
	if p.st.TypeScript && p.tt == TypeToken && p.isTypeOnlyImport() {
		stmt.TypeOnly = true
		p.next()
	}
	if p.tt == StringToken {
		stmt.Module = p.data
		p.next()
		stmt.Attributes = p.parseImportAttributes()
		p.semicolon("import statement")
		stmt.Span = p.span(start)
		return stmt
	}

	if p.isIdentifier(p.tt) {
		name := p.parseBindingName("import statement")
		if p.st.TypeScript && p.tt == EqToken {
			return p.parseImportEquals(start, stmt.TypeOnly, name)
		}
		stmt.Default = name
		if p.tt == CommaToken {
			p.next()
		} else if p.tt != FromToken {
			p.fail("import statement", FromToken)
		}
	}
	if p.tt == MulToken {
		p.next()
		p.consume("import statement", AsToken)
		stmt.Namespace = p.parseBindingName("import statement")
	} else if p.tt == OpenBraceToken {
		stmt.List = p.parseImportSpecifiers()
	} else if stmt.Default == nil {
		p.fail("import statement", OpenBraceToken, MulToken, StringToken)
	}
	p.consume("import statement", FromToken)
	if p.tt == StringToken {
		stmt.Module = p.data
		p.next()
	} else {
		p.fail("import statement", StringToken)
	}
	stmt.Attributes = p.parseImportAttributes()
	p.semicolon("import statement")
	stmt.Span = p.span(start)
	return stmt
}

// isTypeOnlyImport returns true if the type keyword after import is a modifier rather than a default import named type.
func (p *Parser) isTypeOnlyImport() bool {
	next := p.peek().Kind
	if next == OpenBraceToken || next == MulToken {
		return true
	} else if next == FromToken {
		// import type from "m" imports a default named type
		return p.lookahead(func() bool {
			p.next()
			p.next()
			return p.tt != StringToken
		})
	}
	return p.isIdentifier(next)
}

func (p *Parser) parseImportSpecifiers() []*ImportSpecifier {
	list := []*ImportSpecifier{}
	p.next()
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		start := p.tok.Span.Start
		spec := Alloc(p.a, ImportSpecifier{})
		if p.st.TypeScript && p.tt == TypeToken && p.isTypeOnlySpecifier() {
			spec.TypeOnly = true
			p.next()
		}
		if p.tt == StringToken || IsIdentifierName(p.tt) && p.peek().Kind == AsToken {
			spec.Imported = p.data
			p.next()
			p.consume("import specifier", AsToken)
		}
		spec.Local = p.parseBindingName("import specifier")
		spec.Span = p.span(start)
		list = append(list, spec)
		if p.tt != CloseBraceToken && !p.consume("import specifier", CommaToken) {
			break
		}
	}
	p.consume("import specifier", CloseBraceToken)
	return list
}

// isTypeOnlySpecifier returns true if the type keyword in a specifier list is a modifier rather than the name type.
func (p *Parser) isTypeOnlySpecifier() bool {
	next := p.peek().Kind
	if next == AsToken {
		// { type as x } imports type, { type as as x } imports as
		return p.lookahead(func() bool {
			p.next()
			p.next()
			return p.tt == AsToken
		})
	}
	return IsIdentifierName(next) || next == StringToken
}

// parseImportAttributes parses with { key: "value" }, or the deprecated assert form.
func (p *Parser) parseImportAttributes() []*ImportAttribute {
	if p.tt != WithToken && !(p.tt == IdentifierToken && bytes.Equal(p.data, []byte("assert")) && !p.tok.Newline) {
		return nil
	}
	p.next()
	list := []*ImportAttribute{}
	if !p.consume("import attributes", OpenBraceToken) {
		return list
	}
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		start := p.tok.Span.Start
		attr := Alloc(p.a, ImportAttribute{})
		if IsIdentifierName(p.tt) || p.tt == StringToken {
			attr.Key = p.data
			p.next()
		} else {
			p.fail("import attributes", IdentifierToken, StringToken)
			break
		}
		p.consume("import attributes", ColonToken)
		if p.tt == StringToken {
			attr.Value = p.data
			p.next()
		} else {
			p.fail("import attributes", StringToken)
		}
		attr.Span = p.span(start)
		list = append(list, attr)
		if p.tt != CloseBraceToken && !p.consume("import attributes", CommaToken) {
			break
		}
	}
	p.consume("import attributes", CloseBraceToken)
	return list
}

// parseImportEquals parses the rest of import A = B.C or import A = require("m") at the =.
func (p *Parser) parseImportEquals(start uint32, typeOnly bool, name *BindingName) IStmt {
	p.next()
	decl := Alloc(p.a, ImportEqualsDecl{TypeOnly: typeOnly, Name: name})
	if p.tt == RequireToken && p.peek().Kind == OpenParenToken {
		p.next()
		p.next()
		if p.tt == StringToken {
			decl.Module = p.data
			p.next()
		} else {
			p.fail("import declaration", StringToken)
		}
		p.consume("import declaration", CloseParenToken)
	} else {
		decl.Value = p.parseEntityName("import declaration")
	}
	p.semicolon("import declaration")
	decl.Span = p.span(start)
	return decl
}

////////////////////////////////////////////////////////////////

// parseExportStmt parses an export declaration at the export keyword. Decorators that preceded export apply to the exported class.
func (p *Parser) parseExportStmt(start uint32, decorators []*Decorator) IStmt {
	p.next()
	if p.tt == AtToken {
		decorators = append(decorators, p.parseDecorators()...)
	}
	stmt := Alloc(p.a, ExportStmt{})
	next := p.peek()

	switch {
	case p.st.TypeScript && p.tt == EqToken:
		p.next()
		value := p.parseExprIn()
		p.semicolon("export assignment")
		return Alloc(p.a, ExportAssignStmt{Span: p.span(start), Value: value})
	case p.st.TypeScript && p.tt == AsToken:
		p.next()
		p.consume("export statement", NamespaceToken)
		n := Alloc(p.a, ExportAsNamespaceStmt{})
		if p.isIdentifier(p.tt) {
			n.Name = p.data
			p.next()
		} else {
			p.fail("export statement", IdentifierToken)
		}
		p.semicolon("export statement")
		n.Span = p.span(start)
		return n
	case p.st.TypeScript && p.tt == ImportToken:
		importStart := p.tok.Span.Start
		p.next()
		typeOnly := false
		if p.tt == TypeToken && p.isIdentifier(p.peek().Kind) {
			typeOnly = true
			p.next()
		}
		name := p.parseBindingName("export statement")
		if p.tt != EqToken {
			p.fail("export statement", EqToken)
		}
		stmt.Decl = p.parseImportEquals(importStart, typeOnly, name)
	case p.tt == DefaultToken:
		stmt.Default = true
		p.next()
		stmt.Decl = p.parseExportDefault(decorators)
		decorators = nil
	case p.tt == MulToken || p.st.TypeScript && p.tt == TypeToken && next.Kind == MulToken:
		if p.tt == TypeToken {
			stmt.TypeOnly = true
			p.next()
		}
		p.next()
		stmt.Star = true
		if p.tt == AsToken {
			p.next()
			aliasStart := p.tok.Span.Start
			stmt.Namespace = Alloc(p.a, Alias{Binding: p.data})
			if IsIdentifierName(p.tt) || p.tt == StringToken {
				p.next()
			} else {
				p.fail("export statement", IdentifierToken)
			}
			stmt.Namespace.Span = p.span(aliasStart)
		}
		p.consume("export statement", FromToken)
		p.parseExportFrom(stmt)
		p.semicolon("export statement")
	case p.tt == OpenBraceToken || p.st.TypeScript && p.tt == TypeToken && next.Kind == OpenBraceToken:
		if p.tt == TypeToken {
			stmt.TypeOnly = true
			p.next()
		}
		stmt.List = p.parseExportSpecifiers()
		if p.tt == FromToken {
			p.next()
			p.parseExportFrom(stmt)
		}
		p.semicolon("export statement")
	default:
		if !p.isExportableDecl() {
			p.fail("export statement")
			stmt.Span = p.span(start)
			return stmt
		}
		declStart := p.tok.Span.Start
		if p.tt == ClassToken {
			stmt.Decl = p.parseClassDecl(declStart, decorators, false, false, true)
			decorators = nil
		} else if p.tt == AbstractToken {
			p.next()
			stmt.Decl = p.parseClassDecl(declStart, decorators, true, false, true)
			decorators = nil
		} else {
			stmt.Decl = p.parseStmt(true)
		}
	}
	if decorators != nil {
		p.error(decorators[0].Span, "decorators are not valid here")
	}
	stmt.Span = p.span(start)
	return stmt
}

func (p *Parser) isExportableDecl() bool {
	switch p.tt {
	case VarToken, LetToken, ConstToken, FunctionToken, ClassToken:
		return true
	case AsyncToken:
		next := p.peek()
		return next.Kind == FunctionToken && !next.Newline
	case EnumToken, TypeToken, InterfaceToken, DeclareToken, NamespaceToken, ModuleToken, AbstractToken, GlobalToken:
		return p.st.TypeScript
	}
	return false
}

// parseExportDefault parses the declaration or expression after export default.
func (p *Parser) parseExportDefault(decorators []*Decorator) INode {
	start := p.tok.Span.Start
	switch p.tt {
	case FunctionToken:
		return p.parseFuncDecl(start, false, false, false)
	case AsyncToken:
		if next := p.peek(); next.Kind == FunctionToken && !next.Newline {
			p.next()
			return p.parseFuncDecl(start, true, false, false)
		}
	case ClassToken:
		return p.parseClassDecl(start, decorators, false, false, false)
	case AtToken:
		decorators = append(decorators, p.parseDecorators()...)
		if p.tt == AbstractToken && p.st.TypeScript {
			p.next()
			return p.parseClassDecl(start, decorators, true, false, false)
		} else if p.tt != ClassToken {
			p.fail("export default", ClassToken)
		}
		return p.parseClassDecl(start, decorators, false, false, false)
	case AbstractToken:
		if next := p.peek(); p.st.TypeScript && next.Kind == ClassToken && !next.Newline {
			p.next()
			return p.parseClassDecl(start, decorators, true, false, false)
		}
	case InterfaceToken:
		if next := p.peek(); p.st.TypeScript && p.isIdentifier(next.Kind) && !next.Newline {
			return p.parseInterfaceDecl(start, false)
		}
	}
	if decorators != nil {
		p.error(decorators[0].Span, "decorators are not valid here")
	}
	x := p.parseExprIn()
	p.semicolon("export default")
	return x
}

func (p *Parser) parseExportSpecifiers() []*Alias {
	list := []*Alias{}
	p.next()
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		start := p.tok.Span.Start
		alias := Alloc(p.a, Alias{})
		if p.st.TypeScript && p.tt == TypeToken && p.isTypeOnlySpecifier() {
			alias.TypeOnly = true
			p.next()
		}
		if IsIdentifierName(p.tt) || p.tt == StringToken {
			alias.Binding = p.data
			p.next()
		} else {
			p.fail("export specifier", IdentifierToken)
			break
		}
		if p.tt == AsToken {
			p.next()
			if IsIdentifierName(p.tt) || p.tt == StringToken {
				alias.Name = p.data
				p.next()
			} else {
				p.fail("export specifier", IdentifierToken)
			}
		}
		alias.Span = p.span(start)
		list = append(list, alias)
		if p.tt != CloseBraceToken && !p.consume("export specifier", CommaToken) {
			break
		}
	}
	p.consume("export specifier", CloseBraceToken)
	return list
}

// parseExportFrom parses the module specifier and attributes of a re-export.
func (p *Parser) parseExportFrom(stmt *ExportStmt) {
	if p.tt == StringToken {
		stmt.Module = p.data
		p.next()
	} else {
		p.fail("export statement", StringToken)
	}
	stmt.Attributes = p.parseImportAttributes()
}
