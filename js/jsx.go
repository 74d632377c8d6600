package js

// parseJSXElement parses an element or fragment at its <. Inside the children of another element, the token following the final > is lexed as JSX text.
func (p *Parser) parseJSXElement(inChild bool) IExpr {
	start := p.tok.Span.Start
	p.next()
	if p.tt == GtToken {
		fragment := Alloc(p.a, JSXFragment{})
		p.nextJSXChild()
		fragment.Children = p.parseJSXChildren()
		p.parseJSXClosingTag(nil, inChild)
		fragment.Span = p.span(start)
		return fragment
	}

	el := Alloc(p.a, JSXElement{Name: p.parseJSXElementName()})
	if p.st.TypeScript && (p.tt == LtToken || p.tt == LtLtToken) {
		el.TypeArgs = p.parseTypeArgs()
	}
	for p.reLexGt(); p.tt != GtToken && p.tt != DivToken && p.tt != EOFToken; p.reLexGt() {
		attrStart := p.tok.Span.Start
		if p.tt == OpenBraceToken {
			p.next()
			p.consume("JSX spread attribute", EllipsisToken)
			x := withContext(p, p.innerContext(), p.parseAssignExpr)
			p.consume("JSX spread attribute", CloseBraceToken)
			el.Attrs = append(el.Attrs, Alloc(p.a, JSXSpreadAttr{Span: p.span(attrStart), X: x}))
			continue
		} else if !IsIdentifierName(p.tt) {
			p.fail("JSX element", IdentifierToken)
			break
		}
		attr := Alloc(p.a, JSXAttr{Name: p.parseJSXName(false)})
		if p.tt == EqToken {
			attr.Value = p.parseJSXAttrValue()
		}
		attr.Span = p.span(attrStart)
		el.Attrs = append(el.Attrs, attr)
	}

	if p.tt == DivToken {
		el.SelfClosing = true
		p.next()
		p.finishJSXTag("JSX element", inChild)
		el.Span = p.span(start)
		return el
	} else if p.tt != GtToken {
		p.fail("JSX element", GtToken)
		el.Span = p.span(start)
		return el
	}
	p.nextJSXChild()
	el.Children = p.parseJSXChildren()
	p.parseJSXClosingTag(el.Name, inChild)
	el.Span = p.span(start)
	return el
}

// nextJSXChild consumes the current token and lexes the following one as a JSX child.
func (p *Parser) nextJSXChild() {
	p.advance(p.l.NextJSXChild(int(p.tok.Span.End)))
}

// finishJSXTag consumes the > ending a tag.
func (p *Parser) finishJSXTag(in string, inChild bool) {
	p.reLexGt()
	if p.tt != GtToken {
		p.fail(in, GtToken)
	} else if inChild {
		p.nextJSXChild()
	} else {
		p.next()
	}
}

// parseJSXChildren parses children up to the </ of the closing tag.
func (p *Parser) parseJSXChildren() []IJSXChild {
	var children []IJSXChild
	for {
		start := p.tok.Span.Start
		switch p.tt {
		case JSXTextToken:
			children = append(children, Alloc(p.a, JSXText{Span: p.tok.Span, Data: p.data}))
			p.nextJSXChild()
		case OpenBraceToken:
			p.next()
			var child IJSXChild
			if p.tt == EllipsisToken {
				p.next()
				spread := Alloc(p.a, JSXSpreadChild{})
				spread.X = withContext(p, p.innerContext(), p.parseExpr)
				child = spread
			} else {
				container := Alloc(p.a, JSXExprContainer{})
				if p.tt != CloseBraceToken {
					container.X = withContext(p, p.innerContext(), p.parseExpr)
				}
				child = container
			}
			if p.tt != CloseBraceToken {
				p.fail("JSX expression", CloseBraceToken)
				return append(children, child)
			}
			p.nextJSXChild()
			switch child := child.(type) {
			case *JSXSpreadChild:
				child.Span = p.span(start)
			case *JSXExprContainer:
				child.Span = p.span(start)
			}
			children = append(children, child)
		case LtToken:
			if p.peek().Kind == DivToken {
				return children
			}
			children = append(children, p.parseJSXElement(true).(IJSXChild))
		default:
			p.fail("JSX element", LtToken)
			return children
		}
	}
}

// parseJSXClosingTag parses </name>, which must match the opening name. A nil name expects the </> of a fragment.
func (p *Parser) parseJSXClosingTag(name IExpr, inChild bool) {
	if p.tt != LtToken {
		return // reported by parseJSXChildren
	}
	p.next()
	p.consume("JSX closing tag", DivToken)
	if name == nil {
		if p.reLexGt(); p.tt != GtToken {
			p.error(p.tok.Span, "expected corresponding closing tag for JSX fragment")
		}
	} else {
		closeStart := p.tok.Span.Start
		closing := p.parseJSXElementName()
		if closing.String() != name.String() {
			p.error(p.span(closeStart), "expected corresponding JSX closing tag for '"+name.String()+"'")
		}
	}
	p.finishJSXTag("JSX closing tag", inChild)
}

// parseJSXElementName parses a tag name: an identifier that may contain dashes, a member expression, or a namespaced name.
func (p *Parser) parseJSXElementName() IExpr {
	start := p.tok.Span.Start
	x := p.parseJSXName(true)
	if _, ok := x.(*Var); ok {
		for p.tt == DotToken {
			p.next()
			x = p.parseMemberName(start, x, false)
		}
	}
	return x
}

// parseJSXName parses an identifier that may contain dashes, optionally prefixed by a namespace.
func (p *Parser) parseJSXName(element bool) IExpr {
	start := p.tok.Span.Start
	p.setToken(p.l.ReLexJSXIdentifier(p.tok))
	if !IsIdentifierName(p.tt) {
		if element {
			p.fail("JSX element name", IdentifierToken)
		} else {
			p.fail("JSX attribute", IdentifierToken)
		}
		return Alloc(p.a, BadExpr{Span: p.span(start)})
	}
	data := p.data
	p.next()
	if p.tt != ColonToken {
		return Alloc(p.a, Var{Span: p.span(start), Data: data})
	}
	p.next()
	p.setToken(p.l.ReLexJSXIdentifier(p.tok))
	name := Alloc(p.a, JSXNamespacedName{Namespace: data, Name: p.data})
	if IsIdentifierName(p.tt) {
		p.next()
	} else {
		p.fail("JSX namespaced name", IdentifierToken)
	}
	name.Span = p.span(start)
	return name
}

// parseJSXAttrValue parses the value after = in an attribute, where strings are lexed without escapes.
func (p *Parser) parseJSXAttrValue() IExpr {
	p.advance(p.l.NextJSXAttrValue())
	start := p.tok.Span.Start
	switch p.tt {
	case StringToken:
		x := Alloc(p.a, LiteralExpr{Span: p.tok.Span, TokenType: StringToken, Data: p.data})
		p.next()
		return x
	case OpenBraceToken:
		p.next()
		container := Alloc(p.a, JSXExprContainer{})
		if p.tt == CloseBraceToken {
			p.error(p.span(start), "JSX attributes must only be assigned a non-empty expression")
		} else {
			container.X = withContext(p, p.innerContext(), p.parseAssignExpr)
		}
		p.consume("JSX attribute", CloseBraceToken)
		container.Span = p.span(start)
		return container
	case LtToken:
		return p.parseJSXElement(false)
	}
	p.fail("JSX attribute", StringToken, OpenBraceToken)
	return Alloc(p.a, BadExpr{Span: p.span(start)})
}
