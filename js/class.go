package js

import (
	"bytes"
)

// parseClassDecl parses a class declaration or expression at the class keyword. Class bodies are always strict mode code.
// The span includes decorators written before an export keyword.
func (p *Parser) parseClassDecl(start uint32, decorators []*Decorator, abstract, declare, nameRequired bool) *ClassDecl {
	if 0 < len(decorators) && decorators[0].Span.Start < start {
		start = decorators[0].Span.Start
	}
	p.next()
	class := Alloc(p.a, ClassDecl{Decorators: decorators, Abstract: abstract, Declare: declare})
	withContext(p, p.ctx.With(ContextStrict), func() bool {
		if p.isIdentifier(p.tt) {
			class.Name = p.parseBindingName("class declaration")
		} else if nameRequired {
			p.fail("class declaration", IdentifierToken)
		}
		if p.st.TypeScript && (p.tt == LtToken || p.tt == LtLtToken) {
			class.TypeParams = p.parseTypeParams()
		}
		if p.tt == ExtendsToken {
			p.next()
			class.Extends = p.parseLHSExpr()
			if inst, ok := class.Extends.(*InstantiationExpr); ok {
				class.Extends, class.SuperTypeArgs = inst.X, inst.TypeArgs
			} else if p.st.TypeScript && (p.tt == LtToken || p.tt == LtLtToken) {
				class.SuperTypeArgs = p.parseTypeArgs()
			}
		}
		if p.st.TypeScript && p.tt == ImplementsToken {
			p.next()
			class.Implements = p.parseHeritageTypes()
		}
		p.parseClassBody(class)
		return true
	})
	class.Span = p.span(start)
	return class
}

// parseHeritageTypes parses a comma separated list of type references after extends or implements.
func (p *Parser) parseHeritageTypes() []IType {
	var list []IType
	withContext(p, p.typeContext(), func() bool {
		for {
			list = append(list, p.parsePrimaryType())
			if p.tt != CommaToken {
				return true
			}
			p.next()
		}
	})
	return list
}

func (p *Parser) parseClassBody(class *ClassDecl) {
	if !p.consume("class body", OpenBraceToken) {
		return
	}
	for p.tt != CloseBraceToken && p.tt != EOFToken {
		if p.tt == SemicolonToken {
			p.next()
			continue
		}
		start := p.tok.Span.Start
		class.List = append(class.List, p.parseClassElement())
		if p.tok.Span.Start == start {
			p.fail("class body")
			p.next()
		}
	}
	p.consume("class body", CloseBraceToken)
}

// classModifiers are the modifiers preceding a class member.
type classModifiers struct {
	static, abstract, override, readonly, declare, accessor bool
	accessibility                                           TokenType
}

func isClassModifier(tt TokenType) bool {
	switch tt {
	case StaticToken, AbstractToken, OverrideToken, ReadonlyToken, DeclareToken, AccessorToken, PublicToken, PrivateToken, ProtectedToken:
		return true
	}
	return false
}

func (p *Parser) parseClassElement() IClassElement {
	start := p.tok.Span.Start
	var decorators []*Decorator
	if p.tt == AtToken {
		decorators = p.parseDecorators()
	}

	var mods classModifiers
	for isClassModifier(p.tt) && (p.st.TypeScript || p.tt == StaticToken || p.tt == AccessorToken) {
		next := p.peek()
		if p.tt == StaticToken && next.Kind == OpenBraceToken {
			if decorators != nil || mods != (classModifiers{}) {
				p.error(p.tok.Span, "modifiers cannot appear on a static block")
			}
			return p.parseStaticBlock(start)
		} else if !isPropertyNameStart(next.Kind) && next.Kind != MulToken || p.tt != StaticToken && next.Newline {
			break
		}
		switch p.tt {
		case StaticToken:
			mods.static = true
		case AbstractToken:
			mods.abstract = true
		case OverrideToken:
			mods.override = true
		case ReadonlyToken:
			mods.readonly = true
		case DeclareToken:
			mods.declare = true
		case AccessorToken:
			mods.accessor = true
		default:
			if mods.accessibility != 0 {
				p.error(p.tok.Span, "accessibility modifier already seen")
			}
			mods.accessibility = p.tt
		}
		p.next()
	}

	if p.st.TypeScript && p.tt == OpenBracketToken && p.isStartOfIndexSignature() {
		sig := withContext(p, p.typeContext(), func() *IndexSignature {
			return p.parseIndexSignature(start, mods.static, mods.readonly)
		})
		p.semicolon("index signature")
		sig.Span = p.span(start)
		return sig
	}

	method := MethodDecl{
		Decorators:    decorators,
		Static:        mods.static,
		Abstract:      mods.abstract,
		Override:      mods.override,
		Accessibility: mods.accessibility,
	}
	isMethod := p.parseMethodModifiers(&method)
	name := p.parsePropertyName("class body")
	if !mods.static && isConstructorName(name) {
		if method.Kind != NormalMethod || method.Async || method.Generator {
			p.error(name.Span, "constructor cannot be an accessor, async, or a generator")
		} else if p.tt == OpenParenToken || p.tt == LtToken {
			method.Kind = ConstructorMethod
		}
	}
	if name.Literal == PrivateIdentifierToken && bytes.Equal(name.Data, []byte("#constructor")) {
		p.error(name.Span, "class members cannot be named '#constructor'")
	}

	optional := false
	if p.st.TypeScript && p.tt == QuestionToken {
		optional = true
		p.next()
	}
	if isMethod || p.tt == OpenParenToken || p.tt == LtToken {
		method.Name = name
		method.Optional = optional
		return p.parseMethod(start, method, p.st.TypeScript)
	}

	field := Alloc(p.a, PropertyDef{
		Decorators:    decorators,
		Static:        mods.static,
		Readonly:      mods.readonly,
		Declare:       mods.declare,
		Abstract:      mods.abstract,
		Override:      mods.override,
		Accessor:      mods.accessor,
		Optional:      optional,
		Accessibility: mods.accessibility,
		Name:          name,
	})
	if p.st.TypeScript && p.tt == NotToken && !p.tok.Newline {
		field.Definite = true
		p.next()
	}
	if p.st.TypeScript && p.tt == ColonToken {
		field.Type = p.parseTypeAnnotation()
	}
	if p.tt == EqToken {
		p.next()
		ctx := p.ctx.Without(ContextYield | ContextAwait | ContextReturn | ContextNoArrowReturnType | ContextInType | ContextDisallowConditionalTypes | ContextDecorator).
			With(ContextClassField | ContextIn)
		field.Init = withContext(p, ctx, p.parseAssignExpr)
	}
	p.semicolon("class field")
	field.Span = p.span(start)
	return field
}

func isConstructorName(name *PropertyName) bool {
	if name.Literal == ConstructorToken {
		return true
	}
	return name.Literal == StringToken && 2 <= len(name.Data) && bytes.Equal(name.Data[1:len(name.Data)-1], []byte("constructor"))
}

// parseMethod parses the signature and body of a method whose modifiers and name were parsed already. TypeScript classes allow methods without a body for overloads and abstract methods.
func (p *Parser) parseMethod(start uint32, m MethodDecl, allowNoBody bool) *MethodDecl {
	method := Alloc(p.a, m)
	withContext(p, p.funcContext(m.Async, m.Generator), func() bool {
		p.parseSignature("method", &method.TypeParams, &method.Params, &method.ReturnType)
		if p.tt == OpenBraceToken {
			if method.Abstract {
				p.error(p.tok.Span, "abstract methods cannot have an implementation")
			}
			method.Body = p.parseFuncBody("method body")
		} else if allowNoBody {
			p.semicolon("method declaration")
		} else {
			p.fail("method", OpenBraceToken)
		}
		return true
	})
	switch method.Kind {
	case GetMethod:
		if len(method.Params.List) != 0 || method.Params.Rest != nil {
			p.error(method.Params.Span, "getter must not have parameters")
		}
	case SetMethod:
		if len(method.Params.List) != 1 || method.Params.Rest != nil {
			p.error(method.Params.Span, "setter must have exactly one parameter")
		}
	}
	method.Span = p.span(start)
	return method
}

func (p *Parser) parseStaticBlock(start uint32) IClassElement {
	p.next()
	block := Alloc(p.a, StaticBlock{})
	p.consume("static block", OpenBraceToken)
	block.List = withContext(p, p.ctx.Without(ContextYield|ContextAwait|ContextReturn|ContextClassField), p.parseStmtList)
	p.consume("static block", CloseBraceToken)
	block.Span = p.span(start)
	return block
}

////////////////////////////////////////////////////////////////

// parseDecorators parses one or more @expr.
func (p *Parser) parseDecorators() []*Decorator {
	var list []*Decorator
	for p.tt == AtToken {
		start := p.tok.Span.Start
		p.next()
		x := withContext(p, p.ctx.With(ContextDecorator), p.parseDecoratorExpr)
		list = append(list, Alloc(p.a, Decorator{Span: p.span(start), X: x}))
	}
	return list
}

// parseDecoratorExpr parses a parenthesized expression, or a dotted name optionally followed by arguments.
func (p *Parser) parseDecoratorExpr() IExpr {
	start := p.tok.Span.Start
	if p.tt == OpenParenToken {
		return p.parseGroupExpr()
	} else if !p.isIdentifier(p.tt) {
		p.fail("decorator", IdentifierToken)
		return Alloc(p.a, BadExpr{Span: p.span(start)})
	}
	var x IExpr = Alloc(p.a, Var{Span: p.tok.Span, Data: p.data})
	p.next()
	for p.tt == DotToken {
		p.next()
		x = p.parseMemberName(start, x, false)
	}
	var typeArgs *TypeArgs
	if p.st.TypeScript && (p.tt == LtToken || p.tt == LtLtToken) {
		if args, ok := p.tryParseTypeArgsInExpr(); ok {
			typeArgs = args
		}
	}
	if p.tt == OpenParenToken {
		args := p.parseArgs()
		return Alloc(p.a, CallExpr{Span: p.span(start), X: x, TypeArgs: typeArgs, Args: args})
	} else if typeArgs != nil {
		return Alloc(p.a, InstantiationExpr{Span: p.span(start), X: x, TypeArgs: typeArgs})
	}
	return x
}
