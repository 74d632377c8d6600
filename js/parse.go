package js

import (
	"bytes"

	"github.com/jsfront/parse"
	"go.uber.org/zap"
)

// maxEOFReads bounds the number of times the parser may read past the end of input before it gives up.
const maxEOFReads = 1000

// Options configures a parse.
type Options struct {
	SourceType SourceType
	Logger     *zap.Logger // can be nil
}

// Parser is the state for the parser.
type Parser struct {
	l   *Lexer
	src []byte
	a   *Arena
	log *zap.Logger
	st  SourceType

	tok     Token
	tt      TokenType
	data    []byte
	prevEnd uint32 // end of the last consumed token
	ctx     Context

	errs        []Diagnostic
	eofHits     int
	speculating int          // depth of speculative parses
	coverInits  []parse.Span // {a = b} shorthands not yet used as a pattern
	inForInit   bool
	moduleItem  bool // the next statement may be an import or export declaration
	topLevel    bool // the next statement is a direct child of the program
}

// Parse parses the source text into a Program. It returns all diagnostics ordered by position, and whether parsing stopped at a fatal error. The returned Program contains every top-level statement before the one in which the fatal error occurred.
func Parse(src []byte, o Options) (*Program, Diagnostics, bool) {
	p := newParser(src, o)
	p.next()
	program := p.parseProgram()

	fatal := p.l.Fatal()
	if fatal != nil {
		if ce := p.log.Check(zap.DebugLevel, "fatal error"); ce != nil {
			ce.Write(zap.String("message", fatal.Message), zap.Stringer("span", fatal.Span), zap.Int("statements", len(program.List)))
		}
	}
	return program, mergeDiagnostics(p.l.Errors(), p.errs, fatal), fatal != nil
}

func newParser(src []byte, o Options) *Parser {
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{
		l:   NewLexer(src, o.SourceType),
		src: src,
		a:   NewArena(),
		log: log,
		st:  o.SourceType,
	}
	if o.SourceType.Module {
		p.ctx = ContextStrict | ContextAwait
	}
	if o.SourceType.Definition {
		p.ctx = p.ctx.With(ContextAmbient)
	}
	return p
}

////////////////////////////////////////////////////////////////

func (p *Parser) setToken(tok Token) {
	p.tok = tok
	p.tt = tok.Kind
	p.data = tok.Span.Text(p.src)
}

// advance consumes the current token and makes tok the current one.
func (p *Parser) advance(tok Token) {
	if p.prevEnd < p.tok.Span.End {
		p.prevEnd = p.tok.Span.End
	}
	p.setToken(tok)
	if p.tt == EOFToken && p.l.Fatal() == nil {
		p.eofHits++
		if maxEOFReads < p.eofHits {
			n := len(p.src)
			p.l.setFatal(n, n, "unexpected end of input")
		}
	}
}

func (p *Parser) next() {
	p.advance(p.l.Next())
}

func (p *Parser) peek() Token {
	return p.l.Peek()
}

// span returns the span from start up to the end of the last consumed token. A node that consumed nothing gets an empty span at start.
func (p *Parser) span(start uint32) parse.Span {
	if p.prevEnd < start {
		p.prevEnd = start
	}
	return parse.Span{Start: start, End: p.prevEnd}
}

func (p *Parser) fatal() bool {
	return p.l.Fatal() != nil
}

// error records a syntax error. Errors after a fatal error or at the same offset as the previous error are dropped.
func (p *Parser) error(span parse.Span, msg string) {
	if p.fatal() {
		return
	} else if n := len(p.errs); 0 < n && p.errs[n-1].Span.Start == span.Start {
		return
	}
	p.errs = append(p.errs, Diagnostic{Kind: SyntaxError, Message: msg, Span: span})
}

func (p *Parser) fail(in string, expected ...TokenType) {
	if p.tt == ErrorToken {
		return // reported by the lexer
	}
	s := "unexpected"
	if 0 < len(expected) {
		s = "expected"
		for i, tt := range expected[:len(expected)-1] {
			if 0 < i {
				s += ","
			}
			s += " '" + tt.String() + "'"
		}
		if 2 < len(expected) {
			s += ", or"
		} else if 1 < len(expected) {
			s += " or"
		}
		s += " '" + expected[len(expected)-1].String() + "' instead of"
	}

	at := "'" + string(p.data) + "'"
	if p.tt == EOFToken {
		at = "end of input"
	}
	p.error(p.tok.Span, s+" "+at+" in "+in)
}

// consume consumes a token of type tt, or records an error and leaves the current token in place.
func (p *Parser) consume(in string, tt TokenType) bool {
	if p.tt != tt {
		p.fail(in, tt)
		return false
	}
	p.next()
	return true
}

// consumeGt consumes a > that may be the start of >>, >=, and friends.
func (p *Parser) consumeGt(in string) bool {
	p.reLexGt()
	return p.consume(in, GtToken)
}

func (p *Parser) reLexGt() {
	if p.tt != GtToken && len(p.data) != 0 && p.data[0] == '>' {
		p.setToken(p.l.ReLexRightAngle(p.tok))
	}
}

func (p *Parser) reLexLt() {
	if p.tt != LtToken && len(p.data) != 0 && p.data[0] == '<' {
		p.setToken(p.l.ReLexLeftAngle(p.tok))
	}
}

// semicolon consumes a semicolon or accepts its automatic insertion.
func (p *Parser) semicolon(in string) {
	if p.tt == SemicolonToken {
		p.next()
	} else if !p.tok.Newline && p.tt != CloseBraceToken && p.tt != EOFToken {
		p.fail(in, SemicolonToken)
	}
}

func (p *Parser) isIdentifier(tt TokenType) bool {
	if tt == IdentifierToken || IsContextualKeyword(tt) {
		return true
	} else if tt == AwaitToken {
		return !p.ctx.Has(ContextAwait) && !p.st.Module
	} else if tt == YieldToken {
		return !p.ctx.Has(ContextYield) && !p.ctx.Has(ContextStrict)
	} else if IsStrictReservedWord(tt) {
		return !p.ctx.Has(ContextStrict)
	}
	return false
}

// parseBindingName parses a binding identifier, and records an error for reserved words.
func (p *Parser) parseBindingName(in string) *BindingName {
	start := p.tok.Span.Start
	if !p.isIdentifier(p.tt) {
		if IsIdentifierName(p.tt) {
			p.error(p.tok.Span, "'"+string(p.data)+"' is a reserved word and cannot be used as a binding name")
			p.next()
		} else {
			p.fail(in, IdentifierToken)
		}
		return Alloc(p.a, BindingName{Span: p.span(start)})
	}
	if p.ctx.Has(ContextStrict) && (bytes.Equal(p.data, []byte("eval")) || bytes.Equal(p.data, []byte("arguments"))) {
		p.error(p.tok.Span, "cannot bind '"+string(p.data)+"' in strict mode")
	}
	data := p.data
	p.next()
	return Alloc(p.a, BindingName{Span: p.span(start), Data: data})
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseProgram() *Program {
	program := Alloc(p.a, Program{
		SourceType: p.st,
		Hashbang:   p.l.Hashbang(),
		arena:      p.a,
	})
	program.Directives = p.parseDirectives()
	for p.tt != EOFToken {
		start := p.tok.Span.Start
		p.moduleItem, p.topLevel = p.st.Module, true
		stmt := p.parseStmt(true)
		if p.fatal() {
			break
		}
		if stmt != nil {
			program.List = append(program.List, stmt)
		}
		p.skipIfStuck(start)
	}
	if p.st.Module {
		program.Module = p.buildModuleRecord(program.List)
	}
	program.Comments = p.l.Comments()
	program.Span = parse.NewSpan(0, len(p.src))
	return program
}

// skipIfStuck skips the current token when nothing was consumed since start, so that statement lists always make progress.
func (p *Parser) skipIfStuck(start uint32) {
	if p.tok.Span.Start == start && p.tt != EOFToken {
		p.fail("statement")
		p.next()
	}
}

// parseDirectives parses the directive prologue of a program or function body, and enables strict mode on "use strict".
func (p *Parser) parseDirectives() []*Directive {
	var directives []*Directive
	for p.tt == StringToken {
		tok := p.tok
		if !p.lookahead(func() bool {
			p.next()
			return p.tt == SemicolonToken || p.tt == CloseBraceToken || p.tt == EOFToken || p.tok.Newline && !continuesExpression(p.tt)
		}) {
			break
		}
		p.next()
		p.semicolon("directive")
		directives = append(directives, Alloc(p.a, Directive{Span: p.span(tok.Span.Start), Value: tok.Span.Text(p.src)}))
		if value := tok.Span.Text(p.src); 2 <= len(value) && string(value[1:len(value)-1]) == "use strict" {
			p.ctx = p.ctx.With(ContextStrict)
		}
	}
	return directives
}

// continuesExpression returns true for tokens that continue an expression across a line break.
func continuesExpression(tt TokenType) bool {
	switch tt {
	case DotToken, OptChainToken, OpenBracketToken, OpenParenToken, CommaToken, QuestionToken,
		NoSubstitutionTemplateToken, TemplateHeadToken, InToken, InstanceofToken:
		return true
	}
	return IsOperator(tt) && tt != IncrToken && tt != DecrToken && tt != NotToken && tt != BitNotToken
}
