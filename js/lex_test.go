package js

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/test"
)

func assertTokens(t *testing.T, s string, st SourceType, tokentypes ...TokenType) {
	t.Helper()
	l := NewLexer([]byte(s), st)
	i := 0
	for {
		tok := l.Next()
		if tok.Kind == EOFToken {
			assert.Equal(t, len(tokentypes), i, "when EOF occurred we must be at the end in "+strconv.Quote(s))
			break
		}
		if assert.Less(t, i, len(tokentypes), "index must not exceed tokentypes size in "+strconv.Quote(s)) {
			assert.Equal(t, tokentypes[i], tok.Kind, "tokentypes must match at index "+strconv.Itoa(i)+" in "+strconv.Quote(s))
		} else {
			break
		}
		i++
	}
}

func TestTokens(t *testing.T) {
	var tokenTests = []struct {
		js       string
		expected []TokenType
	}{
		{" \t\v\f\u00A0\uFEFF\u2003", []TokenType{}},
		{"\n\r\r\n  ", []TokenType{}},
		{"5.2 .04 0x0F 5e99 1_000", []TokenType{NumericToken, NumericToken, NumericToken, NumericToken, NumericToken}},
		{"10n 0x1Fn", []TokenType{BigIntToken, BigIntToken}},
		{"07 08 09.5 08e1 07.5", []TokenType{NumericToken, NumericToken, NumericToken, NumericToken, NumericToken, NumericToken}},
		{"a = 'string'", []TokenType{IdentifierToken, EqToken, StringToken}},
		{`"double \" quote"`, []TokenType{StringToken}},
		{"a?.b ?? c", []TokenType{IdentifierToken, OptChainToken, IdentifierToken, NullishToken, IdentifierToken}},
		{"a?.5:1", []TokenType{IdentifierToken, QuestionToken, NumericToken, ColonToken, NumericToken}},
		{"x >>>= 1", []TokenType{IdentifierToken, GtGtGtEqToken, NumericToken}},
		{"a ??= b ||= c &&= d **= e", []TokenType{IdentifierToken, NullishEqToken, IdentifierToken, OrEqToken, IdentifierToken, AndEqToken, IdentifierToken, ExpEqToken, IdentifierToken}},
		{"=> ... === !== <<=", []TokenType{ArrowToken, EllipsisToken, EqEqEqToken, NotEqEqToken, LtLtEqToken}},
		{"#priv @dec", []TokenType{PrivateIdentifierToken, AtToken, IdentifierToken}},
		{"if let async type string", []TokenType{IfToken, LetToken, AsyncToken, TypeToken, StringKeywordToken}},
		{"`a`", []TokenType{NoSubstitutionTemplateToken}},
		{"`a${", []TokenType{TemplateHeadToken}},
		{"// c\n/* d */ x", []TokenType{IdentifierToken}},
		{"\\u0061bc", []TokenType{IdentifierToken}},
		{"€", []TokenType{ErrorToken}},
	}
	for _, tt := range tokenTests {
		t.Run(tt.js, func(t *testing.T) {
			assertTokens(t, tt.js, Script, tt.expected...)
		})
	}
}

func TestTokenFlags(t *testing.T) {
	l := NewLexer([]byte("a\n/* c */b \\u0063"), Script)
	tok := l.Next()
	test.That(t, !tok.Newline)
	tok = l.Next()
	test.That(t, tok.Newline, "line terminator before b")
	tok = l.Next()
	test.That(t, !tok.Newline)
	test.That(t, tok.Escaped, "escaped identifier")
	test.T(t, len(l.Comments()), 1)
}

func TestLexErrors(t *testing.T) {
	var errorTests = []struct {
		js  string
		err string
	}{
		{"'abc", "unterminated string literal"},
		{"/* abc", "unterminated multi-line comment"},
		{"0x", "invalid number literal"},
		{"1e", "missing exponent in number literal"},
		{"3in x", "identifier starts immediately after numeric literal"},
		{"'\\x4'", "invalid hexadecimal escape sequence"},
		{"#", "unexpected character '#'"},
	}
	for _, tt := range errorTests {
		t.Run(tt.js, func(t *testing.T) {
			l := NewLexer([]byte(tt.js), Script)
			for l.Next().Kind != EOFToken {
			}
			if assert.NotEmpty(t, l.Errors()) {
				test.String(t, l.Errors()[0].Message, tt.err)
				test.T(t, l.Errors()[0].Kind, LexError)
			}
			test.That(t, l.Fatal() == nil)
		})
	}
}

func TestLexFatal(t *testing.T) {
	l := NewLexer([]byte("a `abc"), Script)
	test.T(t, l.Next().Kind, IdentifierToken)
	test.T(t, l.Next().Kind, NoSubstitutionTemplateToken)
	if assert.NotNil(t, l.Fatal()) {
		test.String(t, l.Fatal().Message, "unterminated template literal")
		test.T(t, l.Fatal().Kind, FatalError)
	}
	for i := 0; i < 3; i++ {
		test.T(t, l.Next().Kind, EOFToken, "only EOF after a fatal error")
	}
}

func TestLexPeek(t *testing.T) {
	l := NewLexer([]byte("a // c\nb c"), Script)
	test.T(t, l.Next().Kind, IdentifierToken)
	peeked := l.Peek()
	test.That(t, peeked.Newline)
	test.T(t, len(l.Comments()), 0, "peek leaves no comments behind")
	tok := l.Next()
	test.T(t, tok, peeked)
	test.T(t, len(l.Comments()), 1)
}

func TestLexHashbang(t *testing.T) {
	l := NewLexer([]byte("#!/usr/bin/env node\nx"), Module)
	test.String(t, string(l.Hashbang()), "#!/usr/bin/env node")
	tok := l.Next()
	test.T(t, tok.Kind, IdentifierToken)
	test.That(t, tok.Newline)

	l = NewLexer([]byte("x"), Module)
	test.That(t, l.Hashbang() == nil)
}

func TestReLex(t *testing.T) {
	t.Run("right angle", func(t *testing.T) {
		src := []byte(">>= 1")
		l := NewLexer(src, TS)
		tok := l.Next()
		test.T(t, tok.Kind, GtGtEqToken)
		tok = l.ReLexRightAngle(tok)
		test.T(t, tok.Kind, GtToken)
		test.String(t, string(tok.Span.Text(src)), ">")
		test.T(t, l.Next().Kind, GtEqToken)
	})
	t.Run("left angle", func(t *testing.T) {
		l := NewLexer([]byte("<<T>"), TS)
		tok := l.ReLexLeftAngle(l.Next())
		test.T(t, tok.Kind, LtToken)
		test.T(t, l.Next().Kind, LtToken)
		test.T(t, l.Next().Kind, IdentifierToken)
	})
	t.Run("regexp", func(t *testing.T) {
		src := []byte("/ab+c/gi.x")
		l := NewLexer(src, Script)
		tok := l.Next()
		test.T(t, tok.Kind, DivToken)
		tok = l.ReLexRegExp(tok)
		test.T(t, tok.Kind, RegExpToken)
		test.String(t, string(tok.Span.Text(src)), "/ab+c/gi")
		test.T(t, l.Next().Kind, DotToken)
	})
	t.Run("regexp with class", func(t *testing.T) {
		src := []byte("/[/]/")
		l := NewLexer(src, Script)
		tok := l.ReLexRegExp(l.Next())
		test.String(t, string(tok.Span.Text(src)), "/[/]/")
	})
	t.Run("template", func(t *testing.T) {
		src := []byte("`a${x}b${y}c`")
		l := NewLexer(src, Script)
		test.T(t, l.Next().Kind, TemplateHeadToken)
		test.T(t, l.Next().Kind, IdentifierToken)
		tok := l.ReLexTemplateTail(l.Next())
		test.T(t, tok.Kind, TemplateMiddleToken)
		test.String(t, string(tok.Span.Text(src)), "}b${")
		test.T(t, l.Next().Kind, IdentifierToken)
		tok = l.ReLexTemplateTail(l.Next())
		test.T(t, tok.Kind, TemplateTailToken)
		test.String(t, string(tok.Span.Text(src)), "}c`")
	})
	t.Run("jsx identifier", func(t *testing.T) {
		src := []byte("data-id=")
		l := NewLexer(src, JSX)
		tok := l.ReLexJSXIdentifier(l.Next())
		test.T(t, tok.Kind, IdentifierToken)
		test.String(t, string(tok.Span.Text(src)), "data-id")
		test.T(t, l.Next().Kind, EqToken)
	})
	t.Run("jsx child", func(t *testing.T) {
		src := []byte("<a>hi {x}</a>")
		l := NewLexer(src, JSX)
		tok := l.NextJSXChild(3)
		test.T(t, tok.Kind, JSXTextToken)
		test.String(t, string(tok.Span.Text(src)), "hi ")
		test.T(t, l.NextJSXChild(int(tok.Span.End)).Kind, OpenBraceToken)
	})
}

func ExampleNewLexer() {
	l := NewLexer([]byte("var x = 'lorem ipsum';"), Script)
	out := ""
	for {
		tok := l.Next()
		if tok.Kind == EOFToken {
			break
		}
		out += string(tok.Span.Text(l.Bytes())) + " "
	}
	fmt.Println(out)
	// Output: var x = 'lorem ipsum' ;
}
