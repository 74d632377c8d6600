// Package js is an ECMAScript, TypeScript and JSX lexer and parser following the specifications at https://tc39.es/ecma262/ and the TypeScript grammar.
package js

import (
	"unicode"
	"unicode/utf8"

	"github.com/jsfront/parse"
)

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

// Lexer is the state for the lexer.
type Lexer struct {
	r  *parse.Input
	st SourceType

	newline  bool // line terminator since the previous token
	atStart  bool // no token on the current line yet, for HTML-like comments
	escaped  bool
	hashbang parse.Span

	errs     []Diagnostic
	comments []Comment
	fatal    *Diagnostic
}

// lexState is a snapshot of the lexer, restored on rewind.
type lexState struct {
	offset   int
	atStart  bool
	errs     int
	comments int
}

// NewLexer returns a new Lexer for the source text.
func NewLexer(src []byte, st SourceType) *Lexer {
	l := &Lexer{
		r:       parse.NewInputBytes(src),
		st:      st,
		atStart: true,
	}
	if l.r.Peek(0) == '#' && l.r.Peek(1) == '!' {
		l.r.Move(2)
		l.consumeSingleLineComment()
		l.hashbang = parse.NewSpan(0, l.r.Offset())
		l.r.Skip()
	}
	return l
}

// Hashbang returns the #! line at the start of the source, if any.
func (l *Lexer) Hashbang() []byte {
	if l.hashbang.Empty() {
		return nil
	}
	return l.hashbang.Text(l.r.Bytes())
}

// Errors returns the lexing errors, excluding the fatal error.
func (l *Lexer) Errors() []Diagnostic {
	return l.errs
}

// Comments returns the comments skipped so far.
func (l *Lexer) Comments() []Comment {
	return l.comments
}

// Fatal returns the unrecoverable error, or nil. Once set, the lexer only returns EOFToken.
func (l *Lexer) Fatal() *Diagnostic {
	return l.fatal
}

// Bytes returns the source text.
func (l *Lexer) Bytes() []byte {
	return l.r.Bytes()
}

func (l *Lexer) state() lexState {
	return lexState{l.r.Offset(), l.atStart, len(l.errs), len(l.comments)}
}

func (l *Lexer) restore(s lexState) {
	l.r.Seek(s.offset)
	l.atStart = s.atStart
	l.errs = l.errs[:s.errs]
	l.comments = l.comments[:s.comments]
}

func (l *Lexer) errorf(start, end int, msg string) {
	l.errs = append(l.errs, Diagnostic{Kind: LexError, Message: msg, Span: parse.NewSpan(start, end)})
}

// setFatal switches the lexer into the fatal state, only the first call has effect.
func (l *Lexer) setFatal(start, end int, msg string) {
	if l.fatal == nil {
		l.fatal = &Diagnostic{Kind: FatalError, Message: msg, Span: parse.NewSpan(start, end)}
	}
}

func (l *Lexer) eof() Token {
	n := l.r.Len()
	return Token{Kind: EOFToken, Span: parse.NewSpan(n, n), Newline: true}
}

// Next returns the next Token, skipping whitespace and comments. It returns EOFToken at the end of the input or once a fatal error occurred.
func (l *Lexer) Next() Token {
	if l.fatal != nil {
		return l.eof()
	}
	l.newline = false
	l.escaped = false
	l.skipTrivia()
	l.r.Skip()
	start := l.r.Offset()
	tt := l.scan()
	l.atStart = false
	if l.fatal != nil && tt == EOFToken {
		return l.eof()
	}
	return Token{Kind: tt, Span: parse.NewSpan(start, l.r.Offset()), Newline: l.newline, Escaped: l.escaped}
}

// Peek returns the token after the current one without consuming it.
func (l *Lexer) Peek() Token {
	s, fatal := l.state(), l.fatal
	tok := l.Next()
	l.restore(s)
	l.fatal = fatal
	return tok
}

////////////////////////////////////////////////////////////////

// ReLexRightAngle splits a token starting with > so that only the first > remains, as needed to close type argument lists in Foo<Bar<Baz>>.
func (l *Lexer) ReLexRightAngle(tok Token) Token {
	switch tok.Kind {
	case GtGtToken, GtGtEqToken, GtGtGtToken, GtGtGtEqToken, GtEqToken:
		l.r.Seek(int(tok.Span.Start) + 1)
		tok.Kind = GtToken
		tok.Span.End = tok.Span.Start + 1
	}
	return tok
}

// ReLexLeftAngle splits a token starting with < so that only the first < remains, as in f<<T>(x: T) => T>(g).
func (l *Lexer) ReLexLeftAngle(tok Token) Token {
	switch tok.Kind {
	case LtLtToken, LtLtEqToken, LtEqToken:
		l.r.Seek(int(tok.Span.Start) + 1)
		tok.Kind = LtToken
		tok.Span.End = tok.Span.Start + 1
	}
	return tok
}

// ReLexRegExp reinterprets a / or /= token as a regular expression literal.
func (l *Lexer) ReLexRegExp(tok Token) Token {
	if tok.Kind != DivToken && tok.Kind != DivEqToken || l.fatal != nil {
		return tok
	}
	l.r.Seek(int(tok.Span.Start))
	l.consumeRegExpToken()
	tok.Kind = RegExpToken
	tok.Span.End = uint32(l.r.Offset())
	return tok
}

// ReLexTemplateTail reinterprets a } token that closes a template substitution as the following template middle or tail.
func (l *Lexer) ReLexTemplateTail(tok Token) Token {
	if tok.Kind != CloseBraceToken || l.fatal != nil {
		return tok
	}
	start := int(tok.Span.Start)
	l.r.Seek(start)
	l.r.Move(1)
	if sub, ok := l.consumeTemplatePart(); !ok {
		l.setFatal(start, l.r.Offset(), "unterminated template literal")
		tok.Kind = TemplateTailToken
	} else if sub {
		tok.Kind = TemplateMiddleToken
	} else {
		tok.Kind = TemplateTailToken
	}
	tok.Span.End = uint32(l.r.Offset())
	return tok
}

// ReLexJSXIdentifier extends an identifier name over dashes, as in <data-id>.
func (l *Lexer) ReLexJSXIdentifier(tok Token) Token {
	if !IsIdentifierName(tok.Kind) {
		return tok
	}
	l.r.Seek(int(tok.Span.End))
	extended := false
	for {
		if c := l.r.Peek(0); c == '-' {
			l.r.Move(1)
		} else if !l.consumeIdentifierContinue() {
			break
		}
		extended = true
	}
	if extended {
		tok.Kind = IdentifierToken
		tok.Span.End = uint32(l.r.Offset())
	}
	return tok
}

// NextJSXChild lexes JSX children starting at offset: text, { or <.
func (l *Lexer) NextJSXChild(offset int) Token {
	if l.fatal != nil {
		return l.eof()
	}
	l.r.Seek(offset)
	switch c := l.r.Peek(0); c {
	case '{':
		l.r.Move(1)
		return Token{Kind: OpenBraceToken, Span: parse.NewSpan(offset, offset+1)}
	case '<':
		l.r.Move(1)
		return Token{Kind: LtToken, Span: parse.NewSpan(offset, offset+1)}
	case 0:
		if l.r.Err() != nil {
			return Token{Kind: EOFToken, Span: parse.NewSpan(offset, offset)}
		}
	}
	for {
		c := l.r.Peek(0)
		if c == '{' || c == '<' || c == 0 && l.r.Err() != nil {
			break
		}
		l.r.Move(1)
	}
	return Token{Kind: JSXTextToken, Span: parse.NewSpan(offset, l.r.Offset())}
}

// NextJSXAttrValue lexes the value of a JSX attribute, where strings may span lines and have no escapes.
func (l *Lexer) NextJSXAttrValue() Token {
	if l.fatal != nil {
		return l.eof()
	}
	l.newline = false
	l.skipTrivia()
	l.r.Skip()
	start := l.r.Offset()
	delim := l.r.Peek(0)
	if delim != '"' && delim != '\'' {
		return l.Next()
	}
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == delim {
			l.r.Move(1)
			break
		} else if c == 0 && l.r.Err() != nil {
			l.errorf(start, l.r.Offset(), "unterminated string literal")
			break
		}
		l.r.Move(1)
	}
	return Token{Kind: StringToken, Span: parse.NewSpan(start, l.r.Offset()), Newline: l.newline}
}

////////////////////////////////////////////////////////////////

func (l *Lexer) skipTrivia() {
	for {
		c := l.r.Peek(0)
		switch c {
		case ' ', '\t', '\v', '\f':
			l.r.Move(1)
		case '\n', '\r':
			l.consumeLineTerminator()
			l.newline = true
			l.atStart = true
		case '/':
			if c1 := l.r.Peek(1); c1 == '/' {
				start := l.r.Offset()
				l.r.Move(2)
				l.consumeSingleLineComment()
				l.comments = append(l.comments, Comment{SingleLineCommentToken, parse.NewSpan(start, l.r.Offset())})
			} else if c1 == '*' {
				l.consumeMultiLineComment()
			} else {
				return
			}
		case '<', '-':
			if !l.consumeHTMLLikeComment() {
				return
			}
		default:
			if c >= 0xC0 {
				if l.consumeWhitespaceRune() {
					continue
				} else if l.consumeLineTerminator() {
					l.newline = true
					l.atStart = true
					continue
				}
			}
			return
		}
	}
}

func (l *Lexer) scan() TokenType {
	c := l.r.Peek(0)
	switch c {
	case '(':
		l.r.Move(1)
		return OpenParenToken
	case ')':
		l.r.Move(1)
		return CloseParenToken
	case '{':
		l.r.Move(1)
		return OpenBraceToken
	case '}':
		l.r.Move(1)
		return CloseBraceToken
	case '[':
		l.r.Move(1)
		return OpenBracketToken
	case ']':
		l.r.Move(1)
		return CloseBracketToken
	case ';':
		l.r.Move(1)
		return SemicolonToken
	case ',':
		l.r.Move(1)
		return CommaToken
	case ':':
		l.r.Move(1)
		return ColonToken
	case '~':
		l.r.Move(1)
		return BitNotToken
	case '@':
		l.r.Move(1)
		return AtToken
	case '?':
		l.r.Move(1)
		if c1 := l.r.Peek(0); c1 == '.' && (l.r.Peek(1) < '0' || '9' < l.r.Peek(1)) {
			l.r.Move(1)
			return OptChainToken
		} else if c1 == '?' {
			l.r.Move(1)
			if l.r.Peek(0) == '=' {
				l.r.Move(1)
				return NullishEqToken
			}
			return NullishToken
		}
		return QuestionToken
	case '.':
		if c1 := l.r.Peek(1); '0' <= c1 && c1 <= '9' {
			return l.consumeNumericToken()
		} else if c1 == '.' && l.r.Peek(2) == '.' {
			l.r.Move(3)
			return EllipsisToken
		}
		l.r.Move(1)
		return DotToken
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.consumeNumericToken()
	case '\'', '"':
		l.consumeStringToken()
		return StringToken
	case '`':
		start := l.r.Offset()
		l.r.Move(1)
		if sub, ok := l.consumeTemplatePart(); !ok {
			l.setFatal(start, l.r.Offset(), "unterminated template literal")
		} else if sub {
			return TemplateHeadToken
		}
		return NoSubstitutionTemplateToken
	case '#':
		l.r.Move(1)
		if l.consumeIdentifierStart() {
			for l.consumeIdentifierContinue() {
			}
			return PrivateIdentifierToken
		}
		l.errorf(l.r.Offset()-1, l.r.Offset(), "unexpected character '#'")
		return ErrorToken
	case '=', '!', '<', '>', '+', '-', '*', '/', '%', '&', '|', '^':
		return l.consumeOperatorToken()
	case 0:
		if l.r.Err() != nil {
			return EOFToken
		}
	}

	if tt := l.consumeIdentifierToken(); tt != ErrorToken {
		return tt
	}

	start := l.r.Offset()
	r, n := l.r.PeekRune(0)
	if n == 0 {
		n = 1
	}
	l.r.Move(n)
	if r == utf8.RuneError && n == 1 {
		l.errorf(start, l.r.Offset(), "invalid UTF-8 encoding")
	} else {
		l.errorf(start, l.r.Offset(), "unexpected character '"+string(r)+"'")
	}
	return ErrorToken
}

////////////////////////////////////////////////////////////////

func (l *Lexer) consumeWhitespaceRune() bool {
	if c := l.r.Peek(0); c >= 0xC0 {
		if r, n := l.r.PeekRune(0); r == '\u00A0' || r == '\uFEFF' || unicode.Is(unicode.Zs, r) {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) consumeLineTerminator() bool {
	c := l.r.Peek(0)
	if c == '\n' {
		l.r.Move(1)
		return true
	} else if c == '\r' {
		if l.r.Peek(1) == '\n' {
			l.r.Move(2)
		} else {
			l.r.Move(1)
		}
		return true
	} else if c >= 0xC0 {
		if r, n := l.r.PeekRune(0); r == '\u2028' || r == '\u2029' {
			l.r.Move(n)
			return true
		}
	}
	return false
}

func (l *Lexer) isLineTerminator() bool {
	c := l.r.Peek(0)
	if c == '\n' || c == '\r' {
		return true
	} else if c >= 0xC0 {
		r, _ := l.r.PeekRune(0)
		return r == '\u2028' || r == '\u2029'
	}
	return false
}

func (l *Lexer) consumeSingleLineComment() {
	for {
		c := l.r.Peek(0)
		if c == '\r' || c == '\n' || c == 0 && l.r.Err() != nil {
			break
		} else if c >= 0xC0 && l.isLineTerminator() {
			break
		}
		l.r.Move(1)
	}
}

func (l *Lexer) consumeMultiLineComment() {
	start := l.r.Offset()
	l.r.Move(2)
	for {
		c := l.r.Peek(0)
		if c == '*' && l.r.Peek(1) == '/' {
			l.r.Move(2)
			break
		} else if c == 0 && l.r.Err() != nil {
			l.errorf(start, l.r.Offset(), "unterminated multi-line comment")
			break
		} else if l.consumeLineTerminator() {
			l.newline = true
			l.atStart = true
		} else {
			l.r.Move(1)
		}
	}
	l.comments = append(l.comments, Comment{MultiLineCommentToken, parse.NewSpan(start, l.r.Offset())})
}

// consumeHTMLLikeComment handles <!-- and --> in scripts, see Annex B.
func (l *Lexer) consumeHTMLLikeComment() bool {
	if l.st.Module {
		return false
	}
	start := l.r.Offset()
	c := l.r.Peek(0)
	if c == '<' && l.r.Peek(1) == '!' && l.r.Peek(2) == '-' && l.r.Peek(3) == '-' {
		l.r.Move(4)
	} else if l.atStart && c == '-' && l.r.Peek(1) == '-' && l.r.Peek(2) == '>' {
		// only if the current line didn't contain any meaningful tokens
		l.r.Move(3)
	} else {
		return false
	}
	l.consumeSingleLineComment()
	l.comments = append(l.comments, Comment{SingleLineCommentToken, parse.NewSpan(start, l.r.Offset())})
	return true
}

////////////////////////////////////////////////////////////////

var opTokens = map[byte]TokenType{
	'=': EqToken,
	'!': NotToken,
	'<': LtToken,
	'>': GtToken,
	'+': AddToken,
	'-': SubToken,
	'*': MulToken,
	'/': DivToken,
	'%': ModToken,
	'&': BitAndToken,
	'|': BitOrToken,
	'^': BitXorToken,
}

var opEqTokens = map[byte]TokenType{
	'=': EqEqToken,
	'!': NotEqToken,
	'<': LtEqToken,
	'>': GtEqToken,
	'+': AddEqToken,
	'-': SubEqToken,
	'*': MulEqToken,
	'/': DivEqToken,
	'%': ModEqToken,
	'&': BitAndEqToken,
	'|': BitOrEqToken,
	'^': BitXorEqToken,
}

var opOpTokens = map[byte]TokenType{
	'+': IncrToken,
	'-': DecrToken,
	'*': ExpToken,
	'&': AndToken,
	'|': OrToken,
}

func (l *Lexer) consumeOperatorToken() TokenType {
	c := l.r.Peek(0)
	l.r.Move(1)
	if l.r.Peek(0) == '=' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && (c == '!' || c == '=') {
			l.r.Move(1)
			if c == '!' {
				return NotEqEqToken
			}
			return EqEqEqToken
		}
		return opEqTokens[c]
	} else if l.r.Peek(0) == c && (c == '+' || c == '-' || c == '*' || c == '&' || c == '|') {
		l.r.Move(1)
		if l.r.Peek(0) == '=' && c != '+' && c != '-' {
			l.r.Move(1)
			switch c {
			case '*':
				return ExpEqToken
			case '&':
				return AndEqToken
			}
			return OrEqToken
		}
		return opOpTokens[c]
	} else if c == '=' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		return ArrowToken
	} else if c == '<' && l.r.Peek(0) == '<' {
		l.r.Move(1)
		if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return LtLtEqToken
		}
		return LtLtToken
	} else if c == '>' && l.r.Peek(0) == '>' {
		l.r.Move(1)
		if l.r.Peek(0) == '>' {
			l.r.Move(1)
			if l.r.Peek(0) == '=' {
				l.r.Move(1)
				return GtGtGtEqToken
			}
			return GtGtGtToken
		} else if l.r.Peek(0) == '=' {
			l.r.Move(1)
			return GtGtEqToken
		}
		return GtGtToken
	}
	return opTokens[c]
}

////////////////////////////////////////////////////////////////

func (l *Lexer) consumeIdentifierStart() bool {
	c := l.r.Peek(0)
	if identifierStartTable[c] {
		l.r.Move(1)
		return true
	} else if c >= 0xC0 {
		if r, n := l.r.PeekRune(0); unicode.IsOneOf(identifierStart, r) {
			l.r.Move(n)
			return true
		}
		return false
	}
	return l.consumeIdentifierEscape(true)
}

func (l *Lexer) consumeIdentifierContinue() bool {
	c := l.r.Peek(0)
	if identifierTable[c] {
		l.r.Move(1)
		return true
	} else if c >= 0xC0 {
		if r, n := l.r.PeekRune(0); r == '\u200C' || r == '\u200D' || unicode.IsOneOf(identifierContinue, r) {
			l.r.Move(n)
			return true
		}
		return false
	}
	return l.consumeIdentifierEscape(false)
}

// consumeIdentifierEscape consumes \uXXXX or \u{X...} when it encodes a valid identifier character.
func (l *Lexer) consumeIdentifierEscape(start bool) bool {
	if l.r.Peek(0) != '\\' || l.r.Peek(1) != 'u' {
		return false
	}
	r, n := decodeUnicodeEscape(l.r.Bytes()[l.r.Offset():])
	if n == 0 {
		return false
	} else if start && r != '$' && r != '_' && !unicode.IsOneOf(identifierStart, r) {
		return false
	} else if !start && r != '$' && r != '_' && r != '\u200C' && r != '\u200D' && !unicode.IsOneOf(identifierContinue, r) {
		return false
	}
	l.r.Move(n)
	l.escaped = true
	return true
}

func (l *Lexer) consumeIdentifierToken() TokenType {
	start := l.r.Offset()
	if !l.consumeIdentifierStart() {
		if l.r.Peek(0) == '\\' {
			l.r.Move(1)
			l.errorf(start, l.r.Offset(), "invalid unicode escape sequence")
			for l.consumeIdentifierContinue() {
			}
			return IdentifierToken
		}
		return ErrorToken
	}
	for l.consumeIdentifierContinue() {
	}
	if l.escaped {
		if tt, ok := Keywords[string(decodeIdentifier(l.r.Lexeme()))]; ok && !IsContextualKeyword(tt) && tt != AwaitToken && tt != YieldToken && tt != LetToken && tt != StaticToken {
			l.errorf(start, l.r.Offset(), "keywords cannot contain escape characters")
		}
		return IdentifierToken
	}
	if keyword, ok := Keywords[string(l.r.Lexeme())]; ok {
		return keyword
	}
	return IdentifierToken
}

////////////////////////////////////////////////////////////////

func isDigit(c byte) bool       { return '0' <= c && c <= '9' }
func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
func isOctalDigit(c byte) bool  { return '0' <= c && c <= '7' }
func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// consumeDigits consumes digits with single _ separators between them.
func (l *Lexer) consumeDigits(digit func(byte) bool) bool {
	if !digit(l.r.Peek(0)) {
		return false
	}
	l.r.Move(1)
	for {
		if c := l.r.Peek(0); digit(c) {
			l.r.Move(1)
		} else if c == '_' && digit(l.r.Peek(1)) {
			l.r.Move(2)
		} else {
			return true
		}
	}
}

func (l *Lexer) consumeNumericToken() TokenType {
	// assume to be on 0 1 2 3 4 5 6 7 8 9 or .digit
	start := l.r.Offset()
	c := l.r.Peek(0)
	bigint := true
	if c == '0' {
		var digit func(byte) bool
		switch l.r.Peek(1) {
		case 'x', 'X':
			digit = isHexDigit
		case 'o', 'O':
			digit = isOctalDigit
		case 'b', 'B':
			digit = isBinaryDigit
		}
		if digit != nil {
			l.r.Move(2)
			if !l.consumeDigits(digit) {
				l.errorf(start, l.r.Offset(), "invalid number literal")
			}
			return l.consumeNumericSuffix(start, true)
		} else if isDigit(l.r.Peek(1)) {
			// legacy octal, or decimal with a leading zero that may have a fraction and exponent
			octal := true
			l.r.Move(1)
			for c := l.r.Peek(0); isDigit(c); c = l.r.Peek(0) {
				octal = octal && c < '8'
				l.r.Move(1)
			}
			if octal {
				return l.consumeNumericSuffix(start, false)
			}
			bigint = false
		}
	}

	if c != '.' {
		l.consumeDigits(isDigit)
	}
	if l.r.Peek(0) == '.' {
		l.r.Move(1)
		l.consumeDigits(isDigit)
		bigint = false
	}
	if c := l.r.Peek(0); c == 'e' || c == 'E' {
		l.r.Move(1)
		if c := l.r.Peek(0); c == '+' || c == '-' {
			l.r.Move(1)
		}
		if !l.consumeDigits(isDigit) {
			l.errorf(start, l.r.Offset(), "missing exponent in number literal")
		}
		bigint = false
	}
	return l.consumeNumericSuffix(start, bigint)
}

func (l *Lexer) consumeNumericSuffix(start int, bigint bool) TokenType {
	tt := NumericToken
	if bigint && l.r.Peek(0) == 'n' {
		l.r.Move(1)
		tt = BigIntToken
	}
	if c := l.r.Peek(0); isDigit(c) || c == '_' || identifierStartTable[c] || c == '\\' || c >= 0xC0 && l.peekIdentifierStart() {
		for l.consumeIdentifierContinue() {
		}
		l.errorf(start, l.r.Offset(), "identifier starts immediately after numeric literal")
	}
	return tt
}

func (l *Lexer) peekIdentifierStart() bool {
	r, _ := l.r.PeekRune(0)
	return unicode.IsOneOf(identifierStart, r)
}

func (l *Lexer) consumeStringToken() {
	// assume to be on ' or "
	start := l.r.Offset()
	delim := l.r.Peek(0)
	l.r.Move(1)
	for {
		c := l.r.Peek(0)
		if c == delim {
			l.r.Move(1)
			return
		} else if c == '\\' {
			l.consumeEscape()
			continue
		} else if c == '\n' || c == '\r' || c == 0 && l.r.Err() != nil {
			l.errorf(start, l.r.Offset(), "unterminated string literal")
			return
		}
		l.r.Move(1)
	}
}

// consumeEscape consumes an escape sequence in a string literal and reports malformed \x and \u escapes.
func (l *Lexer) consumeEscape() {
	start := l.r.Offset()
	l.r.Move(1)
	if l.consumeLineTerminator() {
		return
	}
	switch c := l.r.Peek(0); c {
	case 'x':
		l.r.Move(1)
		if isHexDigit(l.r.Peek(0)) && isHexDigit(l.r.Peek(1)) {
			l.r.Move(2)
			return
		}
		l.errorf(start, l.r.Offset(), "invalid hexadecimal escape sequence")
	case 'u':
		if _, n := decodeUnicodeEscape(l.r.Bytes()[start:]); n != 0 {
			l.r.Move(start + n - l.r.Offset())
			return
		}
		l.r.Move(1)
		l.errorf(start, l.r.Offset(), "invalid unicode escape sequence")
	case 0:
		if l.r.Err() != nil {
			return
		}
		l.r.Move(1)
	default:
		l.r.MoveRune()
	}
}

// consumeTemplatePart consumes template characters after ` or } up to and including ${ or `. It returns false when the input ends first.
func (l *Lexer) consumeTemplatePart() (substitution bool, ok bool) {
	for {
		c := l.r.Peek(0)
		if c == '`' {
			l.r.Move(1)
			return false, true
		} else if c == '$' && l.r.Peek(1) == '{' {
			l.r.Move(2)
			return true, true
		} else if c == '\\' {
			l.r.Move(1)
			if l.r.Peek(0) == 0 && l.r.Err() != nil {
				return false, false
			} else if !l.consumeLineTerminator() {
				l.r.MoveRune()
			}
			continue
		} else if c == 0 && l.r.Err() != nil {
			return false, false
		}
		l.r.Move(1)
	}
}

func (l *Lexer) consumeRegExpToken() {
	// assume to be on /
	start := l.r.Offset()
	l.r.Move(1)
	inClass := false
	for {
		c := l.r.Peek(0)
		if c == '\\' {
			l.r.Move(1)
			if l.isLineTerminator() || l.r.Peek(0) == 0 && l.r.Err() != nil {
				continue
			}
			l.r.MoveRune()
			continue
		} else if l.isLineTerminator() || c == 0 && l.r.Err() != nil {
			if inClass {
				l.setFatal(start, l.r.Offset(), "unterminated character class in regular expression")
			} else {
				l.errorf(start, l.r.Offset(), "unterminated regular expression")
			}
			return
		} else if inClass {
			if c == ']' {
				inClass = false
			}
		} else if c == '[' {
			inClass = true
		} else if c == '/' {
			l.r.Move(1)
			break
		}
		l.r.Move(1)
	}

	// flags
	flagStart := l.r.Offset()
	seen := 0
	for {
		c := l.r.Peek(0)
		if !l.consumeIdentifierContinue() {
			break
		}
		bit := regExpFlags[c]
		if bit == 0 || seen&bit != 0 {
			l.errorf(flagStart, l.r.Offset(), "invalid regular expression flag")
		}
		seen |= bit
	}
}

var regExpFlags = [256]int{'d': 1, 'g': 2, 'i': 4, 'm': 8, 's': 16, 'u': 32, 'v': 64, 'y': 128}

////////////////////////////////////////////////////////////////

// decodeUnicodeEscape decodes \uXXXX or \u{X...} at the start of b and returns the rune and the escape length, or zero length when invalid.
func decodeUnicodeEscape(b []byte) (rune, int) {
	if len(b) < 3 || b[0] != '\\' || b[1] != 'u' {
		return 0, 0
	}
	var r rune
	if b[2] == '{' {
		i := 3
		for ; i < len(b) && isHexDigit(b[i]); i++ {
			r = r*16 + hexValue(b[i])
			if unicode.MaxRune < r {
				return 0, 0
			}
		}
		if i == 3 || len(b) <= i || b[i] != '}' {
			return 0, 0
		}
		return r, i + 1
	} else if len(b) < 6 {
		return 0, 0
	}
	for _, c := range b[2:6] {
		if !isHexDigit(c) {
			return 0, 0
		}
		r = r*16 + hexValue(c)
	}
	return r, 6
}

func hexValue(c byte) rune {
	if c <= '9' {
		return rune(c - '0')
	} else if c <= 'F' {
		return rune(c-'A') + 10
	}
	return rune(c-'a') + 10
}

// decodeIdentifier replaces unicode escapes in an identifier name.
func decodeIdentifier(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] == '\\' {
			if r, n := decodeUnicodeEscape(b[i:]); n != 0 {
				out = utf8.AppendRune(out, r)
				i += n
				continue
			}
		}
		out = append(out, b[i])
		i++
	}
	return out
}

var identifierStartTable = [256]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z
}

var identifierTable = [256]bool{
	// ASCII
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0, 1, 2, 3, 4, 5, 6, 7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z
}
