package js

import (
	"strconv"

	"github.com/jsfront/parse"
)

// TokenType determines the type of token, eg. a number or a semicolon.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // extra token when errors occur
	EOFToken
	WhitespaceToken
	LineTerminatorToken // \r \n \r\n
	SingleLineCommentToken // //
	MultiLineCommentToken // /* */
	HashbangToken
	NumericToken
	BigIntToken
	StringToken
	NoSubstitutionTemplateToken
	TemplateHeadToken   // `...${
	TemplateMiddleToken // }...${
	TemplateTailToken   // }...`
	RegExpToken
	PrivateIdentifierToken // #name
	JSXTextToken
)

const (
	PunctuatorToken   TokenType = 0x1000 + iota
	OpenBraceToken              // {
	CloseBraceToken             // }
	OpenParenToken              // (
	CloseParenToken             // )
	OpenBracketToken            // [
	CloseBracketToken           // ]
	DotToken                    // .
	SemicolonToken              // ;
	CommaToken                  // ,
	QuestionToken               // ?
	ColonToken                  // :
	ArrowToken                  // =>
	EllipsisToken               // ...
	OptChainToken               // ?.
	AtToken                     // @
)

const (
	OperatorToken  TokenType = 0x3000 + iota
	EqToken                  // =
	EqEqToken                // ==
	EqEqEqToken              // ===
	NotToken                 // !
	NotEqToken               // !=
	NotEqEqToken             // !==
	LtToken                  // <
	LtEqToken                // <=
	LtLtToken                // <<
	LtLtEqToken              // <<=
	GtToken                  // >
	GtEqToken                // >=
	GtGtToken                // >>
	GtGtEqToken              // >>=
	GtGtGtToken              // >>>
	GtGtGtEqToken            // >>>=
	AddToken                 // +
	AddEqToken               // +=
	IncrToken                // ++
	SubToken                 // -
	SubEqToken               // -=
	DecrToken                // --
	MulToken                 // *
	MulEqToken               // *=
	ExpToken                 // **
	ExpEqToken               // **=
	DivToken                 // /
	DivEqToken               // /=
	ModToken                 // %
	ModEqToken               // %=
	BitAndToken              // &
	BitOrToken               // |
	BitXorToken              // ^
	BitNotToken              // ~
	BitAndEqToken            // &=
	BitOrEqToken             // |=
	BitXorEqToken            // ^=
	AndToken                 // &&
	OrToken                  // ||
	NullishToken             // ??
	AndEqToken               // &&=
	OrEqToken                // ||=
	NullishEqToken           // ??=

	// unary operators only used in the AST
	PosToken      // +a
	NegToken      // -a
	PreIncrToken  // ++a
	PreDecrToken  // --a
	PostIncrToken // a++
	PostDecrToken // a--
)

// reserved words first, then words reserved in strict mode
const (
	IdentifierToken TokenType = 0x4000 + iota
	BreakToken
	CaseToken
	CatchToken
	ClassToken
	ConstToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	EnumToken
	ExportToken
	ExtendsToken
	FalseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ImportToken
	InToken
	InstanceofToken
	NewToken
	NullToken
	ReturnToken
	SuperToken
	SwitchToken
	ThisToken
	ThrowToken
	TrueToken
	TryToken
	TypeofToken
	VarToken
	VoidToken
	WhileToken
	WithToken

	ImplementsToken
	InterfaceToken
	LetToken
	PackageToken
	PrivateToken
	ProtectedToken
	PublicToken
	StaticToken
	YieldToken

	AwaitToken
)

// contextual keywords are valid identifiers everywhere
const (
	AsToken TokenType = 0x4800 + iota
	AsyncToken
	FromToken
	GetToken
	SetToken
	OfToken
	TargetToken
	MetaToken
	TypeToken
	DeclareToken
	AbstractToken
	ReadonlyToken
	KeyofToken
	UniqueToken
	InferToken
	IsToken
	AssertsToken
	NamespaceToken
	ModuleToken
	GlobalToken
	SatisfiesToken
	AccessorToken
	OverrideToken
	ConstructorToken
	RequireToken
	OutToken
	UsingToken

	// TypeScript keyword types
	AnyToken
	UnknownToken
	NumberToken
	StringKeywordToken
	BooleanToken
	BigintToken
	SymbolToken
	ObjectToken
	NeverToken
	UndefinedToken
)

// IsPunctuator returns true for punctuators, including operators.
func IsPunctuator(tt TokenType) bool {
	return tt&0x1000 != 0
}

// IsOperator returns true for operators.
func IsOperator(tt TokenType) bool {
	return tt&0x2000 != 0
}

// IsIdentifierName returns true for identifiers and all keywords.
func IsIdentifierName(tt TokenType) bool {
	return tt&0x4000 != 0
}

// IsReservedWord returns true for words that can never be identifiers.
func IsReservedWord(tt TokenType) bool {
	return BreakToken <= tt && tt <= WithToken
}

// IsStrictReservedWord returns true for words that cannot be identifiers in strict mode code.
func IsStrictReservedWord(tt TokenType) bool {
	return ImplementsToken <= tt && tt <= YieldToken
}

// IsContextualKeyword returns true for keywords that are also valid identifiers.
func IsContextualKeyword(tt TokenType) bool {
	return tt&0x4800 == 0x4800
}

// IsTypeKeyword returns true for the TypeScript keyword types that are lexed as identifiers.
func IsTypeKeyword(tt TokenType) bool {
	return AnyToken <= tt && tt <= UndefinedToken
}

// IsAssignOperator returns true for = and the compound assignment operators.
func IsAssignOperator(tt TokenType) bool {
	switch tt {
	case EqToken, AddEqToken, SubEqToken, MulEqToken, DivEqToken, ModEqToken, ExpEqToken,
		LtLtEqToken, GtGtEqToken, GtGtGtEqToken, BitAndEqToken, BitOrEqToken, BitXorEqToken,
		AndEqToken, OrEqToken, NullishEqToken:
		return true
	}
	return false
}

var tokenNames = map[TokenType]string{
	ErrorToken:                  "Error",
	EOFToken:                    "EOF",
	WhitespaceToken:             "Whitespace",
	LineTerminatorToken:         "LineTerminator",
	SingleLineCommentToken:      "SingleLineComment",
	MultiLineCommentToken:       "MultiLineComment",
	HashbangToken:               "Hashbang",
	NumericToken:                "Numeric",
	BigIntToken:                 "BigInt",
	StringToken:                 "String",
	NoSubstitutionTemplateToken: "Template",
	TemplateHeadToken:           "TemplateHead",
	TemplateMiddleToken:         "TemplateMiddle",
	TemplateTailToken:           "TemplateTail",
	RegExpToken:                 "RegExp",
	PrivateIdentifierToken:      "PrivateIdentifier",
	JSXTextToken:                "JSXText",
	PunctuatorToken:             "Punctuator",
	OpenBraceToken:              "{",
	CloseBraceToken:             "}",
	OpenParenToken:              "(",
	CloseParenToken:             ")",
	OpenBracketToken:            "[",
	CloseBracketToken:           "]",
	DotToken:                    ".",
	SemicolonToken:              ";",
	CommaToken:                  ",",
	QuestionToken:               "?",
	ColonToken:                  ":",
	ArrowToken:                  "=>",
	EllipsisToken:               "...",
	OptChainToken:               "?.",
	AtToken:                     "@",
	OperatorToken:               "Operator",
	EqToken:                     "=",
	EqEqToken:                   "==",
	EqEqEqToken:                 "===",
	NotToken:                    "!",
	NotEqToken:                  "!=",
	NotEqEqToken:                "!==",
	LtToken:                     "<",
	LtEqToken:                   "<=",
	LtLtToken:                   "<<",
	LtLtEqToken:                 "<<=",
	GtToken:                     ">",
	GtEqToken:                   ">=",
	GtGtToken:                   ">>",
	GtGtEqToken:                 ">>=",
	GtGtGtToken:                 ">>>",
	GtGtGtEqToken:               ">>>=",
	AddToken:                    "+",
	AddEqToken:                  "+=",
	IncrToken:                   "++",
	SubToken:                    "-",
	SubEqToken:                  "-=",
	DecrToken:                   "--",
	MulToken:                    "*",
	MulEqToken:                  "*=",
	ExpToken:                    "**",
	ExpEqToken:                  "**=",
	DivToken:                    "/",
	DivEqToken:                  "/=",
	ModToken:                    "%",
	ModEqToken:                  "%=",
	BitAndToken:                 "&",
	BitOrToken:                  "|",
	BitXorToken:                 "^",
	BitNotToken:                 "~",
	BitAndEqToken:               "&=",
	BitOrEqToken:                "|=",
	BitXorEqToken:               "^=",
	AndToken:                    "&&",
	OrToken:                     "||",
	NullishToken:                "??",
	AndEqToken:                  "&&=",
	OrEqToken:                   "||=",
	NullishEqToken:              "??=",
	PosToken:                    "+",
	NegToken:                    "-",
	PreIncrToken:                "++",
	PreDecrToken:                "--",
	PostIncrToken:               "++",
	PostDecrToken:               "--",
	IdentifierToken:             "Identifier",
}

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	} else if s, ok := keywordNames[tt]; ok {
		return s
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

////////////////////////////////////////////////////////////////

// Token is a lexed token. Its text is the source covered by Span.
type Token struct {
	Kind    TokenType
	Span    parse.Span
	Newline bool // preceded by a line terminator
	Escaped bool // identifier name written with unicode escapes
}

// Comment is a comment skipped by the lexer.
type Comment struct {
	Kind TokenType // SingleLineCommentToken or MultiLineCommentToken
	Span parse.Span
}
