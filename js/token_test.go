package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTokenTypeString(t *testing.T) {
	var tests = []struct {
		tt       TokenType
		expected string
	}{
		{EOFToken, "EOF"},
		{IdentifierToken, "Identifier"},
		{OpenBraceToken, "{"},
		{GtGtGtEqToken, ">>>="},
		{PostIncrToken, "++"},
		{VarToken, "var"},
		{AsyncToken, "async"},
		{StringKeywordToken, "string"},
		{UndefinedToken, "undefined"},
		{TokenType(0xFFFF), "Invalid(65535)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, tt.tt.String(), tt.expected)
		})
	}
}

func TestTokenPredicates(t *testing.T) {
	test.That(t, IsPunctuator(SemicolonToken))
	test.That(t, IsPunctuator(AddToken), "operators are punctuators")
	test.That(t, !IsPunctuator(IdentifierToken))
	test.That(t, IsOperator(NullishEqToken))
	test.That(t, !IsOperator(ArrowToken))

	test.That(t, IsIdentifierName(IdentifierToken))
	test.That(t, IsIdentifierName(IfToken))
	test.That(t, IsIdentifierName(OfToken))
	test.That(t, IsIdentifierName(NumberToken))
	test.That(t, !IsIdentifierName(StringToken))

	test.That(t, IsReservedWord(IfToken))
	test.That(t, IsReservedWord(EnumToken))
	test.That(t, !IsReservedWord(LetToken))
	test.That(t, IsStrictReservedWord(LetToken))
	test.That(t, IsStrictReservedWord(YieldToken))
	test.That(t, !IsStrictReservedWord(AwaitToken))

	test.That(t, IsContextualKeyword(AsyncToken))
	test.That(t, IsContextualKeyword(SatisfiesToken))
	test.That(t, IsContextualKeyword(AnyToken), "type keywords are valid identifiers")
	test.That(t, !IsContextualKeyword(IfToken))
	test.That(t, !IsContextualKeyword(IdentifierToken))

	test.That(t, IsTypeKeyword(AnyToken))
	test.That(t, IsTypeKeyword(UndefinedToken))
	test.That(t, !IsTypeKeyword(VoidToken), "void is a reserved word")
	test.That(t, !IsTypeKeyword(KeyofToken))

	test.That(t, IsAssignOperator(EqToken))
	test.That(t, IsAssignOperator(NullishEqToken))
	test.That(t, !IsAssignOperator(EqEqToken))
}

func TestKeywords(t *testing.T) {
	for name, tt := range Keywords {
		test.String(t, tt.String(), name)
		test.That(t, IsIdentifierName(tt), name+" must be an identifier name")
	}
}

func TestOpPrec(t *testing.T) {
	test.That(t, binaryPrec(MulToken) > binaryPrec(AddToken))
	test.That(t, binaryPrec(ExpToken) > binaryPrec(MulToken))
	test.That(t, binaryPrec(NullishToken) < binaryPrec(OrToken))
	test.T(t, binaryPrec(InToken), OpCompare)
	test.T(t, binaryPrec(EqToken), OpEnd)
}
