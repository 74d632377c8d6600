package js

type tristate uint8

const (
	tristateFalse tristate = iota
	tristateTrue
	tristateMaybe
)

// isParenthesizedArrow decides whether the ( or < at the current token starts an arrow function. It consumes tokens and must be called within lookahead.
func (p *Parser) isParenthesizedArrow() tristate {
	if p.tt == LtToken {
		if !p.st.TypeScript {
			return tristateFalse
		}
		p.next()
		if p.tt == ConstToken {
			p.next()
		}
		if !p.isIdentifier(p.tt) {
			return tristateFalse
		} else if !p.st.JSX {
			return tristateMaybe
		}
		// <T,> and <T extends U> are type parameters in TSX, anything else is an element
		p.next()
		switch p.tt {
		case CommaToken, EqToken:
			return tristateTrue
		case ExtendsToken:
			p.next()
			if p.tt == EqToken || p.tt == GtToken || p.tt == DivToken {
				return tristateFalse
			}
			return tristateTrue
		}
		return tristateFalse
	} else if p.tt != OpenParenToken {
		return tristateFalse
	}

	p.next()
	switch p.tt {
	case CloseParenToken:
		p.next()
		if p.tt == ArrowToken || p.tt == ColonToken || p.tt == OpenBraceToken {
			return tristateTrue
		}
		return tristateFalse
	case OpenBracketToken, OpenBraceToken:
		return tristateMaybe
	case EllipsisToken:
		return tristateTrue
	case AtToken:
		return tristateTrue
	}

	if p.st.TypeScript && isParamModifier(p.tt) && IsIdentifierName(p.peek().Kind) {
		return tristateTrue
	} else if p.tt == ThisToken && p.st.TypeScript {
		p.next()
		if p.tt == ColonToken {
			return tristateTrue
		}
		return tristateFalse
	} else if !p.isIdentifier(p.tt) {
		return tristateFalse
	}
	p.next()
	switch p.tt {
	case ColonToken:
		if p.st.TypeScript {
			return tristateTrue
		}
	case QuestionToken:
		p.next()
		if p.st.TypeScript && (p.tt == ColonToken || p.tt == CommaToken || p.tt == EqToken || p.tt == CloseParenToken) {
			return tristateTrue
		}
	case CommaToken, EqToken, CloseParenToken:
		return tristateMaybe
	}
	return tristateFalse
}

func isParamModifier(tt TokenType) bool {
	switch tt {
	case PublicToken, PrivateToken, ProtectedToken, ReadonlyToken, OverrideToken:
		return true
	}
	return false
}

// isStartOfExpression returns true if the current token can start an expression.
func (p *Parser) isStartOfExpression() bool {
	switch p.tt {
	case StringToken, NumericToken, BigIntToken, NoSubstitutionTemplateToken, TemplateHeadToken, PrivateIdentifierToken,
		OpenParenToken, OpenBracketToken, OpenBraceToken, DivToken, DivEqToken, AtToken,
		AddToken, SubToken, BitNotToken, NotToken, IncrToken, DecrToken, LtToken,
		FunctionToken, ClassToken, NewToken, DeleteToken, TypeofToken, VoidToken,
		ThisToken, SuperToken, NullToken, TrueToken, FalseToken, ImportToken, AwaitToken, YieldToken:
		return true
	}
	return p.isIdentifier(p.tt)
}

// tryParseTypeArgsInExpr parses f<T> in an expression, which is only a type argument list if the token after > cannot continue a comparison.
func (p *Parser) tryParseTypeArgsInExpr() (*TypeArgs, bool) {
	return tryParse(p, "type arguments", func() (*TypeArgs, bool) {
		args := p.parseTypeArgs()
		return args, p.canFollowTypeArgs()
	})
}

func (p *Parser) canFollowTypeArgs() bool {
	if p.tok.Span.Start == p.prevEnd && len(p.data) != 0 && (p.data[0] == '=' || p.data[0] == '>') {
		return false // the > was split off >= or >>
	}
	switch p.tt {
	case OpenParenToken, NoSubstitutionTemplateToken, TemplateHeadToken:
		return true
	case LtToken, GtToken, AddToken, SubToken:
		return false
	}
	return p.tok.Newline || binaryPrec(p.tt) != OpEnd || p.tt == AsToken || p.tt == SatisfiesToken || !p.isStartOfExpression()
}

// isStartOfFunctionType returns true at < or at a ( that starts the parameter list of a function type rather than a parenthesized type.
func (p *Parser) isStartOfFunctionType() bool {
	if p.tt == LtToken || p.tt == LtLtToken {
		return true
	} else if p.tt != OpenParenToken {
		return false
	}
	return p.lookahead(func() bool {
		p.next()
		if p.tt == CloseParenToken || p.tt == EllipsisToken {
			return true
		} else if !p.skipParamStart() {
			return false
		}
		switch p.tt {
		case ColonToken, CommaToken, QuestionToken, EqToken:
			return true
		case CloseParenToken:
			p.next()
			return p.tt == ArrowToken
		}
		return false
	})
}

// skipParamStart skips modifiers and the binding of a parameter, returning false if there is none.
func (p *Parser) skipParamStart() bool {
	for isParamModifier(p.tt) && IsIdentifierName(p.peek().Kind) {
		p.next()
	}
	if p.isIdentifier(p.tt) || p.tt == ThisToken {
		p.next()
		return true
	} else if p.tt == OpenBracketToken || p.tt == OpenBraceToken {
		errs := len(p.errs)
		p.parseBindingTarget("parameter")
		return len(p.errs) == errs
	}
	return false
}

// isStartOfMappedType returns true if the { at the current token opens { [K in T]: U }.
func (p *Parser) isStartOfMappedType() bool {
	return p.lookahead(func() bool {
		p.next()
		if p.tt == AddToken || p.tt == SubToken {
			p.next()
			return p.tt == ReadonlyToken
		} else if p.tt == ReadonlyToken {
			p.next()
		}
		if p.tt != OpenBracketToken {
			return false
		}
		p.next()
		if !IsIdentifierName(p.tt) {
			return false
		}
		p.next()
		return p.tt == InToken
	})
}

// isStartOfIndexSignature returns true if the [ at the current token opens [key: K].
func (p *Parser) isStartOfIndexSignature() bool {
	return p.lookahead(func() bool {
		p.next()
		if !IsIdentifierName(p.tt) {
			return false
		}
		p.next()
		return p.tt == ColonToken || p.tt == CommaToken
	})
}

// isStartOfNamedTupleMember returns true at name: T or name?: T in a tuple type.
func (p *Parser) isStartOfNamedTupleMember() bool {
	if !IsIdentifierName(p.tt) {
		return false
	}
	return p.lookahead(func() bool {
		p.next()
		if p.tt == QuestionToken {
			p.next()
		}
		return p.tt == ColonToken
	})
}
