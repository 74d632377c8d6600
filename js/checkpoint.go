package js

import (
	"go.uber.org/zap"
)

// checkpoint is a snapshot of all parser and lexer state that speculative parsing can change, except for the fatal error.
type checkpoint struct {
	lex        lexState
	tok        Token
	prevEnd    uint32
	errs       int
	eofHits    int
	coverInits int
}

func (p *Parser) checkpoint() checkpoint {
	return checkpoint{
		lex:        p.l.state(),
		tok:        p.tok,
		prevEnd:    p.prevEnd,
		errs:       len(p.errs),
		eofHits:    p.eofHits,
		coverInits: len(p.coverInits),
	}
}

// rewind restores the state at cp. Diagnostics recorded since are dropped, the fatal error is kept.
func (p *Parser) rewind(cp checkpoint) {
	p.l.restore(cp.lex)
	p.setToken(cp.tok)
	p.prevEnd = cp.prevEnd
	p.errs = p.errs[:cp.errs]
	p.eofHits = cp.eofHits
	p.coverInits = p.coverInits[:cp.coverInits]
}

// tryParse runs f speculatively. It succeeds when f returns ok without recording any diagnostic or running into a fatal error; otherwise all state is rewound.
func tryParse[T any](p *Parser, what string, f func() (T, bool)) (T, bool) {
	cp := p.checkpoint()
	fatal := p.fatal()
	p.speculating++
	v, ok := f()
	p.speculating--
	if ok && len(p.errs) == cp.errs && len(p.l.errs) == cp.lex.errs && p.fatal() == fatal {
		return v, true
	}
	if ce := p.log.Check(zap.DebugLevel, "speculation rejected"); ce != nil {
		ce.Write(zap.String("production", what), zap.Uint32("offset", cp.tok.Span.Start), zap.Bool("ok", ok), zap.Int("errors", len(p.errs)-cp.errs+len(p.l.errs)-cp.lex.errs))
	}
	p.rewind(cp)
	var zero T
	return zero, false
}

// lookahead evaluates f and always rewinds afterwards. A fatal error found while looking ahead is discarded, it is found again once the tokens are consumed.
func (p *Parser) lookahead(f func() bool) bool {
	cp := p.checkpoint()
	fatal := p.l.fatal
	ok := f()
	p.rewind(cp)
	p.l.fatal = fatal
	return ok
}
