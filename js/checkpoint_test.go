package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/test"
)

func TestTryParseRewinds(t *testing.T) {
	p := newParser([]byte("(a /* c */, b) => a + b; x"), Options{SourceType: TS})
	p.next()
	before := p.checkpoint()
	ctx := p.ctx

	x, ok := tryParse(p, "test", func() (IExpr, bool) {
		x := p.parseExpr()
		p.fail("test")
		return x, true
	})
	test.That(t, !ok, "a speculation that records a diagnostic is rejected")
	test.That(t, x == nil)
	assert.Equal(t, before, p.checkpoint())
	test.T(t, p.tt, OpenParenToken)
	test.T(t, p.ctx, ctx)
	test.T(t, len(p.errs), 0)
	test.T(t, len(p.l.Comments()), 0)
	test.T(t, p.speculating, 0)
}

func TestTryParseCommits(t *testing.T) {
	p := newParser([]byte("(a, b) => a + b; x"), Options{SourceType: TS})
	p.next()
	x, ok := tryParse(p, "test", func() (IExpr, bool) {
		return p.parseExpr(), true
	})
	test.That(t, ok)
	test.String(t, x.String(), "Arrow(Params(a, b) => (a + b))")
	test.T(t, p.tt, SemicolonToken)
}

func TestTryParseNotOk(t *testing.T) {
	p := newParser([]byte("a b c"), Options{SourceType: Script})
	p.next()
	_, ok := tryParse(p, "test", func() (bool, bool) {
		p.next()
		p.next()
		return true, false
	})
	test.That(t, !ok)
	test.String(t, string(p.data), "a")
}

func TestTryParseKeepsFatal(t *testing.T) {
	p := newParser([]byte("x `abc"), Options{SourceType: Script})
	p.next()
	tok := p.tok
	_, ok := tryParse(p, "test", func() (bool, bool) {
		p.next()
		return true, true
	})
	test.That(t, !ok, "a speculation that runs into a fatal error is rejected")
	test.T(t, p.tok, tok)
	test.That(t, p.fatal(), "the fatal error survives the rewind")
}

func TestLookahead(t *testing.T) {
	p := newParser([]byte("a + b // c\n`abc"), Options{SourceType: Script})
	p.next()
	before := p.checkpoint()
	sawFatal := p.lookahead(func() bool {
		for p.tt != EOFToken {
			p.next()
		}
		return p.fatal()
	})
	test.That(t, sawFatal)
	test.That(t, !p.fatal(), "a fatal error found while looking ahead is discarded")
	assert.Equal(t, before, p.checkpoint())
	test.String(t, string(p.data), "a")

	for p.tt != EOFToken {
		p.next()
	}
	test.That(t, p.fatal(), "the fatal error is found again")
}

func TestEOFHitsRewound(t *testing.T) {
	p := newParser([]byte("a"), Options{SourceType: Script})
	p.next()
	_, ok := tryParse(p, "test", func() (bool, bool) {
		for i := 0; i < 10; i++ {
			p.next()
		}
		return false, false
	})
	test.That(t, !ok)
	test.T(t, p.eofHits, 0)
}
