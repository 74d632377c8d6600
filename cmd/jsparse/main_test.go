package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestRunner(t *testing.T, a args, cfg Config) (*runner, *bytes.Buffer) {
	var buf bytes.Buffer
	r, err := newRunner(a, cfg, zap.NewNop(), &buf)
	require.NoError(t, err)
	return r, &buf
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.ts", "let a: number = 1")
	bad := writeFile(t, dir, "bad.js", "let a = 1;\nlet b = ;")

	r, buf := newTestRunner(t, args{}, Config{})
	failed, err := r.run(context.Background(), []string{good})
	test.Error(t, err)
	test.That(t, !failed)
	test.String(t, buf.String(), "")

	failed, err = r.run(context.Background(), []string{good, bad})
	test.Error(t, err)
	test.That(t, failed)
	assert.True(t, strings.HasPrefix(buf.String(), bad+":2:9: unexpected ';' in expression\n"), buf.String())
	assert.Contains(t, buf.String(), "    2: let b = ;")
}

func TestRunMissingFile(t *testing.T) {
	r, _ := newTestRunner(t, args{}, Config{})
	_, err := r.run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.js")})
	assert.Error(t, err)

	_, err = r.run(context.Background(), []string{"unknown.coffee"})
	assert.Error(t, err)
}

func TestRunPrint(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "f(x)")
	r, buf := newTestRunner(t, args{Print: true}, Config{})
	_, err := r.run(context.Background(), []string{path})
	test.Error(t, err)
	test.String(t, buf.String(), "Program\n  ExprStmt\n    CallExpr\n      Var f\n      Args\n        Var x\n")

	r, buf = newTestRunner(t, args{Positions: true}, Config{})
	_, err = r.run(context.Background(), []string{path})
	test.Error(t, err)
	assert.Contains(t, buf.String(), "Var f @1:1 [0,1)")
}

func TestRunStats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "let a = [1, 2, 3]")
	r, buf := newTestRunner(t, args{Stats: true, Repeat: 3}, Config{})
	_, err := r.run(context.Background(), []string{path})
	test.Error(t, err)
	assert.Contains(t, buf.String(), path+": 17 B source, ")
	assert.Contains(t, buf.String(), "Parse time over 3 runs:")
	assert.Contains(t, buf.String(), "  Median: ")
}

func TestRunType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "let a: number = 1")
	r, _ := newTestRunner(t, args{}, Config{})
	failed, err := r.run(context.Background(), []string{path})
	test.Error(t, err)
	test.That(t, failed, "type annotations are not JavaScript")

	r, _ = newTestRunner(t, args{Type: "ts"}, Config{})
	failed, err = r.run(context.Background(), []string{path})
	test.Error(t, err)
	test.That(t, !failed)

	r, _ = newTestRunner(t, args{}, Config{Types: map[string]string{".js": "ts"}})
	failed, err = r.run(context.Background(), []string{path})
	test.Error(t, err)
	test.That(t, !failed)

	_, err = newRunner(args{Type: "coffee"}, Config{}, zap.NewNop(), io.Discard)
	assert.Error(t, err)
}

func TestRunnerDefaults(t *testing.T) {
	r, _ := newTestRunner(t, args{}, Config{Repeat: 5, Jobs: 2, Print: true})
	test.T(t, r.Repeat, 5)
	test.T(t, r.Jobs, 2)
	test.That(t, r.Print)

	r, _ = newTestRunner(t, args{Repeat: 2}, Config{Repeat: 5})
	test.T(t, r.Repeat, 2, "flags override the config file")

	r, _ = newTestRunner(t, args{}, Config{})
	test.T(t, r.Repeat, 1)
	test.That(t, 0 < r.Jobs)
}

func TestWatch(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.js", "let a = 1")
	r, buf := newTestRunner(t, args{}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.watch(ctx, []string{path})
	}()

	// keep writing until the watcher has picked up a change
	assert.Eventually(t, func() bool {
		assert.NoError(t, os.WriteFile(path, []byte("let a = ;"), 0644))
		r.mu.Lock()
		defer r.mu.Unlock()
		return strings.Contains(buf.String(), path+":1:9: ")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		test.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
