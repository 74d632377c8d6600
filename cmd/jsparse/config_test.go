package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/test"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jsparse.yaml", `types:
  .js: script
  .d.ts: ts
  .es: module
print: true
repeat: 3
jobs: 2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	test.That(t, cfg.Print)
	test.T(t, cfg.Repeat, 3)
	test.T(t, cfg.Jobs, 2)

	var tests = []struct {
		path     string
		expected string
	}{
		{"a.js", "script"},
		{"a.es", "module"},
		{"lib/a.d.ts", "module+ts"},
		{"a.ts", "module+ts"},
		{"a.tsx", "module+ts+jsx"},
		{"a.cjs", "script"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			st, err := cfg.sourceType(tt.path)
			test.Error(t, err)
			test.String(t, st.String(), tt.expected)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	var tests = []struct {
		name    string
		content string
	}{
		{"dot.yaml", "types:\n  js: script\n"},
		{"type.yaml", "types:\n  .js: coffee\n"},
		{"field.yaml", "verbose: true\n"},
		{"negative.yaml", "repeat: -1\n"},
		{"syntax.yaml", "types: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, dir, tt.name, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
