package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/shlint/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCollectTakesFilesAsGiven(t *testing.T) {
	dir := t.TempDir()
	// Explicit file arguments bypass the extension filter.
	path := writeFile(t, dir, "notes.txt", "echo hi\n")

	fs := NewLocalScriptFSAdapter()

	paths, err := fs.Collect([]m.Path{m.Path(path)})

	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(path)}, paths)
}

func TestCollectWalksDirectoriesForScripts(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sh", "echo a\n")
	b := writeFile(t, dir, "nested/b.bash", "echo b\n")
	writeFile(t, dir, "nested/readme.md", "not a script\n")

	fs := NewLocalScriptFSAdapter()

	paths, err := fs.Collect([]m.Path{m.Path(dir)})

	require.NoError(t, err)
	assert.ElementsMatch(t, []m.Path{m.Path(a), m.Path(b)}, paths)
}

func TestCollectFindsExtensionlessScriptsByShebang(t *testing.T) {
	dir := t.TempDir()
	hook := writeFile(t, dir, "pre-commit", "#!/bin/bash\necho hook\n")
	writeFile(t, dir, "Makefile", "all:\n\techo not a script\n")
	writeFile(t, dir, "tool.py", "#!/usr/bin/env python\n")

	fs := NewLocalScriptFSAdapter()

	paths, err := fs.Collect([]m.Path{m.Path(dir)})

	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(hook)}, paths)
}

func TestCollectDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.sh", "echo a\n")

	fs := NewLocalScriptFSAdapter()

	paths, err := fs.Collect([]m.Path{m.Path(path), m.Path(dir)})

	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(path)}, paths)
}

func TestCollectCarriesMissingPath(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.sh", "echo hi\n")
	missing := filepath.Join(dir, "does-not-exist.sh")

	fs := NewLocalScriptFSAdapter()

	// A path that cannot be stat'ed still comes back, so the caller
	// can report it per file while the rest of the run continues.
	paths, err := fs.Collect([]m.Path{m.Path(missing), m.Path(good)})

	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(missing), m.Path(good)}, paths)
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocalScriptFSAdapter()

	tests := []struct {
		name         string
		content      string
		want         []string
		finalNewline bool
	}{
		{
			name:         "trailing newline drops no phantom line",
			content:      "#!/bin/bash\necho hi\n",
			want:         []string{"#!/bin/bash", "echo hi"},
			finalNewline: true,
		},
		{
			name:         "missing trailing newline keeps last line",
			content:      "echo hi",
			want:         []string{"echo hi"},
			finalNewline: false,
		},
		{
			name:         "blank lines survive",
			content:      "a\n\nb\n",
			want:         []string{"a", "", "b"},
			finalNewline: true,
		},
		{
			name:         "empty file",
			content:      "",
			want:         nil,
			finalNewline: false,
		},
	}

	for i, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Join("read", string(rune('a'+i))+".sh"), test.content)

			lines, finalNewline, err := fs.ReadLines(m.Path(path))

			require.NoError(t, err)
			assert.Equal(t, test.want, lines)
			assert.Equal(t, test.finalNewline, finalNewline)
		})
	}
}

func TestWriteFileAtomicReplacesContentAndKeepsPerm(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deploy.sh", "old\n")
	require.NoError(t, os.Chmod(path, 0o750))

	fs := NewLocalScriptFSAdapter()

	err := fs.WriteFileAtomic(m.Path(path), []byte("new\n"), 0o750)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
}

func TestWriteFileAtomicLeavesNoScratchFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.sh", "old\n")

	fs := NewLocalScriptFSAdapter()
	require.NoError(t, fs.WriteFileAtomic(m.Path(path), []byte("new\n"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".shlint-"),
			"scratch file left behind: %s", entry.Name())
	}
}
