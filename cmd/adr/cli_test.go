package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/adr/pkg/link"
)

// run executes the CLI against root and returns stdout.
func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--dir", root}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func initProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	out, err := run(t, root, "init")
	require.NoError(t, err)
	require.Contains(t, out, "(1 records)")
	return root
}

func TestCLI_InitNewList(t *testing.T) {
	root := initProject(t)

	out, err := run(t, root, "new", "Use", "PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, "0002-use-postgresql.md\n", out)

	out, err = run(t, root, "new", "-s", "2", "-l", "1:Amends:Amended by", "Use", "SQLite")
	require.NoError(t, err)
	assert.Equal(t, "0003-use-sqlite.md\n", out)

	out, err = run(t, root, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0001  Accepted"))
	assert.True(t, strings.HasSuffix(lines[2], "Use SQLite"))

	content, err := os.ReadFile(filepath.Join(root, "doc", "adr", "0002-use-postgresql.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Superseded by [ADR 3](0003-use-sqlite.md)")

	out, err = run(t, root, "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3. Use SQLite")
	assert.Contains(t, out, "Amends 1 (0001-record-architecture-decisions.md)")
	assert.Contains(t, out, "Supersedes 2 (0002-use-postgresql.md)")
}

func TestCLI_ListJSON(t *testing.T) {
	root := initProject(t)

	out, err := run(t, root, "list", "--json")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Record architecture decisions", records[0]["Title"])
}

func TestCLI_InvalidLink(t *testing.T) {
	root := initProject(t)

	_, err := run(t, root, "new", "-l", "abc:oops", "Broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, link.ErrSpecification))

	_, err = run(t, root, "link", "1", "1:a:b:c")
	assert.True(t, errors.Is(err, link.ErrSpecification))

	// Nothing was written.
	entries, err := os.ReadDir(filepath.Join(root, "doc", "adr"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCLI_Link(t *testing.T) {
	root := initProject(t)
	_, err := run(t, root, "new", "Second")
	require.NoError(t, err)

	out, err := run(t, root, "link", "2", "1:Clarifies:Clarified by")
	require.NoError(t, err)
	assert.Equal(t, "Linked 0002-second.md -> 0001-record-architecture-decisions.md\n", out)

	out, err = run(t, root, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Clarified by 2 (0002-second.md)")

	out, err = run(t, root, "link", "2", "")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, root, "link", "x", "1")
	assert.Error(t, err)
	_, err = run(t, root, "link", "2", "9")
	assert.Error(t, err)
}

func TestCLI_ShowRaw(t *testing.T) {
	root := initProject(t)

	out, err := run(t, root, "show", "--raw", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# 1. Record architecture decisions\n"))

	_, err = run(t, root, "show", "7")
	assert.Error(t, err)
}

func TestCLI_Info(t *testing.T) {
	root := initProject(t)

	out, err := run(t, root, "info")
	require.NoError(t, err)

	var state map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, "fs", state["service"]["repository_type"])
	assert.Equal(t, false, state["service"]["versioning"])
}

func TestCLI_NotInitialized(t *testing.T) {
	_, err := run(t, t.TempDir(), "list")
	assert.Error(t, err)
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "adr version "))
}
