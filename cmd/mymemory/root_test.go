package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	content string
	agents  string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	base := t.TempDir()
	f := fixture{content: filepath.Join(base, "content"), agents: filepath.Join(base, "agents")}

	mod := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	write := func(root, rel, body string, at time.Time) {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		require.NoError(t, os.Chtimes(p, at, at))
	}
	write(f.content, "overview.md", "# Project Overview\n\nHello there.", mod)
	write(f.content, "notes/welcome.md", "# Welcome", mod.Add(time.Hour))
	write(f.agents, "skills/config.json", `{"name":"memory"}`, mod.Add(2*time.Hour))
	return f
}

// run executes the CLI against the fixture and returns stdout
func run(t *testing.T, f fixture, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--content-dir", f.content, "--agents-dir", f.agents, "--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestTreeCommand(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "tree")
	require.NoError(t, err)

	assert.Contains(t, out, "Content")
	assert.Contains(t, out, "Agents")
	assert.Contains(t, out, "notes/")
	assert.Contains(t, out, "welcome.md")
	assert.Contains(t, out, "config.json")
	assert.Less(t, strings.Index(out, "Content"), strings.Index(out, "Agents"))
	assert.Less(t, strings.Index(out, "notes/"), strings.Index(out, "overview.md"))
	assert.Contains(t, out, "3 documents, 4 directories")
}

func TestTreeCommandSubtree(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "tree", "agents/skills", "--paths")
	require.NoError(t, err)
	assert.Contains(t, out, "skills")
	assert.Contains(t, out, "agents/skills/config")
	assert.NotContains(t, out, "overview")

	_, err = run(t, f, "tree", "content/missing")
	assert.Error(t, err)
}

func TestRecentCommand(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "recent")
	require.NoError(t, err)

	assert.Contains(t, out, "MODIFIED")
	iConfig := strings.Index(out, "agents/skills/config")
	iWelcome := strings.Index(out, "content/notes/welcome")
	iOverview := strings.Index(out, "content/overview")
	require.True(t, iConfig >= 0 && iWelcome >= 0 && iOverview >= 0, out)
	assert.Less(t, iConfig, iWelcome)
	assert.Less(t, iWelcome, iOverview)
	assert.Contains(t, out, "Project Overview")
}

func TestRecentCommandFilters(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "recent", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "agents/skills/config")
	assert.NotContains(t, out, "content/overview")

	out, err = run(t, f, "recent", "--prefix", "content/notes")
	require.NoError(t, err)
	assert.Contains(t, out, "content/notes/welcome")
	assert.NotContains(t, out, "agents/skills/config")

	out, err = run(t, f, "recent", "--prefix", "nothing/here")
	require.NoError(t, err)
	assert.Contains(t, out, "no documents")
}

func TestShowCommand(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "show", "agents/skills/config")
	require.NoError(t, err)
	assert.Contains(t, out, "\"name\": \"memory\"")
	assert.Contains(t, out, "agents/skills/config")

	out, err = run(t, f, "show", "agents/skills/config", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "{\"name\":\"memory\"}\n", out)

	out, err = run(t, f, "show", "overview", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Project Overview")
	assert.Contains(t, out, "Hello there.")
}

func TestShowCommandNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := run(t, f, "show", "unknown/file")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotFound)
	assert.Contains(t, err.Error(), "unknown/file")
}

func TestExplicitConfigMustExist(t *testing.T) {
	f := newFixture(t)

	_, err := run(t, f, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "tree")
	assert.Error(t, err)
}
