package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		fileName string
		expected Kind
	}{
		{"overview.md", KindMarkdown},
		{"skills/config.json", KindJSON},
		{"deploy.sh", KindCode},
		{"tool.py", KindCode},
		{"index.js", KindCode},
		{"index.ts", KindCode},
		{"notes.txt", KindCode},
		{"README", KindText},
		{"photo.png", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.fileName))
		})
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render("config.json", `{"name":"memory","tags":["a","b"]}`, Options{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"memory\",\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ]\n}", out)
}

func TestRenderInvalidJSONFallsBack(t *testing.T) {
	raw := `{"name": "memory",`
	out, err := Render("config.json", raw, Options{})
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestRenderCodeVerbatim(t *testing.T) {
	script := "#!/bin/sh\necho   hi\n"
	out, err := Render("deploy.sh", script, Options{})
	require.NoError(t, err)
	assert.Equal(t, script, out)
}

func TestRenderRaw(t *testing.T) {
	for _, name := range []string{"a.md", "b.json", "c.py"} {
		out, err := Render(name, `{"x": 1}`, Options{Raw: true})
		require.NoError(t, err)
		assert.Equal(t, `{"x": 1}`, out, name)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render("overview.md", "# Overview\n\nSome **bold** text.", Options{Style: "notty", Width: 60})
	require.NoError(t, err)
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "bold")
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestRenderMarkdownWidth(t *testing.T) {
	paragraph := strings.TrimSpace(strings.Repeat("memory ", 40))

	wrapped, err := Render("long.md", paragraph, Options{Style: "notty", Width: 60})
	require.NoError(t, err)
	assert.Greater(t, countLinesWith(wrapped, "memory"), 1)

	unwrapped, err := Render("long.md", paragraph, Options{Style: "notty", Width: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, countLinesWith(unwrapped, "memory"))
}

func countLinesWith(s, word string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, word) {
			n++
		}
	}
	return n
}
