package filesystem

import (
	"testing"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fileName string
		expected string
	}{
		{"first line heading", "# Overview\n\ntext", "overview.md", "Overview"},
		{"heading later in file", "intro\n\n# Later Heading\n", "notes.md", "Later Heading"},
		{"first of several headings", "# One\n# Two\n", "x.md", "One"},
		{"second level ignored", "## Sub\ntext", "sub.md", "sub"},
		{"needs whitespace", "#NoSpace\n", "nospace.md", "nospace"},
		{"crlf line endings", "# Windows Title\r\nbody\r\n", "win.md", "Windows Title"},
		{"heading in code file", "#!/bin/sh\n# Deploy script\necho", "deploy.sh", "Deploy script"},
		{"json fallback", `{"name":"memory"}`, "config.json", "config"},
		{"empty file", "", "empty.txt", "empty"},
		{"unsupported extension kept", "plain", "photo.png", "photo.png"},
		{"nested file name", "x", "skills/config.json", "config"},
		{"inner text kept verbatim", "#   Spaced  *Title*  \n", "t.md", "Spaced  *Title*  "},
		{"whitespace heading kept", "#  ", "blank.md", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveTitle(tt.content, tt.fileName, common.DefaultExtensions))
		})
	}
}

func TestTitleFromContent(t *testing.T) {
	title, ok := TitleFromContent("# Hello")
	assert.True(t, ok)
	assert.Equal(t, "Hello", title)

	_, ok = TitleFromContent("no heading here")
	assert.False(t, ok)
}
