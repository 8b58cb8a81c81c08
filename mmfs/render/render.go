// Package render turns documents into terminal output based on their file
// type.
package render

import (
	"bytes"
	"encoding/json"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Kind classifies a document for rendering.
type Kind string

const (
	// KindMarkdown is rendered through glamour.
	KindMarkdown Kind = "markdown"
	// KindJSON is pretty-printed.
	KindJSON Kind = "json"
	// KindCode is shown verbatim.
	KindCode Kind = "code"
	// KindText is shown verbatim.
	KindText Kind = "text"
)

// Options configures Render.
type Options struct {
	// Width is the word wrap width for markdown (0 for no wrap).
	Width int
	// Raw disables all formatting.
	Raw bool
	// Style is a glamour standard style name; empty selects one from the terminal.
	Style string
}

// KindOf classifies fileName by its extension.
func KindOf(fileName string) Kind {
	switch path.Ext(fileName) {
	case ".md":
		return KindMarkdown
	case ".json":
		return KindJSON
	case ".js", ".ts", ".py", ".sh", ".txt":
		return KindCode
	default:
		return KindText
	}
}

// Render formats content according to the kind of fileName.
func Render(fileName, content string, opts Options) (string, error) {
	if opts.Raw {
		return content, nil
	}

	switch KindOf(fileName) {
	case KindMarkdown:
		return renderMarkdown(content, opts)
	case KindJSON:
		return PrettyJSON(content), nil
	default:
		return content, nil
	}
}

// PrettyJSON indents content by two spaces. Invalid JSON is returned
// unchanged.
func PrettyJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(content), "", "  "); err != nil {
		return content
	}
	return strings.TrimRight(buf.String(), " \t\r\n")
}

func renderMarkdown(content string, opts Options) (string, error) {
	var rendererOpts []glamour.TermRendererOption
	if opts.Style == "" {
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	} else {
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}

	rendererOpts = append(rendererOpts, glamour.WithWordWrap(max(opts.Width, 0)))

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
