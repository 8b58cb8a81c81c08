package filesystem

import (
	"path"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
)

var headingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// TitleFromContent returns the text of the first level-one heading found
// anywhere in content.
func TitleFromContent(content string) (string, bool) {
	m := headingPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	title := strings.TrimRight(m[1], "\r")
	if title == "" {
		return "", false
	}
	return title, true
}

// DeriveTitle picks the display title of a document: its first heading, or
// the file's base name without its extension.
func DeriveTitle(content, fileName string, exts []string) string {
	if title, ok := TitleFromContent(content); ok {
		return title
	}
	return common.StripExtension(path.Base(fileName), exts)
}
