package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// matcher decides whether a path relative to a source root is hidden from
// walks and resolution.
type matcher struct {
	rules         *ignore.GitIgnore
	includeHidden bool
	ignoreFile    string
}

// loadIgnore compiles the ignore file at the top of root, if there is one.
// A missing file yields a matcher that only applies the hidden-entry rule.
func loadIgnore(root, ignoreFile string, includeHidden bool, logger zerolog.Logger) *matcher {
	m := &matcher{includeHidden: includeHidden, ignoreFile: ignoreFile}
	if ignoreFile == "" {
		return m
	}

	p := filepath.Join(root, ignoreFile)
	rules, err := ignore.CompileIgnoreFile(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("file", p).Msg("Failed to load ignore file")
		}
		return m
	}
	m.rules = rules
	return m
}

// excluded reports whether the entry at rel should be skipped
func (m *matcher) excluded(rel string, isDir bool) bool {
	if m == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	base := rel[strings.LastIndex(rel, "/")+1:]

	if m.ignoreFile != "" && base == m.ignoreFile {
		return true
	}
	if !m.includeHidden && strings.HasPrefix(base, ".") {
		return true
	}
	if m.rules == nil {
		return false
	}
	if m.rules.MatchesPath(rel) {
		return true
	}
	return isDir && m.rules.MatchesPath(rel+"/")
}

// excludedChain reports whether rel or any of its ancestors is excluded.
// Walks prune excluded directories; the resolver checks the whole chain
// instead since it jumps straight to the file.
func (m *matcher) excludedChain(rel string) bool {
	chain := common.AncestorChain(rel)
	for i, p := range chain {
		if m.excluded(p, i < len(chain)-1) {
			return true
		}
	}
	return false
}

// statFollow stats p, following symlinks, and reports whether it exists
func statFollow(p string) (os.FileInfo, bool, error) {
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return info, true, nil
}
