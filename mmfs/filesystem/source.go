package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
)

// Source is one named root directory merged into the virtual namespace
type Source struct {
	ID    trees.SourceID
	Label string // Display name of the group node, e.g. "Content"
	Root  string // Physical directory
}

// Sources is the ordered source list. The first entry is the default source
// used for unprefixed paths.
type Sources []Source

// DefaultSources returns the content and agents sources below baseDir
func DefaultSources(baseDir string) Sources {
	return Sources{
		{ID: trees.SourceContent, Label: "Content", Root: filepath.Join(baseDir, string(trees.SourceContent))},
		{ID: trees.SourceAgents, Label: "Agents", Root: filepath.Join(baseDir, string(trees.SourceAgents))},
	}
}

// Validate checks that the list is usable: at least one source, unique
// single-segment IDs and non-empty roots.
func (s Sources) Validate() error {
	if len(s) == 0 {
		return common.ErrNoSources
	}

	vu := common.NewValidationUtils()
	seen := make(map[trees.SourceID]struct{}, len(s))
	for i, src := range s {
		if err := vu.ValidateRequiredString(string(src.ID), fmt.Sprintf("source[%d] id", i)); err != nil {
			return err
		}
		if strings.ContainsAny(string(src.ID), `/\`) || src.ID == "." || src.ID == ".." {
			return fmt.Errorf("%w: source id %q must be a single path segment", common.ErrPathInvalid, src.ID)
		}
		if err := vu.ValidateRequiredString(src.Root, fmt.Sprintf("source %q root", src.ID)); err != nil {
			return err
		}
		if _, dup := seen[src.ID]; dup {
			return fmt.Errorf("%w: %q", common.ErrDuplicateSource, src.ID)
		}
		seen[src.ID] = struct{}{}
	}
	return nil
}

// Default returns the first source
func (s Sources) Default() Source {
	return s[0]
}

// Lookup finds a source by ID
func (s Sources) Lookup(id trees.SourceID) (Source, bool) {
	for _, src := range s {
		if src.ID == id {
			return src, true
		}
	}
	return Source{}, false
}

// Split selects the source for a logical path. A path starting with
// "<id>/" selects that source and has the prefix removed; anything else goes
// to the default source unchanged.
func (s Sources) Split(userPath string) (Source, string) {
	for _, src := range s {
		prefix := string(src.ID) + "/"
		if strings.HasPrefix(userPath, prefix) {
			return src, strings.TrimPrefix(userPath, prefix)
		}
	}
	return s.Default(), userPath
}

// label falls back to the ID when no display name is set
func (src Source) label() string {
	if src.Label != "" {
		return src.Label
	}
	return string(src.ID)
}
