package filesystem

import (
	"cmp"
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/options"
	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
	"github.com/rs/zerolog"
)

// Entry describes one directory entry handed to a Visitor
type Entry struct {
	Root    string      // Source root the walk started from
	AbsPath string      // Physical path
	RelPath string      // Slash path relative to Root, extension included
	Name    string      // Base name
	Info    os.FileInfo // Target info; symlinks are already followed
}

// Visitor turns walked entries into results of type T.
//
// VisitFile is called for every visible supported file and may drop it by
// returning false. VisitDirectory receives the results of a non-empty
// subdirectory and returns what replaces the directory in its parent.
type Visitor[T any] interface {
	VisitFile(e Entry) (T, bool, error)
	VisitDirectory(e Entry, children []T) []T
}

// Walker performs depth-first walks of source roots
type Walker struct {
	paths      *common.PathUtils
	opts       options.TraversalOptions
	validation *common.ValidationUtils
	logger     zerolog.Logger
}

// NewWalker creates a walker for the given traversal options
func NewWalker(opts options.TraversalOptions, logger zerolog.Logger) *Walker {
	opts = opts.Normalize()
	return &Walker{
		paths:      common.NewPathUtils(opts.Extensions...),
		opts:       opts,
		validation: common.NewValidationUtils(),
		logger:     logger,
	}
}

// Paths exposes the walker's extension allow-list helpers
func (w *Walker) Paths() *common.PathUtils {
	return w.paths
}

// Walk visits root depth first. Within a directory subdirectories come
// before files and each group is sorted by name; subdirectories that produce
// no results are dropped. A missing root yields an empty result.
func Walk[T any](ctx context.Context, w *Walker, root string, v Visitor[T]) ([]T, error) {
	info, exists, err := statFollow(root)
	if err != nil {
		return nil, common.WrapError(err, "failed to stat root %s", root)
	}
	if !exists {
		w.logger.Debug().Str("root", root).Msg("Source root does not exist")
		return []T{}, nil
	}
	if !info.IsDir() {
		w.logger.Warn().Str("root", root).Msg("Source root is not a directory")
		return []T{}, nil
	}

	m := loadIgnore(root, w.opts.IgnoreFile, w.opts.IncludeHidden, w.logger)
	items, err := walkDir(ctx, w, m, v, root, "")
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func walkDir[T any](ctx context.Context, w *Walker, m *matcher, v Visitor[T], root, rel string) ([]T, error) {
	if err := w.validation.ValidateContextCancellation(ctx); err != nil {
		return nil, err
	}

	dir := filepath.Join(root, filepath.FromSlash(rel))
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if rel == "" {
			return nil, common.WrapError(err, "failed to read root %s", root)
		}
		w.logger.Warn().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return nil, nil
	}

	var dirs, files []Entry
	for _, de := range dirEntries {
		name := de.Name()
		childRel := path.Join(rel, name)
		abs := filepath.Join(dir, name)

		isDir := de.IsDir()
		isFile := de.Type().IsRegular()
		if de.Type()&fs.ModeSymlink != 0 {
			target, ok, err := statFollow(abs)
			if err != nil || !ok {
				w.logger.Debug().Str("path", abs).Msg("Skipping dangling symlink")
				continue
			}
			// Linked directories could form cycles; only linked files are followed.
			isDir, isFile = false, target.Mode().IsRegular()
		}

		switch {
		case isDir:
			if m.excluded(childRel, true) {
				continue
			}
			dirs = append(dirs, Entry{Root: root, AbsPath: abs, RelPath: childRel, Name: name})
		case isFile:
			if !w.paths.IsSupportedFile(name) || m.excluded(childRel, false) {
				continue
			}
			files = append(files, Entry{Root: root, AbsPath: abs, RelPath: childRel, Name: name})
		}
	}

	byName := func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) }
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	var items []T
	for _, e := range dirs {
		children, err := walkDir(ctx, w, m, v, root, e.RelPath)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			continue
		}
		if info, err := os.Stat(e.AbsPath); err == nil {
			e.Info = info
		}
		items = append(items, v.VisitDirectory(e, children)...)
	}

	for _, e := range files {
		if err := w.validation.ValidateContextCancellation(ctx); err != nil {
			return nil, err
		}
		info, err := os.Stat(e.AbsPath)
		if err != nil {
			w.logger.Warn().Err(err).Str("file", e.AbsPath).Msg("Skipping unreadable file")
			continue
		}
		e.Info = info

		item, ok, err := v.VisitFile(e)
		if err != nil {
			if common.IsContextError(err) {
				return nil, err
			}
			w.logger.Warn().Err(err).Str("file", e.AbsPath).Msg("Skipping file")
			continue
		}
		if ok {
			items = append(items, item)
		}
	}

	return items, nil
}

// BuildTree walks root into a node tree. Node paths are relative to root and
// file paths have their extension stripped.
func (w *Walker) BuildTree(ctx context.Context, root string) ([]*trees.FileNode, error) {
	return Walk[*trees.FileNode](ctx, w, root, treeVisitor{paths: w.paths})
}

// ListRecords walks root into a flat record list in traversal order. Records
// carry content and have Path equal to Slug.
func (w *Walker) ListRecords(ctx context.Context, root string) ([]*trees.FileRecord, error) {
	return Walk[*trees.FileRecord](ctx, w, root, recordVisitor{paths: w.paths})
}

type treeVisitor struct {
	paths *common.PathUtils
}

func (tv treeVisitor) VisitFile(e Entry) (*trees.FileNode, bool, error) {
	mod := e.Info.ModTime()
	return &trees.FileNode{
		Name:         e.Name,
		Path:         tv.paths.StripExtension(e.RelPath),
		Type:         trees.File,
		LastModified: &mod,
	}, true, nil
}

func (tv treeVisitor) VisitDirectory(e Entry, children []*trees.FileNode) []*trees.FileNode {
	return []*trees.FileNode{{
		Name:     e.Name,
		Path:     e.RelPath,
		Type:     trees.Directory,
		Children: children,
	}}
}

type recordVisitor struct {
	paths *common.PathUtils
}

func (rv recordVisitor) VisitFile(e Entry) (*trees.FileRecord, bool, error) {
	data, err := os.ReadFile(e.AbsPath)
	if err != nil {
		return nil, false, common.WrapError(err, "failed to read %s", e.AbsPath)
	}
	return newRecord(e, string(data), rv.paths), true, nil
}

// Flat mode splices children into the parent.
func (rv recordVisitor) VisitDirectory(_ Entry, children []*trees.FileRecord) []*trees.FileRecord {
	return children
}

func newRecord(e Entry, content string, paths *common.PathUtils) *trees.FileRecord {
	slug := paths.StripExtension(e.RelPath)
	return &trees.FileRecord{
		Slug:         slug,
		Path:         slug,
		Title:        DeriveTitle(content, e.Name, paths.Extensions()),
		Content:      content,
		LastModified: e.Info.ModTime(),
		FileName:     e.Name,
		Size:         e.Info.Size(),
	}
}
