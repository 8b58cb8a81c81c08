package filesystem

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
	"github.com/ZanzyTHEbar/mymemory/mmfs/metrics"
	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
)

// Resolve maps a logical path to a document.
//
// A leading "<source>/" selects that source, otherwise the default source is
// used. Supported extensions are tried in order and the first regular file
// wins. When a non-default source has no match, the default source is tried
// with the full, unstripped path. A missing document is reported as ok ==
// false with a nil error; invalid paths are treated the same way.
func (fs *FileSystem) Resolve(ctx context.Context, userPath string) (*trees.FileRecord, bool, error) {
	start := time.Now()
	rec, ok, err := fs.resolve(ctx, userPath)
	metrics.RecordResolve(ok, err, time.Since(start))
	return rec, ok, err
}

func (fs *FileSystem) resolve(ctx context.Context, userPath string) (*trees.FileRecord, bool, error) {
	if err := common.ValidateUserPath(userPath); err != nil {
		fs.logger.Debug().Err(err).Str("path", userPath).Msg("Rejected document path")
		return nil, false, nil
	}

	src, rel := fs.sources.Split(userPath)
	rec, ok, err := fs.resolveIn(ctx, src, rel, userPath)
	if err != nil || ok {
		return rec, ok, err
	}

	def := fs.sources.Default()
	if src.ID == def.ID {
		return nil, false, nil
	}
	return fs.resolveIn(ctx, def, userPath, userPath)
}

// resolveIn scans rel + ext below one source root
func (fs *FileSystem) resolveIn(ctx context.Context, src Source, rel, userPath string) (*trees.FileRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	rel = strings.Join(common.SplitPathSegments(rel), "/")
	if rel == "" {
		return nil, false, nil
	}

	paths := fs.walker.Paths()
	m := loadIgnore(src.Root, fs.opts.IgnoreFile, fs.opts.IncludeHidden, fs.logger)

	for _, candidate := range paths.CandidateNames(rel) {
		if m.excludedChain(candidate) {
			continue
		}

		abs := filepath.Join(src.Root, filepath.FromSlash(candidate))
		info, exists, err := statFollow(abs)
		if err != nil {
			fs.logger.Debug().Err(err).Str("path", abs).Msg("Skipping candidate")
			continue
		}
		if !exists || !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, false, common.WrapError(err, "failed to read %s", abs)
		}

		rec := newRecord(Entry{
			Root:    src.Root,
			AbsPath: abs,
			RelPath: candidate,
			Name:    path.Base(candidate),
			Info:    info,
		}, string(data), paths)
		rec.Path = userPath
		rec.Source = src.ID

		fs.logger.Debug().
			Str("path", userPath).
			Str("source", string(src.ID)).
			Str("file", candidate).
			Msg("Resolved document")
		return rec, true, nil
	}

	return nil, false, nil
}
