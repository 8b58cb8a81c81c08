package filesystem

import (
	"context"
	"slices"
	"time"

	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
	"github.com/ZanzyTHEbar/mymemory/mmfs/metrics"
	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
	"github.com/sourcegraph/conc/iter"
)

// BuildCombinedTree walks every source and wraps each non-empty result in a
// group node named after the source label. Node paths carry the source
// prefix, so "content/notes/welcome" sits under the "content" group. Groups
// follow the configured source order.
func (fs *FileSystem) BuildCombinedTree(ctx context.Context) ([]*trees.FileNode, error) {
	perSource, err := walkSources(ctx, fs, "tree", fs.walker.BuildTree)
	if err != nil {
		return nil, err
	}

	combined := make([]*trees.FileNode, 0, len(fs.sources))
	for i, src := range fs.sources {
		nodes := perSource[i]
		if len(nodes) == 0 {
			continue
		}
		trees.TagSource(nodes, src.ID)
		combined = append(combined, &trees.FileNode{
			Name:     src.label(),
			Path:     string(src.ID),
			Type:     trees.Directory,
			Children: nodes,
			Source:   src.ID,
		})
	}
	return combined, nil
}

// GetAllRecords lists every document of every source, most recently
// modified first. Ties keep source order, then traversal order.
func (fs *FileSystem) GetAllRecords(ctx context.Context) ([]*trees.FileRecord, error) {
	perSource, err := walkSources(ctx, fs, "records", fs.walker.ListRecords)
	if err != nil {
		return nil, err
	}

	var all []*trees.FileRecord
	for i, src := range fs.sources {
		for _, rec := range perSource[i] {
			rec.Source = src.ID
			rec.Path = string(src.ID) + "/" + rec.Slug
			all = append(all, rec)
		}
	}
	if all == nil {
		all = []*trees.FileRecord{}
	}

	sortByRecency(all)
	metrics.SetRecordsListed(len(all))
	return all, nil
}

// RecordsUnder lists the records at or below folder, a source-prefixed path
// such as "content/notes", most recent first. An empty folder lists
// everything.
func (fs *FileSystem) RecordsUnder(ctx context.Context, folder string) ([]*trees.FileRecord, error) {
	all, err := fs.GetAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	if folder == "" {
		return all, nil
	}

	idx, err := trees.BuildPathIndex(all, fs.logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to index records")
	}
	matched := make(map[*trees.FileRecord]struct{})
	for _, rec := range idx.FolderLookup(folder) {
		matched[rec] = struct{}{}
	}

	out := make([]*trees.FileRecord, 0, len(matched))
	for _, rec := range all {
		if _, ok := matched[rec]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// walkSources runs walk once per source on a bounded pool and returns the
// results in source order.
func walkSources[T any](ctx context.Context, fs *FileSystem, mode string, walk func(context.Context, string) ([]T, error)) ([][]T, error) {
	mapper := iter.Mapper[Source, []T]{MaxGoroutines: fs.opts.WorkerCount}
	return mapper.MapErr([]Source(fs.sources), func(src *Source) ([]T, error) {
		start := time.Now()
		items, err := walk(ctx, src.Root)
		metrics.RecordWalk(string(src.ID), mode, len(items), time.Since(start), err)
		if err != nil {
			fs.logger.Error().Err(err).Str("source", string(src.ID)).Str("mode", mode).Msg("Source walk failed")
			return nil, common.WrapError(err, "walk source %s", src.ID)
		}
		fs.logger.Debug().
			Str("source", string(src.ID)).
			Str("mode", mode).
			Int("items", len(items)).
			Dur("took", time.Since(start)).
			Msg("Source walked")
		return items, nil
	})
}

// sortByRecency orders records newest first, keeping the input order of ties
func sortByRecency(records []*trees.FileRecord) {
	slices.SortStableFunc(records, func(a, b *trees.FileRecord) int {
		return b.LastModified.Compare(a.LastModified)
	})
}
