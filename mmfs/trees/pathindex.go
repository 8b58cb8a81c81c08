package trees

import (
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/armon/go-radix"
	"github.com/rs/zerolog"
)

// PathIndexStats tracks usage of a path index
type PathIndexStats struct {
	TotalRecords  int64
	PathLookups   int64
	PrefixLookups int64
	Insertions    int64
}

// PathIndex provides O(k) lookups of records by their logical path using a
// compressed trie (patricia tree), where k is the length of the searched path.
// Several records may share a path when files differ only by extension.
// It is built from one listing and discarded with it.
type PathIndex struct {
	tree   *radix.Tree
	mu     sync.RWMutex // lookups take the write lock to update stats
	stats  PathIndexStats
	logger zerolog.Logger
}

// NewPathIndex creates an empty index
func NewPathIndex(logger zerolog.Logger) *PathIndex {
	return &PathIndex{
		tree:   radix.New(),
		logger: logger,
	}
}

// BuildPathIndex indexes every record by its Path.
func BuildPathIndex(records []*FileRecord, logger zerolog.Logger) (*PathIndex, error) {
	idx := NewPathIndex(logger)
	for _, rec := range records {
		if err := idx.Insert(rec); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Insert adds a record under its normalized Path. Records sharing a path are
// kept in insertion order.
func (idx *PathIndex) Insert(rec *FileRecord) error {
	if rec == nil {
		return fmt.Errorf("invalid input: record cannot be nil")
	}
	key := normalizeIndexPath(rec.Path)
	if key == "" {
		return fmt.Errorf("invalid input: record path cannot be empty")
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	var bucket []*FileRecord
	if existing, ok := idx.tree.Get(key); ok {
		bucket = existing.([]*FileRecord)
	}
	idx.tree.Insert(key, append(bucket, rec))
	idx.stats.TotalRecords++
	idx.stats.Insertions++

	return nil
}

// Lookup finds the records stored under exactly p
func (idx *PathIndex) Lookup(p string) ([]*FileRecord, bool) {
	key := normalizeIndexPath(p)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.stats.PathLookups++

	value, found := idx.tree.Get(key)
	if !found {
		idx.logger.Debug().Str("path", key).Msg("path lookup miss")
		return nil, false
	}
	return value.([]*FileRecord), true
}

// PrefixLookup returns every record whose path starts with prefix, in key
// order. The match is on raw characters: "notes" also matches "notes2/x".
func (idx *PathIndex) PrefixLookup(prefix string) []*FileRecord {
	key := normalizeIndexPath(prefix)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.stats.PrefixLookups++

	var results []*FileRecord
	idx.tree.WalkPrefix(key, func(_ string, value interface{}) bool {
		if bucket, ok := value.([]*FileRecord); ok {
			results = append(results, bucket...)
		}
		return false
	})

	idx.logger.Debug().
		Str("prefix", key).
		Int("results_count", len(results)).
		Msg("prefix lookup completed")

	return results
}

// FolderLookup returns the records at or below folder, treating it as a
// whole path: "content/notes" matches "content/notes/a" but not
// "content/notes2/a". An empty folder returns everything.
func (idx *PathIndex) FolderLookup(folder string) []*FileRecord {
	key := strings.TrimSuffix(normalizeIndexPath(folder), "/")
	if key == "" {
		return idx.PrefixLookup("")
	}

	results, _ := idx.Lookup(key)
	return append(slices.Clone(results), idx.PrefixLookup(key+"/")...)
}

// Size returns the number of indexed records
func (idx *PathIndex) Size() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.stats.TotalRecords
}

// GetStats returns a copy of the current statistics
func (idx *PathIndex) GetStats() PathIndexStats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.stats
}

// normalizeIndexPath cleans p to the slash form used as index key, without
// leading or trailing slashes.
func normalizeIndexPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.Trim(p, "/") == "" {
		return ""
	}
	trailing := strings.HasSuffix(p, "/")
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if trailing && cleaned != "" {
		cleaned += "/"
	}
	return cleaned
}
