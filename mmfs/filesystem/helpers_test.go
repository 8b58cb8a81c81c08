package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// writeFile creates root/rel with content and sets its modification time
func writeFile(t *testing.T, root, rel, content string, mod time.Time) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(p, mod, mod))
	return p
}

func mkdir(t *testing.T, root, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0o755))
}

// newTestFS builds a FileSystem over fresh content and agents roots
func newTestFS(t *testing.T, opts ...Option) (fs *FileSystem, content, agents string) {
	t.Helper()
	base := t.TempDir()
	sources := DefaultSources(base)
	fs, err := New(sources, opts...)
	require.NoError(t, err)
	return fs, sources[0].Root, sources[1].Root
}
