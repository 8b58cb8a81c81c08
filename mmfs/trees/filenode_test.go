package trees

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []*FileNode {
	mod := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return []*FileNode{
		{
			Name: "notes", Path: "notes", Type: Directory,
			Children: []*FileNode{
				{Name: "welcome.md", Path: "notes/welcome", Type: File, LastModified: &mod},
				{
					Name: "deep", Path: "notes/deep", Type: Directory,
					Children: []*FileNode{
						{Name: "x.txt", Path: "notes/deep/x", Type: File, LastModified: &mod},
					},
				},
			},
		},
		{Name: "overview.md", Path: "overview", Type: File, LastModified: &mod},
	}
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "directory", Directory.String())
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "unknown", NodeType(7).String())
	assert.Equal(t, File, StringToNodeType("file"))
	assert.Equal(t, NodeType(-1), StringToNodeType("symlink"))
}

func TestFileNodeJSON(t *testing.T) {
	forest := sampleForest()

	data, err := json.Marshal(forest[1])
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"overview.md","path":"overview","type":"file","lastModified":"2024-01-02T03:04:05Z"}`,
		string(data))

	data, err = json.Marshal(&FileNode{Name: "Content", Path: "content", Type: Directory, Source: SourceContent})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Content","path":"content","type":"directory","source":"content"}`, string(data))

	var decoded FileNode
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","path":"a","type":"directory"}`), &decoded))
	assert.True(t, decoded.IsDirectory())

	assert.Error(t, json.Unmarshal([]byte(`{"type":"socket"}`), &decoded))
}

func TestFindByPath(t *testing.T) {
	forest := sampleForest()

	node := FindByPath(forest, "notes/deep/x")
	require.NotNil(t, node)
	assert.Equal(t, "x.txt", node.Name)

	assert.Equal(t, "notes", FindByPath(forest, "/notes/").Name)
	assert.Equal(t, "overview.md", FindByPath(forest, "overview").Name)
	assert.Nil(t, FindByPath(forest, "notes/missing"))
	assert.Nil(t, FindByPath(forest, "note"))
	assert.Nil(t, FindByPath(nil, "anything"))
}

func TestCountAndWalk(t *testing.T) {
	forest := sampleForest()
	assert.Equal(t, 5, CountNodes(forest))

	var visited []string
	Walk(forest, 0, func(node *FileNode, depth int) bool {
		visited = append(visited, node.Path)
		return node.Name != "deep"
	})
	assert.Equal(t, []string{"notes", "notes/welcome", "notes/deep", "overview"}, visited)
}

func TestTagSource(t *testing.T) {
	forest := sampleForest()
	TagSource(forest, SourceAgents)

	Walk(forest, 0, func(node *FileNode, _ int) bool {
		assert.Equal(t, SourceAgents, node.Source)
		return true
	})
	assert.Equal(t, "agents/notes", forest[0].Path)
	assert.Equal(t, "agents/notes/deep/x", forest[0].Children[1].Children[0].Path)
	assert.Equal(t, "agents/overview", forest[1].Path)
	assert.Equal(t, "x.txt", forest[0].Children[1].Children[0].Name)
}

func TestComputeTreeMetrics(t *testing.T) {
	forest := sampleForest()
	TagSource(forest, SourceContent)

	metrics := ComputeTreeMetrics(forest)
	assert.Equal(t, 5, metrics.TotalNodes)
	assert.Equal(t, 3, metrics.Files)
	assert.Equal(t, 2, metrics.Directories)
	assert.Equal(t, 2, metrics.MaxDepth)
	assert.Equal(t, map[SourceID]int{SourceContent: 3}, metrics.PerSource)

	empty := ComputeTreeMetrics(nil)
	assert.Zero(t, empty.TotalNodes)
	assert.Empty(t, empty.PerSource)
}
