package trees

import (
	"encoding/json"
	"fmt"
	"time"
)

// NodeType distinguishes directory and file nodes
type NodeType int

const (
	Directory NodeType = iota
	File
)

// Convert NodeType to String
func (n NodeType) String() string {
	switch n {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Map string to NodeType
func StringToNodeType(s string) NodeType {
	switch s {
	case "directory":
		return Directory
	case "file":
		return File
	default:
		return -1
	}
}

func (n NodeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *NodeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := StringToNodeType(s)
	if parsed != Directory && parsed != File {
		return fmt.Errorf("invalid node type: %q", s)
	}
	*n = parsed
	return nil
}

// SourceID names one configured source root ("content", "agents", ...)
type SourceID string

// Well known sources
const (
	SourceContent SourceID = "content"
	SourceAgents  SourceID = "agents"
)

// FileNode is one entry of the navigation tree.
//
// A directory's Path is the slash-joined chain of names down to and including
// itself. A file's Path has its extension stripped while Name keeps it.
// Directories without any visible descendant are never emitted.
type FileNode struct {
	Name         string      `json:"name"`
	Path         string      `json:"path"`
	Type         NodeType    `json:"type"`
	Children     []*FileNode `json:"children,omitempty"`
	LastModified *time.Time  `json:"lastModified,omitempty"`
	Source       SourceID    `json:"source,omitempty"`
}

// IsDirectory reports whether the node is a directory or group node
func (n *FileNode) IsDirectory() bool {
	return n.Type == Directory
}

// FileRecord is the flat form of a document: its content plus derived
// metadata. Slug is relative to the source root without extension; Path is
// "source/slug" in aggregated listings or the requested path when resolved.
type FileRecord struct {
	Slug         string    `json:"slug"`
	Path         string    `json:"path"`
	Title        string    `json:"title"`
	Content      string    `json:"content,omitempty"`
	LastModified time.Time `json:"lastModified"`
	Source       SourceID  `json:"source"`
	FileName     string    `json:"fileName,omitempty"`
	Size         int64     `json:"size"`
}
