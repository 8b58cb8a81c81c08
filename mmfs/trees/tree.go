package trees

import "strings"

// FindByPath resolves a path in a node forest (recursive).
func FindByPath(nodes []*FileNode, path string) *FileNode {
	path = strings.Trim(path, "/")
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.Path == path {
			return node
		}
		if !strings.HasPrefix(path, node.Path+"/") {
			continue
		}
		if found := FindByPath(node.Children, path); found != nil {
			return found
		}
	}
	return nil
}

// CountNodes counts all nodes in a forest, group nodes included.
func CountNodes(nodes []*FileNode) int {
	count := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		count += 1 + CountNodes(node.Children)
	}
	return count
}

// Walk visits every node depth first, parents before children. Returning
// false from fn skips the node's children.
func Walk(nodes []*FileNode, depth int, fn func(node *FileNode, depth int) bool) {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if fn(node, depth) {
			Walk(node.Children, depth+1, fn)
		}
	}
}

// TagSource sets source on every node and prefixes each path with it.
func TagSource(nodes []*FileNode, source SourceID) {
	prefix := string(source) + "/"
	Walk(nodes, 0, func(node *FileNode, _ int) bool {
		node.Source = source
		node.Path = prefix + node.Path
		return true
	})
}
