package trees

// TreeMetrics summarizes a node forest
type TreeMetrics struct {
	TotalNodes  int              `json:"totalNodes"`
	Files       int              `json:"files"`
	Directories int              `json:"directories"`
	MaxDepth    int              `json:"maxDepth"`
	PerSource   map[SourceID]int `json:"perSource,omitempty"` // files per source
}

// ComputeTreeMetrics walks nodes once and counts them. Depth is zero for
// the top-level nodes; group nodes count as directories.
func ComputeTreeMetrics(nodes []*FileNode) TreeMetrics {
	metrics := TreeMetrics{PerSource: make(map[SourceID]int)}

	Walk(nodes, 0, func(node *FileNode, depth int) bool {
		metrics.TotalNodes++
		if depth > metrics.MaxDepth {
			metrics.MaxDepth = depth
		}
		if node.IsDirectory() {
			metrics.Directories++
			return true
		}
		metrics.Files++
		if node.Source != "" {
			metrics.PerSource[node.Source]++
		}
		return true
	})

	return metrics
}
