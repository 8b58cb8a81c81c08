package api

import "github.com/ZanzyTHEbar/mymemory/mmfs/trees"

// ErrorResponse is returned on API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// TreeResponse wraps a node forest: the combined tree or one subtree.
type TreeResponse struct {
	Nodes   []*trees.FileNode `json:"nodes"`
	Count   int               `json:"count"`
	Metrics trees.TreeMetrics `json:"metrics"`
}

// FilesResponse lists records without their content.
type FilesResponse struct {
	Files []*trees.FileRecord `json:"files"`
	Count int                 `json:"count"`
}
