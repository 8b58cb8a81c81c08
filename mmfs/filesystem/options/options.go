package options

import (
	"runtime"

	internal "github.com/ZanzyTHEbar/mymemory/mmfs"
	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"
)

// TraversalOptions configures how a source root is walked
type TraversalOptions struct {
	Extensions    []string // Visible extension allow-list, in resolution order
	IncludeHidden bool     // Include dot-prefixed files and directories
	IgnoreFile    string   // Per-source ignore file name (gitignore syntax), "" disables it
	WorkerCount   int      // Number of sources walked concurrently
}

// DefaultTraversalOptions returns the options used when nothing is configured
func DefaultTraversalOptions() TraversalOptions {
	return TraversalOptions{
		Extensions:    append([]string(nil), common.DefaultExtensions...),
		IncludeHidden: true,
		IgnoreFile:    internal.DefaultIgnoreFile,
		WorkerCount:   DefaultWorkerCount(),
	}
}

// DefaultWorkerCount bounds source fan-out to the available CPUs
func DefaultWorkerCount() int {
	return min(max(runtime.NumCPU(), 2), 8)
}

// Normalize fills zero fields with their defaults
func (o TraversalOptions) Normalize() TraversalOptions {
	if len(o.Extensions) == 0 {
		o.Extensions = append([]string(nil), common.DefaultExtensions...)
	}
	if o.WorkerCount <= 0 {
		o.WorkerCount = DefaultWorkerCount()
	}
	return o
}
