package filesystem

import (
	"slices"

	"github.com/ZanzyTHEbar/mymemory/mmfs/config"
	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/options"
	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
	"github.com/rs/zerolog"
)

// FileSystem merges the configured source roots into one read-only virtual
// namespace. It holds no state besides its configuration: every call reads
// the disk again.
type FileSystem struct {
	sources Sources
	opts    options.TraversalOptions
	walker  *Walker
	logger  zerolog.Logger
}

// Option configures a FileSystem
type Option func(*FileSystem)

// WithLogger sets the logger used for walk and resolve diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(fs *FileSystem) {
		fs.logger = logger
	}
}

// WithTraversalOptions replaces the traversal options
func WithTraversalOptions(opts options.TraversalOptions) Option {
	return func(fs *FileSystem) {
		fs.opts = opts
	}
}

// WithWorkerCount bounds how many sources are walked concurrently
func WithWorkerCount(n int) Option {
	return func(fs *FileSystem) {
		fs.opts.WorkerCount = n
	}
}

// New creates a FileSystem over sources. The first source is the default
// one for paths without a source prefix.
func New(sources Sources, opts ...Option) (*FileSystem, error) {
	if err := sources.Validate(); err != nil {
		return nil, err
	}

	fs := &FileSystem{
		sources: slices.Clone(sources),
		opts:    options.DefaultTraversalOptions(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(fs)
	}
	fs.opts = fs.opts.Normalize()
	fs.walker = NewWalker(fs.opts, fs.logger)

	fs.logger.Debug().
		Int("sources", len(fs.sources)).
		Strs("extensions", fs.walker.Paths().Extensions()).
		Bool("include_hidden", fs.opts.IncludeHidden).
		Msg("Filesystem initialized")

	return fs, nil
}

// NewFromConfig creates a FileSystem from the memory section of cfg
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) (*FileSystem, error) {
	mc := cfg.Memory
	return New(SourcesFromConfig(mc.SourceList()),
		WithLogger(logger),
		WithTraversalOptions(options.TraversalOptions{
			Extensions:    mc.Extensions,
			IncludeHidden: mc.IncludeHidden,
			IgnoreFile:    mc.IgnoreFile,
			WorkerCount:   mc.WalkWorkers,
		}),
	)
}

// SourcesFromConfig converts configured sources, keeping their order
func SourcesFromConfig(list []config.SourceConfig) Sources {
	sources := make(Sources, 0, len(list))
	for _, sc := range list {
		sources = append(sources, Source{
			ID:    trees.SourceID(sc.Name),
			Label: sc.Label,
			Root:  sc.Dir,
		})
	}
	return sources
}

// Sources returns a copy of the configured sources
func (fs *FileSystem) Sources() Sources {
	return slices.Clone(fs.sources)
}

// Options returns the effective traversal options
func (fs *FileSystem) Options() options.TraversalOptions {
	return fs.opts
}
