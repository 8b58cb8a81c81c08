package main

import (
	internal "github.com/ZanzyTHEbar/mymemory/mmfs"
	"github.com/ZanzyTHEbar/mymemory/mmfs/config"
	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries global flags and the state loaded from them
type app struct {
	cfgFile    string
	logLevel   string
	contentDir string
	agentsDir  string

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   internal.DefaultAppCMDShortCut,
		Short: "Browse a personal knowledge base of markdown, text and code files",
		Long: TitleStyle.Render(internal.DefaultAppName) + `

Merges the content and agents directories into one tree, lists documents
by recency, resolves logical paths such as "agents/skills/config" to files,
and serves all of it over a JSON API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default searches ., .., etc/mymemory and ~/.config/mymemory)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.contentDir, "content-dir", "", "content source directory")
	flags.StringVar(&a.agentsDir, "agents-dir", "", "agents source directory")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newTreeCmd(a))
	root.AddCommand(newRecentCmd(a))
	root.AddCommand(newShowCmd(a))

	return root
}

// load reads configuration and applies flag overrides
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.contentDir != "" {
		cfg.Memory.ContentDir = a.contentDir
		overrideSourceDir(cfg, "content", a.contentDir)
	}
	if a.agentsDir != "" {
		cfg.Memory.AgentsDir = a.agentsDir
		overrideSourceDir(cfg, "agents", a.agentsDir)
	}

	a.cfg = cfg
	a.logger = internal.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.logger.Debug().Str("config", a.cfgFile).Msg("Configuration loaded")
	return nil
}

// overrideSourceDir points an explicitly configured source at dir
func overrideSourceDir(cfg *config.Config, name, dir string) {
	for i := range cfg.Memory.Sources {
		if cfg.Memory.Sources[i].Name == name {
			cfg.Memory.Sources[i].Dir = dir
		}
	}
}

func (a *app) fileSystem() (*filesystem.FileSystem, error) {
	return filesystem.NewFromConfig(a.cfg, a.logger)
}
