package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/mymemory/mmfs"
	"github.com/ZanzyTHEbar/mymemory/mmfs/filesystem/common"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Memory MemoryConfig `mapstructure:"memory"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// MemoryConfig describes the source roots and how they are walked.
type MemoryConfig struct {
	ContentDir    string         `mapstructure:"contentDir"`
	AgentsDir     string         `mapstructure:"agentsDir"`
	Sources       []SourceConfig `mapstructure:"sources"`
	Extensions    []string       `mapstructure:"extensions"`
	IgnoreFile    string         `mapstructure:"ignoreFile"`
	IncludeHidden bool           `mapstructure:"includeHidden"`
	WalkWorkers   int            `mapstructure:"walkWorkers"`
}

// SourceConfig is one explicitly configured source root.
type SourceConfig struct {
	Name  string `mapstructure:"name"`
	Label string `mapstructure:"label"`
	Dir   string `mapstructure:"dir"`
}

// ServerConfig stores the HTTP listener settings.
type ServerConfig struct {
	ListenAddr  string `mapstructure:"listenAddr"`
	MetricsAddr string `mapstructure:"metricsAddr"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SourceList returns the configured sources in order. Without an explicit
// list the content and agents directories are used, content first.
func (mc MemoryConfig) SourceList() []SourceConfig {
	if len(mc.Sources) > 0 {
		return mc.Sources
	}
	return []SourceConfig{
		{Name: "content", Label: "Content", Dir: mc.ContentDir},
		{Name: "agents", Label: "Agents", Dir: mc.AgentsDir},
	}
}

// LoadConfig reads configuration from file or environment variables.
// An empty configPath searches the usual locations and tolerates a missing
// file; an explicit path must exist.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("memory.contentDir", internal.DefaultContentDir)
	v.SetDefault("memory.agentsDir", internal.DefaultAgentsDir)
	v.SetDefault("memory.extensions", common.DefaultExtensions)
	v.SetDefault("memory.ignoreFile", internal.DefaultIgnoreFile)
	v.SetDefault("memory.includeHidden", true)
	v.SetDefault("memory.walkWorkers", 0)
	v.SetDefault("server.listenAddr", internal.DefaultListenAddr)
	v.SetDefault("server.metricsAddr", internal.DefaultMetricsAddr)
	v.SetDefault("log.level", internal.DefaultLogLevel)
	v.SetDefault("log.format", internal.DefaultLogFormat)

	// memory.contentDir becomes MYMEMORY_MEMORY_CONTENTDIR
	v.SetEnvPrefix(internal.DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}
