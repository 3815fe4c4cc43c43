// Package config handles ytscribe configuration loading.
package config

//go:generate go run ../tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure for ytscribe. Every
// field has a working default; a config file only overrides what it names,
// and command-line flags override the file.
type Config struct {
	// OutputDir is where transcript files are written. Defaults to the
	// current directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	// IntervalSeconds is the normalization bucket width. Must be positive.
	IntervalSeconds int `yaml:"interval_seconds,omitempty"`

	// Language is the preferred caption language code (e.g. "en"). When
	// empty, or when no track matches, the first listed track is used.
	Language string `yaml:"language,omitempty"`

	// Formats lists the output formats to write: "txt", "srt", "vtt".
	// Defaults to ["txt"]. Normalization applies to txt only; srt and vtt
	// keep the raw cues since they carry durations.
	Formats []string `yaml:"formats,omitempty"`

	// UserAgent overrides the User-Agent header on fetches.
	UserAgent string `yaml:"user_agent,omitempty"`

	// TimeoutSeconds bounds each network fetch. Defaults to 20.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// IndexDB is the path of the sqlite download index. Defaults to
	// ~/.config/ytscribe/index.db. Set to "-" to disable indexing.
	IndexDB string `yaml:"index_db,omitempty"`

	// LogLevel controls logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:       ".",
		IntervalSeconds: 6,
		Formats:         []string{"txt"},
		TimeoutSeconds:  20,
		IndexDB:         defaultIndexPath(),
		LogLevel:        "info",
	}
}

func defaultIndexPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "index.db"
	}
	return filepath.Join(home, ".config", "ytscribe", "index.db")
}

// SearchPaths returns the config file search order: ./ytscribe.yaml, then
// ~/.config/ytscribe/config.yaml.
func SearchPaths() []string {
	paths := []string{"ytscribe.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ytscribe", "config.yaml"))
	}
	return paths
}

// Load reads configuration. If explicit is non-empty, that file must
// exist and parse. Otherwise the search paths are tried in order and the
// first existing file is used; when none exists, defaults are returned.
func Load(explicit string) (Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.IntervalSeconds <= 0 {
		return cfg, fmt.Errorf("config %s: interval_seconds must be positive, got %d", path, cfg.IntervalSeconds)
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"txt"}
	}
	return cfg, nil
}
