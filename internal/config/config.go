// Package config handles loading and parsing of liumcomp
// configuration files. Configuration is optional: with no file
// present every value falls back to the built-in defaults, which
// match the reserved option names of the lium CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/lium-tools/liumcomp/internal/lerrors"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".liumcomp.yml",
	".liumcomp.yaml",
	".liumcomp.toml",
	".liumcomp.json",
}

// GlobalConfigName is the name of the global config file under
// $XDG_CONFIG_HOME/liumcomp.
const GlobalConfigName = "config.yml"

// FlagSets are the statically configured option classes that drive
// completion dispatch. The three sets are disjoint.
type FlagSets struct {
	// Dir options take a directory path value
	Dir []string `koanf:"dir"`
	// Todo options take a value whose completion is intentionally unsupported
	Todo []string `koanf:"todo"`
	// Dut is the device-selector option
	Dut string `koanf:"dut"`
	// Serial is the servo-selector option
	Serial string `koanf:"serial"`
}

// Config represents a liumcomp configuration
type Config struct {
	Tool      string   `koanf:"tool"`
	TimeoutMs int      `koanf:"timeout_ms"`
	LogLevel  string   `koanf:"log_level"`
	Flags     FlagSets `koanf:"flags"`
}

// Default returns the built-in configuration: the lium tool with its
// reserved option names.
func Default() *Config {
	return &Config{
		Tool:      "lium",
		TimeoutMs: 3000,
		LogLevel:  "warn",
		Flags: FlagSets{
			Dir:    []string{"--repo", "--dir", "--dest"},
			Todo:   []string{"--version", "--board", "--workon", "--packages"},
			Dut:    "--dut",
			Serial: "--serial",
		},
	}
}

// Timeout returns the subprocess timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Loader loads configuration files
type Loader struct{}

// New creates a new config loader
func New() *Loader {
	return &Loader{}
}

// parserFor returns the koanf parser for a config file path based on
// its extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, lerrors.NewConfigurationError(path, "unsupported config format", nil)
	}
}

// Load reads and parses a configuration file. Missing keys keep their
// default values.
func (l *Loader) Load(path string) (*Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, lerrors.NewConfigurationError(path, "failed to load config", err)
	}

	return unmarshal(k, path)
}

// LoadBytes parses configuration from a byte slice. format is a file
// extension such as ".yml".
func (l *Loader) LoadBytes(data []byte, format string) (*Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, lerrors.NewConfigurationError(format, "failed to parse config", err)
	}

	return unmarshal(k, format)
}

func unmarshal(k *koanf.Koanf, path string) (*Config, error) {
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, lerrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	// An explicitly empty list would disable a whole dispatch branch;
	// treat it the same as an absent key
	defaults := Default()
	if len(cfg.Flags.Dir) == 0 {
		cfg.Flags.Dir = defaults.Flags.Dir
	}
	if len(cfg.Flags.Todo) == 0 {
		cfg.Flags.Todo = defaults.Flags.Todo
	}
	if cfg.Flags.Dut == "" {
		cfg.Flags.Dut = defaults.Flags.Dut
	}
	if cfg.Flags.Serial == "" {
		cfg.Flags.Serial = defaults.Flags.Serial
	}
	if cfg.Tool == "" {
		cfg.Tool = defaults.Tool
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = defaults.TimeoutMs
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	return cfg, nil
}

// GlobalConfigPath returns the path of the global config file.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "liumcomp", GlobalConfigName)
}

// Discover returns the config file to use: the first supported name in
// dir, then the global config, then empty (defaults apply).
func Discover(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if global := GlobalConfigPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}

	return ""
}

// Resolve loads the discovered config for dir, falling back to
// defaults when no file exists or the file cannot be parsed.
func Resolve(dir string) (*Config, string) {
	path := Discover(dir)
	if path == "" {
		return Default(), ""
	}

	cfg, err := New().Load(path)
	if err != nil {
		return Default(), ""
	}
	return cfg, path
}
