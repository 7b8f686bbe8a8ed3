package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/recview/internal/store"
	"github.com/rshade/recview/internal/store/cache"
)

// Environment variables recognized by Load.
const (
	EnvHome            = "RECVIEW_HOME"
	EnvEndpoint        = "RECVIEW_ENDPOINT"
	EnvLogLevel        = "RECVIEW_LOG_LEVEL"
	EnvLogFormat       = "RECVIEW_LOG_FORMAT"
	EnvCacheTTLSeconds = "RECVIEW_CACHE_TTL_SECONDS"
)

const (
	homeDirName    = ".recview"
	configFileName = "config.yaml"
	cacheDirName   = "cache"
	logFileName    = "recview.log"

	outputTypeFile   = "file"
	outputTypeStderr = "stderr"
)

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full recview configuration.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// ViewerConfig controls what is fetched.
type ViewerConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// CacheConfig controls the response cache. A zero TTL disables it, and so
// does an explicit enabled: false.
type CacheConfig struct {
	Enabled    *bool  `yaml:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	Directory  string `yaml:"directory"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// HomeDir returns $RECVIEW_HOME, or ~/.recview when unset.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// DefaultPath returns the config file location under HomeDir.
func DefaultPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cacheDir := ""
	logFile := ""
	if dir, err := HomeDir(); err == nil {
		cacheDir = filepath.Join(dir, cacheDirName)
		logFile = filepath.Join(dir, logFileName)
	}
	return &Config{
		Viewer: ViewerConfig{Endpoint: store.DefaultEndpoint},
		Cache:  CacheConfig{Directory: cacheDir},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   logFile,
		},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error. A malformed file is returned as an error
// together with the defaults so callers can warn and continue.
func Load(path string) (*Config, error) {
	cfg := Default()

	var fileErr error
	if path != "" {
		fileErr = cfg.mergeFile(path)
	}
	envErr := cfg.ApplyEnv()
	return cfg, errors.Join(fileErr, envErr)
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	overlay := *c
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	*c = overlay
	c.Path = path
	return nil
}

// ApplyEnv overrides fields from RECVIEW_* variables. Invalid numbers are
// reported and leave the field unchanged.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Viewer.Endpoint = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvCacheTTLSeconds); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheTTLSeconds, err)
		}
		c.Cache.TTLSeconds = ttl
	}
	return nil
}

// EffectiveCacheTTL returns the TTL the cache should run with, or 0 when
// caching is off.
func (c *Config) EffectiveCacheTTL() int {
	if c.Cache.TTLSeconds <= 0 || (c.Cache.Enabled != nil && !*c.Cache.Enabled) {
		return 0
	}
	return c.Cache.TTLSeconds
}

// Validate checks the values that cannot be silently defaulted.
func (c *Config) Validate() error {
	if c.Viewer.Endpoint == "" {
		return fmt.Errorf("%w: viewer.endpoint is empty", ErrInvalidConfig)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("%w: cache.ttl_seconds must not be negative", ErrInvalidConfig)
	}
	if err := cache.ValidateTTL(c.EffectiveCacheTTL()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
