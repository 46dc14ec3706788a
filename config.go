package weave

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Backend names a render driver.
type Backend string

const (
	// BackendANSI drives the terminal directly with escape sequences.
	BackendANSI Backend = "ansi"
	// BackendTcell renders through a tcell screen.
	BackendTcell Backend = "tcell"
	// BackendTea renders through a bubbletea program.
	BackendTea Backend = "tea"
)

// Config controls how Run drives the terminal.
type Config struct {
	Backend   Backend   `toml:"backend" yaml:"backend"`
	AltScreen bool      `toml:"alt_screen" yaml:"alt_screen"`
	WrapCache int       `toml:"wrap_cache" yaml:"wrap_cache"`
	Log       LogConfig `toml:"log" yaml:"log"`
}

// LogConfig controls diagnostic logging. With no path nothing is logged,
// so the terminal is never written to by the logger.
type LogConfig struct {
	Path      string `toml:"path" yaml:"path"`
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendANSI,
		AltScreen: true,
		WrapCache: DefaultWrapCacheSize,
	}
}

// LoadConfig reads a .toml, .yaml or .yml file over the defaults. A
// missing file yields the defaults. Environment overrides are applied
// last.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, &Error{Op: "weave.LoadConfig", Kind: KindConfig, Err: err}
		default:
			if err := decodeConfig(path, data, &cfg); err != nil {
				return cfg, &Error{Op: "weave.LoadConfig", Kind: KindConfig, Err: err}
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, &Error{Op: "weave.LoadConfig", Kind: KindConfig, Err: err}
	}
	return cfg, cfg.Validate()
}

func decodeConfig(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return nil
}

// applyEnv reads WEAVE_BACKEND, WEAVE_LOG and WEAVE_LOG_LEVEL.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("WEAVE_BACKEND"); ok && v != "" {
		c.Backend = Backend(strings.ToLower(v))
	}
	if v, ok := lookup("WEAVE_LOG"); ok {
		c.Log.Path = v
	}
	if v, ok := lookup("WEAVE_LOG_LEVEL"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEAVE_LOG_LEVEL: %w", err)
		}
		c.Log.Verbosity = n
	}
	return nil
}

// Validate rejects unknown backends and negative sizes.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell, BackendTea:
	default:
		return &Error{Op: "weave.Config.Validate", Kind: KindConfig, Err: fmt.Errorf("unknown backend %q", c.Backend)}
	}
	if c.WrapCache < 0 {
		return &Error{Op: "weave.Config.Validate", Kind: KindConfig, Err: fmt.Errorf("wrap_cache must not be negative, got %d", c.WrapCache)}
	}
	return nil
}
