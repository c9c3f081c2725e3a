// Package config loads server settings from a TOML file and the environment.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/sunfmin/mcp-go-arith/pkg/arith"
	"github.com/sunfmin/mcp-go-arith/pkg/logger"
)

// DefaultName is the MCP server name used when the config leaves it empty.
const DefaultName = "Go Arithmetic MCP"

// Config is the on-disk configuration.
type Config struct {
	Name     string    `toml:"name"`
	Overflow string    `toml:"overflow"`
	Log      LogConfig `toml:"log"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Name:     DefaultName,
		Overflow: string(arith.PolicyWrap),
	}
}

// Load reads path, applies environment overrides and validates the result.
// A missing file is not an error; defaults are used instead.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, errors.Wrapf(err, "read config %s", path)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if logger.DebugFromEnv() {
		cfg.Log.Debug = true
	}
	if v := os.Getenv("MCP_ARITH_OVERFLOW"); v != "" {
		cfg.Overflow = v
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}

	if _, err := cfg.Policy(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Policy returns the parsed overflow policy.
func (c Config) Policy() (arith.OverflowPolicy, error) {
	return arith.ParsePolicy(c.Overflow)
}

// Logger returns the logger settings for this config.
func (c Config) Logger() logger.Config {
	return logger.Config{Debug: c.Log.Debug, File: c.Log.File}
}

// Save writes c to path as TOML.
func Save(path string, c Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}
