// Package config defines configuration settings for utf8slice and functions for loading them from a file.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	// Newline controls whether a newline is printed after each result.
	// When unset, one is printed only if standard output is a terminal.
	Newline *bool
	Inspect InspectConfig
	Log     LogConfig
}

type InspectConfig struct {
	Header bool // Print a column header above the boundary table
}

type LogConfig struct {
	Level string // One of the zap level names: debug, info, warn, error
	File  string // If set, logs are also written to this file, with rotation
}

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	return &Config{
		Inspect: InspectConfig{Header: true},
		Log:     LogConfig{Level: "info"},
	}
}

// DefaultPath returns the location of the user's configuration file: utf8slice/config.toml
// inside the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "utf8slice", "config.toml"), nil
}

// Load reads the configuration file at path, or at DefaultPath if path is empty.
// It always returns a usable *Config, even if it also returns a non-nil error; settings
// missing from the file keep their default values.
// If the file doesn't exist, errors.Cause(err) satisfies os.IsNotExist.
func Load(path string) (c *Config, err error) {
	defer func() {
		if err != nil {
			err = errors.WithMessage(err, "error loading config file")
		}
	}()
	c = Default()
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return c, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()
	if _, err = toml.DecodeReader(f, c); err != nil {
		// A partially decoded file is worse than none.
		return Default(), err
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return c, nil
}

// Encode writes c to w in TOML format, in the same form that Load reads.
func (c *Config) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "error encoding config")
}
