// Package config builds a sink graph from a YAML description.
//
//	label: api
//	level: debug
//	metadata:
//	  service: billing
//	sinks:
//	  - type: console
//	    color: auto
//	  - type: file
//	    label: main
//	    path: ${LOG_DIR}/api.log
//	    format: json
//	    sync: true
//
// Paths are expanded against the environment. LOGSINK_LEVEL overrides the
// level and LOGSINK_FILE the path of the first file sink (adding one when
// there is none). LoadEnv loads .env files before those are read.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler/consolehandler"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvLevel = "LOGSINK_LEVEL"
	EnvFile  = "LOGSINK_FILE"
)

// Sink types.
const (
	TypeConsole = "console"
	TypeFile    = "file"
)

// Formats.
const (
	FormatLine = "line"
	FormatJSON = "json"
)

// Config describes the composite handler and its members.
type Config struct {
	Label    string            `yaml:"label"`
	Level    string            `yaml:"level"`
	Metadata map[string]string `yaml:"metadata"`
	Sinks    []SinkConfig      `yaml:"sinks"`
}

// SinkConfig describes one sink.
type SinkConfig struct {
	Type   string `yaml:"type"`
	Label  string `yaml:"label"`
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	// Caller adds [file:line] to line output
	Caller bool `yaml:"caller"`
	// Sync fsyncs file sinks after every line
	Sync bool `yaml:"sync"`
	// Color is auto, always or never; console only
	Color string `yaml:"color"`
	// Stream is stdout or stderr; console only
	Stream string `yaml:"stream"`
}

// Default returns a configuration with a single console sink at info.
func Default() *Config {
	return &Config{
		Level: "info",
		Sinks: []SinkConfig{{Type: TypeConsole}},
	}
}

// LoadEnv loads the given .env files (".env" when none are named) into
// the process environment. Missing files are ignored; variables already
// set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file %q: %w", f, err)
		}
	}
	return nil
}

// Load reads a YAML file, applies environment overrides and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, applies environment overrides and validates the
// result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv applies LOGSINK_LEVEL and LOGSINK_FILE and expands environment
// references in sink paths.
func (c *Config) ApplyEnv() {
	if lvl, ok := os.LookupEnv(EnvLevel); ok && lvl != "" {
		c.Level = lvl
	}

	if path, ok := os.LookupEnv(EnvFile); ok && path != "" {
		found := false
		for i := range c.Sinks {
			if c.Sinks[i].Type == TypeFile {
				c.Sinks[i].Path = path
				found = true
				break
			}
		}
		if !found {
			c.Sinks = append(c.Sinks, SinkConfig{Type: TypeFile, Path: path})
		}
	}

	for i := range c.Sinks {
		c.Sinks[i].Path = os.ExpandEnv(c.Sinks[i].Path)
	}
}

// Validate checks the configuration and normalizes type and format names.
func (c *Config) Validate() error {
	if c.Level != "" {
		if _, err := core.ParseLevel(c.Level); err != nil {
			return err
		}
	}

	var errs []error
	for i := range c.Sinks {
		s := &c.Sinks[i]
		s.Type = strings.ToLower(strings.TrimSpace(s.Type))
		s.Format = strings.ToLower(strings.TrimSpace(s.Format))

		switch s.Type {
		case TypeFile:
			if s.Path == "" {
				errs = append(errs, fmt.Errorf("sink %d: file sink needs a path", i))
			}
		case TypeConsole:
			if _, err := consolehandler.ParseColorMode(s.Color); err != nil {
				errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
			}
			switch s.Stream {
			case "", "stdout", "stderr":
			default:
				errs = append(errs, fmt.Errorf("sink %d: unknown stream %q", i, s.Stream))
			}
		default:
			errs = append(errs, fmt.Errorf("sink %d: unknown type %q", i, s.Type))
		}

		switch s.Format {
		case "", FormatLine, FormatJSON:
		default:
			errs = append(errs, fmt.Errorf("sink %d: unknown format %q", i, s.Format))
		}
	}
	return multierr.Combine(errs...)
}
