// Package config loads pcpsolve settings from a YAML file.
//
// Every field is optional; missing values keep the defaults from Default(),
// which mirror the fixed search policy of package pcp.
//
//	log:
//	  level: debug        # debug | info | warn | error
//	  format: json        # text | json
//	output:
//	  format: text        # text | json
//	batch:
//	  parallel: 4
//	search:
//	  max_depth: 8
//	  max_diff: 50
//	  timeout: 3s
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pcpsearch/pcp"
)

// Sentinel errors returned by Validate.
var (
	ErrBadLogFormat    = errors.New("config: log.format must be text or json")
	ErrBadOutputFormat = errors.New("config: output.format must be text or json")
	ErrBadParallel     = errors.New("config: batch.parallel must be non-negative")
	ErrBadSearchLimit  = errors.New("config: search limits must be non-negative")
	ErrBadTimeout      = errors.New("config: search.timeout is not a valid duration")
)

// Config is the root of the YAML document.
type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
	Batch  Batch  `yaml:"batch"`
	Search Search `yaml:"search"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Output struct {
	Format string `yaml:"format"`
}

type Batch struct {
	// Parallel caps concurrent solves; 0 means one goroutine per instance.
	Parallel int `yaml:"parallel"`
}

// Search overrides the engine bounds. Timeout uses time.ParseDuration
// syntax; "0" disables the budget.
type Search struct {
	MaxDepth int    `yaml:"max_depth"`
	MaxDiff  int    `yaml:"max_diff"`
	Timeout  string `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Output: Output{Format: "text"},
		Batch:  Batch{Parallel: 4},
		Search: Search{
			MaxDepth: pcp.MaxDepth,
			MaxDiff:  pcp.MaxDiff,
			Timeout:  pcp.TimeLimit.String(),
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse decodes data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := base.Validate(); err != nil {
		return Config{}, err
	}

	return base, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return ErrBadLogFormat
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return ErrBadOutputFormat
	}
	if c.Batch.Parallel < 0 {
		return ErrBadParallel
	}
	if c.Search.MaxDepth < 0 || c.Search.MaxDiff < 0 {
		return ErrBadSearchLimit
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	return nil
}

// Timeout parses Search.Timeout.
func (c Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeout, c.Search.Timeout)
	}

	return d, nil
}

// SearchOptions converts the search section into engine options.
// The config must have passed Validate.
func (c Config) SearchOptions() []pcp.Option {
	d, _ := c.Timeout()

	return []pcp.Option{
		pcp.WithMaxDepth(c.Search.MaxDepth),
		pcp.WithMaxDiff(c.Search.MaxDiff),
		pcp.WithTimeLimit(d),
	}
}
