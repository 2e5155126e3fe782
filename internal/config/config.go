// Package config holds the lvbayes CLI defaults, loaded from an optional
// YAML file and overridden by flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbayes/dsep"
	"github.com/katalvlaran/lvbayes/elimination"
	"github.com/katalvlaran/lvbayes/internal/ctxlog"
)

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the CLI configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Inference InferenceConfig `yaml:"inference"`
	Sampling  SamplingConfig  `yaml:"sampling"`
}

// LogConfig selects the stderr handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// InferenceConfig holds exact-inference and graph-query defaults.
type InferenceConfig struct {
	Heuristic    string `yaml:"heuristic"`     // min-fill | min-degree
	Shrinking    bool   `yaml:"shrinking"`     // textbook min-fill variant
	ColliderRule string `yaml:"collider_rule"` // direct-parents | ancestors
}

// SamplingConfig holds approximate-inference defaults.
type SamplingConfig struct {
	Seed     int64  `yaml:"seed"`
	Samples  int    `yaml:"samples"`
	BurnIn   int    `yaml:"burn_in"`
	Thinning int    `yaml:"thinning"`
	Method   string `yaml:"method"` // forward | rejection | gibbs
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Inference: InferenceConfig{
			Heuristic:    elimination.MinFill.String(),
			ColliderRule: dsep.DirectParents.String(),
		},
		Sampling: SamplingConfig{
			Seed:     1,
			Samples:  10000,
			BurnIn:   100,
			Thinning: 1,
			Method:   "gibbs",
		},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// yields Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err = Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Decode overlays the YAML document in r onto cfg.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if _, err := ctxlog.New(io.Discard, c.Log.Level, c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := elimination.ParseHeuristic(c.Inference.Heuristic); err != nil {
		errs = append(errs, err)
	}
	if _, err := dsep.ParseColliderRule(c.Inference.ColliderRule); err != nil {
		errs = append(errs, err)
	}
	if c.Sampling.Samples <= 0 {
		errs = append(errs, fmt.Errorf("sampling.samples must be > 0, got %d", c.Sampling.Samples))
	}
	if c.Sampling.BurnIn < 0 {
		errs = append(errs, fmt.Errorf("sampling.burn_in must be >= 0, got %d", c.Sampling.BurnIn))
	}
	if c.Sampling.Thinning <= 0 {
		errs = append(errs, fmt.Errorf("sampling.thinning must be > 0, got %d", c.Sampling.Thinning))
	}
	switch c.Sampling.Method {
	case "forward", "rejection", "gibbs":
	default:
		errs = append(errs, fmt.Errorf("sampling.method must be forward, rejection or gibbs, got %q", c.Sampling.Method))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Heuristic returns the parsed elimination heuristic.
func (c Config) Heuristic() (elimination.Heuristic, error) {
	return elimination.ParseHeuristic(c.Inference.Heuristic)
}

// ColliderRule returns the parsed collider rule.
func (c Config) ColliderRule() (dsep.ColliderRule, error) {
	return dsep.ParseColliderRule(c.Inference.ColliderRule)
}
