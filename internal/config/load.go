package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/caarlos0/env/v11"
)

//go:embed schema.cue
var schemaCUE string

// fileConfig mirrors #Config. Absent optional fields stay nil.
type fileConfig struct {
	QueueCapacity   *int    `json:"queue_capacity"`
	ReserveCapacity *int    `json:"reserve_capacity"`
	Kinds           *string `json:"kinds"`
	Seed            *uint64 `json:"seed"`
	Lang            *string `json:"lang"`
	Journal         *string `json:"journal"`
}

// LoadOptions controls where Load reads settings from.
type LoadOptions struct {
	// Path is an optional CUE config file. Empty skips the file layer.
	Path string

	// Environment overrides the process environment (for tests).
	// Nil reads os.Environ.
	Environment map[string]string
}

// Load builds a Config from defaults, the optional file and the environment.
// The result is not validated; flags may still be applied on top.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := applyCUE(&cfg, data, opts.Path); err != nil {
			return cfg, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: opts.Environment}); err != nil {
		return cfg, &ConfigError{Source: "env", Field: "environment", Message: err.Error()}
	}

	return cfg, nil
}

// ParseCUE validates CUE source against the schema and applies it over defaults.
func ParseCUE(data []byte, filename string) (Config, error) {
	cfg := Default()
	err := applyCUE(&cfg, data, filename)
	return cfg, err
}

func applyCUE(cfg *Config, data []byte, filename string) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return &ConfigError{Source: filename, Field: "syntax", Message: err.Error()}
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ConfigError{Source: filename, Field: "schema", Message: err.Error()}
	}

	var fc fileConfig
	if err := unified.Decode(&fc); err != nil {
		return &ConfigError{Source: filename, Field: "decode", Message: err.Error()}
	}

	if fc.QueueCapacity != nil {
		cfg.QueueCapacity = *fc.QueueCapacity
	}
	if fc.ReserveCapacity != nil {
		cfg.ReserveCapacity = *fc.ReserveCapacity
	}
	if fc.Kinds != nil {
		cfg.Kinds = *fc.Kinds
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.Lang != nil {
		cfg.Lang = *fc.Lang
	}
	if fc.Journal != nil {
		cfg.Journal = *fc.Journal
	}
	return nil
}
