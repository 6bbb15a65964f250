// Package config loads and validates nextpiece settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. Defaults (queue 5, reserve 3, kinds IOTL, English)
//  2. An optional CUE file, validated against the embedded schema
//  3. NEXTPIECE_* environment variables
//  4. Command-line flags (applied by the cli package)
//
// Capacities are read once when the game is built and never change after.
package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/roach88/nextpiece/internal/piece"
)

// Default values.
const (
	DefaultQueueCapacity   = 5
	DefaultReserveCapacity = 3
	DefaultLang            = "en"
)

// SupportedLangs lists the languages the console has catalogs for.
var SupportedLangs = []language.Tag{language.English, language.BrazilianPortuguese}

// Config holds every tunable setting.
type Config struct {
	QueueCapacity   int    `json:"queue_capacity" env:"NEXTPIECE_QUEUE_CAPACITY"`
	ReserveCapacity int    `json:"reserve_capacity" env:"NEXTPIECE_RESERVE_CAPACITY"`
	Kinds           string `json:"kinds" env:"NEXTPIECE_KINDS"`

	// Seed seeds the random kind picker. Zero means "derive from the clock".
	Seed uint64 `json:"seed" env:"NEXTPIECE_SEED"`

	// Lang selects the console language ("en" or "pt-BR").
	Lang string `json:"lang" env:"NEXTPIECE_LANG"`

	// Journal is an optional SQLite path for the move journal.
	Journal string `json:"journal,omitempty" env:"NEXTPIECE_JOURNAL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		QueueCapacity:   DefaultQueueCapacity,
		ReserveCapacity: DefaultReserveCapacity,
		Kinds:           piece.DefaultAlphabet,
		Lang:            DefaultLang,
	}
}

// Validate checks every field and normalizes Lang to its canonical tag.
func (c *Config) Validate() error {
	if c.QueueCapacity < 1 {
		return &ConfigError{Field: "queue_capacity", Message: fmt.Sprintf("must be at least 1, got %d", c.QueueCapacity)}
	}
	if c.ReserveCapacity < 1 {
		return &ConfigError{Field: "reserve_capacity", Message: fmt.Sprintf("must be at least 1, got %d", c.ReserveCapacity)}
	}
	if _, err := piece.ParseAlphabet(c.Kinds); err != nil {
		return &ConfigError{Field: "kinds", Message: err.Error()}
	}

	tag, err := MatchLang(c.Lang)
	if err != nil {
		return &ConfigError{Field: "lang", Message: err.Error()}
	}
	c.Lang = tag.String()
	return nil
}

// Alphabet returns the parsed piece kinds.
func (c Config) Alphabet() ([]piece.Kind, error) {
	return piece.ParseAlphabet(c.Kinds)
}

// MatchLang resolves a language string to one of SupportedLangs.
// An empty string resolves to English.
func MatchLang(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("unknown language %q: %w", s, err)
	}
	for _, supported := range SupportedLangs {
		if tag == supported {
			return supported, nil
		}
	}
	// Accept a bare "pt" for Brazilian Portuguese.
	base, _ := tag.Base()
	for _, supported := range SupportedLangs {
		sb, _ := supported.Base()
		if sb == base {
			return supported, nil
		}
	}
	return language.Und, fmt.Errorf("unsupported language %q (supported: en, pt-BR)", s)
}

// ConfigError reports an invalid setting.
type ConfigError struct {
	Field   string
	Message string
	Source  string // file path or "env"; empty for merged config
}

func (e *ConfigError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
