package config

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/bedc/internal/compiler"
)

// DefaultMaxSourceBytes is the compiler's default size guard.
const DefaultMaxSourceBytes = compiler.DefaultMaxSourceBytes

var (
	// LogLevels lists the accepted log levels.
	LogLevels = []string{"debug", "info", "warn", "error"}
	// LogFormats lists the accepted log handler formats.
	LogFormats = []string{"text", "json"}
	// DiagnosticFormats lists the accepted diagnostic renderings.
	DiagnosticFormats = []string{"text", "pretty", "json"}
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the full set of preferences a settings file may carry.
type Settings struct {
	Compiler    Compiler    `toml:"compiler"`
	Log         Log         `toml:"log"`
	Diagnostics Diagnostics `toml:"diagnostics"`
}

// Compiler holds the options passed through to the compiler.
type Compiler struct {
	MaxSourceBytes int  `toml:"max_source_bytes" hcl:"max_source_bytes,optional"`
	Strict         bool `toml:"strict" hcl:"strict,optional"`
	StrictUnits    bool `toml:"strict_units" hcl:"strict_units,optional"`
}

// Log configures the process logger.
type Log struct {
	Level  string `toml:"level" hcl:"level,optional"`
	Format string `toml:"format" hcl:"format,optional"`
}

// Diagnostics configures how compiler findings are printed.
type Diagnostics struct {
	Format string `toml:"format" hcl:"format,optional"`
}

// Loader reads settings from a source. Implementations start from Default
// so absent keys keep their default values.
type Loader interface {
	Load(ctx context.Context, path string) (*Settings, error)
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		Compiler:    Compiler{MaxSourceBytes: DefaultMaxSourceBytes},
		Log:         Log{Level: "warn", Format: "text"},
		Diagnostics: Diagnostics{Format: "text"},
	}
}

// Validate checks enumerated values and limits.
func (s *Settings) Validate() error {
	if s.Compiler.MaxSourceBytes < 0 {
		return fmt.Errorf("%w: compiler.max_source_bytes must not be negative, got %d", ErrInvalidSettings, s.Compiler.MaxSourceBytes)
	}
	if err := oneOf("log.level", s.Log.Level, LogLevels); err != nil {
		return err
	}
	if err := oneOf("log.format", s.Log.Format, LogFormats); err != nil {
		return err
	}
	return oneOf("diagnostics.format", s.Diagnostics.Format, DiagnosticFormats)
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%w: %s must be one of %q, got %q", ErrInvalidSettings, key, allowed, value)
}
