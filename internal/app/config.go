package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/bedc/internal/config"
)

// StdoutPath selects standard output as the artifact destination.
const StdoutPath = "-"

var (
	// ErrMissingInput is returned when no source file is given.
	ErrMissingInput = errors.New("an input file is required")
	// ErrInvalidConfig is wrapped by every other NewConfig failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // .bed source
	OutputPath string // artifact destination, StdoutPath, or empty for <input>.json
	Verbose    bool

	Strict         bool
	StrictUnits    bool
	MaxSourceBytes int

	DiagnosticsFormat string
	LogFormat         string
	LogLevel          string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, ErrMissingInput
	}
	if cfg.MaxSourceBytes < 0 {
		return nil, fmt.Errorf("%w: max source bytes must not be negative, got %d", ErrInvalidConfig, cfg.MaxSourceBytes)
	}
	if cfg.DiagnosticsFormat == "" {
		cfg.DiagnosticsFormat = "text"
	}
	if !slices.Contains(config.DiagnosticFormats, cfg.DiagnosticsFormat) {
		return nil, fmt.Errorf("%w: diagnostics format must be one of %q, got %q", ErrInvalidConfig, config.DiagnosticFormats, cfg.DiagnosticsFormat)
	}
	if cfg.LogFormat != "" && !slices.Contains(config.LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("%w: log format must be one of %q, got %q", ErrInvalidConfig, config.LogFormats, cfg.LogFormat)
	}
	if cfg.LogLevel != "" && !slices.Contains(config.LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("%w: log level must be one of %q, got %q", ErrInvalidConfig, config.LogLevels, cfg.LogLevel)
	}
	return &cfg, nil
}

// FromSettings seeds a Config from loaded settings. Flag values are applied
// on top by the caller.
func FromSettings(s *config.Settings) Config {
	return Config{
		Strict:            s.Compiler.Strict,
		StrictUnits:       s.Compiler.StrictUnits,
		MaxSourceBytes:    s.Compiler.MaxSourceBytes,
		DiagnosticsFormat: s.Diagnostics.Format,
		LogFormat:         s.Log.Format,
		LogLevel:          s.Log.Level,
	}
}
