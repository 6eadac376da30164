package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/bedc/internal/compiler"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	compiler *compiler.Compiler
}

// NewApp is the constructor for the main application. Results go to outW;
// logs and diagnostics go to errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	c := compiler.New(
		compiler.WithMaxSourceBytes(cfg.MaxSourceBytes),
		compiler.WithStrict(cfg.Strict),
		compiler.WithStrictUnits(cfg.StrictUnits),
	)
	logger.Debug("Compiler configured.", "strict", cfg.Strict, "strict_units", cfg.StrictUnits, "max_source_bytes", cfg.MaxSourceBytes)

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		config:   cfg,
		compiler: c,
	}
}
