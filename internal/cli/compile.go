package cli

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/bedc/internal/app"
	"github.com/specialistvlad/bedc/internal/config"
	"github.com/spf13/cobra"
)

type compileFlags struct {
	output      string
	verbose     bool
	strict      bool
	strictUnits bool
	maxSize     int
	diagnostics string
	configPath  string
	logLevel    string
	logFormat   string
}

func newCompileCommand(loader config.Loader) *cobra.Command {
	f := &compileFlags{}
	cmd := &cobra.Command{
		Use:   "compile <input-file>",
		Short: "Compile a .bed file and print its hash",
		Long: `Compile a .bed file into a canonical JSON artifact.

The artifact is written next to the input with a .json extension unless
-o is given; "-o -" writes it to stdout. On success the content hash is
printed. Diagnostics go to stderr.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, loader, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", `artifact path ("-" for stdout)`)
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "print a one-line summary after the hash")
	fl.BoolVar(&f.strict, "strict", false, "treat unknown sections and properties as errors")
	fl.BoolVar(&f.strictUnits, "strict-units", false, "treat unknown or mismatched units as errors")
	fl.IntVar(&f.maxSize, "max-size", config.DefaultMaxSourceBytes, "reject sources larger than this many bytes (0 disables)")
	fl.StringVar(&f.diagnostics, "diagnostics", "text", "diagnostic format: text, pretty or json")
	fl.StringVar(&f.configPath, "config", "", "path to a bedc.toml or bedc.hcl settings file")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	return cmd
}

func runCompile(cmd *cobra.Command, loader config.Loader, f *compileFlags, input string) error {
	ctx := cmd.Context()

	settings, err := loader.Load(ctx, f.configPath)
	if err != nil {
		return usageError(err)
	}

	cfg := app.FromSettings(settings)
	cfg.InputPath = input
	cfg.OutputPath = f.output
	cfg.Verbose = f.verbose
	applyFlagOverrides(cmd, f, &cfg)

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return usageError(err)
	}

	bedc := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), appConfig)
	if err := bedc.Run(ctx); err != nil {
		if errors.Is(err, app.ErrCompilationFailed) {
			// Diagnostics are already on stderr.
			return &ExitError{Code: ExitFailure}
		}
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("bedc: %v", err)}
	}
	return nil
}

// applyFlagOverrides copies only the flags the user actually set, so values
// from the settings file survive flag defaults.
func applyFlagOverrides(cmd *cobra.Command, f *compileFlags, cfg *app.Config) {
	changed := cmd.Flags().Changed
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("strict-units") {
		cfg.StrictUnits = f.strictUnits
	}
	if changed("max-size") {
		cfg.MaxSourceBytes = f.maxSize
	}
	if changed("diagnostics") {
		cfg.DiagnosticsFormat = f.diagnostics
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
}
