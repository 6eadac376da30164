package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/bedc/internal/compiler"
	"github.com/specialistvlad/bedc/internal/ctxlog"
)

var (
	// ErrCompilationFailed is returned when the source has at least one error.
	// The diagnostics themselves have already been written to the error stream.
	ErrCompilationFailed = errors.New("compilation failed")
	// ErrOutputIsInput is returned when the artifact would replace the source.
	ErrOutputIsInput = errors.New("output path is the input file")
)

// Run compiles the configured input and writes the artifact.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	if samePath(a.OutputPath(), a.config.InputPath) {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, a.config.InputPath)
	}

	src, err := os.ReadFile(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.logger.Debug("Input read.", "bytes", len(src))

	res := a.compiler.Compile(ctx, a.config.InputPath, src)
	if err := writeDiagnostics(a.errW, a.config.DiagnosticsFormat, a.config.InputPath, src, res.Diagnostics()); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	if !res.OK() {
		a.logger.Debug("Compilation failed.", "errors", len(res.Errors), "warnings", len(res.Warnings))
		return fmt.Errorf("%w: %d error(s) in %s", ErrCompilationFailed, len(res.Errors), a.config.InputPath)
	}

	artifact, err := res.Artifact()
	if err != nil {
		return err
	}
	if err := a.writeArtifact(artifact); err != nil {
		return err
	}
	a.report(res)

	a.logger.Debug("App.Run method finished.", "hash", res.Hash)
	return nil
}

// writeArtifact stores the artifact at the configured destination. When the
// artifact goes to stdout the hash report moves to the error stream.
func (a *App) writeArtifact(artifact []byte) error {
	out := a.OutputPath()
	if out == StdoutPath {
		if _, err := fmt.Fprintln(a.outW, string(artifact)); err != nil {
			return fmt.Errorf("failed to write artifact: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(out, append(artifact, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	a.logger.Info("Artifact written.", "path", out, "bytes", len(artifact)+1)
	return nil
}

func (a *App) report(res *compiler.Result) {
	w := a.outW
	if a.OutputPath() == StdoutPath {
		w = a.errW
	}
	fmt.Fprintln(w, res.Hash)
	if a.config.Verbose {
		fmt.Fprintln(w, summarize(res))
	}
}

// OutputPath returns where the artifact goes: the configured path, or the
// input path with its extension replaced by .json. An input that already
// ends in .json gets a second .json suffix instead.
func (a *App) OutputPath() string {
	if a.config.OutputPath != "" {
		return a.config.OutputPath
	}
	in := a.config.InputPath
	ext := filepath.Ext(in)
	if strings.EqualFold(ext, ".json") {
		return in + ".json"
	}
	return strings.TrimSuffix(in, ext) + ".json"
}

// samePath reports whether out names the same file as in.
func samePath(out, in string) bool {
	if out == StdoutPath {
		return false
	}
	if filepath.Clean(out) == filepath.Clean(in) {
		return true
	}
	outInfo, err := os.Stat(out)
	if err != nil {
		return false
	}
	inInfo, err := os.Stat(in)
	if err != nil {
		return false
	}
	return os.SameFile(outInfo, inInfo)
}
