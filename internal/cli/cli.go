package cli

import (
	"context"
	"errors"
	"io"

	"github.com/specialistvlad/bedc/internal/config"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// NewRootCommand builds the bedc command tree writing to outW and errW.
// Settings files are read with config.FileLoader.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	return newRootCommand(outW, errW, config.NewFileLoader())
}

func newRootCommand(outW, errW io.Writer, loader config.Loader) *cobra.Command {
	root := &cobra.Command{
		Use:           "bedc",
		Short:         "Compile packed-bed descriptions into canonical JSON",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(newCompileCommand(loader), newConfigCommand(), newVersionCommand())
	return root
}

// Execute runs the command tree on args. Every failure comes back as an
// *ExitError; a nil error means exit code 0.
func Execute(ctx context.Context, outW, errW io.Writer, args []string) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before a command runs is a usage problem.
	return usageError(err)
}
