package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/bedc/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bedc settings files",
	}
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file with the default values",
		Long: `Write a settings file with the default values.

The format follows the extension: .hcl writes HCL, anything else TOML.
The path defaults to bedc.toml. Existing files are kept unless --force.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "bedc.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return writeDefaultSettings(cmd, path, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeDefaultSettings(cmd *cobra.Command, path string, force bool) error {
	data, err := config.Encode(config.Default(), config.FormatFor(path))
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("bedc: %v", err)}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("bedc: %s already exists (use --force to overwrite)", path)}
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("bedc: %v", err)}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("bedc: failed to write %s: %v", path, err)}
	}
	if err := f.Close(); err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("bedc: failed to write %s: %v", path, err)}
	}

	cmd.Printf("wrote %s\n", path)
	return nil
}
