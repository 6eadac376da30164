package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/bedc/internal/ctxlog"
)

// Settings file formats.
const (
	FormatTOML = "toml"
	FormatHCL  = "hcl"
)

// FileLoader picks the settings format from the file extension: .hcl files
// are read as HCL, anything else as TOML.
type FileLoader struct {
	toml *TOMLLoader
	hcl  *HCLLoader
}

// NewFileLoader creates the loader the command line uses.
func NewFileLoader() *FileLoader {
	return &FileLoader{toml: NewTOMLLoader(), hcl: NewHCLLoader()}
}

// Load implements Loader.
func (l *FileLoader) Load(ctx context.Context, path string) (*Settings, error) {
	if FormatFor(path) == FormatHCL {
		return l.hcl.Load(ctx, path)
	}
	return l.toml.Load(ctx, path)
}

// FormatFor returns the settings format implied by path's extension.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return FormatHCL
	}
	return FormatTOML
}

// Encode renders settings in the given format.
func Encode(s *Settings, format string) ([]byte, error) {
	switch format {
	case FormatHCL:
		return encodeHCL(s), nil
	case FormatTOML:
		out, err := encodeTOML(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode settings: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown settings format %q", ErrInvalidSettings, format)
	}
}

func readSettings(ctx context.Context, path string, parse func([]byte) (*Settings, error)) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No settings file given, using defaults.")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Settings loaded.", "path", path, "format", FormatFor(path))
	return s, nil
}
