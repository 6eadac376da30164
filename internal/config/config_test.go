package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/bedc/internal/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	s := Default()

	require.NoError(t, s.Validate())
	assert.Equal(t, compiler.DefaultMaxSourceBytes, s.Compiler.MaxSourceBytes, "same limit as the compiler")
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "text", s.Diagnostics.Format)
}

func TestParseTOML_OverridesDefaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	data := []byte(`
[compiler]
strict = true

[diagnostics]
format = "json"
`)

	// --- Act ---
	s, err := ParseTOML(data)

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, s.Compiler.Strict)
	assert.False(t, s.Compiler.StrictUnits)
	assert.Equal(t, DefaultMaxSourceBytes, s.Compiler.MaxSourceBytes, "absent keys keep defaults")
	assert.Equal(t, "json", s.Diagnostics.Format)
	assert.Equal(t, "text", s.Log.Format)
}

func TestParseTOML_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     string
		contains string
	}{
		{"Unknown key", "[compiler]\nstrikt = true\n", "strikt"},
		{"Unknown table", "[mesh]\nsize = 1\n", "mesh"},
		{"Bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"Bad diagnostics", "[diagnostics]\nformat = \"html\"\n", "diagnostics.format"},
		{"Negative limit", "[compiler]\nmax_source_bytes = -1\n", "max_source_bytes"},
		{"Malformed", "[compiler\n", "line 1"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTOML([]byte(tc.data))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestTOMLLoader_Load(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "bedc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o600))
	var loader Loader = NewTOMLLoader()

	// --- Act ---
	s, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestTOMLLoader_EmptyPathGivesDefaults(t *testing.T) {
	t.Parallel()

	s, err := NewTOMLLoader().Load(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewTOMLLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTrips(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := Default()
	s.Compiler.StrictUnits = true
	s.Log.Format = "json"

	// --- Act ---
	data, err := Encode(s, FormatTOML)
	require.NoError(t, err)
	back, err := ParseTOML(data)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestParseHCL_OverridesDefaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	data := []byte(`
compiler {
  strict_units = true
}

log {
  format = "json"
}
`)

	// --- Act ---
	s, err := ParseHCL("bedc.hcl", data)

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, s.Compiler.StrictUnits)
	assert.False(t, s.Compiler.Strict)
	assert.Equal(t, DefaultMaxSourceBytes, s.Compiler.MaxSourceBytes, "absent attributes keep defaults")
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "text", s.Diagnostics.Format, "absent blocks keep defaults")
}

func TestParseHCL_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     string
		contains string
	}{
		{"Unknown attribute", "compiler {\n  strikt = true\n}\n", "strikt"},
		{"Unknown block", "mesh {\n  size = 1\n}\n", "mesh"},
		{"Duplicate block", "log {\n}\nlog {\n}\n", "Duplicate log block"},
		{"Wrong type", "compiler {\n  strict = \"yes\"\n}\n", "bool"},
		{"Bad value", "diagnostics {\n  format = \"html\"\n}\n", "diagnostics.format"},
		{"Malformed", "compiler {\n", "bedc.hcl"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseHCL("bedc.hcl", []byte(tc.data))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestFileLoader_PicksFormatByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "bedc.toml")
	hclPath := filepath.Join(dir, "bedc.hcl")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[compiler]\nstrict = true\n"), 0o600))
	require.NoError(t, os.WriteFile(hclPath, []byte("compiler {\n  strict = true\n}\n"), 0o600))
	var loader Loader = NewFileLoader()

	// --- Act ---
	fromTOML, tomlErr := loader.Load(context.Background(), tomlPath)
	fromHCL, hclErr := loader.Load(context.Background(), hclPath)
	defaults, defErr := loader.Load(context.Background(), "")

	// --- Assert ---
	require.NoError(t, tomlErr)
	require.NoError(t, hclErr)
	require.NoError(t, defErr)
	assert.True(t, fromTOML.Compiler.Strict)
	assert.Equal(t, fromTOML, fromHCL)
	assert.Equal(t, Default(), defaults)
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatHCL, FormatFor("bedc.hcl"))
	assert.Equal(t, FormatHCL, FormatFor("/etc/BEDC.HCL"))
	assert.Equal(t, FormatTOML, FormatFor("bedc.toml"))
	assert.Equal(t, FormatTOML, FormatFor("settings"))
}

func TestEncode_HCLRoundTrips(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := Default()
	s.Compiler.Strict = true
	s.Diagnostics.Format = "pretty"

	// --- Act ---
	data, err := Encode(s, FormatHCL)
	require.NoError(t, err)
	back, err := ParseHCL("bedc.hcl", data)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, s, back)
	assert.Contains(t, string(data), "compiler {")
}

func TestEncode_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Encode(Default(), "yaml")

	assert.ErrorIs(t, err, ErrInvalidSettings)
}
