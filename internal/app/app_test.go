package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSource = `
bed { diameter = 5 cm; height = 10 cm; wall_thickness = 2 mm; }
particles { kind = "sphere"; diameter = 5 mm; count = 100; density = 2500 kg/m3; }
packing { method = "rigid_body"; gravity = -9.81 m/s2; }
export { formats = ["stl_binary"]; }
`

// setupRun writes src into a temp dir and returns an App compiling it.
func setupRun(t *testing.T, src string, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	cfg.InputPath = filepath.Join(dir, "column.bed")
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte(src), 0o600))
	if cfg.OutputPath != "" && cfg.OutputPath != StdoutPath {
		cfg.OutputPath = filepath.Join(dir, cfg.OutputPath)
	}

	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return NewApp(stdout, stderr, appConfig), stdout, stderr
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"Valid", Config{InputPath: "a.bed"}, nil},
		{"Missing input", Config{}, ErrMissingInput},
		{"Negative limit", Config{InputPath: "a.bed", MaxSourceBytes: -1}, ErrInvalidConfig},
		{"Bad diagnostics", Config{InputPath: "a.bed", DiagnosticsFormat: "xml"}, ErrInvalidConfig},
		{"Bad log format", Config{InputPath: "a.bed", LogFormat: "yaml"}, ErrInvalidConfig},
		{"Bad log level", Config{InputPath: "a.bed", LogLevel: "trace"}, ErrInvalidConfig},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.cfg)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "text", cfg.DiagnosticsFormat, "diagnostics default to text")
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	buf := &bytes.Buffer{}
	logger := newLogger("", "json", buf)

	// --- Act ---
	logger.Info("hidden")
	logger.Warn("shown")

	// --- Assert ---
	assert.NotContains(t, buf.String(), "hidden", "default level is warn")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestRun_WritesArtifactNextToInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	a, stdout, stderr := setupRun(t, validSource, Config{})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.True(t, strings.HasSuffix(a.OutputPath(), "column.json"))

	data, err := os.ReadFile(a.OutputPath())
	require.NoError(t, err)
	var artifact map[string]any
	require.NoError(t, json.Unmarshal(data, &artifact))
	meta := artifact["metadata"].(map[string]any)

	assert.Equal(t, meta["hash"].(string)+"\n", stdout.String())
}

func TestRun_ArtifactToStdout(t *testing.T) {
	t.Parallel()

	a, stdout, stderr := setupRun(t, validSource, Config{OutputPath: StdoutPath, Verbose: true})

	err := a.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, json.Valid(stdout.Bytes()), "stdout carries only the artifact")
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Len(t, lines, 2, "hash and summary move to stderr")
	assert.Len(t, lines[0], 16)
	assert.Contains(t, lines[1], "bed 0.05x0.1 m")
}

func TestRun_VerboseSummary(t *testing.T) {
	t.Parallel()

	a, stdout, _ := setupRun(t, validSource, Config{OutputPath: "out.json", Verbose: true})

	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"bed 0.05x0.1 m (wall 0.002 m, steel); sphere particles d=0.005 m count=100; packing rigid_body; export stl_binary; 0 warning(s)",
		lines[1])
}

func TestRun_CompilationFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := strings.Replace(validSource, "wall_thickness = 2 mm", "wall_thickness = 3 cm", 1)
	a, stdout, stderr := setupRun(t, src, Config{})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, ErrCompilationFailed)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "validation: bed.wall_thickness: must be less than half the bed diameter")
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"), "one error per line")
	_, statErr := os.Stat(a.OutputPath())
	assert.ErrorIs(t, statErr, os.ErrNotExist, "no artifact on failure")
}

func TestRun_WarningsDoNotFail(t *testing.T) {
	t.Parallel()

	a, stdout, stderr := setupRun(t, validSource+"mesh { size = 1; }\n", Config{})

	require.NoError(t, a.Run(context.Background()))

	assert.NotEmpty(t, stdout.String())
	assert.Contains(t, stderr.String(), "warning:")
}

func TestRun_JSONDiagnostics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	a, _, stderr := setupRun(t, "bed { diameter = ; }", Config{DiagnosticsFormat: "json"})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, ErrCompilationFailed)
	var diags []jsonDiagnostic
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &diags))
	require.NotEmpty(t, diags)
	assert.Equal(t, "parse", string(diags[0].Kind))
	assert.Equal(t, "bed", diags[0].Section)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 18, diags[0].Column)
	assert.True(t, strings.HasSuffix(diags[0].File, "column.bed"))
}

func TestRun_PrettyDiagnostics(t *testing.T) {
	t.Parallel()

	src := strings.Replace(validSource, "wall_thickness = 2 mm", "wall_thickness = 3 cm", 1)
	a, _, stderr := setupRun(t, src, Config{DiagnosticsFormat: "pretty"})

	require.ErrorIs(t, a.Run(context.Background()), ErrCompilationFailed)

	out := stderr.String()
	assert.Contains(t, out, "Error: bed.wall_thickness")
	assert.Contains(t, out, "wall_thickness = 3 cm", "source snippet is shown")
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputPath: filepath.Join(t.TempDir(), "missing.bed")})
	require.NoError(t, err)
	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)

	err = a.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrCompilationFailed)
}

func TestRun_UnwritableOutput(t *testing.T) {
	t.Parallel()

	a, _, _ := setupRun(t, validSource, Config{OutputPath: filepath.Join("no", "such", "dir", "out.json")})

	err := a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write artifact")
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	t.Parallel()

	a, stdout, stderr := setupRun(t, validSource, Config{LogLevel: "debug", LogFormat: "json"})

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, stderr.String(), `"msg":"Compiled."`)
	assert.NotContains(t, stdout.String(), "msg")
}

func TestRun_JSONNamedInputIsNotOverwritten(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := filepath.Join(dir, "bed.json")
	require.NoError(t, os.WriteFile(input, []byte(validSource), 0o600))
	cfg, err := NewConfig(Config{InputPath: input})
	require.NoError(t, err)
	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)

	// --- Act ---
	// A second run compiles the untouched source again.
	require.NoError(t, a.Run(context.Background()))
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, input+".json", a.OutputPath())
	src, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, validSource, string(src))
	assert.FileExists(t, input+".json")
}

func TestRun_RefusesToWriteOverInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		output func(input string) string
	}{
		{"Same path", func(input string) string { return input }},
		{"Unclean path", func(input string) string {
			sep := string(filepath.Separator)
			return filepath.Dir(input) + sep + "." + sep + filepath.Base(input)
		}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			input := filepath.Join(t.TempDir(), "column.bed")
			require.NoError(t, os.WriteFile(input, []byte(validSource), 0o600))
			cfg, err := NewConfig(Config{InputPath: input, OutputPath: tc.output(input)})
			require.NoError(t, err)
			stdout := &bytes.Buffer{}

			// --- Act ---
			err = NewApp(stdout, &bytes.Buffer{}, cfg).Run(context.Background())

			// --- Assert ---
			require.ErrorIs(t, err, ErrOutputIsInput)
			assert.Empty(t, stdout.String())
			src, readErr := os.ReadFile(input)
			require.NoError(t, readErr)
			assert.Equal(t, validSource, string(src))
		})
	}
}
