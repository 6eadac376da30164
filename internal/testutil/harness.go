package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/bedc/internal/app"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Stdout string
	Stderr string
	Err    error
	Dir    string
	App    *app.App
}

// ReadFile reads a file from the run's working directory.
func (r *HarnessResult) ReadFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(t, err)
	return string(data)
}

// RunIntegrationTest writes files into a temporary directory and runs the
// app over them. cfg.InputPath and a non-stdout cfg.OutputPath are resolved
// relative to that directory. Logs are captured at debug level unless
// cfg.LogLevel says otherwise.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-supplied
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory and write the sources into it.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	// 2. Resolve paths into the temporary directory.
	cfg.InputPath = filepath.Join(tmpDir, cfg.InputPath)
	if cfg.OutputPath != "" && cfg.OutputPath != app.StdoutPath {
		cfg.OutputPath = filepath.Join(tmpDir, cfg.OutputPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	// 3. Run the app against captured streams.
	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	testApp := app.NewApp(stdout, stderr, appConfig)
	runErr := testApp.Run(ctx)

	if os.Getenv("BEDC_TEST_LOGS") == "true" {
		t.Logf("--- Stderr for %s ---\n%s", t.Name(), stderr.String())
	}

	return &HarnessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    runErr,
		Dir:    tmpDir,
		App:    testApp,
	}
}
