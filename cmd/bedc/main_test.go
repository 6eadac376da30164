package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/bedc/internal/cli"
	"github.com/specialistvlad/bedc/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_CompilesScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "column.bed")
	err := os.WriteFile(filePath, []byte(testutil.ScenarioSource), 0600)
	require.NoError(t, err, "failed to set up test file")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, errOut, []string{"compile", filePath})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Len(t, strings.TrimSpace(out.String()), 16, "stdout carries the hash")
	require.FileExists(t, filepath.Join(tempDir, "column.json"))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag prints usage and succeeds.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag is a usage error.
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_CompileFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "broken.bed")
	require.NoError(t, os.WriteFile(filePath, []byte("bed {\n  diameter = 5 cm;\n"), 0600))
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, errOut, []string{"compile", filePath})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitFailure, exitErr.Code)
	require.Contains(t, errOut.String(), "missing '}'")
}
