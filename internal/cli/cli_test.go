package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalGridPath(t *testing.T) {
	// Arrange
	var out bytes.Buffer

	// Act
	cfg, shouldExit, err := Parse([]string{"grids/demo.hcl"}, &out)

	// Assert
	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, "grids/demo.hcl", cfg.GridPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.WorkerCount)
	assert.False(t, cfg.KeepGoing)
}

func TestParse_GridFlagTakesPrecedence(t *testing.T) {
	// Arrange
	var out bytes.Buffer

	// Act
	cfg, shouldExit, err := Parse([]string{"--grid", "a.hcl", "b.hcl"}, &out)

	// Assert
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "a.hcl", cfg.GridPath)
}

func TestParse_AllOptions(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	args := []string{
		"--log-format", "text",
		"--log-level", "DEBUG",
		"--workers", "3",
		"--keep-going",
		"-g", "grid.hcl",
	}

	// Act
	cfg, shouldExit, err := Parse(args, &out)

	// Assert
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "grid.hcl", cfg.GridPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.True(t, cfg.KeepGoing)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	// Arrange
	var out bytes.Buffer

	// Act
	cfg, shouldExit, err := Parse([]string{}, &out)

	// Assert
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	// Arrange
	var out bytes.Buffer

	// Act
	cfg, shouldExit, err := Parse([]string{"--help"}, &out)

	// Assert
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_InvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "bad log format", args: []string{"--log-format", "xml", "grid.hcl"}},
		{name: "bad log level", args: []string{"--log-level", "loud", "grid.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var out bytes.Buffer

			// Act
			cfg, shouldExit, err := Parse(tc.args, &out)

			// Assert
			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)
			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected a *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
