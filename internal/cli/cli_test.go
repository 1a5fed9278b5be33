package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionalRequestPath(t *testing.T) {
	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{"site.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "site.hcl", config.RequestPath)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 0, config.MaxIterations)
}

func TestParseFlagsOverridePositional(t *testing.T) {
	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{
		"-request", "requests/",
		"-out", "dist",
		"-log-format", "text",
		"-log-level", "debug",
		"-max-iterations", "3",
	}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "requests/", config.RequestPath)
	assert.Equal(t, "dist", config.OutputDir)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 3, config.MaxIterations)
}

func TestParseShorthandFlag(t *testing.T) {
	out := &bytes.Buffer{}
	config, _, err := Parse([]string{"-r", "site.hcl"}, out)
	require.NoError(t, err)
	assert.Equal(t, "site.hcl", config.RequestPath)
}

func TestParseNoArgsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	config, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseHelpFlag(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestParseInvalidLogFormat(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-log-format", "xml", "site.hcl"}, out)
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseInvalidLogLevel(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-log-level", "verbose", "site.hcl"}, out)
	require.Error(t, err)
}

func TestParseUnknownFlag(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--definitely-not-a-flag"}, out)
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseNegativeMaxIterations(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-max-iterations", "-2", "site.hcl"}, out)
	require.Error(t, err)
}
