package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--definitely-not-a-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error for an unknown flag")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	requestPath := filepath.Join(t.TempDir(), "site.hcl")
	request := `
project {
  name      = "harbor-house"
  business  = "Harbor House"
  framework = "vue"
  industry  = "restaurant"
  features  = ["gallery", "chat"]
}
`
	require.NoError(t, os.WriteFile(requestPath, []byte(request), 0o600))
	outputDir := filepath.Join(t.TempDir(), "site")

	out := &bytes.Buffer{}
	err := run(out, []string{"-log-level", "error", "-out", outputDir, requestPath})
	require.NoError(t, err)

	require.Contains(t, out.String(), "ready")
	_, statErr := os.Stat(filepath.Join(outputDir, "src", "pages", "Chat.vue"))
	require.NoError(t, statErr, "the chat stub page should be written")
}

func TestRun_LoadFailure(t *testing.T) {
	t.Parallel()

	requestPath := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(requestPath, []byte("project {\n  name =\n"), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{requestPath})

	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "failed to load request"),
		"the error should name the failing phase, got: %v", err)
}
