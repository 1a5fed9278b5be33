package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/siteforge/internal/testutil"
)

const galleryRequest = `
project {
  name      = "harbor-house"
  business  = "Harbor House"
  framework = "react"
  industry  = "restaurant"
  features  = ["contact-form", "gallery"]
}
`

func setupAppTest(t *testing.T, cfg Config) (*App, *testutil.SafeBuffer) {
	t.Helper()
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	config, err := NewConfig(cfg)
	require.NoError(t, err)
	return NewApp(logBuffer, config, nil), logBuffer
}

func TestNewConfigRequiresRequestPath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{RequestPath: "site.hcl", MaxIterations: -1})
	require.Error(t, err)

	cfg, err := NewConfig(Config{RequestPath: "site.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "site.hcl", cfg.RequestPath)
}

func TestRunWritesProjectAndReport(t *testing.T) {
	requestPath := testutil.WriteRequestFile(t, galleryRequest)
	outputDir := filepath.Join(t.TempDir(), "site")

	testApp, out := setupAppTest(t, Config{
		RequestPath: requestPath,
		OutputDir:   outputDir,
	})
	require.NoError(t, testApp.Run(context.Background()))

	for _, p := range []string{
		"package.json",
		"src/App.jsx",
		"src/pages/Gallery.jsx",
		"src/components/ContactForm.jsx",
		"src/styles/GalleryGrid.css",
	} {
		_, err := os.Stat(filepath.Join(outputDir, p))
		assert.NoError(t, err, p)
	}

	assert.Contains(t, out.String(), "Project harbor-house (react): ready")
}

func TestRunReportOnlyWritesNothing(t *testing.T) {
	requestPath := testutil.WriteRequestFile(t, galleryRequest)

	testApp, out := setupAppTest(t, Config{RequestPath: requestPath})
	require.NoError(t, testApp.Run(context.Background()))

	assert.Contains(t, out.String(), "ready")
}

func TestRunReportsSynthesizedStub(t *testing.T) {
	requestPath := testutil.WriteRequestFile(t, `
project {
  name      = "chatty"
  business  = "Chatty"
  framework = "react"
  features  = ["chat"]
}
`)

	testApp, out := setupAppTest(t, Config{RequestPath: requestPath})
	require.NoError(t, testApp.Run(context.Background()))

	assert.Contains(t, out.String(), "synthesized-stub")
	assert.Contains(t, out.String(), "fixes applied: 1")
}

func TestRunFailsOnMissingRequest(t *testing.T) {
	testApp, _ := setupAppTest(t, Config{
		RequestPath: filepath.Join(t.TempDir(), "absent.hcl"),
	})
	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load request")
}

func TestRunFailsOnInvalidSelection(t *testing.T) {
	requestPath := testutil.WriteRequestFile(t, `
project {
  name      = "x"
  business  = "X"
  framework = "angular"
}
`)

	testApp, _ := setupAppTest(t, Config{RequestPath: requestPath})
	err := testApp.Run(context.Background())
	require.Error(t, err)
}
