package hclreq

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validRequest = `
project {
  name      = "harbor-house"
  business  = "Harbor House"
  framework = "react"
  industry  = "restaurant"
  features  = ["contact-form", "gallery"]

  business_data = {
    phone = "+1 555 0123"
    email = "hello@harborhouse.test"
  }
}
`

func TestLoadSingleFile(t *testing.T) {
	path := writeRequest(t, t.TempDir(), "site.hcl", validRequest)

	sel, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "harbor-house", sel.ProjectName)
	assert.Equal(t, "Harbor House", sel.BusinessName)
	assert.Equal(t, "react", sel.Framework)
	assert.Equal(t, "restaurant", sel.Industry)
	assert.Equal(t, []string{"contact-form", "gallery"}, sel.SelectedFeatures)
	assert.Equal(t, "+1 555 0123", sel.BusinessData["phone"])
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "site.hcl", validRequest)
	writeRequest(t, dir, "notes.txt", "ignored")

	sel, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "harbor-house", sel.ProjectName)
}

func TestLoadOptionalFieldsMayBeAbsent(t *testing.T) {
	path := writeRequest(t, t.TempDir(), "site.hcl", `
project {
  name      = "min"
  business  = "Min Co"
  framework = "vue"
}
`)

	sel, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, sel.SelectedFeatures)
	assert.Empty(t, sel.Industry)
	assert.Nil(t, sel.BusinessData)
}

func TestLoadRejectsMultipleProjectBlocks(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "a.hcl", validRequest)
	writeRequest(t, dir, "b.hcl", validRequest)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one project block")
}

func TestLoadRejectsMissingProjectBlock(t *testing.T) {
	path := writeRequest(t, t.TempDir(), "empty.hcl", "\n")

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no project block")
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeRequest(t, t.TempDir(), "broken.hcl", "project {\n  name =\n")

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoadRejectsNonStringBusinessData(t *testing.T) {
	path := writeRequest(t, t.TempDir(), "site.hcl", `
project {
  name      = "x"
  business  = "X"
  framework = "react"

  business_data = {
    seats = 42
  }
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seats")
}

func TestLoadRunsStructuralValidation(t *testing.T) {
	path := writeRequest(t, t.TempDir(), "site.hcl", `
project {
  name      = "x"
  business  = "X"
  framework = "svelte"
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "framework")
}

func TestLoadMissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
