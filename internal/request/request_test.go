package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSelection() *FeatureSelection {
	return &FeatureSelection{
		ProjectName:      "bistro-site",
		BusinessName:     "Mario's Bistro",
		Framework:        FrameworkReact,
		Industry:         "restaurant",
		SelectedFeatures: []string{"gallery"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid selection passes", func(t *testing.T) {
		require.NoError(t, validSelection().Validate())
	})

	t.Run("empty selected features are valid", func(t *testing.T) {
		sel := validSelection()
		sel.SelectedFeatures = nil
		require.NoError(t, sel.Validate())
	})

	t.Run("unknown industry is not fatal", func(t *testing.T) {
		sel := validSelection()
		sel.Industry = "submarine-racing"
		require.NoError(t, sel.Validate())
	})

	t.Run("missing project name is fatal", func(t *testing.T) {
		sel := validSelection()
		sel.ProjectName = "  "
		err := sel.Validate()
		require.Error(t, err)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "name", cfgErr.Field)
	})

	t.Run("project name with path separators is fatal", func(t *testing.T) {
		sel := validSelection()
		sel.ProjectName = "my/site"
		assert.Error(t, sel.Validate())
	})

	t.Run("unsupported framework is fatal", func(t *testing.T) {
		sel := validSelection()
		sel.Framework = "svelte"
		err := sel.Validate()
		require.Error(t, err)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "framework", cfgErr.Field)
	})

	t.Run("missing business name is fatal", func(t *testing.T) {
		sel := validSelection()
		sel.BusinessName = ""
		assert.Error(t, sel.Validate())
	})
}
