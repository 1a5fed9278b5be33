package manifest

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/request"
)

func selection(features ...string) *request.FeatureSelection {
	return &request.FeatureSelection{
		ProjectName:      "test-site",
		BusinessName:     "Test Co",
		Framework:        request.FrameworkReact,
		Industry:         "restaurant",
		SelectedFeatures: features,
	}
}

func TestResolveEmptySelection(t *testing.T) {
	m := Resolve(context.Background(), selection())
	assert.Equal(t, []string{"home", "about", "services", "contact"}, m.Pages)
	assert.Equal(t, []string{"Navbar"}, m.Components)
	assert.Contains(t, m.Styles, "navbar")
}

func TestResolveScenarioA(t *testing.T) {
	m := Resolve(context.Background(), selection("contact-form", "gallery"))
	assert.Equal(t, []string{"home", "about", "services", "contact", "gallery"}, m.Pages)
	assert.Contains(t, m.Components, "ContactForm")
	assert.Contains(t, m.Components, "GalleryGrid")
	assert.Contains(t, m.Styles, "gallery")
}

func TestResolveGalleryHasPairedStyle(t *testing.T) {
	m := Resolve(context.Background(), selection("gallery"))
	assert.Contains(t, m.Pages, "gallery")
	assert.Contains(t, m.Styles, "gallery")
}

func TestResolveUnknownFeatureIgnoredWithWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	m := Resolve(ctx, selection("gallery", "time-machine"))
	assert.Contains(t, m.Pages, "gallery")
	assert.Len(t, m.Pages, 5)
	assert.Contains(t, buf.String(), "time-machine")
}

func TestResolveIsDeterministic(t *testing.T) {
	a := Resolve(context.Background(), selection("blog", "booking", "newsletter"))
	b := Resolve(context.Background(), selection("blog", "booking", "newsletter"))
	assert.Equal(t, a, b)
}

func TestResolveDeduplicatesRepeatedFeatures(t *testing.T) {
	m := Resolve(context.Background(), selection("gallery", "gallery"))
	count := 0
	for _, p := range m.Pages {
		if p == "gallery" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDependenciesFor(t *testing.T) {
	deps := DependenciesFor(request.FrameworkReact, []string{"chat", "nonsense"})
	assert.Equal(t, "18.3.1", deps["react"])
	assert.Equal(t, "4.7.5", deps["socket.io-client"])
	_, ok := deps["vue"]
	assert.False(t, ok)
}

func TestPinnedVersion(t *testing.T) {
	ver, ok := PinnedVersion(request.FrameworkVue, []string{"booking"}, "date-fns")
	require.True(t, ok)
	assert.Equal(t, "3.6.0", ver)

	_, ok = PinnedVersion(request.FrameworkVue, nil, "left-pad")
	assert.False(t, ok)
}

func TestEveryFeatureContributesAnArtifact(t *testing.T) {
	for id, spec := range featureTable {
		total := len(spec.Pages) + len(spec.Components) + len(spec.Styles)
		assert.Greater(t, total, 0, "feature %q maps to no artifacts", id)
	}
}
