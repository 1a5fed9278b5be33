package generate

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/manifest"
	"github.com/vk/siteforge/internal/request"
)

func selection(framework string, features ...string) *request.FeatureSelection {
	return &request.FeatureSelection{
		ProjectName:      "harbor-house",
		BusinessName:     "Harbor House",
		Framework:        framework,
		Industry:         "restaurant",
		SelectedFeatures: features,
	}
}

func generateAll(t *testing.T, sel *request.FeatureSelection) *artifact.Set {
	t.Helper()
	ctx := context.Background()
	guard := content.NewGuard(content.NewStaticProvider(), content.DefaultTimeout)
	set, err := New(sel, guard).Generate(ctx, manifest.Resolve(ctx, sel))
	require.NoError(t, err)
	return set
}

func TestGenerateCoreReactProject(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkReact))

	for _, p := range []string{
		"package.json",
		"index.html",
		"vite.config.js",
		"src/main.jsx",
		"src/App.jsx",
		"src/components/Navbar.jsx",
		"src/pages/Home.jsx",
		"src/pages/About.jsx",
		"src/pages/Services.jsx",
		"src/pages/Contact.jsx",
		"src/styles/Home.css",
		"src/styles/Navbar.css",
	} {
		assert.True(t, set.Has(p), p)
	}
}

func TestGenerateRecordsReferencesAtWriteTime(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkReact, "gallery"))

	app, ok := set.Get("src/App.jsx")
	require.True(t, ok)

	var imports, routes []string
	for _, ref := range app.References(artifact.RefImport) {
		imports = append(imports, ref.Target)
	}
	for _, ref := range app.References(artifact.RefRoute) {
		routes = append(routes, ref.Target)
	}
	assert.Contains(t, imports, "./pages/Gallery")
	assert.Equal(t, []string{"/", "/about", "/services", "/contact", "/gallery"}, routes)

	navbar, ok := set.Get("src/components/Navbar.jsx")
	require.True(t, ok)
	var navs []string
	for _, ref := range navbar.References(artifact.RefNavLink) {
		navs = append(navs, ref.Target)
	}
	assert.Equal(t, routes, navs, "navbar mirrors the route table")

	home, _ := set.Get("src/pages/Home.jsx")
	require.NotNil(t, home)
	assert.NotEmpty(t, home.References(artifact.RefClassBinding),
		"class usage is recorded as it is written")
}

func TestGenerateClassBindingsAppearInContent(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkReact))
	home, _ := set.Get("src/pages/Home.jsx")
	require.NotNil(t, home)

	for _, ref := range home.References(artifact.RefClassBinding) {
		assert.Contains(t, home.Content, ref.Target,
			"every recorded class occurs in the markup")
	}
}

func TestGenerateSkipsPagesWithoutTemplate(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkReact, "chat"))

	assert.False(t, set.Has("src/pages/Chat.jsx"),
		"no template registered for the chat page")

	app, _ := set.Get("src/App.jsx")
	require.NotNil(t, app)
	var imports []string
	for _, ref := range app.References(artifact.RefImport) {
		imports = append(imports, ref.Target)
	}
	assert.Contains(t, imports, "./pages/Chat",
		"the router references the page regardless")
}

func TestGeneratePackageManifest(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkReact, "contact-form", "booking"))

	pkg, ok := set.Get(DependencyManifestPath)
	require.True(t, ok)
	require.Equal(t, artifact.KindConfig, pkg.Kind)

	var parsed struct {
		Name         string            `json:"name"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(pkg.Content), &parsed))
	assert.Equal(t, "harbor-house", parsed.Name)
	assert.Equal(t, "18.3.1", parsed.Dependencies["react"])
	assert.Equal(t, "13.12.0", parsed.Dependencies["validator"])
	assert.Equal(t, "3.6.0", parsed.Dependencies["date-fns"])
}

func TestGenerateVueProjectUsesVueShape(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkVue, "gallery"))

	for _, p := range []string{
		"src/main.js",
		"src/router.js",
		"src/App.vue",
		"src/pages/Gallery.vue",
		"src/components/Navbar.vue",
	} {
		assert.True(t, set.Has(p), p)
	}
	assert.False(t, set.Has("src/App.jsx"))

	router, _ := set.Get("src/router.js")
	require.NotNil(t, router)
	assert.Contains(t, router.Content, "'/gallery'")
}

func TestGenerateBusinessContentLandsOnPages(t *testing.T) {
	set := generateAll(t, selection(request.FrameworkReact))
	home, _ := set.Get("src/pages/Home.jsx")
	require.NotNil(t, home)
	assert.Contains(t, home.Content, "Harbor House")
}

func TestGenerateIsDeterministic(t *testing.T) {
	sel := selection(request.FrameworkReact, "gallery", "blog", "testimonials")
	first := generateAll(t, sel)
	second := generateAll(t, sel)

	require.Equal(t, first.Paths(), second.Paths())
	for _, p := range first.Paths() {
		a, _ := first.Get(p)
		b, _ := second.Get(p)
		if diff := cmp.Diff(a.Content, b.Content); diff != "" {
			t.Errorf("artifact %s differs (-first +second):\n%s", p, diff)
		}
	}
}

func TestStubsForPagePathBringPairedStylesheet(t *testing.T) {
	stubs := Stubs(request.FrameworkReact, "src/pages/Chat.jsx")
	require.Len(t, stubs, 2)
	assert.Equal(t, "src/pages/Chat.jsx", stubs[0].Path)
	assert.Equal(t, "src/styles/Chat.css", stubs[1].Path)
	assert.Contains(t, stubs[1].Content, ".page {")
}

func TestStubsForStylesheetPath(t *testing.T) {
	stubs := Stubs(request.FrameworkVue, "src/styles/Chat.css")
	require.Len(t, stubs, 1)
	assert.Equal(t, artifact.KindStylesheet, stubs[0].Kind)
}

func TestInsertRouteRecordsReferences(t *testing.T) {
	a := artifact.New(RouterPath(request.FrameworkReact), artifact.KindPage,
		"import React from 'react';\n\nfunction App() {\n  return (\n        <Routes>\n        </Routes>\n  );\n}\n")
	require.NoError(t, InsertRoute(request.FrameworkReact, a, "/chat"))

	assert.Contains(t, a.Content, "path=\"/chat\"")
	assert.Contains(t, a.Content, "import Chat from './pages/Chat';")
	require.Len(t, a.References(artifact.RefRoute), 1)
	require.Len(t, a.References(artifact.RefImport), 1)
	assert.Equal(t, "./pages/Chat", a.References(artifact.RefImport)[0].Target)
}

func TestInsertNavEntryFailsWithoutMarker(t *testing.T) {
	a := artifact.New("src/components/Navbar.jsx", artifact.KindComponent, "<nav></nav>\n")
	err := InsertNavEntry(request.FrameworkReact, a, "/chat")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "/chat"))
}

func TestStylesheetPathForPairsMarkup(t *testing.T) {
	assert.Equal(t, "src/styles/Chat.css", StylesheetPathFor("src/pages/Chat.jsx"))
	assert.Equal(t, "src/styles/Navbar.css", StylesheetPathFor("src/components/Navbar.vue"))
}
