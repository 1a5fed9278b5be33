package generate

import (
	"fmt"
	"path"
	"strings"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/request"
)

// This file is the repair engine's view of the template layer: synthesizing
// stand-in artifacts at an exact expected path, and splicing missing route
// or navigation entries into the generated shell.

// NavbarPath returns the navigation artifact's path for a framework.
func NavbarPath(framework string) string {
	return "src/components/Navbar" + templatesFor(framework).markupExt
}

// RouterPath returns the path of the artifact that registers routes.
func RouterPath(framework string) string {
	if framework == request.FrameworkVue {
		return "src/router.js"
	}
	return "src/App.jsx"
}

// StylesheetPathFor returns the paired stylesheet path for a markup
// artifact path, e.g. "src/pages/Chat.jsx" -> "src/styles/Chat.css".
func StylesheetPathFor(markupPath string) string {
	base := strings.TrimSuffix(path.Base(markupPath), path.Ext(markupPath))
	return "src/styles/" + base + ".css"
}

// Stubs synthesizes the minimal structurally valid stand-in artifacts for a
// missing path. A rich template is used when one exists for the artifact
// kind implied by the path; a markup stub brings its paired stylesheet with
// it so the pair stays closed. Callers skip any returned artifact whose
// path already exists.
func Stubs(framework, missingPath string) []*artifact.Artifact {
	tpl := templatesFor(framework)
	base := strings.TrimSuffix(path.Base(missingPath), path.Ext(missingPath))

	switch {
	case strings.HasSuffix(missingPath, ".css"):
		return []*artifact.Artifact{stubStylesheet(base)}
	case strings.HasPrefix(missingPath, "src/pages/"):
		return []*artifact.Artifact{tpl.stubPage(base).done(), stubStylesheet(base)}
	case strings.HasPrefix(missingPath, "src/components/"):
		return []*artifact.Artifact{tpl.stubComponent(base).done(), stubStylesheet(base)}
	case strings.HasSuffix(missingPath, ".html"):
		return []*artifact.Artifact{{
			Path:    missingPath,
			Kind:    artifact.KindAsset,
			Content: "<!DOCTYPE html>\n<html lang=\"en\">\n  <head><title>" + base + "</title></head>\n  <body></body>\n</html>\n",
		}}
	case strings.HasSuffix(missingPath, ".js") || strings.HasSuffix(missingPath, ".jsx") || strings.HasSuffix(missingPath, ".vue"):
		return []*artifact.Artifact{{
			Path:    missingPath,
			Kind:    artifact.KindConfig,
			Content: "export default {};\n",
		}}
	default:
		return []*artifact.Artifact{{
			Path:    missingPath,
			Kind:    artifact.KindAsset,
			Content: "\n",
		}}
	}
}

// InsertNavEntry splices a navigation entry for the route into the nav
// artifact and records the declared nav-link reference.
func InsertNavEntry(framework string, a *artifact.Artifact, route string) error {
	label := labelForRoute(route)
	var line string
	if framework == request.FrameworkVue {
		line = fmt.Sprintf("      <li><router-link to=%q>%s</router-link></li>", route, label)
	} else {
		line = fmt.Sprintf("        <li><NavLink to=%q>%s</NavLink></li>", route, label)
	}
	patched, err := insertBeforeMarker(a.Content, "</ul>", line)
	if err != nil {
		return fmt.Errorf("adding nav entry for %s: %w", route, err)
	}
	a.Content = patched
	a.AddReference(artifact.RefNavLink, route)
	return nil
}

// InsertRoute splices a route registration (and the page import it needs)
// into the router artifact and records the declared references. The page
// artifact itself may not exist yet; the next validation pass flags it and
// a stub is synthesized, which is how repair converges over iterations.
func InsertRoute(framework string, a *artifact.Artifact, route string) error {
	name := pageNameForRoute(route)

	var importLine, routeLine, marker, importTarget string
	if framework == request.FrameworkVue {
		importTarget = "./pages/" + name + ".vue"
		importLine = fmt.Sprintf("import %s from '%s';", name, importTarget)
		routeLine = fmt.Sprintf("  { path: '%s', component: %s },", route, name)
		marker = "];"
	} else {
		importTarget = "./pages/" + name
		importLine = fmt.Sprintf("import %s from '%s';", name, importTarget)
		routeLine = fmt.Sprintf("          <Route path=%q element={<%s />} />", route, name)
		marker = "</Routes>"
	}

	patched := insertAfterImports(a.Content, importLine)
	patched, err := insertBeforeMarker(patched, marker, routeLine)
	if err != nil {
		return fmt.Errorf("adding route for %s: %w", route, err)
	}
	a.Content = patched
	a.AddReference(artifact.RefImport, importTarget)
	a.AddReference(artifact.RefRoute, route)
	return nil
}

// insertBeforeMarker inserts line before the first content line whose
// trimmed text equals marker, keeping the file's existing line structure.
func insertBeforeMarker(content, marker, line string) (string, error) {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == marker {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i]...)
			out = append(out, line)
			out = append(out, lines[i:]...)
			return strings.Join(out, "\n"), nil
		}
	}
	return "", fmt.Errorf("marker %q not found", marker)
}

// insertAfterImports inserts line directly after the last top-level import
// statement, or at the top of the file when there are none.
func insertAfterImports(content, line string) string {
	lines := strings.Split(content, "\n")
	last := -1
	for i, l := range lines {
		if strings.HasPrefix(l, "import ") {
			last = i
		}
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, line)
	out = append(out, lines[last+1:]...)
	return strings.Join(out, "\n")
}
