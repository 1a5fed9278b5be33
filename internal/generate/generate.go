// Package generate synthesizes the artifact set for a resolved manifest.
//
// Independent artifacts are built concurrently; the content provider guard
// is the only shared collaborator and serves cached read-only decks. The
// finished set is assembled serially in a canonical order so that identical
// selections always produce byte-identical output.
package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/manifest"
	"github.com/vk/siteforge/internal/request"
)

// DependencyManifestPath is the path of the dependency-manifest artifact.
const DependencyManifestPath = "package.json"

// Generator builds the artifact set for one feature selection.
type Generator struct {
	sel   *request.FeatureSelection
	guard *content.Guard
	tpl   *templates
}

// New creates a generator for a validated selection.
func New(sel *request.FeatureSelection, guard *content.Guard) *Generator {
	return &Generator{sel: sel, guard: guard, tpl: templatesFor(sel.Framework)}
}

// Generate synthesizes all artifacts for the manifest. Pages and components
// whose kind has no registered template are skipped with a warning; the
// router still references them, and the repair engine synthesizes stand-ins
// on the first validation pass.
func (g *Generator) Generate(ctx context.Context, man *manifest.Manifest) (*artifact.Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generation started.", "framework", g.sel.Framework, "pages", len(man.Pages))

	pages := g.pageInfos(man.Pages)

	// Pages and hosted components are independent of each other; build them
	// concurrently. Results land in index-stable slices so assembly order
	// never depends on scheduling.
	pageResults := make([]*artifact.Artifact, len(pages))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, info := range pages {
		group.Go(func() error {
			tplFn, ok := g.tpl.pages[info.ID]
			if !ok {
				logger.Warn("No page template registered, skipping; the router will still reference it.", "page", info.ID)
				return nil
			}
			deck := g.guard.FetchDeck(groupCtx, g.sel.Industry)
			pctx := &pageContext{
				sel:             g.sel,
				deck:            deck,
				info:            info,
				extraComponents: g.hostedComponents(info.ID, man.Components),
			}
			pageResults[i] = tplFn(pctx).done()
			return nil
		})
	}

	componentResults := make([]*artifact.Artifact, len(man.Components))
	for i, name := range man.Components {
		if name == "Navbar" {
			continue // built serially with the app shell below
		}
		group.Go(func() error {
			tplFn, ok := g.tpl.components[name]
			if !ok {
				logger.Warn("No component template registered, skipping.", "component", name)
				return nil
			}
			deck := g.guard.FetchDeck(groupCtx, g.sel.Industry)
			componentResults[i] = tplFn(g.sel, deck).done()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("artifact generation failed: %w", err)
	}

	set := artifact.NewSet()
	add := func(arts ...*artifact.Artifact) error {
		for _, a := range arts {
			if a == nil {
				continue
			}
			if err := set.Add(a); err != nil {
				return err
			}
		}
		return nil
	}

	// Canonical assembly order: dependency manifest, app shell, components,
	// pages, stylesheets.
	pkg, err := g.packageManifest()
	if err != nil {
		return nil, err
	}
	if err := add(pkg); err != nil {
		return nil, err
	}
	for _, w := range g.tpl.entry(g.sel, pages) {
		if err := add(w.done()); err != nil {
			return nil, err
		}
	}
	for i, name := range man.Components {
		if name == "Navbar" {
			if err := add(g.tpl.navbar(g.sel, pages).done()); err != nil {
				return nil, err
			}
			continue
		}
		if err := add(componentResults[i]); err != nil {
			return nil, err
		}
	}
	for _, a := range pageResults {
		if err := add(a); err != nil {
			return nil, err
		}
	}
	for _, styleID := range man.Styles {
		sheet := stylesheetFor(styleID)
		if sheet == nil {
			logger.Warn("No stylesheet template registered, skipping.", "style", styleID)
			continue
		}
		if err := add(sheet); err != nil {
			return nil, err
		}
	}

	logger.Debug("Generation finished.", "artifact_count", set.Len())
	return set, nil
}

// pageInfos resolves identity records for every manifest page, including
// those with no template: the router references them regardless.
func (g *Generator) pageInfos(pageIDs []string) []pageInfo {
	infos := make([]pageInfo, len(pageIDs))
	for i, id := range pageIDs {
		name := pascal(id)
		infos[i] = pageInfo{
			ID:    id,
			Name:  name,
			Route: routeFor(id),
			Path:  "src/pages/" + name + g.tpl.markupExt,
		}
	}
	return infos
}

// hostedComponents returns the manifest components hosted on the given
// page, in manifest order. References to them are recorded even when their
// template is missing; the repair engine fills the gap.
func (g *Generator) hostedComponents(pageID string, components []string) []string {
	var out []string
	for _, name := range components {
		if componentHost[name] == pageID {
			out = append(out, name)
		}
	}
	return out
}

// packageJSON is the shape of the generated dependency manifest.
type packageJSON struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// packageManifest renders package.json from the dependency tables. Map keys
// are sorted by the JSON encoder, so output is deterministic.
func (g *Generator) packageManifest() (*artifact.Artifact, error) {
	pkg := packageJSON{
		Name:    g.sel.ProjectName,
		Private: true,
		Version: "0.1.0",
		Type:    "module",
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
		Dependencies:    manifest.DependenciesFor(g.sel.Framework, g.sel.SelectedFeatures),
		DevDependencies: g.tpl.devDependencies,
	}
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", DependencyManifestPath, err)
	}
	return &artifact.Artifact{
		Path:    DependencyManifestPath,
		Kind:    artifact.KindConfig,
		Content: string(data) + "\n",
	}, nil
}
