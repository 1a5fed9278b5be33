// Package refgraph derives the cross-artifact reference graph from the
// declared references carried by each artifact.
//
// References to external packages (bare, non-relative import specifiers)
// are excluded from the graph: they are satisfied by the surrounding
// package ecosystem, outside this system's responsibility. Everything else
// resolves against the artifact set using module-resolution-like rules.
package refgraph

import (
	"context"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/ctxlog"
)

// Edge is one resolved (or dangling) cross-artifact reference.
type Edge struct {
	From string
	To   string
	Kind artifact.RefKind
	// Class is the bound class token for class-binding edges; To then holds
	// the paired stylesheet path (empty when the artifact has none).
	Class    string
	Resolved bool
}

// Build resolves every declared reference in the set into edges. Artifacts
// are processed in parallel and their edge lists merged serially in set
// order, so the result is deterministic.
func Build(ctx context.Context, set *artifact.Set) []Edge {
	logger := ctxlog.FromContext(ctx)
	arts := set.All()

	// Route and nav targets are needed up front: a route edge resolves
	// against the nav side and vice versa.
	routes := make(map[string]bool)
	navs := make(map[string]bool)
	for _, a := range arts {
		for _, ref := range a.DeclaredReferences {
			switch ref.Kind {
			case artifact.RefRoute:
				routes[ref.Target] = true
			case artifact.RefNavLink:
				navs[ref.Target] = true
			}
		}
	}

	perArtifact := make([][]Edge, len(arts))
	group, _ := errgroup.WithContext(ctx)
	for i, a := range arts {
		group.Go(func() error {
			perArtifact[i] = edgesFor(a, set, routes, navs)
			return nil
		})
	}
	_ = group.Wait() // workers never fail; the group exists for structure and ctx plumbing

	var edges []Edge
	for _, list := range perArtifact {
		edges = append(edges, list...)
	}
	logger.Debug("Reference graph built.", "edge_count", len(edges))
	return edges
}

func edgesFor(a *artifact.Artifact, set *artifact.Set, routes, navs map[string]bool) []Edge {
	var out []Edge
	pairedSheet := pairedStylesheet(a)

	for _, ref := range a.DeclaredReferences {
		switch ref.Kind {
		case artifact.RefImport:
			if isExternal(ref.Target) {
				continue
			}
			to := resolveImport(a.Path, ref.Target)
			out = append(out, Edge{
				From:     a.Path,
				To:       to,
				Kind:     artifact.RefImport,
				Resolved: set.Has(to),
			})
		case artifact.RefRoute:
			out = append(out, Edge{
				From:     a.Path,
				To:       ref.Target,
				Kind:     artifact.RefRoute,
				Resolved: navs[ref.Target],
			})
		case artifact.RefNavLink:
			out = append(out, Edge{
				From:     a.Path,
				To:       ref.Target,
				Kind:     artifact.RefNavLink,
				Resolved: routes[ref.Target],
			})
		case artifact.RefClassBinding:
			resolved := false
			if pairedSheet != "" {
				if sheet, ok := set.Get(pairedSheet); ok {
					resolved = selectorsIn(sheet.Content)[ref.Target]
				}
			}
			out = append(out, Edge{
				From:     a.Path,
				To:       pairedSheet,
				Kind:     artifact.RefClassBinding,
				Class:    ref.Target,
				Resolved: resolved,
			})
		}
	}
	return out
}

// isExternal reports whether an import specifier names an external package
// rather than a local artifact.
func isExternal(target string) bool {
	return !strings.HasPrefix(target, "./") && !strings.HasPrefix(target, "../")
}

// resolveImport normalizes a relative import against the importing
// artifact's directory. A specifier without an extension implies the
// default markup extension, taken from the importing artifact: generated
// extensionless imports only ever point at markup of the same flavor.
func resolveImport(from, target string) string {
	resolved := path.Join(path.Dir(from), target)
	if path.Ext(resolved) != "" {
		return resolved
	}
	switch path.Ext(from) {
	case ".jsx":
		return resolved + ".jsx"
	case ".vue":
		return resolved + ".vue"
	default:
		return resolved + ".js"
	}
}

// pairedStylesheet returns the artifact's own stylesheet: the first
// declared stylesheet import, normalized. Markup binds classes against its
// paired sheet only.
func pairedStylesheet(a *artifact.Artifact) string {
	for _, ref := range a.DeclaredReferences {
		if ref.Kind == artifact.RefImport && strings.HasSuffix(ref.Target, ".css") && !isExternal(ref.Target) {
			return path.Join(path.Dir(a.Path), ref.Target)
		}
	}
	return ""
}

// selectorsIn extracts the class tokens defined by a stylesheet via a
// targeted scan: text accumulated since the last brace is the selector
// prelude of the rule opened by each `{`, split on commas. Comma groups
// may span lines. Content is generator-controlled, so a full CSS parser
// is unnecessary.
func selectorsIn(css string) map[string]bool {
	out := make(map[string]bool)
	var prelude strings.Builder
	for _, r := range css {
		switch r {
		case '{':
			collectClassTokens(prelude.String(), out)
			prelude.Reset()
		case '}':
			// declaration bodies are not selector text
			prelude.Reset()
		default:
			prelude.WriteRune(r)
		}
	}
	return out
}

func collectClassTokens(prelude string, out map[string]bool) {
	for _, sel := range strings.Split(prelude, ",") {
		for _, token := range strings.Fields(sel) {
			if !strings.HasPrefix(token, ".") {
				continue
			}
			name := strings.TrimPrefix(token, ".")
			// strip pseudo-class suffixes like .btn:hover
			if colon := strings.Index(name, ":"); colon >= 0 {
				name = name[:colon]
			}
			if name != "" {
				out[name] = true
			}
		}
	}
}
