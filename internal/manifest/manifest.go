// Package manifest derives the concrete file plan for a feature selection.
//
// Resolution is a pure, total function over an immutable lookup table:
// identical selections always produce identical manifests, unknown feature
// ids are logged and skipped, and an empty selection yields the core pages
// only. Keeping the mapping in one table (rather than conditionals spread
// through generation code) guarantees every honored feature maps to at
// least one concrete artifact.
package manifest

import (
	"context"

	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/request"
)

// Manifest is the derived list of pages, components and styles required
// for one feature selection.
type Manifest struct {
	Pages      []string
	Components []string
	Styles     []string
}

// Resolve expands a feature selection into a manifest. Unknown feature ids
// are ignored with a warning; they are user input, not errors.
func Resolve(ctx context.Context, sel *request.FeatureSelection) *Manifest {
	logger := ctxlog.FromContext(ctx)

	m := &Manifest{
		Pages:      append([]string(nil), corePages...),
		Components: append([]string(nil), coreComponents...),
		Styles:     append([]string(nil), coreStyles...),
	}

	seenFeature := make(map[string]bool)
	seenPage := toSet(m.Pages)
	seenComponent := toSet(m.Components)
	seenStyle := toSet(m.Styles)

	for _, id := range sel.SelectedFeatures {
		if seenFeature[id] {
			continue
		}
		seenFeature[id] = true

		spec, ok := featureTable[id]
		if !ok {
			logger.Warn("Unknown feature id ignored.", "feature", id)
			continue
		}
		for _, p := range spec.Pages {
			if !seenPage[p] {
				seenPage[p] = true
				m.Pages = append(m.Pages, p)
			}
		}
		for _, c := range spec.Components {
			if !seenComponent[c] {
				seenComponent[c] = true
				m.Components = append(m.Components, c)
			}
		}
		for _, s := range spec.Styles {
			if !seenStyle[s] {
				seenStyle[s] = true
				m.Styles = append(m.Styles, s)
			}
		}
	}

	logger.Debug("Manifest resolved.", "pages", len(m.Pages), "components", len(m.Components), "styles", len(m.Styles))
	return m
}

func toSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it] = true
	}
	return out
}
