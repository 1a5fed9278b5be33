// Package repair applies targeted fixes to a validated artifact set.
//
// Each defect kind maps to exactly one named strategy. A strategy mutates
// the set just enough to remove its defect and reports what it did as a
// FixRecord. Strategies are written to be idempotent: applying one to an
// already-consistent set changes nothing, so re-running repair on clean
// input is a no-op.
package repair

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/generate"
	"github.com/vk/siteforge/internal/manifest"
	"github.com/vk/siteforge/internal/request"
	"github.com/vk/siteforge/internal/validate"
)

// Fix confidence levels. A "full" fix restores the intended content; a
// "stand-in" fix synthesizes minimal valid content that keeps the project
// consistent but is meant to be replaced by a human.
const (
	ConfidenceFull    = "full"
	ConfidenceStandIn = "stand-in"
)

// Strategy names, as they appear in fix records and reports.
const (
	StrategySynthesizedStub = "synthesized-stub"
	StrategySelectorStub    = "selector-stub"
	StrategyRouteNavSync    = "route-nav-sync"
	StrategyPinnedDep       = "pinned-dependency"
	StrategySyntaxPatch     = "syntax-patch"
)

// FixRecord documents one applied fix.
type FixRecord struct {
	Defect          validate.Defect
	Strategy        string
	ResultArtifacts []string
	Confidence      string
}

func (r FixRecord) String() string {
	return fmt.Sprintf("%s fixed %s via %s", strings.Join(r.ResultArtifacts, ","), r.Defect.Kind, r.Strategy)
}

type strategyFunc func(ctx context.Context, set *artifact.Set, d validate.Defect) (*FixRecord, error)

// Engine repairs defects for one selection.
type Engine struct {
	sel        *request.FeatureSelection
	strategies map[validate.DefectKind]strategyFunc
}

func New(sel *request.FeatureSelection) *Engine {
	e := &Engine{sel: sel}
	e.strategies = map[validate.DefectKind]strategyFunc{
		validate.DanglingImport:    e.synthesizeStub,
		validate.OrphanClass:       e.stubSelector,
		validate.RouteNavMismatch:  e.syncRouteNav,
		validate.MissingDependency: e.pinDependency,
		validate.MalformedSyntax:   e.patchSyntax,
	}
	return e
}

// Repair applies one strategy per defect. Defects that mutate the same
// artifact are handled serially; independent artifacts are repaired
// concurrently. The returned records are in defect order regardless of
// scheduling, and defects without an applicable strategy come back as
// residuals.
func (e *Engine) Repair(ctx context.Context, set *artifact.Set, defects []validate.Defect) ([]FixRecord, []validate.Defect) {
	logger := ctxlog.FromContext(ctx)

	records := make([]*FixRecord, len(defects))
	residual := make([]*validate.Defect, len(defects))

	groups := make(map[string][]int)
	for i, d := range defects {
		strategy, ok := e.strategies[d.Kind]
		if !ok || !d.AutoFixable || strategy == nil {
			residual[i] = &defects[i]
			continue
		}
		groups[e.mutationTarget(d)] = append(groups[e.mutationTarget(d)], i)
	}

	group, gctx := errgroup.WithContext(ctx)
	for _, indices := range groups {
		group.Go(func() error {
			for _, i := range indices {
				d := defects[i]
				rec, err := e.strategies[d.Kind](gctx, set, d)
				if err != nil {
					logger.Warn("Fix failed; defect kept as residual.",
						"kind", d.Kind, "artifact", d.Artifact, "error", err)
					residual[i] = &defects[i]
					continue
				}
				records[i] = rec
			}
			return nil
		})
	}
	_ = group.Wait()

	var fixes []FixRecord
	var remaining []validate.Defect
	for i := range defects {
		if records[i] != nil {
			fixes = append(fixes, *records[i])
		}
		if residual[i] != nil {
			remaining = append(remaining, *residual[i])
		}
	}
	return fixes, remaining
}

// mutationTarget names the artifact a fix will write to, which is not
// always the artifact carrying the defect: route/nav sync edits the
// opposite side of the mismatch.
func (e *Engine) mutationTarget(d validate.Defect) string {
	switch d.Kind {
	case validate.DanglingImport:
		return d.Target
	case validate.OrphanClass:
		return generate.StylesheetPathFor(d.Artifact)
	case validate.RouteNavMismatch:
		if d.Artifact == generate.NavbarPath(e.sel.Framework) {
			return generate.RouterPath(e.sel.Framework)
		}
		return generate.NavbarPath(e.sel.Framework)
	case validate.MissingDependency, validate.MalformedSyntax:
		return d.Artifact
	}
	return d.Artifact
}

// synthesizeStub creates the missing import target, plus its paired
// stylesheet when the target is markup. Paths that already exist are left
// untouched so repeated application stays idempotent.
func (e *Engine) synthesizeStub(ctx context.Context, set *artifact.Set, d validate.Defect) (*FixRecord, error) {
	logger := ctxlog.FromContext(ctx)
	var created []string
	for _, stub := range generate.Stubs(e.sel.Framework, d.Target) {
		if set.Has(stub.Path) {
			continue
		}
		if err := set.Add(stub); err != nil {
			return nil, fmt.Errorf("adding stub %s: %w", stub.Path, err)
		}
		created = append(created, stub.Path)
	}
	logger.Info("Synthesized stub for dangling import.", "target", d.Target, "created", created)
	return &FixRecord{
		Defect:          d,
		Strategy:        StrategySynthesizedStub,
		ResultArtifacts: created,
		Confidence:      ConfidenceStandIn,
	}, nil
}

// stubSelector appends a minimal rule for the orphan class to the paired
// stylesheet, creating the sheet first if it does not exist yet.
func (e *Engine) stubSelector(_ context.Context, set *artifact.Set, d validate.Defect) (*FixRecord, error) {
	sheetPath := generate.StylesheetPathFor(d.Artifact)
	if !set.Has(sheetPath) {
		for _, stub := range generate.Stubs(e.sel.Framework, sheetPath) {
			if !set.Has(stub.Path) {
				if err := set.Add(stub); err != nil {
					return nil, fmt.Errorf("adding stylesheet %s: %w", stub.Path, err)
				}
			}
		}
	}

	rule := fmt.Sprintf(".%s {\n  display: block;\n}\n", d.Target)
	err := set.Mutate(sheetPath, func(a *artifact.Artifact) error {
		if strings.Contains(a.Content, "."+d.Target+" {") {
			return nil
		}
		if a.Content != "" && !strings.HasSuffix(a.Content, "\n") {
			a.Content += "\n"
		}
		a.Content += "\n" + rule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &FixRecord{
		Defect:          d,
		Strategy:        StrategySelectorStub,
		ResultArtifacts: []string{sheetPath},
		Confidence:      ConfidenceStandIn,
	}, nil
}

// syncRouteNav reconciles the router and the navigation bar. A route
// without a nav entry gains one; a nav entry without a route gains a route
// line, importing the page the route points at.
func (e *Engine) syncRouteNav(_ context.Context, set *artifact.Set, d validate.Defect) (*FixRecord, error) {
	target := e.mutationTarget(d)
	err := set.Mutate(target, func(a *artifact.Artifact) error {
		if d.Artifact == generate.NavbarPath(e.sel.Framework) {
			return generate.InsertRoute(e.sel.Framework, a, d.Target)
		}
		return generate.InsertNavEntry(e.sel.Framework, a, d.Target)
	})
	if err != nil {
		return nil, err
	}
	return &FixRecord{
		Defect:          d,
		Strategy:        StrategyRouteNavSync,
		ResultArtifacts: []string{target},
		Confidence:      ConfidenceFull,
	}, nil
}

// pinDependency writes the missing or mis-versioned package into the
// dependency manifest at its pinned version.
func (e *Engine) pinDependency(_ context.Context, set *artifact.Set, d validate.Defect) (*FixRecord, error) {
	version, ok := manifest.PinnedVersion(e.sel.Framework, e.sel.SelectedFeatures, d.Target)
	if !ok {
		return nil, fmt.Errorf("no pinned version for package %q", d.Target)
	}
	err := set.Mutate(d.Artifact, func(a *artifact.Artifact) error {
		var doc map[string]any
		if err := json.Unmarshal([]byte(a.Content), &doc); err != nil {
			return fmt.Errorf("parsing %s: %w", a.Path, err)
		}
		deps, _ := doc["dependencies"].(map[string]any)
		if deps == nil {
			deps = make(map[string]any)
			doc["dependencies"] = deps
		}
		deps[d.Target] = version
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		a.Content = string(out) + "\n"
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &FixRecord{
		Defect:          d,
		Strategy:        StrategyPinnedDep,
		ResultArtifacts: []string{d.Artifact},
		Confidence:      ConfidenceFull,
	}, nil
}

var unquotedAttr = regexp.MustCompile("([A-Za-z][A-Za-z0-9:@._-]*)=([^\"'{`\\s/>][^\\s/>]*)")

// patchSyntax repairs shallow structural breakage. Markup gets its
// unquoted attribute values quoted and its unclosed template delimiters
// closed in place; an unparseable dependency manifest is rebuilt from the
// pinned dependency table.
func (e *Engine) patchSyntax(_ context.Context, set *artifact.Set, d validate.Defect) (*FixRecord, error) {
	confidence := ConfidenceFull
	err := set.Mutate(d.Artifact, func(a *artifact.Artifact) error {
		if a.Kind == artifact.KindConfig && strings.HasSuffix(a.Path, ".json") {
			confidence = ConfidenceStandIn
			rebuilt, err := e.rebuildDependencyManifest()
			if err != nil {
				return err
			}
			a.Content = rebuilt
			return nil
		}
		lines := strings.Split(a.Content, "\n")
		for i, line := range lines {
			if !strings.HasPrefix(strings.TrimSpace(line), "<") {
				continue
			}
			patched := unquotedAttr.ReplaceAllString(line, `$1="$2"`)
			// template expressions on generated markup lines open and
			// close on the same line
			if missing := strings.Count(patched, "{") - strings.Count(patched, "}"); missing > 0 {
				patched = closeDelimiters(patched, missing)
			}
			lines[i] = patched
		}
		a.Content = strings.Join(lines, "\n")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &FixRecord{
		Defect:          d,
		Strategy:        StrategySyntaxPatch,
		ResultArtifacts: []string{d.Artifact},
		Confidence:      confidence,
	}, nil
}

// closeDelimiters inserts the missing closing braces before the line's
// trailing closing tag, or at the end of the line when there is none.
func closeDelimiters(line string, missing int) string {
	closers := strings.Repeat("}", missing)
	if idx := strings.LastIndex(line, "</"); idx >= 0 {
		return line[:idx] + closers + line[idx:]
	}
	return line + closers
}

func (e *Engine) rebuildDependencyManifest() (string, error) {
	deps := manifest.DependenciesFor(e.sel.Framework, e.sel.SelectedFeatures)
	doc := map[string]any{
		"name":         e.sel.ProjectName,
		"private":      true,
		"version":      "0.0.0",
		"type":         "module",
		"dependencies": deps,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

// SortRecords orders fix records by strategy, then by defect artifact and
// target, for stable report output.
func SortRecords(records []FixRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Strategy != b.Strategy {
			return a.Strategy < b.Strategy
		}
		if a.Defect.Artifact != b.Defect.Artifact {
			return a.Defect.Artifact < b.Defect.Artifact
		}
		return a.Defect.Target < b.Defect.Target
	})
}
