// Package validate inspects a generated artifact set and its reference
// graph and reports every internal inconsistency as a typed defect.
//
// Validation never mutates anything. The checks run in a fixed order and
// walk artifacts and edges in deterministic order, so the same input always
// yields the same defect list.
package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/generate"
	"github.com/vk/siteforge/internal/manifest"
	"github.com/vk/siteforge/internal/refgraph"
	"github.com/vk/siteforge/internal/request"
)

// DefectKind classifies an inconsistency found in the artifact set.
type DefectKind string

const (
	// DanglingImport is a local import whose target artifact does not exist.
	DanglingImport DefectKind = "dangling-import"
	// OrphanClass is a bound style class that no paired stylesheet defines.
	OrphanClass DefectKind = "orphan-class"
	// RouteNavMismatch is a route without a nav entry, or the reverse.
	RouteNavMismatch DefectKind = "route-nav-mismatch"
	// MissingDependency is a pinned package absent from, or mis-versioned
	// in, the dependency manifest.
	MissingDependency DefectKind = "missing-dependency"
	// MalformedSyntax is structurally broken artifact content.
	MalformedSyntax DefectKind = "malformed-syntax"
	// RepairDiverged marks a run whose repair loop hit its iteration bound
	// without reaching a clean state. It is reported, never fixed.
	RepairDiverged DefectKind = "repair-diverged"
)

// autoFixable is the static repairability table. Whether a defect can be
// repaired depends only on its kind.
var autoFixable = map[DefectKind]bool{
	DanglingImport:    true,
	OrphanClass:       true,
	RouteNavMismatch:  true,
	MissingDependency: true,
	MalformedSyntax:   true,
	RepairDiverged:    false,
}

// Defect is one detected inconsistency, tied to the artifact carrying it.
type Defect struct {
	Kind        DefectKind
	Artifact    string
	Target      string
	Detail      string
	AutoFixable bool
}

func (d Defect) String() string {
	return fmt.Sprintf("%s in %s: %s", d.Kind, d.Artifact, d.Detail)
}

// Checker validates one selection's artifact set. It needs the selection to
// know which dependency pins the manifest must carry.
type Checker struct {
	sel *request.FeatureSelection
}

func New(sel *request.FeatureSelection) *Checker {
	return &Checker{sel: sel}
}

// Check runs every detection pass over the set and graph and returns all
// defects found, in check order.
func (c *Checker) Check(set *artifact.Set, edges []refgraph.Edge) []Defect {
	var defects []Defect
	defects = append(defects, danglingImports(edges)...)
	defects = append(defects, orphanClasses(edges)...)
	defects = append(defects, routeNavMismatches(edges)...)
	defects = append(defects, c.missingDependencies(set)...)
	defects = append(defects, malformedSyntax(set)...)
	return defects
}

func newDefect(kind DefectKind, artifactPath, target, detail string) Defect {
	return Defect{
		Kind:        kind,
		Artifact:    artifactPath,
		Target:      target,
		Detail:      detail,
		AutoFixable: autoFixable[kind],
	}
}

func danglingImports(edges []refgraph.Edge) []Defect {
	var out []Defect
	for _, e := range edges {
		if e.Kind == artifact.RefImport && !e.Resolved {
			out = append(out, newDefect(DanglingImport, e.From, e.To,
				fmt.Sprintf("import of %q has no target artifact", e.To)))
		}
	}
	return out
}

func orphanClasses(edges []refgraph.Edge) []Defect {
	var out []Defect
	for _, e := range edges {
		if e.Kind != artifact.RefClassBinding || e.Resolved {
			continue
		}
		if e.To == "" {
			// No paired stylesheet at all; the missing sheet surfaces as a
			// dangling import, the class itself is not separately fixable.
			continue
		}
		out = append(out, newDefect(OrphanClass, e.From, e.Class,
			fmt.Sprintf("class %q is not defined in %s", e.Class, e.To)))
	}
	return out
}

func routeNavMismatches(edges []refgraph.Edge) []Defect {
	var out []Defect
	for _, e := range edges {
		if e.Resolved {
			continue
		}
		switch e.Kind {
		case artifact.RefRoute:
			out = append(out, newDefect(RouteNavMismatch, e.From, e.To,
				fmt.Sprintf("route %q has no navigation entry", e.To)))
		case artifact.RefNavLink:
			out = append(out, newDefect(RouteNavMismatch, e.From, e.To,
				fmt.Sprintf("navigation entry %q has no route", e.To)))
		}
	}
	return out
}

// missingDependencies checks the dependency manifest against the pins the
// selection demands. A present package with the wrong version counts as
// missing: the pin is exact.
func (c *Checker) missingDependencies(set *artifact.Set) []Defect {
	pkg, ok := set.Get(generate.DependencyManifestPath)
	if !ok {
		return []Defect{newDefect(MissingDependency, generate.DependencyManifestPath, "",
			"dependency manifest artifact is missing")}
	}

	var parsed struct {
		Dependencies map[string]string `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(pkg.Content), &parsed); err != nil {
		// Unreadable manifest content is a syntax problem, reported by the
		// syntax pass against the same artifact.
		return nil
	}

	required := manifest.DependenciesFor(c.sel.Framework, c.sel.SelectedFeatures)
	var out []Defect
	for _, name := range sortedKeys(required) {
		want := required[name]
		got, present := parsed.Dependencies[name]
		if !present {
			out = append(out, newDefect(MissingDependency, pkg.Path, name,
				fmt.Sprintf("package %q (pinned %s) is not declared", name, want)))
			continue
		}
		if !sameVersion(got, want) {
			out = append(out, newDefect(MissingDependency, pkg.Path, name,
				fmt.Sprintf("package %q is pinned to %s but declared as %s", name, want, got)))
		}
	}
	return out
}

func sameVersion(got, want string) bool {
	gv, err := semver.NewVersion(got)
	if err != nil {
		return false
	}
	wv, err := semver.NewVersion(want)
	if err != nil {
		return false
	}
	return gv.Equal(wv)
}

// attrValue matches one markup attribute assignment and captures the first
// character of its value, if any.
var attrValue = regexp.MustCompile(`(?:^|[\s<])[A-Za-z][A-Za-z0-9:@._-]*=(.?)`)

// malformedSyntax runs shallow structural checks: config JSON must parse,
// markup attribute values must open with a quote, backtick or brace, and
// template expression delimiters must balance across the artifact.
// Generated content is line-oriented, so a line scan is sufficient.
func malformedSyntax(set *artifact.Set) []Defect {
	var out []Defect
	for _, a := range set.All() {
		switch {
		case a.Kind == artifact.KindConfig && strings.HasSuffix(a.Path, ".json"):
			if !json.Valid([]byte(a.Content)) {
				out = append(out, newDefect(MalformedSyntax, a.Path, a.Path,
					"content is not valid JSON"))
			}
		case a.Kind == artifact.KindPage || a.Kind == artifact.KindComponent:
			out = append(out, malformedMarkup(a)...)
		}
	}
	return out
}

func malformedMarkup(a *artifact.Artifact) []Defect {
	var out []Defect
	opens, closes := 0, 0
	for i, line := range strings.Split(a.Content, "\n") {
		opens += strings.Count(line, "{")
		closes += strings.Count(line, "}")
		if !strings.HasPrefix(strings.TrimSpace(line), "<") {
			continue
		}
		for _, m := range attrValue.FindAllStringSubmatch(line, -1) {
			opener := m[1]
			switch opener {
			case `"`, "'", "`", "{":
				continue
			}
			out = append(out, newDefect(MalformedSyntax, a.Path,
				fmt.Sprintf("%s:%d", a.Path, i+1),
				fmt.Sprintf("line %d: unquoted attribute value", i+1)))
			break
		}
	}
	if opens != closes {
		out = append(out, newDefect(MalformedSyntax, a.Path, a.Path,
			fmt.Sprintf("unbalanced template delimiters: %d opening, %d closing", opens, closes)))
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
