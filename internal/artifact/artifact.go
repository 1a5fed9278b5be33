// Package artifact defines the generated-file record and the concurrency-safe
// set that holds one generation run's output.
//
// An Artifact carries its own declared references: every import, route, nav
// entry and style-class usage is recorded by the writer at the exact moment
// the corresponding text is produced, never re-derived by re-scanning the
// finished content. The reference graph is therefore built from authoritative
// data, not from text searches.
package artifact

import "fmt"

// Kind classifies an artifact within the generated project.
type Kind string

const (
	KindPage       Kind = "page"
	KindComponent  Kind = "component"
	KindStylesheet Kind = "stylesheet"
	KindConfig     Kind = "config"
	KindAsset      Kind = "asset"
)

// RefKind classifies a declared cross-artifact reference.
type RefKind string

const (
	RefImport       RefKind = "import"
	RefRoute        RefKind = "route"
	RefNavLink      RefKind = "nav-link"
	RefClassBinding RefKind = "class-binding"
)

// Reference is a single declared cross-artifact reference, recorded at
// construction time by whoever wrote the referencing text.
type Reference struct {
	Target string
	Kind   RefKind
}

// Artifact is one generated file record. It is created by the generator and
// mutated only by the repair engine.
type Artifact struct {
	Path               string
	Kind               Kind
	Content            string
	DeclaredReferences []Reference
}

// New creates an artifact with no declared references yet.
func New(path string, kind Kind, content string) *Artifact {
	return &Artifact{Path: path, Kind: kind, Content: content}
}

// AddReference appends a declared reference to the artifact.
func (a *Artifact) AddReference(kind RefKind, target string) {
	a.DeclaredReferences = append(a.DeclaredReferences, Reference{Target: target, Kind: kind})
}

// References returns the declared references of the given kind, in
// declaration order.
func (a *Artifact) References(kind RefKind) []Reference {
	var out []Reference
	for _, ref := range a.DeclaredReferences {
		if ref.Kind == kind {
			out = append(out, ref)
		}
	}
	return out
}

// String implements fmt.Stringer for log output.
func (a *Artifact) String() string {
	return fmt.Sprintf("%s (%s, %d refs)", a.Path, a.Kind, len(a.DeclaredReferences))
}
