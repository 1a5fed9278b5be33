package generate

import (
	"fmt"
	"strings"

	"github.com/vk/siteforge/internal/artifact"
)

// writer builds one artifact's content while recording every cross-artifact
// reference at the exact moment the referencing text is produced. Nothing
// downstream ever re-scans finished content to discover what it references;
// the declared list is authoritative.
type writer struct {
	art *artifact.Artifact
	sb  strings.Builder
}

func newWriter(path string, kind artifact.Kind) *writer {
	return &writer{art: &artifact.Artifact{Path: path, Kind: kind}}
}

// printf appends formatted text without recording any reference.
func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.sb, format, args...)
}

// importLine appends a full import statement line and records the declared
// import. The target may be a bare external package; the reference graph
// builder decides what is local.
func (w *writer) importLine(stmt, target string) {
	w.sb.WriteString(stmt)
	w.sb.WriteByte('\n')
	w.art.AddReference(artifact.RefImport, target)
}

// class records each class token and returns the space-joined attribute
// value for inline use in markup.
func (w *writer) class(names ...string) string {
	for _, n := range names {
		w.art.AddReference(artifact.RefClassBinding, n)
	}
	return strings.Join(names, " ")
}

// route records a registered route target; the caller writes the text.
func (w *writer) route(path string) {
	w.art.AddReference(artifact.RefRoute, path)
}

// navLink records a navigation entry target; the caller writes the text.
func (w *writer) navLink(path string) {
	w.art.AddReference(artifact.RefNavLink, path)
}

// done seals the content and returns the finished artifact.
func (w *writer) done() *artifact.Artifact {
	w.art.Content = w.sb.String()
	return w.art
}
