// Package deliver materializes an artifact set onto a filesystem.
//
// The assembler only knows how to write; it never inspects content. Billy
// filesystems keep it testable in memory and let the caller scope all
// writes to the project root via a chroot.
package deliver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/ctxlog"
)

// Assembler writes artifact sets to a target filesystem.
type Assembler struct {
	fs billy.Filesystem
}

// NewAssembler creates an assembler writing into the given filesystem. The
// filesystem's root is the project root.
func NewAssembler(fs billy.Filesystem) *Assembler {
	return &Assembler{fs: fs}
}

// Write persists every artifact in insertion order, creating parent
// directories as needed. Partially written output is left in place on
// error; the caller decides whether to clean up.
func (a *Assembler) Write(ctx context.Context, set *artifact.Set) error {
	logger := ctxlog.FromContext(ctx)

	for _, art := range set.All() {
		if dir := filepath.Dir(art.Path); dir != "." {
			if err := a.fs.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(a.fs, art.Path, []byte(art.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", art.Path, err)
		}
		logger.Debug("Artifact written.", "path", art.Path, "bytes", len(art.Content))
	}

	logger.Info("Project written.", "artifact_count", set.Len())
	return nil
}
