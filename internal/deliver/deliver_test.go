package deliver

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/siteforge/internal/artifact"
)

func TestWriteMaterializesArtifacts(t *testing.T) {
	set := artifact.NewSet()
	require.NoError(t, set.Add(artifact.New("package.json", artifact.KindConfig, "{}\n")))
	require.NoError(t, set.Add(artifact.New("src/pages/Home.jsx", artifact.KindPage, "export default null;\n")))
	require.NoError(t, set.Add(artifact.New("src/styles/Home.css", artifact.KindStylesheet, ".page {}\n")))

	fs := memfs.New()
	require.NoError(t, NewAssembler(fs).Write(context.Background(), set))

	for _, p := range set.Paths() {
		a, _ := set.Get(p)
		data, err := util.ReadFile(fs, p)
		require.NoError(t, err, p)
		assert.Equal(t, a.Content, string(data), p)
	}
}

func TestWriteEmptySet(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, NewAssembler(fs).Write(context.Background(), artifact.NewSet()))

	entries, err := fs.ReadDir("/")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteOverwritesExistingFiles(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "package.json", []byte("old"), 0o644))

	set := artifact.NewSet()
	require.NoError(t, set.Add(artifact.New("package.json", artifact.KindConfig, "new\n")))
	require.NoError(t, NewAssembler(fs).Write(context.Background(), set))

	data, err := util.ReadFile(fs, "package.json")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}
