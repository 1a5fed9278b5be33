package artifact

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAdd(t *testing.T) {
	s := NewSet()

	require.NoError(t, s.Add(&Artifact{Path: "src/App.jsx", Kind: KindConfig}))
	require.NoError(t, s.Add(&Artifact{Path: "src/pages/Home.jsx", Kind: KindPage}))
	assert.Equal(t, 2, s.Len())

	err := s.Add(&Artifact{Path: "src/App.jsx", Kind: KindPage})
	assert.ErrorContains(t, err, "duplicate artifact path")
	assert.Equal(t, 2, s.Len())
}

func TestSetOrderIsInsertionOrder(t *testing.T) {
	s := NewSet()
	paths := []string{"package.json", "index.html", "src/App.jsx", "src/pages/Home.jsx"}
	for _, p := range paths {
		require.NoError(t, s.Add(&Artifact{Path: p}))
	}
	assert.Equal(t, paths, s.Paths())

	all := s.All()
	require.Len(t, all, len(paths))
	for i, p := range paths {
		assert.Equal(t, p, all[i].Path)
	}
}

func TestSetMutate(t *testing.T) {
	t.Run("mutates the live record", func(t *testing.T) {
		s := NewSet()
		require.NoError(t, s.Add(&Artifact{Path: "src/styles/Home.css", Kind: KindStylesheet, Content: ".hero {\n}\n"}))

		err := s.Mutate("src/styles/Home.css", func(a *Artifact) error {
			a.Content += ".hero-title {\n}\n"
			return nil
		})
		require.NoError(t, err)

		got, ok := s.Get("src/styles/Home.css")
		require.True(t, ok)
		assert.Contains(t, got.Content, ".hero-title")
	})

	t.Run("unknown path errors", func(t *testing.T) {
		s := NewSet()
		err := s.Mutate("missing.css", func(a *Artifact) error { return nil })
		assert.ErrorContains(t, err, "artifact not found")
	})

	t.Run("concurrent mutations of one path are serialized", func(t *testing.T) {
		s := NewSet()
		require.NoError(t, s.Add(&Artifact{Path: "package.json", Kind: KindConfig}))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = s.Mutate("package.json", func(a *Artifact) error {
					a.Content += fmt.Sprintf("%d\n", i)
					return nil
				})
			}(i)
		}
		wg.Wait()

		got, _ := s.Get("package.json")
		// Every write must have landed; interleaving order is free.
		assert.Len(t, splitLines(got.Content), 50)
	})
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

func TestReferences(t *testing.T) {
	a := &Artifact{Path: "src/pages/Home.jsx", Kind: KindPage}
	a.AddReference(RefImport, "../styles/Home.css")
	a.AddReference(RefClassBinding, "hero")
	a.AddReference(RefClassBinding, "hero-title")

	assert.Len(t, a.References(RefImport), 1)
	bindings := a.References(RefClassBinding)
	require.Len(t, bindings, 2)
	assert.Equal(t, "hero", bindings[0].Target)
}
