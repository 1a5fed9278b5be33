package artifact

import (
	"fmt"
	"sync"
)

// Set is the ordered collection of artifacts for one generation run.
// Paths are globally unique within the set. All operations are
// concurrency-safe; mutations to a single path are serialized via a
// per-path lock so that no two repairs race on the same file, while
// independent paths may be repaired concurrently.
type Set struct {
	// mutex protects the maps and the insertion order slice.
	mutex  sync.RWMutex
	order  []string
	byPath map[string]*Artifact
	locks  map[string]*sync.Mutex
}

// NewSet creates and returns an initialized, empty Set.
func NewSet() *Set {
	return &Set{
		byPath: make(map[string]*Artifact),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Add inserts a new artifact into the set. Adding a path that already
// exists is an error; path uniqueness is an invariant of the set.
func (s *Set) Add(a *Artifact) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.byPath[a.Path]; ok {
		return fmt.Errorf("duplicate artifact path: %s", a.Path)
	}
	s.byPath[a.Path] = a
	s.locks[a.Path] = &sync.Mutex{}
	s.order = append(s.order, a.Path)
	return nil
}

// Get returns the artifact at the given path, if present.
func (s *Set) Get(path string) (*Artifact, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	a, ok := s.byPath[path]
	return a, ok
}

// Has reports whether the set contains the given path.
func (s *Set) Has(path string) bool {
	_, ok := s.Get(path)
	return ok
}

// Len returns the number of artifacts in the set.
func (s *Set) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.byPath)
}

// Paths returns all artifact paths in insertion order.
func (s *Set) Paths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the artifacts in insertion order. The slice is fresh but the
// artifacts are the live records.
func (s *Set) All() []*Artifact {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]*Artifact, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, s.byPath[p])
	}
	return out
}

// Mutate applies fn to the artifact at path while holding that path's
// write lock. It returns an error if the path does not exist or if fn fails.
func (s *Set) Mutate(path string, fn func(*Artifact) error) error {
	s.mutex.RLock()
	a, ok := s.byPath[path]
	lock := s.locks[path]
	s.mutex.RUnlock()

	if !ok {
		return fmt.Errorf("artifact not found: %s", path)
	}
	lock.Lock()
	defer lock.Unlock()
	return fn(a)
}
