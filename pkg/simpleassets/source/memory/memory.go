package memory

import (
	"context"
	"path"
	"sort"
	"sync"

	"github.com/tendant/simple-assets/pkg/simpleassets"
)

// Source is an in-memory implementation of the simpleassets.Source
// interface, useful for tests and embedded fixtures.
type Source struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates an empty in-memory asset source.
func New() *Source {
	return &Source{
		files: make(map[string][]byte),
	}
}

// NewWithFiles creates an in-memory asset source seeded with the given
// path to contents mapping.
func NewWithFiles(files map[string][]byte) *Source {
	s := New()
	for p, data := range files {
		s.Put(p, data)
	}
	return s
}

// Put stores a file under a slash-separated path.
func (s *Source) Put(p string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[path.Clean(p)] = buf
}

// List returns the sorted file names directly under dir.
func (s *Source) List(ctx context.Context, dir string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir = path.Clean(dir)
	var names []string
	for p := range s.files {
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	if len(names) == 0 {
		return nil, &simpleassets.SourceError{
			Source: "memory",
			Path:   dir,
			Op:     "list",
			Err:    simpleassets.ErrDirNotFound,
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadFile returns the contents of a file.
func (s *Source) ReadFile(ctx context.Context, p string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[path.Clean(p)]
	if !ok {
		return nil, &simpleassets.SourceError{
			Source: "memory",
			Path:   p,
			Op:     "read",
			Err:    simpleassets.ErrFileNotFound,
		}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}
