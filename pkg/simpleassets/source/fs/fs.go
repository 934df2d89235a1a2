package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tendant/simple-assets/pkg/simpleassets"
)

// Source is a filesystem implementation of the simpleassets.Source
// interface, rooted at a base directory (typically the public web
// root).
type Source struct {
	baseDir string
}

// Config options for the filesystem source
type Config struct {
	BaseDir string // Base directory the asset paths resolve against
}

// New creates a new filesystem asset source.
func New(config Config) (*Source, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	info, err := os.Stat(config.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base directory %s is not a directory", config.BaseDir)
	}

	return &Source{baseDir: config.BaseDir}, nil
}

// List returns the regular-file names directly under dir.
func (s *Source) List(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, filepath.FromSlash(dir)))
	if err != nil {
		wrapped := err
		if os.IsNotExist(err) {
			wrapped = simpleassets.ErrDirNotFound
		}
		return nil, &simpleassets.SourceError{
			Source: "fs",
			Path:   dir,
			Op:     "list",
			Err:    wrapped,
		}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// ReadFile returns the contents of a file under the base directory.
func (s *Source) ReadFile(ctx context.Context, p string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.FromSlash(p)))
	if err != nil {
		wrapped := err
		if os.IsNotExist(err) {
			wrapped = simpleassets.ErrFileNotFound
		}
		return nil, &simpleassets.SourceError{
			Source: "fs",
			Path:   p,
			Op:     "read",
			Err:    wrapped,
		}
	}
	return data, nil
}
