package simpleassets

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrFileNotFound indicates a source file was not found
	ErrFileNotFound = errors.New("file not found")

	// ErrDirNotFound indicates a source directory was not found
	ErrDirNotFound = errors.New("directory not found")

	// ErrSourceNotConfigured indicates an operation needed an asset
	// source but none was configured
	ErrSourceNotConfigured = errors.New("asset source not configured")
)

// SourceError represents an error related to asset source operations
type SourceError struct {
	Source string
	Path   string
	Op     string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source operation %s failed for path %s on source %s: %v", e.Op, e.Path, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
