package simpleassets

import (
	"context"
	"time"
)

// Source defines the interface for asset file access. The registry
// reads version manifests and lists directories for wildcard
// resolution through it; it never writes.
type Source interface {
	// List returns the entry names (not full paths) of a directory.
	// A missing directory is reported by wrapping ErrDirNotFound.
	List(ctx context.Context, dir string) ([]string, error)

	// ReadFile returns the contents of a file. A missing file is
	// reported by wrapping ErrFileNotFound.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// VersionCache is the read side of the wildcard-resolution cache.
type VersionCache interface {
	// Has reports whether a resolved path is cached under key.
	Has(key string) bool

	// Get returns the cached resolved path for key.
	Get(key string) (string, bool)
}

// VersionCachePutter is the optional write capability of a
// VersionCache. Implementations without it simply skip the store step.
type VersionCachePutter interface {
	// Put stores a resolved path under key for the given TTL.
	Put(key, value string, ttl time.Duration)
}
