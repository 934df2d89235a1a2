package simpleassets

import (
	"context"
	"path"
	"strings"

	"github.com/maruel/natural"
)

// CheckVersion resolves a "*" wildcard in an asset path to the
// naturally greatest matching filename in its directory, so
// "js/app-*.min.js" picks app-10 over app-9. Paths without a wildcard
// are returned unchanged, as is the original path when nothing
// matches. Results are cached under the original path when a version
// cache is configured.
func (r *Registry) CheckVersion(ctx context.Context, asset string) string {
	if !strings.Contains(asset, "*") {
		return asset
	}

	key := r.versionKeyPrefix + asset
	resolved := asset

	cached := false
	if r.versionCaching && r.versionCache != nil && r.versionCache.Has(key) {
		if v, ok := r.versionCache.Get(key); ok {
			resolved = v
			cached = true
		}
	}

	if !cached {
		resolved = r.scanVersion(ctx, asset)
	}

	// A hit is written back too, refreshing the entry's TTL.
	if r.versionCaching && r.versionCache != nil {
		if putter, ok := r.versionCache.(VersionCachePutter); ok {
			putter.Put(key, resolved, r.versionTTL)
		}
	}

	return resolved
}

// scanVersion lists the wildcard's directory and picks the naturally
// greatest glob match. A missing directory or listing failure counts
// as zero matches and keeps the wildcard string.
func (r *Registry) scanVersion(ctx context.Context, asset string) string {
	if r.source == nil {
		r.log().Debug("wildcard resolution skipped", "path", asset, "reason", ErrSourceNotConfigured)
		return asset
	}

	dir := path.Dir(asset)
	pattern := path.Base(asset)

	entries, err := r.source.List(ctx, dir)
	if err != nil {
		r.log().Debug("wildcard directory listing failed", "dir", dir, "error", err)
		return asset
	}

	var best string
	for _, name := range entries {
		ok, err := path.Match(pattern, name)
		if err != nil || !ok {
			continue
		}
		if best == "" || natural.Less(best, name) {
			best = name
		}
	}
	if best == "" {
		return asset
	}
	return path.Join(dir, best)
}
