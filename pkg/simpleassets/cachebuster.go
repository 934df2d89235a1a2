package simpleassets

import (
	"context"
	"encoding/json"
	"errors"
)

// LoadManifest reads a cache-buster manifest (a JSON object mapping
// asset paths to version tokens) through the configured source. A
// missing file leaves the current table untouched; an unreadable or
// invalid file empties it; a valid object replaces it, filtered to
// string values only. Failures are absorbed and logged, never
// returned; callers observe degraded output instead.
func (r *Registry) LoadManifest(ctx context.Context, path string) {
	if r.source == nil {
		r.log().Warn("cache buster manifest skipped", "path", path, "reason", ErrSourceNotConfigured)
		return
	}
	data, err := r.source.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			r.log().Debug("cache buster manifest not found", "path", path)
			return
		}
		r.busters = make(map[string]string)
		r.log().Warn("cache buster manifest unreadable", "path", path, "error", err)
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		r.busters = make(map[string]string)
		r.log().Warn("cache buster manifest invalid", "path", path, "error", err)
		return
	}

	table := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			table[k] = s
		}
	}
	r.busters = table
}

// SetCacheBusterFunc installs or clears (nil) the cache-buster
// generator hook. The hook takes precedence over the manifest table.
func (r *Registry) SetCacheBusterFunc(fn CacheBusterFunc) {
	r.busterFunc = fn
}

// CacheBusters returns a copy of the manifest table.
func (r *Registry) CacheBusters() map[string]string {
	out := make(map[string]string, len(r.busters))
	for k, v := range r.busters {
		out[k] = v
	}
	return out
}

// bust appends the version token for path as a query string. The
// generator hook wins over the manifest table; an empty token leaves
// the path unchanged.
func (r *Registry) bust(path string) string {
	var token string
	if r.busterFunc != nil {
		token = r.busterFunc(path)
	} else {
		token = r.busters[path]
	}
	if token == "" {
		return path
	}
	return path + "?" + token
}
