package simpleassets

import "strings"

// BuildURL returns the final URL for an asset path. Absolute URLs
// (http://, https://, protocol-relative //) pass through untouched,
// skipping cache busting and domain joining. Relative paths get the
// cache-buster token appended, then either the URL generator hook or
// domain joining produces the result.
//
// Renderers resolve the environment before building URLs; BuildURL
// alone does not trigger resolution.
func (r *Registry) BuildURL(asset string) string {
	if IsAbsoluteURL(asset) {
		return asset
	}
	busted := r.bust(asset)
	if r.urlFunc != nil {
		return r.urlFunc(busted, r.secure)
	}
	return strings.TrimRight(r.domain, "/") + "/" + strings.TrimLeft(busted, "/")
}

// IsAbsoluteURL reports whether path starts with http://, https://, or
// the protocol-relative //. Scheme matching is case-insensitive.
func IsAbsoluteURL(path string) bool {
	if strings.HasPrefix(path, "//") {
		return true
	}
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
