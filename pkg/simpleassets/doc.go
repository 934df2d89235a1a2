// Package simpleassets provides a reusable registry for web asset
// references (CSS, LESS, JavaScript files and inline snippets) with
// ordered rendering, pluggable URL construction, and cache busting.
//
// It exposes a single Registry type that classifies incoming paths,
// maintains insertion-ordered collections per asset kind and per named
// section, resolves version tokens (static manifest, generator hook, or
// wildcard lookup against an asset Source), and renders the collected
// state as HTML tags or raw path lists. Implementations of asset
// sources (memory, filesystem, S3) and version caches are provided
// under subpackages.
//
// Registry Ownership
//
// A Registry is an explicit instance owned by the host application, not
// a package-level singleton. It performs no internal locking: the host
// serializes mutations (typically one render cycle at a time) and calls
// Reset between independent usage scopes such as tests or application
// boots.
package simpleassets
