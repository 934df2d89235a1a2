// Package urlstrategy provides ready-made URL generator hooks for the
// asset registry, installable via simpleassets.WithURLFunc or
// (*simpleassets.Registry).SetURLFunc.
package urlstrategy

import (
	"strings"

	"github.com/tendant/simple-assets/pkg/simpleassets"
)

// CDN returns a URL generator that joins relative asset paths onto a
// CDN base. A scheme-less base (e.g. "cdn.example.com") gets http or
// https depending on the secure flag; bases carrying a scheme are used
// as given.
func CDN(baseURL string) simpleassets.URLFunc {
	base := strings.TrimSuffix(baseURL, "/")
	return func(path string, secure bool) string {
		b := base
		if b != "" && !strings.Contains(b, "://") && !strings.HasPrefix(b, "//") {
			if secure {
				b = "https://" + b
			} else {
				b = "http://" + b
			}
		}
		return b + "/" + strings.TrimLeft(path, "/")
	}
}

// StaticPrefix returns a URL generator that prepends a fixed prefix to
// every asset path, ignoring the secure flag.
func StaticPrefix(prefix string) simpleassets.URLFunc {
	p := strings.TrimSuffix(prefix, "/")
	return func(path string, secure bool) string {
		return p + "/" + strings.TrimLeft(path, "/")
	}
}
