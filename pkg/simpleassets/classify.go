package simpleassets

import "strings"

// ClassifyPath maps an asset path to its kind. Rules are checked in
// order and the first match wins: ".css" or "/css?" means CSS, ".less"
// means LESS, ".js" or "/js" means JS. Anything else resolves to the
// fallback kind; a fallback outside the defined constants clamps to
// KindNone.
func ClassifyPath(path string, fallback Kind) Kind {
	switch {
	case strings.Contains(path, ".css") || strings.Contains(path, "/css?"):
		return KindCSS
	case strings.Contains(path, ".less"):
		return KindLESS
	case strings.Contains(path, ".js") || strings.Contains(path, "/js"):
		return KindJS
	default:
		return clampKind(fallback)
	}
}

// clampKind coerces out-of-range kinds to KindNone.
func clampKind(k Kind) Kind {
	switch k {
	case KindCSS, KindLESS, KindJS, KindNone:
		return k
	default:
		return KindNone
	}
}

// Classify maps a path to its kind using the registry's configured
// fallback for unrecognized extensions.
func (r *Registry) Classify(path string) Kind {
	return ClassifyPath(path, r.fallback)
}

// SetFallback sets the kind assigned to paths with unrecognized
// extensions. Values outside the defined constants clamp to KindNone.
func (r *Registry) SetFallback(k Kind) {
	r.fallback = clampKind(k)
}

// Fallback returns the configured unknown-extension kind.
func (r *Registry) Fallback() Kind {
	return r.fallback
}
