package simpleassets

// Kind is the domain type for asset classification results.
type Kind string

// Asset kind constants (typed).
const (
	KindCSS  Kind = "css"
	KindLESS Kind = "less"
	KindJS   Kind = "js"
	KindNone Kind = "none"
)

// Section name constants for script and snippet grouping.
const (
	SectionHeader = "header"
	SectionFooter = "footer"

	// SectionReady is reserved for inline scripts rendered inside a
	// DOM-ready wrapper.
	SectionReady = "ready"
)

// Environment label constants.
const (
	EnvProduction = "production"

	// EnvLocal forces the domain back to "/" once the environment
	// resolves to it.
	EnvLocal = "local"
)

// ScriptAttrs holds the per-script tag attributes read by the renderer.
// An empty string means the attribute is omitted from the rendered tag.
type ScriptAttrs struct {
	Type  string `json:"type,omitempty"`
	Defer string `json:"defer,omitempty"`
	Async string `json:"async,omitempty"`
}

// CacheBusterFunc resolves a version token for an asset path. An empty
// result means "no token"; a non-empty result is appended as ?token.
type CacheBusterFunc func(path string) string

// URLFunc builds the final URL for a relative asset path. The secure
// flag mirrors the registry configuration.
type URLFunc func(path string, secure bool) string

// EnvFunc reports the environment label the registry runs in.
type EnvFunc func() string
