package simpleassets

import (
	"log/slog"
	"time"
)

// Registry collects asset references and renders them as HTML tags or
// raw path lists. All state is in-memory and mutated only through the
// public operations; the registry performs no internal locking (see
// package doc).
type Registry struct {
	domain         string
	prefix         string
	secure         bool
	fallback       Kind
	shorthandReady bool

	css  *Collection
	less *Collection

	js      map[string]*Collection
	jsOrder []string
	jsAttrs map[string]map[string]ScriptAttrs

	styles  *snippetStore
	scripts *snippetStore

	busters    map[string]string
	busterFunc CacheBusterFunc

	urlFunc URLFunc

	env         string
	envResolved bool
	envFunc     EnvFunc

	source           Source
	versionCache     VersionCache
	versionCaching   bool
	versionTTL       time.Duration
	versionKeyPrefix string

	logger *slog.Logger

	opts []Option
}

// Option represents a functional option for configuring the registry
type Option func(*Registry)

// WithDomain sets the domain prepended to relative asset paths
func WithDomain(domain string) Option {
	return func(r *Registry) {
		r.domain = domain
	}
}

// WithPrefix sets the string prepended to every rendered tag line
func WithPrefix(prefix string) Option {
	return func(r *Registry) {
		r.prefix = prefix
	}
}

// WithSecure sets the secure flag passed to the URL generator hook
func WithSecure(secure bool) Option {
	return func(r *Registry) {
		r.secure = secure
	}
}

// WithFallback sets the kind assigned to unrecognized extensions.
// Out-of-range values clamp to KindNone.
func WithFallback(k Kind) Option {
	return func(r *Registry) {
		r.fallback = clampKind(k)
	}
}

// WithShorthandReady selects the $(function(){...}) form for the
// DOM-ready wrapper instead of $(document).ready(function(){...}).
func WithShorthandReady(enabled bool) Option {
	return func(r *Registry) {
		r.shorthandReady = enabled
	}
}

// WithSource sets the asset source used for manifest reads and
// wildcard resolution
func WithSource(src Source) Option {
	return func(r *Registry) {
		r.source = src
	}
}

// WithVersionCache installs the wildcard-resolution cache and enables
// version caching
func WithVersionCache(c VersionCache) Option {
	return func(r *Registry) {
		r.versionCache = c
		r.versionCaching = c != nil
	}
}

// WithVersionTTL sets how long resolved wildcard paths stay cached
func WithVersionTTL(d time.Duration) Option {
	return func(r *Registry) {
		r.versionTTL = d
	}
}

// WithVersionKeyPrefix sets the namespace prepended to version cache
// keys
func WithVersionKeyPrefix(prefix string) Option {
	return func(r *Registry) {
		r.versionKeyPrefix = prefix
	}
}

// WithCacheBusterFunc installs the cache-buster generator hook. It
// takes precedence over the manifest table.
func WithCacheBusterFunc(fn CacheBusterFunc) Option {
	return func(r *Registry) {
		r.busterFunc = fn
	}
}

// WithURLFunc installs the URL generator hook used instead of domain
// joining
func WithURLFunc(fn URLFunc) Option {
	return func(r *Registry) {
		r.urlFunc = fn
	}
}

// WithEnvFunc installs the environment resolver hook
func WithEnvFunc(fn EnvFunc) Option {
	return func(r *Registry) {
		r.envFunc = fn
	}
}

// WithEnvironment pins the environment label, skipping lazy resolution
func WithEnvironment(label string) Option {
	return func(r *Registry) {
		r.env = label
		r.envResolved = true
	}
}

// WithLogger sets the logger used for absorbed failures. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a registry with the given options applied on top of the
// default state.
func New(opts ...Option) *Registry {
	r := &Registry{opts: opts}
	r.reset()
	return r
}

// Reset restores the freshly constructed state, reapplying the
// construction-time options. Call it between independent usage scopes.
func (r *Registry) Reset() {
	r.reset()
}

func (r *Registry) reset() {
	r.domain = "/"
	r.prefix = ""
	r.secure = false
	r.fallback = KindNone
	r.shorthandReady = false
	r.css = NewCollection()
	r.less = NewCollection()
	r.js = make(map[string]*Collection)
	r.jsOrder = nil
	r.jsAttrs = make(map[string]map[string]ScriptAttrs)
	r.styles = newSnippetStore()
	r.scripts = newSnippetStore()
	r.busters = make(map[string]string)
	r.busterFunc = nil
	r.urlFunc = nil
	r.env = ""
	r.envResolved = false
	r.envFunc = nil
	r.source = nil
	r.versionCache = nil
	r.versionCaching = false
	r.versionTTL = time.Hour
	r.versionKeyPrefix = "assets:"
	r.logger = nil

	for _, opt := range r.opts {
		opt(r)
	}
}

// Add classifies path and stores it in the matching collection: CSS
// and LESS paths append to their collections, JS paths append to the
// footer section. A "none" classification is silently dropped.
func (r *Registry) Add(path string) {
	switch r.Classify(path) {
	case KindCSS:
		r.AddCSS(path)
	case KindLESS:
		r.AddLESS(path)
	case KindJS:
		r.AddScript(path)
	}
}

// AddCSS appends a stylesheet path. Re-adding keeps the original
// position.
func (r *Registry) AddCSS(path string) {
	r.css.Add(path)
}

// InsertCSSBefore positions path immediately before anchor in the CSS
// collection, appending when anchor is absent.
func (r *Registry) InsertCSSBefore(path, anchor string) {
	r.css.InsertBefore(path, anchor)
}

// InsertCSSAfter positions path immediately after anchor in the CSS
// collection, appending when anchor is absent.
func (r *Registry) InsertCSSAfter(path, anchor string) {
	r.css.InsertAfter(path, anchor)
}

// AddLESS appends a LESS stylesheet path. Re-adding keeps the original
// position.
func (r *Registry) AddLESS(path string) {
	r.less.Add(path)
}

// InsertLESSBefore positions path immediately before anchor in the
// LESS collection, appending when anchor is absent.
func (r *Registry) InsertLESSBefore(path, anchor string) {
	r.less.InsertBefore(path, anchor)
}

// InsertLESSAfter positions path immediately after anchor in the LESS
// collection, appending when anchor is absent.
func (r *Registry) InsertLESSAfter(path, anchor string) {
	r.less.InsertAfter(path, anchor)
}

// CSS returns the stylesheet paths in display order.
func (r *Registry) CSS() []string {
	return r.css.Keys()
}

// LESS returns the LESS stylesheet paths in display order.
func (r *Registry) LESS() []string {
	return r.less.Keys()
}

// SetDomain replaces the domain prepended to relative asset paths.
func (r *Registry) SetDomain(domain string) {
	r.domain = domain
}

// Domain returns the currently configured domain.
func (r *Registry) Domain() string {
	return r.domain
}

// Prefix returns the string prepended to every rendered tag line.
func (r *Registry) Prefix() string {
	return r.prefix
}

// Secure reports whether generated URLs should prefer https.
func (r *Registry) Secure() bool {
	return r.secure
}

// SetURLFunc installs or clears (nil) the URL generator hook.
func (r *Registry) SetURLFunc(fn URLFunc) {
	r.urlFunc = fn
}

// SetEnvFunc installs or clears (nil) the environment resolver hook.
func (r *Registry) SetEnvFunc(fn EnvFunc) {
	r.envFunc = fn
}

// SetVersionCache installs or clears (nil) the wildcard-resolution
// cache, enabling or disabling version caching with it.
func (r *Registry) SetVersionCache(c VersionCache) {
	r.versionCache = c
	r.versionCaching = c != nil
}

// SetSource replaces the asset source.
func (r *Registry) SetSource(src Source) {
	r.source = src
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}
