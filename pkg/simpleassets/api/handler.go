package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-assets/pkg/simpleassets"
)

// AssetHandler serves rendered markup and state snapshots from a registry.
//
// The registry is single-writer: handlers only read it, so registration must
// finish before the handler starts serving (or be guarded externally).
type AssetHandler struct {
	registry *simpleassets.Registry
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(registry *simpleassets.Registry) *AssetHandler {
	return &AssetHandler{registry: registry}
}

// Routes returns the routes for rendered assets
func (h *AssetHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/css", h.GetCSS)
	r.Get("/less", h.GetLESS)
	r.Get("/js", h.GetJS)
	r.Get("/js/{section}", h.GetJS)
	r.Get("/styles", h.GetInlineStyles)
	r.Get("/scripts", h.GetInlineScripts)
	r.Get("/state", h.GetState)

	return r
}

// StateResponse is the response body for the registry state summary
type StateResponse struct {
	Environment    string              `json:"environment"`
	Domain         string              `json:"domain"`
	Secure         bool                `json:"secure"`
	Fallback       string              `json:"fallback"`
	CSS            []string            `json:"css"`
	LESS           []string            `json:"less"`
	Scripts        map[string][]string `json:"scripts"`
	SectionOrder   []string            `json:"section_order"`
	StyleSections  []string            `json:"style_sections"`
	ScriptSections []string            `json:"script_sections"`
	CacheBusters   map[string]string   `json:"cache_busters,omitempty"`
}

// GetCSS returns the rendered stylesheet link tags
func (h *AssetHandler) GetCSS(w http.ResponseWriter, r *http.Request) {
	render.HTML(w, r, h.registry.RenderCSS())
}

// GetLESS returns the rendered LESS link tags
func (h *AssetHandler) GetLESS(w http.ResponseWriter, r *http.Request) {
	render.HTML(w, r, h.registry.RenderLESS())
}

// GetJS returns the rendered script tags for a section.
// Without a section URL parameter the default section is rendered.
func (h *AssetHandler) GetJS(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	render.HTML(w, r, h.registry.RenderJS(section))
}

// GetInlineStyles returns inline style blocks.
// Query parameters:
//   - section: render only the named block (default: all blocks)
func (h *AssetHandler) GetInlineStyles(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	render.HTML(w, r, h.registry.RenderInlineStyles(section))
}

// GetInlineScripts returns inline script blocks.
// Query parameters:
//   - section: render only the named block (default: all blocks)
func (h *AssetHandler) GetInlineScripts(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	render.HTML(w, r, h.registry.RenderInlineScripts(section))
}

// GetState returns a JSON summary of everything the registry holds
func (h *AssetHandler) GetState(w http.ResponseWriter, r *http.Request) {
	reg := h.registry

	scripts := make(map[string][]string)
	for _, section := range reg.Sections() {
		scripts[section] = reg.Scripts(section)
	}

	resp := StateResponse{
		Environment:    reg.Environment(),
		Domain:         reg.Domain(),
		Secure:         reg.Secure(),
		Fallback:       string(reg.Fallback()),
		CSS:            reg.CSS(),
		LESS:           reg.LESS(),
		Scripts:        scripts,
		SectionOrder:   reg.Sections(),
		StyleSections:  reg.StyleSections(),
		ScriptSections: reg.ScriptSections(),
		CacheBusters:   reg.CacheBusters(),
	}

	slog.Debug("Registry state retrieved",
		"css", len(resp.CSS), "less", len(resp.LESS), "sections", len(resp.SectionOrder))
	render.JSON(w, r, resp)
}
