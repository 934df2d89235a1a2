package simpleassets

// scriptParams carries the target section and attribute updates for a
// script mutation. Pointer fields distinguish "set to empty" from "not
// provided".
type scriptParams struct {
	section   string
	typeAttr  *string
	deferAttr *string
	asyncAttr *string
}

// ScriptOption represents a functional option for script mutations
type ScriptOption func(*scriptParams)

// InSection targets the named section. An empty name targets the
// footer.
func InSection(name string) ScriptOption {
	return func(p *scriptParams) {
		p.section = name
	}
}

// WithType sets the script tag's type attribute. An empty value clears
// a previously stored one; omitting the option preserves it.
func WithType(t string) ScriptOption {
	return func(p *scriptParams) {
		p.typeAttr = &t
	}
}

// WithDefer sets the script tag's defer attribute. An empty value
// clears a previously stored one; omitting the option preserves it.
func WithDefer(d string) ScriptOption {
	return func(p *scriptParams) {
		p.deferAttr = &d
	}
}

// WithAsync sets the script tag's async attribute. An empty value
// clears a previously stored one; omitting the option preserves it.
func WithAsync(a string) ScriptOption {
	return func(p *scriptParams) {
		p.asyncAttr = &a
	}
}

func newScriptParams(opts []ScriptOption) scriptParams {
	p := scriptParams{section: SectionFooter}
	for _, opt := range opts {
		opt(&p)
	}
	if p.section == "" {
		p.section = SectionFooter
	}
	return p
}

// AddScript appends a script path to a section (footer by default).
// The path is first purged from every section, so a script lives in at
// most one section and re-adding moves it to the end of the target.
// An empty path is a purge-only call.
func (r *Registry) AddScript(path string, opts ...ScriptOption) {
	p := newScriptParams(opts)
	r.purgeScript(path)
	if path == "" {
		return
	}
	r.sectionCollection(p.section).Add(path)
	r.mergeScriptAttrs(p.section, path, p)
}

// InsertScriptBefore positions path immediately before anchor in a
// section (footer by default), appending when anchor is absent. The
// path is first purged from every section.
func (r *Registry) InsertScriptBefore(path, anchor string, opts ...ScriptOption) {
	p := newScriptParams(opts)
	r.purgeScript(path)
	r.sectionCollection(p.section).InsertBefore(path, anchor)
	r.mergeScriptAttrs(p.section, path, p)
}

// InsertScriptAfter positions path immediately after anchor in a
// section (footer by default), appending when anchor is absent. The
// path is first purged from every section.
func (r *Registry) InsertScriptAfter(path, anchor string, opts ...ScriptOption) {
	p := newScriptParams(opts)
	r.purgeScript(path)
	r.sectionCollection(p.section).InsertAfter(path, anchor)
	r.mergeScriptAttrs(p.section, path, p)
}

// Scripts returns the script paths of a section in display order. An
// empty name means the footer section.
func (r *Registry) Scripts(section string) []string {
	if section == "" {
		section = SectionFooter
	}
	c, ok := r.js[section]
	if !ok {
		return nil
	}
	return c.Keys()
}

// Sections returns the JS section names in first-use order. Emptied
// sections are dropped, so every listed section has entries.
func (r *Registry) Sections() []string {
	out := make([]string, len(r.jsOrder))
	copy(out, r.jsOrder)
	return out
}

// ScriptAttributes returns the stored tag attributes for a script
// within a section. An empty section name means the footer.
func (r *Registry) ScriptAttributes(section, path string) (ScriptAttrs, bool) {
	if section == "" {
		section = SectionFooter
	}
	attrs, ok := r.jsAttrs[section][path]
	return attrs, ok
}

// purgeScript removes path from every section and drops sections left
// empty. Attribute records are not purged with the path; they survive
// until their section is dropped.
func (r *Registry) purgeScript(path string) {
	for _, name := range r.Sections() {
		c := r.js[name]
		if c.Remove(path) && c.Len() == 0 {
			r.dropSection(name)
		}
	}
}

func (r *Registry) dropSection(name string) {
	delete(r.js, name)
	delete(r.jsAttrs, name)
	for i, n := range r.jsOrder {
		if n == name {
			r.jsOrder = append(r.jsOrder[:i], r.jsOrder[i+1:]...)
			break
		}
	}
}

func (r *Registry) sectionCollection(name string) *Collection {
	c, ok := r.js[name]
	if !ok {
		c = NewCollection()
		r.js[name] = c
		r.jsOrder = append(r.jsOrder, name)
	}
	return c
}

func (r *Registry) mergeScriptAttrs(section, path string, p scriptParams) {
	if p.typeAttr == nil && p.deferAttr == nil && p.asyncAttr == nil {
		return
	}
	m, ok := r.jsAttrs[section]
	if !ok {
		m = make(map[string]ScriptAttrs)
		r.jsAttrs[section] = m
	}
	attrs := m[path]
	if p.typeAttr != nil {
		attrs.Type = *p.typeAttr
	}
	if p.deferAttr != nil {
		attrs.Defer = *p.deferAttr
	}
	if p.asyncAttr != nil {
		attrs.Async = *p.asyncAttr
	}
	m[path] = attrs
}

// snippetStore holds ordered raw text snippets grouped by section.
// Duplicates are allowed; sections keep first-use order.
type snippetStore struct {
	order    []string
	sections map[string][]string
}

func newSnippetStore() *snippetStore {
	return &snippetStore{sections: make(map[string][]string)}
}

func (s *snippetStore) add(section, code string) {
	if _, ok := s.sections[section]; !ok {
		s.order = append(s.order, section)
	}
	s.sections[section] = append(s.sections[section], code)
}

func (s *snippetStore) get(section string) []string {
	return s.sections[section]
}

// AddInlineStyle stores a raw CSS snippet under a named section. An
// empty section name targets the header. Duplicates are kept.
func (r *Registry) AddInlineStyle(code, section string) {
	if section == "" {
		section = SectionHeader
	}
	r.styles.add(section, code)
}

// AddInlineScript stores a raw script snippet under a named section.
// An empty section name targets the reserved ready section. Duplicates
// are kept.
func (r *Registry) AddInlineScript(code, section string) {
	if section == "" {
		section = SectionReady
	}
	r.scripts.add(section, code)
}

// InlineStyles returns the snippets of a style section in insertion
// order. An empty name means the header section.
func (r *Registry) InlineStyles(section string) []string {
	if section == "" {
		section = SectionHeader
	}
	return copyStrings(r.styles.get(section))
}

// InlineScripts returns the snippets of a script section in insertion
// order. An empty name means the ready section.
func (r *Registry) InlineScripts(section string) []string {
	if section == "" {
		section = SectionReady
	}
	return copyStrings(r.scripts.get(section))
}

// StyleSections returns the inline style section names in first-use
// order.
func (r *Registry) StyleSections() []string {
	return copyStrings(r.styles.order)
}

// ScriptSections returns the inline script section names in first-use
// order.
func (r *Registry) ScriptSections() []string {
	return copyStrings(r.scripts.order)
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
