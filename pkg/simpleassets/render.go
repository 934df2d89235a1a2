package simpleassets

import (
	"fmt"
	"strings"
)

// RenderCSS emits one stylesheet link tag per collected CSS path, in
// display order, each line prepended with the configured prefix. An
// empty collection emits nothing.
func (r *Registry) RenderCSS() string {
	r.checkEnv()
	var b strings.Builder
	for _, p := range r.css.Keys() {
		fmt.Fprintf(&b, "%s<link rel=\"stylesheet\" type=\"text/css\" href=\"%s\">\n", r.prefix, r.BuildURL(p))
	}
	return b.String()
}

// RenderLESS emits one LESS link tag per collected LESS path, in
// display order, each line prepended with the configured prefix. An
// empty collection emits nothing.
func (r *Registry) RenderLESS() string {
	r.checkEnv()
	var b strings.Builder
	for _, p := range r.less.Keys() {
		fmt.Fprintf(&b, "%s<link rel=\"stylesheet/less\" type=\"text/css\" href=\"%s\">\n", r.prefix, r.BuildURL(p))
	}
	return b.String()
}

// RenderJS emits one script tag per collected path of a section, in
// display order. An empty section name means the footer. The type,
// defer, and async attributes appear only when stored as non-empty
// strings. An absent section emits nothing.
func (r *Registry) RenderJS(section string) string {
	r.checkEnv()
	if section == "" {
		section = SectionFooter
	}
	c, ok := r.js[section]
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Keys() {
		b.WriteString(r.prefix)
		b.WriteString(`<script src="`)
		b.WriteString(r.BuildURL(p))
		b.WriteString(`"`)
		attrs := r.jsAttrs[section][p]
		writeAttr(&b, "type", attrs.Type)
		writeAttr(&b, "defer", attrs.Defer)
		writeAttr(&b, "async", attrs.Async)
		b.WriteString("></script>\n")
	}
	return b.String()
}

// RenderCSSRaw joins the resolved CSS URLs with sep, without tag
// markup or prefix.
func (r *Registry) RenderCSSRaw(sep string) string {
	r.checkEnv()
	return r.joinURLs(r.css.Keys(), sep)
}

// RenderLESSRaw joins the resolved LESS URLs with sep, without tag
// markup or prefix.
func (r *Registry) RenderLESSRaw(sep string) string {
	r.checkEnv()
	return r.joinURLs(r.less.Keys(), sep)
}

// RenderJSRaw joins the resolved script URLs of a section with sep,
// without tag markup or prefix. An empty section name means the
// footer.
func (r *Registry) RenderJSRaw(section, sep string) string {
	r.checkEnv()
	if section == "" {
		section = SectionFooter
	}
	c, ok := r.js[section]
	if !ok {
		return ""
	}
	return r.joinURLs(c.Keys(), sep)
}

// RenderInlineStyles renders a named inline style section inside a
// single style tag. An empty name renders every section in first-use
// order, each wrapped individually. Empty or absent sections emit
// nothing, wrapper included.
func (r *Registry) RenderInlineStyles(section string) string {
	if section != "" {
		return r.renderStyleBlock(section)
	}
	var b strings.Builder
	for _, name := range r.styles.order {
		b.WriteString(r.renderStyleBlock(name))
	}
	return b.String()
}

// RenderInlineScripts renders a named inline script section inside a
// single script tag. An empty name renders every section in first-use
// order, each wrapped individually. The reserved ready section is
// wrapped in a DOM-ready invocation, shorthand or verbose per
// configuration. Empty or absent sections emit nothing, wrapper
// included.
func (r *Registry) RenderInlineScripts(section string) string {
	if section != "" {
		return r.renderScriptBlock(section)
	}
	var b strings.Builder
	for _, name := range r.scripts.order {
		b.WriteString(r.renderScriptBlock(name))
	}
	return b.String()
}

func (r *Registry) renderStyleBlock(section string) string {
	snippets := r.styles.get(section)
	if len(snippets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<style type=\"text/css\">\n")
	for _, s := range snippets {
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("</style>\n")
	return b.String()
}

func (r *Registry) renderScriptBlock(section string) string {
	snippets := r.scripts.get(section)
	if len(snippets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<script type=\"text/javascript\">\n")
	if section == SectionReady {
		if r.shorthandReady {
			b.WriteString("$(function(){\n")
		} else {
			b.WriteString("$(document).ready(function(){\n")
		}
	}
	for _, s := range snippets {
		b.WriteString(s)
		b.WriteString("\n")
	}
	if section == SectionReady {
		b.WriteString("});\n")
	}
	b.WriteString("</script>\n")
	return b.String()
}

func (r *Registry) joinURLs(paths []string, sep string) string {
	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = r.BuildURL(p)
	}
	return strings.Join(urls, sep)
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteString(`"`)
}
