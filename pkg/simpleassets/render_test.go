package simpleassets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-assets/pkg/simpleassets"
)

func TestRenderCSSEmitsOnePrefixedLinePerEntry(t *testing.T) {
	r := simpleassets.New(simpleassets.WithPrefix("\t"))
	r.AddCSS("a.css")
	r.AddCSS("b.css")

	want := "\t<link rel=\"stylesheet\" type=\"text/css\" href=\"/a.css\">\n" +
		"\t<link rel=\"stylesheet\" type=\"text/css\" href=\"/b.css\">\n"
	assert.Equal(t, want, r.RenderCSS())
}

func TestRenderLESSUsesLessRel(t *testing.T) {
	r := simpleassets.New()
	r.AddLESS("theme.less")

	assert.Equal(t, "<link rel=\"stylesheet/less\" type=\"text/css\" href=\"/theme.less\">\n", r.RenderLESS())
}

func TestRenderJSEmitsStoredAttributes(t *testing.T) {
	r := simpleassets.New()
	r.AddScript("app.js",
		simpleassets.WithType("module"),
		simpleassets.WithDefer("defer"),
		simpleassets.WithAsync("async"),
	)
	r.AddScript("plain.js")

	want := "<script src=\"/app.js\" type=\"module\" defer=\"defer\" async=\"async\"></script>\n" +
		"<script src=\"/plain.js\"></script>\n"
	assert.Equal(t, want, r.RenderJS(""))
}

func TestRenderJSSkipsEmptyAttributes(t *testing.T) {
	r := simpleassets.New()
	r.AddScript("app.js", simpleassets.WithType("module"), simpleassets.WithDefer(""))

	assert.Equal(t, "<script src=\"/app.js\" type=\"module\"></script>\n", r.RenderJS(""))
}

func TestRenderJSAbsentSectionEmitsNothing(t *testing.T) {
	r := simpleassets.New()
	r.AddScript("app.js")

	assert.Equal(t, "", r.RenderJS("header"))
}

func TestRenderEmptyCollectionsEmitNothing(t *testing.T) {
	r := simpleassets.New()

	assert.Equal(t, "", r.RenderCSS())
	assert.Equal(t, "", r.RenderLESS())
	assert.Equal(t, "", r.RenderJS(""))
	assert.Equal(t, "", r.RenderCSSRaw(","))
	assert.Equal(t, "", r.RenderJSRaw("", ","))
	assert.Equal(t, "", r.RenderInlineStyles(""))
	assert.Equal(t, "", r.RenderInlineStyles("named"))
	assert.Equal(t, "", r.RenderInlineScripts(""))
	assert.Equal(t, "", r.RenderInlineScripts(simpleassets.SectionReady))
}

func TestRenderRawJoinsWithoutPrefix(t *testing.T) {
	r := simpleassets.New(simpleassets.WithPrefix("\t"))
	r.AddCSS("a.css")
	r.AddCSS("b.css")
	r.AddScript("x.js")
	r.AddScript("y.js")

	assert.Equal(t, "/a.css,/b.css", r.RenderCSSRaw(","))
	assert.Equal(t, "/x.js /y.js", r.RenderJSRaw("", " "))
}

func TestRenderLESSRawJoins(t *testing.T) {
	r := simpleassets.New()
	r.AddLESS("base.less")
	r.AddLESS("theme.less")

	assert.Equal(t, "/base.less|/theme.less", r.RenderLESSRaw("|"))
}

func TestRenderInlineStylesNamedSectionWrappedOnce(t *testing.T) {
	r := simpleassets.New()
	r.AddInlineStyle("body{margin:0}", "base")
	r.AddInlineStyle("h1{font-size:2em}", "base")

	want := "<style type=\"text/css\">\n" +
		"body{margin:0}\n" +
		"h1{font-size:2em}\n" +
		"</style>\n"
	assert.Equal(t, want, r.RenderInlineStyles("base"))
}

func TestRenderInlineStylesAllSectionsWrappedIndividually(t *testing.T) {
	r := simpleassets.New()
	r.AddInlineStyle("a{color:red}", "one")
	r.AddInlineStyle("b{color:blue}", "two")

	want := "<style type=\"text/css\">\n" +
		"a{color:red}\n" +
		"</style>\n" +
		"<style type=\"text/css\">\n" +
		"b{color:blue}\n" +
		"</style>\n"
	assert.Equal(t, want, r.RenderInlineStyles(""))
}

func TestRenderInlineScriptsReadyVerboseWrapper(t *testing.T) {
	r := simpleassets.New()
	r.AddInlineScript("init();", "")
	r.AddInlineScript("boot();", "")

	want := "<script type=\"text/javascript\">\n" +
		"$(document).ready(function(){\n" +
		"init();\n" +
		"boot();\n" +
		"});\n" +
		"</script>\n"
	assert.Equal(t, want, r.RenderInlineScripts(simpleassets.SectionReady))
}

func TestRenderInlineScriptsReadyShorthandWrapper(t *testing.T) {
	r := simpleassets.New(simpleassets.WithShorthandReady(true))
	r.AddInlineScript("init();", "")

	want := "<script type=\"text/javascript\">\n" +
		"$(function(){\n" +
		"init();\n" +
		"});\n" +
		"</script>\n"
	assert.Equal(t, want, r.RenderInlineScripts(simpleassets.SectionReady))
}

func TestRenderInlineScriptsPlainSection(t *testing.T) {
	r := simpleassets.New()
	r.AddInlineScript("var x=1;", "head-scripts")

	want := "<script type=\"text/javascript\">\n" +
		"var x=1;\n" +
		"</script>\n"
	assert.Equal(t, want, r.RenderInlineScripts("head-scripts"))
}

func TestRenderInlineScriptsAllIncludesReadyWrapper(t *testing.T) {
	r := simpleassets.New()
	r.AddInlineScript("init();", "")
	r.AddInlineScript("var x=1;", "head-scripts")

	want := "<script type=\"text/javascript\">\n" +
		"$(document).ready(function(){\n" +
		"init();\n" +
		"});\n" +
		"</script>\n" +
		"<script type=\"text/javascript\">\n" +
		"var x=1;\n" +
		"</script>\n"
	assert.Equal(t, want, r.RenderInlineScripts(""))
}
