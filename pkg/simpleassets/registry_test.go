package simpleassets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-assets/pkg/simpleassets"
)

func TestAddDispatchesByKind(t *testing.T) {
	r := simpleassets.New()
	r.Add("style.css")
	r.Add("theme.less")
	r.Add("script.js")
	r.Add("logo.png")

	assert.Equal(t, []string{"style.css"}, r.CSS())
	assert.Equal(t, []string{"theme.less"}, r.LESS())
	assert.Equal(t, []string{"script.js"}, r.Scripts(""))
}

func TestAddDispatchesUnknownToFallback(t *testing.T) {
	r := simpleassets.New(simpleassets.WithFallback(simpleassets.KindJS))
	r.Add("bundle")

	assert.Empty(t, r.CSS())
	assert.Equal(t, []string{"bundle"}, r.Scripts(""))
}

func TestAddCSSIsIdempotent(t *testing.T) {
	r := simpleassets.New()
	r.AddCSS("a.css")
	r.AddCSS("b.css")
	r.AddCSS("a.css")

	assert.Equal(t, []string{"a.css", "b.css"}, r.CSS())
}

func TestInsertCSSBeforeAndAfter(t *testing.T) {
	r := simpleassets.New()
	r.AddCSS("a.css")
	r.AddCSS("b.css")
	r.AddCSS("c.css")

	r.InsertCSSBefore("x.css", "b.css")
	assert.Equal(t, []string{"a.css", "x.css", "b.css", "c.css"}, r.CSS())

	r.InsertCSSAfter("y.css", "c.css")
	assert.Equal(t, []string{"a.css", "x.css", "b.css", "c.css", "y.css"}, r.CSS())
}

func TestInsertLESSKeepsItsOwnOrder(t *testing.T) {
	r := simpleassets.New()
	r.AddLESS("base.less")
	r.AddLESS("theme.less")
	r.InsertLESSBefore("reset.less", "base.less")
	r.InsertLESSAfter("extra.less", "missing.less")

	assert.Equal(t, []string{"reset.less", "base.less", "theme.less", "extra.less"}, r.LESS())
}

func TestResetReappliesConstructionOptions(t *testing.T) {
	r := simpleassets.New(
		simpleassets.WithDomain("https://cdn.example.com"),
		simpleassets.WithPrefix("\t"),
	)
	r.Add("style.css")
	r.AddInlineStyle("body{margin:0}", "")
	r.SetDomain("/elsewhere")

	r.Reset()

	assert.Empty(t, r.CSS())
	assert.Empty(t, r.InlineStyles(""))
	assert.Equal(t, "https://cdn.example.com", r.Domain())
}

func TestResetClearsResolvedEnvironment(t *testing.T) {
	calls := 0
	r := simpleassets.New(simpleassets.WithEnvFunc(func() string {
		calls++
		return "staging"
	}))

	assert.Equal(t, "staging", r.Environment())
	assert.Equal(t, "staging", r.Environment())
	assert.Equal(t, 1, calls)

	r.Reset()
	assert.Equal(t, "staging", r.Environment())
	assert.Equal(t, 2, calls)
}

func TestFreshRegistryScenario(t *testing.T) {
	r := simpleassets.New()
	r.Add("style.css")
	r.Add("script.js")

	assert.Equal(t, "<link rel=\"stylesheet\" type=\"text/css\" href=\"/style.css\">\n", r.RenderCSS())
	assert.Equal(t, "<script src=\"/script.js\"></script>\n", r.RenderJS(""))
}

func TestInsertBeforeOrderScenario(t *testing.T) {
	r := simpleassets.New()
	r.AddScript("a.js")
	r.AddScript("b.js")
	r.AddScript("c.js")
	r.InsertScriptBefore("x.js", "b.js")

	assert.Equal(t, []string{"a.js", "x.js", "b.js", "c.js"}, r.Scripts(""))
}

func TestLocalEnvironmentForcesRootDomain(t *testing.T) {
	r := simpleassets.New(
		simpleassets.WithDomain("http://cdn/"),
		simpleassets.WithEnvFunc(func() string { return simpleassets.EnvLocal }),
	)
	r.Add("style.css")

	out := r.RenderCSS()

	assert.Equal(t, simpleassets.EnvLocal, r.Environment())
	assert.Equal(t, "/", r.Domain())
	assert.Contains(t, out, "href=\"/style.css\"")
}

func TestEnvironmentDefaultsToProduction(t *testing.T) {
	r := simpleassets.New()
	assert.Equal(t, simpleassets.EnvProduction, r.Environment())
}

func TestWithEnvironmentPinsLabel(t *testing.T) {
	r := simpleassets.New(
		simpleassets.WithEnvironment("staging"),
		simpleassets.WithEnvFunc(func() string { return "hooked" }),
	)
	assert.Equal(t, "staging", r.Environment())
}
