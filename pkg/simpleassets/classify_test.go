package simpleassets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-assets/pkg/simpleassets"
)

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		fallback simpleassets.Kind
		want     simpleassets.Kind
	}{
		{
			name:     "css extension",
			path:     "app.css",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindCSS,
		},
		{
			name:     "css route with query",
			path:     "/assets/css?v=3",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindCSS,
		},
		{
			name:     "less extension",
			path:     "theme.less",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindLESS,
		},
		{
			name:     "js extension",
			path:     "app.js",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindJS,
		},
		{
			name:     "js route",
			path:     "/bundles/js",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindJS,
		},
		{
			name:     "versioned js",
			path:     "app.js?v=12",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindJS,
		},
		{
			name:     "css rule is checked before js",
			path:     "widget.css.js",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindCSS,
		},
		{
			name:     "unknown with none fallback",
			path:     "logo.png",
			fallback: simpleassets.KindNone,
			want:     simpleassets.KindNone,
		},
		{
			name:     "unknown with js fallback",
			path:     "bundle",
			fallback: simpleassets.KindJS,
			want:     simpleassets.KindJS,
		},
		{
			name:     "unknown with css fallback",
			path:     "bundle",
			fallback: simpleassets.KindCSS,
			want:     simpleassets.KindCSS,
		},
		{
			name:     "invalid fallback clamps to none",
			path:     "bundle",
			fallback: simpleassets.Kind("bogus"),
			want:     simpleassets.KindNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, simpleassets.ClassifyPath(tt.path, tt.fallback))
		})
	}
}

func TestRegistryClassifyUsesConfiguredFallback(t *testing.T) {
	r := simpleassets.New(simpleassets.WithFallback(simpleassets.KindLESS))
	assert.Equal(t, simpleassets.KindLESS, r.Classify("mystery"))

	r.SetFallback(simpleassets.KindJS)
	assert.Equal(t, simpleassets.KindJS, r.Classify("mystery"))
}

func TestSetFallbackClampsInvalidValues(t *testing.T) {
	r := simpleassets.New()
	r.SetFallback(simpleassets.Kind("17"))
	assert.Equal(t, simpleassets.KindNone, r.Fallback())

	r.SetFallback(simpleassets.KindCSS)
	assert.Equal(t, simpleassets.KindCSS, r.Fallback())
}
