package render

import (
	"html"
	"strings"
	"testing"

	"signly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullFields() models.SignatureFields {
	return models.SignatureFields{
		Name:      "Dana Reyes",
		Title:     "Head of Partnerships",
		Company:   "Acme Corp",
		Email:     "dana@acme.com",
		Phone:     "+1 555 0100",
		Website:   "https://acme.com",
		LinkedIn:  "https://linkedin.com/in/danareyes",
		Twitter:   "https://twitter.com/danareyes",
		LogoURL:   "https://cdn.acme.com/logo.png",
		BannerURL: "https://cdn.acme.com/banner.png",
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer()
	fields := fullFields()

	first := r.Render(fields, "modern")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Render(fields, "modern"))
	}
}

func TestRenderFullSignature(t *testing.T) {
	r := NewRenderer()
	out := r.Render(fullFields(), "modern")

	assert.Contains(t, out, "Dana Reyes")
	assert.Contains(t, out, "Head of Partnerships")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, `href="mailto:dana@acme.com"`)
	assert.Contains(t, out, "+1 555 0100")
	assert.Contains(t, out, `href="https://acme.com"`)
	assert.Contains(t, out, ">LinkedIn</a>")
	assert.Contains(t, out, ">Twitter</a>")
	assert.Contains(t, out, `src="https://cdn.acme.com/logo.png"`)
	assert.Contains(t, out, `src="https://cdn.acme.com/banner.png"`)
	assert.True(t, strings.HasPrefix(out, "<table"))
}

func TestRenderAbsentFieldsEmitNoMarkup(t *testing.T) {
	r := NewRenderer()
	out := r.Render(models.SignatureFields{Name: "Dana Reyes"}, "modern")

	assert.Contains(t, out, "Dana Reyes")
	assert.NotContains(t, out, "mailto:")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "LinkedIn")
	// Exactly one div: the name. No empty containers for missing fields.
	assert.Equal(t, 1, strings.Count(out, "<div"))
}

func TestRenderEmptyFields(t *testing.T) {
	r := NewRenderer()
	out := r.Render(models.SignatureFields{}, "modern")

	assert.NotContains(t, out, "<div")
	assert.NotContains(t, out, "<img")
	assert.True(t, strings.HasPrefix(out, "<table"))
	assert.True(t, strings.HasSuffix(out, "</table>"))
}

func TestRenderUnknownPresetFallsBack(t *testing.T) {
	r := NewRenderer()
	fields := fullFields()

	assert.Equal(t, r.Render(fields, "modern"), r.Render(fields, "no-such-preset"))
	assert.Equal(t, r.Render(fields, "modern"), r.Render(fields, ""))
}

func TestRenderPresetsDiffer(t *testing.T) {
	r := NewRenderer()
	fields := fullFields()

	seen := map[string]string{}
	for _, name := range []string{"modern", "classic", "minimal", "corporate", "elegant"} {
		out := r.Render(fields, name)
		for other, prev := range seen {
			assert.NotEqual(t, prev, out, "%s and %s rendered identically", other, name)
		}
		seen[name] = out
	}
}

func TestRenderCustomPreset(t *testing.T) {
	r := NewRenderer()
	fields := fullFields()
	fields.Custom = &models.CustomStyle{
		FontFamily:  "Courier,monospace",
		AccentColor: "#ff0066",
	}

	out := r.Render(fields, "custom")
	assert.Contains(t, out, "font-family:Courier,monospace")
	assert.Contains(t, out, "color:#ff0066")
}

func TestRenderCustomPresetWithoutParams(t *testing.T) {
	r := NewRenderer()

	// A nil parameter block renders with the built-in custom defaults.
	out := r.Render(fullFields(), "custom")
	require.NotEmpty(t, out)
	assert.Contains(t, out, "font-family:Arial,sans-serif")
}

func TestRenderDefaultEscaperIsIdentity(t *testing.T) {
	r := NewRenderer()
	out := r.Render(models.SignatureFields{Name: `O'Brien & Sons <dev>`}, "modern")

	assert.Contains(t, out, `O'Brien & Sons <dev>`)
}

func TestRenderEscaperHook(t *testing.T) {
	r := NewRenderer()
	r.Escaper = html.EscapeString

	out := r.Render(models.SignatureFields{Name: `<script>alert(1)</script>`}, "modern")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{"classic", "corporate", "elegant", "minimal", "modern"}, names)
	assert.NotContains(t, names, "custom")
}

func TestValidPreset(t *testing.T) {
	for _, name := range PresetNames() {
		assert.True(t, ValidPreset(name), name)
	}
	assert.True(t, ValidPreset("custom"))
	assert.False(t, ValidPreset("brutalist"))
	assert.False(t, ValidPreset(""))
}
