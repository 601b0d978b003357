package render

import (
	"strings"

	"signly/internal/models"
)

// Renderer maps structured signature fields plus a preset name to an HTML
// fragment suitable for embedding in an email client.
//
// Escaper is applied to every interpolated field value. The default is the
// identity function, which preserves the historical byte-for-byte output
// contract but embeds user input unencoded; deployments that want encoded
// output swap in html.EscapeString here without touching the preset table.
type Renderer struct {
	Escaper func(string) string
}

func NewRenderer() *Renderer {
	return &Renderer{Escaper: func(s string) string { return s }}
}

// Render is pure and deterministic: identical fields and preset always
// produce byte-identical output. Absent optional fields emit no markup.
// Unknown presets fall back to the default preset; there is no error path.
func (r *Renderer) Render(fields models.SignatureFields, preset string) string {
	bundle := resolveBundle(preset, fields.Custom)
	esc := r.Escaper

	var b strings.Builder
	b.WriteString(`<table cellpadding="0" cellspacing="0" border="0" style="` + bundle.Wrapper + `"><tr>`)

	if fields.LogoURL != "" {
		b.WriteString(`<td style="padding-right:14px;vertical-align:top;">`)
		b.WriteString(`<img src="` + esc(fields.LogoURL) + `" alt="" width="72" style="` + bundle.Logo + `"/>`)
		b.WriteString(`</td>`)
	}

	b.WriteString(`<td style="vertical-align:top;">`)

	if fields.Name != "" {
		b.WriteString(`<div style="` + bundle.Name + `">` + esc(fields.Name) + `</div>`)
	}
	if fields.Title != "" {
		b.WriteString(`<div style="` + bundle.Title + `">` + esc(fields.Title) + `</div>`)
	}
	if fields.Company != "" {
		b.WriteString(`<div style="` + bundle.Company + `">` + esc(fields.Company) + `</div>`)
	}

	r.writeContact(&b, fields, bundle)
	r.writeSocial(&b, fields, bundle)

	b.WriteString(`</td></tr></table>`)

	if fields.BannerURL != "" {
		b.WriteString(`<img src="` + esc(fields.BannerURL) + `" alt="" width="320" style="` + bundle.Banner + `"/>`)
	}

	return b.String()
}

func (r *Renderer) writeContact(b *strings.Builder, fields models.SignatureFields, bundle StyleBundle) {
	esc := r.Escaper
	var lines []string
	if fields.Email != "" {
		lines = append(lines, `<a href="mailto:`+esc(fields.Email)+`" style="color:`+bundle.LinkColor+`;text-decoration:none;">`+esc(fields.Email)+`</a>`)
	}
	if fields.Phone != "" {
		lines = append(lines, esc(fields.Phone))
	}
	if fields.Website != "" {
		lines = append(lines, `<a href="`+esc(fields.Website)+`" style="color:`+bundle.LinkColor+`;text-decoration:none;">`+esc(fields.Website)+`</a>`)
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString(`<div style="` + bundle.Contact + `">` + strings.Join(lines, `<br/>`) + `</div>`)
}

func (r *Renderer) writeSocial(b *strings.Builder, fields models.SignatureFields, bundle StyleBundle) {
	esc := r.Escaper
	var links []string
	if fields.LinkedIn != "" {
		links = append(links, `<a href="`+esc(fields.LinkedIn)+`" style="color:`+bundle.LinkColor+`;text-decoration:none;">LinkedIn</a>`)
	}
	if fields.Twitter != "" {
		links = append(links, `<a href="`+esc(fields.Twitter)+`" style="color:`+bundle.LinkColor+`;text-decoration:none;">Twitter</a>`)
	}
	if len(links) == 0 {
		return
	}
	b.WriteString(`<div style="` + bundle.Contact + `">` + strings.Join(links, ` &middot; `) + `</div>`)
}
