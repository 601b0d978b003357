package render

import (
	"sort"

	"signly/internal/models"
)

// StyleBundle is the set of inline style strings a preset applies to each
// visual region of the signature.
type StyleBundle struct {
	Wrapper   string
	Name      string
	Title     string
	Company   string
	Contact   string
	LinkColor string
	Logo      string
	Banner    string
}

// DefaultPreset is used whenever an unknown preset name is requested.
const DefaultPreset = "modern"

// presets maps preset names to their style bundles. Adding a preset is a
// data change here, not a code change in the renderer.
var presets = map[string]StyleBundle{
	"modern": {
		Wrapper:   "font-family:'Helvetica Neue',Helvetica,Arial,sans-serif;color:#222222;",
		Name:      "font-size:16px;font-weight:700;color:#1a1a1a;",
		Title:     "font-size:13px;color:#555555;",
		Company:   "font-size:13px;font-weight:600;color:#2d6cdf;",
		Contact:   "font-size:12px;color:#666666;line-height:18px;",
		LinkColor: "#2d6cdf",
		Logo:      "border-radius:6px;",
		Banner:    "margin-top:10px;border-radius:6px;",
	},
	"classic": {
		Wrapper:   "font-family:Georgia,'Times New Roman',serif;color:#333333;",
		Name:      "font-size:17px;font-weight:700;color:#000000;",
		Title:     "font-size:13px;font-style:italic;color:#444444;",
		Company:   "font-size:14px;color:#000000;",
		Contact:   "font-size:12px;color:#555555;line-height:19px;",
		LinkColor: "#8b0000",
		Logo:      "",
		Banner:    "margin-top:12px;",
	},
	"minimal": {
		Wrapper:   "font-family:Arial,sans-serif;color:#444444;",
		Name:      "font-size:14px;font-weight:600;color:#333333;",
		Title:     "font-size:12px;color:#888888;",
		Company:   "font-size:12px;color:#888888;",
		Contact:   "font-size:11px;color:#999999;line-height:16px;",
		LinkColor: "#444444",
		Logo:      "filter:grayscale(100%);",
		Banner:    "margin-top:8px;",
	},
	"corporate": {
		Wrapper:   "font-family:Verdana,Geneva,sans-serif;color:#1f2937;",
		Name:      "font-size:15px;font-weight:700;color:#111827;text-transform:uppercase;letter-spacing:1px;",
		Title:     "font-size:12px;color:#374151;",
		Company:   "font-size:13px;font-weight:700;color:#065f46;",
		Contact:   "font-size:12px;color:#4b5563;line-height:18px;",
		LinkColor: "#065f46",
		Logo:      "border:1px solid #d1d5db;",
		Banner:    "margin-top:10px;border:1px solid #d1d5db;",
	},
	"elegant": {
		Wrapper:   "font-family:'Palatino Linotype',Palatino,serif;color:#3b3b3b;",
		Name:      "font-size:18px;font-weight:400;color:#2b2b2b;letter-spacing:2px;",
		Title:     "font-size:12px;color:#7a7a7a;letter-spacing:1px;",
		Company:   "font-size:13px;color:#a07d2c;",
		Contact:   "font-size:12px;color:#6e6e6e;line-height:19px;",
		LinkColor: "#a07d2c",
		Logo:      "border-radius:50%;",
		Banner:    "margin-top:12px;",
	},
}

// resolveBundle picks the style bundle for a preset name. The "custom"
// preset derives its bundle from caller-supplied parameters; every other
// preset ignores them. Unknown names fall back to the default preset.
func resolveBundle(preset string, custom *models.CustomStyle) StyleBundle {
	if preset == "custom" {
		return customBundle(custom)
	}
	if bundle, ok := presets[preset]; ok {
		return bundle
	}
	return presets[DefaultPreset]
}

func customBundle(custom *models.CustomStyle) StyleBundle {
	style := models.CustomStyle{
		FontFamily:    "Arial,sans-serif",
		FontSize:      "13px",
		TextColor:     "#333333",
		AccentColor:   "#2d6cdf",
		FontWeight:    "700",
		LetterSpacing: "0",
		CornerRadius:  "0",
	}
	if custom != nil {
		if custom.FontFamily != "" {
			style.FontFamily = custom.FontFamily
		}
		if custom.FontSize != "" {
			style.FontSize = custom.FontSize
		}
		if custom.TextColor != "" {
			style.TextColor = custom.TextColor
		}
		if custom.AccentColor != "" {
			style.AccentColor = custom.AccentColor
		}
		if custom.FontWeight != "" {
			style.FontWeight = custom.FontWeight
		}
		if custom.LetterSpacing != "" {
			style.LetterSpacing = custom.LetterSpacing
		}
		if custom.CornerRadius != "" {
			style.CornerRadius = custom.CornerRadius
		}
	}

	return StyleBundle{
		Wrapper:   "font-family:" + style.FontFamily + ";color:" + style.TextColor + ";",
		Name:      "font-size:" + style.FontSize + ";font-weight:" + style.FontWeight + ";color:" + style.TextColor + ";letter-spacing:" + style.LetterSpacing + ";",
		Title:     "font-size:" + style.FontSize + ";color:" + style.TextColor + ";",
		Company:   "font-size:" + style.FontSize + ";color:" + style.AccentColor + ";",
		Contact:   "font-size:" + style.FontSize + ";color:" + style.TextColor + ";",
		LinkColor: style.AccentColor,
		Logo:      "border-radius:" + style.CornerRadius + ";",
		Banner:    "margin-top:10px;border-radius:" + style.CornerRadius + ";",
	}
}

// PresetNames lists the fixed presets in sorted order, excluding "custom".
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidPreset reports whether name is a fixed preset or "custom".
func ValidPreset(name string) bool {
	if name == "custom" {
		return true
	}
	_, ok := presets[name]
	return ok
}
