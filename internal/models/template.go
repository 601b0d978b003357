package models

import (
	"time"

	"github.com/google/uuid"
)

// Template lifecycle statuses. Movement among the three is unrestricted;
// archiving is reversible.
const (
	TemplateStatusDraft    = "draft"
	TemplateStatusActive   = "active"
	TemplateStatusArchived = "archived"
)

func ValidTemplateStatus(s string) bool {
	return s == TemplateStatusDraft || s == TemplateStatusActive || s == TemplateStatusArchived
}

type SignatureTemplate struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	Name      string    `json:"name" db:"name"`
	// Fields holds the structured signature content; HTMLContent is the
	// rendered form derived from Fields + Preset and regenerated on write.
	Fields      SignatureFields `json:"fields" db:"fields"`
	Preset      string          `json:"preset" db:"preset"`
	HTMLContent string          `json:"html_content" db:"html_content"`
	Status      string          `json:"status" db:"status"`
	IsDefault   bool            `json:"is_default" db:"is_default"`
	IsShared    bool            `json:"is_shared" db:"is_shared"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// SignatureFields is the structured content a signature is rendered from.
// Stored as jsonb. Empty fields emit no markup when rendered.
type SignatureFields struct {
	Name      string       `json:"name"`
	Title     string       `json:"title,omitempty"`
	Company   string       `json:"company,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Website   string       `json:"website,omitempty"`
	LinkedIn  string       `json:"linkedin,omitempty"`
	Twitter   string       `json:"twitter,omitempty"`
	LogoURL   string       `json:"logo_url,omitempty"`
	BannerURL string       `json:"banner_url,omitempty"`
	Custom    *CustomStyle `json:"custom,omitempty"`
}

// CustomStyle carries the per-field styling only honored by the "custom"
// preset. Every other preset ignores it.
type CustomStyle struct {
	FontFamily    string `json:"font_family,omitempty"`
	FontSize      string `json:"font_size,omitempty"`
	TextColor     string `json:"text_color,omitempty"`
	AccentColor   string `json:"accent_color,omitempty"`
	FontWeight    string `json:"font_weight,omitempty"`
	LetterSpacing string `json:"letter_spacing,omitempty"`
	CornerRadius  string `json:"corner_radius,omitempty"`
}
