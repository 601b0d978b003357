package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateAssignment links one user to one template inside the same tenant.
// A (user, template) pair exists at most once.
type TemplateAssignment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TenantID   uuid.UUID `json:"tenant_id" db:"tenant_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	TemplateID uuid.UUID `json:"template_id" db:"template_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
