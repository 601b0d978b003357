package models

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TenantID   uuid.UUID `json:"tenant_id" db:"tenant_id"`
	UploadedBy uuid.UUID `json:"uploaded_by" db:"uploaded_by"`
	Name       string    `json:"name" db:"name"`
	StoredName string    `json:"stored_name" db:"stored_name"`
	MimeType   string    `json:"mime_type" db:"mime_type"`
	SizeBytes  int64     `json:"size_bytes" db:"size_bytes"`
	URL        string    `json:"url" db:"url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
