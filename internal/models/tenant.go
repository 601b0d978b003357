package models

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Domain       string    `json:"domain" db:"domain"`
	Plan         string    `json:"plan" db:"plan"`
	MaxUsers     int       `json:"max_users" db:"max_users"`
	MaxTemplates int       `json:"max_templates" db:"max_templates"`
	MaxStorageMB int       `json:"max_storage_mb" db:"max_storage_mb"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PlanLimits maps plan tiers to the limit columns written on the tenant row.
// Changing a tenant's plan rewrites its limits from this table.
var PlanLimits = map[string]struct {
	MaxUsers     int
	MaxTemplates int
	MaxStorageMB int
}{
	"free":     {MaxUsers: 5, MaxTemplates: 3, MaxStorageMB: 50},
	"pro":      {MaxUsers: 50, MaxTemplates: 25, MaxStorageMB: 500},
	"business": {MaxUsers: 500, MaxTemplates: 100, MaxStorageMB: 5000},
}
