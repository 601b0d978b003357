package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"signly/internal/models"

	"github.com/google/uuid"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *models.SignatureTemplate) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.SignatureTemplate, error)
	GetDefault(ctx context.Context, tenantID uuid.UUID) (*models.SignatureTemplate, error)
	Update(ctx context.Context, template *models.SignatureTemplate) error
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error
	// SetDefault marks one template as the tenant default and clears the
	// flag on every other template of the same tenant in one transaction.
	SetDefault(ctx context.Context, tenantID, id uuid.UUID) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.SignatureTemplate, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type templateRepo struct {
	db DB
}

func NewTemplateRepo(db DB) TemplateRepository {
	return &templateRepo{db: db}
}

const templateColumns = `id, tenant_id, created_by, name, fields, preset, html_content, status, is_default, is_shared, created_at, updated_at`

func scanTemplate(row interface{ Scan(dest ...any) error }) (*models.SignatureTemplate, error) {
	template := &models.SignatureTemplate{}
	var fields []byte
	err := row.Scan(&template.ID, &template.TenantID, &template.CreatedBy, &template.Name,
		&fields, &template.Preset, &template.HTMLContent, &template.Status,
		&template.IsDefault, &template.IsShared, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	if err := json.Unmarshal(fields, &template.Fields); err != nil {
		return nil, fmt.Errorf("decode template fields: %w", err)
	}
	return template, nil
}

func (r *templateRepo) Create(ctx context.Context, template *models.SignatureTemplate) error {
	fields, err := json.Marshal(template.Fields)
	if err != nil {
		return fmt.Errorf("encode template fields: %w", err)
	}
	query := `
		INSERT INTO signature_templates (id, tenant_id, created_by, name, fields, preset, html_content, status, is_default, is_shared, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err = r.db.Exec(ctx, query, template.ID, template.TenantID, template.CreatedBy, template.Name,
		fields, template.Preset, template.HTMLContent, template.Status, template.IsDefault, template.IsShared)
	return translateError(err)
}

func (r *templateRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.SignatureTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM signature_templates WHERE tenant_id = $1 AND id = $2`
	return scanTemplate(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *templateRepo) GetDefault(ctx context.Context, tenantID uuid.UUID) (*models.SignatureTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM signature_templates WHERE tenant_id = $1 AND is_default = TRUE`
	return scanTemplate(r.db.QueryRow(ctx, query, tenantID))
}

func (r *templateRepo) Update(ctx context.Context, template *models.SignatureTemplate) error {
	fields, err := json.Marshal(template.Fields)
	if err != nil {
		return fmt.Errorf("encode template fields: %w", err)
	}
	query := `
		UPDATE signature_templates
		SET name = $1, fields = $2, preset = $3, html_content = $4, status = $5, is_shared = $6, updated_at = NOW()
		WHERE tenant_id = $7 AND id = $8
	`
	_, err = r.db.Exec(ctx, query, template.Name, fields, template.Preset, template.HTMLContent,
		template.Status, template.IsShared, template.TenantID, template.ID)
	return translateError(err)
}

func (r *templateRepo) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error {
	query := `UPDATE signature_templates SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`
	tag, err := r.db.Exec(ctx, query, status, tenantID, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *templateRepo) SetDefault(ctx context.Context, tenantID, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	clear := `UPDATE signature_templates SET is_default = FALSE, updated_at = NOW() WHERE tenant_id = $1 AND is_default = TRUE AND id <> $2`
	if _, err := tx.Exec(ctx, clear, tenantID, id); err != nil {
		return translateError(err)
	}

	set := `UPDATE signature_templates SET is_default = TRUE, updated_at = NOW() WHERE tenant_id = $1 AND id = $2`
	tag, err := tx.Exec(ctx, set, tenantID, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *templateRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM signature_templates WHERE tenant_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *templateRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.SignatureTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM signature_templates
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.SignatureTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

func (r *templateRepo) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM signature_templates WHERE tenant_id = $1`, tenantID).Scan(&count)
	return count, err
}
