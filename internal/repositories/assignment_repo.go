package repositories

import (
	"context"

	"signly/internal/models"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.TemplateAssignment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	ListByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*models.TemplateAssignment, error)
	ListByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]*models.TemplateAssignment, error)
}

type assignmentRepo struct {
	db DB
}

func NewAssignmentRepo(db DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *models.TemplateAssignment) error {
	// unique(user_id, template_id) surfaces re-assignment as ErrDuplicate
	query := `
		INSERT INTO template_assignments (id, tenant_id, user_id, template_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, assignment.ID, assignment.TenantID, assignment.UserID, assignment.TemplateID)
	return translateError(err)
}

func (r *assignmentRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM template_assignments WHERE tenant_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *assignmentRepo) ListByUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*models.TemplateAssignment, error) {
	query := `
		SELECT id, tenant_id, user_id, template_id, created_at
		FROM template_assignments
		WHERE tenant_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, tenantID, userID)
}

func (r *assignmentRepo) ListByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]*models.TemplateAssignment, error) {
	query := `
		SELECT id, tenant_id, user_id, template_id, created_at
		FROM template_assignments
		WHERE tenant_id = $1 AND template_id = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, tenantID, templateID)
}

func (r *assignmentRepo) list(ctx context.Context, query string, args ...any) ([]*models.TemplateAssignment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.TemplateAssignment
	for rows.Next() {
		assignment := &models.TemplateAssignment{}
		if err := rows.Scan(&assignment.ID, &assignment.TenantID, &assignment.UserID,
			&assignment.TemplateID, &assignment.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}
