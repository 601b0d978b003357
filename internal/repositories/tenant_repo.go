package repositories

import (
	"context"

	"signly/internal/models"

	"github.com/google/uuid"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	// CreateWithAdmin inserts the tenant and its first admin user in one
	// transaction, so a duplicate email cannot strand a userless tenant
	// holding the domain.
	CreateWithAdmin(ctx context.Context, tenant *models.Tenant, admin *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetByDomain(ctx context.Context, domain string) (*models.Tenant, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	List(ctx context.Context, limit, offset int) ([]*models.Tenant, error)
}

type tenantRepo struct {
	db DB
}

func NewTenantRepo(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, domain, plan, max_users, max_templates, max_storage_mb, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, tenant.ID, tenant.Name, tenant.Domain, tenant.Plan,
		tenant.MaxUsers, tenant.MaxTemplates, tenant.MaxStorageMB, tenant.Status)
	return translateError(err)
}

func (r *tenantRepo) CreateWithAdmin(ctx context.Context, tenant *models.Tenant, admin *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertTenant := `
		INSERT INTO tenants (id, name, domain, plan, max_users, max_templates, max_storage_mb, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, insertTenant, tenant.ID, tenant.Name, tenant.Domain, tenant.Plan,
		tenant.MaxUsers, tenant.MaxTemplates, tenant.MaxStorageMB, tenant.Status); err != nil {
		return translateError(err)
	}

	insertAdmin := `
		INSERT INTO users (id, tenant_id, email, password_hash, role, first_name, last_name, title, department, token_version, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, insertAdmin, admin.ID, admin.TenantID, admin.Email, admin.PasswordHash, admin.Role,
		admin.FirstName, admin.LastName, admin.Title, admin.Department, admin.TokenVersion, admin.Status); err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	query := `
		SELECT id, name, domain, plan, max_users, max_templates, max_storage_mb, status, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&tenant.ID, &tenant.Name, &tenant.Domain, &tenant.Plan,
		&tenant.MaxUsers, &tenant.MaxTemplates, &tenant.MaxStorageMB, &tenant.Status, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return tenant, nil
}

func (r *tenantRepo) GetByDomain(ctx context.Context, domain string) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	query := `
		SELECT id, name, domain, plan, max_users, max_templates, max_storage_mb, status, created_at, updated_at
		FROM tenants
		WHERE domain = $1
	`
	err := r.db.QueryRow(ctx, query, domain).Scan(&tenant.ID, &tenant.Name, &tenant.Domain, &tenant.Plan,
		&tenant.MaxUsers, &tenant.MaxTemplates, &tenant.MaxStorageMB, &tenant.Status, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return tenant, nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *models.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $1, plan = $2, max_users = $3, max_templates = $4, max_storage_mb = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, tenant.Name, tenant.Plan, tenant.MaxUsers,
		tenant.MaxTemplates, tenant.MaxStorageMB, tenant.Status, tenant.ID)
	return translateError(err)
}

func (r *tenantRepo) List(ctx context.Context, limit, offset int) ([]*models.Tenant, error) {
	query := `
		SELECT id, name, domain, plan, max_users, max_templates, max_storage_mb, status, created_at, updated_at
		FROM tenants
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.Domain, &tenant.Plan,
			&tenant.MaxUsers, &tenant.MaxTemplates, &tenant.MaxStorageMB, &tenant.Status, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}
	return tenants, rows.Err()
}
