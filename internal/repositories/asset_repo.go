package repositories

import (
	"context"

	"signly/internal/models"

	"github.com/google/uuid"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Asset, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Asset, error)
	// TotalSizeByTenant backs the per-plan storage cap.
	TotalSizeByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type assetRepo struct {
	db DB
}

func NewAssetRepo(db DB) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO assets (id, tenant_id, uploaded_by, name, stored_name, mime_type, size_bytes, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, asset.ID, asset.TenantID, asset.UploadedBy, asset.Name,
		asset.StoredName, asset.MimeType, asset.SizeBytes, asset.URL)
	return translateError(err)
}

func (r *assetRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Asset, error) {
	asset := &models.Asset{}
	query := `
		SELECT id, tenant_id, uploaded_by, name, stored_name, mime_type, size_bytes, url, created_at, updated_at
		FROM assets
		WHERE tenant_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, tenantID, id).Scan(&asset.ID, &asset.TenantID, &asset.UploadedBy,
		&asset.Name, &asset.StoredName, &asset.MimeType, &asset.SizeBytes, &asset.URL, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return asset, nil
}

func (r *assetRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM assets WHERE tenant_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *assetRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Asset, error) {
	query := `
		SELECT id, tenant_id, uploaded_by, name, stored_name, mime_type, size_bytes, url, created_at, updated_at
		FROM assets
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		asset := &models.Asset{}
		if err := rows.Scan(&asset.ID, &asset.TenantID, &asset.UploadedBy, &asset.Name,
			&asset.StoredName, &asset.MimeType, &asset.SizeBytes, &asset.URL, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *assetRepo) TotalSizeByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(size_bytes), 0) FROM assets WHERE tenant_id = $1`, tenantID).Scan(&total)
	return total, err
}
