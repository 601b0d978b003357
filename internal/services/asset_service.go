package services

import (
	"context"
	"io"
	"path"
	"time"

	"signly/internal/common"
	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/google/uuid"
)

const presignedURLExpiry = 7 * 24 * time.Hour

type AssetService interface {
	Upload(ctx context.Context, tenant *models.Tenant, userID uuid.UUID, name, contentType string, size int64, reader io.Reader) (*models.Asset, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Asset, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Asset, error)
}

type assetService struct {
	assetRepo repositories.AssetRepository
	storage   StorageService
}

func NewAssetService(assetRepo repositories.AssetRepository, storage StorageService) AssetService {
	return &assetService{assetRepo: assetRepo, storage: storage}
}

func (s *assetService) Upload(ctx context.Context, tenant *models.Tenant, userID uuid.UUID, name, contentType string, size int64, reader io.Reader) (*models.Asset, error) {
	if err := common.ValidateRequiredString(name, "name"); err != nil {
		return nil, validationErr(err.Error())
	}
	if size <= 0 {
		return nil, validationErr("file is empty")
	}

	used, err := s.assetRepo.TotalSizeByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	if used+size > int64(tenant.MaxStorageMB)*1024*1024 {
		return nil, ErrLimitExceeded
	}

	// Object keys are namespaced per tenant so listings and lifecycle
	// rules stay tenant-local inside the shared bucket.
	storedName := tenant.ID.String() + "/" + uuid.NewString() + path.Ext(name)
	if err := s.storage.Upload(ctx, storedName, reader, size, contentType); err != nil {
		return nil, err
	}

	url, err := s.storage.PresignedURL(ctx, storedName, presignedURLExpiry)
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		ID:         uuid.New(),
		TenantID:   tenant.ID,
		UploadedBy: userID,
		Name:       name,
		StoredName: storedName,
		MimeType:   contentType,
		SizeBytes:  size,
		URL:        url,
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		// Keep the store consistent with the table.
		_ = s.storage.Delete(ctx, storedName)
		return nil, err
	}

	return asset, nil
}

func (s *assetService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Asset, error) {
	return s.assetRepo.GetByID(ctx, tenantID, id)
}

func (s *assetService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	asset, err := s.assetRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, asset.StoredName); err != nil {
		return err
	}
	return s.assetRepo.Delete(ctx, tenantID, id)
}

func (s *assetService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Asset, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.assetRepo.List(ctx, tenantID, limit, offset)
}
