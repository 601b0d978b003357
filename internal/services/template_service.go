package services

import (
	"context"
	"strings"

	"signly/internal/common"
	"signly/internal/models"
	"signly/internal/render"
	"signly/internal/repositories"

	"github.com/google/uuid"
)

type TemplateService interface {
	Create(ctx context.Context, tenant *models.Tenant, userID uuid.UUID, req *CreateTemplateRequest) (*models.SignatureTemplate, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.SignatureTemplate, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req *UpdateTemplateRequest) (*models.SignatureTemplate, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error
	SetDefault(ctx context.Context, tenantID, id uuid.UUID) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.SignatureTemplate, error)
}

type templateService struct {
	templateRepo repositories.TemplateRepository
	renderer     *render.Renderer
}

func NewTemplateService(templateRepo repositories.TemplateRepository, renderer *render.Renderer) TemplateService {
	return &templateService{templateRepo: templateRepo, renderer: renderer}
}

type CreateTemplateRequest struct {
	Name      string                 `json:"name"`
	Fields    models.SignatureFields `json:"fields"`
	Preset    string                 `json:"preset"`
	Status    string                 `json:"status"`
	IsDefault bool                   `json:"is_default"`
	IsShared  bool                   `json:"is_shared"`
}

type UpdateTemplateRequest struct {
	Name     string                 `json:"name"`
	Fields   models.SignatureFields `json:"fields"`
	Preset   string                 `json:"preset"`
	IsShared bool                   `json:"is_shared"`
}

func (s *templateService) Create(ctx context.Context, tenant *models.Tenant, userID uuid.UUID, req *CreateTemplateRequest) (*models.SignatureTemplate, error) {
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return nil, validationErr(err.Error())
	}

	status := req.Status
	if status == "" {
		status = models.TemplateStatusDraft
	}
	if !models.ValidTemplateStatus(status) {
		return nil, validationErr("status must be draft, active or archived")
	}

	preset := req.Preset
	if preset == "" {
		preset = render.DefaultPreset
	}
	if !render.ValidPreset(preset) {
		return nil, unknownPresetErr(preset)
	}

	count, err := s.templateRepo.CountByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	if count >= tenant.MaxTemplates {
		return nil, ErrLimitExceeded
	}

	template := &models.SignatureTemplate{
		ID:          uuid.New(),
		TenantID:    tenant.ID,
		CreatedBy:   userID,
		Name:        req.Name,
		Fields:      req.Fields,
		Preset:      preset,
		HTMLContent: s.renderer.Render(req.Fields, preset),
		Status:      status,
		IsShared:    req.IsShared,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	if req.IsDefault {
		if err := s.templateRepo.SetDefault(ctx, tenant.ID, template.ID); err != nil {
			return nil, err
		}
		template.IsDefault = true
	}

	return template, nil
}

func unknownPresetErr(preset string) error {
	return validationErr("unknown preset " + preset + ": must be custom or one of " + strings.Join(render.PresetNames(), ", "))
}

func (s *templateService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.SignatureTemplate, error) {
	return s.templateRepo.GetByID(ctx, tenantID, id)
}

func (s *templateService) Update(ctx context.Context, tenantID, id uuid.UUID, req *UpdateTemplateRequest) (*models.SignatureTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		template.Name = req.Name
	}
	if req.Preset != "" {
		if !render.ValidPreset(req.Preset) {
			return nil, unknownPresetErr(req.Preset)
		}
		template.Preset = req.Preset
	}
	template.Fields = req.Fields
	template.IsShared = req.IsShared
	// The stored HTML is derived state; every content write regenerates it.
	template.HTMLContent = s.renderer.Render(template.Fields, template.Preset)

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *templateService) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, status string) error {
	if !models.ValidTemplateStatus(status) {
		return validationErr("status must be draft, active or archived")
	}
	return s.templateRepo.UpdateStatus(ctx, tenantID, id, status)
}

func (s *templateService) SetDefault(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.templateRepo.SetDefault(ctx, tenantID, id)
}

func (s *templateService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.templateRepo.Delete(ctx, tenantID, id)
}

func (s *templateService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.SignatureTemplate, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.templateRepo.List(ctx, tenantID, limit, offset)
}
