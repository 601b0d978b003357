package services

import (
	"context"
	"strings"

	"signly/internal/auth"
	"signly/internal/common"
	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/google/uuid"
)

type TenantService interface {
	// Register creates the tenant and its first admin user in one call.
	Register(ctx context.Context, req *RegisterRequest) (*models.Tenant, *models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	Update(ctx context.Context, req *UpdateTenantRequest) (*models.Tenant, error)
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
	tokens     auth.TokenService
}

func NewTenantService(tenantRepo repositories.TenantRepository, tokens auth.TokenService) TenantService {
	return &tenantService{tenantRepo: tenantRepo, tokens: tokens}
}

type RegisterRequest struct {
	TenantName string `json:"tenant_name"`
	Domain     string `json:"domain"`
	Plan       string `json:"plan"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type UpdateTenantRequest struct {
	ID     uuid.UUID
	Name   string `json:"name"`
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

func (s *tenantService) Register(ctx context.Context, req *RegisterRequest) (*models.Tenant, *models.User, error) {
	req.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := common.ValidateRequiredString(req.TenantName, "tenant_name"); err != nil {
		return nil, nil, validationErr(err.Error())
	}
	if err := common.ValidateDomain(req.Domain); err != nil {
		return nil, nil, validationErr(err.Error())
	}
	if err := common.ValidateEmail(req.Email); err != nil {
		return nil, nil, validationErr(err.Error())
	}
	if len(req.Password) < 8 {
		return nil, nil, errPasswordTooShort
	}

	plan := req.Plan
	if plan == "" {
		plan = "free"
	}
	limits, ok := models.PlanLimits[plan]
	if !ok {
		return nil, nil, errUnknownPlan
	}

	hash, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	tenant := &models.Tenant{
		ID:           uuid.New(),
		Name:         req.TenantName,
		Domain:       req.Domain,
		Plan:         plan,
		MaxUsers:     limits.MaxUsers,
		MaxTemplates: limits.MaxTemplates,
		MaxStorageMB: limits.MaxStorageMB,
		Status:       "active",
	}
	admin := &models.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Status:       "active",
	}

	// Both rows land in one transaction: a duplicate email must not leave
	// behind a committed tenant squatting on the domain.
	if err := s.tenantRepo.CreateWithAdmin(ctx, tenant, admin); err != nil {
		return nil, nil, err
	}

	return tenant, admin, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *tenantService) Update(ctx context.Context, req *UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		tenant.Name = req.Name
	}
	if req.Status != "" {
		tenant.Status = req.Status
	}
	if req.Plan != "" && req.Plan != tenant.Plan {
		limits, ok := models.PlanLimits[req.Plan]
		if !ok {
			return nil, errUnknownPlan
		}
		tenant.Plan = req.Plan
		tenant.MaxUsers = limits.MaxUsers
		tenant.MaxTemplates = limits.MaxTemplates
		tenant.MaxStorageMB = limits.MaxStorageMB
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}
