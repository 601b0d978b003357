package services

import (
	"context"
	"testing"

	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	tenantRepo *MockTenantRepository
	tokens     *MockTokenService
	service    TenantService
	ctx        context.Context
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.tenantRepo = new(MockTenantRepository)
	s.tokens = new(MockTokenService)
	s.service = NewTenantService(s.tenantRepo, s.tokens)
	s.ctx = context.Background()
}

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		TenantName: "Acme Corp",
		Domain:     "acme.com",
		Email:      "dana@acme.com",
		Password:   "sufficiently-long",
		FirstName:  "Dana",
		LastName:   "Reyes",
	}
}

func (s *TenantServiceTestSuite) TestRegister_Success() {
	s.tokens.On("HashPassword", "sufficiently-long").Return("$2a$12$hash", nil)
	s.tenantRepo.On("CreateWithAdmin", s.ctx,
		mock.AnythingOfType("*models.Tenant"), mock.AnythingOfType("*models.User")).Return(nil)

	tenant, admin, err := s.service.Register(s.ctx, validRegisterRequest())
	s.Require().NoError(err)

	// Missing plan defaults to free with its limits materialized on the row.
	s.Equal("free", tenant.Plan)
	s.Equal(models.PlanLimits["free"].MaxUsers, tenant.MaxUsers)
	s.Equal(models.PlanLimits["free"].MaxTemplates, tenant.MaxTemplates)
	s.Equal("active", tenant.Status)

	// The first user is always the tenant admin.
	s.Equal(models.RoleAdmin, admin.Role)
	s.Equal(tenant.ID, admin.TenantID)
	s.Equal("$2a$12$hash", admin.PasswordHash)
}

func (s *TenantServiceTestSuite) TestRegister_NormalizesDomainAndEmail() {
	s.tokens.On("HashPassword", mock.Anything).Return("$2a$12$hash", nil)
	s.tenantRepo.On("CreateWithAdmin", s.ctx,
		mock.AnythingOfType("*models.Tenant"), mock.AnythingOfType("*models.User")).Return(nil)

	req := validRegisterRequest()
	req.Domain = "  ACME.com "
	req.Email = " Dana@Acme.COM "

	tenant, admin, err := s.service.Register(s.ctx, req)
	s.Require().NoError(err)
	s.Equal("acme.com", tenant.Domain)
	s.Equal("dana@acme.com", admin.Email)
}

func (s *TenantServiceTestSuite) TestRegister_InvalidDomain() {
	req := validRegisterRequest()
	req.Domain = "not a domain"

	_, _, err := s.service.Register(s.ctx, req)

	var validation *ValidationError
	s.ErrorAs(err, &validation)
	s.tenantRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestRegister_ShortPassword() {
	req := validRegisterRequest()
	req.Password = "short"

	_, _, err := s.service.Register(s.ctx, req)

	var validation *ValidationError
	s.ErrorAs(err, &validation)
}

func (s *TenantServiceTestSuite) TestRegister_UnknownPlan() {
	req := validRegisterRequest()
	req.Plan = "platinum"

	_, _, err := s.service.Register(s.ctx, req)

	var validation *ValidationError
	s.ErrorAs(err, &validation)
}

func (s *TenantServiceTestSuite) TestRegister_DuplicateDomainOrEmail() {
	// Domain and email collisions surface the same way; the single atomic
	// call means a failed registration commits nothing, so the only storage
	// interaction is the one CreateWithAdmin attempt.
	s.tokens.On("HashPassword", mock.Anything).Return("$2a$12$hash", nil)
	s.tenantRepo.On("CreateWithAdmin", s.ctx,
		mock.AnythingOfType("*models.Tenant"), mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate)

	_, _, err := s.service.Register(s.ctx, validRegisterRequest())
	s.ErrorIs(err, repositories.ErrDuplicate)
	s.tenantRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.Len(s.tenantRepo.Calls, 1)
}

func (s *TenantServiceTestSuite) TestUpdate_PlanChangeRewritesLimits() {
	tenant := &models.Tenant{
		ID:           uuid.New(),
		Name:         "Acme Corp",
		Plan:         "free",
		MaxUsers:     5,
		MaxTemplates: 3,
		MaxStorageMB: 50,
		Status:       "active",
	}
	s.tenantRepo.On("GetByID", s.ctx, tenant.ID).Return(tenant, nil)
	s.tenantRepo.On("Update", s.ctx, mock.AnythingOfType("*models.Tenant")).Return(nil)

	updated, err := s.service.Update(s.ctx, &UpdateTenantRequest{ID: tenant.ID, Plan: "pro"})
	s.Require().NoError(err)
	s.Equal("pro", updated.Plan)
	s.Equal(models.PlanLimits["pro"].MaxUsers, updated.MaxUsers)
	s.Equal(models.PlanLimits["pro"].MaxStorageMB, updated.MaxStorageMB)
}

func (s *TenantServiceTestSuite) TestUpdate_UnknownPlanRejected() {
	tenant := &models.Tenant{ID: uuid.New(), Plan: "free"}
	s.tenantRepo.On("GetByID", s.ctx, tenant.ID).Return(tenant, nil)

	_, err := s.service.Update(s.ctx, &UpdateTenantRequest{ID: tenant.ID, Plan: "platinum"})

	var validation *ValidationError
	s.ErrorAs(err, &validation)
	s.tenantRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
