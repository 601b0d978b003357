package services

import (
	"context"
	"errors"
	"strings"

	"signly/internal/auth"
	"signly/internal/common"
	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, tenant *models.Tenant, req *CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error)
}

type userService struct {
	userRepo       repositories.UserRepository
	templateRepo   repositories.TemplateRepository
	assignmentRepo repositories.AssignmentRepository
	tokens         auth.TokenService
}

func NewUserService(userRepo repositories.UserRepository, templateRepo repositories.TemplateRepository,
	assignmentRepo repositories.AssignmentRepository, tokens auth.TokenService) UserService {
	return &userService{
		userRepo:       userRepo,
		templateRepo:   templateRepo,
		assignmentRepo: assignmentRepo,
		tokens:         tokens,
	}
}

type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

type UpdateUserRequest struct {
	Role       string `json:"role"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

func (s *userService) Create(ctx context.Context, tenant *models.Tenant, req *CreateUserRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := common.ValidateEmail(req.Email); err != nil {
		return nil, validationErr(err.Error())
	}
	if len(req.Password) < 8 {
		return nil, errPasswordTooShort
	}

	role := models.RoleMember
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			return nil, validationErr(err.Error())
		}
		role = parsed
	}

	count, err := s.userRepo.CountByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	if count >= tenant.MaxUsers {
		return nil, ErrLimitExceeded
	}

	hash, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Title:        req.Title,
		Department:   req.Department,
		Status:       "active",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.assignDefaultTemplate(ctx, tenant.ID, user.ID)

	return user, nil
}

// assignDefaultTemplate gives new users the tenant's default template when
// one exists. Best effort: a missing default is normal and an assignment
// failure must not fail user creation.
func (s *userService) assignDefaultTemplate(ctx context.Context, tenantID, userID uuid.UUID) {
	template, err := s.templateRepo.GetDefault(ctx, tenantID)
	if err != nil {
		return
	}
	_ = s.assignmentRepo.Create(ctx, &models.TemplateAssignment{
		ID:         uuid.New(),
		TenantID:   tenantID,
		UserID:     userID,
		TemplateID: template.ID,
	})
}

func (s *userService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// GetByID is unscoped; never expose a user from another tenant.
	if user.TenantID != tenantID {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, tenantID, id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Role != "" {
		role, err := models.ParseRole(req.Role)
		if err != nil {
			return nil, validationErr(err.Error())
		}
		// A role change invalidates outstanding refresh tokens so the
		// old role cannot be refreshed back into existence.
		if role != user.Role {
			if err := s.tokens.RevokeAllTokens(ctx, user.ID); err != nil {
				return nil, err
			}
		}
		user.Role = role
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Title != "" {
		user.Title = req.Title
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Status != "" {
		user.Status = req.Status
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, tenantID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return repositories.ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, tenantID, id)
}

func (s *userService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error) {
	limit, offset = common.ValidatePaginationParams(limit, offset)
	return s.userRepo.List(ctx, tenantID, limit, offset)
}
