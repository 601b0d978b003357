package services

import (
	"context"

	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/google/uuid"
)

type AssignmentService interface {
	Assign(ctx context.Context, tenantID, userID, templateID uuid.UUID) (*models.TemplateAssignment, error)
	Unassign(ctx context.Context, tenantID, id uuid.UUID) error
	ListForUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*models.TemplateAssignment, error)
	ListForTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]*models.TemplateAssignment, error)
}

type assignmentService struct {
	assignmentRepo repositories.AssignmentRepository
	userRepo       repositories.UserRepository
	templateRepo   repositories.TemplateRepository
}

func NewAssignmentService(assignmentRepo repositories.AssignmentRepository,
	userRepo repositories.UserRepository, templateRepo repositories.TemplateRepository) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		templateRepo:   templateRepo,
	}
}

func (s *assignmentService) Assign(ctx context.Context, tenantID, userID, templateID uuid.UUID) (*models.TemplateAssignment, error) {
	// Both sides of the link must resolve inside the caller's tenant
	// before anything is written.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TenantID != tenantID {
		return nil, repositories.ErrNotFound
	}
	if _, err := s.templateRepo.GetByID(ctx, tenantID, templateID); err != nil {
		return nil, err
	}

	assignment := &models.TemplateAssignment{
		ID:         uuid.New(),
		TenantID:   tenantID,
		UserID:     userID,
		TemplateID: templateID,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *assignmentService) Unassign(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.assignmentRepo.Delete(ctx, tenantID, id)
}

func (s *assignmentService) ListForUser(ctx context.Context, tenantID, userID uuid.UUID) ([]*models.TemplateAssignment, error) {
	return s.assignmentRepo.ListByUser(ctx, tenantID, userID)
}

func (s *assignmentService) ListForTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]*models.TemplateAssignment, error) {
	return s.assignmentRepo.ListByTemplate(ctx, tenantID, templateID)
}
