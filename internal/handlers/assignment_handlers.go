package handlers

import (
	"net/http"

	"signly/internal/common"
	"signly/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AssignmentHandlers struct {
	assignmentService services.AssignmentService
}

func NewAssignmentHandlers(assignmentService services.AssignmentService) *AssignmentHandlers {
	return &AssignmentHandlers{assignmentService: assignmentService}
}

type assignRequest struct {
	UserID     uuid.UUID `json:"user_id"`
	TemplateID uuid.UUID `json:"template_id"`
}

func (h *AssignmentHandlers) CreateAssignment(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, "Invalid request format")
	}
	if req.UserID == uuid.Nil {
		return common.SendValidationError(c, "user_id", "user_id is required")
	}
	if req.TemplateID == uuid.Nil {
		return common.SendValidationError(c, "template_id", "template_id is required")
	}

	assignment, err := h.assignmentService.Assign(ctx, tenantID, req.UserID, req.TemplateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandlers) DeleteAssignment(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.assignmentService.Unassign(ctx, tenantID, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAssignments filters by user_id or template_id; exactly one is required.
func (h *AssignmentHandlers) ListAssignments(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	userParam := c.QueryParam("user_id")
	templateParam := c.QueryParam("template_id")

	switch {
	case userParam != "" && templateParam != "":
		return common.SendValidationError(c, "user_id", "pass either user_id or template_id, not both")
	case userParam != "":
		userID, err := common.ValidateUUID(userParam, "user_id")
		if err != nil {
			return common.SendValidationError(c, "user_id", err.Error())
		}
		assignments, err := h.assignmentService.ListForUser(ctx, tenantID, userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, assignments)
	case templateParam != "":
		templateID, err := common.ValidateUUID(templateParam, "template_id")
		if err != nil {
			return common.SendValidationError(c, "template_id", err.Error())
		}
		assignments, err := h.assignmentService.ListForTemplate(ctx, tenantID, templateID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, assignments)
	default:
		return common.SendValidationError(c, "user_id", "user_id or template_id is required")
	}
}
