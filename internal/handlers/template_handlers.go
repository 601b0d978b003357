package handlers

import (
	"net/http"

	"signly/internal/common"
	"signly/internal/services"

	"github.com/labstack/echo/v4"
)

type TemplateHandlers struct {
	templateService services.TemplateService
}

func NewTemplateHandlers(templateService services.TemplateService) *TemplateHandlers {
	return &TemplateHandlers{templateService: templateService}
}

func (h *TemplateHandlers) CreateTemplate(c echo.Context) error {
	ctx := c.Request().Context()

	tenant, ok := common.GetTenantFromContext(ctx)
	if !ok {
		return common.SendServerError(c, "Tenant not resolved")
	}
	userID, _ := common.GetUserIDFromContext(ctx)

	var req services.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, "Invalid request format")
	}

	template, err := h.templateService.Create(ctx, tenant, userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandlers) GetTemplate(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	template, err := h.templateService.GetByID(ctx, tenantID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, template)
}

func (h *TemplateHandlers) ListTemplates(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	limit, offset := queryPagination(c)
	templates, err := h.templateService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandlers) UpdateTemplate(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req services.UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, "Invalid request format")
	}

	template, err := h.templateService.Update(ctx, tenantID, id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, template)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *TemplateHandlers) UpdateTemplateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, "Invalid request format")
	}

	if err := h.templateService.UpdateStatus(ctx, tenantID, id, req.Status); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDefaultTemplate makes one template the tenant default and clears the
// flag everywhere else in the tenant.
func (h *TemplateHandlers) SetDefaultTemplate(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.templateService.SetDefault(ctx, tenantID, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TemplateHandlers) DeleteTemplate(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.templateService.Delete(ctx, tenantID, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
