package handlers

import (
	"net/http"

	"signly/internal/common"
	"signly/internal/services"

	"github.com/labstack/echo/v4"
)

type AssetHandlers struct {
	assetService services.AssetService
}

func NewAssetHandlers(assetService services.AssetService) *AssetHandlers {
	return &AssetHandlers{assetService: assetService}
}

// UploadAsset accepts a multipart form with a single "file" part and stores
// it in the tenant's object namespace.
func (h *AssetHandlers) UploadAsset(c echo.Context) error {
	ctx := c.Request().Context()

	tenant, ok := common.GetTenantFromContext(ctx)
	if !ok {
		return common.SendServerError(c, "Tenant not resolved")
	}
	userID, _ := common.GetUserIDFromContext(ctx)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.SendValidationError(c, "file", "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read upload")
	}
	defer src.Close()

	asset, err := h.assetService.Upload(ctx, tenant, userID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, src)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandlers) GetAsset(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	asset, err := h.assetService.GetByID(ctx, tenantID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, asset)
}

func (h *AssetHandlers) ListAssets(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	limit, offset := queryPagination(c)
	assets, err := h.assetService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, assets)
}

func (h *AssetHandlers) DeleteAsset(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, _ := common.GetTenantIDFromContext(ctx)

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.assetService.Delete(ctx, tenantID, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
