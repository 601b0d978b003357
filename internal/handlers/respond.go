package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"signly/internal/common"
	"signly/internal/repositories"
	"signly/internal/services"

	"github.com/labstack/echo/v4"
)

// queryPagination reads limit/offset query parameters, tolerating absent or
// malformed values. Services clamp the final bounds.
func queryPagination(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}

// respondError maps service and repository failures onto the stable error
// code taxonomy. Anything unrecognized becomes a generic 500.
func respondError(c echo.Context, err error) error {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, validation.Msg)
	case errors.Is(err, repositories.ErrNotFound):
		return common.SendNotFoundError(c, "Record")
	case errors.Is(err, repositories.ErrDuplicate):
		return common.SendError(c, http.StatusConflict, common.CodeDuplicateRecord, "Record already exists")
	case errors.Is(err, repositories.ErrRelationConstraint):
		return common.SendError(c, http.StatusConflict, common.CodeRelationConstraint, "Record is still referenced")
	case errors.Is(err, services.ErrLimitExceeded):
		return common.SendError(c, http.StatusForbidden, common.CodeLimitExceeded, "Tenant plan limit reached")
	case errors.Is(err, services.ErrInvalidCredentials):
		return common.SendError(c, http.StatusUnauthorized, common.CodeInvalidCredentials, "Invalid email or password")
	}
	c.Logger().Errorf("unhandled error: %v", err)
	return common.SendServerError(c, "Unexpected error")
}
