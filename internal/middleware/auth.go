package middleware

import (
	"context"
	"net/http"
	"strings"

	"signly/internal/auth"
	"signly/internal/common"
	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/labstack/echo/v4"
)

// The tenant access guard is three middleware applied in order:
//
//	Authenticate -> ValidateTenant -> [RequireRole]
//
// Each stage terminates the request on failure, so a missing token never
// reaches the tenant check and a tenant mismatch is reported before any
// role failure.

// Authenticate extracts the bearer token, verifies it and attaches the
// decoded claims to the request context.
func Authenticate(tokens auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Missing bearer token")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Missing bearer token")
			}

			claims, err := tokens.VerifyAccessToken(tokenString)
			if err != nil {
				return common.SendError(c, http.StatusUnauthorized, common.CodeTokenInvalid, "Invalid or expired token")
			}

			ctx := context.WithValue(c.Request().Context(), common.ClaimsKey, claims)
			ctx = context.WithValue(ctx, common.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, common.RoleKey, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ValidateTenant loads the authenticated user and its owning tenant,
// rejects tokens whose embedded tenant no longer matches the user's tenant
// (a token issued before a cross-tenant move, or data drift), and attaches
// the resolved tenant to the request context.
func ValidateTenant(users repositories.UserRepository, tenants repositories.TenantRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			claims, ok := ctx.Value(common.ClaimsKey).(*auth.AccessClaims)
			if !ok {
				return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Not authenticated")
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				if err == repositories.ErrNotFound {
					return common.SendError(c, http.StatusNotFound, common.CodeUserNotFound, "User not found")
				}
				return common.SendServerError(c, "Failed to load user")
			}

			if user.TenantID != claims.TenantID {
				return common.SendError(c, http.StatusForbidden, common.CodeTenantMismatch, "Token tenant does not match user tenant")
			}

			tenant, err := tenants.GetByID(ctx, user.TenantID)
			if err != nil {
				if err == repositories.ErrNotFound {
					return common.SendError(c, http.StatusNotFound, common.CodeTenantNotFound, "Tenant not found")
				}
				return common.SendServerError(c, "Failed to load tenant")
			}

			ctx = context.WithValue(ctx, common.TenantIDKey, tenant.ID)
			ctx = context.WithValue(ctx, common.TenantKey, tenant)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole gates routes needing elevated privilege. Applied after
// ValidateTenant on admin-only routes.
func RequireRole(required models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Not authenticated")
			}

			switch role {
			case required:
				return next(c)
			case models.RoleAdmin, models.RoleMember:
				return common.SendError(c, http.StatusForbidden, common.CodeInsufficientRole, "Insufficient role")
			default:
				// Token carries a role outside the closed set.
				return common.SendError(c, http.StatusUnauthorized, common.CodeTokenInvalid, "Invalid role claim")
			}
		}
	}
}
