package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"signly/internal/auth"
	"signly/internal/common"
	"signly/internal/models"
	"signly/internal/repositories"
	"signly/internal/services"

	"github.com/labstack/echo/v4"
)

const refreshCookieName = "signly_refresh"

// AuthHandlers handles registration, login and the token lifecycle.
type AuthHandlers struct {
	tokens        auth.TokenService
	tenantService services.TenantService
	userRepo      repositories.UserRepository
}

func NewAuthHandlers(tokens auth.TokenService, tenantService services.TenantService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		tokens:        tokens,
		tenantService: tenantService,
		userRepo:      userRepo,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	models.TokenResponse
	User   *models.User   `json:"user"`
	Tenant *models.Tenant `json:"tenant,omitempty"`
}

// Register creates a tenant together with its first admin user and logs
// the admin in.
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, "Invalid request format")
	}

	tenant, admin, err := h.tenantService.Register(ctx, &req)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.issueTokens(c, admin)
	if err != nil {
		return respondError(c, err)
	}
	resp.Tenant = tenant

	return c.JSON(http.StatusCreated, resp)
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable in the response.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, http.StatusBadRequest, common.CodeValidationFailed, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return common.SendValidationError(c, "email", "email and password are required")
	}

	user, err := h.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, services.ErrInvalidCredentials)
		}
		return respondError(c, err)
	}

	if !h.tokens.VerifyPassword(req.Password, user.PasswordHash) {
		return respondError(c, services.ErrInvalidCredentials)
	}

	resp, err := h.issueTokens(c, user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Refresh mints a new access token from the refresh cookie.
func (h *AuthHandlers) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Missing refresh token")
	}

	accessToken, err := h.tokens.RefreshAccessToken(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, auth.ErrTokenInvalid) {
			return common.SendError(c, http.StatusUnauthorized, common.CodeTokenInvalid, "Invalid or expired refresh token")
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
	})
}

// LogoutAll bumps the caller's token version, invalidating every refresh
// token issued so far, and clears the refresh cookie.
func (h *AuthHandlers) LogoutAll(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Not authenticated")
	}

	if err := h.tokens.RevokeAllTokens(ctx, userID); err != nil {
		return respondError(c, err)
	}

	h.clearRefreshCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user and resolved tenant.
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendError(c, http.StatusUnauthorized, common.CodeTokenMissing, "Not authenticated")
	}
	tenant, _ := common.GetTenantFromContext(ctx)

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":   user,
		"tenant": tenant,
	})
}

func (h *AuthHandlers) issueTokens(c echo.Context, user *models.User) (*AuthResponse, error) {
	accessToken, err := h.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := h.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	h.setRefreshCookie(c, refreshToken)

	return &AuthResponse{
		TokenResponse: models.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
		},
		User: user,
	}, nil
}

// The refresh token only ever travels in an httpOnly same-site cookie
// scoped to the auth endpoints.
func (h *AuthHandlers) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/v1/auth",
		MaxAge:   int(auth.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandlers) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/v1/auth",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
