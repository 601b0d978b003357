package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"signly/internal/models"
	"signly/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrTokenInvalid covers every verification failure: bad signature, wrong
// signing method, malformed payload and expiry. Callers cannot distinguish
// an expired token from a tampered one.
var ErrTokenInvalid = errors.New("token invalid")

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	bcryptCost = 12

	tokenIssuer = "signly"
)

// AccessClaims authorize individual requests.
type AccessClaims struct {
	UserID   uuid.UUID   `json:"user_id"`
	TenantID uuid.UUID   `json:"tenant_id"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims are only used to mint new access tokens. TokenVersion is
// the user's counter captured at issuance; a mismatch against the live
// counter rejects the token.
type RefreshClaims struct {
	UserID       uuid.UUID `json:"user_id"`
	TokenVersion int       `json:"token_version"`
	jwt.RegisteredClaims
}

// TokenService owns credential hashing and the signed-token lifecycle.
type TokenService interface {
	HashPassword(plaintext string) (string, error)
	VerifyPassword(plaintext, hash string) bool
	IssueAccessToken(user *models.User) (string, error)
	IssueRefreshToken(user *models.User) (string, error)
	VerifyAccessToken(token string) (*AccessClaims, error)
	VerifyRefreshToken(token string) (*RefreshClaims, error)
	// RefreshAccessToken verifies the refresh token against the user's
	// live token version and mints an access token from the user's
	// current claims, so role and email changes propagate immediately.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	// RevokeAllTokens bumps the user's token version, invalidating every
	// outstanding refresh token in one operation.
	RevokeAllTokens(ctx context.Context, userID uuid.UUID) error
}

type tokenService struct {
	users         repositories.UserRepository
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

func NewTokenService(users repositories.UserRepository, accessSecret, refreshSecret string) TokenService {
	return &tokenService{
		users:         users,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

func (s *tokenService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *tokenService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *tokenService) IssueAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := AccessClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) IssueRefreshToken(user *models.User) (string, error) {
	now := s.now()
	claims := RefreshClaims{
		UserID:       user.ID,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(tokenString, claims, s.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *tokenService) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(tokenString, claims, s.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *tokenService) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}

func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrTokenInvalid
		}
		return "", err
	}

	if user.TokenVersion != claims.TokenVersion {
		return "", ErrTokenInvalid
	}

	return s.IssueAccessToken(user)
}

func (s *tokenService) RevokeAllTokens(ctx context.Context, userID uuid.UUID) error {
	return s.users.IncrementTokenVersion(ctx, userID)
}
