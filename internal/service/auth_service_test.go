package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/inquiry-desk/internal/models"
	appErrors "github.com/noah-isme/inquiry-desk/pkg/errors"
)

func newTestAuthService(cfg AuthConfig) *AuthService {
	if cfg.Secret == "" {
		cfg.Secret = "secret"
	}
	return NewAuthService(validator.New(), zap.NewNop(), cfg)
}

func TestAuthServiceLoginPlainPassword(t *testing.T) {
	svc := newTestAuthService(AuthConfig{Password: "letmein"})

	resp, err := svc.Login(context.Background(), models.LoginRequest{Password: "letmein"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Zero(t, resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, claims.Role)
	assert.Nil(t, claims.ExpiresAt, "sessions without a TTL never expire")
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(AuthConfig{Password: "letmein"})

	_, err := svc.Login(context.Background(), models.LoginRequest{Password: "nope"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, "Incorrect password. Please try again.", appErr.Message)
}

func TestAuthServiceLoginRequiresPassword(t *testing.T) {
	svc := newTestAuthService(AuthConfig{Password: "letmein"})

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, "Password required", appErrors.FromError(err).Message)
}

func TestAuthServiceEmptyConfiguredPasswordRejectsAll(t *testing.T) {
	svc := newTestAuthService(AuthConfig{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Password: "anything"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestAuthServiceLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := newTestAuthService(AuthConfig{Password: "ignored", PasswordHash: string(hash)})

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: "ignored"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: "hashed-secret"})
	assert.NoError(t, err)
}

func TestAuthServiceSessionTTL(t *testing.T) {
	svc := newTestAuthService(AuthConfig{Password: "pw", SessionTTL: time.Hour})
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	resp, err := svc.Login(context.Background(), models.LoginRequest{Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	_, err = svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = svc.ValidateToken(resp.AccessToken)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}

func TestAuthServiceValidateTokenRejectsForeignTokens(t *testing.T) {
	svc := newTestAuthService(AuthConfig{Password: "pw"})

	other := newTestAuthService(AuthConfig{Password: "pw", Secret: "different"})
	resp, err := other.Login(context.Background(), models.LoginRequest{Password: "pw"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(resp.AccessToken)
	assert.Error(t, err)

	wrongRole := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.JWTClaims{
		Role:             "student",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "inquiry-desk"},
	})
	signed, err := wrongRole.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)

	_, err = svc.ValidateToken("garbage")
	assert.Error(t, err)
}

func TestAuthServiceLogout(t *testing.T) {
	svc := newTestAuthService(AuthConfig{Password: "pw"})
	assert.NoError(t, svc.Logout(context.Background(), nil, models.LoginRequest{}))
}
