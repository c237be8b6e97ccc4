package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleStaff is the only role; every authenticated caller shares it.
const RoleStaff = "staff"

// LoginRequest carries the shared staff password.
type LoginRequest struct {
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued session token. ExpiresIn is zero when sessions never expire.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims represents the session token payload.
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
