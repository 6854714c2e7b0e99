package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
)

// User é um operador configurado no ambiente; não há cadastro pela API
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type Claims struct {
	UserEmail  string `json:"email"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
