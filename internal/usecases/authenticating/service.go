package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"github.com/vfg2006/demand-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/demand-forecast-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "demand-forecast-api"

type Authenticator interface {
	LoginUser(email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	users     map[string]domain.User
	secretKey string
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewService registra os operadores configurados. Entradas sem email ou hash são ignoradas.
func NewService(cfg *config.Config) Authenticator {
	s := &Service{
		users:     make(map[string]domain.User),
		secretKey: cfg.SecretKey,
		tokenTTL:  cfg.Auth.TokenTTL,
		now:       time.Now,
	}

	s.addUser(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, domain.RoleAdmin)
	s.addUser(cfg.Auth.AnalystEmail, cfg.Auth.AnalystPasswordHash, domain.RoleAnalyst)

	if cfg.Auth.Enabled && len(s.users) == 0 {
		logrus.Warn("Autenticação habilitada sem usuários configurados")
	}

	return s
}

func (s *Service) addUser(email, passwordHash string, roleID int) {
	email = handleEmail(email)
	if email == "" || passwordHash == "" {
		return
	}

	s.users[email] = domain.User{
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       roleID,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(email, password string) (*domain.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	// Usuário inexistente e senha errada retornam o mesmo erro
	user, ok := s.users[email]
	if !ok {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar token")
		return nil, NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, "")
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *Service) generateJWT(user domain.User) (string, error) {
	jti, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := domain.Claims{
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
