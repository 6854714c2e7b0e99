package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"github.com/vfg2006/demand-forecast-api/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T) authenticating.Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha"), bcrypt.MinCost)
	require.NoError(t, err)

	return authenticating.NewService(&config.Config{
		SecretKey: "test-secret",
		Auth: config.Auth{
			Enabled:             true,
			TokenTTL:            time.Hour,
			AnalystEmail:        "analyst@forecast.io",
			AnalystPasswordHash: string(hash),
		},
	})
}

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if ok {
			w.Header().Set("X-Role", map[int]string{domain.RoleAdmin: "admin", domain.RoleAnalyst: "analyst"}[claims.UserRoleID])
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	authenticator := newAuthenticator(t)

	login, err := authenticator.LoginUser("analyst@forecast.io", "senha")
	require.NoError(t, err)

	tests := []struct {
		name       string
		enabled    bool
		path       string
		header     string
		wantStatus int
		wantRole   string
	}{
		{
			name:       "Autenticação desabilitada segue como analista",
			enabled:    false,
			path:       "/v1/stores",
			wantStatus: http.StatusOK,
			wantRole:   "analyst",
		},
		{
			name:       "Rota pública sem token",
			enabled:    true,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem header Authorization",
			enabled:    true,
			path:       "/v1/stores",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Header sem Bearer",
			enabled:    true,
			path:       "/v1/stores",
			header:     login.Token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token inválido",
			enabled:    true,
			path:       "/v1/stores",
			header:     "Bearer abc.def.ghi",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido carrega o perfil",
			enabled:    true,
			path:       "/v1/stores",
			header:     "Bearer " + login.Token,
			wantStatus: http.StatusOK,
			wantRole:   "analyst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator, tt.enabled)(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	authenticator := newAuthenticator(t)

	login, err := authenticator.LoginUser("analyst@forecast.io", "senha")
	require.NoError(t, err)

	tests := []struct {
		name       string
		guard      func(http.Handler) http.Handler
		enabled    bool
		wantStatus int
	}{
		{"Analista em rota de todos os perfis", AllRoles(), true, http.StatusOK},
		{"Analista em rota de admin", AdminOnly(), true, http.StatusForbidden},
		{"Anônimo com autenticação desabilitada em rota de todos os perfis", AllRoles(), false, http.StatusOK},
		{"Anônimo com autenticação desabilitada em rota de admin", AdminOnly(), false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/dataset-refresh/run", nil)
			req.Header.Set("Authorization", "Bearer "+login.Token)
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator, tt.enabled)(tt.guard(claimsEcho())).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("Sem claims no contexto", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AllRoles()(claimsEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:8501"})(claimsEcho())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:8501", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight encerra a requisição", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/stores", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
