package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/demand-forecast-api/internal/api/handler"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"github.com/vfg2006/demand-forecast-api/internal/usecases/authenticating"
	"github.com/vfg2006/demand-forecast-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/demand-forecast-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type recordingCronJob struct {
	triggered bool
}

func (j *recordingCronJob) TriggerManualSync() {
	j.triggered = true
}

func (j *recordingCronJob) GetStatus() map[string]any {
	return map[string]any{}
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		authEnabled bool
		method      string
		url         string
		header      map[string]string
		setup       func(service *mocks.MockForecaster)
		wantStatus  int
		validate    func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:        "Healthcheck público com autenticação habilitada",
			authEnabled: true,
			method:      http.MethodGet,
			url:         "/healthcheck",
			setup:       func(service *mocks.MockForecaster) {},
			wantStatus:  http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
			},
		},
		{
			name:        "Previsão exige token quando a autenticação está habilitada",
			authEnabled: true,
			method:      http.MethodGet,
			url:         "/v1/stores",
			setup:       func(service *mocks.MockForecaster) {},
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "Previsão liberada com autenticação desabilitada",
			authEnabled: false,
			method:      http.MethodGet,
			url:         "/v1/stores",
			setup: func(service *mocks.MockForecaster) {
				service.EXPECT().GetStoreRange(gomock.Any()).Return(&domain.StoreRange{MinStoreID: 1, MaxStoreID: 45, Stores: 45}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "Cron de admin negada para anônimo com autenticação desabilitada",
			authEnabled: false,
			method:      http.MethodPost,
			url:         "/v1/cron/dataset-refresh/run",
			setup:       func(service *mocks.MockForecaster) {},
			wantStatus:  http.StatusForbidden,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
			},
		},
		{
			name:        "Status das crons negado para anônimo com autenticação desabilitada",
			authEnabled: false,
			method:      http.MethodGet,
			url:         "/v1/cron/status",
			setup:       func(service *mocks.MockForecaster) {},
			wantStatus:  http.StatusForbidden,
		},
		{
			name:        "Preflight de CORS",
			authEnabled: true,
			method:      http.MethodOptions,
			url:         "/v1/stores",
			header:      map[string]string{"Origin": "http://localhost:8501"},
			setup:       func(service *mocks.MockForecaster) {},
			wantStatus:  http.StatusNoContent,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://localhost:8501", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				SecretKey: "test-secret",
				Auth:      config.Auth{Enabled: tt.authEnabled, TokenTTL: time.Hour},
				Cors:      config.Cors{AllowedOrigins: []string{"http://localhost:8501"}},
			}

			service := mocks.NewMockForecaster(ctrl)
			tt.setup(service)

			job := &recordingCronJob{}
			h := NewHandler(cfg, service, authenticating.NewService(cfg), handler.CronJobServices{DatasetRefreshService: job})

			req := httptest.NewRequest(tt.method, tt.url, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, job.triggered)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
