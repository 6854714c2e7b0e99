package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/demand-forecast-api/infrastructure/cache"
	"github.com/vfg2006/demand-forecast-api/infrastructure/repository/mocks"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newRefreshConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}
}

func TestDatasetRefreshService_RefreshDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cached := domain.StoreHistory{StoreID: 1, Records: []domain.HistoryRecord{{StoreID: 1, WeeklySales: 10}}}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockHistoryRepository)
		validate func(t *testing.T, s *DatasetRefreshService, historyCache *cache.MemoryCache, err error)
	}{
		{
			name: "Recarga bem sucedida limpa o cache",
			setup: func(repo *mocks.MockHistoryRepository) {
				repo.EXPECT().Reload(gomock.Any()).Return(6435, nil)
			},
			validate: func(t *testing.T, s *DatasetRefreshService, historyCache *cache.MemoryCache, err error) {
				require.NoError(t, err)

				got, _ := historyCache.Get(ctx, 0, 1)
				assert.Nil(t, got)

				status := s.GetStatus()
				assert.Equal(t, 6435, status["last_record_count"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "Falha na fonte mantém o cache",
			setup: func(repo *mocks.MockHistoryRepository) {
				repo.EXPECT().Reload(gomock.Any()).Return(0, errors.New("arquivo não encontrado"))
			},
			validate: func(t *testing.T, s *DatasetRefreshService, historyCache *cache.MemoryCache, err error) {
				require.Error(t, err)

				got, _ := historyCache.Get(ctx, 0, 1)
				assert.NotNil(t, got)

				status := s.GetStatus()
				assert.Equal(t, 0, status["last_record_count"])
				assert.Equal(t, "arquivo não encontrado", status["last_sync_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockHistoryRepository(ctrl)
			historyCache := cache.NewMemoryCache(time.Hour)
			require.NoError(t, historyCache.Set(ctx, 0, cached))

			service := NewDatasetRefreshService(repo, historyCache, newRefreshConfig(false))
			tt.setup(repo)

			err := service.RefreshDataset(ctx)
			tt.validate(t, service, historyCache, err)
		})
	}
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockHistoryRepository(ctrl)
	service := NewDatasetRefreshService(repo, cache.NewMemoryCache(0), newRefreshConfig(false))

	repo.EXPECT().Reload(gomock.Any()).Return(42, nil)

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_record_count"] == 42
	}, time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockHistoryRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewDatasetRefreshService(repo, cache.NewMemoryCache(0), newRefreshConfig(false))
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 0, service.scheduler.Len())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		cfg := newRefreshConfig(true)
		cfg.DatasetRefresh.CronSchedule = "não é cron"

		service := NewDatasetRefreshService(repo, cache.NewMemoryCache(0), cfg)
		assert.Error(t, service.Start(ctx))
	})

	t.Run("Habilitado agenda a recarga", func(t *testing.T) {
		service := NewDatasetRefreshService(repo, cache.NewMemoryCache(0), newRefreshConfig(true))
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())

		status := service.GetStatus()
		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "0 2 * * *", status["sync_cron"])
	})
}
