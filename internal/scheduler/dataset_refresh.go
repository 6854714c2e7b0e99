// Package scheduler contém os serviços de agendamento para recarga do histórico
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/internal/config"
)

type DatasetReloader interface {
	Reload(ctx context.Context) (int, error)
}

type CacheFlusher interface {
	Flush(ctx context.Context) error
}

type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService recarrega o dataset histórico e invalida o cache de séries por loja
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	reloader  DatasetReloader
	flusher   CacheFlusher
	config    DatasetRefreshConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRecordCount     int
	lastSyncError       string
}

func NewDatasetRefreshService(
	reloader DatasetReloader,
	flusher CacheFlusher,
	cfg *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		SyncEnabled:  cfg.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		reloader:  reloader,
		flusher:   flusher,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset recarrega a fonte e limpa o cache. Chamadas concorrentes são ignoradas.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	count, err := s.refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
		s.lastRecordCount = count
	}
	s.syncMutex.Unlock()

	return err
}

func (s *DatasetRefreshService) refresh(ctx context.Context) (int, error) {
	logrus.Info("Iniciando recarga do dataset histórico")

	count, err := s.reloader.Reload(ctx)
	if err != nil {
		return 0, err
	}

	// Séries antigas não podem sobreviver à recarga
	if err := s.flusher.Flush(ctx); err != nil {
		return 0, fmt.Errorf("erro ao limpar cache de histórico: %w", err)
	}

	logrus.WithField("records", count).Info("Recarga do dataset concluída")
	return count, nil
}

// TriggerManualSync inicia manualmente uma recarga em segundo plano
func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.RefreshDataset(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_record_count":      s.lastRecordCount,
		"last_sync_error":        s.lastSyncError,
	}
}
