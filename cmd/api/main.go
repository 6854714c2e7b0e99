package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/infrastructure/cache"
	"github.com/vfg2006/demand-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/demand-forecast-api/infrastructure/dataset"
	"github.com/vfg2006/demand-forecast-api/infrastructure/repository"
	"github.com/vfg2006/demand-forecast-api/internal/api"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/scheduler"
	"github.com/vfg2006/demand-forecast-api/internal/usecases/authenticating"
	"github.com/vfg2006/demand-forecast-api/internal/usecases/forecasting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	historyRepo, closeRepo := newHistoryRepository(ctx, cfg)
	defer closeRepo()

	historyCache, closeCache := newHistoryCache(ctx, cfg.Cache)
	defer closeCache()

	forecaster := forecasting.NewService(historyRepo, historyCache, cfg.Forecast)
	authenticator := authenticating.NewService(cfg)

	datasetRefreshService := scheduler.NewDatasetRefreshService(historyRepo, historyCache, cfg)

	// Carga inicial. Falha aqui não derruba a API: as rotas de previsão respondem 503 até a próxima recarga.
	if err := datasetRefreshService.RefreshDataset(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do dataset histórico")
	}

	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	}

	server, err := api.New(cfg, forecaster, authenticator, datasetRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs. Caminhos relativos (DATASET_PATH, .env) são
// resolvidos a partir do diretório de trabalho do processo.
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newHistoryRepository escolhe a fonte do histórico de vendas conforme DATASET_SOURCE
func newHistoryRepository(ctx context.Context, cfg *config.Config) (repository.HistoryRepository, func()) {
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		return repository.NewPostgresHistoryRepository(conn), func() { conn.Close() }
	case config.DatasetSourceCSVInline:
		return repository.NewDatasetHistoryRepository(dataset.InlineSource{CSV: cfg.Dataset.CSV}), func() {}
	default:
		return repository.NewDatasetHistoryRepository(dataset.FileSource{Path: cfg.Dataset.Path}), func() {}
	}
}

// newHistoryCache cria o cache de séries por loja conforme CACHE_DRIVER
func newHistoryCache(ctx context.Context, cfg config.Cache) (cache.HistoryCache, func()) {
	if cfg.Driver == config.CacheDriverRedis {
		redisCache, err := cache.NewRedisCache(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}

		logrus.WithField("addr", cfg.RedisAddr).Info("Cache Redis habilitado")
		return redisCache, func() { redisCache.Close() }
	}

	return cache.NewMemoryCache(cfg.TTL), func() {}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
