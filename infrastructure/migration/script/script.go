package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/demand-forecast-api/infrastructure/dataset"
	"github.com/vfg2006/demand-forecast-api/infrastructure/repository"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

// 8 colunas por linha, bem abaixo do limite de parâmetros do Postgres
const batchSize = 500

const createStoreHistoryTable = `
	CREATE TABLE IF NOT EXISTS store_history (
		id BIGSERIAL PRIMARY KEY,
		store_id INTEGER NOT NULL,
		date DATE NOT NULL,
		weekly_sales DOUBLE PRECISION NOT NULL CHECK (weekly_sales >= 0),
		temperature DOUBLE PRECISION NOT NULL,
		fuel_price DOUBLE PRECISION NOT NULL,
		cpi DOUBLE PRECISION NOT NULL,
		unemployment DOUBLE PRECISION NOT NULL,
		is_holiday BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT store_history_store_date_unique UNIQUE (store_id, date)
	)
`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createTable(ctx context.Context, conn *postgres.Connection) error {
	var tableExists bool
	err := conn.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'store_history'
		)
	`).Scan(&tableExists)
	if err != nil {
		return err
	}

	if tableExists {
		logrus.Info("Tabela store_history já existe")
		return nil
	}

	if _, err := conn.ExecContext(ctx, createStoreHistoryTable); err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS store_history_store_id_idx ON store_history (store_id, date)"); err != nil {
		return err
	}

	logrus.Info("Tabela store_history criada com sucesso")
	return nil
}

func importRecords(ctx context.Context, conn *postgres.Connection, records []domain.HistoryRecord) error {
	logrus.Infof("Iniciando importação de %d registros...", len(records))
	startTime := time.Now()

	return conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for start := 0; start < len(records); start += batchSize {
			end := start + batchSize
			if end > len(records) {
				end = len(records)
			}

			if err := repository.SaveHistoryRecords(ctx, q, records[start:end]); err != nil {
				return err
			}

			logrus.Infof("Progresso: %d/%d registros processados", end, len(records))
		}

		logrus.Infof("Importação concluída em %v", time.Since(startTime))
		return nil
	})
}

func main() {
	setupLogger()
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	path := cfg.Dataset.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := createTable(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao criar tabela store_history: %v", err)
	}

	data, err := dataset.FileSource{Path: path}.Load(ctx)
	if err != nil {
		logrus.Fatalf("ERRO ao ler dataset %s: %v", path, err)
	}

	if err := importRecords(ctx, conn, data.Records); err != nil {
		logrus.Fatalf("ERRO ao importar registros: %v", err)
	}

	if storeRange, ok := data.StoreRange(); ok {
		logrus.WithFields(logrus.Fields{
			"min_store_id": storeRange.MinStoreID,
			"max_store_id": storeRange.MaxStoreID,
			"stores":       storeRange.Stores,
		}).Info("Carga inicial concluída!")
	}
}
