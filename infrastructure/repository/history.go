// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/demand-forecast-api/infrastructure/dataset"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

const (
	storeHistoryTable = "store_history sh"
)

//go:generate mockgen -source=history.go -destination=mocks/history.go -package=mocks

// HistoryRepository entrega a série histórica de uma loja. Loja desconhecida retorna série vazia.
// Generation muda a cada Reload bem sucedido; séries lidas numa geração só valem para ela.
type HistoryRepository interface {
	GetStoreHistory(ctx context.Context, storeID int) (domain.StoreHistory, error)
	GetStoreRange(ctx context.Context) (*domain.StoreRange, error)
	Reload(ctx context.Context) (int, error)
	Generation() uint64
}

type datasetHistoryRepository struct {
	source dataset.Source

	mu         sync.RWMutex
	histories  map[int]domain.StoreHistory
	storeRange *domain.StoreRange
	loadedAt   time.Time
	generation uint64
}

// NewDatasetHistoryRepository mantém o dataset inteiro em memória. Nada é lido até o primeiro Reload.
func NewDatasetHistoryRepository(source dataset.Source) HistoryRepository {
	return &datasetHistoryRepository{
		source:    source,
		histories: make(map[int]domain.StoreHistory),
	}
}

func (r *datasetHistoryRepository) GetStoreHistory(ctx context.Context, storeID int) (domain.StoreHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history, ok := r.histories[storeID]
	if !ok {
		return domain.StoreHistory{StoreID: storeID, Records: []domain.HistoryRecord{}}, nil
	}

	return history, nil
}

func (r *datasetHistoryRepository) GetStoreRange(ctx context.Context) (*domain.StoreRange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.storeRange == nil {
		return nil, nil
	}

	storeRange := *r.storeRange
	return &storeRange, nil
}

// Reload lê a fonte novamente e troca o conteúdo em memória de uma só vez
func (r *datasetHistoryRepository) Reload(ctx context.Context) (int, error) {
	data, err := r.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao carregar dataset de %s: %w", r.source.Name(), err)
	}

	histories := data.GroupByStore()
	var storeRange *domain.StoreRange
	if sr, ok := data.StoreRange(); ok {
		storeRange = &sr
	}

	r.mu.Lock()
	r.histories = histories
	r.storeRange = storeRange
	r.loadedAt = data.LoadedAt
	r.generation++
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"source":  r.source.Name(),
		"records": len(data.Records),
		"stores":  len(histories),
	}).Info("Dataset histórico carregado")

	return len(data.Records), nil
}

func (r *datasetHistoryRepository) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.generation
}

type postgresHistoryRepository struct {
	conn       postgres.Queryer
	generation atomic.Uint64
}

func NewPostgresHistoryRepository(conn postgres.Queryer) HistoryRepository {
	return &postgresHistoryRepository{
		conn: conn,
	}
}

func (r *postgresHistoryRepository) GetStoreHistory(ctx context.Context, storeID int) (domain.StoreHistory, error) {
	query, args, err := squirrel.
		Select(
			"sh.store_id",
			"sh.date",
			"sh.weekly_sales",
			"sh.temperature",
			"sh.fuel_price",
			"sh.cpi",
			"sh.unemployment",
			"sh.is_holiday",
		).
		From(storeHistoryTable).
		Where(squirrel.Eq{"sh.store_id": storeID}).
		OrderBy("sh.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.StoreHistory{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.StoreHistory{}, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	history := domain.StoreHistory{
		StoreID: storeID,
		Records: make([]domain.HistoryRecord, 0),
	}

	for rows.Next() {
		record, err := scanHistoryRecord(rows)
		if err != nil {
			return domain.StoreHistory{}, fmt.Errorf("erro ao escanear registro histórico: %w", err)
		}
		history.Records = append(history.Records, *record)
	}

	if err = rows.Err(); err != nil {
		return domain.StoreHistory{}, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}

func (r *postgresHistoryRepository) GetStoreRange(ctx context.Context) (*domain.StoreRange, error) {
	query, args, err := squirrel.
		Select("MIN(sh.store_id)", "MAX(sh.store_id)", "COUNT(DISTINCT sh.store_id)").
		From(storeHistoryTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		minID, maxID sql.NullInt64
		stores       int
	)

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&minID, &maxID, &stores); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar faixa de lojas: %w", err)
	}

	// Tabela vazia
	if !minID.Valid || !maxID.Valid {
		return nil, nil
	}

	return &domain.StoreRange{
		MinStoreID: int(minID.Int64),
		MaxStoreID: int(maxID.Int64),
		Stores:     stores,
	}, nil
}

// Reload apenas conta os registros: a tabela já é a fonte viva
func (r *postgresHistoryRepository) Reload(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(storeHistoryTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros históricos: %w", err)
	}

	r.generation.Add(1)
	return count, nil
}

func (r *postgresHistoryRepository) Generation() uint64 {
	return r.generation.Load()
}

// SaveHistoryRecords grava os registros em lote, atualizando semanas já existentes.
// Semanas repetidas no mesmo lote ficam com o último registro.
func SaveHistoryRecords(ctx context.Context, q postgres.Queryer, records []domain.HistoryRecord) error {
	records = dedupeHistoryRecords(records)
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("store_history").
		Columns(
			"store_id",
			"date",
			"weekly_sales",
			"temperature",
			"fuel_price",
			"cpi",
			"unemployment",
			"is_holiday",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.StoreID,
			record.Date,
			record.WeeklySales,
			record.Temperature,
			record.FuelPrice,
			record.CPI,
			record.Unemployment,
			record.IsHoliday,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (store_id, date) DO UPDATE SET
			weekly_sales = EXCLUDED.weekly_sales,
			temperature = EXCLUDED.temperature,
			fuel_price = EXCLUDED.fuel_price,
			cpi = EXCLUDED.cpi,
			unemployment = EXCLUDED.unemployment,
			is_holiday = EXCLUDED.is_holiday,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

type historyKey struct {
	storeID int
	date    string
}

// dedupeHistoryRecords evita que o ON CONFLICT tente atualizar a mesma linha duas vezes no mesmo INSERT
func dedupeHistoryRecords(records []domain.HistoryRecord) []domain.HistoryRecord {
	positions := make(map[historyKey]int, len(records))
	unique := make([]domain.HistoryRecord, 0, len(records))

	for _, record := range records {
		key := historyKey{storeID: record.StoreID, date: record.Date.Format(time.DateOnly)}
		if i, ok := positions[key]; ok {
			unique[i] = record
			continue
		}

		positions[key] = len(unique)
		unique = append(unique, record)
	}

	return unique
}

func scanHistoryRecord(rows *sql.Rows) (*domain.HistoryRecord, error) {
	record := &domain.HistoryRecord{}

	err := rows.Scan(
		&record.StoreID,
		&record.Date,
		&record.WeeklySales,
		&record.Temperature,
		&record.FuelPrice,
		&record.CPI,
		&record.Unemployment,
		&record.IsHoliday,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
