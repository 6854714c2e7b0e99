// Package dataset lê a tabela histórica de vendas semanais a partir de CSV
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
	"github.com/vfg2006/demand-forecast-api/pkg/utils"
)

// Colunas esperadas no CSV (comparadas sem espaços e sem diferenciar maiúsculas)
const (
	ColumnStore        = "store"
	ColumnDate         = "date"
	ColumnWeeklySales  = "weekly_sales"
	ColumnHoliday      = "holiday_flag"
	ColumnTemperature  = "temperature"
	ColumnFuelPrice    = "fuel_price"
	ColumnCPI          = "cpi"
	ColumnUnemployment = "unemployment"
)

var requiredColumns = []string{
	ColumnStore,
	ColumnDate,
	ColumnWeeklySales,
	ColumnHoliday,
	ColumnTemperature,
	ColumnFuelPrice,
	ColumnCPI,
	ColumnUnemployment,
}

// ErrMissingColumn indica que o cabeçalho não contém uma coluna obrigatória
var ErrMissingColumn = errors.New("coluna obrigatória ausente")

// Source entrega o dataset completo a cada carga
type Source interface {
	Name() string
	Load(ctx context.Context) (*domain.SalesDataset, error)
}

// FileSource lê o CSV de um arquivo local
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "csv_file:" + s.Path
}

func (s FileSource) Load(ctx context.Context) (*domain.SalesDataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir dataset %s", s.Path)
	}
	defer f.Close()

	return Parse(ctx, f)
}

// InlineSource lê o CSV de um texto fornecido pela configuração
type InlineSource struct {
	CSV string
}

func (s InlineSource) Name() string {
	return "csv_inline"
}

func (s InlineSource) Load(ctx context.Context) (*domain.SalesDataset, error) {
	return Parse(ctx, strings.NewReader(s.CSV))
}

// Parse lê o CSV completo. Os nomes das colunas são normalizados antes da busca e as
// datas são interpretadas com o dia antes do mês.
func Parse(ctx context.Context, r io.Reader) (*domain.SalesDataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrMissingColumn, "dataset sem cabeçalho")
		}
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do dataset")
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	dataset := &domain.SalesDataset{
		Records:  make([]domain.HistoryRecord, 0),
		LoadedAt: time.Now(),
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler linha %d do dataset", line)
		}

		record, err := parseRecord(row, index)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		dataset.Records = append(dataset.Records, record)
	}

	return dataset, nil
}

func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeColumn(name)] = i
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s", column)
		}
	}

	return index, nil
}

func parseRecord(row []string, index map[string]int) (domain.HistoryRecord, error) {
	field := func(column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	storeID, err := strconv.Atoi(field(ColumnStore))
	if err != nil {
		return domain.HistoryRecord{}, errors.Wrap(err, "loja inválida")
	}

	date, err := utils.ParseDayFirstDate(field(ColumnDate))
	if err != nil {
		return domain.HistoryRecord{}, err
	}

	isHoliday, err := strconv.ParseBool(field(ColumnHoliday))
	if err != nil {
		return domain.HistoryRecord{}, errors.Wrap(err, "indicador de feriado inválido")
	}

	values := make(map[string]float64, 5)
	for _, column := range []string{ColumnWeeklySales, ColumnTemperature, ColumnFuelPrice, ColumnCPI, ColumnUnemployment} {
		value, err := strconv.ParseFloat(field(column), 64)
		if err != nil {
			return domain.HistoryRecord{}, errors.Wrapf(err, "valor inválido na coluna %s", column)
		}
		values[column] = value
	}

	if values[ColumnWeeklySales] < 0 {
		return domain.HistoryRecord{}, errors.Errorf("venda semanal negativa: %v", values[ColumnWeeklySales])
	}

	return domain.HistoryRecord{
		StoreID:      storeID,
		Date:         date,
		WeeklySales:  values[ColumnWeeklySales],
		Temperature:  values[ColumnTemperature],
		FuelPrice:    values[ColumnFuelPrice],
		CPI:          values[ColumnCPI],
		Unemployment: values[ColumnUnemployment],
		IsHoliday:    isHoliday,
	}, nil
}
