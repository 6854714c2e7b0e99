// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"sort"
	"time"
)

// HistoryRecord representa uma semana de vendas de uma loja com as variáveis exógenas observadas
type HistoryRecord struct {
	StoreID      int       `json:"store_id"`
	Date         time.Time `json:"date"`
	WeeklySales  float64   `json:"weekly_sales"`
	Temperature  float64   `json:"temperature"`
	FuelPrice    float64   `json:"fuel_price"`
	CPI          float64   `json:"cpi"`
	Unemployment float64   `json:"unemployment"`
	IsHoliday    bool      `json:"is_holiday"`
}

// StoreHistory é a série histórica de uma única loja, ordenada por data crescente.
// Uma série vazia indica loja desconhecida.
type StoreHistory struct {
	StoreID int             `json:"store_id"`
	Records []HistoryRecord `json:"records"`
}

// NewStoreHistory mantém apenas os registros da loja informada e os ordena por data
func NewStoreHistory(storeID int, records []HistoryRecord) StoreHistory {
	filtered := make([]HistoryRecord, 0, len(records))
	for _, record := range records {
		if record.StoreID == storeID {
			filtered = append(filtered, record)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	return StoreHistory{
		StoreID: storeID,
		Records: filtered,
	}
}

func (h StoreHistory) Len() int {
	return len(h.Records)
}

func (h StoreHistory) IsEmpty() bool {
	return len(h.Records) == 0
}

// Recent retorna os últimos n registros da série (ou todos, se houver menos)
func (h StoreHistory) Recent(n int) []HistoryRecord {
	if n <= 0 {
		return []HistoryRecord{}
	}
	if n >= len(h.Records) {
		return h.Records
	}
	return h.Records[len(h.Records)-n:]
}

// StoreRange descreve os identificadores de loja observados no dataset
type StoreRange struct {
	MinStoreID int `json:"min_store_id"`
	MaxStoreID int `json:"max_store_id"`
	Stores     int `json:"stores"`
}

func (r StoreRange) Contains(storeID int) bool {
	return storeID >= r.MinStoreID && storeID <= r.MaxStoreID
}

// SalesDataset é a tabela histórica completa carregada da fonte de dados
type SalesDataset struct {
	Records  []HistoryRecord
	LoadedAt time.Time
}

// GroupByStore separa os registros por loja, já ordenados por data
func (d *SalesDataset) GroupByStore() map[int]StoreHistory {
	grouped := make(map[int][]HistoryRecord)
	for _, record := range d.Records {
		grouped[record.StoreID] = append(grouped[record.StoreID], record)
	}

	histories := make(map[int]StoreHistory, len(grouped))
	for storeID, records := range grouped {
		histories[storeID] = NewStoreHistory(storeID, records)
	}

	return histories
}

// StoreRange calcula o menor e o maior identificador de loja. Retorna false para dataset vazio.
func (d *SalesDataset) StoreRange() (StoreRange, bool) {
	if len(d.Records) == 0 {
		return StoreRange{}, false
	}

	seen := make(map[int]struct{})
	storeRange := StoreRange{
		MinStoreID: d.Records[0].StoreID,
		MaxStoreID: d.Records[0].StoreID,
	}

	for _, record := range d.Records {
		seen[record.StoreID] = struct{}{}
		if record.StoreID < storeRange.MinStoreID {
			storeRange.MinStoreID = record.StoreID
		}
		if record.StoreID > storeRange.MaxStoreID {
			storeRange.MaxStoreID = record.StoreID
		}
	}

	storeRange.Stores = len(seen)
	return storeRange, true
}
