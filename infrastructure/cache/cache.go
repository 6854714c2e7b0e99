// Package cache guarda as séries históricas já agregadas por loja
package cache

import (
	"context"

	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

// HistoryCache devolve (nil, nil) quando a loja não está em cache.
// As entradas são separadas pela geração do dataset em que foram lidas: uma série gravada
// com geração antiga nunca é servida para uma geração mais nova.
type HistoryCache interface {
	Get(ctx context.Context, generation uint64, storeID int) (*domain.StoreHistory, error)
	Set(ctx context.Context, generation uint64, history domain.StoreHistory) error
	Flush(ctx context.Context) error
}

var (
	_ HistoryCache = (*MemoryCache)(nil)
	_ HistoryCache = (*RedisCache)(nil)
)
