package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

type memoryEntry struct {
	history   domain.StoreHistory
	expiresAt time.Time
}

type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	generation uint64
	entries    map[int]memoryEntry
	now        func() time.Time
}

// NewMemoryCache cria um cache local ao processo. ttl <= 0 mantém as entradas até o próximo Flush.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[int]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, generation uint64, storeID int) (*domain.StoreHistory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return nil, nil
	}

	entry, ok := c.entries[storeID]
	if !ok {
		return nil, nil
	}

	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		delete(c.entries, storeID)
		return nil, nil
	}

	history := entry.history
	return &history, nil
}

// Set descarta séries de gerações anteriores. Uma geração nova substitui todo o conteúdo.
func (c *MemoryCache) Set(ctx context.Context, generation uint64, history domain.StoreHistory) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation < c.generation {
		return nil
	}
	if generation > c.generation {
		c.generation = generation
		c.entries = make(map[int]memoryEntry)
	}

	entry := memoryEntry{history: history}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.entries[history.StoreID] = entry
	return nil
}

func (c *MemoryCache) Flush(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[int]memoryEntry)
	c.mu.Unlock()
	return nil
}
