package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/demand-forecast-api/internal/config"
	"github.com/vfg2006/demand-forecast-api/internal/domain"
)

const historyKeyPrefix = "forecast:history:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RedisCache compartilha as séries entre réplicas da API
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(ctx context.Context, cfg config.Cache) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis em %s: %w", cfg.RedisAddr, err)
	}

	logrus.WithField("addr", cfg.RedisAddr).Info("Conectado ao Redis")

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// historyKey inclui a geração do dataset: chaves de gerações antigas não são mais lidas
// e expiram pelo TTL ou saem no próximo Flush
func historyKey(generation uint64, storeID int) string {
	return fmt.Sprintf("%s%d:%d", historyKeyPrefix, generation, storeID)
}

func (c *RedisCache) Get(ctx context.Context, generation uint64, storeID int) (*domain.StoreHistory, error) {
	val, err := c.client.Get(ctx, historyKey(generation, storeID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler histórico da loja %d no redis: %w", storeID, err)
	}

	var history domain.StoreHistory
	if err := json.Unmarshal(val, &history); err != nil {
		return nil, fmt.Errorf("erro ao decodificar histórico da loja %d: %w", storeID, err)
	}

	return &history, nil
}

func (c *RedisCache) Set(ctx context.Context, generation uint64, history domain.StoreHistory) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("erro ao codificar histórico da loja %d: %w", history.StoreID, err)
	}

	return c.client.Set(ctx, historyKey(generation, history.StoreID), payload, c.ttl).Err()
}

// Flush remove apenas as chaves de histórico, sem afetar o resto do banco
func (c *RedisCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, historyKeyPrefix+"*", 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("erro ao listar chaves de histórico: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
