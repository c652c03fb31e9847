package revcache

// redis.go — backend Redis de la caché de revenue, para compartirla entre
// máquinas o sobrevivir a contenedores efímeros. El TTL lo gestiona Redis
// con la expiración nativa de la key.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

const redisKeyFmt = "hashprofit:revenue:%d"

// Redis implementa Cache sobre un servidor Redis.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// redisEntry es el payload serializado de una entrada.
type redisEntry struct {
	CoinID    int       `json:"coin_id"`
	Revenue   float64   `json:"revenue"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewRedis conecta con el servidor del DSN dado ("redis://host:6379/0")
// y verifica la conexión con un ping.
func NewRedis(dsn string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("revcache.NewRedis: parse %q: %w", dsn, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("revcache.NewRedis: ping: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// Get devuelve el estimado de la moneda. Una key ausente (o expirada por
// Redis) no es un error.
func (c *Redis) Get(ctx context.Context, coinID int) (domain.RevenueEstimate, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(redisKeyFmt, coinID)).Bytes()
	if err == redis.Nil {
		return domain.RevenueEstimate{}, false, nil
	}
	if err != nil {
		return domain.RevenueEstimate{}, false, fmt.Errorf("revcache.Get: coin %d: %w", coinID, err)
	}

	var entry redisEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.RevenueEstimate{}, false, fmt.Errorf("revcache.Get: coin %d: decode: %w", coinID, err)
	}

	return domain.RevenueEstimate{
		CoinID:    entry.CoinID,
		Revenue:   entry.Revenue,
		FetchedAt: entry.FetchedAt,
	}, true, nil
}

// Put guarda el estimado con el TTL configurado.
func (c *Redis) Put(ctx context.Context, est domain.RevenueEstimate) error {
	fetchedAt := est.FetchedAt.UTC()
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	data, err := json.Marshal(redisEntry{
		CoinID:    est.CoinID,
		Revenue:   est.Revenue,
		FetchedAt: fetchedAt,
	})
	if err != nil {
		return fmt.Errorf("revcache.Put: coin %d: encode: %w", est.CoinID, err)
	}

	if err := c.client.Set(ctx, fmt.Sprintf(redisKeyFmt, est.CoinID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("revcache.Put: coin %d: %w", est.CoinID, err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (c *Redis) Close() error {
	return c.client.Close()
}
