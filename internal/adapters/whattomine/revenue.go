package whattomine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/alejandrodnm/hashprofit/internal/adapters/revcache"
	"github.com/alejandrodnm/hashprofit/internal/domain"
)

const (
	coinPathFmt   = "/coins/%d.json?hr=%s"
	bulkCoinsPath = "/coins.json"
)

// Source implementa ports.RevenueProvider sobre el Client, con una caché
// propia opcional. La caché pertenece al revenue source, no al core.
// Con cache == nil todo GetRevenue va a la red.
type Source struct {
	client *Client
	cache  revcache.Cache
}

// NewSource crea un Source. cache puede ser nil para deshabilitar la caché.
func NewSource(client *Client, cache revcache.Cache) *Source {
	return &Source{client: client, cache: cache}
}

// GetRevenue devuelve el estimado de revenue de la moneda: primero caché,
// después red. Los fallos de caché no son fatales — degradan a un fetch.
func (s *Source) GetRevenue(ctx context.Context, coin domain.Coin) (domain.RevenueEstimate, error) {
	if s.cache != nil {
		est, ok, err := s.cache.Get(ctx, coin.ID)
		if err != nil {
			slog.Warn("revenue cache read failed", "coin", coin.Name, "err", err)
		} else if ok {
			est.Cached = true
			slog.Debug("revenue served from cache", "coin", coin.Name)
			return est, nil
		}
	}

	est, err := s.client.FetchRevenue(ctx, coin)
	if err != nil {
		return domain.RevenueEstimate{}, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, est); err != nil {
			slog.Warn("revenue cache write failed", "coin", coin.Name, "err", err)
		}
	}
	return est, nil
}

// PopulateCache precarga la caché con el listado bulk de /coins.json:
// un solo fetch cubre todas las monedas presentes en el listado.
func (s *Source) PopulateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	var resp bulkCoinsResponse
	if err := s.client.get(ctx, bulkCoinsPath, &resp); err != nil {
		return fmt.Errorf("whattomine.PopulateCache: %w", err)
	}

	now := time.Now().UTC()
	stored := 0
	for name, entry := range resp.Coins {
		revenue, err := strconv.ParseFloat(entry.BTCRevenue, 64)
		if err != nil {
			slog.Debug("skipping coin with unparseable revenue", "coin", name, "revenue", entry.BTCRevenue)
			continue
		}
		est := domain.RevenueEstimate{CoinID: entry.ID, Revenue: revenue, FetchedAt: now}
		if err := s.cache.Put(ctx, est); err != nil {
			return fmt.Errorf("whattomine.PopulateCache: store %s: %w", name, err)
		}
		stored++
	}

	slog.Info("revenue cache populated", "coins", stored)
	return nil
}

// FetchRevenue obtiene el estimado para una moneda directamente de la API,
// pidiendo el revenue a una unidad de hashrate de NiceHash de su algoritmo.
func (c *Client) FetchRevenue(ctx context.Context, coin domain.Coin) (domain.RevenueEstimate, error) {
	hr := strconv.FormatFloat(coin.Algorithm.WTMSpeed, 'f', -1, 64)

	var resp coinResponse
	if err := c.get(ctx, fmt.Sprintf(coinPathFmt, coin.ID, hr), &resp); err != nil {
		return domain.RevenueEstimate{}, fmt.Errorf("whattomine.FetchRevenue: %s: %w", coin.Name, err)
	}

	revenue, err := strconv.ParseFloat(resp.BTCRevenue, 64)
	if err != nil {
		return domain.RevenueEstimate{}, fmt.Errorf("whattomine.FetchRevenue: %s: parse revenue %q: %w",
			coin.Name, resp.BTCRevenue, err)
	}

	return domain.RevenueEstimate{
		CoinID:    coin.ID,
		Revenue:   revenue,
		FetchedAt: time.Now().UTC(),
	}, nil
}