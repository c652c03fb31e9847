package whattomine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

const calculatorsPath = "/calculators.json"

// FetchCoins devuelve el catálogo de monedas mineables con su algoritmo de
// NiceHash asociado. Implementa ports.CoinProvider.
//
// Las monedas inactivas y las de algoritmos que NiceHash no cotiza se
// descartan. El JSON llega keyed por nombre — ordenamos por ID de WhatToMine
// para que el orden de catálogo sea determinista entre ejecuciones.
func (c *Client) FetchCoins(ctx context.Context) ([]domain.Coin, error) {
	var resp calculatorsResponse
	if err := c.get(ctx, calculatorsPath, &resp); err != nil {
		return nil, fmt.Errorf("whattomine.FetchCoins: %w", err)
	}

	coins := make([]domain.Coin, 0, len(resp.Coins))
	for name, entry := range resp.Coins {
		if entry.Status != "Active" {
			continue
		}
		algo, ok := domain.FindAlgorithm(entry.Algorithm)
		if !ok {
			slog.Debug("skipping coin with algorithm not traded on NiceHash",
				"coin", name, "algorithm", entry.Algorithm)
			continue
		}
		coins = append(coins, mapCoin(name, entry, algo))
	}

	sort.Slice(coins, func(i, j int) bool { return coins[i].ID < coins[j].ID })

	slog.Info("coin catalog fetched", "total", len(resp.Coins), "usable", len(coins))
	return coins, nil
}

// mapCoin convierte una entrada del listado a domain.Coin.
// Los alias van en minúsculas: ticker y nombre completo.
func mapCoin(name string, entry calculatorEntry, algo domain.Algorithm) domain.Coin {
	names := []string{strings.ToLower(entry.Tag), strings.ToLower(name)}
	return domain.Coin{
		Name:      name,
		Names:     names,
		Algorithm: algo,
		ID:        entry.ID,
	}
}
