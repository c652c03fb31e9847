package nicehash

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

const (
	methodGlobalStats = "stats.global.current"
	methodOrders      = "orders.get"

	// locationEU: la API legacy separa marketplaces por región.
	// Usamos Europa, el de más liquidez.
	locationEU = "0"
)

// FetchGlobalPrices devuelve el snapshot de precios globales de todos los
// algoritmos, indexado por número de algoritmo. Implementa ports.PriceProvider.
func (c *Client) FetchGlobalPrices(ctx context.Context) (map[int]float64, error) {
	var result globalStatsResult
	if err := c.call(ctx, methodGlobalStats, nil, &result); err != nil {
		return nil, fmt.Errorf("nicehash.FetchGlobalPrices: %w", err)
	}

	prices := mapGlobalPrices(result.Stats)
	slog.Debug("global prices fetched", "algorithms", len(prices))
	return prices, nil
}

// FetchMinimumPrice devuelve el precio de la orden activa más barata con al
// menos un worker para el algoritmo dado. Un round-trip por llamada.
func (c *Client) FetchMinimumPrice(ctx context.Context, algo domain.Algorithm) (float64, error) {
	params := url.Values{}
	params.Set("location", locationEU)
	params.Set("algo", strconv.Itoa(algo.Index))

	var result ordersResult
	if err := c.call(ctx, methodOrders, params, &result); err != nil {
		return 0, fmt.Errorf("nicehash.FetchMinimumPrice: algo %d: %w", algo.Index, err)
	}

	price, ok := lowestOrderPrice(result.Orders)
	if !ok {
		return 0, fmt.Errorf("nicehash.FetchMinimumPrice: no active orders with workers for %s",
			algo.DisplayName())
	}

	slog.Debug("minimum order price fetched", "algo", algo.DisplayName(), "price", price)
	return price, nil
}
