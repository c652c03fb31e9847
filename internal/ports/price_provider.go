package ports

import (
	"context"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// PriceProvider obtiene precios de alquiler del marketplace de NiceHash.
type PriceProvider interface {
	// FetchGlobalPrices devuelve el snapshot de precios globales para todos
	// los algoritmos, indexado por Algorithm.Index. Se llama una vez al
	// arrancar en modo global.
	FetchGlobalPrices(ctx context.Context) (map[int]float64, error)

	// FetchMinimumPrice devuelve el precio de la orden activa más barata
	// con al menos un worker para el algoritmo dado. Un round-trip por
	// llamada — solo se usa en modo minimum-order.
	FetchMinimumPrice(ctx context.Context, algo domain.Algorithm) (float64, error)
}
