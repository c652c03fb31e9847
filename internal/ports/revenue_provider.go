package ports

import (
	"context"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// RevenueProvider obtiene estimados de revenue de minado por moneda.
type RevenueProvider interface {
	// GetRevenue devuelve el estimado para la moneda dada.
	// Puede servirse desde caché si PopulateCache se llamó antes.
	GetRevenue(ctx context.Context, coin domain.Coin) (domain.RevenueEstimate, error)

	// PopulateCache precarga la caché con un solo fetch bulk. Se invoca como
	// máximo una vez, antes de cualquier GetRevenue. Las monedas presentes en
	// la caché no requieren round-trips adicionales durante el loop.
	PopulateCache(ctx context.Context) error
}
