package revcache

import (
	"context"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// Cache es la caché propia del Revenue Source. Se puebla una vez al arrancar
// (o entrada a entrada tras cada fetch) y se trata como read/append-only
// durante el resto de la ejecución. Las entradas caducan por TTL.
type Cache interface {
	// Get devuelve el estimado cacheado para la moneda, si existe y está fresco.
	Get(ctx context.Context, coinID int) (domain.RevenueEstimate, bool, error)

	// Put guarda (o reemplaza) el estimado. FetchedAt del estimado manda:
	// ahí empieza a contar el TTL.
	Put(ctx context.Context, est domain.RevenueEstimate) error

	// Close libera la conexión del backend.
	Close() error
}
