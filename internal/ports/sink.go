package ports

import (
	"context"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// Sink consume los records calculados, uno por moneda y en orden.
type Sink interface {
	// Handle recibe un record recién calculado.
	Handle(ctx context.Context, rec domain.Record) error

	// Finished se llama exactamente una vez después del último record,
	// y solo si ningún fetch falló.
	Finished(ctx context.Context) error
}
