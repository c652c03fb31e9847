package ports

import (
	"context"

	"github.com/alejandrodnm/hashprofit/internal/domain"
)

// CoinProvider obtiene el catálogo completo de monedas mineables,
// cada una asociada a su algoritmo de NiceHash.
type CoinProvider interface {
	// FetchCoins devuelve el catálogo en orden determinista.
	// Las monedas cuyo algoritmo no cotiza en NiceHash se omiten.
	FetchCoins(ctx context.Context) ([]domain.Coin, error)
}
