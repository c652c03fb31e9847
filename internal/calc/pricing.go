package calc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/hashprofit/internal/domain"
	"github.com/alejandrodnm/hashprofit/internal/ports"
)

// PriceResolver devuelve el precio de alquiler para un algoritmo.
// La estrategia se elige una vez al construir, no por llamada.
type PriceResolver interface {
	PriceFor(ctx context.Context, algo domain.Algorithm) (float64, error)
}

// GlobalResolver resuelve precios desde la tabla global pre-cargada al
// arrancar. Es el modo por defecto: cero round-trips durante el loop.
type GlobalResolver struct {
	prices map[int]float64
}

// NewGlobalResolver hace el único fetch de precios globales y devuelve un
// resolver que sirve lookups desde la tabla.
func NewGlobalResolver(ctx context.Context, provider ports.PriceProvider) (*GlobalResolver, error) {
	prices, err := provider.FetchGlobalPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("calc.NewGlobalResolver: fetch global prices: %w", err)
	}
	slog.Debug("global price table loaded", "algorithms", len(prices))
	return &GlobalResolver{prices: prices}, nil
}

// PriceFor busca el precio del algoritmo en la tabla.
// Un índice ausente es fatal: la tabla no se repuebla a mitad de ejecución.
func (g *GlobalResolver) PriceFor(_ context.Context, algo domain.Algorithm) (float64, error) {
	price, ok := g.prices[algo.Index]
	if !ok {
		return 0, fmt.Errorf("calc.GlobalResolver: no global price for algorithm %s (index %d)",
			algo.DisplayName(), algo.Index)
	}
	return price, nil
}

// MinimumOrderResolver consulta en vivo la orden activa más barata con al
// menos un worker, en cada llamada. Más preciso pero más lento: un
// round-trip por moneda.
type MinimumOrderResolver struct {
	provider ports.PriceProvider
}

// NewMinimumOrderResolver crea el resolver de precios mínimos.
// Este modo está desaconsejado y lo avisamos al activarlo.
func NewMinimumOrderResolver(provider ports.PriceProvider) *MinimumOrderResolver {
	slog.Warn("minimum-order pricing enabled: one extra request per coin, expect a slower run")
	return &MinimumOrderResolver{provider: provider}
}

// PriceFor consulta el precio mínimo actual para el algoritmo.
func (m *MinimumOrderResolver) PriceFor(ctx context.Context, algo domain.Algorithm) (float64, error) {
	price, err := m.provider.FetchMinimumPrice(ctx, algo)
	if err != nil {
		return 0, fmt.Errorf("calc.MinimumOrderResolver: %s: %w", algo.DisplayName(), err)
	}
	return price, nil
}
